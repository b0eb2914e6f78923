package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CatalogUsecase serves the gated product listing.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, session *entity.Session, query entity.CatalogQuery) ([]*entity.Product, error)
	GetProduct(ctx context.Context, session *entity.Session, productID uuid.UUID) (*entity.Product, error)

	// OrderableProducts is the limited, unfiltered catalog a session may put in its cart.
	OrderableProducts(ctx context.Context, session *entity.Session) ([]*entity.Product, error)

	ListActiveBanners(ctx context.Context) ([]*entity.Banner, error)
}
