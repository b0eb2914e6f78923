package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryView is a category as seen by one user.
type CategoryView struct {
	Category *entity.Category
	State    entity.AccessState
	// Price is the effective purchase price; nil when not for sale.
	Price        *decimal.Decimal
	ProductLimit int
}

// AccessUsecase drives the per-category access gate for shoppers.
type AccessUsecase interface {
	ListCategories(ctx context.Context, session *entity.Session) ([]*CategoryView, error)

	// PurchaseAccess pays for a category and files a pending access request.
	PurchaseAccess(ctx context.Context, userID uuid.UUID, category string) (*entity.AccessRequest, error)

	ListAccessRequests(ctx context.Context, userID uuid.UUID) ([]*entity.AccessRequest, error)

	IsAccessible(ctx context.Context, session *entity.Session, category string) (bool, error)
}
