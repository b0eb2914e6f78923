package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrCategoryNotFound is returned when a category does not exist.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrDuplicateCategory is returned when a category slug is already taken.
	ErrDuplicateCategory = errors.New("category slug already exists")
	// ErrProductNotFound is returned when a product does not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrBannerNotFound is returned when a banner does not exist.
	ErrBannerNotFound = errors.New("banner not found")
)

// CategoryRepository persists product categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)
	// List returns all categories ordered by slug.
	List(ctx context.Context) ([]*entity.Category, error)
}

// ProductRepository persists catalog products.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// FindByIDs returns the products that exist among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)
	// List returns every product, newest first.
	List(ctx context.Context) ([]*entity.Product, error)
}

// BannerRepository persists storefront banners.
type BannerRepository interface {
	Create(ctx context.Context, banner *entity.Banner) error
	Update(ctx context.Context, banner *entity.Banner) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Banner, error)
	// List returns banners by sort order; activeOnly hides inactive ones.
	List(ctx context.Context, activeOnly bool) ([]*entity.Banner, error)
}
