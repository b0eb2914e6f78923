package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductInput carries the editable product fields.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Rating      float64
	ReviewCount int
	VIPTier     *int
}

// CategoryInput carries the editable category fields.
type CategoryInput struct {
	Slug        string
	Name        string
	Description string
	AccessPrice *decimal.Decimal
	VIPTier     *int
}

// BannerInput carries the editable banner fields.
type BannerInput struct {
	Title     string
	ImageURL  string
	LinkURL   string
	Active    bool
	SortOrder int
}

// CatalogAdminUsecase maintains products, categories and banners.
type CatalogAdminUsecase interface {
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, productID uuid.UUID, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, productID uuid.UUID) error
	// UploadProductImage stores the image and points the product at it.
	UploadProductImage(ctx context.Context, productID uuid.UUID, data []byte) (*entity.Product, error)

	ListCategories(ctx context.Context) ([]*entity.Category, error)
	CreateCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, categoryID uuid.UUID, input *CategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, categoryID uuid.UUID) error

	ListBanners(ctx context.Context) ([]*entity.Banner, error)
	CreateBanner(ctx context.Context, input *BannerInput) (*entity.Banner, error)
	UpdateBanner(ctx context.Context, bannerID uuid.UUID, input *BannerInput) (*entity.Banner, error)
	DeleteBanner(ctx context.Context, bannerID uuid.UUID) error
}
