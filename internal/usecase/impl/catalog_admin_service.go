package impl

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMaxImageSize int64 = 5 << 20

var (
	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

	imageExtensions = map[string]string{
		"image/jpeg": ".jpg",
		"image/png":  ".png",
		"image/gif":  ".gif",
		"image/webp": ".webp",
	}
)

type catalogAdminService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	bannerRepo   repository.BannerRepository
	images       service.ImageStorage
	maxImageSize int64
	logger       *slog.Logger
}

// CatalogAdminServiceParams holds dependencies for CatalogAdminService, injected by Fx.
type CatalogAdminServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	BannerRepo   repository.BannerRepository
	Images       service.ImageStorage
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCatalogAdminService creates the product, category and banner maintenance service.
func NewCatalogAdminService(params CatalogAdminServiceParams) usecase.CatalogAdminUsecase {
	maxImageSize := defaultMaxImageSize
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.MaxImageSize > 0 {
		maxImageSize = params.Config.Storage.MaxImageSize
	}

	return &catalogAdminService{
		categoryRepo: params.CategoryRepo,
		productRepo:  params.ProductRepo,
		bannerRepo:   params.BannerRepo,
		images:       params.Images,
		maxImageSize: maxImageSize,
		logger:       params.Logger,
	}
}

func (srv *catalogAdminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- Products ---

func (srv *catalogAdminService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	product := &entity.Product{}
	if err := srv.applyProductInput(ctx, product, input); err != nil {
		return nil, err
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}
	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.String("category", product.Category))

	return product, nil
}

func (srv *catalogAdminService) UpdateProduct(ctx context.Context, productID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := srv.applyProductInput(ctx, product, input); err != nil {
		return nil, err
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, translateNotFound(err, repository.ErrProductNotFound, domainerrors.ErrProductNotFound, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes the product and then, best effort, its image.
func (srv *catalogAdminService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		return translateNotFound(err, repository.ErrProductNotFound, domainerrors.ErrProductNotFound, "failed to delete product")
	}

	srv.deleteImage(ctx, product.ImageKey)

	return nil
}

// UploadProductImage sniffs the content type, stores the image under a fresh key
// and points the product at it. The previous image is removed afterwards.
func (srv *catalogAdminService) UploadProductImage(ctx context.Context, productID uuid.UUID, data []byte) (*entity.Product, error) {
	if len(data) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("image is empty")
	}
	if int64(len(data)) > srv.maxImageSize {
		return nil, domainerrors.ErrImageTooLarge
	}

	contentType := http.DetectContentType(data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, domainerrors.ErrUnsupportedImageType.WithDetails(contentType)
	}

	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	key := "products/" + productID.String() + "/" + uuid.NewString() + ext
	imageURL, err := srv.images.Upload(ctx, key, contentType, data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload product image")
	}

	previousKey := product.ImageKey
	product.ImageKey = key
	product.ImageURL = imageURL
	if err := srv.productRepo.Update(ctx, product); err != nil {
		srv.deleteImage(ctx, key)

		return nil, translateNotFound(err, repository.ErrProductNotFound, domainerrors.ErrProductNotFound, "failed to update product image")
	}

	srv.deleteImage(ctx, previousKey)
	srv.log(ctx).Info("Product image uploaded", slog.Any("productID", productID), slog.String("key", key), slog.Int("bytes", len(data)))

	return product, nil
}

func (srv *catalogAdminService) applyProductInput(ctx context.Context, product *entity.Product, input *usecase.ProductInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domainerrors.ErrValidationFailed.WithDetails("product name is required")
	}
	if err := entity.ValidateAmount(input.Price); err != nil {
		return err
	}
	if input.Rating < 0 || input.Rating > 5 {
		return domainerrors.ErrValidationFailed.WithDetails("rating must be between 0 and 5")
	}
	if input.ReviewCount < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("review count must not be negative")
	}

	slug := strings.ToLower(strings.TrimSpace(input.Category))
	if _, err := srv.categoryRepo.FindBySlug(ctx, slug); err != nil {
		return translateNotFound(err, repository.ErrCategoryNotFound, domainerrors.ErrCategoryNotFound, "failed to find category")
	}

	product.Name = name
	product.Description = strings.TrimSpace(input.Description)
	product.Price = input.Price
	product.Category = slug
	product.Rating = input.Rating
	product.ReviewCount = input.ReviewCount
	product.VIPTier = input.VIPTier

	return nil
}

func (srv *catalogAdminService) findProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, translateNotFound(err, repository.ErrProductNotFound, domainerrors.ErrProductNotFound, "failed to find product")
	}

	return product, nil
}

func (srv *catalogAdminService) deleteImage(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := srv.images.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to delete product image", slog.String("key", key), slog.Any("error", err))
	}
}

// --- Categories ---

func (srv *catalogAdminService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *catalogAdminService) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{}
	if err := applyCategoryInput(category, input); err != nil {
		return nil, err
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicateCategory) {
			return nil, domainerrors.ErrConflict.WithDetails("category slug already exists")
		}

		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

// UpdateCategory keeps the slug immutable once products and access rows point at it.
func (srv *catalogAdminService) UpdateCategory(ctx context.Context, categoryID uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, translateNotFound(err, repository.ErrCategoryNotFound, domainerrors.ErrCategoryNotFound, "failed to find category")
	}

	slug := category.Slug
	if err := applyCategoryInput(category, input); err != nil {
		return nil, err
	}
	if category.Slug != slug {
		return nil, domainerrors.ErrValidationFailed.WithDetails("category slug cannot be changed")
	}

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, translateNotFound(err, repository.ErrCategoryNotFound, domainerrors.ErrCategoryNotFound, "failed to update category")
	}

	return category, nil
}

func (srv *catalogAdminService) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	if err := srv.categoryRepo.Delete(ctx, categoryID); err != nil {
		return translateNotFound(err, repository.ErrCategoryNotFound, domainerrors.ErrCategoryNotFound, "failed to delete category")
	}

	return nil
}

func applyCategoryInput(category *entity.Category, input *usecase.CategoryInput) error {
	slug := strings.ToLower(strings.TrimSpace(input.Slug))
	if !slugPattern.MatchString(slug) {
		return domainerrors.ErrValidationFailed.WithDetails("slug must be lowercase letters, digits and dashes")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domainerrors.ErrValidationFailed.WithDetails("category name is required")
	}
	if input.AccessPrice != nil && input.AccessPrice.IsNegative() {
		return domainerrors.ErrInvalidAmount
	}

	category.Slug = slug
	category.Name = name
	category.Description = strings.TrimSpace(input.Description)
	category.AccessPrice = input.AccessPrice
	category.VIPTier = input.VIPTier

	return nil
}

// --- Banners ---

func (srv *catalogAdminService) ListBanners(ctx context.Context) ([]*entity.Banner, error) {
	banners, err := srv.bannerRepo.List(ctx, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list banners")
	}

	return banners, nil
}

func (srv *catalogAdminService) CreateBanner(ctx context.Context, input *usecase.BannerInput) (*entity.Banner, error) {
	banner := &entity.Banner{}
	if err := applyBannerInput(banner, input); err != nil {
		return nil, err
	}

	if err := srv.bannerRepo.Create(ctx, banner); err != nil {
		return nil, errors.Wrap(err, "failed to create banner")
	}

	return banner, nil
}

func (srv *catalogAdminService) UpdateBanner(ctx context.Context, bannerID uuid.UUID, input *usecase.BannerInput) (*entity.Banner, error) {
	banner, err := srv.bannerRepo.FindByID(ctx, bannerID)
	if err != nil {
		return nil, translateNotFound(err, repository.ErrBannerNotFound, domainerrors.ErrBannerNotFound, "failed to find banner")
	}

	if err := applyBannerInput(banner, input); err != nil {
		return nil, err
	}

	if err := srv.bannerRepo.Update(ctx, banner); err != nil {
		return nil, translateNotFound(err, repository.ErrBannerNotFound, domainerrors.ErrBannerNotFound, "failed to update banner")
	}

	return banner, nil
}

func (srv *catalogAdminService) DeleteBanner(ctx context.Context, bannerID uuid.UUID) error {
	if err := srv.bannerRepo.Delete(ctx, bannerID); err != nil {
		return translateNotFound(err, repository.ErrBannerNotFound, domainerrors.ErrBannerNotFound, "failed to delete banner")
	}

	return nil
}

func applyBannerInput(banner *entity.Banner, input *usecase.BannerInput) error {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return domainerrors.ErrValidationFailed.WithDetails("banner title is required")
	}
	if strings.TrimSpace(input.ImageURL) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("banner image URL is required")
	}

	banner.Title = title
	banner.ImageURL = strings.TrimSpace(input.ImageURL)
	banner.LinkURL = strings.TrimSpace(input.LinkURL)
	banner.Active = input.Active
	banner.SortOrder = input.SortOrder

	return nil
}
