package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// Catalog listings tolerate replica lag and are routed to read replicas.

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCategory
		}

		return domainerrors.NewUpstreamError(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ?", category.ID).
		Updates(map[string]any{
			"slug":         category.Slug,
			"name":         category.Name,
			"description":  category.Description,
			"access_price": category.AccessPrice,
			"vip_tier":     category.VIPTier,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateCategory
		}

		return domainerrors.NewUpstreamError(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

func (repo *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CategoryModel{})
	if result.Error != nil {
		return domainerrors.NewUpstreamError(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *categoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	return repo.findOne(ctx, "slug = ?", slug)
}

func (repo *categoryRepository) findOne(ctx context.Context, query string, arg any) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).Where(query, arg).First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, domainerrors.NewUpstreamError(err, "failed to find category")
	}

	return toCategoryDomain(&categoryM), nil
}

func (repo *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Order("slug ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, domainerrors.NewUpstreamError(err, "failed to list categories")
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i, categoryM := range categoryModels {
		categories[i] = toCategoryDomain(categoryM)
	}

	return categories, nil
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid product data")
		}

		return domainerrors.NewUpstreamError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":         product.Name,
			"description":  product.Description,
			"price":        product.Price,
			"category":     product.Category,
			"rating":       product.Rating,
			"review_count": product.ReviewCount,
			"vip_tier":     product.VIPTier,
			"image_key":    product.ImageKey,
			"image_url":    product.ImageURL,
		})
	if result.Error != nil {
		return domainerrors.NewUpstreamError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewUpstreamError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, domainerrors.NewUpstreamError(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&productModels).Error; err != nil {
		return nil, domainerrors.NewUpstreamError(err, "failed to find products")
	}

	return toProductDomains(productModels), nil
}

func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Order("created_at DESC").
		Order("id DESC").
		Find(&productModels).Error; err != nil {
		return nil, domainerrors.NewUpstreamError(err, "failed to list products")
	}

	return toProductDomains(productModels), nil
}

type bannerRepository struct {
	db *gorm.DB
}

// NewBannerRepository is the constructor for bannerRepository.
func NewBannerRepository(db *gorm.DB) repository.BannerRepository {
	return &bannerRepository{db: db}
}

func (repo *bannerRepository) Create(ctx context.Context, banner *entity.Banner) error {
	bannerM := fromBannerDomain(banner)

	if err := repo.db.WithContext(ctx).Create(bannerM).Error; err != nil {
		return domainerrors.NewUpstreamError(err, "failed to create banner")
	}

	banner.ID = bannerM.ID
	banner.CreatedAt = bannerM.CreatedAt
	banner.UpdatedAt = bannerM.UpdatedAt

	return nil
}

func (repo *bannerRepository) Update(ctx context.Context, banner *entity.Banner) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BannerModel{}).
		Where("id = ?", banner.ID).
		Updates(map[string]any{
			"title":      banner.Title,
			"image_url":  banner.ImageURL,
			"link_url":   banner.LinkURL,
			"active":     banner.Active,
			"sort_order": banner.SortOrder,
		})
	if result.Error != nil {
		return domainerrors.NewUpstreamError(result.Error, "failed to update banner")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBannerNotFound
	}

	return nil
}

func (repo *bannerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BannerModel{})
	if result.Error != nil {
		return domainerrors.NewUpstreamError(result.Error, "failed to delete banner")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBannerNotFound
	}

	return nil
}

func (repo *bannerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Banner, error) {
	var bannerM model.BannerModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&bannerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBannerNotFound
		}

		return nil, domainerrors.NewUpstreamError(err, "failed to find banner")
	}

	return toBannerDomain(&bannerM), nil
}

func (repo *bannerRepository) List(ctx context.Context, activeOnly bool) ([]*entity.Banner, error) {
	var bannerModels []*model.BannerModel

	query := repo.db.WithContext(ctx).Clauses(dbresolver.Read)
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.Order("sort_order ASC").Order("created_at ASC").Find(&bannerModels).Error; err != nil {
		return nil, domainerrors.NewUpstreamError(err, "failed to list banners")
	}

	banners := make([]*entity.Banner, len(bannerModels))
	for i, bannerM := range bannerModels {
		banners[i] = toBannerDomain(bannerM)
	}

	return banners, nil
}

func toCategoryDomain(m *model.CategoryModel) *entity.Category {
	return &entity.Category{
		ID:          m.ID,
		Slug:        m.Slug,
		Name:        m.Name,
		Description: m.Description,
		AccessPrice: m.AccessPrice,
		VIPTier:     m.VIPTier,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromCategoryDomain(c *entity.Category) *model.CategoryModel {
	return &model.CategoryModel{
		ID:          c.ID,
		Slug:        c.Slug,
		Name:        c.Name,
		Description: c.Description,
		AccessPrice: c.AccessPrice,
		VIPTier:     c.VIPTier,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toProductDomain(m *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Category:    m.Category,
		Rating:      m.Rating,
		ReviewCount: m.ReviewCount,
		VIPTier:     m.VIPTier,
		ImageKey:    m.ImageKey,
		ImageURL:    m.ImageURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toProductDomains(models []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, len(models))
	for i, m := range models {
		products[i] = toProductDomain(m)
	}

	return products
}

func fromProductDomain(p *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		VIPTier:     p.VIPTier,
		ImageKey:    p.ImageKey,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toBannerDomain(m *model.BannerModel) *entity.Banner {
	return &entity.Banner{
		ID:        m.ID,
		Title:     m.Title,
		ImageURL:  m.ImageURL,
		LinkURL:   m.LinkURL,
		Active:    m.Active,
		SortOrder: m.SortOrder,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromBannerDomain(b *entity.Banner) *model.BannerModel {
	return &model.BannerModel{
		ID:        b.ID,
		Title:     b.Title,
		ImageURL:  b.ImageURL,
		LinkURL:   b.LinkURL,
		Active:    b.Active,
		SortOrder: b.SortOrder,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
