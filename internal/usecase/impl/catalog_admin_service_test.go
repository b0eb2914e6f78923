package impl

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type catalogAdminServiceFixtures struct {
	service      *catalogAdminService
	categoryRepo *mockRepo.MockCategoryRepository
	productRepo  *mockRepo.MockProductRepository
	bannerRepo   *mockRepo.MockBannerRepository
	images       *mockSvc.MockImageStorage
}

func createTestCatalogAdminService(t *testing.T) *catalogAdminServiceFixtures {
	fx := &catalogAdminServiceFixtures{
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		bannerRepo:   mockRepo.NewMockBannerRepository(t),
		images:       mockSvc.NewMockImageStorage(t),
	}
	fx.service = NewCatalogAdminService(CatalogAdminServiceParams{
		CategoryRepo: fx.categoryRepo,
		ProductRepo:  fx.productRepo,
		BannerRepo:   fx.bannerRepo,
		Images:       fx.images,
		Config:       newTestConfig(0),
		Logger:       newDiscardLogger(),
	}).(*catalogAdminService)

	return fx
}

func TestCatalogAdminService_UploadProductImage_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{name: "empty", data: nil, wantErr: domainerrors.ErrValidationFailed},
		{name: "too large", data: append(bytes.Clone(pngHeader), make([]byte, 1024)...), wantErr: domainerrors.ErrImageTooLarge},
		{name: "not an image", data: []byte("<html><body>hi</body></html>"), wantErr: domainerrors.ErrUnsupportedImageType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogAdminService(t)

			_, err := fx.service.UploadProductImage(context.Background(), uuid.New(), tt.data)

			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			fx.images.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCatalogAdminService_UploadProductImage_ReplacesPrevious(t *testing.T) {
	fx := createTestCatalogAdminService(t)
	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), ImageKey: "products/old.png", ImageURL: "https://cdn/old.png"}

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.images.EXPECT().
		Upload(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "products/"+product.ID.String()+"/") && strings.HasSuffix(key, ".png")
		}), "image/png", pngHeader).
		Return("https://cdn/new.png", nil)
	fx.productRepo.EXPECT().Update(ctx, product).Return(nil)
	fx.images.EXPECT().Delete(ctx, "products/old.png").Return(nil)

	got, err := fx.service.UploadProductImage(ctx, product.ID, pngHeader)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn/new.png", got.ImageURL)
	assert.NotEqual(t, "products/old.png", got.ImageKey)
}

func TestCatalogAdminService_UploadProductImage_UpdateFailureCleansUp(t *testing.T) {
	fx := createTestCatalogAdminService(t)
	ctx := context.Background()
	product := &entity.Product{ID: uuid.New()}

	var uploadedKey string
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.images.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "image/png", pngHeader).
		Run(func(_ context.Context, key, _ string, _ []byte) { uploadedKey = key }).
		Return("https://cdn/new.png", nil)
	fx.productRepo.EXPECT().Update(ctx, product).Return(repository.ErrProductNotFound)
	fx.images.EXPECT().
		Delete(ctx, mock.AnythingOfType("string")).
		Run(func(_ context.Context, key string) { assert.Equal(t, uploadedKey, key) }).
		Return(nil).
		Once()

	_, err := fx.service.UploadProductImage(ctx, product.ID, pngHeader)

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogAdminService_CreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		fx := createTestCatalogAdminService(t)
		fx.categoryRepo.EXPECT().FindBySlug(ctx, "basic").Return(&entity.Category{Slug: "basic"}, nil)
		fx.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

		product, err := fx.service.CreateProduct(ctx, &usecase.ProductInput{
			Name:     " Mug ",
			Price:    dec("9.90"),
			Category: "Basic",
			Rating:   4.5,
		})

		require.NoError(t, err)
		assert.Equal(t, "Mug", product.Name)
		assert.Equal(t, "basic", product.Category)
	})

	invalid := []struct {
		name    string
		input   usecase.ProductInput
		wantErr error
	}{
		{name: "missing name", input: usecase.ProductInput{Price: dec("1"), Category: "basic"}, wantErr: domainerrors.ErrValidationFailed},
		{name: "zero price", input: usecase.ProductInput{Name: "x", Price: dec("0"), Category: "basic"}, wantErr: domainerrors.ErrInvalidAmount},
		{name: "rating out of range", input: usecase.ProductInput{Name: "x", Price: dec("1"), Rating: 6, Category: "basic"}, wantErr: domainerrors.ErrValidationFailed},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogAdminService(t)

			_, err := fx.service.CreateProduct(ctx, &tt.input)

			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}

	t.Run("unknown category", func(t *testing.T) {
		fx := createTestCatalogAdminService(t)
		fx.categoryRepo.EXPECT().FindBySlug(ctx, "ghost").Return(nil, repository.ErrCategoryNotFound)

		_, err := fx.service.CreateProduct(ctx, &usecase.ProductInput{Name: "x", Price: dec("1"), Category: "ghost"})

		assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
	})
}

func TestCatalogAdminService_CreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("bad slug", func(t *testing.T) {
		fx := createTestCatalogAdminService(t)

		_, err := fx.service.CreateCategory(ctx, &usecase.CategoryInput{Slug: "no spaces!", Name: "Bad"})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("duplicate slug", func(t *testing.T) {
		fx := createTestCatalogAdminService(t)
		fx.categoryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Category")).Return(repository.ErrDuplicateCategory)

		_, err := fx.service.CreateCategory(ctx, &usecase.CategoryInput{Slug: "premium", Name: "Premium"})

		assert.True(t, errors.Is(err, domainerrors.ErrConflict))
	})

	t.Run("valid", func(t *testing.T) {
		fx := createTestCatalogAdminService(t)
		fx.categoryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Category")).Return(nil)

		category, err := fx.service.CreateCategory(ctx, &usecase.CategoryInput{Slug: "home-decor", Name: "Home", AccessPrice: decPtr("5")})

		require.NoError(t, err)
		assert.Equal(t, "home-decor", category.Slug)
	})
}

func TestCatalogAdminService_UpdateCategory_SlugIsImmutable(t *testing.T) {
	fx := createTestCatalogAdminService(t)
	ctx := context.Background()
	category := &entity.Category{ID: uuid.New(), Slug: "premium", Name: "Premium"}

	fx.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)

	_, err := fx.service.UpdateCategory(ctx, category.ID, &usecase.CategoryInput{Slug: "gold", Name: "Gold"})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	fx.categoryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCatalogAdminService_Banners(t *testing.T) {
	ctx := context.Background()

	t.Run("title required", func(t *testing.T) {
		fx := createTestCatalogAdminService(t)

		_, err := fx.service.CreateBanner(ctx, &usecase.BannerInput{ImageURL: "https://cdn/b.png"})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("admin list includes inactive", func(t *testing.T) {
		fx := createTestCatalogAdminService(t)
		fx.bannerRepo.EXPECT().List(ctx, false).Return([]*entity.Banner{{Title: "off", Active: false}}, nil)

		banners, err := fx.service.ListBanners(ctx)

		require.NoError(t, err)
		assert.Len(t, banners, 1)
	})

	t.Run("delete missing", func(t *testing.T) {
		fx := createTestCatalogAdminService(t)
		bannerID := uuid.New()
		fx.bannerRepo.EXPECT().Delete(ctx, bannerID).Return(repository.ErrBannerNotFound)

		err := fx.service.DeleteBanner(ctx, bannerID)

		assert.True(t, errors.Is(err, domainerrors.ErrBannerNotFound))
	})
}
