package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service     *catalogService
	productRepo *mockRepo.MockProductRepository
	accessRepo  *mockRepo.MockCategoryAccessRepository
	bannerRepo  *mockRepo.MockBannerRepository
}

func createTestCatalogService(t *testing.T) *catalogServiceFixtures {
	fx := &catalogServiceFixtures{
		productRepo: mockRepo.NewMockProductRepository(t),
		accessRepo:  mockRepo.NewMockCategoryAccessRepository(t),
		bannerRepo:  mockRepo.NewMockBannerRepository(t),
	}
	fx.service = NewCatalogService(CatalogServiceParams{
		ProductRepo: fx.productRepo,
		AccessRepo:  fx.accessRepo,
		BannerRepo:  fx.bannerRepo,
		Logger:      newDiscardLogger(),
	}).(*catalogService)

	return fx
}

// catalogFixture is two enabled categories, one of them limited to two products,
// and one gated category.
func catalogFixture() ([]*entity.Product, []*entity.CategoryAccess) {
	products := []*entity.Product{
		{ID: uuid.New(), Name: "Blue Mug", Category: "kitchen", Price: dec("5")},
		{ID: uuid.New(), Name: "Gold Watch", Category: "premium", Price: dec("500")},
		{ID: uuid.New(), Name: "Red Mug", Category: "kitchen", Price: dec("6")},
		{ID: uuid.New(), Name: "Notebook", Category: "basic", Price: dec("2")},
		{ID: uuid.New(), Name: "Green Mug", Category: "kitchen", Price: dec("7")},
	}
	access := []*entity.CategoryAccess{
		{Category: "kitchen", Enabled: true, ProductLimit: 2},
		{Category: "basic", Enabled: true},
		{Category: "premium", Enabled: false},
	}

	return products, access
}

func productNames(products []*entity.Product) []string {
	names := make([]string, len(products))
	for i, product := range products {
		names[i] = product.Name
	}

	return names
}

func TestCatalogService_ListProducts(t *testing.T) {
	ctx := context.Background()
	products, access := catalogFixture()

	tests := []struct {
		name  string
		role  entity.Role
		query entity.CatalogQuery
		want  []string
	}{
		{
			name: "grouped by enabled category and limited",
			role: entity.RoleClient,
			want: []string{"Notebook", "Blue Mug", "Red Mug"},
		},
		{
			name:  "single category keeps the first items",
			role:  entity.RoleClient,
			query: entity.CatalogQuery{Category: "kitchen"},
			want:  []string{"Blue Mug", "Red Mug"},
		},
		{
			name:  "search applies before the limit",
			role:  entity.RoleClient,
			query: entity.CatalogQuery{Category: "kitchen", Search: "green"},
			want:  []string{"Green Mug"},
		},
		{
			name:  "gated category is empty",
			role:  entity.RoleClient,
			query: entity.CatalogQuery{Category: "premium"},
			want:  []string{},
		},
		{
			name: "admin sees everything in order",
			role: entity.RoleAdmin,
			want: []string{"Blue Mug", "Gold Watch", "Red Mug", "Notebook", "Green Mug"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)
			session := &entity.Session{UserID: uuid.New(), Role: tt.role}

			fx.productRepo.EXPECT().List(ctx).Return(products, nil)
			if tt.role != entity.RoleAdmin {
				fx.accessRepo.EXPECT().ListByUser(ctx, session.UserID).Return(access, nil)
			}

			got, err := fx.service.ListProducts(ctx, session, tt.query)

			require.NoError(t, err)
			assert.Equal(t, tt.want, productNames(got))
		})
	}
}

func TestCatalogService_GetProduct(t *testing.T) {
	ctx := context.Background()
	products, access := catalogFixture()
	session := &entity.Session{UserID: uuid.New(), Role: entity.RoleClient}

	tests := []struct {
		name    string
		product *entity.Product
		wantErr bool
	}{
		{name: "within the limit", product: products[0]},
		{name: "beyond the category limit", product: products[4], wantErr: true},
		{name: "gated category", product: products[1], wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)
			fx.productRepo.EXPECT().List(ctx).Return(products, nil)
			fx.accessRepo.EXPECT().ListByUser(ctx, session.UserID).Return(access, nil)

			got, err := fx.service.GetProduct(ctx, session, tt.product.ID)

			if tt.wantErr {
				assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.product, got)
		})
	}
}

func TestCatalogService_OrderableProducts(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	products, access := catalogFixture()
	session := &entity.Session{UserID: uuid.New(), Role: entity.RoleClient}

	fx.productRepo.EXPECT().List(ctx).Return(products, nil)
	fx.accessRepo.EXPECT().ListByUser(ctx, session.UserID).Return(access, nil)

	got, err := fx.service.OrderableProducts(ctx, session)

	require.NoError(t, err)
	assert.Equal(t, []string{"Notebook", "Blue Mug", "Red Mug"}, productNames(got))
}

func TestCatalogService_ListActiveBanners(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	banners := []*entity.Banner{{Title: "Spring sale", Active: true}}

	fx.bannerRepo.EXPECT().List(ctx, true).Return(banners, nil)

	got, err := fx.service.ListActiveBanners(ctx)

	require.NoError(t, err)
	assert.Equal(t, banners, got)
}
