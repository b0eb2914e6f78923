package impl

import (
	"context"
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

type accessServiceFixtures struct {
	service           *accessService
	txManager         *mockRepo.MockTransactionManager
	repos             *txRepos
	categoryRepo      *mockRepo.MockCategoryRepository
	accessRepo        *mockRepo.MockCategoryAccessRepository
	accessRequestRepo *mockRepo.MockAccessRequestRepository
	publisher         *mockSvc.MockEventPublisher
}

func createTestAccessService(t *testing.T) *accessServiceFixtures {
	fx := &accessServiceFixtures{
		txManager:         mockRepo.NewMockTransactionManager(t),
		repos:             newTxRepos(t),
		categoryRepo:      mockRepo.NewMockCategoryRepository(t),
		accessRepo:        mockRepo.NewMockCategoryAccessRepository(t),
		accessRequestRepo: mockRepo.NewMockAccessRequestRepository(t),
		publisher:         mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewAccessService(AccessServiceParams{
		TxManager:         fx.txManager,
		CategoryRepo:      fx.categoryRepo,
		AccessRepo:        fx.accessRepo,
		AccessRequestRepo: fx.accessRequestRepo,
		Publisher:         fx.publisher,
		Logger:            newDiscardLogger(),
	}).(*accessService)

	return fx
}

// expectPurchaseLookups wires the reads PurchaseAccess performs before deciding to debit.
func (fx *accessServiceFixtures) expectPurchaseLookups(
	ctx context.Context,
	userID uuid.UUID,
	category *entity.Category,
	access *entity.CategoryAccess,
	current *entity.AccessRequest,
) {
	expectTx(fx.txManager, fx.repos)
	fx.repos.categories.EXPECT().FindBySlug(ctx, category.Slug).Return(category, nil)

	if access != nil {
		fx.repos.access.EXPECT().FindByUserAndCategory(ctx, userID, category.Slug).Return(access, nil)
	} else {
		fx.repos.access.EXPECT().FindByUserAndCategory(ctx, userID, category.Slug).Return(nil, repository.ErrCategoryAccessNotFound)
	}

	if current != nil {
		fx.repos.accessRequests.EXPECT().FindCurrent(ctx, userID, category.Slug).Return(current, nil)
	} else {
		fx.repos.accessRequests.EXPECT().FindCurrent(ctx, userID, category.Slug).Return(nil, repository.ErrAccessRequestNotFound)
	}
}

func TestAccessService_PurchaseAccess_Success(t *testing.T) {
	fx := createTestAccessService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Balance: dec("80.00")}
	category := &entity.Category{Slug: "premium", AccessPrice: decPtr("50.00")}

	fx.expectPurchaseLookups(ctx, user.ID, category, nil, nil)
	fx.repos.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.repos.users.EXPECT().DebitBalance(ctx, user.ID, dec("50.00")).Return(dec("30.00"), nil)
	fx.repos.accessRequests.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AccessRequest")).
		Run(func(_ context.Context, request *entity.AccessRequest) {
			request.ID = uuid.New()
			request.IsCurrent = true
		}).
		Return(nil)
	expectEvent(fx.publisher, entity.EventAccessRequestCreated)

	request, err := fx.service.PurchaseAccess(ctx, user.ID, "  Premium ")

	require.NoError(t, err)
	assert.Equal(t, "premium", request.Category)
	assert.Equal(t, entity.ReviewStatusPending, request.Status)
	assert.True(t, request.PricePaid.Equal(dec("50.00")))
	assert.True(t, request.IsCurrent)
}

func TestAccessService_PurchaseAccess_InsufficientBalance(t *testing.T) {
	fx := createTestAccessService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Balance: dec("30.00")}
	category := &entity.Category{Slug: "premium", AccessPrice: decPtr("50.00")}

	fx.expectPurchaseLookups(ctx, user.ID, category, nil, nil)
	fx.repos.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	request, err := fx.service.PurchaseAccess(ctx, user.ID, "premium")

	assert.Nil(t, request)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientBalance))
	fx.repos.users.AssertNotCalled(t, "DebitBalance", mock.Anything, mock.Anything, mock.Anything)
	fx.repos.accessRequests.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccessService_PurchaseAccess_PerUserPriceWins(t *testing.T) {
	fx := createTestAccessService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Balance: dec("25.00")}
	category := &entity.Category{Slug: "vip", AccessPrice: decPtr("50.00")}
	access := &entity.CategoryAccess{UserID: user.ID, Category: "vip", Enabled: false, Price: decPtr("20.00")}

	fx.expectPurchaseLookups(ctx, user.ID, category, access, nil)
	fx.repos.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.repos.users.EXPECT().DebitBalance(ctx, user.ID, dec("20.00")).Return(dec("5.00"), nil)
	fx.repos.accessRequests.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AccessRequest")).Return(nil)
	expectEvent(fx.publisher, entity.EventAccessRequestCreated)

	request, err := fx.service.PurchaseAccess(ctx, user.ID, "vip")

	require.NoError(t, err)
	assert.True(t, request.PricePaid.Equal(dec("20.00")))
}

func TestAccessService_PurchaseAccess_RepurchaseAfterRejection(t *testing.T) {
	fx := createTestAccessService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Balance: dec("100.00")}
	category := &entity.Category{Slug: "premium", AccessPrice: decPtr("50.00")}
	rejected := &entity.AccessRequest{ID: uuid.New(), Status: entity.ReviewStatusRejected, IsCurrent: true}

	fx.expectPurchaseLookups(ctx, user.ID, category, nil, rejected)
	fx.repos.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.repos.users.EXPECT().DebitBalance(ctx, user.ID, dec("50.00")).Return(dec("50.00"), nil)
	fx.repos.accessRequests.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AccessRequest")).Return(nil)
	expectEvent(fx.publisher, entity.EventAccessRequestCreated)

	_, err := fx.service.PurchaseAccess(ctx, user.ID, "premium")

	require.NoError(t, err)
}

func TestAccessService_PurchaseAccess_Refused(t *testing.T) {
	tests := []struct {
		name     string
		category *entity.Category
		access   *entity.CategoryAccess
		current  *entity.AccessRequest
		wantErr  error
	}{
		{
			name:     "pending request exists",
			category: &entity.Category{Slug: "premium", AccessPrice: decPtr("50.00")},
			current:  &entity.AccessRequest{Status: entity.ReviewStatusPending, IsCurrent: true},
			wantErr:  domainerrors.ErrDuplicatePendingRequest,
		},
		{
			name:     "already granted",
			category: &entity.Category{Slug: "premium", AccessPrice: decPtr("50.00")},
			access:   &entity.CategoryAccess{Category: "premium", Enabled: true},
			wantErr:  domainerrors.ErrAccessAlreadyGranted,
		},
		{
			name:     "no price",
			category: &entity.Category{Slug: "premium"},
			wantErr:  domainerrors.ErrCategoryNotForSale,
		},
		{
			name:     "zero price override",
			category: &entity.Category{Slug: "premium", AccessPrice: decPtr("50.00")},
			access:   &entity.CategoryAccess{Category: "premium", Price: decPtr("0")},
			wantErr:  domainerrors.ErrCategoryNotForSale,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccessService(t)
			ctx := context.Background()
			userID := uuid.New()

			fx.expectPurchaseLookups(ctx, userID, tt.category, tt.access, tt.current)

			request, err := fx.service.PurchaseAccess(ctx, userID, tt.category.Slug)

			assert.Nil(t, request)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			fx.repos.users.AssertNotCalled(t, "DebitBalance", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestAccessService_PurchaseAccess_UnknownCategory(t *testing.T) {
	fx := createTestAccessService(t)
	ctx := context.Background()

	expectTx(fx.txManager, fx.repos)
	fx.repos.categories.EXPECT().FindBySlug(ctx, "ghost").Return(nil, repository.ErrCategoryNotFound)

	_, err := fx.service.PurchaseAccess(ctx, uuid.New(), "ghost")

	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestAccessService_PurchaseAccess_ConcurrentPurchaseRollsBack(t *testing.T) {
	fx := createTestAccessService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Balance: dec("100.00")}
	category := &entity.Category{Slug: "premium", AccessPrice: decPtr("50.00")}

	fx.expectPurchaseLookups(ctx, user.ID, category, nil, nil)
	fx.repos.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.repos.users.EXPECT().DebitBalance(ctx, user.ID, dec("50.00")).Return(dec("50.00"), nil)
	fx.repos.accessRequests.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AccessRequest")).
		Return(domainerrors.ErrDuplicatePendingRequest)

	_, err := fx.service.PurchaseAccess(ctx, user.ID, "premium")

	assert.True(t, errors.Is(err, domainerrors.ErrDuplicatePendingRequest))
}

func TestAccessService_IsAccessible(t *testing.T) {
	ctx := context.Background()

	t.Run("admin bypasses the gate", func(t *testing.T) {
		fx := createTestAccessService(t)

		ok, err := fx.service.IsAccessible(ctx, &entity.Session{UserID: uuid.New(), Role: entity.RoleAdmin}, "premium")

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("no access row", func(t *testing.T) {
		fx := createTestAccessService(t)
		session := &entity.Session{UserID: uuid.New(), Role: entity.RoleClient}
		fx.accessRepo.EXPECT().FindByUserAndCategory(ctx, session.UserID, "premium").Return(nil, repository.ErrCategoryAccessNotFound)

		ok, err := fx.service.IsAccessible(ctx, session, "premium")

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("disabled row", func(t *testing.T) {
		fx := createTestAccessService(t)
		session := &entity.Session{UserID: uuid.New(), Role: entity.RoleClient}
		fx.accessRepo.EXPECT().FindByUserAndCategory(ctx, session.UserID, "premium").
			Return(&entity.CategoryAccess{Category: "premium", Enabled: false}, nil)

		ok, err := fx.service.IsAccessible(ctx, session, "premium")

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("enabled row", func(t *testing.T) {
		fx := createTestAccessService(t)
		session := &entity.Session{UserID: uuid.New(), Role: entity.RoleClient}
		fx.accessRepo.EXPECT().FindByUserAndCategory(ctx, session.UserID, "premium").
			Return(&entity.CategoryAccess{Category: "premium", Enabled: true}, nil)

		ok, err := fx.service.IsAccessible(ctx, session, "premium")

		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestAccessService_ListCategories(t *testing.T) {
	ctx := context.Background()
	categories := []*entity.Category{
		{Slug: "basic", AccessPrice: decPtr("10.00")},
		{Slug: "premium", AccessPrice: decPtr("50.00")},
		{Slug: "vip"},
	}

	t.Run("client sees derived states", func(t *testing.T) {
		fx := createTestAccessService(t)
		session := &entity.Session{UserID: uuid.New(), Role: entity.RoleClient}

		fx.categoryRepo.EXPECT().List(ctx).Return(categories, nil)
		fx.accessRepo.EXPECT().ListByUser(ctx, session.UserID).Return([]*entity.CategoryAccess{
			{Category: "basic", Enabled: true, ProductLimit: 3},
			{Category: "vip", Price: decPtr("99.00")},
		}, nil)
		fx.accessRequestRepo.EXPECT().ListCurrentByUser(ctx, session.UserID).Return([]*entity.AccessRequest{
			{Category: "premium", Status: entity.ReviewStatusPending, IsCurrent: true},
		}, nil)

		views, err := fx.service.ListCategories(ctx, session)

		require.NoError(t, err)
		require.Len(t, views, 3)
		byCategory := make(map[string]*usecase.CategoryView, len(views))
		for _, view := range views {
			byCategory[view.Category.Slug] = view
		}
		assert.Equal(t, entity.AccessStateGranted, byCategory["basic"].State)
		assert.Equal(t, 3, byCategory["basic"].ProductLimit)
		assert.Equal(t, entity.AccessStateRequestPending, byCategory["premium"].State)
		assert.Equal(t, entity.AccessStateNoAccess, byCategory["vip"].State)
		require.NotNil(t, byCategory["vip"].Price)
		assert.True(t, byCategory["vip"].Price.Equal(dec("99.00")))
	})

	t.Run("admin sees everything granted", func(t *testing.T) {
		fx := createTestAccessService(t)
		session := &entity.Session{UserID: uuid.New(), Role: entity.RoleAdmin}

		fx.categoryRepo.EXPECT().List(ctx).Return(categories, nil)
		fx.accessRepo.EXPECT().ListByUser(ctx, session.UserID).Return(nil, nil)
		fx.accessRequestRepo.EXPECT().ListCurrentByUser(ctx, session.UserID).Return(nil, nil)

		views, err := fx.service.ListCategories(ctx, session)

		require.NoError(t, err)
		for _, view := range views {
			assert.Equal(t, entity.AccessStateGranted, view.State)
		}
	})
}
