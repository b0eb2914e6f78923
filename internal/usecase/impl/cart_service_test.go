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

type cartServiceFixtures struct {
	service     *cartService
	txManager   *mockRepo.MockTransactionManager
	repos       *txRepos
	productRepo *mockRepo.MockProductRepository
	accessRepo  *mockRepo.MockCategoryAccessRepository
	orderRepo   *mockRepo.MockOrderRepository
	cartStore   *mockSvc.MockCartStore
	publisher   *mockSvc.MockEventPublisher
}

func createTestCartService(t *testing.T) *cartServiceFixtures {
	fx := &cartServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		repos:       newTxRepos(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		accessRepo:  mockRepo.NewMockCategoryAccessRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		cartStore:   mockSvc.NewMockCartStore(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}

	svc, err := NewCartService(CartServiceParams{
		TxManager:   fx.txManager,
		ProductRepo: fx.productRepo,
		AccessRepo:  fx.accessRepo,
		OrderRepo:   fx.orderRepo,
		CartStore:   fx.cartStore,
		Publisher:   fx.publisher,
		Config:      newTestConfig(0),
		Logger:      newDiscardLogger(),
	})
	require.NoError(t, err)
	fx.service = svc.(*cartService)

	return fx
}

func clientSession() *entity.Session {
	return &entity.Session{UserID: uuid.New(), Role: entity.RoleClient}
}

func newProduct(category, price string) *entity.Product {
	return &entity.Product{ID: uuid.New(), Name: "item-" + category, Category: category, Price: dec(price)}
}

func cartWith(userID uuid.UUID, lines ...entity.CartItem) *entity.Cart {
	cart := entity.NewCart(userID)
	cart.Items = append(cart.Items, lines...)

	return cart
}

func lineFor(product *entity.Product, quantity int) entity.CartItem {
	return entity.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Category:  product.Category,
		Price:     product.Price,
		Quantity:  quantity,
	}
}

func TestNewCartService_RejectsBadBonus(t *testing.T) {
	cfg := newTestConfig(0)
	cfg.Referral.BonusAmount = "ten"

	_, err := NewCartService(CartServiceParams{Config: cfg, Logger: newDiscardLogger()})

	require.Error(t, err)
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()
	basic := newProduct("basic", "12.50")
	premium := newProduct("premium", "80.00")

	tests := []struct {
		name      string
		productID uuid.UUID
		existing  int
		wantErr   error
		wantQty   int
	}{
		{name: "new line", productID: basic.ID, wantQty: 1},
		{name: "increments existing line", productID: basic.ID, existing: 2, wantQty: 3},
		{name: "gated category", productID: premium.ID, wantErr: domainerrors.ErrProductNotAccessible},
		{name: "unknown product", productID: uuid.New(), wantErr: domainerrors.ErrProductNotFound},
		{name: "line quantity cap", productID: basic.ID, existing: 5, wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCartService(t)
			session := clientSession()

			fx.productRepo.EXPECT().List(ctx).Return([]*entity.Product{basic, premium}, nil)
			fx.accessRepo.EXPECT().ListByUser(ctx, session.UserID).Return([]*entity.CategoryAccess{
				{Category: "basic", Enabled: true},
			}, nil)

			if tt.wantErr == nil || errors.Is(tt.wantErr, domainerrors.ErrValidationFailed) {
				cart := entity.NewCart(session.UserID)
				if tt.existing > 0 {
					cart = cartWith(session.UserID, lineFor(basic, tt.existing))
				}
				fx.cartStore.EXPECT().Load(ctx, session.UserID).Return(cart, nil)
			}
			if tt.wantErr == nil {
				fx.cartStore.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)
			}

			cart, err := fx.service.AddItem(ctx, session, tt.productID)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				fx.cartStore.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)

				return
			}
			require.NoError(t, err)
			require.Len(t, cart.Items, 1)
			assert.Equal(t, tt.wantQty, cart.Items[0].Quantity)
		})
	}
}

func TestCartService_UpdateQuantity(t *testing.T) {
	ctx := context.Background()
	product := newProduct("basic", "5.00")

	t.Run("zero removes the line", func(t *testing.T) {
		fx := createTestCartService(t)
		session := clientSession()
		fx.cartStore.EXPECT().Load(ctx, session.UserID).Return(cartWith(session.UserID, lineFor(product, 2)), nil)
		fx.cartStore.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)

		cart, err := fx.service.RemoveItem(ctx, session, product.ID)

		require.NoError(t, err)
		assert.True(t, cart.IsEmpty())
	})

	t.Run("missing line", func(t *testing.T) {
		fx := createTestCartService(t)
		session := clientSession()
		fx.cartStore.EXPECT().Load(ctx, session.UserID).Return(entity.NewCart(session.UserID), nil)

		_, err := fx.service.UpdateQuantity(ctx, session, product.ID, 1)

		assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))
	})

	t.Run("above cap", func(t *testing.T) {
		fx := createTestCartService(t)

		_, err := fx.service.UpdateQuantity(ctx, clientSession(), product.ID, 6)

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestCartService_Checkout_Preconditions(t *testing.T) {
	ctx := context.Background()

	t.Run("blank address", func(t *testing.T) {
		fx := createTestCartService(t)

		_, err := fx.service.Checkout(ctx, clientSession(), &usecase.CheckoutInput{
			ShippingAddress: "   ",
			PaymentMethod:   entity.PaymentMethodBalance,
		})

		assert.True(t, errors.Is(err, domainerrors.ErrEmptyAddress))
	})

	t.Run("unknown payment method", func(t *testing.T) {
		fx := createTestCartService(t)

		_, err := fx.service.Checkout(ctx, clientSession(), &usecase.CheckoutInput{
			ShippingAddress: "1 Main St",
			PaymentMethod:   "bitcoin",
		})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidPaymentMethod))
	})

	t.Run("empty cart", func(t *testing.T) {
		fx := createTestCartService(t)
		session := clientSession()
		fx.cartStore.EXPECT().Load(ctx, session.UserID).Return(entity.NewCart(session.UserID), nil)

		_, err := fx.service.Checkout(ctx, session, &usecase.CheckoutInput{
			ShippingAddress: "1 Main St",
			PaymentMethod:   entity.PaymentMethodBalance,
		})

		assert.True(t, errors.Is(err, domainerrors.ErrCartEmpty))
	})
}

// expectCheckoutSnapshot wires the in-transaction reads of a client checkout.
func (fx *cartServiceFixtures) expectCheckoutSnapshot(ctx context.Context, user *entity.User, products []*entity.Product, access []*entity.CategoryAccess) {
	expectTx(fx.txManager, fx.repos)
	fx.repos.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.repos.products.EXPECT().List(ctx).Return(products, nil)
	fx.repos.access.EXPECT().ListByUser(ctx, user.ID).Return(access, nil)
}

func TestCartService_Checkout_BalanceDrainedToZero(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	session := clientSession()
	user := &entity.User{ID: session.UserID, Balance: dec("25.00")}
	product := newProduct("basic", "12.50")
	cart := cartWith(session.UserID, lineFor(product, 2))

	fx.cartStore.EXPECT().Load(ctx, session.UserID).Return(cart, nil)
	fx.expectCheckoutSnapshot(ctx, user, []*entity.Product{product}, []*entity.CategoryAccess{{Category: "basic", Enabled: true}})
	fx.repos.users.EXPECT().DebitBalance(ctx, user.ID, dec("25.00")).Return(dec("0.00"), nil)
	fx.repos.orders.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) { order.ID = uuid.New() }).
		Return(nil)
	fx.cartStore.EXPECT().Delete(ctx, session.UserID).Return(nil)
	expectEvent(fx.publisher, entity.EventOrderPlaced)

	order, err := fx.service.Checkout(ctx, session, &usecase.CheckoutInput{
		ShippingAddress: " 1 Main St ",
		PaymentMethod:   entity.PaymentMethodBalance,
	})

	require.NoError(t, err)
	assert.True(t, order.TotalAmount.Equal(dec("25.00")))
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, "1 Main St", order.ShippingAddress)
	require.Len(t, order.Items, 1)
	assert.True(t, order.Items[0].UnitPrice.Equal(dec("12.50")))
	fx.repos.orders.AssertNotCalled(t, "CountByUser", mock.Anything, mock.Anything)
}

func TestCartService_Checkout_UsesCurrentPrice(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	session := clientSession()
	user := &entity.User{ID: session.UserID, Balance: dec("100.00")}
	product := newProduct("basic", "15.00")
	stale := lineFor(product, 1)
	stale.Price = dec("10.00")

	fx.cartStore.EXPECT().Load(ctx, session.UserID).Return(cartWith(session.UserID, stale), nil)
	fx.expectCheckoutSnapshot(ctx, user, []*entity.Product{product}, []*entity.CategoryAccess{{Category: "basic", Enabled: true}})
	fx.repos.users.EXPECT().DebitBalance(ctx, user.ID, dec("15.00")).Return(dec("85.00"), nil)
	fx.repos.orders.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.cartStore.EXPECT().Delete(ctx, session.UserID).Return(nil)
	expectEvent(fx.publisher, entity.EventOrderPlaced)

	order, err := fx.service.Checkout(ctx, session, &usecase.CheckoutInput{
		ShippingAddress: "1 Main St",
		PaymentMethod:   entity.PaymentMethodBalance,
	})

	require.NoError(t, err)
	assert.True(t, order.TotalAmount.Equal(dec("15.00")))
}

func TestCartService_Checkout_InsufficientBalanceKeepsCart(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	session := clientSession()
	user := &entity.User{ID: session.UserID, Balance: dec("24.99")}
	product := newProduct("basic", "12.50")

	fx.cartStore.EXPECT().Load(ctx, session.UserID).Return(cartWith(session.UserID, lineFor(product, 2)), nil)
	fx.expectCheckoutSnapshot(ctx, user, []*entity.Product{product}, []*entity.CategoryAccess{{Category: "basic", Enabled: true}})

	order, err := fx.service.Checkout(ctx, session, &usecase.CheckoutInput{
		ShippingAddress: "1 Main St",
		PaymentMethod:   entity.PaymentMethodBalance,
	})

	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientBalance))
	fx.repos.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.cartStore.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCartService_Checkout_RevokedAccessFails(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	session := clientSession()
	user := &entity.User{ID: session.UserID, Balance: dec("100.00")}
	product := newProduct("premium", "10.00")

	fx.cartStore.EXPECT().Load(ctx, session.UserID).Return(cartWith(session.UserID, lineFor(product, 1)), nil)
	fx.expectCheckoutSnapshot(ctx, user, []*entity.Product{product}, nil)

	_, err := fx.service.Checkout(ctx, session, &usecase.CheckoutInput{
		ShippingAddress: "1 Main St",
		PaymentMethod:   entity.PaymentMethodCard,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotAccessible))
}

func TestCartService_Checkout_CardSkipsDebit(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	session := clientSession()
	user := &entity.User{ID: session.UserID, Balance: dec("0.00")}
	product := newProduct("basic", "40.00")

	fx.cartStore.EXPECT().Load(ctx, session.UserID).Return(cartWith(session.UserID, lineFor(product, 1)), nil)
	fx.expectCheckoutSnapshot(ctx, user, []*entity.Product{product}, []*entity.CategoryAccess{{Category: "basic", Enabled: true}})
	fx.repos.orders.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.cartStore.EXPECT().Delete(ctx, session.UserID).Return(nil)
	expectEvent(fx.publisher, entity.EventOrderPlaced)

	order, err := fx.service.Checkout(ctx, session, &usecase.CheckoutInput{
		ShippingAddress: "1 Main St",
		PaymentMethod:   entity.PaymentMethodCard,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentMethodCard, order.PaymentMethod)
	fx.repos.users.AssertNotCalled(t, "DebitBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartService_Checkout_RecordsReferralOnFirstOrder(t *testing.T) {
	tests := []struct {
		name        string
		orderCount  int64
		wantReferral bool
	}{
		{name: "first order", orderCount: 1, wantReferral: true},
		{name: "later order", orderCount: 2, wantReferral: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCartService(t)
			ctx := context.Background()
			session := clientSession()
			referrerID := uuid.New()
			user := &entity.User{ID: session.UserID, Balance: dec("50.00"), ReferredBy: &referrerID}
			product := newProduct("basic", "10.00")

			fx.cartStore.EXPECT().Load(ctx, session.UserID).Return(cartWith(session.UserID, lineFor(product, 1)), nil)
			fx.expectCheckoutSnapshot(ctx, user, []*entity.Product{product}, []*entity.CategoryAccess{{Category: "basic", Enabled: true}})
			fx.repos.users.EXPECT().DebitBalance(ctx, user.ID, dec("10.00")).Return(dec("40.00"), nil)
			fx.repos.orders.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
			fx.repos.orders.EXPECT().CountByUser(ctx, user.ID).Return(tt.orderCount, nil)
			if tt.wantReferral {
				fx.repos.referrals.EXPECT().
					CreateIfAbsent(ctx, mock.MatchedBy(func(referral *entity.Referral) bool {
						return referral.ReferrerID == referrerID &&
							referral.ReferredID == user.ID &&
							referral.BonusAmount.Equal(dec("10.00")) &&
							referral.Status == entity.ReferralStatusPending
					})).
					Return(true, nil)
			}
			fx.cartStore.EXPECT().Delete(ctx, session.UserID).Return(nil)
			expectEvent(fx.publisher, entity.EventOrderPlaced)

			_, err := fx.service.Checkout(ctx, session, &usecase.CheckoutInput{
				ShippingAddress: "1 Main St",
				PaymentMethod:   entity.PaymentMethodBalance,
			})

			require.NoError(t, err)
			if !tt.wantReferral {
				fx.repos.referrals.AssertNotCalled(t, "CreateIfAbsent", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestCartService_Checkout_CartClearFailureStillSucceeds(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	session := clientSession()
	user := &entity.User{ID: session.UserID}
	product := newProduct("basic", "3.00")

	fx.cartStore.EXPECT().Load(ctx, session.UserID).Return(cartWith(session.UserID, lineFor(product, 1)), nil)
	fx.expectCheckoutSnapshot(ctx, user, []*entity.Product{product}, []*entity.CategoryAccess{{Category: "basic", Enabled: true}})
	fx.repos.orders.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.cartStore.EXPECT().Delete(ctx, session.UserID).Return(errors.New("redis down"))
	expectEvent(fx.publisher, entity.EventOrderPlaced)

	order, err := fx.service.Checkout(ctx, session, &usecase.CheckoutInput{
		ShippingAddress: "1 Main St",
		PaymentMethod:   entity.PaymentMethodCash,
	})

	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestCartService_GetOrder(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	order := &entity.Order{ID: uuid.New(), UserID: owner}

	t.Run("owner", func(t *testing.T) {
		fx := createTestCartService(t)
		fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

		got, err := fx.service.GetOrder(ctx, owner, order.ID)

		require.NoError(t, err)
		assert.Equal(t, order, got)
	})

	t.Run("someone else's order", func(t *testing.T) {
		fx := createTestCartService(t)
		fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

		_, err := fx.service.GetOrder(ctx, uuid.New(), order.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestCartService(t)
		fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(nil, repository.ErrOrderNotFound)

		_, err := fx.service.GetOrder(ctx, owner, order.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
	})
}
