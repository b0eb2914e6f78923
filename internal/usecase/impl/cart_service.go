package impl

import (
	"context"
	"log/slog"
	"strconv"
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
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const defaultMaxLineQuantity = 99

type cartService struct {
	txManager       repository.TransactionManager
	productRepo     repository.ProductRepository
	accessRepo      repository.CategoryAccessRepository
	orderRepo       repository.OrderRepository
	cartStore       service.CartStore
	events          eventEmitter
	maxLineQuantity int
	referralBonus   decimal.Decimal
	logger          *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	AccessRepo  repository.CategoryAccessRepository
	OrderRepo   repository.OrderRepository
	CartStore   service.CartStore
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCartService creates the cart and checkout service.
func NewCartService(params CartServiceParams) (usecase.CartUsecase, error) {
	maxLineQuantity := defaultMaxLineQuantity
	if params.Config != nil && params.Config.Cart != nil && params.Config.Cart.MaxLineQuantity > 0 {
		maxLineQuantity = params.Config.Cart.MaxLineQuantity
	}

	bonus, err := parseReferralBonus(params.Config)
	if err != nil {
		return nil, err
	}

	return &cartService{
		txManager:       params.TxManager,
		productRepo:     params.ProductRepo,
		accessRepo:      params.AccessRepo,
		orderRepo:       params.OrderRepo,
		cartStore:       params.CartStore,
		events:          newEventEmitter(params.Publisher, params.Logger),
		maxLineQuantity: maxLineQuantity,
		referralBonus:   bonus,
		logger:          params.Logger,
	}, nil
}

func parseReferralBonus(cfg *config.Config) (decimal.Decimal, error) {
	if cfg == nil || cfg.Referral == nil || strings.TrimSpace(cfg.Referral.BonusAmount) == "" {
		return decimal.Zero, nil
	}

	bonus, err := decimal.NewFromString(cfg.Referral.BonusAmount)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "invalid referral.bonusAmount %q", cfg.Referral.BonusAmount)
	}
	if bonus.IsNegative() {
		return decimal.Zero, errors.Errorf("referral.bonusAmount must not be negative, got %s", bonus)
	}

	return bonus, nil
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) GetCart(ctx context.Context, session *entity.Session) (*entity.Cart, error) {
	cart, err := srv.cartStore.Load(ctx, session.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return cart, nil
}

// AddItem puts one more unit of an orderable product in the cart.
func (srv *cartService) AddItem(ctx context.Context, session *entity.Session, productID uuid.UUID) (*entity.Cart, error) {
	snapshot, err := loadCatalogSnapshot(ctx, srv.productRepo, srv.accessRepo, session)
	if err != nil {
		return nil, err
	}

	product, ok := snapshot.byID[productID]
	if !ok {
		return nil, domainerrors.ErrProductNotFound
	}
	if !snapshot.isOrderable(productID) {
		return nil, domainerrors.ErrProductNotAccessible
	}

	cart, err := srv.GetCart(ctx, session)
	if err != nil {
		return nil, err
	}

	cart.AddToCart(product)
	for _, item := range cart.Items {
		if item.ProductID == productID && item.Quantity > srv.maxLineQuantity {
			return nil, domainerrors.ErrValidationFailed.WithDetails("quantity exceeds " + strconv.Itoa(srv.maxLineQuantity))
		}
	}

	return srv.save(ctx, cart)
}

func (srv *cartService) UpdateQuantity(ctx context.Context, session *entity.Session, productID uuid.UUID, quantity int) (*entity.Cart, error) {
	if quantity > srv.maxLineQuantity {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity exceeds " + strconv.Itoa(srv.maxLineQuantity))
	}

	cart, err := srv.GetCart(ctx, session)
	if err != nil {
		return nil, err
	}

	if err := cart.UpdateQuantity(productID, quantity); err != nil {
		return nil, err
	}

	return srv.save(ctx, cart)
}

func (srv *cartService) RemoveItem(ctx context.Context, session *entity.Session, productID uuid.UUID) (*entity.Cart, error) {
	return srv.UpdateQuantity(ctx, session, productID, 0)
}

func (srv *cartService) Clear(ctx context.Context, session *entity.Session) error {
	if err := srv.cartStore.Delete(ctx, session.UserID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

func (srv *cartService) save(ctx context.Context, cart *entity.Cart) (*entity.Cart, error) {
	if err := srv.cartStore.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return cart, nil
}

// Checkout turns the cart into an order. Re-validating the items, snapshotting prices,
// the balance debit and the order insert commit or roll back together.
func (srv *cartService) Checkout(ctx context.Context, session *entity.Session, input *usecase.CheckoutInput) (*entity.Order, error) {
	if strings.TrimSpace(input.ShippingAddress) == "" {
		return nil, domainerrors.ErrEmptyAddress
	}
	if !input.PaymentMethod.IsValid() {
		return nil, domainerrors.ErrInvalidPaymentMethod
	}

	cart, err := srv.GetCart(ctx, session)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, domainerrors.ErrCartEmpty
	}

	srv.log(ctx).Info("Starting checkout",
		slog.Any("userID", session.UserID),
		slog.Int("lines", len(cart.Items)),
		slog.String("payment_method", string(input.PaymentMethod)),
	)

	var (
		order            *entity.Order
		referralRecorded bool
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		user, err := findUser(ctx, userRepo, session.UserID)
		if err != nil {
			return err
		}

		snapshot, err := loadCatalogSnapshot(ctx, repoFactory.ProductRepo(), repoFactory.CategoryAccessRepo(), session)
		if err != nil {
			return err
		}
		for _, productID := range cart.ProductIDs() {
			if _, ok := snapshot.byID[productID]; !ok {
				return domainerrors.ErrProductNotFound.WithDetails(productID.String())
			}
			if !snapshot.isOrderable(productID) {
				return domainerrors.ErrProductNotAccessible.WithDetails(productID.String())
			}
		}

		order, err = entity.NewOrderFromCart(cart, snapshot.byID, input.ShippingAddress, input.PaymentMethod)
		if err != nil {
			return err
		}

		if order.PaymentMethod == entity.PaymentMethodBalance {
			if _, err := debitBalance(ctx, userRepo, user.ID, user.Balance, order.TotalAmount); err != nil {
				return err
			}
		}

		orderRepo := repoFactory.OrderRepo()
		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		referralRecorded, err = srv.recordReferral(ctx, repoFactory, user)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Checkout failed", slog.Any("userID", session.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to checkout")
	}

	// The order is committed; a stale cart is only an inconvenience.
	if err := srv.cartStore.Delete(ctx, session.UserID); err != nil {
		srv.log(ctx).Error("Failed to clear cart after checkout", slog.Any("userID", session.UserID), slog.Any("error", err))
	}

	srv.events.emit(ctx, entity.EventOrderPlaced, order.UserID, order.ID.String(), map[string]string{
		"total":          order.TotalAmount.StringFixed(2),
		"payment_method": string(order.PaymentMethod),
		"referral":       strconv.FormatBool(referralRecorded),
	})
	srv.log(ctx).Info("Order placed", slog.Any("orderID", order.ID), slog.String("total", order.TotalAmount.StringFixed(2)))

	return order, nil
}

// recordReferral files the referrer's bonus on a referred user's first order.
func (srv *cartService) recordReferral(ctx context.Context, repoFactory repository.RepositoryFactory, user *entity.User) (bool, error) {
	if user.ReferredBy == nil || !srv.referralBonus.IsPositive() {
		return false, nil
	}

	count, err := repoFactory.OrderRepo().CountByUser(ctx, user.ID)
	if err != nil {
		return false, errors.Wrap(err, "failed to count orders")
	}
	if count != 1 {
		return false, nil
	}

	created, err := repoFactory.ReferralRepo().CreateIfAbsent(ctx, &entity.Referral{
		ReferrerID:  *user.ReferredBy,
		ReferredID:  user.ID,
		BonusAmount: srv.referralBonus,
		Status:      entity.ReferralStatusPending,
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to record referral")
	}

	return created, nil
}

func (srv *cartService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder only returns orders owned by userID.
func (srv *cartService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}
	if order.UserID != userID {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}
