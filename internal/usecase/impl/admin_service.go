package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

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

type adminService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	categoryRepo      repository.CategoryRepository
	accessRepo        repository.CategoryAccessRepository
	accessRequestRepo repository.AccessRequestRepository
	transactionRepo   repository.TransactionRepository
	orderRepo         repository.OrderRepository
	referralRepo      repository.ReferralRepository
	events            eventEmitter
	now               func() time.Time
	logger            *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	UserRepo          repository.UserRepository
	CategoryRepo      repository.CategoryRepository
	AccessRepo        repository.CategoryAccessRepository
	AccessRequestRepo repository.AccessRequestRepository
	TransactionRepo   repository.TransactionRepository
	OrderRepo         repository.OrderRepository
	ReferralRepo      repository.ReferralRepository
	Publisher         service.EventPublisher
	Logger            *slog.Logger
}

// NewAdminService creates the back-office service.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		categoryRepo:      params.CategoryRepo,
		accessRepo:        params.AccessRepo,
		accessRequestRepo: params.AccessRequestRepo,
		transactionRepo:   params.TransactionRepo,
		orderRepo:         params.OrderRepo,
		referralRepo:      params.ReferralRepo,
		events:            newEventEmitter(params.Publisher, params.Logger),
		now:               time.Now,
		logger:            params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- Users and access ---

func (srv *adminService) ListUsers(ctx context.Context, page repository.Page) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *adminService) GetUserAccess(ctx context.Context, userID uuid.UUID) (*usecase.UserAccessOutput, error) {
	user, err := findUser(ctx, srv.userRepo, userID)
	if err != nil {
		return nil, err
	}

	access, err := srv.accessRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list category access")
	}

	requests, err := srv.accessRequestRepo.ListCurrentByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list access requests")
	}

	return &usecase.UserAccessOutput{User: user, Access: access, Requests: requests}, nil
}

// SetCategoryAccess creates or replaces the gate row for (user, category).
func (srv *adminService) SetCategoryAccess(ctx context.Context, userID uuid.UUID, input *usecase.SetCategoryAccessInput) (*entity.CategoryAccess, error) {
	slug := strings.ToLower(strings.TrimSpace(input.Category))
	if input.ProductLimit < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product limit must not be negative")
	}
	if input.Price != nil && input.Price.IsNegative() {
		return nil, domainerrors.ErrInvalidAmount
	}

	if _, err := findUser(ctx, srv.userRepo, userID); err != nil {
		return nil, err
	}
	if _, err := srv.categoryRepo.FindBySlug(ctx, slug); err != nil {
		return nil, translateNotFound(err, repository.ErrCategoryNotFound, domainerrors.ErrCategoryNotFound, "failed to find category")
	}

	access := &entity.CategoryAccess{
		UserID:       userID,
		Category:     slug,
		Enabled:      input.Enabled,
		ProductLimit: input.ProductLimit,
		Price:        input.Price,
	}
	if err := srv.accessRepo.Upsert(ctx, access); err != nil {
		return nil, errors.Wrap(err, "failed to set category access")
	}

	srv.log(ctx).Info("Category access updated",
		slog.Any("userID", userID),
		slog.String("category", slug),
		slog.Bool("enabled", input.Enabled),
		slog.Int("limit", input.ProductLimit),
	)

	return access, nil
}

// --- Access requests ---

func (srv *adminService) ListAccessRequests(ctx context.Context, status entity.ReviewStatus, page repository.Page) ([]*entity.AccessRequest, error) {
	if status != "" && !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status " + string(status))
	}

	requests, err := srv.accessRequestRepo.ListByStatus(ctx, status, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list access requests")
	}

	return requests, nil
}

// ApproveAccessRequest enables the category, keeping any limit and price already set.
func (srv *adminService) ApproveAccessRequest(ctx context.Context, adminID, requestID uuid.UUID, note string) (*entity.AccessRequest, error) {
	return srv.reviewAccessRequest(ctx, adminID, requestID, entity.ReviewStatusApproved, note)
}

// RejectAccessRequest closes the request. The price paid stays debited.
func (srv *adminService) RejectAccessRequest(ctx context.Context, adminID, requestID uuid.UUID, note string) (*entity.AccessRequest, error) {
	return srv.reviewAccessRequest(ctx, adminID, requestID, entity.ReviewStatusRejected, note)
}

func (srv *adminService) reviewAccessRequest(
	ctx context.Context,
	adminID, requestID uuid.UUID,
	status entity.ReviewStatus,
	note string,
) (*entity.AccessRequest, error) {
	var request *entity.AccessRequest
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		requestRepo := repoFactory.AccessRequestRepo()

		found, err := requestRepo.FindByID(ctx, requestID)
		if err != nil {
			return translateNotFound(err, repository.ErrAccessRequestNotFound, domainerrors.ErrAccessRequestNotFound, "failed to find access request")
		}
		if found.Status != entity.ReviewStatusPending {
			return domainerrors.ErrAlreadyReviewed
		}

		reviewedAt := srv.now()
		found.Status = status
		found.AdminNote = strings.TrimSpace(note)
		found.ReviewedBy = &adminID
		found.ReviewedAt = &reviewedAt
		if err := requestRepo.Review(ctx, found); err != nil {
			return translateNotFound(err, repository.ErrAccessRequestNotFound, domainerrors.ErrAccessRequestNotFound, "failed to review access request")
		}

		if status == entity.ReviewStatusApproved {
			if err := srv.enableAccess(ctx, repoFactory.CategoryAccessRepo(), found); err != nil {
				return err
			}
		}
		request = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Access request review failed", slog.Any("requestID", requestID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to review access request")
	}

	srv.events.emit(ctx, entity.EventAccessRequestReviewed, request.UserID, request.ID.String(), map[string]string{
		"category": request.Category,
		"status":   string(request.Status),
	})
	srv.log(ctx).Info("Access request reviewed", slog.Any("requestID", requestID), slog.String("status", string(status)))

	return request, nil
}

func (srv *adminService) enableAccess(ctx context.Context, accessRepo repository.CategoryAccessRepository, request *entity.AccessRequest) error {
	access, err := accessRepo.FindByUserAndCategory(ctx, request.UserID, request.Category)
	if err != nil {
		if !errors.Is(err, repository.ErrCategoryAccessNotFound) {
			return errors.Wrap(err, "failed to find category access")
		}
		access = &entity.CategoryAccess{UserID: request.UserID, Category: request.Category}
	}
	access.Enabled = true

	if err := accessRepo.Upsert(ctx, access); err != nil {
		return errors.Wrap(err, "failed to enable category access")
	}

	return nil
}

// --- Transactions ---

func (srv *adminService) ListTransactions(ctx context.Context, status entity.ReviewStatus, page repository.Page) ([]*entity.Transaction, error) {
	if status != "" && !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status " + string(status))
	}

	transactions, err := srv.transactionRepo.ListByStatus(ctx, status, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return transactions, nil
}

// ApproveTransaction moves the money: deposits credit, withdrawals debit conditionally.
func (srv *adminService) ApproveTransaction(ctx context.Context, adminID, transactionID uuid.UUID) (*entity.Transaction, error) {
	return srv.reviewTransaction(ctx, adminID, transactionID, entity.ReviewStatusApproved, "")
}

func (srv *adminService) RejectTransaction(ctx context.Context, adminID, transactionID uuid.UUID, reason string) (*entity.Transaction, error) {
	return srv.reviewTransaction(ctx, adminID, transactionID, entity.ReviewStatusRejected, reason)
}

func (srv *adminService) reviewTransaction(
	ctx context.Context,
	adminID, transactionID uuid.UUID,
	status entity.ReviewStatus,
	reason string,
) (*entity.Transaction, error) {
	var tx *entity.Transaction
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		transactionRepo := repoFactory.TransactionRepo()

		found, err := transactionRepo.FindByID(ctx, transactionID)
		if err != nil {
			return translateNotFound(err, repository.ErrTransactionNotFound, domainerrors.ErrTransactionNotFound, "failed to find transaction")
		}
		if !found.IsPending() {
			return domainerrors.ErrAlreadyReviewed
		}

		if status == entity.ReviewStatusApproved {
			if err := srv.applyTransaction(ctx, repoFactory.UserRepo(), found); err != nil {
				return err
			}
		}

		reviewedAt := srv.now()
		found.Status = status
		found.RejectionReason = strings.TrimSpace(reason)
		found.ReviewedBy = &adminID
		found.ReviewedAt = &reviewedAt
		if err := transactionRepo.Review(ctx, found); err != nil {
			return translateNotFound(err, repository.ErrTransactionNotFound, domainerrors.ErrTransactionNotFound, "failed to review transaction")
		}
		tx = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Transaction review failed", slog.Any("transactionID", transactionID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to review transaction")
	}

	srv.events.emit(ctx, entity.EventTransactionReviewed, tx.UserID, tx.ID.String(), map[string]string{
		"type":   string(tx.Type),
		"status": string(tx.Status),
		"amount": tx.Amount.StringFixed(2),
	})
	srv.log(ctx).Info("Transaction reviewed", slog.Any("transactionID", transactionID), slog.String("status", string(status)))

	return tx, nil
}

func (srv *adminService) applyTransaction(ctx context.Context, userRepo repository.UserRepository, tx *entity.Transaction) error {
	switch tx.Type {
	case entity.TransactionTypeDeposit:
		_, err := creditBalance(ctx, userRepo, tx.UserID, tx.Amount)

		return err
	case entity.TransactionTypeWithdrawal:
		user, err := findUser(ctx, userRepo, tx.UserID)
		if err != nil {
			return err
		}
		_, err = debitBalance(ctx, userRepo, tx.UserID, user.Balance, tx.Amount)

		return err
	default:
		return domainerrors.ErrValidationFailed.WithDetails("unknown transaction type " + string(tx.Type))
	}
}

// --- Orders ---

func (srv *adminService) ListOrders(ctx context.Context, status entity.OrderStatus, page repository.Page) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByStatus(ctx, status, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// UpdateOrderStatus follows the order state machine. Cancelling a balance-paid
// order credits the total back in the same transaction.
func (srv *adminService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	var (
		order    *entity.Order
		previous entity.OrderStatus
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		found, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			return translateNotFound(err, repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound, "failed to find order")
		}
		if !found.Status.CanTransitionTo(status) {
			return domainerrors.ErrInvalidStatusTransition.WithDetails(string(found.Status) + " -> " + string(status))
		}

		if err := orderRepo.UpdateStatus(ctx, orderID, found.Status, status); err != nil {
			return translateNotFound(err, repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound, "failed to update order status")
		}

		if status == entity.OrderStatusCancelled && found.PaymentMethod == entity.PaymentMethodBalance {
			if _, err := creditBalance(ctx, repoFactory.UserRepo(), found.UserID, found.TotalAmount); err != nil {
				return err
			}
		}

		previous = found.Status
		found.Status = status
		order = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order status update failed", slog.Any("orderID", orderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.events.emit(ctx, entity.EventOrderStatusChanged, order.UserID, order.ID.String(), map[string]string{
		"from": string(previous),
		"to":   string(order.Status),
	})

	return order, nil
}

// --- Referrals ---

func (srv *adminService) ListReferrals(ctx context.Context, status entity.ReferralStatus, page repository.Page) ([]*entity.Referral, error) {
	referrals, err := srv.referralRepo.ListByStatus(ctx, status, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list referrals")
	}

	return referrals, nil
}

// PayReferral marks the bonus paid and credits the referrer.
func (srv *adminService) PayReferral(ctx context.Context, referralID uuid.UUID) (*entity.Referral, error) {
	var referral *entity.Referral
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		referralRepo := repoFactory.ReferralRepo()

		found, err := referralRepo.FindByID(ctx, referralID)
		if err != nil {
			return translateNotFound(err, repository.ErrReferralNotFound, domainerrors.ErrReferralNotFound, "failed to find referral")
		}
		if found.Status != entity.ReferralStatusPending {
			return domainerrors.ErrAlreadyReviewed
		}

		paidAt := srv.now()
		found.PaidAt = &paidAt
		if err := referralRepo.MarkPaid(ctx, found); err != nil {
			return translateNotFound(err, repository.ErrReferralNotFound, domainerrors.ErrReferralNotFound, "failed to mark referral paid")
		}
		found.Status = entity.ReferralStatusPaid

		if found.BonusAmount.IsPositive() {
			if _, err := creditBalance(ctx, repoFactory.UserRepo(), found.ReferrerID, found.BonusAmount); err != nil {
				return err
			}
		}
		referral = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to pay referral")
	}

	srv.events.emit(ctx, entity.EventReferralPaid, referral.ReferrerID, referral.ID.String(), map[string]string{
		"amount": referral.BonusAmount.StringFixed(2),
	})

	return referral, nil
}
