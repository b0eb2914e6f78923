package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type ledgerService struct {
	txManager       repository.TransactionManager
	userRepo        repository.UserRepository
	transactionRepo repository.TransactionRepository
	events          eventEmitter
	logger          *slog.Logger
}

// LedgerServiceParams holds dependencies for LedgerService, injected by Fx.
type LedgerServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	UserRepo        repository.UserRepository
	TransactionRepo repository.TransactionRepository
	Publisher       service.EventPublisher
	Logger          *slog.Logger
}

// NewLedgerService creates the balance bookkeeping service.
func NewLedgerService(params LedgerServiceParams) usecase.LedgerUsecase {
	return &ledgerService{
		txManager:       params.TxManager,
		userRepo:        params.UserRepo,
		transactionRepo: params.TransactionRepo,
		events:          newEventEmitter(params.Publisher, params.Logger),
		logger:          params.Logger,
	}
}

func (srv *ledgerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *ledgerService) GetWallet(ctx context.Context, userID uuid.UUID) (*usecase.WalletOutput, error) {
	user, err := findUser(ctx, srv.userRepo, userID)
	if err != nil {
		return nil, err
	}

	transactions, err := srv.ListTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &usecase.WalletOutput{Balance: user.Balance, Transactions: transactions}, nil
}

func (srv *ledgerService) ListTransactions(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	transactions, err := srv.transactionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return transactions, nil
}

func (srv *ledgerService) RequestDeposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*entity.Transaction, error) {
	tx, err := entity.NewDepositRequest(userID, amount)
	if err != nil {
		return nil, err
	}

	if err := srv.transactionRepo.Create(ctx, tx); err != nil {
		return nil, errors.Wrap(err, "failed to create deposit request")
	}

	srv.log(ctx).Info("Deposit requested", slog.Any("userID", userID), slog.String("amount", amount.StringFixed(2)))
	srv.emitRequested(ctx, tx)

	return tx, nil
}

func (srv *ledgerService) RequestWithdrawal(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*entity.Transaction, error) {
	if err := entity.ValidateAmount(amount); err != nil {
		return nil, err
	}

	user, err := findUser(ctx, srv.userRepo, userID)
	if err != nil {
		return nil, err
	}

	// Funds are not reserved; approval re-checks with a conditional debit.
	tx, err := entity.NewWithdrawalRequest(userID, amount, user.Balance)
	if err != nil {
		srv.log(ctx).Warn("Withdrawal rejected",
			slog.Any("userID", userID),
			slog.String("amount", amount.StringFixed(2)),
			slog.String("balance", user.Balance.StringFixed(2)),
		)

		return nil, err
	}

	if err := srv.transactionRepo.Create(ctx, tx); err != nil {
		return nil, errors.Wrap(err, "failed to create withdrawal request")
	}

	srv.log(ctx).Info("Withdrawal requested", slog.Any("userID", userID), slog.String("amount", amount.StringFixed(2)))
	srv.emitRequested(ctx, tx)

	return tx, nil
}

func (srv *ledgerService) DebitForOrder(ctx context.Context, userID uuid.UUID, currentBalance, orderTotal decimal.Decimal) (decimal.Decimal, error) {
	return srv.debit(ctx, userID, currentBalance, orderTotal, "order")
}

func (srv *ledgerService) DebitForCategoryPurchase(ctx context.Context, userID uuid.UUID, currentBalance, price decimal.Decimal) (decimal.Decimal, error) {
	return srv.debit(ctx, userID, currentBalance, price, "category_purchase")
}

func (srv *ledgerService) debit(ctx context.Context, userID uuid.UUID, currentBalance, amount decimal.Decimal, reason string) (decimal.Decimal, error) {
	newBalance, err := debitBalance(ctx, srv.userRepo, userID, currentBalance, amount)
	if err != nil {
		srv.log(ctx).Warn("Debit failed", slog.Any("userID", userID), slog.String("reason", reason), slog.Any("error", err))

		return decimal.Zero, err
	}

	srv.log(ctx).Info("Balance debited",
		slog.Any("userID", userID),
		slog.String("reason", reason),
		slog.String("amount", amount.StringFixed(2)),
		slog.String("balance", newBalance.StringFixed(2)),
	)

	return newBalance, nil
}

func (srv *ledgerService) emitRequested(ctx context.Context, tx *entity.Transaction) {
	srv.events.emit(ctx, entity.EventTransactionRequested, tx.UserID, tx.ID.String(), map[string]string{
		"type":   string(tx.Type),
		"amount": tx.Amount.StringFixed(2),
	})
}
