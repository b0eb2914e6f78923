package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletOutput is the balance view of the wallet page.
type WalletOutput struct {
	Balance      decimal.Decimal
	Transactions []*entity.Transaction
}

// LedgerUsecase owns every change to a user's balance.
type LedgerUsecase interface {
	GetWallet(ctx context.Context, userID uuid.UUID) (*WalletOutput, error)
	ListTransactions(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// RequestDeposit records a pending deposit. The balance is untouched until approval.
	RequestDeposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*entity.Transaction, error)

	// RequestWithdrawal records a pending withdrawal after checking it against the current balance.
	RequestWithdrawal(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*entity.Transaction, error)

	// DebitForOrder subtracts an order total and returns the new balance.
	DebitForOrder(ctx context.Context, userID uuid.UUID, currentBalance, orderTotal decimal.Decimal) (decimal.Decimal, error)

	// DebitForCategoryPurchase subtracts a category access price and returns the new balance.
	DebitForCategoryPurchase(ctx context.Context, userID uuid.UUID, currentBalance, price decimal.Decimal) (decimal.Decimal, error)
}
