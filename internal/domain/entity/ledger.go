package entity

import (
	"time"

	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes deposit and withdrawal requests.
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
)

// ReviewStatus is the lifecycle of anything an administrator approves or rejects.
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

// IsValid checks if the status is a known value.
func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected:
		return true
	default:
		return false
	}
}

// Transaction is a user's request to move money in or out of their balance.
// The balance only changes when an administrator approves it.
type Transaction struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Type            TransactionType
	Amount          decimal.Decimal
	Status          ReviewStatus
	RejectionReason string
	ReviewedBy      *uuid.UUID
	ReviewedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsPending reports whether the transaction still awaits review.
func (t *Transaction) IsPending() bool {
	return t.Status == ReviewStatusPending
}

// ValidateAmount rejects zero and negative monetary input.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerrors.ErrInvalidAmount
	}

	return nil
}

// CheckSufficientBalance fails when amount exceeds the current balance.
func CheckSufficientBalance(amount, currentBalance decimal.Decimal) error {
	if amount.GreaterThan(currentBalance) {
		return domainerrors.ErrInsufficientBalance
	}

	return nil
}

// ValidateWithdrawal combines the checks a withdrawal request must pass.
func ValidateWithdrawal(amount, currentBalance decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}

	return CheckSufficientBalance(amount, currentBalance)
}

// NewDepositRequest builds a pending deposit.
func NewDepositRequest(userID uuid.UUID, amount decimal.Decimal) (*Transaction, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}

	return &Transaction{
		UserID: userID,
		Type:   TransactionTypeDeposit,
		Amount: amount,
		Status: ReviewStatusPending,
	}, nil
}

// NewWithdrawalRequest builds a pending withdrawal after checking it against the balance.
func NewWithdrawalRequest(userID uuid.UUID, amount, currentBalance decimal.Decimal) (*Transaction, error) {
	if err := ValidateWithdrawal(amount, currentBalance); err != nil {
		return nil, err
	}

	return &Transaction{
		UserID: userID,
		Type:   TransactionTypeWithdrawal,
		Amount: amount,
		Status: ReviewStatusPending,
	}, nil
}
