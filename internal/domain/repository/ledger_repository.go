package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrTransactionNotFound is returned when a ledger transaction does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrReferralNotFound is returned when a referral does not exist.
	ErrReferralNotFound = errors.New("referral not found")
)

// TransactionRepository persists deposit and withdrawal requests.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	// ListByUser returns a user's transactions, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)
	// ListByStatus returns transactions with the given status, oldest first; empty status lists all.
	ListByStatus(ctx context.Context, status entity.ReviewStatus, page Page) ([]*entity.Transaction, error)
	// Review moves a pending transaction to its final status. It fails with
	// ErrAlreadyReviewed if the transaction is no longer pending.
	Review(ctx context.Context, tx *entity.Transaction) error
}

// ReferralRepository persists referral bonuses.
type ReferralRepository interface {
	// CreateIfAbsent records a referral unless one already exists for the referred user.
	// It reports whether a row was inserted.
	CreateIfAbsent(ctx context.Context, referral *entity.Referral) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Referral, error)
	ListByReferrer(ctx context.Context, referrerID uuid.UUID) ([]*entity.Referral, error)
	// ListByStatus returns referrals with the given status, newest first; empty status lists all.
	ListByStatus(ctx context.Context, status entity.ReferralStatus, page Page) ([]*entity.Referral, error)
	// MarkPaid moves a pending referral to paid. It fails with ErrAlreadyReviewed if already paid.
	MarkPaid(ctx context.Context, referral *entity.Referral) error
}
