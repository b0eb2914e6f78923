// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByReferralCode retrieves the owner of a referral code.
	FindByReferralCode(ctx context.Context, code string) (*entity.User, error)

	// List returns users ordered by creation time, newest first.
	List(ctx context.Context, page Page) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies profile fields. It never writes the balance.
	Update(ctx context.Context, user *entity.User) error

	// DebitBalance subtracts amount only if the balance covers it and returns the new balance.
	// It fails with ErrInsufficientBalance when no row qualifies.
	DebitBalance(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)

	// CreditBalance adds amount and returns the new balance.
	CreditBalance(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)

	// AcquireSessionMutex locks the user row for the rest of the transaction.
	AcquireSessionMutex(ctx context.Context, id uuid.UUID) error
}
