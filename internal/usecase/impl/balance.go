package impl

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// debitBalance is the only path that lowers a balance. The caller's view of the
// balance is checked first, then the database applies a conditional decrement so a
// concurrent debit can never take the balance below zero.
func debitBalance(
	ctx context.Context,
	userRepo repository.UserRepository,
	userID uuid.UUID,
	currentBalance, amount decimal.Decimal,
) (decimal.Decimal, error) {
	if err := entity.ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}
	if err := entity.CheckSufficientBalance(amount, currentBalance); err != nil {
		return decimal.Zero, err
	}

	newBalance, err := userRepo.DebitBalance(ctx, userID, amount)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return decimal.Zero, domainerrors.ErrUserNotFound
		}

		return decimal.Zero, errors.Wrap(err, "failed to debit balance")
	}

	return newBalance, nil
}

func creditBalance(
	ctx context.Context,
	userRepo repository.UserRepository,
	userID uuid.UUID,
	amount decimal.Decimal,
) (decimal.Decimal, error) {
	if err := entity.ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}

	newBalance, err := userRepo.CreditBalance(ctx, userID, amount)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return decimal.Zero, domainerrors.ErrUserNotFound
		}

		return decimal.Zero, errors.Wrap(err, "failed to credit balance")
	}

	return newBalance, nil
}

// findUser loads a user and maps a missing row to the domain error.
func findUser(ctx context.Context, userRepo repository.UserRepository, userID uuid.UUID) (*entity.User, error) {
	user, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
