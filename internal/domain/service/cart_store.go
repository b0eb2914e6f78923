package service

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartStore keeps each user's cart outside the relational store.
type CartStore interface {
	// Load returns the user's cart, or an empty cart if none is stored.
	Load(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// Save replaces the stored cart.
	Save(ctx context.Context, cart *entity.Cart) error

	// Delete removes the stored cart.
	Delete(ctx context.Context, userID uuid.UUID) error
}
