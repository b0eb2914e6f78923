package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when an order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists orders and their items.
type OrderRepository interface {
	// Create inserts the order and all of its items.
	Create(ctx context.Context, order *entity.Order) error
	// FindByID loads an order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// ListByUser returns a user's orders with items, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	// ListByStatus returns orders with the given status, newest first; empty status lists all.
	ListByStatus(ctx context.Context, status entity.OrderStatus, page Page) ([]*entity.Order, error)
	// CountByUser returns how many orders a user has placed.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	// UpdateStatus changes status only if the order is still in from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error
}
