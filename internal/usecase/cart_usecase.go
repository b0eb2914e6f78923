package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutInput defines the data required to place an order from the cart.
type CheckoutInput struct {
	ShippingAddress string
	PaymentMethod   entity.PaymentMethod
}

// CartUsecase manages the cart and turns it into orders.
type CartUsecase interface {
	GetCart(ctx context.Context, session *entity.Session) (*entity.Cart, error)
	AddItem(ctx context.Context, session *entity.Session, productID uuid.UUID) (*entity.Cart, error)
	UpdateQuantity(ctx context.Context, session *entity.Session, productID uuid.UUID, quantity int) (*entity.Cart, error)
	RemoveItem(ctx context.Context, session *entity.Session, productID uuid.UUID) (*entity.Cart, error)
	Clear(ctx context.Context, session *entity.Session) error

	// Checkout places the order atomically and clears the cart on success.
	Checkout(ctx context.Context, session *entity.Session, input *CheckoutInput) (*entity.Order, error)

	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)
}
