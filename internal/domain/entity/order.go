package entity

import (
	"strings"
	"time"

	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order, changed only by administrators.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusCompleted, OrderStatusCancelled},
}

// CanTransitionTo reports whether an administrator may move an order from s to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// PaymentMethod is how an order is paid.
type PaymentMethod string

const (
	PaymentMethodBalance PaymentMethod = "balance"
	PaymentMethodCard    PaymentMethod = "card"
	PaymentMethodCash    PaymentMethod = "cash"
)

// IsValid checks if the method is supported.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodBalance, PaymentMethodCard, PaymentMethodCash:
		return true
	default:
		return false
	}
}

// Order is a placed checkout. TotalAmount never changes after creation.
type Order struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	TotalAmount     decimal.Decimal
	Status          OrderStatus
	PaymentMethod   PaymentMethod
	ShippingAddress string
	Items           []*OrderItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem snapshots the unit price at order time.
type OrderItem struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// Subtotal is UnitPrice times Quantity.
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// NewOrderFromCart builds a pending order whose items snapshot the given current prices.
// Every cart line must have an entry in products.
func NewOrderFromCart(cart *Cart, products map[uuid.UUID]*Product, address string, method PaymentMethod) (*Order, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, domainerrors.ErrEmptyAddress
	}
	if !method.IsValid() {
		return nil, domainerrors.ErrInvalidPaymentMethod
	}
	if cart.IsEmpty() {
		return nil, domainerrors.ErrCartEmpty
	}

	order := &Order{
		UserID:          cart.UserID,
		Status:          OrderStatusPending,
		PaymentMethod:   method,
		ShippingAddress: address,
		Items:           make([]*OrderItem, 0, len(cart.Items)),
		TotalAmount:     decimal.Zero,
	}

	for _, line := range cart.Items {
		product, ok := products[line.ProductID]
		if !ok {
			return nil, domainerrors.ErrProductNotFound.WithDetails(line.ProductID.String())
		}
		item := &OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   product.Price,
		}
		order.Items = append(order.Items, item)
		order.TotalAmount = order.TotalAmount.Add(item.Subtotal())
	}

	return order, nil
}
