package entity

import (
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productWithPrice(name, price string) *Product {
	return &Product{ID: uuid.New(), Name: name, Category: "electronics", Price: decimal.RequireFromString(price)}
}

func TestCart_AddToCart(t *testing.T) {
	t.Parallel()

	cart := NewCart(uuid.New())
	phone := productWithPrice("Phone", "10.00")
	cable := productWithPrice("Cable", "5.00")

	cart.AddToCart(phone)
	cart.AddToCart(cable)
	cart.AddToCart(phone)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, phone.ID, cart.Items[0].ProductID)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 1, cart.Items[1].Quantity)
}

func TestCart_UpdateQuantity(t *testing.T) {
	t.Parallel()

	phone := productWithPrice("Phone", "10.00")

	tests := []struct {
		name      string
		productID uuid.UUID
		quantity  int
		wantErr   error
		wantLines int
		wantQty   int
	}{
		{name: "set quantity", productID: phone.ID, quantity: 4, wantLines: 1, wantQty: 4},
		{name: "zero removes", productID: phone.ID, quantity: 0, wantLines: 0},
		{name: "negative rejected", productID: phone.ID, quantity: -1, wantErr: domainerrors.ErrValidationFailed, wantLines: 1, wantQty: 1},
		{name: "unknown product", productID: uuid.New(), quantity: 2, wantErr: domainerrors.ErrCartItemNotFound, wantLines: 1, wantQty: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cart := NewCart(uuid.New())
			cart.AddToCart(phone)

			err := cart.UpdateQuantity(tt.productID, tt.quantity)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			require.Len(t, cart.Items, tt.wantLines)
			if tt.wantLines > 0 {
				assert.Equal(t, tt.wantQty, cart.Items[0].Quantity)
			}
		})
	}
}

func TestCart_Total(t *testing.T) {
	t.Parallel()

	cart := NewCart(uuid.New())
	assert.True(t, cart.Total().IsZero())

	a := productWithPrice("A", "10.00")
	b := productWithPrice("B", "5.00")
	cart.AddToCart(a)
	cart.AddToCart(a)
	cart.AddToCart(b)

	assert.Equal(t, "25.00", cart.Total().StringFixed(2))

	cart.Remove(a.ID)
	assert.Equal(t, "5.00", cart.Total().StringFixed(2))

	cart.Clear()
	assert.True(t, cart.IsEmpty())
}
