package entity

import (
	"slices"

	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is one cart line. Name and Price are the values seen when the item was added;
// checkout re-reads current prices.
type CartItem struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"image_url,omitempty"`
	Quantity  int             `json:"quantity"`
}

// Subtotal is Price times Quantity.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is a user's in-progress selection, kept in the cart store rather than the database.
type Cart struct {
	UserID uuid.UUID  `json:"user_id"`
	Items  []CartItem `json:"items"`
}

// NewCart returns an empty cart for userID.
func NewCart(userID uuid.UUID) *Cart {
	return &Cart{UserID: userID, Items: []CartItem{}}
}

func (c *Cart) indexOf(productID uuid.UUID) int {
	return slices.IndexFunc(c.Items, func(item CartItem) bool {
		return item.ProductID == productID
	})
}

// AddToCart increments the quantity of an existing line or appends a new one with quantity 1.
func (c *Cart) AddToCart(product *Product) {
	if idx := c.indexOf(product.ID); idx >= 0 {
		c.Items[idx].Quantity++

		return
	}

	c.Items = append(c.Items, CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Category:  product.Category,
		Price:     product.Price,
		ImageURL:  product.ImageURL,
		Quantity:  1,
	})
}

// UpdateQuantity sets a line's quantity; zero removes the line.
func (c *Cart) UpdateQuantity(productID uuid.UUID, quantity int) error {
	if quantity < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("quantity must not be negative")
	}

	idx := c.indexOf(productID)
	if idx < 0 {
		return domainerrors.ErrCartItemNotFound
	}

	if quantity == 0 {
		c.Items = slices.Delete(c.Items, idx, idx+1)

		return nil
	}
	c.Items[idx].Quantity = quantity

	return nil
}

// Remove drops a line if present.
func (c *Cart) Remove(productID uuid.UUID) {
	if idx := c.indexOf(productID); idx >= 0 {
		c.Items = slices.Delete(c.Items, idx, idx+1)
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Total is the sum of price times quantity over all lines.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}

	return total
}

// ProductIDs lists the products referenced by the cart in line order.
func (c *Cart) ProductIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(c.Items))
	for i, item := range c.Items {
		ids[i] = item.ProductID
	}

	return ids
}
