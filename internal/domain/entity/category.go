package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category groups products and is the unit of access gating.
// Products reference a category by its Slug.
type Category struct {
	ID          uuid.UUID
	Slug        string
	Name        string
	Description string
	// AccessPrice is the default price to request access; nil means not for sale.
	AccessPrice *decimal.Decimal
	VIPTier     *int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Banner is a storefront promotional slot managed by administrators.
type Banner struct {
	ID        uuid.UUID
	Title     string
	ImageURL  string
	LinkURL   string
	Active    bool
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}
