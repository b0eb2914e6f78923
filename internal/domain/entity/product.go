package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item. Shoppers never mutate it.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Rating      float64
	ReviewCount int
	VIPTier     *int
	ImageKey    string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CatalogQuery narrows a catalog listing. Empty fields do not filter.
type CatalogQuery struct {
	Category string
	Search   string
}

func (q CatalogQuery) matches(product *Product) bool {
	if q.Category != "" && product.Category != q.Category {
		return false
	}
	search := strings.ToLower(strings.TrimSpace(q.Search))
	if search == "" {
		return true
	}

	return strings.Contains(strings.ToLower(product.Name), search) ||
		strings.Contains(strings.ToLower(product.Description), search)
}

// VisibleProducts returns the products a user may see, in input order.
// Non-admins only see categories with enabled access.
func VisibleProducts(products []*Product, access AccessSet, role Role, query CatalogQuery) []*Product {
	visible := make([]*Product, 0, len(products))
	for _, product := range products {
		if !access.IsAccessible(role, product.Category) {
			continue
		}
		if query.matches(product) {
			visible = append(visible, product)
		}
	}

	return visible
}

// LimitProducts applies per-category product limits to an already visible list.
//
// With no category selected the result is grouped by enabled category in slug order,
// each group keeping the input order. With a category selected the first limit items
// of the input are returned.
func LimitProducts(visible []*Product, access AccessSet, role Role, category string) []*Product {
	if role == RoleAdmin {
		return visible
	}

	if category != "" {
		limit := access.Limit(category)
		if limit == 0 || len(visible) <= limit {
			return visible
		}

		return visible[:limit]
	}

	byCategory := make(map[string][]*Product)
	for _, product := range visible {
		byCategory[product.Category] = append(byCategory[product.Category], product)
	}

	limited := make([]*Product, 0, len(visible))
	for _, slug := range access.EnabledCategories() {
		group := byCategory[slug]
		if limit := access.Limit(slug); limit > 0 && len(group) > limit {
			group = group[:limit]
		}
		limited = append(limited, group...)
	}

	return limited
}

// OrderableProductIDs returns the ids a user may put in a cart: the limited,
// unfiltered catalog.
func OrderableProductIDs(products []*Product, access AccessSet, role Role) map[uuid.UUID]struct{} {
	orderable := LimitProducts(VisibleProducts(products, access, role, CatalogQuery{}), access, role, "")
	ids := make(map[uuid.UUID]struct{}, len(orderable))
	for _, product := range orderable {
		ids[product.ID] = struct{}{}
	}

	return ids
}
