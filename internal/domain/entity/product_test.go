package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newTestProduct(name, category string) *Product {
	return &Product{
		ID:          uuid.New(),
		Name:        name,
		Description: name + " description",
		Price:       decimal.RequireFromString("10.00"),
		Category:    category,
	}
}

func productNames(products []*Product) []string {
	names := make([]string, len(products))
	for i, p := range products {
		names[i] = p.Name
	}

	return names
}

func TestVisibleProducts(t *testing.T) {
	t.Parallel()

	products := []*Product{
		newTestProduct("Phone", "electronics"),
		newTestProduct("Laptop", "electronics"),
		newTestProduct("Ring", "jewelry"),
		newTestProduct("Novel", "books"),
	}
	access := NewAccessSet([]*CategoryAccess{
		{Category: "electronics", Enabled: true},
		{Category: "jewelry", Enabled: false},
	})

	tests := []struct {
		name  string
		role  Role
		query CatalogQuery
		want  []string
	}{
		{name: "client sees enabled categories only", role: RoleClient, want: []string{"Phone", "Laptop"}},
		{name: "admin sees everything", role: RoleAdmin, want: []string{"Phone", "Laptop", "Ring", "Novel"}},
		{name: "admin category filter", role: RoleAdmin, query: CatalogQuery{Category: "books"}, want: []string{"Novel"}},
		{name: "client selects gated category", role: RoleClient, query: CatalogQuery{Category: "jewelry"}, want: []string{}},
		{name: "search is case insensitive on name", role: RoleClient, query: CatalogQuery{Search: "LAP"}, want: []string{"Laptop"}},
		{name: "search matches description", role: RoleAdmin, query: CatalogQuery{Search: "ring desc"}, want: []string{"Ring"}},
		{name: "blank search ignored", role: RoleClient, query: CatalogQuery{Search: "   "}, want: []string{"Phone", "Laptop"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := VisibleProducts(products, access, tt.role, tt.query)
			assert.Equal(t, tt.want, productNames(got))
		})
	}
}

func TestLimitProducts(t *testing.T) {
	t.Parallel()

	products := []*Product{
		newTestProduct("E1", "electronics"),
		newTestProduct("B1", "books"),
		newTestProduct("E2", "electronics"),
		newTestProduct("E3", "electronics"),
		newTestProduct("B2", "books"),
	}

	tests := []struct {
		name     string
		access   AccessSet
		role     Role
		category string
		want     []string
	}{
		{
			name:   "admin unchanged",
			access: NewAccessSet(nil),
			role:   RoleAdmin,
			want:   []string{"E1", "B1", "E2", "E3", "B2"},
		},
		{
			name: "no selection groups by slug and applies limits",
			access: NewAccessSet([]*CategoryAccess{
				{Category: "electronics", Enabled: true, ProductLimit: 2},
				{Category: "books", Enabled: true},
			}),
			role: RoleClient,
			want: []string{"B1", "B2", "E1", "E2"},
		},
		{
			name: "selected category unlimited",
			access: NewAccessSet([]*CategoryAccess{
				{Category: "electronics", Enabled: true, ProductLimit: 0},
			}),
			role:     RoleClient,
			category: "electronics",
			want:     []string{"E1", "E2", "E3"},
		},
		{
			name: "selected category limited",
			access: NewAccessSet([]*CategoryAccess{
				{Category: "electronics", Enabled: true, ProductLimit: 1},
			}),
			role:     RoleClient,
			category: "electronics",
			want:     []string{"E1"},
		},
		{
			name: "limit larger than list",
			access: NewAccessSet([]*CategoryAccess{
				{Category: "electronics", Enabled: true, ProductLimit: 10},
			}),
			role:     RoleClient,
			category: "electronics",
			want:     []string{"E1", "E2", "E3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			visible := VisibleProducts(products, tt.access, tt.role, CatalogQuery{Category: tt.category})
			got := LimitProducts(visible, tt.access, tt.role, tt.category)
			assert.Equal(t, tt.want, productNames(got))
		})
	}
}

func TestAdminToggleMakesCategoryFullyVisible(t *testing.T) {
	t.Parallel()

	products := []*Product{
		newTestProduct("TV", "electronics"),
		newTestProduct("Radio", "electronics"),
		newTestProduct("Camera", "electronics"),
	}

	before := NewAccessSet(nil)
	assert.Empty(t, VisibleProducts(products, before, RoleClient, CatalogQuery{}))

	after := NewAccessSet([]*CategoryAccess{{Category: "electronics", Enabled: true, ProductLimit: 0}})
	visible := VisibleProducts(products, after, RoleClient, CatalogQuery{})
	assert.Len(t, visible, 3)
	assert.Len(t, LimitProducts(visible, after, RoleClient, ""), 3)
	assert.Len(t, LimitProducts(visible, after, RoleClient, "electronics"), 3)
}

func TestOrderableProductIDs(t *testing.T) {
	t.Parallel()

	e1 := newTestProduct("E1", "electronics")
	e2 := newTestProduct("E2", "electronics")
	j1 := newTestProduct("J1", "jewelry")
	access := NewAccessSet([]*CategoryAccess{{Category: "electronics", Enabled: true, ProductLimit: 1}})

	ids := OrderableProductIDs([]*Product{e1, e2, j1}, access, RoleClient)
	assert.Contains(t, ids, e1.ID)
	assert.NotContains(t, ids, e2.ID)
	assert.NotContains(t, ids, j1.ID)

	adminIDs := OrderableProductIDs([]*Product{e1, e2, j1}, access, RoleAdmin)
	assert.Len(t, adminIDs, 3)
}
