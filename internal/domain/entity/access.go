package entity

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryAccess is the per (user, category) gate.
type CategoryAccess struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Category string
	Enabled  bool
	// ProductLimit caps visible products in the category; 0 means unlimited.
	ProductLimit int
	// Price overrides Category.AccessPrice for this user when set.
	Price     *decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AccessRequest records a user's purchase of access to a category.
// Only the request with IsCurrent set is authoritative for gating.
type AccessRequest struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Category    string
	PricePaid   decimal.Decimal
	Status      ReviewStatus
	AdminNote   string
	IsCurrent   bool
	RequestedAt time.Time
	ReviewedBy  *uuid.UUID
	ReviewedAt  *time.Time
}

// AccessState is the derived gate state for one (user, category).
type AccessState string

const (
	AccessStateNoAccess       AccessState = "no_access"
	AccessStateRequestPending AccessState = "request_pending"
	AccessStateGranted        AccessState = "granted"
	AccessStateRejected       AccessState = "rejected"
)

// ResolveAccessState derives the gate state from the access row and the current request.
// Either argument may be nil.
func ResolveAccessState(access *CategoryAccess, current *AccessRequest) AccessState {
	if access != nil && access.Enabled {
		return AccessStateGranted
	}
	if current == nil {
		return AccessStateNoAccess
	}

	switch current.Status {
	case ReviewStatusPending:
		return AccessStateRequestPending
	case ReviewStatusRejected:
		return AccessStateRejected
	default:
		// Approved but since disabled by an administrator.
		return AccessStateNoAccess
	}
}

// CanPurchase reports whether a purchase request may be submitted from this state.
func (s AccessState) CanPurchase() bool {
	return s == AccessStateNoAccess || s == AccessStateRejected
}

// EffectiveAccessPrice picks the per-user price over the category default.
// A nil or non-positive result means the category cannot be purchased.
func EffectiveAccessPrice(category *Category, access *CategoryAccess) *decimal.Decimal {
	if access != nil && access.Price != nil {
		return access.Price
	}
	if category != nil {
		return category.AccessPrice
	}

	return nil
}

// AccessSet indexes a user's CategoryAccess rows by category slug.
type AccessSet map[string]*CategoryAccess

// NewAccessSet builds an AccessSet from repository rows.
func NewAccessSet(rows []*CategoryAccess) AccessSet {
	set := make(AccessSet, len(rows))
	for _, row := range rows {
		set[row.Category] = row
	}

	return set
}

// IsAccessible reports whether a user with role may view and order products in category.
// Administrators bypass the gate for every category.
func (s AccessSet) IsAccessible(role Role, category string) bool {
	if role == RoleAdmin {
		return true
	}
	access, ok := s[category]

	return ok && access.Enabled
}

// Limit returns the product limit for category, 0 when unlimited or unknown.
func (s AccessSet) Limit(category string) int {
	if access, ok := s[category]; ok && access.ProductLimit > 0 {
		return access.ProductLimit
	}

	return 0
}

// EnabledCategories lists enabled category slugs in ascending order.
func (s AccessSet) EnabledCategories() []string {
	categories := make([]string, 0, len(s))
	for category, access := range s {
		if access.Enabled {
			categories = append(categories, category)
		}
	}
	sort.Strings(categories)

	return categories
}
