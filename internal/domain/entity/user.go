// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User is a storefront account: a shopper or an administrator.
// Balance is only ever changed through the ledger primitives on UserRepository.
type User struct {
	ID           uuid.UUID       // The Global Unique Identifier (GUID) for the user.
	Email        string          // Login identifier.
	Username     string          // Display name.
	Role         Role            // client or admin.
	Balance      decimal.Decimal // Spendable balance.
	ReferralCode string          // Unique code other users sign up with.
	ReferredBy   *uuid.UUID      // The user whose referral code was used at sign-up, if any.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user bypasses category gating.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Roles returns the user's role as a Roles slice for token claims.
func (u *User) Roles() Roles {
	return Roles{u.Role}
}
