// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderTypeEmail is the only credential provider: email + password.
const ProviderTypeEmail = "email"

// Authentication represents a single method of logging in (a credential).
type Authentication struct {
	ID             uuid.UUID // The unique ID for this specific authentication record itself.
	UserID         uuid.UUID // Links this authentication method to the User it belongs to.
	Provider       string    // The authentication provider, currently always "email".
	ProviderUserID string    // The login identifier at the provider (the email address).
	PasswordHash   string    // Stores the bcrypt-hashed password.
	CreatedAt      time.Time
}

// RefreshToken represents a long-lived, authorized user session.
type RefreshToken struct {
	ID         uuid.UUID // The unique ID for this specific refresh token record.
	UserID     uuid.UUID // Links this session to the User it belongs to.
	TokenHash  string    // SHA-256 hash of the raw refresh token.
	DeviceInfo string    // Free-form client description supplied at login.
	IPAddress  string    // Remote address at login.
	ExpiresAt  time.Time // The exact time when this refresh token will expire and become invalid.
	CreatedAt  time.Time // Timestamp of when this session was created (i.e., when the user logged in).
}

// Session is the authenticated identity carried through a request.
type Session struct {
	UserID uuid.UUID `json:"user_id"`
	Role   Role      `json:"role"`
	// TokenID is the jti of the access token that authenticated the request.
	TokenID string `json:"token_id,omitempty"`
}

// IsAdmin reports whether the session belongs to an administrator.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
