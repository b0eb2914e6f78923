// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores input beyond 72 bytes.
const bcryptMaxLength = 72

var forbiddenPasswordWords = []string{"password", "admin", "storefront", "qwerty", "123456"}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher builds the hasher from the auth and password strength sections of cfg.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	policy := config.PasswordStrengthConfig{
		MinLength:        8,
		MaxLength:        bcryptMaxLength,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	}
	if cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
		if policy.MaxLength <= 0 || policy.MaxLength > bcryptMaxLength {
			policy.MaxLength = bcryptMaxLength
		}
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength reports the first rule the password breaks.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if utf8.RuneCountInString(password) < h.policy.MinLength {
		return weakPassword(fmt.Sprintf("password must be at least %d characters long", h.policy.MinLength))
	}
	if len(password) > h.policy.MaxLength {
		return weakPassword(fmt.Sprintf("password must be at most %d bytes long", h.policy.MaxLength))
	}
	if h.policy.RequireLowercase && !containsRune(password, unicode.IsLower) {
		return weakPassword("password must contain at least one lowercase letter")
	}
	if h.policy.RequireUppercase && !containsRune(password, unicode.IsUpper) {
		return weakPassword("password must contain at least one uppercase letter")
	}
	if h.policy.RequireNumbers && !containsRune(password, unicode.IsDigit) {
		return weakPassword("password must contain at least one number")
	}
	if h.policy.RequireSpecial && !containsRune(password, isSpecial) {
		return weakPassword("password must contain at least one special character")
	}

	lower := strings.ToLower(password)
	for _, word := range forbiddenPasswordWords {
		if strings.Contains(lower, word) {
			return weakPassword("password contains forbidden words")
		}
	}

	return nil
}

func weakPassword(details string) error {
	return domainerrors.ErrPasswordStrength.WithDetails(details)
}

func containsRune(s string, pred func(rune) bool) bool {
	return strings.IndexFunc(s, pred) >= 0
}

func isSpecial(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
