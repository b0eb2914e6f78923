package auth

import (
	"crypto/rand"
	"encoding/base32"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

const maxReferralCodeLength = 32

type referralCodeGenerator struct {
	length int
}

// NewReferralCodeGenerator returns a generator of lowercase base32 codes of the configured length.
func NewReferralCodeGenerator(cfg *config.Config) service.ReferralCodeGenerator {
	length := 8
	if cfg.Referral != nil && cfg.Referral.CodeLength > 0 {
		length = min(cfg.Referral.CodeLength, maxReferralCodeLength)
	}

	return &referralCodeGenerator{length: length}
}

func (g *referralCodeGenerator) Generate() (string, error) {
	// Five random bytes encode to eight base32 characters.
	buf := make([]byte, (g.length*5+7)/8)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	code := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(buf)

	return strings.ToLower(code[:g.length]), nil
}
