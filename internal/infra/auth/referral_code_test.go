package auth

import (
	"regexp"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var referralCodePattern = regexp.MustCompile(`^[a-z2-7]+$`)

func TestReferralCodeGenerator_Generate(t *testing.T) {
	t.Parallel()

	for _, length := range []int{0, 6, 8, 13, 64} {
		gen := NewReferralCodeGenerator(&config.Config{Referral: &config.ReferralConfig{CodeLength: length}})

		code, err := gen.Generate()
		require.NoError(t, err)

		want := length
		switch {
		case length == 0:
			want = 8
		case length > maxReferralCodeLength:
			want = maxReferralCodeLength
		}
		assert.Len(t, code, want)
		assert.Regexp(t, referralCodePattern, code)
	}
}

func TestReferralCodeGenerator_Distinct(t *testing.T) {
	t.Parallel()

	gen := NewReferralCodeGenerator(&config.Config{})
	seen := make(map[string]struct{})
	for range 100 {
		code, err := gen.Generate()
		require.NoError(t, err)
		seen[code] = struct{}{}
	}

	assert.Greater(t, len(seen), 95)
}
