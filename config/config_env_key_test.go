package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"redis": map[string]any{
			"keyPrefix": "storefront",
		},
		"referral": map[string]any{
			"bonusAmount": "10.00",
		},
		"auth": map[string]any{
			"profileLoadDelay": "500ms",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "REDIS_KEYPREFIX", want: "redis.keyPrefix"},
		{envKey: "REFERRAL_BONUSAMOUNT", want: "referral.bonusAmount"},
		{envKey: "AUTH_PROFILELOADDELAY", want: "auth.profileLoadDelay"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	t.Run("fills empty sections", func(t *testing.T) {
		cfg := &Config{}
		applyDefaults(cfg)

		assert.Equal(t, 3, cfg.Auth.ProfileLoadAttempts)
		assert.Equal(t, 500*time.Millisecond, cfg.Auth.ProfileLoadDelay)
		assert.Equal(t, 7*24*time.Hour, cfg.Cart.TTL)
		assert.Equal(t, 99, cfg.Cart.MaxLineQuantity)
		assert.Equal(t, "10.00", cfg.Referral.BonusAmount)
		assert.Equal(t, 8, cfg.Referral.CodeLength)
		assert.Equal(t, "mem://", cfg.Storage.BucketURL)
		assert.Equal(t, int64(5<<20), cfg.Storage.MaxImageSize)
		assert.Equal(t, "storefront-admins", cfg.Firebase.AdminTopic)
		assert.Equal(t, 8081, cfg.Notifier.Port)
	})

	t.Run("keeps configured values", func(t *testing.T) {
		cfg := &Config{
			Auth:     &AuthConfig{ProfileLoadAttempts: 5, ProfileLoadDelay: time.Second},
			Referral: &ReferralConfig{BonusAmount: "25.50", CodeLength: 10},
		}
		applyDefaults(cfg)

		assert.Equal(t, 5, cfg.Auth.ProfileLoadAttempts)
		assert.Equal(t, time.Second, cfg.Auth.ProfileLoadDelay)
		assert.Equal(t, "25.50", cfg.Referral.BonusAmount)
		assert.Equal(t, 10, cfg.Referral.CodeLength)
	})
}
