// Package cache keeps shopping carts in Redis, or in process memory when Redis is not configured.
package cache

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the cart store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewCartStore selects the Redis store when an address is configured.
func NewCartStore(params Params) (service.CartStore, error) {
	ttl := params.Config.Cart.TTL
	redisCfg := params.Config.Redis

	if redisCfg == nil || redisCfg.Addr == "" {
		params.Logger.Info("Redis not configured, carts are kept in memory")

		return NewMemoryCartStore(ttl), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Connected to Redis cart store", slog.String("addr", redisCfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisCartStore(client, redisCfg.KeyPrefix, ttl), nil
}

func cartKey(prefix string, userID uuid.UUID) string {
	key := constants.CartKeyPrefix + ":" + userID.String()
	if prefix == "" {
		return key
	}

	return prefix + ":" + key
}

func expiresAt(now time.Time, ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}

	return now.Add(ttl)
}
