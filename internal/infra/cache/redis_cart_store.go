package cache

import (
	"context"
	"encoding/json"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// redisCartStore stores each cart as one JSON string with a sliding TTL.
type redisCartStore struct {
	client    redis.UniversalClient
	keyPrefix string
	ttl       time.Duration
}

// NewRedisCartStore is the constructor for redisCartStore.
func NewRedisCartStore(client redis.UniversalClient, keyPrefix string, ttl time.Duration) service.CartStore {
	return &redisCartStore{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

func (s *redisCartStore) Load(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(s.keyPrefix, userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.NewCart(userID), nil
	}
	if err != nil {
		return nil, domainerrors.NewUpstreamError(err, "failed to load cart")
	}

	cart := entity.NewCart(userID)
	if err := json.Unmarshal(data, cart); err != nil {
		// A corrupt entry is dropped rather than blocking the user's cart forever.
		return entity.NewCart(userID), nil
	}
	cart.UserID = userID

	return cart, nil
}

// Save writes the cart and refreshes its TTL. An empty cart deletes the key.
func (s *redisCartStore) Save(ctx context.Context, cart *entity.Cart) error {
	if cart.IsEmpty() {
		return s.Delete(ctx, cart.UserID)
	}

	data, err := json.Marshal(cart)
	if err != nil {
		return errors.Wrap(err, "failed to encode cart")
	}

	if err := s.client.Set(ctx, cartKey(s.keyPrefix, cart.UserID), data, s.ttl).Err(); err != nil {
		return domainerrors.NewUpstreamError(err, "failed to save cart")
	}

	return nil
}

func (s *redisCartStore) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, cartKey(s.keyPrefix, userID)).Err(); err != nil {
		return domainerrors.NewUpstreamError(err, "failed to delete cart")
	}

	return nil
}
