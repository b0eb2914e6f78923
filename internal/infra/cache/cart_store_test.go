package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testProduct(name string, price string) *entity.Product {
	return &entity.Product{
		ID:       uuid.New(),
		Name:     name,
		Category: "shoes",
		Price:    decimal.RequireFromString(price),
	}
}

func TestMemoryCartStore_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryCartStore(time.Hour)
	userID := uuid.New()

	cart, err := store.Load(ctx, userID)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	cart.AddToCart(testProduct("Runner", "10.50"))
	cart.AddToCart(testProduct("Trail", "20.00"))
	require.NoError(t, store.Save(ctx, cart))

	loaded, err := store.Load(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, cart.Items, loaded.Items)
	assert.True(t, decimal.RequireFromString("30.50").Equal(loaded.Total()))
}

func TestMemoryCartStore_LoadReturnsCopy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryCartStore(0)
	userID := uuid.New()

	cart := entity.NewCart(userID)
	cart.AddToCart(testProduct("Runner", "10.00"))
	require.NoError(t, store.Save(ctx, cart))

	loaded, err := store.Load(ctx, userID)
	require.NoError(t, err)
	loaded.Items[0].Quantity = 42

	again, err := store.Load(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, again.Items[0].Quantity)
}

func TestMemoryCartStore_Expiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryCartStore(time.Minute).(*memoryCartStore)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	userID := uuid.New()

	cart := entity.NewCart(userID)
	cart.AddToCart(testProduct("Runner", "10.00"))
	require.NoError(t, store.Save(ctx, cart))

	now = now.Add(2 * time.Minute)
	loaded, err := store.Load(ctx, userID)
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestMemoryCartStore_SaveEmptyAndDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryCartStore(time.Hour)
	userID := uuid.New()

	cart := entity.NewCart(userID)
	cart.AddToCart(testProduct("Runner", "10.00"))
	require.NoError(t, store.Save(ctx, cart))
	require.NoError(t, store.Delete(ctx, userID))

	loaded, err := store.Load(ctx, userID)
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())

	require.NoError(t, store.Save(ctx, entity.NewCart(userID)))
	assert.Empty(t, store.(*memoryCartStore).carts)
}

func TestCartKey(t *testing.T) {
	t.Parallel()

	userID := uuid.MustParse("0190f5d4-0000-7000-8000-000000000001")

	assert.Equal(t, "cart:0190f5d4-0000-7000-8000-000000000001", cartKey("", userID))
	assert.Equal(t, "shop:cart:0190f5d4-0000-7000-8000-000000000001", cartKey("shop", userID))
}

func TestRedisCartStore_UnreachableServerIsUpstreamError(t *testing.T) {
	t.Parallel()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	store := NewRedisCartStore(client, "test", time.Hour)

	_, err := store.Load(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, domainerrors.IsUpstreamUnavailable(err))
}

func TestNewCartStore_FallsBackToMemory(t *testing.T) {
	t.Parallel()

	store, err := NewCartStore(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{Cart: &config.CartConfig{TTL: time.Hour}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	_, ok := store.(*memoryCartStore)
	assert.True(t, ok)
}
