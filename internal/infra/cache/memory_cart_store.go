package cache

import (
	"context"
	"slices"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

type memoryCartEntry struct {
	items     []entity.CartItem
	expiresAt time.Time
}

// memoryCartStore is a process-local CartStore for development and tests.
type memoryCartStore struct {
	mu    sync.Mutex
	carts map[uuid.UUID]memoryCartEntry
	ttl   time.Duration
	now   func() time.Time
}

// NewMemoryCartStore is the constructor for memoryCartStore. A zero ttl never expires carts.
func NewMemoryCartStore(ttl time.Duration) service.CartStore {
	return &memoryCartStore{
		carts: make(map[uuid.UUID]memoryCartEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *memoryCartStore) Load(_ context.Context, userID uuid.UUID) (*entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.carts[userID]
	if !ok {
		return entity.NewCart(userID), nil
	}
	if !entry.expiresAt.IsZero() && !s.now().Before(entry.expiresAt) {
		delete(s.carts, userID)

		return entity.NewCart(userID), nil
	}

	return &entity.Cart{UserID: userID, Items: slices.Clone(entry.items)}, nil
}

func (s *memoryCartStore) Save(_ context.Context, cart *entity.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cart.IsEmpty() {
		delete(s.carts, cart.UserID)

		return nil
	}

	s.carts[cart.UserID] = memoryCartEntry{
		items:     slices.Clone(cart.Items),
		expiresAt: expiresAt(s.now(), s.ttl),
	}

	return nil
}

func (s *memoryCartStore) Delete(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)

	return nil
}
