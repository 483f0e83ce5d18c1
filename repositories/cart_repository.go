package repositories

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"slime-shop/models"

	"github.com/redis/go-redis/v9"
)

// CartStore holds guest carts between requests. Load returns ErrNotFound
// for an unknown id; callers start a fresh cart in that case. TryLock backs
// the one-submission-in-flight checkout invariant.
type CartStore interface {
	Load(ctx context.Context, id string) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
	Delete(ctx context.Context, id string) error
	TryLock(ctx context.Context, id string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, id string) error
}

// NewCartStore picks the Redis-backed store when a client is available and
// otherwise falls back to process memory (single instance only).
func NewCartStore(client *redis.Client, ttl time.Duration) CartStore {
	if client != nil {
		return &RedisCartStore{client: client, ttl: ttl}
	}
	return NewMemoryCartStore()
}

type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

func cartKey(id string) string  { return "cart:" + id }
func cartLock(id string) string { return "cart_lock:" + id }

func (s *RedisCartStore) Load(ctx context.Context, id string) (*models.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, err
	}
	if cart.Lines == nil {
		cart.Lines = []models.CartLine{}
	}
	return &cart, nil
}

func (s *RedisCartStore) Save(ctx context.Context, cart *models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cartKey(cart.ID), data, s.ttl).Err()
}

func (s *RedisCartStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, cartKey(id)).Err()
}

func (s *RedisCartStore) TryLock(ctx context.Context, id string, ttl time.Duration) (bool, error) {
	return s.client.SetNX(ctx, cartLock(id), 1, ttl).Result()
}

func (s *RedisCartStore) Unlock(ctx context.Context, id string) error {
	return s.client.Del(ctx, cartLock(id)).Err()
}

// MemoryCartStore keeps carts in process memory. Used when Redis is not
// configured and by tests.
type MemoryCartStore struct {
	mu    sync.Mutex
	carts map[string][]byte
	locks map[string]time.Time
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{
		carts: make(map[string][]byte),
		locks: make(map[string]time.Time),
	}
}

func (s *MemoryCartStore) Load(_ context.Context, id string) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.carts[id]
	if !ok {
		return nil, ErrNotFound
	}
	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, err
	}
	if cart.Lines == nil {
		cart.Lines = []models.CartLine{}
	}
	return &cart, nil
}

func (s *MemoryCartStore) Save(_ context.Context, cart *models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[cart.ID] = data
	return nil
}

func (s *MemoryCartStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, id)
	return nil
}

func (s *MemoryCartStore) TryLock(_ context.Context, id string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if until, held := s.locks[id]; held && time.Now().Before(until) {
		return false, nil
	}
	s.locks[id] = time.Now().Add(ttl)
	return true, nil
}

func (s *MemoryCartStore) Unlock(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.locks, id)
	return nil
}
