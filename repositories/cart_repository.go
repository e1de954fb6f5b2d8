package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"dukicks/models"

	"github.com/redis/go-redis/v9"
)

const (
	cartKeyPattern   = "cart:%s"
	maxUpdateRetries = 10
)

// ErrCartContention is returned when a cart kept changing underneath an
// Update for every retry.
var ErrCartContention = errors.New("cart was modified concurrently, giving up")

// CartMutation receives the saved line items and returns the items to
// store. Returning an error aborts the update without writing. It may be
// called more than once when the cart changes concurrently.
type CartMutation func(items []models.CartItem) ([]models.CartItem, error)

// CartRepository stores the line items of a session cart between requests.
// Load returns an empty slice for unknown sessions.
type CartRepository interface {
	Load(ctx context.Context, sessionID string) ([]models.CartItem, error)
	Save(ctx context.Context, sessionID string, items []models.CartItem) error
	Update(ctx context.Context, sessionID string, mutate CartMutation) error
	Delete(ctx context.Context, sessionID string) error
}

type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func cartKey(sessionID string) string {
	return fmt.Sprintf(cartKeyPattern, sessionID)
}

type RedisCartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCartRepository(client *redis.Client, ttl time.Duration) *RedisCartRepository {
	return &RedisCartRepository{client: client, ttl: ttl}
}

func (r *RedisCartRepository) Load(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	return r.load(ctx, r.client, sessionID)
}

func (r *RedisCartRepository) load(ctx context.Context, db stringGetter, sessionID string) ([]models.CartItem, error) {
	raw, err := db.Get(ctx, cartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return []models.CartItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart %s: %w", sessionID, err)
	}

	items := []models.CartItem{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode cart %s: %w", sessionID, err)
	}
	return items, nil
}

func (r *RedisCartRepository) Save(ctx context.Context, sessionID string, items []models.CartItem) error {
	if len(items) == 0 {
		return r.Delete(ctx, sessionID)
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart %s: %w", sessionID, err)
	}
	if err := r.client.Set(ctx, cartKey(sessionID), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("save cart %s: %w", sessionID, err)
	}
	return nil
}

// Update applies mutate under WATCH so a write from another process between
// the read and the write makes the transaction fail and retry.
func (r *RedisCartRepository) Update(ctx context.Context, sessionID string, mutate CartMutation) error {
	key := cartKey(sessionID)

	txf := func(tx *redis.Tx) error {
		items, err := r.load(ctx, tx, sessionID)
		if err != nil {
			return err
		}
		next, err := mutate(items)
		if err != nil {
			return err
		}

		var payload []byte
		if len(next) > 0 {
			if payload, err = json.Marshal(next); err != nil {
				return fmt.Errorf("encode cart %s: %w", sessionID, err)
			}
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if len(next) == 0 {
				pipe.Del(ctx, key)
			} else {
				pipe.Set(ctx, key, payload, r.ttl)
			}
			return nil
		})
		return err
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("update cart %s: %w", sessionID, ErrCartContention)
}

func (r *RedisCartRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete cart %s: %w", sessionID, err)
	}
	return nil
}

// MemoryCartRepository keeps carts in process memory. Used when Redis is
// not configured.
type MemoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string][]models.CartItem
}

func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{carts: make(map[string][]models.CartItem)}
}

func (r *MemoryCartRepository) Load(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.carts[sessionID]
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out, nil
}

func (r *MemoryCartRepository) Save(ctx context.Context, sessionID string, items []models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(items) == 0 {
		delete(r.carts, sessionID)
		return nil
	}
	stored := make([]models.CartItem, len(items))
	copy(stored, items)
	r.carts[sessionID] = stored
	return nil
}

func (r *MemoryCartRepository) Update(ctx context.Context, sessionID string, mutate CartMutation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := make([]models.CartItem, len(r.carts[sessionID]))
	copy(saved, r.carts[sessionID])

	next, err := mutate(saved)
	if err != nil {
		return err
	}
	if len(next) == 0 {
		delete(r.carts, sessionID)
		return nil
	}
	stored := make([]models.CartItem, len(next))
	copy(stored, next)
	r.carts[sessionID] = stored
	return nil
}

func (r *MemoryCartRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, sessionID)
	return nil
}
