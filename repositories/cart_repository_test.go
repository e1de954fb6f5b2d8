package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"dukicks/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return mr, client
}

func sampleItems() []models.CartItem {
	size := "42"
	return []models.CartItem{
		{ID: 1, Name: "Nike Air Max 270", Price: 2969, Image: "a.jpg", Category: "Hombre", Size: &size, Quantity: 2},
		{ID: 13, Name: "Nike Swoosh Cap", Price: 599, Image: "b.jpg", Category: "Gorras", Quantity: 1},
	}
}

func TestRedisCartRepository_LoadUnknownSession(t *testing.T) {
	_, client := setupTestRedis(t)
	repo := NewRedisCartRepository(client, time.Hour)

	items, err := repo.Load(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRedisCartRepository_SaveAndLoad(t *testing.T) {
	mr, client := setupTestRedis(t)
	repo := NewRedisCartRepository(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "s1", sampleItems()))

	assert.True(t, mr.Exists("cart:s1"))
	assert.Equal(t, time.Hour, mr.TTL("cart:s1"))

	items, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
	require.NotNil(t, items[0].Size)
	assert.Equal(t, "42", *items[0].Size)
	assert.Nil(t, items[1].Size)
}

func TestRedisCartRepository_SaveEmptyDeletes(t *testing.T) {
	mr, client := setupTestRedis(t)
	repo := NewRedisCartRepository(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "s1", sampleItems()))
	require.NoError(t, repo.Save(ctx, "s1", nil))

	assert.False(t, mr.Exists("cart:s1"))
}

func TestRedisCartRepository_ExpiredCartIsEmpty(t *testing.T) {
	mr, client := setupTestRedis(t)
	repo := NewRedisCartRepository(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "s1", sampleItems()))
	mr.FastForward(2 * time.Minute)

	items, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRedisCartRepository_CorruptPayload(t *testing.T) {
	mr, client := setupTestRedis(t)
	repo := NewRedisCartRepository(client, time.Hour)

	require.NoError(t, mr.Set("cart:s1", "{not json"))

	_, err := repo.Load(context.Background(), "s1")
	assert.Error(t, err)
}

func TestRedisCartRepository_ConnectionFailure(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()

	repo := NewRedisCartRepository(client, time.Hour)
	mr.Close()

	_, err = repo.Load(context.Background(), "s1")
	assert.Error(t, err)
	assert.Error(t, repo.Save(context.Background(), "s1", sampleItems()))
}

func appendLine(id int) CartMutation {
	return func(items []models.CartItem) ([]models.CartItem, error) {
		return append(items, models.CartItem{ID: id, Name: "line", Price: 100, Quantity: 1}), nil
	}
}

func itemIDs(items []models.CartItem) []int {
	out := make([]int, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestRedisCartRepository_Update(t *testing.T) {
	mr, client := setupTestRedis(t)
	repo := NewRedisCartRepository(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.Update(ctx, "s1", appendLine(1)))
	require.NoError(t, repo.Update(ctx, "s1", appendLine(2)))

	items, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, itemIDs(items))
	assert.Equal(t, time.Hour, mr.TTL("cart:s1"))

	require.NoError(t, repo.Update(ctx, "s1", func([]models.CartItem) ([]models.CartItem, error) {
		return nil, nil
	}))
	assert.False(t, mr.Exists("cart:s1"))
}

func TestRedisCartRepository_UpdateAbortsOnMutationError(t *testing.T) {
	_, client := setupTestRedis(t)
	repo := NewRedisCartRepository(client, time.Hour)
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, "s1", sampleItems()))

	rejected := errors.New("rejected")
	err := repo.Update(ctx, "s1", func([]models.CartItem) ([]models.CartItem, error) {
		return nil, rejected
	})
	assert.ErrorIs(t, err, rejected)

	items, _ := repo.Load(ctx, "s1")
	assert.Len(t, items, 2)
}

func TestRedisCartRepository_UpdateRetriesOnConcurrentWrite(t *testing.T) {
	mr, client := setupTestRedis(t)
	repo := NewRedisCartRepository(client, time.Hour)
	other := NewRedisCartRepository(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Hour)
	t.Cleanup(func() { other.client.Close() })
	ctx := context.Background()

	calls := 0
	err := repo.Update(ctx, "s1", func(items []models.CartItem) ([]models.CartItem, error) {
		calls++
		if calls == 1 {
			// another instance writes between our read and our write
			require.NoError(t, other.Update(ctx, "s1", appendLine(2)))
		}
		return appendLine(1)(items)
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)

	items, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, itemIDs(items))
}

func TestRedisCartRepository_UpdateGivesUpUnderContention(t *testing.T) {
	mr, client := setupTestRedis(t)
	repo := NewRedisCartRepository(client, time.Hour)
	other := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { other.Close() })
	ctx := context.Background()

	calls := 0
	err := repo.Update(ctx, "s1", func(items []models.CartItem) ([]models.CartItem, error) {
		calls++
		require.NoError(t, other.Set(ctx, "cart:s1", "[]", 0).Err())
		return appendLine(1)(items)
	})
	assert.ErrorIs(t, err, ErrCartContention)
	assert.Equal(t, maxUpdateRetries, calls)
}

func TestMemoryCartRepository_Update(t *testing.T) {
	repo := NewMemoryCartRepository()
	ctx := context.Background()

	require.NoError(t, repo.Update(ctx, "s1", appendLine(1)))
	require.NoError(t, repo.Update(ctx, "s1", appendLine(2)))
	items, _ := repo.Load(ctx, "s1")
	assert.Equal(t, []int{1, 2}, itemIDs(items))

	rejected := errors.New("rejected")
	assert.ErrorIs(t, repo.Update(ctx, "s1", func([]models.CartItem) ([]models.CartItem, error) {
		return nil, rejected
	}), rejected)
	items, _ = repo.Load(ctx, "s1")
	assert.Len(t, items, 2)

	require.NoError(t, repo.Update(ctx, "s1", func([]models.CartItem) ([]models.CartItem, error) {
		return nil, nil
	}))
	items, _ = repo.Load(ctx, "s1")
	assert.Empty(t, items)
}

func TestMemoryCartRepository(t *testing.T) {
	repo := NewMemoryCartRepository()
	ctx := context.Background()

	items, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, repo.Save(ctx, "s1", sampleItems()))
	items, err = repo.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	// returned slice is a copy
	items[0].Quantity = 50
	again, _ := repo.Load(ctx, "s1")
	assert.Equal(t, 2, again[0].Quantity)

	require.NoError(t, repo.Delete(ctx, "s1"))
	items, _ = repo.Load(ctx, "s1")
	assert.Empty(t, items)
}
