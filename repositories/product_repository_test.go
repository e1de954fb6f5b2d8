package repositories

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProductRepository_FindAll(t *testing.T) {
	repo := NewStaticProductRepository()

	products, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, products)
	assert.Equal(t, 1, products[0].ID)

	// callers get their own copy
	products[0].Price = 1
	again, _ := repo.FindAll(context.Background())
	assert.Equal(t, 3299, again[0].Price)
}

// requirePostgres skips unless a migrated database is reachable through
// DUKICKS_TEST_DATABASE_URL.
func requirePostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping Postgres test in short mode")
	}
	dsn := os.Getenv("DUKICKS_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("DUKICKS_TEST_DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Skipf("Postgres not available: %v", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		t.Skipf("Postgres not responsive: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func TestPostgresProductRepository_FindAll(t *testing.T) {
	pool := requirePostgres(t)
	repo := NewPostgresProductRepository(pool)

	products, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, products)

	for _, p := range products {
		assert.Positive(t, p.ID)
		assert.NotEmpty(t, p.Images)
	}
}
