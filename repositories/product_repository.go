package repositories

import (
	"context"
	"fmt"

	"dukicks/data"
	"dukicks/models"

	"github.com/jackc/pgx/v5"
)

// ProductSource supplies raw catalog records in catalog order.
type ProductSource interface {
	FindAll(ctx context.Context) ([]models.RawProduct, error)
}

type StaticProductRepository struct {
	products []models.RawProduct
}

func NewStaticProductRepository() *StaticProductRepository {
	return &StaticProductRepository{products: data.SeedProducts()}
}

func (r *StaticProductRepository) FindAll(ctx context.Context) ([]models.RawProduct, error) {
	out := make([]models.RawProduct, len(r.products))
	copy(out, r.products)
	return out, nil
}

// Querier is the subset of pgxpool.Pool the repository needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type PostgresProductRepository struct {
	db Querier
}

func NewPostgresProductRepository(db Querier) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

const selectActiveProducts = `
	SELECT id, COALESCE(brand, ''), COALESCE(model, ''), COALESCE(name, ''),
	       category, type, COALESCE(description, ''), price, discount,
	       COALESCE(sizes, '{}'), COALESCE(images, '{}'), in_stock, is_new, is_featured
	FROM products
	WHERE is_active = true
	ORDER BY position, id`

func (r *PostgresProductRepository) FindAll(ctx context.Context) ([]models.RawProduct, error) {
	rows, err := r.db.Query(ctx, selectActiveProducts)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := []models.RawProduct{}
	for rows.Next() {
		var p models.RawProduct
		if err := rows.Scan(
			&p.ID, &p.Brand, &p.Model, &p.Name,
			&p.Category, &p.Type, &p.Description, &p.Price, &p.Discount,
			&p.Sizes, &p.Images, &p.InStock, &p.IsNew, &p.IsFeatured,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}
