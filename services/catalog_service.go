package services

import (
	"context"
	"fmt"

	"dukicks/models"
	"dukicks/repositories"
	"dukicks/utils"
)

const DefaultFeaturedLimit = 4

// Catalog is the read-only product list loaded once at startup. All
// queries return fresh slices in catalog order.
type Catalog struct {
	products []models.Product
	byID     map[int]int
}

func NewCatalog(raw []models.RawProduct) (*Catalog, error) {
	c := &Catalog{
		products: make([]models.Product, 0, len(raw)),
		byID:     make(map[int]int, len(raw)),
	}
	for _, r := range raw {
		p, err := r.Normalize()
		if err != nil {
			return nil, err
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate product id %d", models.ErrInvalidCatalogEntry, p.ID)
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

// LoadCatalog reads every record from source and normalizes it.
func LoadCatalog(ctx context.Context, source repositories.ProductSource) (*Catalog, error) {
	raw, err := source.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return NewCatalog(raw)
}

func (c *Catalog) All() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// GetByID reports false for unknown ids.
func (c *Catalog) GetByID(id int) (models.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Product{}, false
	}
	return c.products[i], true
}

func (c *Catalog) GetByCategory(category string) []models.Product {
	return c.where(func(p models.Product) bool { return p.Category == category })
}

// GetFeatured returns up to limit featured products. limit < 1 uses the default.
func (c *Catalog) GetFeatured(limit int) []models.Product {
	if limit < 1 {
		limit = DefaultFeaturedLimit
	}
	featured := c.where(func(p models.Product) bool { return p.IsFeatured })
	if len(featured) > limit {
		featured = featured[:limit]
	}
	return featured
}

func (c *Catalog) GetNew() []models.Product {
	return c.where(func(p models.Product) bool { return p.IsNew })
}

func (c *Catalog) GetCategories() []string {
	return distinct(c.products, func(p models.Product) string { return p.Category })
}

func (c *Catalog) GetBrands() []string {
	return distinct(c.products, func(p models.Product) string { return p.Brand })
}

// Search is the plain substring search over the whole catalog.
func (c *Catalog) Search(query string) []models.Product {
	return Search(c.All(), query)
}

func (c *Catalog) Detail(p models.Product) models.ProductDetail {
	return models.ProductDetail{
		Product:    p,
		FinalPrice: PriceWithDiscount(p),
		Breakdown:  utils.GetPriceBreakdown(p.Price, p.Discount),
	}
}

func PriceWithDiscount(p models.Product) int {
	return utils.ApplyDiscount(p.Price, p.Discount)
}

func (c *Catalog) where(keep func(models.Product) bool) []models.Product {
	out := []models.Product{}
	for _, p := range c.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// distinct collects non-empty values in first-occurrence order.
func distinct(products []models.Product, field func(models.Product) string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, p := range products {
		v := field(p)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
