package services

import (
	"testing"

	"dukicks/models"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestByBrand(t *testing.T) {
	products := seedCatalog(t).All()

	assert.Equal(t, []int{1, 7, 13}, ids(ByBrand(products, "Nike")))
	assert.Equal(t, []int{1, 3, 7, 13}, ids(ByBrand(products, "Nike", "Jordan")))
	assert.Empty(t, ByBrand(products, "Reebok"))
}

func TestByBrand_AllIsPassThrough(t *testing.T) {
	products := seedCatalog(t).All()

	assert.Equal(t, products, ByBrand(products, models.BrandAll))
	assert.Equal(t, products, ByBrand(products, "Nike", models.BrandAll))
	assert.Equal(t, products, ByBrand(products))
}

func TestByPriceRange_Inclusive(t *testing.T) {
	products := seedCatalog(t).All()

	assert.Equal(t, []int{4, 7, 13}, ids(ByPriceRange(products, 599, 2599)))
	assert.Equal(t, []int{14}, ids(ByPriceRange(products, 0, 499)))
}

func TestInStockOnly_ExcludesUndeclaredStock(t *testing.T) {
	products := seedCatalog(t).All()

	// 3 has no availability on record, 4 is out of stock
	assert.Equal(t, []int{1, 2, 7, 8, 13, 14}, ids(InStockOnly(products)))
}

func TestApplyFilters(t *testing.T) {
	products := seedCatalog(t).All()

	got := ApplyFilters(products, models.FilterOptions{
		Brands:   []string{"Nike"},
		PriceMin: intPtr(2000),
		PriceMax: intPtr(4000),
		InStock:  true,
	})
	assert.Equal(t, []int{1, 7}, ids(got))
}

func TestApplyFilters_InactiveOptions(t *testing.T) {
	products := seedCatalog(t).All()

	got := ApplyFilters(products, models.FilterOptions{PriceMin: intPtr(0)})
	assert.Equal(t, ids(products), ids(got))

	assert.Empty(t, ApplyFilters(nil, models.FilterOptions{}))
	assert.NotNil(t, ApplyFilters(nil, models.FilterOptions{}))
}

func TestApplyFilters_DoesNotMutateInput(t *testing.T) {
	products := seedCatalog(t).All()
	before := ids(products)

	ApplyFilters(products, models.FilterOptions{Brands: []string{"Adidas"}, InStock: true})
	assert.Equal(t, before, ids(products))
}

func TestUniqueBrands(t *testing.T) {
	products := seedCatalog(t).All()

	assert.Equal(t, []string{"Todas", "Adidas", "Jordan", "Nike", "Puma"}, UniqueBrands(products, true))
	assert.Equal(t, []string{"Adidas", "Jordan", "Nike", "Puma"}, UniqueBrands(products, false))
	assert.Equal(t, []string{"Todas"}, UniqueBrands(nil, true))
}

func TestPriceRange(t *testing.T) {
	products := seedCatalog(t).All()

	assert.Equal(t, models.PriceRange{Min: 499, Max: 4299}, PriceRange(products))
	assert.Equal(t, models.PriceRange{}, PriceRange(nil))
	assert.Equal(t, models.PriceRange{}, PriceRange([]models.Product{{ID: 1, Price: 0}}))
}

func TestCountByBrand(t *testing.T) {
	products := seedCatalog(t).All()

	assert.Equal(t, 3, CountByBrand(products, "Nike"))
	assert.Equal(t, 1, CountByBrand(products, "Puma"))
	assert.Equal(t, len(products), CountByBrand(products, models.BrandAll))
}
