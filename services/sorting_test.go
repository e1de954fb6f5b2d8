package services

import (
	"testing"

	"dukicks/models"

	"github.com/stretchr/testify/assert"
)

func TestSortProducts(t *testing.T) {
	products := seedCatalog(t).All()

	cases := map[string][]int{
		SortPriceLow:  {14, 13, 4, 7, 2, 1, 8, 3},
		SortPriceHigh: {3, 8, 1, 2, 7, 4, 13, 14},
		SortNewest:    {1, 3, 8, 2, 4, 7, 13, 14},
		SortDiscount:  {4, 2, 14, 7, 1, 8, 3, 13},
		SortNameAsc:   {7, 1, 14, 3, 4, 13, 2, 8},
		SortNameDesc:  {2, 8, 13, 4, 3, 14, 1, 7},
	}
	for key, want := range cases {
		t.Run(key, func(t *testing.T) {
			assert.Equal(t, want, ids(SortProducts(products, key)))
		})
	}
}

func TestSortProducts_DefaultsToNewest(t *testing.T) {
	products := seedCatalog(t).All()
	assert.Equal(t, ids(SortProducts(products, SortNewest)), ids(SortProducts(products, "")))
}

func TestSortProducts_UnknownKeyKeepsOrder(t *testing.T) {
	products := seedCatalog(t).All()
	assert.Equal(t, ids(products), ids(SortProducts(products, "rating")))
}

func TestSortProducts_DoesNotMutateInput(t *testing.T) {
	products := seedCatalog(t).All()
	before := ids(products)

	SortProducts(products, SortPriceHigh)
	assert.Equal(t, before, ids(products))
}

func TestSortProducts_Stable(t *testing.T) {
	products := seedCatalog(t).All()

	once := SortProducts(products, SortNewest)
	assert.Equal(t, ids(once), ids(SortProducts(once, SortNewest)))

	low := SortProducts(products, SortPriceLow)
	assert.Equal(t, ids(low), ids(SortProducts(low, SortPriceLow)))
}

func TestSortProducts_Empty(t *testing.T) {
	assert.Empty(t, SortProducts(nil, SortPriceLow))
	assert.NotNil(t, SortProducts(nil, SortPriceLow))
}

func TestSortOptions(t *testing.T) {
	opts := SortOptions()
	assert.Len(t, opts, 6)
	assert.Equal(t, models.SortOption{Value: "newest", Label: "Más Nuevos"}, opts[0])
}

func TestSortLabelAndValidity(t *testing.T) {
	assert.True(t, IsSortStrategyValid("price-low"))
	assert.False(t, IsSortStrategyValid("rating"))
	assert.Equal(t, "Mayor Descuento", SortLabel("discount"))
	assert.Equal(t, "Ordenamiento desconocido", SortLabel("rating"))
}
