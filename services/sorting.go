package services

import (
	"cmp"
	"slices"
	"sync"

	"dukicks/config"
	"dukicks/models"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortDiscount  = "discount"
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"

	DefaultSort      = SortNewest
	unknownSortLabel = "Ordenamiento desconocido"
)

type SortStrategy struct {
	Key     string
	Label   string
	Compare func(a, b models.Product) int
}

var (
	collatorMu sync.Mutex
	collator   = collate.New(language.LatinAmericanSpanish)
)

// compareNames orders by sort name using Spanish collation. Collator is
// not safe for concurrent use.
func compareNames(a, b models.Product) int {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a.SortName(), b.SortName())
}

func boolRank(v bool) int {
	if v {
		return 0
	}
	return 1
}

// sortStrategies is kept in display order.
var sortStrategies = []SortStrategy{
	{Key: SortNewest, Label: "Más Nuevos", Compare: func(a, b models.Product) int {
		return cmp.Compare(boolRank(a.IsNew), boolRank(b.IsNew))
	}},
	{Key: SortPriceLow, Label: "Precio: Menor a Mayor", Compare: func(a, b models.Product) int {
		return cmp.Compare(a.Price, b.Price)
	}},
	{Key: SortPriceHigh, Label: "Precio: Mayor a Menor", Compare: func(a, b models.Product) int {
		return cmp.Compare(b.Price, a.Price)
	}},
	{Key: SortDiscount, Label: "Mayor Descuento", Compare: func(a, b models.Product) int {
		return cmp.Compare(b.Discount, a.Discount)
	}},
	{Key: SortNameAsc, Label: "Nombre (A-Z)", Compare: compareNames},
	{Key: SortNameDesc, Label: "Nombre (Z-A)", Compare: func(a, b models.Product) int {
		return compareNames(b, a)
	}},
}

func lookupStrategy(key string) (SortStrategy, bool) {
	for _, s := range sortStrategies {
		if s.Key == key {
			return s, true
		}
	}
	return SortStrategy{}, false
}

// SortProducts returns a stably sorted copy. An empty key means newest;
// an unknown key returns the products in their original order.
func SortProducts(products []models.Product, key string) []models.Product {
	out := slices.Clone(products)
	if out == nil {
		out = []models.Product{}
	}
	if key == "" {
		key = DefaultSort
	}

	strategy, ok := lookupStrategy(key)
	if !ok {
		config.Log.Warn("unknown sort strategy", zap.String("sort", key))
		return out
	}

	slices.SortStableFunc(out, strategy.Compare)
	return out
}

func SortOptions() []models.SortOption {
	opts := make([]models.SortOption, 0, len(sortStrategies))
	for _, s := range sortStrategies {
		opts = append(opts, models.SortOption{Value: s.Key, Label: s.Label})
	}
	return opts
}

func IsSortStrategyValid(key string) bool {
	_, ok := lookupStrategy(key)
	return ok
}

func SortLabel(key string) string {
	if s, ok := lookupStrategy(key); ok {
		return s.Label
	}
	return unknownSortLabel
}
