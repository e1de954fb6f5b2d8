package services

import (
	"slices"
	"sort"

	"dukicks/models"
)

// ByBrand keeps products whose brand is one of brands. No brands, or the
// "Todas" sentinel among them, lets everything through.
func ByBrand(products []models.Product, brands ...string) []models.Product {
	if len(brands) == 0 || slices.Contains(brands, models.BrandAll) {
		return slices.Clone(products)
	}
	return keep(products, func(p models.Product) bool {
		return slices.Contains(brands, p.Brand)
	})
}

// ByPriceRange keeps products priced within [min, max].
func ByPriceRange(products []models.Product, minPrice, maxPrice int) []models.Product {
	return keep(products, func(p models.Product) bool {
		return p.Price >= minPrice && p.Price <= maxPrice
	})
}

// InStockOnly keeps products whose source declared them in stock. A
// product with no availability on record is excluded here even though the
// catalog shows it as available: "available now" views only list stock
// that is confirmed.
func InStockOnly(products []models.Product) []models.Product {
	return keep(products, models.Product.ConfirmedInStock)
}

// ApplyFilters runs brand, minimum price, maximum price and stock filters
// in that order. A minimum of zero or less is inactive.
func ApplyFilters(products []models.Product, opts models.FilterOptions) []models.Product {
	result := slices.Clone(products)
	if result == nil {
		result = []models.Product{}
	}

	if len(opts.Brands) > 0 {
		result = ByBrand(result, opts.Brands...)
	}
	if opts.PriceMin != nil && *opts.PriceMin > 0 {
		lo := *opts.PriceMin
		result = keep(result, func(p models.Product) bool { return p.Price >= lo })
	}
	if opts.PriceMax != nil {
		hi := *opts.PriceMax
		result = keep(result, func(p models.Product) bool { return p.Price <= hi })
	}
	if opts.InStock {
		result = InStockOnly(result)
	}
	if opts.HasDiscount {
		result = keep(result, models.Product.HasDiscount)
	}
	return result
}

// UniqueBrands lists distinct brands alphabetically, optionally headed by
// the "Todas" sentinel.
func UniqueBrands(products []models.Product, includeAll bool) []string {
	brands := distinct(products, func(p models.Product) string { return p.Brand })
	sort.Strings(brands)
	if includeAll {
		return append([]string{models.BrandAll}, brands...)
	}
	return brands
}

// PriceRange reports the lowest and highest positive price.
func PriceRange(products []models.Product) models.PriceRange {
	var r models.PriceRange
	found := false
	for _, p := range products {
		if p.Price <= 0 {
			continue
		}
		if !found || p.Price < r.Min {
			r.Min = p.Price
		}
		if !found || p.Price > r.Max {
			r.Max = p.Price
		}
		found = true
	}
	return r
}

func CountByBrand(products []models.Product, brand string) int {
	if brand == models.BrandAll {
		return len(products)
	}
	n := 0
	for _, p := range products {
		if p.Brand == brand {
			n++
		}
	}
	return n
}

func keep(products []models.Product, pred func(models.Product) bool) []models.Product {
	out := []models.Product{}
	for _, p := range products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}
