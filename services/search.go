package services

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"dukicks/models"
)

const (
	DefaultSuggestionLimit = 5
	minSuggestionQuery     = 2
)

type searchField struct {
	value  string
	weight float64
}

func searchFields(p models.Product) []searchField {
	return []searchField{
		{strings.ToLower(p.Brand), 10},
		{strings.ToLower(p.Model), 10},
		{strings.ToLower(p.Name), 8},
		{strings.ToLower(p.Category), 6},
		{strings.ToLower(p.Description), 3},
		{strings.ToLower(p.Type), 3},
	}
}

func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Search keeps products with the query somewhere in brand, model, name,
// description, category or type. A blank query returns the products as given.
func Search(products []models.Product, query string) []models.Product {
	q := normalizeQuery(query)
	if q == "" {
		return slices.Clone(products)
	}
	return keep(products, func(p models.Product) bool {
		for _, f := range searchFields(p) {
			if strings.Contains(f.value, q) {
				return true
			}
		}
		return false
	})
}

// RelevanceScore weighs how well p matches an already normalized query.
// Per field: exact x5, prefix x3, substring x2, plus x0.5 per query word
// found in the field.
func RelevanceScore(p models.Product, normalizedQuery string) float64 {
	words := strings.Fields(normalizedQuery)
	var score float64
	for _, f := range searchFields(p) {
		if f.value == normalizedQuery {
			score += f.weight * 5
		}
		if strings.HasPrefix(f.value, normalizedQuery) {
			score += f.weight * 3
		}
		if strings.Contains(f.value, normalizedQuery) {
			score += f.weight * 2
		}
		for _, w := range words {
			if strings.Contains(f.value, w) {
				score += f.weight * 0.5
			}
		}
	}
	return score
}

type scoredProduct struct {
	product models.Product
	score   float64
}

// SearchWithRelevance ranks matching products by RelevanceScore, highest
// first, ties in catalog order. Products scoring zero are dropped.
func SearchWithRelevance(products []models.Product, query string) []models.Product {
	q := normalizeQuery(query)
	if q == "" {
		return slices.Clone(products)
	}

	scored := make([]scoredProduct, 0, len(products))
	for _, p := range products {
		if s := RelevanceScore(p, q); s > 0 {
			scored = append(scored, scoredProduct{product: p, score: s})
		}
	}
	slices.SortStableFunc(scored, func(a, b scoredProduct) int {
		return cmp.Compare(b.score, a.score)
	})

	out := make([]models.Product, 0, len(scored))
	for _, s := range scored {
		out = append(out, s.product)
	}
	return out
}

// Suggestions returns up to limit distinct brand, model or category values
// containing the query. Queries shorter than two characters yield nothing.
func Suggestions(products []models.Product, query string, limit int) []string {
	q := normalizeQuery(query)
	if utf8.RuneCountInString(q) < minSuggestionQuery {
		return []string{}
	}
	if limit < 1 {
		limit = DefaultSuggestionLimit
	}

	seen := make(map[string]bool)
	out := []string{}
	for _, p := range products {
		for _, v := range []string{p.Brand, p.Model, p.Category} {
			if v == "" || seen[v] || !strings.Contains(strings.ToLower(v), q) {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// SearchWithFilters ranks by relevance, then narrows by brand, price,
// stock and discount.
func SearchWithFilters(products []models.Product, query string, opts models.FilterOptions) []models.Product {
	results := SearchWithRelevance(products, query)

	if len(opts.Brands) > 0 {
		results = ByBrand(results, opts.Brands...)
	}
	if opts.PriceMin != nil && *opts.PriceMin > 0 {
		lo := *opts.PriceMin
		results = keep(results, func(p models.Product) bool { return p.Price >= lo })
	}
	if opts.PriceMax != nil && *opts.PriceMax > 0 {
		hi := *opts.PriceMax
		results = keep(results, func(p models.Product) bool { return p.Price <= hi })
	}
	if opts.InStock {
		results = keep(results, func(p models.Product) bool { return p.InStock })
	}
	if opts.HasDiscount {
		results = keep(results, models.Product.HasDiscount)
	}
	return results
}
