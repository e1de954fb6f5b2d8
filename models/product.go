package models

import (
	"errors"
	"fmt"
	"strings"
)

const (
	SizeUnique  = "Única"
	BrandAll    = "Todas"
	MaxDiscount = 100
)

var ErrInvalidCatalogEntry = errors.New("invalid catalog entry")

// RawProduct is a catalog record as it arrives from a source, before
// normalization. Sources may omit fields or carry a single image instead
// of a list.
type RawProduct struct {
	ID          int      `json:"id"`
	Brand       string   `json:"brand,omitempty"`
	Model       string   `json:"model,omitempty"`
	Name        string   `json:"name,omitempty"`
	Category    string   `json:"category"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Discount    int      `json:"discount"`
	Sizes       []string `json:"sizes,omitempty"`
	Images      []string `json:"images,omitempty"`
	Image       string   `json:"image,omitempty"`
	InStock     *bool    `json:"inStock,omitempty"`
	IsNew       bool     `json:"isNew"`
	IsFeatured  bool     `json:"isFeatured"`
}

type Product struct {
	ID          int      `json:"id"`
	Brand       string   `json:"brand,omitempty"`
	Model       string   `json:"model,omitempty"`
	Name        string   `json:"name,omitempty"`
	Category    string   `json:"category"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Discount    int      `json:"discount"`
	Sizes       []string `json:"sizes"`
	Images      []string `json:"images"`
	InStock     bool     `json:"inStock"`
	IsNew       bool     `json:"isNew"`
	IsFeatured  bool     `json:"isFeatured"`

	// StockDeclared records whether the source stated availability at all.
	// InStock defaults to true when it did not.
	StockDeclared bool `json:"-"`
}

// Normalize validates the record and returns the canonical product shape:
// images always a non-empty list, a resolvable display name and
// availability resolved.
func (r RawProduct) Normalize() (Product, error) {
	if r.ID <= 0 {
		return Product{}, fmt.Errorf("%w: id must be positive, got %d", ErrInvalidCatalogEntry, r.ID)
	}
	if r.Price < 0 {
		return Product{}, fmt.Errorf("%w: product %d has negative price", ErrInvalidCatalogEntry, r.ID)
	}
	if r.Discount < 0 || r.Discount > MaxDiscount {
		return Product{}, fmt.Errorf("%w: product %d discount %d out of range", ErrInvalidCatalogEntry, r.ID, r.Discount)
	}

	images := make([]string, 0, len(r.Images)+1)
	for _, img := range r.Images {
		if img = strings.TrimSpace(img); img != "" {
			images = append(images, img)
		}
	}
	if len(images) == 0 && strings.TrimSpace(r.Image) != "" {
		images = append(images, strings.TrimSpace(r.Image))
	}
	if len(images) == 0 {
		return Product{}, fmt.Errorf("%w: product %d has no images", ErrInvalidCatalogEntry, r.ID)
	}

	p := Product{
		ID:            r.ID,
		Brand:         r.Brand,
		Model:         r.Model,
		Name:          r.Name,
		Category:      r.Category,
		Type:          r.Type,
		Description:   r.Description,
		Price:         r.Price,
		Discount:      r.Discount,
		Sizes:         append([]string{}, r.Sizes...),
		Images:        images,
		InStock:       true,
		IsNew:         r.IsNew,
		IsFeatured:    r.IsFeatured,
		StockDeclared: r.InStock != nil,
	}
	if r.InStock != nil {
		p.InStock = *r.InStock
	}
	if p.DisplayName() == "" {
		return Product{}, fmt.Errorf("%w: product %d has neither brand/model nor name", ErrInvalidCatalogEntry, r.ID)
	}
	return p, nil
}

// DisplayName is "brand model" when both are set, the plain name otherwise.
func (p Product) DisplayName() string {
	if p.Brand != "" && p.Model != "" {
		return p.Brand + " " + p.Model
	}
	return p.Name
}

func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

func (p Product) HasDiscount() bool {
	return p.Discount > 0
}

// ConfirmedInStock is true only when the source declared the product
// available. Missing availability does not count.
func (p Product) ConfirmedInStock() bool {
	return p.StockDeclared && p.InStock
}

// SortName is the model name, or the display name for products without one.
func (p Product) SortName() string {
	if p.Model != "" {
		return p.Model
	}
	return p.DisplayName()
}

type ProductDetail struct {
	Product
	FinalPrice int            `json:"finalPrice"`
	Breakdown  PriceBreakdown `json:"breakdown"`
}

type PriceBreakdown struct {
	Original       string `json:"original"`
	OriginalRaw    int    `json:"originalRaw"`
	Discount       int    `json:"discount"`
	DiscountAmount int    `json:"discountAmount"`
	Final          string `json:"final"`
	FinalRaw       int    `json:"finalRaw"`
	Saved          string `json:"saved"`
}

type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type SortOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FilterOptions holds the active storefront filters. Nil bounds and an
// empty brand list are inactive.
type FilterOptions struct {
	Brands      []string
	PriceMin    *int
	PriceMax    *int
	InStock     bool
	HasDiscount bool
}
