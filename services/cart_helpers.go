package services

import (
	"fmt"
	"math"

	"dukicks/models"

	"github.com/shopspring/decimal"
)

func IsValidQuantity(q int) bool {
	return q >= models.MinQuantity && q <= models.MaxQuantity
}

// ParseQuantity accepts a quantity from loosely typed input. Fractions,
// NaN and values outside 1..99 are rejected.
func ParseQuantity(q float64) (int, error) {
	if math.IsNaN(q) || math.IsInf(q, 0) || q != math.Trunc(q) {
		return 0, ErrInvalidQuantity
	}
	if q < models.MinQuantity || q > models.MaxQuantity {
		return 0, ErrInvalidQuantity
	}
	return int(q), nil
}

func IsValidCartItem(item models.CartItem) bool {
	return item.ID > 0 &&
		item.Price >= 0 &&
		IsValidQuantity(item.Quantity) &&
		item.Name != ""
}

func CalculateItemTotal(item models.CartItem) int {
	if !IsValidCartItem(item) {
		return 0
	}
	return item.Price * item.Quantity
}

// Summarize derives the cart summary from its line items.
func Summarize(items []models.CartItem) models.CartSummary {
	subtotal, count := 0, 0
	for _, item := range items {
		subtotal += item.Price * item.Quantity
		count += item.Quantity
	}

	avg := 0
	if count > 0 {
		avg = int(decimal.NewFromInt(int64(subtotal)).
			Div(decimal.NewFromInt(int64(count))).
			Round(0).
			IntPart())
	}

	return models.CartSummary{
		Subtotal:          subtotal,
		Total:             subtotal,
		ItemCount:         count,
		DistinctItemCount: len(items),
		IsEmpty:           len(items) == 0,
		AverageUnitPrice:  avg,
	}
}

func ValidateCart(items []models.CartItem) models.CartValidation {
	result := models.CartValidation{Errors: []string{}, InvalidItems: []models.InvalidCartItem{}}

	seen := make(map[int]bool)
	for i, item := range items {
		switch {
		case !IsValidCartItem(item):
			result.InvalidItems = append(result.InvalidItems, models.InvalidCartItem{
				Index: i,
				ID:    item.ID,
				Error: fmt.Sprintf("invalid item at position %d", i),
			})
		case seen[item.ID]:
			result.InvalidItems = append(result.InvalidItems, models.InvalidCartItem{
				Index: i,
				ID:    item.ID,
				Error: fmt.Sprintf("duplicate product %d at position %d", item.ID, i),
			})
		default:
			seen[item.ID] = true
		}
	}

	if len(result.InvalidItems) > 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("%d invalid items", len(result.InvalidItems)))
	}
	result.Valid = len(result.Errors) == 0
	return result
}

func FindCartItem(items []models.CartItem, productID int) (models.CartItem, bool) {
	if i := indexOfItem(items, productID); i >= 0 {
		return items[i], true
	}
	return models.CartItem{}, false
}

func IsProductInCart(items []models.CartItem, productID int) bool {
	return indexOfItem(items, productID) >= 0
}

func indexOfItem(items []models.CartItem, productID int) int {
	for i, item := range items {
		if item.ID == productID {
			return i
		}
	}
	return -1
}

// NewLineItem shapes a catalog product into a cart line with quantity 1.
func NewLineItem(p models.Product, size string) models.CartItem {
	price := p.Price
	if p.HasDiscount() {
		price = PriceWithDiscount(p)
	}
	item := models.CartItem{
		ID:       p.ID,
		Name:     p.DisplayName(),
		Price:    price,
		Image:    p.PrimaryImage(),
		Category: p.Category,
		Quantity: 1,
	}
	if size != "" {
		item.Size = &size
	}
	return item
}
