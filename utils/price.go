package utils

import (
	"dukicks/config"
	"dukicks/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const fallbackPrice = "$0"

var (
	hundred      = decimal.NewFromInt(100)
	pricePrinter = message.NewPrinter(language.MustParse("es-MX"))
)

// FormatPrice renders a peso amount the way es-MX shows it: currency
// symbol, thousands grouped with commas, no decimals. Negative amounts
// render as "$0".
func FormatPrice(amount int) string {
	if amount < 0 {
		config.Log.Warn("formatPrice received invalid amount", zap.Int("amount", amount))
		return fallbackPrice
	}
	return "$" + pricePrinter.Sprint(number.Decimal(amount))
}

func FormatPrices(amounts []int) []string {
	formatted := make([]string, 0, len(amounts))
	for _, a := range amounts {
		formatted = append(formatted, FormatPrice(a))
	}
	return formatted
}

// ApplyDiscount returns round(price * (1 - discount/100)), ties away from zero.
func ApplyDiscount(price, discountPercent int) int {
	factor := decimal.NewFromInt(1).Sub(decimal.NewFromInt(int64(discountPercent)).Div(hundred))
	return int(decimal.NewFromInt(int64(price)).Mul(factor).Round(0).IntPart())
}

// DiscountAmount returns round(price * discount / 100).
func DiscountAmount(price, discountPercent int) int {
	amount := decimal.NewFromInt(int64(price)).
		Mul(decimal.NewFromInt(int64(discountPercent))).
		Div(hundred)
	return int(amount.Round(0).IntPart())
}

// GetPriceBreakdown splits a price into discount and final amounts. The
// final amount is derived from the rounded discount so both always add up
// to the original.
func GetPriceBreakdown(price, discountPercent int) models.PriceBreakdown {
	discountAmount := DiscountAmount(price, discountPercent)
	finalPrice := price - discountAmount

	return models.PriceBreakdown{
		Original:       FormatPrice(price),
		OriginalRaw:    price,
		Discount:       discountPercent,
		DiscountAmount: discountAmount,
		Final:          FormatPrice(finalPrice),
		FinalRaw:       finalPrice,
		Saved:          FormatPrice(discountAmount),
	}
}
