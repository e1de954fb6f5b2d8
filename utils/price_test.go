package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	cases := map[int]string{
		0:        "$0",
		5:        "$5",
		599:      "$599",
		999:      "$999",
		1000:     "$1,000",
		3299:     "$3,299",
		42999:    "$42,999",
		100000:   "$100,000",
		1234567:  "$1,234,567",
		10000000: "$10,000,000",
	}
	for amount, want := range cases {
		assert.Equal(t, want, FormatPrice(amount), "amount %d", amount)
	}
}

func TestFormatPrice_NegativeFallsBack(t *testing.T) {
	assert.Equal(t, "$0", FormatPrice(-1))
	assert.Equal(t, "$0", FormatPrice(-3299))
}

func TestFormatPrices(t *testing.T) {
	assert.Equal(t, []string{"$599", "$0", "$2,899"}, FormatPrices([]int{599, -4, 2899}))
	assert.Empty(t, FormatPrices(nil))
}

func TestApplyDiscount(t *testing.T) {
	assert.Equal(t, 2969, ApplyDiscount(3299, 10))
	assert.Equal(t, 2464, ApplyDiscount(2899, 15))
	assert.Equal(t, 599, ApplyDiscount(599, 0))
	assert.Equal(t, 0, ApplyDiscount(3299, 100))
	// 4.5 rounds away from zero
	assert.Equal(t, 5, ApplyDiscount(5, 10))
}

func TestGetPriceBreakdown(t *testing.T) {
	b := GetPriceBreakdown(3299, 10)

	assert.Equal(t, "$3,299", b.Original)
	assert.Equal(t, 3299, b.OriginalRaw)
	assert.Equal(t, 10, b.Discount)
	assert.Equal(t, 330, b.DiscountAmount)
	assert.Equal(t, 2969, b.FinalRaw)
	assert.Equal(t, "$2,969", b.Final)
	assert.Equal(t, "$330", b.Saved)
}

func TestGetPriceBreakdown_AmountsAddUp(t *testing.T) {
	for price := 0; price <= 5000; price += 37 {
		for discount := 0; discount <= 100; discount++ {
			b := GetPriceBreakdown(price, discount)
			if b.DiscountAmount+b.FinalRaw != price {
				t.Fatalf("price %d discount %d: %d + %d != %d",
					price, discount, b.DiscountAmount, b.FinalRaw, price)
			}
		}
	}
}
