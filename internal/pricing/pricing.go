// Package pricing computes cart totals. All arithmetic is exact decimal; rounding to cents
// happens only when a value is formatted for display.
package pricing

import (
	"github.com/CobbyElsonfx/food-delivery-app/internal/model"

	"github.com/shopspring/decimal"
)

var (
	// FreeDeliveryThreshold is the subtotal that must be exceeded for free delivery.
	FreeDeliveryThreshold = decimal.NewFromInt(25)

	// StandardDeliveryFee applies when the subtotal does not exceed the threshold.
	StandardDeliveryFee = decimal.RequireFromString("3.99")

	// TaxRate is applied to the subtotal.
	TaxRate = decimal.RequireFromString("0.08")
)

// Summary holds the derived monetary values for a set of lines.
type Summary struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
	ItemCount   int             `json:"itemCount"`
}

// Subtotal returns the sum of price times quantity over all lines.
func Subtotal(lines []model.CartLine) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return sum
}

// DeliveryFee is free only when subtotal is strictly greater than the threshold.
func DeliveryFee(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(FreeDeliveryThreshold) {
		return decimal.Zero
	}
	return StandardDeliveryFee
}

// Tax returns the tax owed on subtotal.
func Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(TaxRate)
}

// Total returns subtotal + deliveryFee + tax.
func Total(subtotal, deliveryFee, tax decimal.Decimal) decimal.Decimal {
	return subtotal.Add(deliveryFee).Add(tax)
}

// ItemCount returns the total quantity across lines.
func ItemCount(lines []model.CartLine) int {
	count := 0
	for _, line := range lines {
		count += line.Quantity
	}
	return count
}

// Compute derives every monetary value for lines.
func Compute(lines []model.CartLine) Summary {
	subtotal := Subtotal(lines)
	fee := DeliveryFee(subtotal)
	tax := Tax(subtotal)

	return Summary{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Tax:         tax,
		Total:       Total(subtotal, fee, tax),
		ItemCount:   ItemCount(lines),
	}
}

// Rounded returns a copy with every amount rounded to cents for display.
func (s Summary) Rounded() Summary {
	return Summary{
		Subtotal:    s.Subtotal.Round(2),
		DeliveryFee: s.DeliveryFee.Round(2),
		Tax:         s.Tax.Round(2),
		Total:       s.Total.Round(2),
		ItemCount:   s.ItemCount,
	}
}

// FormatPrice renders an amount as dollars with two decimals, e.g. "$12.99".
func FormatPrice(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
