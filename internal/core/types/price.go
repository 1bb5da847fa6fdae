// Package types provides common type aliases and utilities.
package types

import (
	"github.com/shopspring/decimal"
)

// Price represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors; persisted values
// carry a 2-digit scale.
type Price = decimal.Decimal

// PriceScale is the persisted decimal scale for all prices.
const PriceScale = 2

// NewPrice creates a Price value from a float.
// WARNING: Use NewPriceFromString for precise values.
func NewPrice(f float64) Price {
	return decimal.NewFromFloat(f)
}

// NewPriceFromString creates a Price value from a string.
// This is the preferred method for monetary values.
func NewPriceFromString(s string) (Price, error) {
	return decimal.NewFromString(s)
}

// MustPrice creates a Price value from a string, panics on error.
// Use only for constants and tests.
func MustPrice(s string) Price {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ZeroPrice returns zero Price value.
func ZeroPrice() Price {
	return decimal.Zero
}

// ClampPrice floors a computed price at zero and normalizes it to the
// persisted 2-digit scale. Prices are never stored negative.
func ClampPrice(p Price) Price {
	if p.IsNegative() {
		return decimal.Zero.Round(PriceScale)
	}
	return p.Round(PriceScale)
}

// ProfitRate derives the profit percentage from cost and selling price:
// (selling-cost)/cost*100, rounded to 2 decimals.
//
// Defined as 0.00 when the cost price is zero or either price is zero;
// the rate is never computed against a negative or undefined base.
func ProfitRate(cost, selling Price) Price {
	if cost.Sign() <= 0 || selling.Sign() <= 0 {
		return decimal.Zero.Round(PriceScale)
	}
	return selling.Sub(cost).Div(cost).Mul(decimal.NewFromInt(100)).Round(PriceScale)
}
