// Package pricing provides the price adjustment engine: directive types and
// the batch application service.
package pricing

import (
	"github.com/shopspring/decimal"

	"roomstock/internal/core/types"
)

// Target selects which price field an adjustment writes.
type Target string

const (
	TargetCost    Target = "cost_price"
	TargetSelling Target = "selling_price"
)

// Method is the closed set of adjustment methods. Legacy string inputs that
// match none of them map to MethodUnknown, which is an explicit identity
// branch: the price is left unchanged, intentionally not an error.
type Method string

const (
	MethodFixed      Method = "fixed"
	MethodPercent    Method = "percent"
	MethodIncrement  Method = "increment"
	MethodDecrement  Method = "decrement"
	MethodProfitRate Method = "profit_rate"
	MethodUnknown    Method = "unknown"
)

// ParseMethod maps a legacy string parameter onto the closed method set.
func ParseMethod(raw string) Method {
	switch Method(raw) {
	case MethodFixed, MethodPercent, MethodIncrement, MethodDecrement, MethodProfitRate:
		return Method(raw)
	default:
		return MethodUnknown
	}
}

// Adjustment is one price adjustment directive.
type Adjustment struct {
	Target Target
	Method Method

	// PriceValue is the absolute price for MethodFixed.
	PriceValue types.Price

	// AdjustValue is the delta or percentage for percent/increment/decrement.
	AdjustValue types.Price

	// ProfitRate is the target margin percentage for MethodProfitRate.
	ProfitRate types.Price

	// Reason is recorded on every unit the adjustment changes.
	Reason string
}

var hundred = decimal.NewFromInt(100)

// Apply computes the new price from the current price and (for the
// profit-rate method) the unit's cost price. The result is always clamped
// to a non-negative floor and the persisted 2-digit scale.
func (a Adjustment) Apply(current, cost types.Price) types.Price {
	switch a.Method {
	case MethodFixed:
		return types.ClampPrice(a.PriceValue)
	case MethodPercent:
		return types.ClampPrice(current.Mul(hundred.Add(a.AdjustValue)).Div(hundred))
	case MethodIncrement:
		return types.ClampPrice(current.Add(a.AdjustValue))
	case MethodDecrement:
		return types.ClampPrice(current.Sub(a.AdjustValue))
	case MethodProfitRate:
		// Only meaningful for the selling price; the caller gates the
		// target. newPrice = cost * (1 + rate/100).
		return types.ClampPrice(cost.Mul(hundred.Add(a.ProfitRate)).Div(hundred))
	default:
		// Unknown method: identity, preserved from the source system.
		return types.ClampPrice(current)
	}
}

// validate checks directive-level constraints.
func (a Adjustment) validate() error {
	if a.Target != TargetCost && a.Target != TargetSelling {
		return errInvalidTarget
	}
	if a.Method == MethodProfitRate && a.Target != TargetSelling {
		return errProfitRateTarget
	}
	return nil
}
