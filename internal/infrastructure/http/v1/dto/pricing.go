package dto

import (
	"roomstock/internal/core/apperror"
	"roomstock/internal/core/types"
	"roomstock/internal/domain/pricing"
)

// PriceAdjustRequest applies one adjustment directive to the units the
// filter selects, or to an explicit unit list. Exactly one of filter and
// unitIds must be present.
type PriceAdjustRequest struct {
	Filter  *UnitFilterRequest `json:"filter"`
	UnitIDs []string           `json:"unitIds"`

	Target      string      `json:"target" binding:"required"`
	Method      string      `json:"method" binding:"required"`
	PriceValue  types.Price `json:"priceValue"`
	AdjustValue types.Price `json:"adjustValue"`
	ProfitRate  types.Price `json:"profitRate"`
	Reason      string      `json:"reason"`
}

// Validate checks the filter/unitIds exclusivity.
func (r PriceAdjustRequest) Validate() error {
	if r.Filter == nil && len(r.UnitIDs) == 0 {
		return apperror.NewValidation("either filter or unitIds is required")
	}
	if r.Filter != nil && len(r.UnitIDs) > 0 {
		return apperror.NewValidation("filter and unitIds are mutually exclusive")
	}
	return nil
}

// ToAdjustment converts the request to the domain directive. Unrecognized
// method strings map to the identity method, not an error.
func (r PriceAdjustRequest) ToAdjustment() pricing.Adjustment {
	return pricing.Adjustment{
		Target:      pricing.Target(r.Target),
		Method:      pricing.ParseMethod(r.Method),
		PriceValue:  r.PriceValue,
		AdjustValue: r.AdjustValue,
		ProfitRate:  r.ProfitRate,
		Reason:      r.Reason,
	}
}
