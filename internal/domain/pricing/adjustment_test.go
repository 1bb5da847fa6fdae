package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roomstock/internal/core/types"
)

func TestParseMethod(t *testing.T) {
	assert.Equal(t, MethodFixed, ParseMethod("fixed"))
	assert.Equal(t, MethodPercent, ParseMethod("percent"))
	assert.Equal(t, MethodIncrement, ParseMethod("increment"))
	assert.Equal(t, MethodDecrement, ParseMethod("decrement"))
	assert.Equal(t, MethodProfitRate, ParseMethod("profit_rate"))

	// Legacy values map to the identity branch, not an error.
	assert.Equal(t, MethodUnknown, ParseMethod("markup"))
	assert.Equal(t, MethodUnknown, ParseMethod(""))
}

func TestAdjustmentApply(t *testing.T) {
	current := types.MustPrice("200")
	cost := types.MustPrice("100")

	tests := []struct {
		name string
		adj  Adjustment
		want string
	}{
		{
			"fixed overwrites",
			Adjustment{Method: MethodFixed, PriceValue: types.MustPrice("180")},
			"180.00",
		},
		{
			"percent up",
			Adjustment{Method: MethodPercent, AdjustValue: types.MustPrice("10")},
			"220.00",
		},
		{
			"percent down",
			Adjustment{Method: MethodPercent, AdjustValue: types.MustPrice("-50")},
			"100.00",
		},
		{
			"increment",
			Adjustment{Method: MethodIncrement, AdjustValue: types.MustPrice("15.50")},
			"215.50",
		},
		{
			"decrement",
			Adjustment{Method: MethodDecrement, AdjustValue: types.MustPrice("20")},
			"180.00",
		},
		{
			"decrement floors at zero",
			Adjustment{Method: MethodDecrement, AdjustValue: types.MustPrice("999")},
			"0.00",
		},
		{
			"profit rate from cost",
			Adjustment{Method: MethodProfitRate, ProfitRate: types.MustPrice("30")},
			"130.00",
		},
		{
			"unknown is identity",
			Adjustment{Method: MethodUnknown},
			"200.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.adj.Apply(current, cost)
			assert.True(t, got.Equal(types.MustPrice(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestAdjustmentValidate(t *testing.T) {
	ok := Adjustment{Target: TargetSelling, Method: MethodFixed}
	assert.NoError(t, ok.validate())

	badTarget := Adjustment{Target: Target("margin"), Method: MethodFixed}
	assert.Error(t, badTarget.validate())

	// profit_rate writes the selling price only.
	badCombo := Adjustment{Target: TargetCost, Method: MethodProfitRate}
	assert.Error(t, badCombo.validate())
}
