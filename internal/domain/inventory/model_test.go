package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomstock/internal/core/apperror"
	"roomstock/internal/core/id"
	"roomstock/internal/core/types"
)

func newTestUnit() *Unit {
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	return NewUnit("RU260910-test0001-001", id.New(), id.New(), day, nil)
}

func TestNewUnitDefaults(t *testing.T) {
	u := newTestUnit()

	assert.Equal(t, StatusAvailable, u.Status)
	assert.True(t, u.CostPrice.IsZero())
	assert.True(t, u.SellingPrice.IsZero())
	assert.True(t, u.ProfitRate.IsZero())
	assert.Nil(t, u.ContractID)
}

func TestProfitRateDerivation(t *testing.T) {
	tests := []struct {
		name    string
		cost    string
		selling string
		want    string
	}{
		{"fifty percent margin", "100", "150", "50.00"},
		{"zero cost", "0", "100", "0.00"},
		{"zero selling", "100", "0", "0.00"},
		{"fractional margin", "100", "133.33", "33.33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := newTestUnit()
			u.SetCostPrice(types.MustPrice(tt.cost))
			u.SetSellingPrice(types.MustPrice(tt.selling))
			assert.True(t, u.ProfitRate.Equal(types.MustPrice(tt.want)),
				"got %s, want %s", u.ProfitRate, tt.want)
		})
	}
}

func TestProfitRateTracksBothPrices(t *testing.T) {
	u := newTestUnit()
	u.SetSellingPrice(types.MustPrice("150"))
	assert.True(t, u.ProfitRate.IsZero())

	// Setting the cost afterwards rederives the rate.
	u.SetCostPrice(types.MustPrice("100"))
	assert.True(t, u.ProfitRate.Equal(types.MustPrice("50.00")))
}

func TestReserveRelease(t *testing.T) {
	u := newTestUnit()

	require.NoError(t, u.Reserve())
	assert.Equal(t, StatusReserved, u.Status)

	// Double reserve is an invalid transition.
	err := u.Reserve()
	require.Error(t, err)
	assert.True(t, apperror.IsInvalidTransition(err))

	require.NoError(t, u.Release())
	assert.Equal(t, StatusAvailable, u.Status)

	err = u.Release()
	require.Error(t, err)
	assert.True(t, apperror.IsInvalidTransition(err))
}

func TestReserveFromSold(t *testing.T) {
	u := newTestUnit()
	u.Status = StatusSold

	err := u.Reserve()
	require.Error(t, err)
	assert.True(t, apperror.IsInvalidTransition(err))
}

func TestClearContract(t *testing.T) {
	contractID := id.New()
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	u := NewUnit("RU260910-test0001-002", id.New(), id.New(), day, &contractID)
	u.Status = StatusReserved

	u.ClearContract()
	assert.Nil(t, u.ContractID)
	assert.Equal(t, StatusAvailable, u.Status)
}

func TestUnitValidate(t *testing.T) {
	ctx := context.Background()

	u := newTestUnit()
	assert.NoError(t, u.Validate(ctx))

	u = newTestUnit()
	u.Code = ""
	assert.Error(t, u.Validate(ctx))

	u = newTestUnit()
	u.Status = UnitStatus("bogus")
	assert.Error(t, u.Validate(ctx))

	u = newTestUnit()
	u.CostPrice = types.NewPrice(-1)
	assert.Error(t, u.Validate(ctx))
}
