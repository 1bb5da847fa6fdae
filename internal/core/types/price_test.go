package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfitRate(t *testing.T) {
	tests := []struct {
		name    string
		cost    string
		selling string
		want    string
	}{
		{"standard margin", "100", "150", "50"},
		{"zero cost", "0", "100", "0"},
		{"zero selling", "100", "0", "0"},
		{"fractional", "100", "133.33", "33.33"},
		{"selling below cost", "100", "80", "-20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProfitRate(MustPrice(tt.cost), MustPrice(tt.selling))
			assert.True(t, got.Equal(MustPrice(tt.want)),
				"ProfitRate(%s, %s) = %s, want %s", tt.cost, tt.selling, got, tt.want)
		})
	}
}

func TestClampPrice(t *testing.T) {
	assert.True(t, ClampPrice(MustPrice("-5")).IsZero())
	assert.True(t, ClampPrice(MustPrice("10.005")).Equal(MustPrice("10.01")))
	assert.True(t, ClampPrice(MustPrice("10.004")).Equal(MustPrice("10.00")))
	assert.True(t, ClampPrice(MustPrice("0")).IsZero())
}
