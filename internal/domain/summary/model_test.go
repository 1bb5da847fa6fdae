package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"roomstock/internal/core/id"
	"roomstock/internal/core/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		available int
		want      HealthStatus
	}{
		{"healthy stock", 100, 50, StatusNormal},
		{"exactly at threshold", 100, 10, StatusWarning},
		{"just above threshold", 100, 11, StatusNormal},
		{"below threshold", 100, 5, StatusWarning},
		{"nothing left", 100, 0, StatusSoldOut},
		{"zero capacity", 0, 5, StatusSoldOut},
		{"negative available", 10, -1, StatusSoldOut},
		{"single room available", 10, 1, StatusWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.total, tt.available))
		})
	}
}

func TestClassifyWithThreshold(t *testing.T) {
	assert.Equal(t, StatusWarning, ClassifyWithThreshold(100, 20, 20))
	assert.Equal(t, StatusNormal, ClassifyWithThreshold(100, 21, 20))
	assert.Equal(t, StatusWarning, ClassifyWithThreshold(100, 1, 1))
}

func TestSummarySettersReclassify(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	s := New(id.New(), id.New(), day)

	// Zeroed counts classify as sold out.
	assert.Equal(t, StatusSoldOut, s.Status)

	s.SetTotal(10)
	s.SetAvailable(8)
	assert.Equal(t, StatusNormal, s.Status)

	s.SetAvailable(1)
	assert.Equal(t, StatusWarning, s.Status)

	s.SetAvailable(0)
	assert.Equal(t, StatusSoldOut, s.Status)
}

func TestSummaryLowestPrice(t *testing.T) {
	s := New(id.New(), id.New(), time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	contractID := id.New()
	s.SetLowest(types.MustPrice("88.50"), &contractID)
	assert.NotNil(t, s.LowestPrice)
	assert.True(t, s.LowestPrice.Equal(types.MustPrice("88.50")))
	assert.Equal(t, contractID, *s.LowestContractID)

	s.ClearLowest()
	assert.Nil(t, s.LowestPrice)
	assert.Nil(t, s.LowestContractID)
}

func TestAvailablePercent(t *testing.T) {
	s := &Summary{Total: 3, Available: 1}
	assert.InDelta(t, 33.33, s.AvailablePercent(), 0.001)

	s = &Summary{Total: 0, Available: 5}
	assert.Equal(t, float64(0), s.AvailablePercent())
}
