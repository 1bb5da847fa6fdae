// Package numerator provides domain contracts for document auto-numbering.
package numerator

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MockGenerator is a test implementation of Generator.
// Use in unit tests to avoid database dependencies.
type MockGenerator struct {
	GetNextNumberFunc func(ctx context.Context, cfg Config, period time.Time) (string, error)
	SetNextNumberFunc func(ctx context.Context, cfg Config, period time.Time, value int64) error

	mu   sync.Mutex
	seqs map[string]int64
}

// GetNextNumber implements Generator.
// The default behavior keeps an in-memory per-period sequence, so successive
// calls return consecutive numbers just like the real implementation.
func (m *MockGenerator) GetNextNumber(ctx context.Context, cfg Config, period time.Time) (string, error) {
	if m.GetNextNumberFunc != nil {
		return m.GetNextNumberFunc(ctx, cfg, period)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.seqs == nil {
		m.seqs = make(map[string]int64)
	}

	stamp := ""
	if cfg.DateLayout != "" {
		stamp = period.Format(cfg.DateLayout)
	}
	key := cfg.Prefix + "_" + stamp
	m.seqs[key]++

	pad := cfg.PadWidth
	if pad == 0 {
		pad = 3
	}
	return fmt.Sprintf("%s%s%0*d", cfg.Prefix, stamp, pad, m.seqs[key]), nil
}

// SetNextNumber implements Generator.
func (m *MockGenerator) SetNextNumber(ctx context.Context, cfg Config, period time.Time, value int64) error {
	if m.SetNextNumberFunc != nil {
		return m.SetNextNumberFunc(ctx, cfg, period, value)
	}
	return nil
}

// Ensure compile-time interface compliance.
var _ Generator = (*MockGenerator)(nil)
