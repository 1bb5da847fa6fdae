// Package numerator provides domain contracts for document auto-numbering.
// Implementations live in infrastructure layer.
package numerator

import (
	"context"
	"time"
)

// Generator generates sequential document numbers.
// This is the domain contract - implementations live in pkg/numerator.
type Generator interface {
	// GetNextNumber generates the next number for the given period.
	// Pattern: PREFIX + period stamp + padded sequence (e.g., HT260831001).
	//
	// The sequence is strict (UPDATE ... RETURNING) so two numbers issued
	// for the same period are always consecutive.
	GetNextNumber(ctx context.Context, cfg Config, period time.Time) (string, error)

	// SetNextNumber sets the next sequence value (for migration purposes).
	SetNextNumber(ctx context.Context, cfg Config, period time.Time, value int64) error
}
