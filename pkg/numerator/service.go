// Package numerator provides the database-backed numbering service.
// Sequences live in the sys_sequences table, one row per (prefix, period) key.
package numerator

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"roomstock/internal/core/numerator"
)

// Querier interface for database operations.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Service provides document numbering functionality.
type Service struct {
	querier Querier
}

// New creates a new numerator service.
func New(querier Querier) *Service {
	return &Service{querier: querier}
}

// GetNextNumber generates the next number for the period.
// Pattern: PREFIX + period stamp + padded sequence (e.g., HT260831001).
//
// Uses UPSERT ... RETURNING so the sequence is strict: numbers issued for
// the same period are consecutive with no gaps, ties broken by arrival order.
func (s *Service) GetNextNumber(ctx context.Context, cfg numerator.Config, period time.Time) (string, error) {
	if s == nil {
		return "", fmt.Errorf("numerator service is not initialized")
	}

	key := buildKey(cfg, period)

	var num int64
	err := s.querier.QueryRow(ctx, `
        INSERT INTO sys_sequences (key, current_val)
        VALUES ($1, 1)
        ON CONFLICT (key) DO UPDATE SET current_val = sys_sequences.current_val + 1
        RETURNING current_val
	`, key).Scan(&num)
	if err != nil {
		return "", fmt.Errorf("next number for %s: %w", key, err)
	}

	return formatNumber(cfg, period, num), nil
}

// SetNextNumber sets the sequence value for a period (for migration purposes).
func (s *Service) SetNextNumber(ctx context.Context, cfg numerator.Config, period time.Time, value int64) error {
	key := buildKey(cfg, period)

	var result int64
	err := s.querier.QueryRow(ctx, `
		INSERT INTO sys_sequences (key, current_val)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET current_val = $2
		RETURNING current_val
	`, key, value).Scan(&result)
	return err
}

// buildKey creates the sequence key based on config and period.
func buildKey(cfg numerator.Config, period time.Time) string {
	switch cfg.ResetPeriod {
	case "day":
		return fmt.Sprintf("%s_%s", cfg.Prefix, period.Format("2006_01_02"))
	case "month":
		return fmt.Sprintf("%s_%s", cfg.Prefix, period.Format("2006_01"))
	case "year":
		return fmt.Sprintf("%s_%s", cfg.Prefix, period.Format("2006"))
	default:
		return cfg.Prefix
	}
}

// formatNumber creates the final number string.
func formatNumber(cfg numerator.Config, period time.Time, num int64) string {
	padWidth := cfg.PadWidth
	if padWidth == 0 {
		padWidth = 3
	}

	stamp := ""
	if cfg.DateLayout != "" {
		stamp = period.Format(cfg.DateLayout)
	}
	return fmt.Sprintf("%s%s%0*d", cfg.Prefix, stamp, padWidth, num)
}

// ParseSequence extracts the trailing sequence from a formatted number.
// Returns -1 if parsing fails.
func ParseSequence(cfg numerator.Config, formatted string) int64 {
	prefixLen := len(cfg.Prefix)
	if cfg.DateLayout != "" {
		prefixLen += len(cfg.DateLayout)
	}
	if len(formatted) <= prefixLen {
		return -1
	}

	var num int64
	if _, err := fmt.Sscanf(formatted[prefixLen:], "%d", &num); err != nil {
		return -1
	}
	return num
}

// Ensure compile-time interface compliance.
var _ numerator.Generator = (*Service)(nil)
