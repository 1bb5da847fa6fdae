package numerator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"roomstock/internal/core/numerator"
)

// Mock objects
type mockRow struct {
	val int64
	err error
}

func (m *mockRow) Scan(dest ...any) error {
	if m.err != nil {
		return m.err
	}
	if len(dest) > 0 {
		if ptr, ok := dest[0].(*int64); ok {
			*ptr = m.val
		}
	}
	return nil
}

type mockQuerier struct {
	mu   sync.Mutex
	seqs map[string]int64
}

func (m *mockQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.seqs == nil {
		m.seqs = make(map[string]int64)
	}

	key, _ := args[0].(string)
	m.seqs[key]++
	return &mockRow{val: m.seqs[key]}
}

func TestGetNextNumber_ContractScheme(t *testing.T) {
	q := &mockQuerier{}
	svc := New(q)
	ctx := context.Background()
	cfg := numerator.ContractConfig()

	day := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	num, err := svc.GetNextNumber(ctx, cfg, day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "HT260831001" {
		t.Errorf("expected HT260831001, got %s", num)
	}

	// Same day: sequence increments on the same prefix.
	num, err = svc.GetNextNumber(ctx, cfg, day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "HT260831002" {
		t.Errorf("expected HT260831002, got %s", num)
	}

	// Next day: sequence resets.
	num, err = svc.GetNextNumber(ctx, cfg, day.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "HT260901001" {
		t.Errorf("expected HT260901001, got %s", num)
	}
}

func TestParseSequence(t *testing.T) {
	cfg := numerator.ContractConfig()

	if got := ParseSequence(cfg, "HT260831042"); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	if got := ParseSequence(cfg, "HT"); got != -1 {
		t.Errorf("expected -1 for short input, got %d", got)
	}
}

func TestBuildKey_ResetPeriods(t *testing.T) {
	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		reset string
		want  string
	}{
		{"day", "HT_2026_08_31"},
		{"month", "HT_2026_08"},
		{"year", "HT_2026"},
		{"never", "HT"},
	}

	for _, tt := range tests {
		cfg := numerator.Config{Prefix: "HT", ResetPeriod: tt.reset}
		if got := buildKey(cfg, day); got != tt.want {
			t.Errorf("reset %q: expected %s, got %s", tt.reset, tt.want, got)
		}
	}
}
