package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	ts := time.Date(2026, 3, 15, 2, 30, 0, 0, loc) // 2026-03-14 17:30 UTC

	got := Day(ts)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), day)

	_, err = ParseDay("31/08/2026")
	assert.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)

	days := DaysBetween(from, to)
	require.Len(t, days, 3)
	assert.Equal(t, from, days[0])
	assert.Equal(t, to, days[2])

	assert.Nil(t, DaysBetween(to, from))
	assert.Len(t, DaysBetween(from, from), 1)
}

func TestIsWeekend(t *testing.T) {
	sat := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	mon := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsWeekend(sat))
	assert.False(t, IsWeekend(mon))
}
