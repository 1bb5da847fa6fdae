package inventory

import (
	"time"

	"roomstock/internal/core/apperror"
	"roomstock/internal/core/id"
	"roomstock/internal/core/types"
)

// DayFilterKind is a closed set of weekday filters for batch selection.
// An unknown legacy string maps to DayFilterUnknown, which matches every
// day (identity), preserving the source behavior for unrecognized values.
type DayFilterKind string

const (
	DayFilterNone    DayFilterKind = ""
	DayFilterWeekend DayFilterKind = "weekend"
	DayFilterWeekday DayFilterKind = "weekday"
	DayFilterCustom  DayFilterKind = "custom"
	DayFilterUnknown DayFilterKind = "unknown"
)

// DayFilter restricts a date range to certain weekdays.
type DayFilter struct {
	Kind DayFilterKind
	// Days is the explicit weekday set for DayFilterCustom.
	Days []time.Weekday
}

// ParseDayFilter maps a legacy string parameter onto the closed kind set.
// Unrecognized non-empty values become DayFilterUnknown (identity), not an
// error.
func ParseDayFilter(raw string, days []time.Weekday) DayFilter {
	switch DayFilterKind(raw) {
	case DayFilterNone, DayFilterWeekend, DayFilterWeekday:
		return DayFilter{Kind: DayFilterKind(raw)}
	case DayFilterCustom:
		return DayFilter{Kind: DayFilterCustom, Days: days}
	default:
		return DayFilter{Kind: DayFilterUnknown}
	}
}

// Matches reports whether the filter admits the given calendar day.
func (f DayFilter) Matches(t time.Time) bool {
	switch f.Kind {
	case DayFilterWeekend:
		return types.IsWeekend(t)
	case DayFilterWeekday:
		return !types.IsWeekend(t)
	case DayFilterCustom:
		wd := t.UTC().Weekday()
		for _, d := range f.Days {
			if d == wd {
				return true
			}
		}
		return false
	default:
		// None and Unknown admit everything.
		return true
	}
}

// Weekdays returns the concrete weekday set the filter admits, or nil when
// it admits every day. Used to push the restriction into SQL.
func (f DayFilter) Weekdays() []time.Weekday {
	switch f.Kind {
	case DayFilterWeekend:
		return []time.Weekday{time.Saturday, time.Sunday}
	case DayFilterWeekday:
		return []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
	case DayFilterCustom:
		return f.Days
	default:
		return nil
	}
}

// UnitFilter selects units for batch mutation: hotel required, optional
// room type, inclusive date range, optional weekday filter, optional
// status/contract narrowing.
type UnitFilter struct {
	HotelID    id.ID
	RoomTypeID *id.ID
	DateFrom   time.Time
	DateTo     time.Time
	Days       DayFilter
	Statuses   []UnitStatus
	ContractID *id.ID
}

// Validate checks the required batch parameters.
func (f UnitFilter) Validate() error {
	if id.IsNil(f.HotelID) {
		return apperror.NewValidation("hotel is required").
			WithDetail("field", "hotelId")
	}
	if f.DateFrom.IsZero() || f.DateTo.IsZero() {
		return apperror.NewValidation("date range is required").
			WithDetail("field", "dateFrom/dateTo")
	}
	if types.Day(f.DateFrom).After(types.Day(f.DateTo)) {
		return apperror.NewValidation("date range is inverted").
			WithDetail("dateFrom", types.FormatDay(f.DateFrom)).
			WithDetail("dateTo", types.FormatDay(f.DateTo))
	}
	return nil
}
