package summary

import (
	"context"
	"fmt"
	"time"

	"roomstock/internal/core/id"
	"roomstock/internal/core/tx"
	"roomstock/internal/core/types"
	"roomstock/internal/domain/batch"
	"roomstock/internal/domain/catalog"
	"roomstock/internal/domain/inventory"
	"roomstock/pkg/logger"
)

// SyncWindowDays is the default forward window for a dateless SyncAll run.
const SyncWindowDays = 30

// Service recomputes summary rows from the inventory unit store.
//
// Batch operations here are documented as not concurrency-safe: callers
// must not run SyncAll overlapping with itself for the same scope.
type Service struct {
	summaries Repository
	units     inventory.Repository
	catalog   catalog.Repository
	txm       tx.Manager
}

// NewService creates a new summary aggregation service.
func NewService(summaries Repository, units inventory.Repository, cat catalog.Repository, txm tx.Manager) *Service {
	return &Service{
		summaries: summaries,
		units:     units,
		catalog:   cat,
		txm:       txm,
	}
}

// RecomputeSummary rebuilds the summary row for one (hotel, room-type,
// date) triple from the unit store. The row is loaded or created, then
// fully overwritten: counts unconditionally, lowest price/contract when an
// available unit with a positive cost price exists, cleared otherwise.
func (s *Service) RecomputeSummary(ctx context.Context, hotelID, roomTypeID id.ID, date time.Time) (*Summary, error) {
	day := types.Day(date)

	var row *Summary
	err := s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		row, err = s.recomputeLocked(ctx, hotelID, roomTypeID, day)
		return err
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// recomputeLocked does the actual work; the caller owns the transaction.
func (s *Service) recomputeLocked(ctx context.Context, hotelID, roomTypeID id.ID, day time.Time) (*Summary, error) {
	row, err := s.summaries.GetByTriple(ctx, hotelID, roomTypeID, day)
	if err != nil {
		return nil, fmt.Errorf("load summary: %w", err)
	}
	created := false
	if row == nil {
		row = New(hotelID, roomTypeID, day)
		created = true
	}

	agg, err := s.units.AggregateDay(ctx, hotelID, roomTypeID, day)
	if err != nil {
		return nil, fmt.Errorf("aggregate units: %w", err)
	}

	// Order matters: total before available, both before the status is
	// read anywhere.
	row.SetTotal(agg.Total)
	row.SetAvailable(agg.Available)
	row.SetReserved(agg.Reserved)
	row.SetSold(agg.Sold)
	row.SetPending(agg.Pending)

	if agg.MinCostPrice != nil {
		// Ties broken by persistence order: first match wins.
		cheapest, err := s.units.FirstAvailableAtPrice(ctx, hotelID, roomTypeID, day, *agg.MinCostPrice)
		if err != nil {
			return nil, fmt.Errorf("find lowest-price unit: %w", err)
		}
		var contractID *id.ID
		if cheapest != nil {
			contractID = cheapest.ContractID
		}
		row.SetLowest(*agg.MinCostPrice, contractID)
	} else {
		row.ClearLowest()
	}

	row.Touch()
	if created {
		if err := s.summaries.Create(ctx, row); err != nil {
			return nil, fmt.Errorf("create summary: %w", err)
		}
	} else {
		if err := s.summaries.Update(ctx, row); err != nil {
			return nil, fmt.Errorf("update summary: %w", err)
		}
	}
	return row, nil
}

// RecomputeRange recomputes every day in the closed interval [start, end].
// When roomTypeID is nil, every room type present at the hotel is covered.
func (s *Service) RecomputeRange(ctx context.Context, hotelID id.ID, roomTypeID *id.ID, start, end time.Time) batch.Result {
	if id.IsNil(hotelID) {
		return batch.Fail("hotel is required")
	}
	if start.IsZero() || end.IsZero() || types.Day(start).After(types.Day(end)) {
		return batch.Fail("invalid date range")
	}

	var roomTypes []id.ID
	if roomTypeID != nil {
		roomTypes = []id.ID{*roomTypeID}
	} else {
		rts, err := s.catalog.ListRoomTypesByHotel(ctx, hotelID)
		if err != nil {
			logger.Error(ctx, "list room types failed", "hotel_id", hotelID, "error", err)
			return batch.Fail("list room types failed")
		}
		for _, rt := range rts {
			roomTypes = append(roomTypes, rt.ID)
		}
	}

	updated := 0
	err := s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		for _, day := range types.DaysBetween(start, end) {
			for _, rt := range roomTypes {
				if _, err := s.recomputeLocked(ctx, hotelID, rt, day); err != nil {
					return err
				}
				updated++
			}
		}
		return nil
	})
	if err != nil {
		logger.Error(ctx, "recompute range failed", "hotel_id", hotelID, "error", err)
		return batch.Fail(err.Error())
	}

	return batch.OK("summaries recomputed").WithUpdated(updated)
}

// SyncAll recomputes summaries system-wide.
//
// With a date: every (hotel, room-type) pair that already has a summary on
// that date, or, when none exist yet, every pair that has at least one
// inventory unit on that date. Without a date: every catalog pair for every
// day in [today, today+SyncWindowDays].
func (s *Service) SyncAll(ctx context.Context, date *time.Time) batch.Result {
	if date != nil {
		return s.syncDay(ctx, types.Day(*date))
	}

	today := types.Today()
	end := today.AddDate(0, 0, SyncWindowDays)

	hotels, err := s.catalog.ListHotels(ctx)
	if err != nil {
		logger.Error(ctx, "list hotels failed", "error", err)
		return batch.Fail("list hotels failed")
	}

	updated := 0
	err = s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		for _, h := range hotels {
			roomTypes, err := s.catalog.ListRoomTypesByHotel(ctx, h.ID)
			if err != nil {
				return fmt.Errorf("list room types for hotel %s: %w", h.ID, err)
			}
			for _, day := range types.DaysBetween(today, end) {
				for _, rt := range roomTypes {
					if _, err := s.recomputeLocked(ctx, h.ID, rt.ID, day); err != nil {
						return err
					}
					updated++
				}
			}
		}
		return nil
	})
	if err != nil {
		logger.Error(ctx, "summary sync failed", "error", err)
		return batch.Fail(err.Error())
	}

	logger.Info(ctx, "summary sync finished", "updated", updated)
	return batch.OK("summaries synchronized").WithUpdated(updated)
}

func (s *Service) syncDay(ctx context.Context, day time.Time) batch.Result {
	pairs, err := s.summaries.ListPairsByDate(ctx, day)
	if err != nil {
		logger.Error(ctx, "list summary pairs failed", "date", types.FormatDay(day), "error", err)
		return batch.Fail("list summary pairs failed")
	}
	if len(pairs) == 0 {
		pairs, err = s.units.ListPairsWithUnits(ctx, day)
		if err != nil {
			logger.Error(ctx, "list unit pairs failed", "date", types.FormatDay(day), "error", err)
			return batch.Fail("list unit pairs failed")
		}
	}

	updated := 0
	err = s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		for _, p := range pairs {
			if _, err := s.recomputeLocked(ctx, p.HotelID, p.RoomTypeID, day); err != nil {
				return err
			}
			updated++
		}
		return nil
	})
	if err != nil {
		logger.Error(ctx, "summary sync failed", "date", types.FormatDay(day), "error", err)
		return batch.Fail(err.Error())
	}

	logger.Info(ctx, "summary sync finished", "date", types.FormatDay(day), "updated", updated)
	return batch.OK("summaries synchronized").WithUpdated(updated)
}

// ReclassifyAll re-runs the classifier with a caller-supplied threshold
// over every persisted summary and persists only rows whose classification
// actually changed. Returns the changed count.
func (s *Service) ReclassifyAll(ctx context.Context, warningThresholdPercent int) batch.Result {
	threshold := warningThresholdPercent
	if threshold <= 0 {
		threshold = DefaultWarningThreshold
	}

	updated := 0
	err := s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		rows, err := s.summaries.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("list summaries: %w", err)
		}

		for _, row := range rows {
			next := ClassifyWithThreshold(row.Total, row.Available, threshold)
			if next == row.Status {
				continue
			}
			row.Status = next
			row.Touch()
			if err := s.summaries.Update(ctx, row); err != nil {
				return fmt.Errorf("update summary %s: %w", row.ID, err)
			}
			updated++
		}
		return nil
	})
	if err != nil {
		logger.Error(ctx, "reclassification failed", "threshold", threshold, "error", err)
		return batch.Fail(err.Error())
	}

	logger.Info(ctx, "reclassification finished", "threshold", threshold, "updated", updated)
	return batch.OK("summaries reclassified").WithUpdated(updated)
}
