package pricing

import (
	"context"
	"errors"
	"fmt"

	"roomstock/internal/core/id"
	"roomstock/internal/core/tx"
	"roomstock/internal/domain/batch"
	"roomstock/internal/domain/inventory"
	"roomstock/pkg/logger"
)

var (
	errInvalidTarget    = errors.New("adjustment target must be cost_price or selling_price")
	errProfitRateTarget = errors.New("profit_rate method applies to selling price only")
)

// Service applies price adjustment directives to inventory units.
// After a batch touches a date, the caller re-runs the summary aggregator
// for that date; the engine does not cascade automatically.
type Service struct {
	units inventory.Repository
	txm   tx.Manager
}

// NewService creates a new price adjustment service.
func NewService(units inventory.Repository, txm tx.Manager) *Service {
	return &Service{units: units, txm: txm}
}

// ApplyToFilter applies the adjustment to every unit the filter selects.
// A unit is written only when its computed new price differs from the
// current one, so the returned count excludes no-op units.
func (s *Service) ApplyToFilter(ctx context.Context, f inventory.UnitFilter, adj Adjustment) batch.Result {
	if err := f.Validate(); err != nil {
		return batch.Fail(err.Error())
	}
	if err := adj.validate(); err != nil {
		return batch.Fail(err.Error())
	}

	return s.apply(ctx, func(ctx context.Context) ([]*inventory.Unit, error) {
		return s.units.ListByFilter(ctx, f)
	}, adj)
}

// ApplyToUnits applies the adjustment to an explicit unit id list,
// bypassing hotel/date constraints entirely. Fast path for UI-driven
// single-cell edits.
func (s *Service) ApplyToUnits(ctx context.Context, ids []id.ID, adj Adjustment) batch.Result {
	if len(ids) == 0 {
		return batch.Fail("unit id list is empty")
	}
	if err := adj.validate(); err != nil {
		return batch.Fail(err.Error())
	}

	return s.apply(ctx, func(ctx context.Context) ([]*inventory.Unit, error) {
		return s.units.ListByIDs(ctx, ids)
	}, adj)
}

func (s *Service) apply(ctx context.Context, load func(context.Context) ([]*inventory.Unit, error), adj Adjustment) batch.Result {
	updated := 0
	err := s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		units, err := load(ctx)
		if err != nil {
			return fmt.Errorf("select units: %w", err)
		}

		for _, u := range units {
			current := u.CostPrice
			if adj.Target == TargetSelling {
				current = u.SellingPrice
			}

			newPrice := adj.Apply(current, u.CostPrice)
			if newPrice.Equal(current) {
				// Equality guard keeps no-op units out of persistence
				// and audit noise.
				continue
			}

			if adj.Target == TargetCost {
				u.SetCostPrice(newPrice)
			} else {
				u.SetSellingPrice(newPrice)
			}
			if adj.Reason != "" {
				reason := adj.Reason
				u.AdjustReason = &reason
			}
			u.Touch()

			if err := s.units.Update(ctx, u); err != nil {
				return fmt.Errorf("update unit %s: %w", u.Code, err)
			}
			updated++
		}
		return nil
	})
	if err != nil {
		logger.Error(ctx, "price adjustment failed",
			"target", adj.Target,
			"method", adj.Method,
			"error", err,
		)
		return batch.Fail(err.Error())
	}

	logger.Info(ctx, "price adjustment finished",
		"target", adj.Target,
		"method", adj.Method,
		"updated", updated,
	)
	return batch.OK("prices updated").WithUpdated(updated)
}
