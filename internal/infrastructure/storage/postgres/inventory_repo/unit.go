// Package inventory_repo provides the PostgreSQL implementation of the
// inventory unit repository.
package inventory_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"roomstock/internal/core/id"
	"roomstock/internal/core/types"
	"roomstock/internal/domain/inventory"
	"roomstock/internal/infrastructure/storage/postgres"
)

const unitsTable = "inventory_units"

// UnitRepo implements inventory.Repository.
//
// List queries order by (created_at, id) so results follow insertion
// order. Selection semantics upstream depend on that ordering.
type UnitRepo struct {
	txm     *postgres.TxManager
	builder squirrel.StatementBuilderType
	cols    []string
}

// NewUnitRepo creates a new inventory unit repository.
func NewUnitRepo(txm *postgres.TxManager) *UnitRepo {
	return &UnitRepo{
		txm:     txm,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		cols:    postgres.ExtractDBColumns[inventory.Unit](),
	}
}

// CreateIfAbsent inserts the unit unless a row with the same code exists.
// Returns true when a row was actually created.
func (r *UnitRepo) CreateIfAbsent(ctx context.Context, u *inventory.Unit) (bool, error) {
	data := postgres.StructToMap(u)

	q := r.builder.Insert(unitsTable).
		SetMap(data).
		Suffix("ON CONFLICT (code) DO NOTHING")

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build insert: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	result, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return false, fmt.Errorf("insert unit: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// Update overwrites a unit row.
func (r *UnitRepo) Update(ctx context.Context, u *inventory.Unit) error {
	data := postgres.StructToMap(u)
	delete(data, "id")
	delete(data, "created_at")

	q := r.builder.Update(unitsTable).
		SetMap(data).
		Where(squirrel.Eq{"id": u.ID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	result, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update unit: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("update unit %s: no rows affected", u.ID)
	}

	return nil
}

// GetByID retrieves a unit by id, or nil when absent.
func (r *UnitRepo) GetByID(ctx context.Context, unitID id.ID) (*inventory.Unit, error) {
	return r.getOne(ctx, squirrel.Eq{"id": unitID})
}

// GetByCode retrieves a unit by its deterministic code, or nil when absent.
func (r *UnitRepo) GetByCode(ctx context.Context, code string) (*inventory.Unit, error) {
	return r.getOne(ctx, squirrel.Eq{"code": code})
}

func (r *UnitRepo) getOne(ctx context.Context, where squirrel.Eq) (*inventory.Unit, error) {
	q := r.baseSelect().Where(where).Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var u inventory.Unit
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &u, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}

	return &u, nil
}

// ListByFilter returns units matching the batch selection filter, in
// insertion order. The weekday restriction is pushed into SQL via
// EXTRACT(DOW), which shares Go's Sunday=0 numbering.
func (r *UnitRepo) ListByFilter(ctx context.Context, f inventory.UnitFilter) ([]*inventory.Unit, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"hotel_id": f.HotelID}).
		Where(squirrel.GtOrEq{"date": types.Day(f.DateFrom)}).
		Where(squirrel.LtOrEq{"date": types.Day(f.DateTo)})

	if f.RoomTypeID != nil {
		q = q.Where(squirrel.Eq{"room_type_id": *f.RoomTypeID})
	}
	if len(f.Statuses) > 0 {
		q = q.Where(squirrel.Eq{"status": f.Statuses})
	}
	if f.ContractID != nil {
		q = q.Where(squirrel.Eq{"contract_id": *f.ContractID})
	}
	if weekdays := f.Days.Weekdays(); weekdays != nil {
		dows := make([]int, 0, len(weekdays))
		for _, wd := range weekdays {
			dows = append(dows, int(wd))
		}
		q = q.Where(squirrel.Eq{"EXTRACT(DOW FROM date)::int": dows})
	}

	q = q.OrderBy("created_at", "id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var units []*inventory.Unit
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &units, sql, args...); err != nil {
		return nil, fmt.Errorf("select units: %w", err)
	}

	return units, nil
}

// ListByIDs returns units for an explicit id list, in insertion order.
func (r *UnitRepo) ListByIDs(ctx context.Context, ids []id.ID) ([]*inventory.Unit, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	q := r.baseSelect().
		Where(squirrel.Eq{"id": ids}).
		OrderBy("created_at", "id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var units []*inventory.Unit
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &units, sql, args...); err != nil {
		return nil, fmt.Errorf("select units: %w", err)
	}

	return units, nil
}

// ListAvailableByDay returns available units for a room type and day, in
// insertion order.
func (r *UnitRepo) ListAvailableByDay(ctx context.Context, roomTypeID id.ID, day time.Time) ([]*inventory.Unit, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{
			"room_type_id": roomTypeID,
			"date":         types.Day(day),
			"status":       inventory.StatusAvailable,
		}).
		OrderBy("created_at", "id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var units []*inventory.Unit
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &units, sql, args...); err != nil {
		return nil, fmt.Errorf("select units: %w", err)
	}

	return units, nil
}

// CountAvailableByDay counts available units for a room type and day.
func (r *UnitRepo) CountAvailableByDay(ctx context.Context, roomTypeID id.ID, day time.Time) (int, error) {
	q := r.builder.Select("COUNT(*)").
		From(unitsTable).
		Where(squirrel.Eq{
			"room_type_id": roomTypeID,
			"date":         types.Day(day),
			"status":       inventory.StatusAvailable,
		})

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var count int
	querier := r.txm.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count units: %w", err)
	}

	return count, nil
}

// AggregateDay tallies units per status bucket and finds the minimum
// positive cost price among available units, in one query.
func (r *UnitRepo) AggregateDay(ctx context.Context, hotelID, roomTypeID id.ID, day time.Time) (inventory.DayAggregate, error) {
	var agg inventory.DayAggregate

	sql := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'available'),
			COUNT(*) FILTER (WHERE status = 'reserved'),
			COUNT(*) FILTER (WHERE status = 'sold'),
			COUNT(*) FILTER (WHERE status = 'pending'),
			MIN(cost_price) FILTER (WHERE status = 'available' AND cost_price > 0)
		FROM inventory_units
		WHERE hotel_id = $1 AND room_type_id = $2 AND date = $3
	`

	querier := r.txm.GetQuerier(ctx)
	err := querier.QueryRow(ctx, sql, hotelID, roomTypeID, types.Day(day)).
		Scan(&agg.Total, &agg.Available, &agg.Reserved, &agg.Sold, &agg.Pending, &agg.MinCostPrice)
	if err != nil {
		return agg, fmt.Errorf("aggregate day: %w", err)
	}

	return agg, nil
}

// FirstAvailableAtPrice returns the first available unit (insertion order)
// carrying the exact cost price, or nil.
func (r *UnitRepo) FirstAvailableAtPrice(ctx context.Context, hotelID, roomTypeID id.ID, day time.Time, price types.Price) (*inventory.Unit, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{
			"hotel_id":     hotelID,
			"room_type_id": roomTypeID,
			"date":         types.Day(day),
			"status":       inventory.StatusAvailable,
			"cost_price":   price,
		}).
		OrderBy("created_at", "id").
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var u inventory.Unit
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &u, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit at price: %w", err)
	}

	return &u, nil
}

// ListPairsWithUnits returns every (hotel, room-type) pair holding at
// least one unit on the given day.
func (r *UnitRepo) ListPairsWithUnits(ctx context.Context, day time.Time) ([]inventory.Pair, error) {
	q := r.builder.Select("DISTINCT hotel_id", "room_type_id").
		From(unitsTable).
		Where(squirrel.Eq{"date": types.Day(day)})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var pairs []inventory.Pair
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &pairs, sql, args...); err != nil {
		return nil, fmt.Errorf("select pairs: %w", err)
	}

	return pairs, nil
}

func (r *UnitRepo) baseSelect() squirrel.SelectBuilder {
	return r.builder.Select(r.cols...).From(unitsTable)
}

// Ensure interface compliance.
var _ inventory.Repository = (*UnitRepo)(nil)
