// Package summary_repo provides the PostgreSQL implementation of the
// inventory summary repository.
package summary_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"roomstock/internal/core/id"
	"roomstock/internal/core/types"
	"roomstock/internal/domain/inventory"
	"roomstock/internal/domain/summary"
	"roomstock/internal/infrastructure/storage/postgres"
)

const summariesTable = "inventory_summaries"

// SummaryRepo implements summary.Repository.
type SummaryRepo struct {
	txm     *postgres.TxManager
	builder squirrel.StatementBuilderType
	cols    []string
}

// NewSummaryRepo creates a new inventory summary repository.
func NewSummaryRepo(txm *postgres.TxManager) *SummaryRepo {
	return &SummaryRepo{
		txm:     txm,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		cols:    postgres.ExtractDBColumns[summary.Summary](),
	}
}

// Create inserts a new summary row.
func (r *SummaryRepo) Create(ctx context.Context, s *summary.Summary) error {
	data := postgres.StructToMap(s)

	q := r.builder.Insert(summariesTable).SetMap(data)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert summary: %w", err)
	}

	return nil
}

// Update overwrites a summary row.
func (r *SummaryRepo) Update(ctx context.Context, s *summary.Summary) error {
	data := postgres.StructToMap(s)
	delete(data, "id")
	delete(data, "created_at")

	q := r.builder.Update(summariesTable).
		SetMap(data).
		Where(squirrel.Eq{"id": s.ID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	result, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update summary: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("update summary %s: no rows affected", s.ID)
	}

	return nil
}

// GetByTriple returns the row for (hotel, room-type, date), or nil.
func (r *SummaryRepo) GetByTriple(ctx context.Context, hotelID, roomTypeID id.ID, day time.Time) (*summary.Summary, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{
			"hotel_id":     hotelID,
			"room_type_id": roomTypeID,
			"date":         types.Day(day),
		}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var s summary.Summary
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &s, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get summary: %w", err)
	}

	return &s, nil
}

// ListByStatusAndRange returns summaries with the given status whose date
// falls in the closed interval [from, to].
func (r *SummaryRepo) ListByStatusAndRange(ctx context.Context, status summary.HealthStatus, from, to time.Time) ([]*summary.Summary, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"status": status}).
		Where(squirrel.GtOrEq{"date": types.Day(from)}).
		Where(squirrel.LtOrEq{"date": types.Day(to)}).
		OrderBy("date", "hotel_id", "room_type_id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var summaries []*summary.Summary
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &summaries, sql, args...); err != nil {
		return nil, fmt.Errorf("select summaries: %w", err)
	}

	return summaries, nil
}

// ListPairsByDate returns every (hotel, room-type) pair that has a summary
// row on the given day.
func (r *SummaryRepo) ListPairsByDate(ctx context.Context, day time.Time) ([]inventory.Pair, error) {
	q := r.builder.Select("hotel_id", "room_type_id").
		From(summariesTable).
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

// ListAll returns every persisted summary row.
func (r *SummaryRepo) ListAll(ctx context.Context) ([]*summary.Summary, error) {
	q := r.baseSelect().OrderBy("date", "hotel_id", "room_type_id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var summaries []*summary.Summary
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &summaries, sql, args...); err != nil {
		return nil, fmt.Errorf("select summaries: %w", err)
	}

	return summaries, nil
}

func (r *SummaryRepo) baseSelect() squirrel.SelectBuilder {
	return r.builder.Select(r.cols...).From(summariesTable)
}

// Ensure interface compliance.
var _ summary.Repository = (*SummaryRepo)(nil)
