// Package contract_repo provides the PostgreSQL implementation of the
// contract repository.
package contract_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"roomstock/internal/core/id"
	"roomstock/internal/domain/contract"
	"roomstock/internal/infrastructure/storage/postgres"
)

const contractsTable = "contracts"

// ContractRepo implements contract.Repository.
type ContractRepo struct {
	txm     *postgres.TxManager
	builder squirrel.StatementBuilderType
	cols    []string
}

// NewContractRepo creates a new contract repository.
func NewContractRepo(txm *postgres.TxManager) *ContractRepo {
	return &ContractRepo{
		txm:     txm,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		cols:    postgres.ExtractDBColumns[contract.Contract](),
	}
}

// Create inserts a new contract using its "db" tags.
func (r *ContractRepo) Create(ctx context.Context, c *contract.Contract) error {
	data := postgres.StructToMap(c)

	q := r.builder.Insert(contractsTable).SetMap(data)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert contract: %w", err)
	}

	return nil
}

// Update overwrites a contract row.
func (r *ContractRepo) Update(ctx context.Context, c *contract.Contract) error {
	data := postgres.StructToMap(c)
	delete(data, "id")
	delete(data, "created_at")

	q := r.builder.Update(contractsTable).
		SetMap(data).
		Where(squirrel.Eq{"id": c.ID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	result, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update contract: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("update contract %s: no rows affected", c.ID)
	}

	return nil
}

// GetByID retrieves a contract by id, or nil when absent.
func (r *ContractRepo) GetByID(ctx context.Context, contractID id.ID) (*contract.Contract, error) {
	return r.getOne(ctx, squirrel.Eq{"id": contractID})
}

// GetByNo retrieves a contract by its business number, or nil when absent.
func (r *ContractRepo) GetByNo(ctx context.Context, contractNo string) (*contract.Contract, error) {
	return r.getOne(ctx, squirrel.Eq{"contract_no": contractNo})
}

func (r *ContractRepo) getOne(ctx context.Context, where squirrel.Eq) (*contract.Contract, error) {
	q := r.baseSelect().Where(where).Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var c contract.Contract
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &c, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contract: %w", err)
	}

	return &c, nil
}

// ListByIDs returns contracts for the given ids.
func (r *ContractRepo) ListByIDs(ctx context.Context, ids []id.ID) ([]*contract.Contract, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	q := r.baseSelect().Where(squirrel.Eq{"id": ids})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var contracts []*contract.Contract
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &contracts, sql, args...); err != nil {
		return nil, fmt.Errorf("select contracts: %w", err)
	}

	return contracts, nil
}

// ListByHotel returns a hotel's contracts ordered by priority, creation
// time breaking ties.
func (r *ContractRepo) ListByHotel(ctx context.Context, hotelID id.ID, statuses []contract.Status) ([]*contract.Contract, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"hotel_id": hotelID}).
		OrderBy("priority", "created_at", "id")

	if len(statuses) > 0 {
		q = q.Where(squirrel.Eq{"status": statuses})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var contracts []*contract.Contract
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &contracts, sql, args...); err != nil {
		return nil, fmt.Errorf("select contracts: %w", err)
	}

	return contracts, nil
}

func (r *ContractRepo) baseSelect() squirrel.SelectBuilder {
	return r.builder.Select(r.cols...).From(contractsTable)
}

// Ensure interface compliance.
var _ contract.Repository = (*ContractRepo)(nil)
