// Package catalog_repo provides read-only PostgreSQL lookups over the
// hotel/room-type reference tables.
package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"roomstock/internal/core/id"
	"roomstock/internal/domain/catalog"
	"roomstock/internal/infrastructure/storage/postgres"
)

const (
	hotelsTable    = "hotels"
	roomTypesTable = "room_types"
)

// CatalogRepo implements catalog.Repository.
type CatalogRepo struct {
	txm     *postgres.TxManager
	builder squirrel.StatementBuilderType
}

// NewCatalogRepo creates a new catalog repository.
func NewCatalogRepo(txm *postgres.TxManager) *CatalogRepo {
	return &CatalogRepo{
		txm:     txm,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetHotel looks up a hotel by id, or nil when absent.
func (r *CatalogRepo) GetHotel(ctx context.Context, hotelID id.ID) (*catalog.Hotel, error) {
	q := r.builder.Select("id", "name").
		From(hotelsTable).
		Where(squirrel.Eq{"id": hotelID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var h catalog.Hotel
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &h, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get hotel: %w", err)
	}

	return &h, nil
}

// GetRoomType looks up a room type by id, or nil when absent.
func (r *CatalogRepo) GetRoomType(ctx context.Context, roomTypeID id.ID) (*catalog.RoomType, error) {
	q := r.builder.Select("id", "hotel_id", "name").
		From(roomTypesTable).
		Where(squirrel.Eq{"id": roomTypeID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rt catalog.RoomType
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &rt, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get room type: %w", err)
	}

	return &rt, nil
}

// ListRoomTypesByHotel returns every room type registered for a hotel.
func (r *CatalogRepo) ListRoomTypesByHotel(ctx context.Context, hotelID id.ID) ([]*catalog.RoomType, error) {
	q := r.builder.Select("id", "hotel_id", "name").
		From(roomTypesTable).
		Where(squirrel.Eq{"hotel_id": hotelID}).
		OrderBy("name")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var roomTypes []*catalog.RoomType
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &roomTypes, sql, args...); err != nil {
		return nil, fmt.Errorf("select room types: %w", err)
	}

	return roomTypes, nil
}

// ListHotels returns every hotel in the catalog.
func (r *CatalogRepo) ListHotels(ctx context.Context) ([]*catalog.Hotel, error) {
	q := r.builder.Select("id", "name").
		From(hotelsTable).
		OrderBy("name")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var hotels []*catalog.Hotel
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &hotels, sql, args...); err != nil {
		return nil, fmt.Errorf("select hotels: %w", err)
	}

	return hotels, nil
}

// Ensure interface compliance.
var _ catalog.Repository = (*CatalogRepo)(nil)
