package inventory

import (
	"context"
	"time"

	"roomstock/internal/core/id"
	"roomstock/internal/core/types"
)

// DayAggregate is the per-status tally for one (hotel, room-type, date),
// produced by a single aggregate query. MinCostPrice is the lowest cost
// price among available units with a positive price; nil when none exists.
type DayAggregate struct {
	Total     int
	Available int
	Reserved  int
	Sold      int
	Pending   int

	MinCostPrice *types.Price
}

// Pair identifies one (hotel, room-type) aggregation scope.
type Pair struct {
	HotelID    id.ID `db:"hotel_id"`
	RoomTypeID id.ID `db:"room_type_id"`
}

// Repository defines InventoryUnit persistence. Units are never
// hard-deleted by the core.
//
// List results follow persistence order (insertion order): selection
// semantics elsewhere depend on it.
type Repository interface {
	// CreateIfAbsent inserts the unit unless its code already exists.
	// Returns true when a row was actually created.
	CreateIfAbsent(ctx context.Context, u *Unit) (bool, error)

	Update(ctx context.Context, u *Unit) error

	GetByID(ctx context.Context, unitID id.ID) (*Unit, error)
	GetByCode(ctx context.Context, code string) (*Unit, error)

	// ListByFilter returns units matching the batch selection filter.
	ListByFilter(ctx context.Context, f UnitFilter) ([]*Unit, error)

	// ListByIDs returns units for an explicit id list (fast path for
	// UI-driven edits), in persistence order.
	ListByIDs(ctx context.Context, ids []id.ID) ([]*Unit, error)

	// ListAvailableByDay returns available units for a room type and day,
	// in persistence order.
	ListAvailableByDay(ctx context.Context, roomTypeID id.ID, day time.Time) ([]*Unit, error)

	// CountAvailableByDay is the live fallback when no summary row exists.
	CountAvailableByDay(ctx context.Context, roomTypeID id.ID, day time.Time) (int, error)

	// AggregateDay counts units per status bucket and finds the minimum
	// positive cost price among available units, in one query.
	AggregateDay(ctx context.Context, hotelID, roomTypeID id.ID, day time.Time) (DayAggregate, error)

	// FirstAvailableAtPrice returns the first (persistence order)
	// available unit with the exact cost price, or nil.
	FirstAvailableAtPrice(ctx context.Context, hotelID, roomTypeID id.ID, day time.Time, price types.Price) (*Unit, error)

	// ListPairsWithUnits returns every (hotel, room-type) pair that has at
	// least one unit on the given day.
	ListPairsWithUnits(ctx context.Context, day time.Time) ([]Pair, error)
}
