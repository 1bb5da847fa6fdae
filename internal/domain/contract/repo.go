package contract

import (
	"context"

	"roomstock/internal/core/id"
)

// Repository defines Contract persistence.
// Lookups return (nil, nil) for unknown ids; callers surface that as an
// operation failure.
type Repository interface {
	Create(ctx context.Context, c *Contract) error
	Update(ctx context.Context, c *Contract) error

	GetByID(ctx context.Context, contractID id.ID) (*Contract, error)
	GetByNo(ctx context.Context, contractNo string) (*Contract, error)

	// ListByIDs returns contracts for the given ids, in no particular order.
	ListByIDs(ctx context.Context, ids []id.ID) ([]*Contract, error)

	// ListByHotel returns contracts for a hotel ordered by priority, then
	// arrival order (creation time breaks ties).
	ListByHotel(ctx context.Context, hotelID id.ID, statuses []Status) ([]*Contract, error)
}
