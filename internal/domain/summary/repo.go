package summary

import (
	"context"
	"time"

	"roomstock/internal/core/id"
	"roomstock/internal/domain/inventory"
)

// Repository defines InventorySummary persistence. Summary rows are fully
// overwritten on each aggregation run and never deleted by the core.
type Repository interface {
	Create(ctx context.Context, s *Summary) error
	Update(ctx context.Context, s *Summary) error

	// GetByTriple returns the row for (hotel, room-type, date), or nil.
	GetByTriple(ctx context.Context, hotelID, roomTypeID id.ID, day time.Time) (*Summary, error)

	// ListByStatusAndRange returns summaries with the given status whose
	// date falls in the closed interval [from, to].
	ListByStatusAndRange(ctx context.Context, status HealthStatus, from, to time.Time) ([]*Summary, error)

	// ListPairsByDate returns every (hotel, room-type) pair that already
	// has a summary row on the given day.
	ListPairsByDate(ctx context.Context, day time.Time) ([]inventory.Pair, error)

	// ListAll returns every persisted summary (batch reclassification).
	ListAll(ctx context.Context) ([]*Summary, error)
}
