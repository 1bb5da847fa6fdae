package catalog

import (
	"context"

	"roomstock/internal/core/id"
)

// Repository defines read-only lookups over the hotel/room-type catalog.
// Missing entries are reported as (nil, nil); callers convert that to an
// operation failure rather than an exception.
type Repository interface {
	// GetHotel looks up a hotel by id.
	GetHotel(ctx context.Context, hotelID id.ID) (*Hotel, error)

	// GetRoomType looks up a room type by id.
	GetRoomType(ctx context.Context, roomTypeID id.ID) (*RoomType, error)

	// ListRoomTypesByHotel returns every room type registered for a hotel.
	ListRoomTypesByHotel(ctx context.Context, hotelID id.ID) ([]*RoomType, error)

	// ListHotels returns every hotel in the catalog.
	ListHotels(ctx context.Context) ([]*Hotel, error)
}
