// Package catalog provides the hotel/room-type reference read model.
// Entries are maintained by an external catalog system; this core only
// looks them up by id and never mutates them.
package catalog

import (
	"roomstock/internal/core/id"
)

// Hotel is a reference entry for a hotel.
type Hotel struct {
	ID   id.ID  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// RoomType is a reference entry for a sellable room category.
// A room type belongs to exactly one hotel.
type RoomType struct {
	ID      id.ID  `db:"id" json:"id"`
	HotelID id.ID  `db:"hotel_id" json:"hotelId"`
	Name    string `db:"name" json:"name"`
}
