// Package summary provides the derived per-day InventorySummary, the stock
// health classifier, and the aggregation service that keeps summaries
// consistent with the underlying inventory units.
package summary

import (
	"time"

	"roomstock/internal/core/entity"
	"roomstock/internal/core/id"
	"roomstock/internal/core/types"
)

// HealthStatus is the three-state stock-health classification.
type HealthStatus string

const (
	StatusNormal  HealthStatus = "normal"
	StatusWarning HealthStatus = "warning"
	StatusSoldOut HealthStatus = "sold_out"
)

// DefaultWarningThreshold is the available-room percentage at or below
// which a summary is classified warning.
const DefaultWarningThreshold = 10

// Classify derives the stock health from room counts with the default
// threshold.
func Classify(total, available int) HealthStatus {
	return ClassifyWithThreshold(total, available, DefaultWarningThreshold)
}

// ClassifyWithThreshold is the pure classification rule:
//
//	total <= 0                          -> sold_out
//	available <= 0                      -> sold_out
//	available/total*100 <= threshold    -> warning (boundary inclusive)
//	otherwise                           -> normal
//
// A room type with zero total capacity is reported sold out, not unknown.
func ClassifyWithThreshold(total, available, threshold int) HealthStatus {
	if total <= 0 {
		return StatusSoldOut
	}
	if available <= 0 {
		return StatusSoldOut
	}
	if float64(available)/float64(total)*100 <= float64(threshold) {
		return StatusWarning
	}
	return StatusNormal
}

// Summary is the derived daily aggregate for one (hotel, room-type, date).
//
// Counts are independent tallies of unit statuses;
// available+reserved+sold+pending is NOT required to equal total.
// Each count setter re-runs the classifier, so the status is consistent
// with the counts immediately after any setter. That makes setter order
// during construction significant: total and available must both be set
// before the status is trusted.
type Summary struct {
	entity.BaseEntity

	HotelID    id.ID     `db:"hotel_id" json:"hotelId"`
	RoomTypeID id.ID     `db:"room_type_id" json:"roomTypeId"`
	Date       time.Time `db:"date" json:"date"`

	Total     int `db:"total_rooms" json:"totalRooms"`
	Available int `db:"available_rooms" json:"availableRooms"`
	Reserved  int `db:"reserved_rooms" json:"reservedRooms"`
	Sold      int `db:"sold_rooms" json:"soldRooms"`
	Pending   int `db:"pending_rooms" json:"pendingRooms"`

	Status HealthStatus `db:"status" json:"status"`

	// LowestPrice is the lowest positive cost price among available units
	// for the day; LowestContractID is the contract that offered it.
	// Both are nil when no available unit has a positive price.
	LowestPrice      *types.Price `db:"lowest_price" json:"lowestPrice,omitempty"`
	LowestContractID *id.ID       `db:"lowest_contract_id" json:"lowestContractId,omitempty"`
}

// New creates a summary row for a (hotel, room-type, date) triple with
// zeroed counts (classified sold_out until counts arrive).
func New(hotelID, roomTypeID id.ID, date time.Time) *Summary {
	s := &Summary{
		BaseEntity: entity.NewBaseEntity(),
		HotelID:    hotelID,
		RoomTypeID: roomTypeID,
		Date:       types.Day(date),
	}
	s.reclassify()
	return s
}

func (s *Summary) reclassify() {
	s.Status = Classify(s.Total, s.Available)
}

// SetTotal sets the total count and re-runs the classifier.
func (s *Summary) SetTotal(n int) {
	s.Total = n
	s.reclassify()
}

// SetAvailable sets the available count and re-runs the classifier.
func (s *Summary) SetAvailable(n int) {
	s.Available = n
	s.reclassify()
}

// SetReserved sets the reserved count and re-runs the classifier.
func (s *Summary) SetReserved(n int) {
	s.Reserved = n
	s.reclassify()
}

// SetSold sets the sold count and re-runs the classifier.
func (s *Summary) SetSold(n int) {
	s.Sold = n
	s.reclassify()
}

// SetPending sets the pending count and re-runs the classifier.
func (s *Summary) SetPending(n int) {
	s.Pending = n
	s.reclassify()
}

// SetLowest records the lowest positive cost price and its contract.
func (s *Summary) SetLowest(price types.Price, contractID *id.ID) {
	p := price
	s.LowestPrice = &p
	s.LowestContractID = contractID
}

// ClearLowest drops the lowest price and contract when no available unit
// has a positive price.
func (s *Summary) ClearLowest() {
	s.LowestPrice = nil
	s.LowestContractID = nil
}

// AvailablePercent returns available/total*100 rounded to 2 decimals;
// 0 when total is not positive.
func (s *Summary) AvailablePercent() float64 {
	if s.Total <= 0 {
		return 0
	}
	pct := float64(s.Available) / float64(s.Total) * 100
	return float64(int(pct*100+0.5)) / 100
}
