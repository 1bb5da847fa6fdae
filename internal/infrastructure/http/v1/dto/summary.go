package dto

import (
	"strconv"
	"time"

	"roomstock/internal/core/id"
	"roomstock/internal/core/types"
	"roomstock/internal/domain/summary"
)

// RecomputeRequest rebuilds summaries for a hotel over a date range,
// optionally narrowed to one room type.
type RecomputeRequest struct {
	HotelID    string  `json:"hotelId" binding:"required"`
	RoomTypeID *string `json:"roomTypeId"`
	DateFrom   string  `json:"dateFrom" binding:"required"`
	DateTo     string  `json:"dateTo" binding:"required"`
}

// Parse resolves the request ids and date range.
func (r RecomputeRequest) Parse() (id.ID, *id.ID, time.Time, time.Time, error) {
	hotelID, err := parseID("hotelId", r.HotelID)
	if err != nil {
		return id.Nil(), nil, time.Time{}, time.Time{}, err
	}
	roomTypeID, err := parseOptionalID("roomTypeId", r.RoomTypeID)
	if err != nil {
		return id.Nil(), nil, time.Time{}, time.Time{}, err
	}
	from, err := parseDay("dateFrom", r.DateFrom)
	if err != nil {
		return id.Nil(), nil, time.Time{}, time.Time{}, err
	}
	to, err := parseDay("dateTo", r.DateTo)
	if err != nil {
		return id.Nil(), nil, time.Time{}, time.Time{}, err
	}
	return hotelID, roomTypeID, from, to, nil
}

// SyncRequest triggers a summary sync, for one day or the whole forward
// window when date is absent.
type SyncRequest struct {
	Date *string `json:"date"`
}

// ParseDate resolves the optional sync date.
func (r SyncRequest) ParseDate() (*time.Time, error) {
	if r.Date == nil || *r.Date == "" {
		return nil, nil
	}
	day, err := parseDay("date", *r.Date)
	if err != nil {
		return nil, err
	}
	return &day, nil
}

// ReclassifyRequest re-evaluates every summary's status with the given
// threshold; zero or negative falls back to the configured default.
type ReclassifyRequest struct {
	ThresholdPercent int `json:"thresholdPercent"`
}

// SummaryResponse is the API shape of an inventory summary.
type SummaryResponse struct {
	ID               string       `json:"id"`
	HotelID          string       `json:"hotelId"`
	RoomTypeID       string       `json:"roomTypeId"`
	Date             string       `json:"date"`
	TotalRooms       int          `json:"totalRooms"`
	AvailableRooms   int          `json:"availableRooms"`
	ReservedRooms    int          `json:"reservedRooms"`
	SoldRooms        int          `json:"soldRooms"`
	PendingRooms     int          `json:"pendingRooms"`
	Status           string       `json:"status"`
	AvailablePercent string       `json:"availablePercent"`
	LowestPrice      *types.Price `json:"lowestPrice,omitempty"`
	LowestContractID *string      `json:"lowestContractId,omitempty"`
}

// FromSummary maps a domain summary to its API shape.
func FromSummary(s *summary.Summary) SummaryResponse {
	resp := SummaryResponse{
		ID:               s.ID.String(),
		HotelID:          s.HotelID.String(),
		RoomTypeID:       s.RoomTypeID.String(),
		Date:             types.FormatDay(s.Date),
		TotalRooms:       s.Total,
		AvailableRooms:   s.Available,
		ReservedRooms:    s.Reserved,
		SoldRooms:        s.Sold,
		PendingRooms:     s.Pending,
		Status:           string(s.Status),
		AvailablePercent: strconv.FormatFloat(s.AvailablePercent(), 'f', 2, 64),
		LowestPrice:      s.LowestPrice,
	}
	if s.LowestContractID != nil {
		id := s.LowestContractID.String()
		resp.LowestContractID = &id
	}
	return resp
}
