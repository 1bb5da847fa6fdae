package dto

import (
	"time"

	"roomstock/internal/core/types"
	"roomstock/internal/domain/inventory"
)

// ProvisionRequest describes one provisioning run.
type ProvisionRequest struct {
	RoomTypeID      string      `json:"roomTypeId" binding:"required"`
	ContractID      *string     `json:"contractId"`
	DateFrom        string      `json:"dateFrom" binding:"required"`
	DateTo          string      `json:"dateTo" binding:"required"`
	RoomsPerDay     int         `json:"roomsPerDay" binding:"required"`
	CostPrice       types.Price `json:"costPrice"`
	SellingPrice    types.Price `json:"sellingPrice"`
	MachineReserved bool        `json:"machineReserved"`
}

// ToInput converts the request to the domain provisioning input.
func (r ProvisionRequest) ToInput() (inventory.ProvisionInput, error) {
	roomTypeID, err := parseID("roomTypeId", r.RoomTypeID)
	if err != nil {
		return inventory.ProvisionInput{}, err
	}
	contractID, err := parseOptionalID("contractId", r.ContractID)
	if err != nil {
		return inventory.ProvisionInput{}, err
	}
	from, err := parseDay("dateFrom", r.DateFrom)
	if err != nil {
		return inventory.ProvisionInput{}, err
	}
	to, err := parseDay("dateTo", r.DateTo)
	if err != nil {
		return inventory.ProvisionInput{}, err
	}

	return inventory.ProvisionInput{
		RoomTypeID:      roomTypeID,
		ContractID:      contractID,
		DateFrom:        from,
		DateTo:          to,
		RoomsPerDay:     r.RoomsPerDay,
		CostPrice:       r.CostPrice,
		SellingPrice:    r.SellingPrice,
		MachineReserved: r.MachineReserved,
	}, nil
}

// UnitFilterRequest is the batch selection filter. DayFilter accepts the
// legacy strings "", "weekend", "weekday", "custom"; anything else matches
// every day.
type UnitFilterRequest struct {
	HotelID    string   `json:"hotelId" binding:"required"`
	RoomTypeID *string  `json:"roomTypeId"`
	DateFrom   string   `json:"dateFrom" binding:"required"`
	DateTo     string   `json:"dateTo" binding:"required"`
	DayFilter  string   `json:"dayFilter"`
	Weekdays   []int    `json:"weekdays"`
	Statuses   []string `json:"statuses"`
	ContractID *string  `json:"contractId"`
}

// ToFilter converts the request to the domain unit filter.
func (r UnitFilterRequest) ToFilter() (inventory.UnitFilter, error) {
	hotelID, err := parseID("hotelId", r.HotelID)
	if err != nil {
		return inventory.UnitFilter{}, err
	}
	roomTypeID, err := parseOptionalID("roomTypeId", r.RoomTypeID)
	if err != nil {
		return inventory.UnitFilter{}, err
	}
	contractID, err := parseOptionalID("contractId", r.ContractID)
	if err != nil {
		return inventory.UnitFilter{}, err
	}
	from, err := parseDay("dateFrom", r.DateFrom)
	if err != nil {
		return inventory.UnitFilter{}, err
	}
	to, err := parseDay("dateTo", r.DateTo)
	if err != nil {
		return inventory.UnitFilter{}, err
	}

	weekdays := make([]time.Weekday, 0, len(r.Weekdays))
	for _, d := range r.Weekdays {
		weekdays = append(weekdays, time.Weekday(d%7))
	}

	statuses := make([]inventory.UnitStatus, 0, len(r.Statuses))
	for _, s := range r.Statuses {
		statuses = append(statuses, inventory.UnitStatus(s))
	}

	return inventory.UnitFilter{
		HotelID:    hotelID,
		RoomTypeID: roomTypeID,
		DateFrom:   from,
		DateTo:     to,
		Days:       inventory.ParseDayFilter(r.DayFilter, weekdays),
		Statuses:   statuses,
		ContractID: contractID,
	}, nil
}

// BatchStatusRequest mutates the status of every unit the filter selects.
type BatchStatusRequest struct {
	Filter UnitFilterRequest `json:"filter" binding:"required"`
	Status string            `json:"status" binding:"required"`
}

// StatusByIDsRequest mutates the status of an explicit unit list.
type StatusByIDsRequest struct {
	UnitIDs []string `json:"unitIds" binding:"required"`
	Status  string   `json:"status" binding:"required"`
}

// ClearContractBatchRequest releases contract allocation for every unit
// the filter selects.
type ClearContractBatchRequest struct {
	Filter UnitFilterRequest `json:"filter" binding:"required"`
}

// UnitResponse is the API shape of an inventory unit.
type UnitResponse struct {
	ID              string      `json:"id"`
	Code            string      `json:"code"`
	RoomTypeID      string      `json:"roomTypeId"`
	HotelID         string      `json:"hotelId"`
	Date            string      `json:"date"`
	ContractID      *string     `json:"contractId,omitempty"`
	MachineReserved bool        `json:"machineReserved"`
	Status          string      `json:"status"`
	CostPrice       types.Price `json:"costPrice"`
	SellingPrice    types.Price `json:"sellingPrice"`
	ProfitRate      types.Price `json:"profitRate"`
	AdjustReason    *string     `json:"adjustReason,omitempty"`
}

// FromUnit maps a domain unit to its API shape.
func FromUnit(u *inventory.Unit) UnitResponse {
	resp := UnitResponse{
		ID:              u.ID.String(),
		Code:            u.Code,
		RoomTypeID:      u.RoomTypeID.String(),
		HotelID:         u.HotelID.String(),
		Date:            types.FormatDay(u.Date),
		MachineReserved: u.MachineReserved,
		Status:          string(u.Status),
		CostPrice:       u.CostPrice,
		SellingPrice:    u.SellingPrice,
		ProfitRate:      u.ProfitRate,
		AdjustReason:    u.AdjustReason,
	}
	if u.ContractID != nil {
		s := u.ContractID.String()
		resp.ContractID = &s
	}
	return resp
}
