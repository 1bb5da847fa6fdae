// Package inventory provides the InventoryUnit entity: one sellable
// room-type/day/contract allocation slot, the finest-grained record in the
// system.
package inventory

import (
	"context"
	"time"

	"roomstock/internal/core/apperror"
	"roomstock/internal/core/entity"
	"roomstock/internal/core/id"
	"roomstock/internal/core/types"
)

// UnitStatus is the sell-state of one inventory unit.
type UnitStatus string

const (
	StatusAvailable UnitStatus = "available"
	StatusReserved  UnitStatus = "reserved"
	StatusSold      UnitStatus = "sold"
	StatusPending   UnitStatus = "pending"
	StatusCancelled UnitStatus = "cancelled"
	StatusRefunded  UnitStatus = "refunded"
	StatusDisabled  UnitStatus = "disabled"
)

// ValidStatus reports whether s is a known unit status.
func ValidStatus(s UnitStatus) bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusSold, StatusPending,
		StatusCancelled, StatusRefunded, StatusDisabled:
		return true
	}
	return false
}

// Unit represents one sellable room-type/day/contract allocation slot.
//
// HotelID is denormalized from the room type for query locality and must
// always equal the room type's hotel; SetRoomType keeps the two in step.
type Unit struct {
	entity.BaseEntity

	// Code is the globally unique business identifier. Provisioning is
	// idempotent by code: re-provisioning an existing code is a no-op.
	Code string `db:"code" json:"code"`

	RoomTypeID id.ID `db:"room_type_id" json:"roomTypeId"`
	HotelID    id.ID `db:"hotel_id" json:"hotelId"`

	// Date is the calendar day this unit is sellable for.
	Date time.Time `db:"date" json:"date"`

	// ContractID is nil when the unit is not allocated to any contract,
	// e.g. after a clearing operation.
	ContractID *id.ID `db:"contract_id" json:"contractId,omitempty"`

	// MachineReserved marks a machine-reserved buffer unit.
	MachineReserved bool `db:"machine_reserved" json:"machineReserved"`

	Status UnitStatus `db:"status" json:"status"`

	CostPrice    types.Price `db:"cost_price" json:"costPrice"`
	SellingPrice types.Price `db:"selling_price" json:"sellingPrice"`

	// ProfitRate is derived from the two prices; recomputed whenever
	// either price is set.
	ProfitRate types.Price `db:"profit_rate" json:"profitRate"`

	// AdjustReason is the free-text reason of the last price adjustment.
	AdjustReason *string `db:"adjust_reason" json:"adjustReason,omitempty"`
}

// NewUnit creates a provisioned unit in available state.
func NewUnit(code string, roomType, hotel id.ID, date time.Time, contractID *id.ID) *Unit {
	u := &Unit{
		BaseEntity: entity.NewBaseEntity(),
		Code:       code,
		Date:       types.Day(date),
		ContractID: contractID,
		Status:     StatusAvailable,
		CostPrice:  types.ZeroPrice(),
	}
	u.SetRoomType(roomType, hotel)
	u.SellingPrice = types.ZeroPrice()
	u.ProfitRate = types.ProfitRate(u.CostPrice, u.SellingPrice)
	return u
}

// SetRoomType sets the room type together with its hotel, keeping the
// denormalized hotel reference from drifting.
func (u *Unit) SetRoomType(roomType, hotel id.ID) {
	u.RoomTypeID = roomType
	u.HotelID = hotel
}

// SetCostPrice writes the cost price and rederives the profit rate.
func (u *Unit) SetCostPrice(p types.Price) {
	u.CostPrice = types.ClampPrice(p)
	u.ProfitRate = types.ProfitRate(u.CostPrice, u.SellingPrice)
}

// SetSellingPrice writes the selling price and rederives the profit rate.
func (u *Unit) SetSellingPrice(p types.Price) {
	u.SellingPrice = types.ClampPrice(p)
	u.ProfitRate = types.ProfitRate(u.CostPrice, u.SellingPrice)
}

// ClearContract unconditionally drops the contract association and reverts
// the unit to available. Used when a contract is terminated or an
// allocation is revoked.
func (u *Unit) ClearContract() {
	u.ContractID = nil
	u.Status = StatusAvailable
	u.Touch()
}

// Reserve transitions an available unit to reserved.
func (u *Unit) Reserve() error {
	if u.Status != StatusAvailable {
		return apperror.NewInvalidTransition("inventory unit", string(u.Status), string(StatusReserved))
	}
	u.Status = StatusReserved
	u.Touch()
	return nil
}

// Release returns a reserved unit to available.
func (u *Unit) Release() error {
	if u.Status != StatusReserved {
		return apperror.NewInvalidTransition("inventory unit", string(u.Status), string(StatusAvailable))
	}
	u.Status = StatusAvailable
	u.Touch()
	return nil
}

// Validate implements entity.Validatable.
func (u *Unit) Validate(ctx context.Context) error {
	if u.Code == "" {
		return apperror.NewValidation("unit code is required").
			WithDetail("field", "code")
	}
	if id.IsNil(u.RoomTypeID) {
		return apperror.NewValidation("room type is required").
			WithDetail("field", "roomTypeId")
	}
	if id.IsNil(u.HotelID) {
		return apperror.NewValidation("hotel is required").
			WithDetail("field", "hotelId")
	}
	if u.Date.IsZero() {
		return apperror.NewValidation("date is required").
			WithDetail("field", "date")
	}
	if !ValidStatus(u.Status) {
		return apperror.NewValidation("invalid unit status").
			WithDetail("field", "status").
			WithDetail("value", string(u.Status))
	}
	if u.CostPrice.IsNegative() || u.SellingPrice.IsNegative() {
		return apperror.NewValidation("prices must be non-negative").
			WithDetail("costPrice", u.CostPrice.String()).
			WithDetail("sellingPrice", u.SellingPrice.String())
	}
	return nil
}
