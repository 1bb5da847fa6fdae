// Package contract provides the purchasing contract entity.
// A contract is a negotiated room-block purchase supplying inventory units.
package contract

import (
	"context"
	"time"

	"roomstock/internal/core/apperror"
	"roomstock/internal/core/entity"
	"roomstock/internal/core/id"
	"roomstock/internal/core/types"
)

// Type distinguishes how the purchased block is priced.
type Type string

const (
	TypeFixedPrice   Type = "fixed_price"
	TypeDynamicPrice Type = "dynamic_price"
)

// Status is the contract lifecycle state.
// Transitions are one-directional: pending -> active -> terminated.
// Terminated is terminal.
type Status string

const (
	StatusPending    Status = "pending"
	StatusActive     Status = "active"
	StatusTerminated Status = "terminated"
)

// Priority bounds. Lower value wins; ties broken by arrival order.
const (
	MinPriority = 0
	MaxPriority = 999
)

// Contract represents a negotiated room-block purchase agreement.
type Contract struct {
	entity.BaseEntity

	// ContractNo is the unique business number: HT + yymmdd + 3-digit
	// daily sequence.
	ContractNo string `db:"contract_no" json:"contractNo"`

	// HotelID references the owning hotel.
	HotelID id.ID `db:"hotel_id" json:"hotelId"`

	Type Type `db:"type" json:"type"`

	// Validity window, both ends inclusive.
	StartDate time.Time `db:"start_date" json:"startDate"`
	EndDate   time.Time `db:"end_date" json:"endDate"`

	TotalRooms  int         `db:"total_rooms" json:"totalRooms"`
	TotalDays   int         `db:"total_days" json:"totalDays"`
	TotalAmount types.Price `db:"total_amount" json:"totalAmount"`

	Status Status `db:"status" json:"status"`

	// Priority ranks contracts competing for the same hotel slot.
	Priority int `db:"priority" json:"priority"`

	// TerminationReason is set only when Status is terminated.
	TerminationReason *string `db:"termination_reason" json:"terminationReason,omitempty"`
}

// New creates a Contract at intake (pending).
func New(contractNo string, hotelID id.ID, ctype Type, start, end time.Time, priority int) *Contract {
	return &Contract{
		BaseEntity: entity.NewBaseEntity(),
		ContractNo: contractNo,
		HotelID:    hotelID,
		Type:       ctype,
		StartDate:  types.Day(start),
		EndDate:    types.Day(end),
		Status:     StatusPending,
		Priority:   priority,
	}
}

// Validate implements entity.Validatable.
func (c *Contract) Validate(ctx context.Context) error {
	if c.ContractNo == "" {
		return apperror.NewValidation("contract number is required").
			WithDetail("field", "contractNo")
	}

	if id.IsNil(c.HotelID) {
		return apperror.NewValidation("hotel is required").
			WithDetail("field", "hotelId")
	}

	if !isValidType(c.Type) {
		return apperror.NewValidation("invalid contract type").
			WithDetail("field", "type").
			WithDetail("value", string(c.Type))
	}

	if !c.StartDate.Before(c.EndDate) {
		return apperror.NewValidation("start date must be before end date").
			WithDetail("startDate", types.FormatDay(c.StartDate)).
			WithDetail("endDate", types.FormatDay(c.EndDate))
	}

	if c.Priority < MinPriority || c.Priority > MaxPriority {
		return apperror.NewValidation("priority out of range").
			WithDetail("field", "priority").
			WithDetail("value", c.Priority)
	}

	return nil
}

// Approve transitions the contract to active. Only pending contracts can
// be approved.
func (c *Contract) Approve() error {
	if c.Status != StatusPending {
		return apperror.NewInvalidTransition("contract", string(c.Status), string(StatusActive))
	}
	c.Status = StatusActive
	c.Touch()
	return nil
}

// Terminate moves the contract to its terminal state. Allowed from any
// non-terminal state; a reason is required.
func (c *Contract) Terminate(reason string) error {
	if c.Status == StatusTerminated {
		return apperror.NewInvalidTransition("contract", string(c.Status), string(StatusTerminated))
	}
	if reason == "" {
		return apperror.NewValidation("termination reason is required").
			WithDetail("field", "reason")
	}
	c.Status = StatusTerminated
	c.TerminationReason = &reason
	c.Touch()
	return nil
}

// Covers reports whether a calendar day falls inside the validity window.
func (c *Contract) Covers(day time.Time) bool {
	d := types.Day(day)
	return !d.Before(c.StartDate) && !d.After(c.EndDate)
}

func isValidType(t Type) bool {
	switch t {
	case TypeFixedPrice, TypeDynamicPrice:
		return true
	}
	return false
}
