package dto

import (
	"roomstock/internal/core/types"
	"roomstock/internal/domain/contract"
)

// CreateContractRequest carries contract intake parameters.
type CreateContractRequest struct {
	HotelID     string      `json:"hotelId" binding:"required"`
	Type        string      `json:"type" binding:"required"`
	StartDate   string      `json:"startDate" binding:"required"`
	EndDate     string      `json:"endDate" binding:"required"`
	TotalRooms  int         `json:"totalRooms"`
	TotalDays   int         `json:"totalDays"`
	TotalAmount types.Price `json:"totalAmount"`
	Priority    int         `json:"priority"`
}

// ToInput converts the request to the domain intake input.
func (r CreateContractRequest) ToInput() (contract.CreateInput, error) {
	hotelID, err := parseID("hotelId", r.HotelID)
	if err != nil {
		return contract.CreateInput{}, err
	}
	start, err := parseDay("startDate", r.StartDate)
	if err != nil {
		return contract.CreateInput{}, err
	}
	end, err := parseDay("endDate", r.EndDate)
	if err != nil {
		return contract.CreateInput{}, err
	}

	return contract.CreateInput{
		HotelID:     hotelID,
		Type:        contract.Type(r.Type),
		StartDate:   start,
		EndDate:     end,
		TotalRooms:  r.TotalRooms,
		TotalDays:   r.TotalDays,
		TotalAmount: r.TotalAmount,
		Priority:    r.Priority,
	}, nil
}

// TerminateContractRequest carries the termination reason.
type TerminateContractRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ContractResponse is the API shape of a contract.
type ContractResponse struct {
	ID                string      `json:"id"`
	ContractNo        string      `json:"contractNo"`
	HotelID           string      `json:"hotelId"`
	Type              string      `json:"type"`
	StartDate         string      `json:"startDate"`
	EndDate           string      `json:"endDate"`
	TotalRooms        int         `json:"totalRooms"`
	TotalDays         int         `json:"totalDays"`
	TotalAmount       types.Price `json:"totalAmount"`
	Status            string      `json:"status"`
	Priority          int         `json:"priority"`
	TerminationReason *string     `json:"terminationReason,omitempty"`
}

// FromContract maps a domain contract to its API shape.
func FromContract(c *contract.Contract) ContractResponse {
	return ContractResponse{
		ID:                c.ID.String(),
		ContractNo:        c.ContractNo,
		HotelID:           c.HotelID.String(),
		Type:              string(c.Type),
		StartDate:         types.FormatDay(c.StartDate),
		EndDate:           types.FormatDay(c.EndDate),
		TotalRooms:        c.TotalRooms,
		TotalDays:         c.TotalDays,
		TotalAmount:       c.TotalAmount,
		Status:            string(c.Status),
		Priority:          c.Priority,
		TerminationReason: c.TerminationReason,
	}
}
