// Package availability provides the read-only query facade: per-day
// availability, price range, and the deterministic would-select projection
// for a stay.
package availability

import (
	"context"
	"time"

	"roomstock/internal/core/apperror"
	"roomstock/internal/core/id"
	"roomstock/internal/core/types"
	"roomstock/internal/domain/catalog"
	"roomstock/internal/domain/contract"
	"roomstock/internal/domain/inventory"
	"roomstock/internal/domain/summary"
)

// UnitView is one available unit with its pricing and contract metadata.
type UnitView struct {
	UnitID           id.ID       `json:"unitId"`
	Code             string      `json:"code"`
	ContractID       *id.ID      `json:"contractId,omitempty"`
	ContractPriority *int        `json:"contractPriority,omitempty"`
	CostPrice        types.Price `json:"costPrice"`
	SellingPrice     types.Price `json:"sellingPrice"`

	// Selected marks the units the default projection would pick.
	Selected bool `json:"selected"`
}

// DayAvailability is the per-day slice of a stay query.
type DayAvailability struct {
	Date      time.Time            `json:"date"`
	Total     int                  `json:"totalRooms"`
	Available int                  `json:"availableRooms"`
	Reserved  int                  `json:"reservedRooms"`
	Sold      int                  `json:"soldRooms"`
	Pending   int                  `json:"pendingRooms"`
	Status    summary.HealthStatus `json:"status"`

	// MinPrice/MaxPrice bound the selling prices of available units.
	MinPrice *types.Price `json:"minPrice,omitempty"`
	MaxPrice *types.Price `json:"maxPrice,omitempty"`

	Units []UnitView `json:"units"`

	// IsDefault is true only if exactly the requested room count could be
	// marked selected.
	IsDefault bool `json:"isDefault"`
}

// Availability is the full answer for a stay date range.
type Availability struct {
	RoomTypeID id.ID             `json:"roomTypeId"`
	HotelID    id.ID             `json:"hotelId"`
	CheckIn    time.Time         `json:"checkIn"`
	CheckOut   time.Time         `json:"checkOut"`
	RoomCount  int               `json:"roomCount"`
	Days       []DayAvailability `json:"days"`
}

// Service composes the unit, summary, contract, and catalog stores into the
// read-only availability answer.
type Service struct {
	units     inventory.Repository
	summaries summary.Repository
	contracts contract.Repository
	catalog   catalog.Repository
}

// NewService creates a new availability query service.
func NewService(units inventory.Repository, summaries summary.Repository, contracts contract.Repository, cat catalog.Repository) *Service {
	return &Service{
		units:     units,
		summaries: summaries,
		contracts: contracts,
		catalog:   cat,
	}
}

// GetAvailability answers a stay query for [checkIn, checkOut): the
// checkout day itself is excluded, standard hotel semantics.
//
// The would-select projection walks units in persistence order and marks
// the first roomCount of them. This is intentionally not price-optimal
// selection (FIFO fairness across contracts); the lowest-price concept
// lives on the summary, not here.
func (s *Service) GetAvailability(ctx context.Context, roomTypeID id.ID, checkIn, checkOut time.Time, roomCount int) (*Availability, error) {
	if roomCount <= 0 {
		return nil, apperror.NewValidation("room count must be positive").
			WithDetail("field", "roomCount")
	}
	in, out := types.Day(checkIn), types.Day(checkOut)
	if !in.Before(out) {
		return nil, apperror.NewValidation("check-in must be before check-out").
			WithDetail("checkIn", types.FormatDay(in)).
			WithDetail("checkOut", types.FormatDay(out))
	}

	rt, err := s.catalog.GetRoomType(ctx, roomTypeID)
	if err != nil {
		return nil, err
	}
	if rt == nil {
		return nil, apperror.NewNotFound("room type", roomTypeID)
	}

	result := &Availability{
		RoomTypeID: rt.ID,
		HotelID:    rt.HotelID,
		CheckIn:    in,
		CheckOut:   out,
		RoomCount:  roomCount,
	}

	for day := in; day.Before(out); day = day.AddDate(0, 0, 1) {
		da, err := s.buildDay(ctx, rt, day, roomCount)
		if err != nil {
			return nil, err
		}
		result.Days = append(result.Days, *da)
	}
	return result, nil
}

func (s *Service) buildDay(ctx context.Context, rt *catalog.RoomType, day time.Time, roomCount int) (*DayAvailability, error) {
	da := &DayAvailability{Date: day}

	row, err := s.summaries.GetByTriple(ctx, rt.HotelID, rt.ID, day)
	if err != nil {
		return nil, err
	}
	if row != nil {
		da.Total = row.Total
		da.Available = row.Available
		da.Reserved = row.Reserved
		da.Sold = row.Sold
		da.Pending = row.Pending
		da.Status = row.Status
	} else {
		// No summary yet: fall back to a live count of available units.
		live, err := s.units.CountAvailableByDay(ctx, rt.ID, day)
		if err != nil {
			return nil, err
		}
		da.Total = live
		da.Available = live
		da.Status = summary.Classify(da.Total, da.Available)
	}

	units, err := s.units.ListAvailableByDay(ctx, rt.ID, day)
	if err != nil {
		return nil, err
	}

	priorities, err := s.contractPriorities(ctx, units)
	if err != nil {
		return nil, err
	}

	selected := 0
	for _, u := range units {
		view := UnitView{
			UnitID:       u.ID,
			Code:         u.Code,
			ContractID:   u.ContractID,
			CostPrice:    u.CostPrice,
			SellingPrice: u.SellingPrice,
		}
		if u.ContractID != nil {
			if p, ok := priorities[*u.ContractID]; ok {
				prio := p
				view.ContractPriority = &prio
			}
		}

		if selected < roomCount {
			view.Selected = true
			selected++
		}

		if u.SellingPrice.IsPositive() {
			if da.MinPrice == nil || u.SellingPrice.LessThan(*da.MinPrice) {
				p := u.SellingPrice
				da.MinPrice = &p
			}
			if da.MaxPrice == nil || u.SellingPrice.GreaterThan(*da.MaxPrice) {
				p := u.SellingPrice
				da.MaxPrice = &p
			}
		}

		da.Units = append(da.Units, view)
	}

	da.IsDefault = selected == roomCount
	return da, nil
}

// contractPriorities resolves the priority of every contract referenced by
// the unit set.
func (s *Service) contractPriorities(ctx context.Context, units []*inventory.Unit) (map[id.ID]int, error) {
	seen := make(map[id.ID]struct{})
	var ids []id.ID
	for _, u := range units {
		if u.ContractID == nil {
			continue
		}
		if _, ok := seen[*u.ContractID]; ok {
			continue
		}
		seen[*u.ContractID] = struct{}{}
		ids = append(ids, *u.ContractID)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	contracts, err := s.contracts.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	priorities := make(map[id.ID]int, len(contracts))
	for _, c := range contracts {
		priorities[c.ID] = c.Priority
	}
	return priorities, nil
}
