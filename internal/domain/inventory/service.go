package inventory

import (
	"context"
	"fmt"
	"time"

	"roomstock/internal/core/apperror"
	"roomstock/internal/core/id"
	"roomstock/internal/core/tx"
	"roomstock/internal/core/types"
	"roomstock/internal/domain/batch"
	"roomstock/internal/domain/catalog"
	"roomstock/internal/domain/contract"
	"roomstock/pkg/logger"
)

// ProvisionInput describes one provisioning run: RoomsPerDay units for every
// day in the inclusive range, allocated to the given contract.
type ProvisionInput struct {
	RoomTypeID      id.ID
	ContractID      *id.ID
	DateFrom        time.Time
	DateTo          time.Time
	RoomsPerDay     int
	CostPrice       types.Price
	SellingPrice    types.Price
	MachineReserved bool
}

// Service provides unit provisioning, reservation transitions, and the batch
// status-mutation engine.
type Service struct {
	units     Repository
	contracts contract.Repository
	catalog   catalog.Repository
	txm       tx.Manager
}

// NewService creates a new inventory service.
func NewService(units Repository, contracts contract.Repository, cat catalog.Repository, txm tx.Manager) *Service {
	return &Service{
		units:     units,
		contracts: contracts,
		catalog:   cat,
		txm:       txm,
	}
}

// unitCode builds the deterministic business code for one provisioned slot:
// RU + yymmdd + room-type short id + index. Re-provisioning the same
// room-type/day/index therefore hits the same code and is a no-op.
func unitCode(roomTypeID id.ID, day time.Time, index int) string {
	return fmt.Sprintf("RU%s-%s-%03d", day.Format("060102"), roomTypeID.String()[:8], index)
}

// Provision creates inventory units for a room-type/date-range/contract
// triple. Idempotent by code: existing codes are skipped, not errors.
// Returns the created count in the envelope.
func (s *Service) Provision(ctx context.Context, in ProvisionInput) batch.Result {
	if id.IsNil(in.RoomTypeID) {
		return batch.Fail("room type is required")
	}
	if in.RoomsPerDay <= 0 {
		return batch.Fail("rooms per day must be positive")
	}
	if in.DateFrom.IsZero() || in.DateTo.IsZero() || types.Day(in.DateFrom).After(types.Day(in.DateTo)) {
		return batch.Fail("invalid date range")
	}

	rt, err := s.catalog.GetRoomType(ctx, in.RoomTypeID)
	if err != nil {
		logger.Error(ctx, "load room type failed", "room_type_id", in.RoomTypeID, "error", err)
		return batch.Fail("load room type failed")
	}
	if rt == nil {
		return batch.Fail("room type not found")
	}

	if in.ContractID != nil {
		c, err := s.contracts.GetByID(ctx, *in.ContractID)
		if err != nil {
			logger.Error(ctx, "load contract failed", "contract_id", *in.ContractID, "error", err)
			return batch.Fail("load contract failed")
		}
		if c == nil {
			return batch.Fail("contract not found")
		}
		if c.Status == contract.StatusTerminated {
			return batch.Fail("contract is terminated")
		}
	}

	created := 0
	err = s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		for _, day := range types.DaysBetween(in.DateFrom, in.DateTo) {
			for i := 1; i <= in.RoomsPerDay; i++ {
				u := NewUnit(unitCode(rt.ID, day, i), rt.ID, rt.HotelID, day, in.ContractID)
				u.MachineReserved = in.MachineReserved
				u.SetCostPrice(in.CostPrice)
				u.SetSellingPrice(in.SellingPrice)

				if err := u.Validate(ctx); err != nil {
					return err
				}

				inserted, err := s.units.CreateIfAbsent(ctx, u)
				if err != nil {
					return fmt.Errorf("create unit %s: %w", u.Code, err)
				}
				if inserted {
					created++
				}
			}
		}
		return nil
	})
	if err != nil {
		logger.Error(ctx, "provisioning failed",
			"room_type_id", in.RoomTypeID,
			"error", err,
		)
		return batch.Fail(err.Error())
	}

	logger.Info(ctx, "inventory provisioned",
		"room_type_id", in.RoomTypeID,
		"created", created,
	)
	return batch.OK("inventory provisioned").WithCreated(created)
}

// Reserve transitions a single available unit to reserved.
func (s *Service) Reserve(ctx context.Context, unitID id.ID) error {
	return s.mutateOne(ctx, unitID, func(u *Unit) error { return u.Reserve() })
}

// Release returns a single reserved unit to available.
func (s *Service) Release(ctx context.Context, unitID id.ID) error {
	return s.mutateOne(ctx, unitID, func(u *Unit) error { return u.Release() })
}

func (s *Service) mutateOne(ctx context.Context, unitID id.ID, apply func(*Unit) error) error {
	return s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		u, err := s.units.GetByID(ctx, unitID)
		if err != nil {
			return fmt.Errorf("load unit: %w", err)
		}
		if u == nil {
			return apperror.NewNotFound("inventory unit", unitID)
		}
		if err := apply(u); err != nil {
			return err
		}
		return s.units.Update(ctx, u)
	})
}

// BatchSetStatus transitions all units matching the filter to newStatus.
// Units already in newStatus are skipped; the returned count excludes them.
func (s *Service) BatchSetStatus(ctx context.Context, f UnitFilter, newStatus UnitStatus) batch.Result {
	if err := f.Validate(); err != nil {
		return batch.Fail(err.Error())
	}
	if !ValidStatus(newStatus) {
		return batch.Fail("invalid target status")
	}

	return s.applyStatus(ctx, func(ctx context.Context) ([]*Unit, error) {
		return s.units.ListByFilter(ctx, f)
	}, newStatus)
}

// SetStatusByIDs is the fast path for UI-driven edits: an explicit unit id
// list, bypassing hotel/date constraints entirely.
func (s *Service) SetStatusByIDs(ctx context.Context, ids []id.ID, newStatus UnitStatus) batch.Result {
	if len(ids) == 0 {
		return batch.Fail("unit id list is empty")
	}
	if !ValidStatus(newStatus) {
		return batch.Fail("invalid target status")
	}

	return s.applyStatus(ctx, func(ctx context.Context) ([]*Unit, error) {
		return s.units.ListByIDs(ctx, ids)
	}, newStatus)
}

func (s *Service) applyStatus(ctx context.Context, load func(context.Context) ([]*Unit, error), newStatus UnitStatus) batch.Result {
	updated := 0
	err := s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		units, err := load(ctx)
		if err != nil {
			return fmt.Errorf("select units: %w", err)
		}

		for _, u := range units {
			if u.Status == newStatus {
				continue
			}
			u.Status = newStatus
			u.Touch()
			if err := s.units.Update(ctx, u); err != nil {
				return fmt.Errorf("update unit %s: %w", u.Code, err)
			}
			updated++
		}
		return nil
	})
	if err != nil {
		logger.Error(ctx, "batch status update failed", "status", newStatus, "error", err)
		return batch.Fail(err.Error())
	}

	logger.Info(ctx, "batch status update finished", "status", newStatus, "updated", updated)
	return batch.OK("status updated").WithUpdated(updated)
}

// ClearContract unconditionally drops the contract association of one unit
// and reverts it to available.
func (s *Service) ClearContract(ctx context.Context, unitID id.ID) batch.Result {
	err := s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		u, err := s.units.GetByID(ctx, unitID)
		if err != nil {
			return fmt.Errorf("load unit: %w", err)
		}
		if u == nil {
			return apperror.NewNotFound("inventory unit", unitID)
		}
		u.ClearContract()
		return s.units.Update(ctx, u)
	})
	if err != nil {
		return batch.Fail(err.Error())
	}
	return batch.OK("contract association cleared").WithUpdated(1)
}

// BulkClearContract clears contract associations for all units matching the
// filter, skipping units already sold so confirmed bookings are never
// silently unwound.
func (s *Service) BulkClearContract(ctx context.Context, f UnitFilter) batch.Result {
	if err := f.Validate(); err != nil {
		return batch.Fail(err.Error())
	}

	updated := 0
	err := s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		units, err := s.units.ListByFilter(ctx, f)
		if err != nil {
			return fmt.Errorf("select units: %w", err)
		}

		for _, u := range units {
			if u.Status == StatusSold {
				continue
			}
			if u.ContractID == nil && u.Status == StatusAvailable {
				continue
			}
			u.ClearContract()
			if err := s.units.Update(ctx, u); err != nil {
				return fmt.Errorf("update unit %s: %w", u.Code, err)
			}
			updated++
		}
		return nil
	})
	if err != nil {
		logger.Error(ctx, "bulk clear contract failed", "hotel_id", f.HotelID, "error", err)
		return batch.Fail(err.Error())
	}

	logger.Info(ctx, "bulk clear contract finished", "hotel_id", f.HotelID, "updated", updated)
	return batch.OK("contract associations cleared").WithUpdated(updated)
}

// Get returns one unit by id, or a not-found error.
func (s *Service) Get(ctx context.Context, unitID id.ID) (*Unit, error) {
	u, err := s.units.GetByID(ctx, unitID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperror.NewNotFound("inventory unit", unitID)
	}
	return u, nil
}
