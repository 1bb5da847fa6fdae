package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomstock/internal/core/apperror"
	"roomstock/internal/core/id"
	"roomstock/internal/core/types"
	"roomstock/internal/domain/catalog"
	"roomstock/internal/domain/contract"
)

// Test doubles

type txStub struct{}

func (txStub) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// memUnitRepo keeps units in insertion order, mirroring the persistence
// ordering guarantee of the real store.
type memUnitRepo struct {
	units []*Unit
}

func (m *memUnitRepo) CreateIfAbsent(ctx context.Context, u *Unit) (bool, error) {
	for _, existing := range m.units {
		if existing.Code == u.Code {
			return false, nil
		}
	}
	m.units = append(m.units, u)
	return true, nil
}

func (m *memUnitRepo) Update(ctx context.Context, u *Unit) error {
	for i, existing := range m.units {
		if existing.ID == u.ID {
			m.units[i] = u
			return nil
		}
	}
	return apperror.NewNotFound("inventory unit", u.ID)
}

func (m *memUnitRepo) GetByID(ctx context.Context, unitID id.ID) (*Unit, error) {
	for _, u := range m.units {
		if u.ID == unitID {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUnitRepo) GetByCode(ctx context.Context, code string) (*Unit, error) {
	for _, u := range m.units {
		if u.Code == code {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUnitRepo) ListByFilter(ctx context.Context, f UnitFilter) ([]*Unit, error) {
	var out []*Unit
	for _, u := range m.units {
		if u.HotelID != f.HotelID {
			continue
		}
		if f.RoomTypeID != nil && u.RoomTypeID != *f.RoomTypeID {
			continue
		}
		if u.Date.Before(types.Day(f.DateFrom)) || u.Date.After(types.Day(f.DateTo)) {
			continue
		}
		if !f.Days.Matches(u.Date) {
			continue
		}
		if len(f.Statuses) > 0 && !containsStatus(f.Statuses, u.Status) {
			continue
		}
		if f.ContractID != nil && (u.ContractID == nil || *u.ContractID != *f.ContractID) {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func containsStatus(set []UnitStatus, s UnitStatus) bool {
	for _, x := range set {
		if x == s {
			return true
		}
	}
	return false
}

func (m *memUnitRepo) ListByIDs(ctx context.Context, ids []id.ID) ([]*Unit, error) {
	var out []*Unit
	for _, u := range m.units {
		for _, want := range ids {
			if u.ID == want {
				out = append(out, u)
				break
			}
		}
	}
	return out, nil
}

func (m *memUnitRepo) ListAvailableByDay(ctx context.Context, roomTypeID id.ID, day time.Time) ([]*Unit, error) {
	var out []*Unit
	for _, u := range m.units {
		if u.RoomTypeID == roomTypeID && u.Date.Equal(day) && u.Status == StatusAvailable {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memUnitRepo) CountAvailableByDay(ctx context.Context, roomTypeID id.ID, day time.Time) (int, error) {
	units, _ := m.ListAvailableByDay(ctx, roomTypeID, day)
	return len(units), nil
}

func (m *memUnitRepo) AggregateDay(ctx context.Context, hotelID, roomTypeID id.ID, day time.Time) (DayAggregate, error) {
	return DayAggregate{}, nil
}

func (m *memUnitRepo) FirstAvailableAtPrice(ctx context.Context, hotelID, roomTypeID id.ID, day time.Time, price types.Price) (*Unit, error) {
	return nil, nil
}

func (m *memUnitRepo) ListPairsWithUnits(ctx context.Context, day time.Time) ([]Pair, error) {
	return nil, nil
}

var _ Repository = (*memUnitRepo)(nil)

type memContractRepo struct {
	contracts []*contract.Contract
}

func (m *memContractRepo) Create(ctx context.Context, c *contract.Contract) error {
	m.contracts = append(m.contracts, c)
	return nil
}

func (m *memContractRepo) Update(ctx context.Context, c *contract.Contract) error { return nil }

func (m *memContractRepo) GetByID(ctx context.Context, contractID id.ID) (*contract.Contract, error) {
	for _, c := range m.contracts {
		if c.ID == contractID {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memContractRepo) GetByNo(ctx context.Context, contractNo string) (*contract.Contract, error) {
	return nil, nil
}

func (m *memContractRepo) ListByIDs(ctx context.Context, ids []id.ID) ([]*contract.Contract, error) {
	return nil, nil
}

func (m *memContractRepo) ListByHotel(ctx context.Context, hotelID id.ID, statuses []contract.Status) ([]*contract.Contract, error) {
	return nil, nil
}

var _ contract.Repository = (*memContractRepo)(nil)

type memCatalogRepo struct {
	roomTypes []*catalog.RoomType
}

func (m *memCatalogRepo) GetHotel(ctx context.Context, hotelID id.ID) (*catalog.Hotel, error) {
	return nil, nil
}

func (m *memCatalogRepo) GetRoomType(ctx context.Context, roomTypeID id.ID) (*catalog.RoomType, error) {
	for _, rt := range m.roomTypes {
		if rt.ID == roomTypeID {
			return rt, nil
		}
	}
	return nil, nil
}

func (m *memCatalogRepo) ListRoomTypesByHotel(ctx context.Context, hotelID id.ID) ([]*catalog.RoomType, error) {
	return nil, nil
}

func (m *memCatalogRepo) ListHotels(ctx context.Context) ([]*catalog.Hotel, error) {
	return nil, nil
}

var _ catalog.Repository = (*memCatalogRepo)(nil)

type testEnv struct {
	units     *memUnitRepo
	contracts *memContractRepo
	catalog   *memCatalogRepo
	svc       *Service

	hotelID    id.ID
	roomTypeID id.ID
}

func newTestEnv() *testEnv {
	env := &testEnv{
		units:      &memUnitRepo{},
		contracts:  &memContractRepo{},
		hotelID:    id.New(),
		roomTypeID: id.New(),
	}
	env.catalog = &memCatalogRepo{
		roomTypes: []*catalog.RoomType{{ID: env.roomTypeID, HotelID: env.hotelID, Name: "Standard"}},
	}
	env.svc = NewService(env.units, env.contracts, env.catalog, txStub{})
	return env
}

func TestProvision(t *testing.T) {
	env := newTestEnv()
	from := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	res := env.svc.Provision(context.Background(), ProvisionInput{
		RoomTypeID:   env.roomTypeID,
		DateFrom:     from,
		DateTo:       from.AddDate(0, 0, 2),
		RoomsPerDay:  5,
		CostPrice:    types.NewPrice(100),
		SellingPrice: types.NewPrice(150),
	})

	require.True(t, res.Success, res.Message)
	assert.Equal(t, 15, res.Created)
	require.Len(t, env.units.units, 15)

	u := env.units.units[0]
	assert.Equal(t, env.hotelID, u.HotelID)
	assert.Equal(t, StatusAvailable, u.Status)
	assert.True(t, u.ProfitRate.Equal(types.MustPrice("50.00")))
}

func TestProvisionIdempotent(t *testing.T) {
	env := newTestEnv()
	from := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	in := ProvisionInput{
		RoomTypeID:  env.roomTypeID,
		DateFrom:    from,
		DateTo:      from,
		RoomsPerDay: 3,
	}

	res := env.svc.Provision(context.Background(), in)
	require.True(t, res.Success)
	assert.Equal(t, 3, res.Created)

	// Same input again: every code collides, nothing is created.
	res = env.svc.Provision(context.Background(), in)
	require.True(t, res.Success)
	assert.Equal(t, 0, res.Created)
	assert.Len(t, env.units.units, 3)

	// Widening the room count tops up only the missing slots.
	in.RoomsPerDay = 5
	res = env.svc.Provision(context.Background(), in)
	require.True(t, res.Success)
	assert.Equal(t, 2, res.Created)
	assert.Len(t, env.units.units, 5)
}

func TestProvisionRejectsBadInput(t *testing.T) {
	env := newTestEnv()
	from := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	res := env.svc.Provision(context.Background(), ProvisionInput{
		RoomTypeID: env.roomTypeID, DateFrom: from, DateTo: from, RoomsPerDay: 0,
	})
	assert.False(t, res.Success)

	res = env.svc.Provision(context.Background(), ProvisionInput{
		RoomTypeID: env.roomTypeID, DateFrom: from.AddDate(0, 0, 1), DateTo: from, RoomsPerDay: 1,
	})
	assert.False(t, res.Success)

	res = env.svc.Provision(context.Background(), ProvisionInput{
		RoomTypeID: id.New(), DateFrom: from, DateTo: from, RoomsPerDay: 1,
	})
	assert.False(t, res.Success)
	assert.Equal(t, "room type not found", res.Message)
}

func TestProvisionRejectsTerminatedContract(t *testing.T) {
	env := newTestEnv()
	from := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	c := contract.New("HT260910001", env.hotelID, contract.TypeFixedPrice, from, from.AddDate(0, 0, 30), 1)
	require.NoError(t, c.Approve())
	require.NoError(t, c.Terminate("supplier insolvent"))
	env.contracts.contracts = append(env.contracts.contracts, c)

	res := env.svc.Provision(context.Background(), ProvisionInput{
		RoomTypeID: env.roomTypeID, ContractID: &c.ID,
		DateFrom: from, DateTo: from, RoomsPerDay: 1,
	})
	assert.False(t, res.Success)
	assert.Equal(t, "contract is terminated", res.Message)
}

func TestReserveReleaseThroughService(t *testing.T) {
	env := newTestEnv()
	from := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	env.svc.Provision(context.Background(), ProvisionInput{
		RoomTypeID: env.roomTypeID, DateFrom: from, DateTo: from, RoomsPerDay: 1,
	})
	unitID := env.units.units[0].ID

	require.NoError(t, env.svc.Reserve(context.Background(), unitID))
	assert.Equal(t, StatusReserved, env.units.units[0].Status)

	err := env.svc.Reserve(context.Background(), unitID)
	assert.True(t, apperror.IsInvalidTransition(err))

	require.NoError(t, env.svc.Release(context.Background(), unitID))
	assert.Equal(t, StatusAvailable, env.units.units[0].Status)

	err = env.svc.Reserve(context.Background(), id.New())
	assert.True(t, apperror.IsNotFound(err))
}

func TestBatchSetStatusSkipsNoops(t *testing.T) {
	env := newTestEnv()
	from := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	env.svc.Provision(context.Background(), ProvisionInput{
		RoomTypeID: env.roomTypeID, DateFrom: from, DateTo: from, RoomsPerDay: 4,
	})
	env.units.units[0].Status = StatusDisabled

	res := env.svc.BatchSetStatus(context.Background(), UnitFilter{
		HotelID: env.hotelID, DateFrom: from, DateTo: from,
	}, StatusDisabled)

	require.True(t, res.Success)
	// The already-disabled unit does not count.
	assert.Equal(t, 3, res.Updated)
	for _, u := range env.units.units {
		assert.Equal(t, StatusDisabled, u.Status)
	}
}

func TestSetStatusByIDs(t *testing.T) {
	env := newTestEnv()
	from := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	env.svc.Provision(context.Background(), ProvisionInput{
		RoomTypeID: env.roomTypeID, DateFrom: from, DateTo: from, RoomsPerDay: 3,
	})

	res := env.svc.SetStatusByIDs(context.Background(),
		[]id.ID{env.units.units[1].ID}, StatusPending)
	require.True(t, res.Success)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, StatusPending, env.units.units[1].Status)
	assert.Equal(t, StatusAvailable, env.units.units[0].Status)

	res = env.svc.SetStatusByIDs(context.Background(), nil, StatusPending)
	assert.False(t, res.Success)

	res = env.svc.SetStatusByIDs(context.Background(),
		[]id.ID{env.units.units[0].ID}, UnitStatus("bogus"))
	assert.False(t, res.Success)
}

func TestBulkClearContractSkipsSold(t *testing.T) {
	env := newTestEnv()
	from := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	contractID := id.New()
	env.svc.Provision(context.Background(), ProvisionInput{
		RoomTypeID: env.roomTypeID, ContractID: nil,
		DateFrom: from, DateTo: from, RoomsPerDay: 3,
	})
	for _, u := range env.units.units {
		cid := contractID
		u.ContractID = &cid
	}
	env.units.units[0].Status = StatusSold
	env.units.units[1].Status = StatusReserved

	res := env.svc.BulkClearContract(context.Background(), UnitFilter{
		HotelID: env.hotelID, DateFrom: from, DateTo: from, ContractID: &contractID,
	})

	require.True(t, res.Success)
	assert.Equal(t, 2, res.Updated)

	// Sold units keep their booking and contract.
	assert.Equal(t, StatusSold, env.units.units[0].Status)
	assert.NotNil(t, env.units.units[0].ContractID)

	assert.Equal(t, StatusAvailable, env.units.units[1].Status)
	assert.Nil(t, env.units.units[1].ContractID)
	assert.Nil(t, env.units.units[2].ContractID)
}

func TestBatchSetStatusWeekendFilter(t *testing.T) {
	env := newTestEnv()
	// Thu 2026-09-10 .. Mon 2026-09-14: Sat+Sun are the 12th and 13th.
	from := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	env.svc.Provision(context.Background(), ProvisionInput{
		RoomTypeID: env.roomTypeID, DateFrom: from, DateTo: to, RoomsPerDay: 1,
	})

	res := env.svc.BatchSetStatus(context.Background(), UnitFilter{
		HotelID: env.hotelID, DateFrom: from, DateTo: to,
		Days: DayFilter{Kind: DayFilterWeekend},
	}, StatusDisabled)

	require.True(t, res.Success)
	assert.Equal(t, 2, res.Updated)

	disabled := 0
	for _, u := range env.units.units {
		if u.Status == StatusDisabled {
			disabled++
			assert.True(t, types.IsWeekend(u.Date))
		}
	}
	assert.Equal(t, 2, disabled)
}
