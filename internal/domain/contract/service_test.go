package contract

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomstock/internal/core/apperror"
	"roomstock/internal/core/id"
	"roomstock/internal/core/numerator"
	"roomstock/internal/core/types"
)

type txStub struct{}

func (txStub) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memRepo struct {
	contracts []*Contract
}

func (m *memRepo) Create(ctx context.Context, c *Contract) error {
	m.contracts = append(m.contracts, c)
	return nil
}

func (m *memRepo) Update(ctx context.Context, c *Contract) error {
	for i, existing := range m.contracts {
		if existing.ID == c.ID {
			m.contracts[i] = c
			return nil
		}
	}
	return apperror.NewNotFound("contract", c.ID)
}

func (m *memRepo) GetByID(ctx context.Context, contractID id.ID) (*Contract, error) {
	for _, c := range m.contracts {
		if c.ID == contractID {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memRepo) GetByNo(ctx context.Context, contractNo string) (*Contract, error) {
	for _, c := range m.contracts {
		if c.ContractNo == contractNo {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memRepo) ListByIDs(ctx context.Context, ids []id.ID) ([]*Contract, error) {
	var out []*Contract
	for _, c := range m.contracts {
		for _, want := range ids {
			if c.ID == want {
				out = append(out, c)
				break
			}
		}
	}
	return out, nil
}

func (m *memRepo) ListByHotel(ctx context.Context, hotelID id.ID, statuses []Status) ([]*Contract, error) {
	return nil, nil
}

var _ Repository = (*memRepo)(nil)

func testInput() CreateInput {
	return CreateInput{
		HotelID:     id.New(),
		Type:        TypeFixedPrice,
		StartDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		TotalRooms:  50,
		TotalDays:   121,
		TotalAmount: types.MustPrice("605000"),
		Priority:    1,
	}
}

func TestCreateAssignsSequentialNumbers(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo, &numerator.MockGenerator{}, txStub{})
	ctx := context.Background()

	c1, err := svc.Create(ctx, testInput())
	require.NoError(t, err)
	c2, err := svc.Create(ctx, testInput())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(c1.ContractNo, "HT"))
	assert.Len(t, c1.ContractNo, 11) // HT + yymmdd + 3 digits
	assert.True(t, strings.HasSuffix(c1.ContractNo, "001"))
	assert.True(t, strings.HasSuffix(c2.ContractNo, "002"))
	assert.Equal(t, c1.ContractNo[:8], c2.ContractNo[:8])

	assert.Equal(t, StatusPending, c1.Status)
	assert.Len(t, repo.contracts, 2)
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	svc := NewService(&memRepo{}, &numerator.MockGenerator{}, txStub{})

	in := testInput()
	in.EndDate = in.StartDate.AddDate(0, 0, -1)
	_, err := svc.Create(context.Background(), in)
	require.Error(t, err)

	in = testInput()
	in.Priority = MaxPriority + 1
	_, err = svc.Create(context.Background(), in)
	require.Error(t, err)
}

func TestApproveAndTerminate(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo, &numerator.MockGenerator{}, txStub{})
	ctx := context.Background()

	c, err := svc.Create(ctx, testInput())
	require.NoError(t, err)

	approved, err := svc.Approve(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusActive, approved.Status)

	_, err = svc.Approve(ctx, c.ID)
	assert.True(t, apperror.IsInvalidTransition(err))

	terminated, err := svc.Terminate(ctx, c.ID, "volume renegotiated")
	require.NoError(t, err)
	assert.Equal(t, StatusTerminated, terminated.Status)

	_, err = svc.Terminate(ctx, c.ID, "again")
	assert.True(t, apperror.IsInvalidTransition(err))
}

func TestTransitionUnknownContract(t *testing.T) {
	svc := NewService(&memRepo{}, &numerator.MockGenerator{}, txStub{})

	_, err := svc.Approve(context.Background(), id.New())
	assert.True(t, apperror.IsNotFound(err))

	_, err = svc.Get(context.Background(), id.New())
	assert.True(t, apperror.IsNotFound(err))
}

func TestGet(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo, &numerator.MockGenerator{}, txStub{})
	ctx := context.Background()

	created, err := svc.Create(ctx, testInput())
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ContractNo, got.ContractNo)
}
