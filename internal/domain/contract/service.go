package contract

import (
	"context"
	"fmt"
	"time"

	"roomstock/internal/core/apperror"
	"roomstock/internal/core/id"
	"roomstock/internal/core/numerator"
	"roomstock/internal/core/tx"
	"roomstock/internal/core/types"
	"roomstock/pkg/logger"
)

// CreateInput carries the intake parameters for a new contract.
type CreateInput struct {
	HotelID     id.ID
	Type        Type
	StartDate   time.Time
	EndDate     time.Time
	TotalRooms  int
	TotalDays   int
	TotalAmount types.Price
	Priority    int
}

// Service provides contract lifecycle operations.
type Service struct {
	repo      Repository
	numerator numerator.Generator
	txm       tx.Manager
}

// NewService creates a new contract service.
func NewService(repo Repository, gen numerator.Generator, txm tx.Manager) *Service {
	return &Service{
		repo:      repo,
		numerator: gen,
		txm:       txm,
	}
}

// Create registers a contract at intake (pending) with a generated number.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Contract, error) {
	number, err := s.numerator.GetNextNumber(ctx, numerator.ContractConfig(), time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("generate contract number: %w", err)
	}

	c := New(number, in.HotelID, in.Type, in.StartDate, in.EndDate, in.Priority)
	c.TotalRooms = in.TotalRooms
	c.TotalDays = in.TotalDays
	c.TotalAmount = in.TotalAmount

	if err := c.Validate(ctx); err != nil {
		return nil, err
	}

	err = s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, c)
	})
	if err != nil {
		return nil, fmt.Errorf("create contract: %w", err)
	}

	logger.Info(ctx, "contract created",
		"contract_no", c.ContractNo,
		"hotel_id", c.HotelID,
		"priority", c.Priority,
	)
	return c, nil
}

// Approve transitions a pending contract to active.
func (s *Service) Approve(ctx context.Context, contractID id.ID) (*Contract, error) {
	return s.transition(ctx, contractID, func(c *Contract) error {
		return c.Approve()
	})
}

// Terminate moves a contract to its terminal state with a reason.
// Clearing the contract's remaining unit allocations is the caller's
// follow-up (inventory.Service.BulkClearContract).
func (s *Service) Terminate(ctx context.Context, contractID id.ID, reason string) (*Contract, error) {
	return s.transition(ctx, contractID, func(c *Contract) error {
		return c.Terminate(reason)
	})
}

func (s *Service) transition(ctx context.Context, contractID id.ID, apply func(*Contract) error) (*Contract, error) {
	var c *Contract
	err := s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		c, err = s.repo.GetByID(ctx, contractID)
		if err != nil {
			return fmt.Errorf("load contract: %w", err)
		}
		if c == nil {
			return apperror.NewNotFound("contract", contractID)
		}

		if err := apply(c); err != nil {
			return err
		}
		return s.repo.Update(ctx, c)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "contract status changed",
		"contract_no", c.ContractNo,
		"status", c.Status,
	)
	return c, nil
}

// Get returns a contract by id, or a not-found error.
func (s *Service) Get(ctx context.Context, contractID id.ID) (*Contract, error) {
	c, err := s.repo.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.NewNotFound("contract", contractID)
	}
	return c, nil
}
