package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aqualog/aqua/internal/database"
	sqldb "github.com/aqualog/aqua/internal/database/sqlc"
	"github.com/aqualog/aqua/internal/intake"
)

// ErrNotFound is returned when a requested intake does not exist for the owner.
var ErrNotFound = errors.New("intake not found")

// IntakeService is the record store for intake records: create, read, patch,
// and delete, each scoped to an owner.
type IntakeService struct {
	ctx   *database.Context
	repo  *database.IntakeRepository
	now   func() time.Time
	newID func() string
}

// NewIntakeService creates a new IntakeService.
func NewIntakeService(ctx *database.Context) *IntakeService {
	return &IntakeService{
		ctx:   ctx,
		repo:  database.NewIntakeRepository(ctx),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Create assigns an ID and timestamps and stores the record.
func (s *IntakeService) Create(ctx context.Context, rec intake.Record) (intake.Record, error) {
	q, err := s.queries()
	if err != nil {
		return intake.Record{}, err
	}

	now := s.now()
	rec.ID = s.newID()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	if err := q.InsertIntake(ctx, database.IntakeInsertParams(rec)); err != nil {
		return intake.Record{}, fmt.Errorf("failed to insert intake: %w", err)
	}
	return rec, nil
}

// Get returns the owner's record with the given ID.
func (s *IntakeService) Get(ctx context.Context, ownerID, id string) (*intake.Record, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	return rec, nil
}

// ListByOwner returns the owner's records, newest day first.
func (s *IntakeService) ListByOwner(ctx context.Context, ownerID string, dates database.DateRange) ([]intake.Record, error) {
	return s.repo.ListByOwner(ctx, ownerID, dates)
}

// DayTotal returns the milliliters and entry count for one calendar day.
func (s *IntakeService) DayTotal(ctx context.Context, ownerID, date string) (int, int, error) {
	return s.repo.DayTotal(ctx, ownerID, date)
}

// Update merges patch into the stored record inside a transaction and returns
// the result.
func (s *IntakeService) Update(ctx context.Context, ownerID, id string, patch intake.Patch, loc *time.Location) (intake.Record, error) {
	if err := patch.Validate(); err != nil {
		return intake.Record{}, err
	}

	var updated intake.Record
	err := s.withTx(ctx, func(txCtx context.Context, q *sqldb.Queries) error {
		row, err := q.FindIntakeByID(txCtx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
		current := database.IntakeFromRow(row)
		if current.OwnerID != ownerID {
			return ErrNotFound
		}

		merged, err := patch.Apply(current, loc)
		if err != nil {
			return err
		}
		merged.UpdatedAt = s.now()

		affected, err := q.UpdateIntake(txCtx, database.IntakeUpdateParams(merged, merged.UpdatedAt))
		if err != nil {
			return fmt.Errorf("failed to update intake: %w", err)
		}
		if affected == 0 {
			return ErrNotFound
		}
		updated = merged
		return nil
	})
	if err != nil {
		return intake.Record{}, err
	}
	return updated, nil
}

// Delete removes the owner's record and returns it.
func (s *IntakeService) Delete(ctx context.Context, ownerID, id string) (intake.Record, error) {
	var removed intake.Record
	err := s.withTx(ctx, func(txCtx context.Context, q *sqldb.Queries) error {
		row, err := q.FindIntakeByID(txCtx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
		if row.OwnerID != ownerID {
			return ErrNotFound
		}

		affected, err := q.DeleteIntakeByID(txCtx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotFound
		}
		removed = database.IntakeFromRow(row)
		return nil
	})
	if err != nil {
		return intake.Record{}, err
	}
	return removed, nil
}

func (s *IntakeService) withTx(ctx context.Context, fn func(context.Context, *sqldb.Queries) error) error {
	if s.ctx == nil || s.ctx.DB == nil {
		return fmt.Errorf("intake service: missing database context")
	}

	tx, err := s.ctx.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	queries := sqldb.New(tx)

	if err := fn(ctx, queries); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return nil
}

func (s *IntakeService) queries() (*sqldb.Queries, error) {
	if s.ctx == nil {
		return nil, fmt.Errorf("intake service: missing database context")
	}
	if s.ctx.Queries == nil {
		if s.ctx.DB == nil {
			return nil, fmt.Errorf("intake service: database handle not initialised")
		}
		s.ctx.Queries = sqldb.New(s.ctx.DB)
	}
	return s.ctx.Queries, nil
}
