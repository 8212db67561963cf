package database

import (
	"context"
	"database/sql"
	"errors"

	sqldb "github.com/aqualog/aqua/internal/database/sqlc"
	"github.com/aqualog/aqua/internal/intake"
)

// openRangeEnd sorts after every calendar-day key.
const openRangeEnd = "9999-12-31"

type IntakeRepository struct {
	ctx *Context
}

func NewIntakeRepository(dbCtx *Context) *IntakeRepository {
	return &IntakeRepository{ctx: dbCtx}
}

func (r *IntakeRepository) FindByID(ctx context.Context, id string) (*intake.Record, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, ErrNoContext
	}

	row, err := queries.FindIntakeByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	record := IntakeFromRow(row)
	return &record, nil
}

// ListByOwner returns the owner's records, newest day first.
func (r *IntakeRepository) ListByOwner(ctx context.Context, ownerID string, dates DateRange) ([]intake.Record, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, ErrNoContext
	}

	var (
		rows []sqldb.Intake
		err  error
	)
	if dates.IsOpen() {
		rows, err = queries.ListIntakesByOwner(ctx, ownerID)
	} else {
		to := dates.To
		if to == "" {
			to = openRangeEnd
		}
		rows, err = queries.ListIntakesByOwnerBetween(ctx, sqldb.ListIntakesByOwnerBetweenParams{
			OwnerID:  ownerID,
			FromDate: dates.From,
			ToDate:   to,
		})
	}
	if err != nil {
		return nil, err
	}

	return IntakesFromRows(rows), nil
}

// DayTotal returns the milliliters and entry count the owner logged on date.
func (r *IntakeRepository) DayTotal(ctx context.Context, ownerID, date string) (int, int, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return 0, 0, ErrNoContext
	}

	row, err := queries.SumIntakeByOwnerAndDate(ctx, sqldb.SumIntakeByOwnerAndDateParams{OwnerID: ownerID, Date: date})
	if err != nil {
		return 0, 0, err
	}
	return intake.Milliliters(int(row.Cups), int(row.Bottles)), int(row.Entries), nil
}
