package sqldb

import (
	"context"
	"time"
)

const insertIntake = `INSERT INTO intakes (id, owner_id, cups, bottles, start_time, end_time, date, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

type InsertIntakeParams struct {
	ID        string
	OwnerID   string
	Cups      int64
	Bottles   int64
	StartTime time.Time
	EndTime   time.Time
	Date      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q *Queries) InsertIntake(ctx context.Context, arg InsertIntakeParams) error {
	_, err := q.db.ExecContext(ctx, insertIntake,
		arg.ID,
		arg.OwnerID,
		arg.Cups,
		arg.Bottles,
		arg.StartTime,
		arg.EndTime,
		arg.Date,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const intakeColumns = `id, owner_id, cups, bottles, start_time, end_time, date, created_at, updated_at`

const findIntakeByID = `SELECT ` + intakeColumns + ` FROM intakes WHERE id = ?`

func (q *Queries) FindIntakeByID(ctx context.Context, id string) (Intake, error) {
	row := q.db.QueryRowContext(ctx, findIntakeByID, id)
	var i Intake
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.Cups,
		&i.Bottles,
		&i.StartTime,
		&i.EndTime,
		&i.Date,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listIntakesByOwner = `SELECT ` + intakeColumns + ` FROM intakes
WHERE owner_id = ?
ORDER BY date DESC, start_time DESC`

func (q *Queries) ListIntakesByOwner(ctx context.Context, ownerID string) ([]Intake, error) {
	return q.listIntakes(ctx, listIntakesByOwner, ownerID)
}

const listIntakesByOwnerBetween = `SELECT ` + intakeColumns + ` FROM intakes
WHERE owner_id = ? AND date >= ? AND date <= ?
ORDER BY date DESC, start_time DESC`

type ListIntakesByOwnerBetweenParams struct {
	OwnerID  string
	FromDate string
	ToDate   string
}

func (q *Queries) ListIntakesByOwnerBetween(ctx context.Context, arg ListIntakesByOwnerBetweenParams) ([]Intake, error) {
	return q.listIntakes(ctx, listIntakesByOwnerBetween, arg.OwnerID, arg.FromDate, arg.ToDate)
}

func (q *Queries) listIntakes(ctx context.Context, query string, args ...any) ([]Intake, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Intake
	for rows.Next() {
		var i Intake
		if err := rows.Scan(
			&i.ID,
			&i.OwnerID,
			&i.Cups,
			&i.Bottles,
			&i.StartTime,
			&i.EndTime,
			&i.Date,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateIntake = `UPDATE intakes
SET cups = ?, bottles = ?, start_time = ?, end_time = ?, date = ?, updated_at = ?
WHERE id = ?`

type UpdateIntakeParams struct {
	Cups      int64
	Bottles   int64
	StartTime time.Time
	EndTime   time.Time
	Date      string
	UpdatedAt time.Time
	ID        string
}

func (q *Queries) UpdateIntake(ctx context.Context, arg UpdateIntakeParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateIntake,
		arg.Cups,
		arg.Bottles,
		arg.StartTime,
		arg.EndTime,
		arg.Date,
		arg.UpdatedAt,
		arg.ID,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteIntakeByID = `DELETE FROM intakes WHERE id = ?`

func (q *Queries) DeleteIntakeByID(ctx context.Context, id string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteIntakeByID, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const sumIntakeByOwnerAndDate = `SELECT COALESCE(SUM(cups), 0), COALESCE(SUM(bottles), 0), COUNT(*)
FROM intakes WHERE owner_id = ? AND date = ?`

type SumIntakeByOwnerAndDateParams struct {
	OwnerID string
	Date    string
}

type SumIntakeByOwnerAndDateRow struct {
	Cups    int64
	Bottles int64
	Entries int64
}

func (q *Queries) SumIntakeByOwnerAndDate(ctx context.Context, arg SumIntakeByOwnerAndDateParams) (SumIntakeByOwnerAndDateRow, error) {
	row := q.db.QueryRowContext(ctx, sumIntakeByOwnerAndDate, arg.OwnerID, arg.Date)
	var r SumIntakeByOwnerAndDateRow
	err := row.Scan(&r.Cups, &r.Bottles, &r.Entries)
	return r, err
}
