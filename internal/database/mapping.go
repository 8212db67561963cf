package database

import (
	"time"

	sqldb "github.com/aqualog/aqua/internal/database/sqlc"
	"github.com/aqualog/aqua/internal/intake"
)

// IntakeFromRow converts a database intake row to a domain record.
func IntakeFromRow(row sqldb.Intake) intake.Record {
	return intake.Record{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Cups:      int(row.Cups),
		Bottles:   int(row.Bottles),
		StartTime: row.StartTime,
		EndTime:   row.EndTime,
		Date:      row.Date,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

// IntakesFromRows converts a slice of rows, preserving order.
func IntakesFromRows(rows []sqldb.Intake) []intake.Record {
	result := make([]intake.Record, 0, len(rows))
	for _, row := range rows {
		result = append(result, IntakeFromRow(row))
	}
	return result
}

// IntakeInsertParams creates insert parameters from a record that already
// carries its ID and timestamps.
func IntakeInsertParams(rec intake.Record) sqldb.InsertIntakeParams {
	return sqldb.InsertIntakeParams{
		ID:        rec.ID,
		OwnerID:   rec.OwnerID,
		Cups:      int64(rec.Cups),
		Bottles:   int64(rec.Bottles),
		StartTime: storedTime(rec.StartTime),
		EndTime:   storedTime(rec.EndTime),
		Date:      rec.Date,
		CreatedAt: storedTime(rec.CreatedAt),
		UpdatedAt: storedTime(rec.UpdatedAt),
	}
}

// IntakeUpdateParams creates update parameters for the mutable fields of rec.
func IntakeUpdateParams(rec intake.Record, updatedAt time.Time) sqldb.UpdateIntakeParams {
	return sqldb.UpdateIntakeParams{
		Cups:      int64(rec.Cups),
		Bottles:   int64(rec.Bottles),
		StartTime: storedTime(rec.StartTime),
		EndTime:   storedTime(rec.EndTime),
		Date:      rec.Date,
		UpdatedAt: storedTime(updatedAt),
		ID:        rec.ID,
	}
}

// NotificationFromRow converts a notifications row.
func NotificationFromRow(row sqldb.Notification) NotificationRecord {
	return NotificationRecord{
		Key:     row.IdempotencyKey,
		OwnerID: row.OwnerID,
		Kind:    row.Kind,
		Title:   row.Title,
		Body:    row.Body,
		SentAt:  row.SentAt,
	}
}
