package database

import (
	"context"
	"time"

	sqldb "github.com/aqualog/aqua/internal/database/sqlc"
)

type NotificationRepository struct {
	ctx *Context
}

func NewNotificationRepository(dbCtx *Context) *NotificationRepository {
	return &NotificationRepository{ctx: dbCtx}
}

// Claim records the notification under its key. It returns false when the key
// was already claimed, in which case nothing is written.
func (r *NotificationRepository) Claim(ctx context.Context, rec NotificationRecord) (bool, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return false, ErrNoContext
	}

	sentAt := rec.SentAt
	if sentAt.IsZero() {
		sentAt = time.Now()
	}

	affected, err := queries.InsertNotificationIfAbsent(ctx, sqldb.InsertNotificationParams{
		IdempotencyKey: rec.Key,
		OwnerID:        rec.OwnerID,
		Kind:           rec.Kind,
		Title:          rec.Title,
		Body:           rec.Body,
		SentAt:         storedTime(sentAt),
	})
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *NotificationRepository) ListByOwner(ctx context.Context, ownerID string) ([]NotificationRecord, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, ErrNoContext
	}

	rows, err := queries.ListNotificationsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	result := make([]NotificationRecord, 0, len(rows))
	for _, row := range rows {
		result = append(result, NotificationFromRow(row))
	}
	return result, nil
}
