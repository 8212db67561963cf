package sqldb

import (
	"context"
	"time"
)

const insertNotificationIfAbsent = `INSERT INTO notifications (idempotency_key, owner_id, kind, title, body, sent_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (idempotency_key) DO NOTHING`

type InsertNotificationParams struct {
	IdempotencyKey string
	OwnerID        string
	Kind           string
	Title          string
	Body           string
	SentAt         time.Time
}

// InsertNotificationIfAbsent reports the number of rows written: 0 when the key
// was already recorded.
func (q *Queries) InsertNotificationIfAbsent(ctx context.Context, arg InsertNotificationParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, insertNotificationIfAbsent,
		arg.IdempotencyKey,
		arg.OwnerID,
		arg.Kind,
		arg.Title,
		arg.Body,
		arg.SentAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const listNotificationsByOwner = `SELECT idempotency_key, owner_id, kind, title, body, sent_at
FROM notifications WHERE owner_id = ? ORDER BY sent_at DESC`

func (q *Queries) ListNotificationsByOwner(ctx context.Context, ownerID string) ([]Notification, error) {
	rows, err := q.db.QueryContext(ctx, listNotificationsByOwner, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Notification
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.IdempotencyKey, &n.OwnerID, &n.Kind, &n.Title, &n.Body, &n.SentAt); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
