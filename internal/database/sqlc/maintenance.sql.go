package sqldb

import "context"

const deleteAllIntakes = `DELETE FROM intakes`

func (q *Queries) DeleteAllIntakes(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllIntakes)
	return err
}

const deleteAllNotifications = `DELETE FROM notifications`

func (q *Queries) DeleteAllNotifications(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllNotifications)
	return err
}
