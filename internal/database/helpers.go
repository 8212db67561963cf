package database

import (
	"time"

	sqldb "github.com/aqualog/aqua/internal/database/sqlc"
)

// storedTime normalises timestamps to UTC so text ordering in SQLite follows
// chronological order.
func storedTime(t time.Time) time.Time {
	return t.UTC()
}

func queriesFromContext(ctx *Context) *sqldb.Queries {
	if ctx == nil {
		return nil
	}
	if ctx.Queries != nil {
		return ctx.Queries
	}
	if ctx.DB == nil {
		return nil
	}
	return sqldb.New(ctx.DB)
}
