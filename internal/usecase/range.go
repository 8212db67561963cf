package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/aqualog/aqua/internal/database"
	"github.com/aqualog/aqua/internal/intake"
)

type ListOptions struct {
	From string
	To   string
	// Days, when positive, lists the trailing window ending today and
	// overrides From and To.
	Days int
	Now  time.Time
}

// ResolveRange converts CLI/MCP-level listing options into a validated day range.
func ResolveRange(opts ListOptions, loc *time.Location) (database.DateRange, error) {
	if opts.Days < 0 {
		return database.DateRange{}, fmt.Errorf("--days must not be negative")
	}
	if opts.Days > 0 {
		now := opts.Now
		if now.IsZero() {
			now = time.Now()
		}
		now = now.In(loc)
		return database.DateRange{
			From: intake.DateFor(now.AddDate(0, 0, -(opts.Days-1)), loc),
			To:   intake.DateFor(now, loc),
		}, nil
	}

	from := strings.TrimSpace(opts.From)
	to := strings.TrimSpace(opts.To)
	if from != "" {
		if _, err := intake.ParseDate(from, loc); err != nil {
			return database.DateRange{}, fmt.Errorf("invalid --from date %q (want YYYY-MM-DD)", from)
		}
	}
	if to != "" {
		if _, err := intake.ParseDate(to, loc); err != nil {
			return database.DateRange{}, fmt.Errorf("invalid --to date %q (want YYYY-MM-DD)", to)
		}
	}
	if from != "" && to != "" && from > to {
		return database.DateRange{}, fmt.Errorf("--from %s is after --to %s", from, to)
	}
	return database.DateRange{From: from, To: to}, nil
}
