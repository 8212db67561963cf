// Package analytics derives hydration statistics from intake records.
//
// Every function here is pure: it takes a snapshot of records and returns a
// fresh value. Malformed records are skipped, never reported as errors, so the
// whole pipeline also runs on an empty history.
package analytics

import (
	"sort"
	"time"

	"github.com/aqualog/aqua/internal/intake"
)

// DefaultGoalML is the daily hydration target.
const DefaultGoalML = 2000

// DailyTotals maps a calendar-day key (intake.DateLayout) to milliliters.
type DailyTotals map[string]int

// On returns the total for the calendar day of t and whether any record
// contributed to it.
func (d DailyTotals) On(t time.Time) (int, bool) {
	ml, ok := d[dayKey(t)]
	return ml, ok
}

// Dates returns the day keys in ascending order.
func (d DailyTotals) Dates() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AggregateByDay sums record volumes per local calendar day. Records whose
// date does not parse or whose counts are negative are left out.
func AggregateByDay(records []intake.Record, loc *time.Location) DailyTotals {
	totals := make(DailyTotals)
	for _, rec := range records {
		key, ok := recordDay(rec, loc)
		if !ok {
			continue
		}
		totals[key] += rec.Milliliters()
	}
	return totals
}

// RecordsOn returns the well-formed records whose date falls on the calendar
// day of day, preserving input order.
func RecordsOn(records []intake.Record, day time.Time, loc *time.Location) []intake.Record {
	want := dayKey(day)
	var out []intake.Record
	for _, rec := range records {
		if key, ok := recordDay(rec, loc); ok && key == want {
			out = append(out, rec)
		}
	}
	return out
}

func recordDay(rec intake.Record, loc *time.Location) (string, bool) {
	if rec.Cups < 0 || rec.Bottles < 0 {
		return "", false
	}
	t, err := intake.ParseDate(rec.Date, loc)
	if err != nil {
		return "", false
	}
	return dayKey(t), true
}

func dayKey(t time.Time) string {
	return t.Format(intake.DateLayout)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
