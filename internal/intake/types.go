// Package intake provides the water-intake record type and its validation rules.
package intake

import (
	"errors"
	"time"
)

// Serving sizes in milliliters.
const (
	CupML    = 250
	BottleML = 500
)

// DateLayout is the calendar-day key format used for bucketing records.
const DateLayout = "2006-01-02"

var (
	ErrEmptyIntake      = errors.New("intake must contain at least one cup or bottle")
	ErrNegativeCount    = errors.New("cups and bottles must not be negative")
	ErrInvalidInterval  = errors.New("end time must not precede start time")
	ErrEmptyPatch       = errors.New("patch does not change any field")
	ErrMissingOwner     = errors.New("owner id is required")
	ErrMissingStartTime = errors.New("start time is required")
)

// Record is one logged drinking event.
type Record struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Cups      int       `json:"cups"`
	Bottles   int       `json:"bottles"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	// Date is the local calendar day of StartTime, formatted with DateLayout.
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Milliliters returns the volume the record represents.
func (r Record) Milliliters() int {
	return Milliliters(r.Cups, r.Bottles)
}

func Milliliters(cups, bottles int) int {
	return cups*CupML + bottles*BottleML
}

// DateFor returns the calendar-day key for t in loc. A nil loc means time.Local.
func DateFor(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DateLayout)
}

// ParseDate parses a calendar-day key into midnight of that day in loc.
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DateLayout, date, loc)
}

// NewInput carries the fields a caller supplies when logging water.
type NewInput struct {
	OwnerID   string
	Cups      int
	Bottles   int
	StartTime time.Time
	EndTime   time.Time
}

// NewRecord validates input and builds a record without an ID. A zero EndTime
// is treated as an instantaneous event ending at StartTime.
func NewRecord(input NewInput, loc *time.Location) (Record, error) {
	if input.OwnerID == "" {
		return Record{}, ErrMissingOwner
	}
	if input.StartTime.IsZero() {
		return Record{}, ErrMissingStartTime
	}
	if input.Cups < 0 || input.Bottles < 0 {
		return Record{}, ErrNegativeCount
	}
	if input.Cups == 0 && input.Bottles == 0 {
		return Record{}, ErrEmptyIntake
	}

	end := input.EndTime
	if end.IsZero() {
		end = input.StartTime
	}
	if end.Before(input.StartTime) {
		return Record{}, ErrInvalidInterval
	}

	return Record{
		OwnerID:   input.OwnerID,
		Cups:      input.Cups,
		Bottles:   input.Bottles,
		StartTime: input.StartTime,
		EndTime:   end,
		Date:      DateFor(input.StartTime, loc),
	}, nil
}
