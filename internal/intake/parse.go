package intake

import (
	"fmt"
	"strings"
	"time"
)

// ParseTime accepts RFC3339, "2006-01-02 15:04", or a bare "15:04" clock time
// which is placed on the calendar day of now.
func ParseTime(value string, now time.Time, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty time value")
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", value, loc); err == nil {
		return t, nil
	}
	if clock, err := time.ParseInLocation("15:04", value, loc); err == nil {
		day := now.In(loc)
		return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, loc), nil
	}

	return time.Time{}, fmt.Errorf("invalid time %q (use RFC3339, YYYY-MM-DD HH:MM, or HH:MM)", value)
}
