package intake

import (
	"fmt"
	"strings"
	"time"
)

// Patch is a partial update to a record. Nil fields are left untouched.
type Patch struct {
	Cups      *int
	Bottles   *int
	StartTime *time.Time
	EndTime   *time.Time
}

// IsEmpty reports whether the patch sets no field.
func (p Patch) IsEmpty() bool {
	return p.Cups == nil && p.Bottles == nil && p.StartTime == nil && p.EndTime == nil
}

// Validate checks the patch on its own, before it is merged into a record.
func (p Patch) Validate() error {
	if p.IsEmpty() {
		return ErrEmptyPatch
	}
	if p.Cups != nil && *p.Cups < 0 {
		return ErrNegativeCount
	}
	if p.Bottles != nil && *p.Bottles < 0 {
		return ErrNegativeCount
	}
	if p.StartTime != nil && p.StartTime.IsZero() {
		return ErrMissingStartTime
	}
	if p.StartTime != nil && p.EndTime != nil && p.EndTime.Before(*p.StartTime) {
		return ErrInvalidInterval
	}
	return nil
}

// Apply returns a copy of rec with the patch merged in. Date is recomputed
// only when StartTime is part of the patch. Moving StartTime without EndTime
// shifts EndTime along so the stored duration is kept. The merged record may
// carry zero cups and bottles; only the submission path rejects empty intakes.
func (p Patch) Apply(rec Record, loc *time.Location) (Record, error) {
	if err := p.Validate(); err != nil {
		return Record{}, err
	}

	out := rec
	if p.Cups != nil {
		out.Cups = *p.Cups
	}
	if p.Bottles != nil {
		out.Bottles = *p.Bottles
	}
	if p.StartTime != nil {
		out.StartTime = *p.StartTime
		out.Date = DateFor(*p.StartTime, loc)
		if p.EndTime == nil {
			var dur time.Duration
			if !rec.EndTime.IsZero() && rec.EndTime.After(rec.StartTime) {
				dur = rec.EndTime.Sub(rec.StartTime)
			}
			out.EndTime = p.StartTime.Add(dur)
		}
	}
	if p.EndTime != nil {
		out.EndTime = *p.EndTime
	}

	if !out.EndTime.IsZero() && out.EndTime.Before(out.StartTime) {
		return Record{}, ErrInvalidInterval
	}
	return out, nil
}

// String renders the set fields, for log lines.
func (p Patch) String() string {
	parts := make([]string, 0, 4)
	if p.Cups != nil {
		parts = append(parts, fmt.Sprintf("cups=%d", *p.Cups))
	}
	if p.Bottles != nil {
		parts = append(parts, fmt.Sprintf("bottles=%d", *p.Bottles))
	}
	if p.StartTime != nil {
		parts = append(parts, "start="+p.StartTime.Format(time.RFC3339))
	}
	if p.EndTime != nil {
		parts = append(parts, "end="+p.EndTime.Format(time.RFC3339))
	}
	return strings.Join(parts, " ")
}
