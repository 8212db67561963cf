package analytics

import (
	"math"
	"time"

	"github.com/aqualog/aqua/internal/intake"
)

// LifetimeSummary aggregates the whole history.
type LifetimeSummary struct {
	TotalEntries int     `json:"totalEntries"`
	TotalML      int     `json:"totalMl"`
	TotalLiters  float64 `json:"totalLiters"`
	TotalDays    int     `json:"totalDays"`
	AvgPerDay    int     `json:"avgPerDay"`
	DaysMetGoal  int     `json:"daysMetGoal"`
	SuccessRate  int     `json:"successRate"`
}

// Summarize counts well-formed entries over records and days over totals. Days
// that met the goal are counted once per day, not per record.
func Summarize(records []intake.Record, totals DailyTotals, goal int, loc *time.Location) LifetimeSummary {
	if goal <= 0 {
		goal = DefaultGoalML
	}

	s := LifetimeSummary{TotalDays: len(totals)}
	for _, rec := range records {
		if _, ok := recordDay(rec, loc); ok {
			s.TotalEntries++
		}
	}
	for _, ml := range totals {
		s.TotalML += ml
		if ml >= goal {
			s.DaysMetGoal++
		}
	}
	s.TotalLiters = math.Round(float64(s.TotalML)/100) / 10
	if s.TotalDays > 0 {
		s.AvgPerDay = int(math.Round(float64(s.TotalML) / float64(s.TotalDays)))
		s.SuccessRate = int(math.Round(100 * float64(s.DaysMetGoal) / float64(s.TotalDays)))
	}
	return s
}
