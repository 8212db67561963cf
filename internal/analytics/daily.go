package analytics

import (
	"math"
	"time"
)

// DailyStats compares today with yesterday.
type DailyStats struct {
	Today            int     `json:"today"`
	Yesterday        int     `json:"yesterday"`
	YesterdayHasData bool    `json:"yesterdayHasData"`
	Difference       int     `json:"difference"`
	Progress         float64 `json:"progress"`
	GoalMet          bool    `json:"goalMet"`
}

// ComputeDailyStats reads today's and yesterday's totals. Progress is a
// percentage of the goal capped at 100.
func ComputeDailyStats(totals DailyTotals, today time.Time, goal int) DailyStats {
	if goal <= 0 {
		goal = DefaultGoalML
	}

	day := startOfDay(today)
	todayML, _ := totals.On(day)
	yesterdayML, hasYesterday := totals.On(day.AddDate(0, 0, -1))

	return DailyStats{
		Today:            todayML,
		Yesterday:        yesterdayML,
		YesterdayHasData: hasYesterday,
		Difference:       todayML - yesterdayML,
		Progress:         math.Min(100, 100*float64(todayML)/float64(goal)),
		GoalMet:          todayML >= goal,
	}
}
