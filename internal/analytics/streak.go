package analytics

import (
	"time"

	"github.com/aqualog/aqua/internal/intake"
)

// StreakState holds consecutive goal-met day counts.
type StreakState struct {
	Current int `json:"current"`
	Best    int `json:"best"`
}

// ComputeStreaks walks back from today for the current streak and scans the
// whole history for the best one. A calendar day with no records breaks a run.
func ComputeStreaks(totals DailyTotals, goal int, today time.Time) StreakState {
	if goal <= 0 {
		goal = DefaultGoalML
	}

	current := 0
	for day := startOfDay(today); ; day = day.AddDate(0, 0, -1) {
		ml, ok := totals.On(day)
		if !ok || ml < goal {
			break
		}
		current++
	}

	best, run := 0, 0
	prev := ""
	for _, date := range totals.Dates() {
		if prev != "" && !isNextDay(prev, date) {
			run = 0
		}
		if totals[date] >= goal {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
		prev = date
	}

	if current > best {
		best = current
	}
	return StreakState{Current: current, Best: best}
}

func isNextDay(prev, next string) bool {
	t, err := time.Parse(intake.DateLayout, prev)
	if err != nil {
		return false
	}
	return dayKey(t.AddDate(0, 0, 1)) == next
}
