package analytics

import (
	"math"
	"time"
)

const weekLength = 7

// WeekDay is one entry of the trailing week.
type WeekDay struct {
	Date        string `json:"date"`
	DayName     string `json:"dayName"`
	Milliliters int    `json:"ml"`
	GoalMet     bool   `json:"goalMet"`
}

// WeeklyRollup summarises the seven days ending today, oldest first.
type WeeklyRollup struct {
	Days           [weekLength]WeekDay `json:"days"`
	WeekTotal      int                 `json:"weekTotal"`
	WeekAverage    float64             `json:"weekAverage"`
	CompletionRate int                 `json:"completionRate"`
}

// DaysWithData counts days with a positive total.
func (w WeeklyRollup) DaysWithData() int {
	n := 0
	for _, d := range w.Days {
		if d.Milliliters > 0 {
			n++
		}
	}
	return n
}

// DaysMetGoal counts days that reached the goal.
func (w WeeklyRollup) DaysMetGoal() int {
	n := 0
	for _, d := range w.Days {
		if d.GoalMet {
			n++
		}
	}
	return n
}

// ComputeWeeklyRollup builds the [today-6 .. today] window. The average always
// divides by seven so idle days pull it down.
func ComputeWeeklyRollup(totals DailyTotals, today time.Time, goal int) WeeklyRollup {
	if goal <= 0 {
		goal = DefaultGoalML
	}

	var rollup WeeklyRollup
	day := startOfDay(today).AddDate(0, 0, -(weekLength - 1))
	for i := range rollup.Days {
		ml, _ := totals.On(day)
		rollup.Days[i] = WeekDay{
			Date:        dayKey(day),
			DayName:     day.Format("Mon"),
			Milliliters: ml,
			GoalMet:     ml >= goal,
		}
		rollup.WeekTotal += ml
		day = day.AddDate(0, 0, 1)
	}

	rollup.WeekAverage = float64(rollup.WeekTotal) / weekLength
	if withData := rollup.DaysWithData(); withData > 0 {
		rollup.CompletionRate = int(math.Round(100 * float64(rollup.DaysMetGoal()) / float64(withData)))
	}
	return rollup
}
