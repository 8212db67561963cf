package analytics

import (
	"time"

	"github.com/aqualog/aqua/internal/intake"
)

// DefaultOverachieverMultiplier scales the goal for the Overachiever badge and
// the exceeding-goal insight.
const DefaultOverachieverMultiplier = 1.5

// Options parameterise a report.
type Options struct {
	GoalML                 int
	OverachieverMultiplier float64
	Location               *time.Location
}

func DefaultOptions() Options {
	return Options{
		GoalML:                 DefaultGoalML,
		OverachieverMultiplier: DefaultOverachieverMultiplier,
		Location:               time.Local,
	}
}

func (o Options) withDefaults() Options {
	if o.GoalML <= 0 {
		o.GoalML = DefaultGoalML
	}
	if o.OverachieverMultiplier < 1 {
		o.OverachieverMultiplier = DefaultOverachieverMultiplier
	}
	if o.Location == nil {
		o.Location = time.Local
	}
	return o
}

func (o Options) overachieverThreshold() float64 {
	return float64(o.GoalML) * o.OverachieverMultiplier
}

// Report is the full derived view of one owner's history.
type Report struct {
	Date     string          `json:"date"`
	GoalML   int             `json:"goalMl"`
	Daily    DailyStats      `json:"daily"`
	Streaks  StreakState     `json:"streaks"`
	Weekly   WeeklyRollup    `json:"weekly"`
	Score    HydrationScore  `json:"score"`
	Insights []string        `json:"insights"`
	Badges   []Badge         `json:"badges"`
	Lifetime LifetimeSummary `json:"lifetime"`
}

// Build runs records through the aggregator, streak, weekly, score, and
// insight stages for the calendar day of now.
func Build(records []intake.Record, now time.Time, opts Options) Report {
	opts = opts.withDefaults()
	today := startOfDay(now.In(opts.Location))

	totals := AggregateByDay(records, opts.Location)
	todayRecords := RecordsOn(records, today, opts.Location)

	daily := ComputeDailyStats(totals, today, opts.GoalML)
	streaks := ComputeStreaks(totals, opts.GoalML, today)
	weekly := ComputeWeeklyRollup(totals, today, opts.GoalML)
	score := ComputeScore(daily.Today, weekly, len(todayRecords), opts.GoalML)

	return Report{
		Date:     dayKey(today),
		GoalML:   opts.GoalML,
		Daily:    daily,
		Streaks:  streaks,
		Weekly:   weekly,
		Score:    score,
		Insights: GenerateInsights(todayRecords, daily, weekly, opts),
		Badges:   GenerateBadges(todayRecords, streaks, daily, weekly, opts),
		Lifetime: Summarize(records, totals, opts.GoalML, opts.Location),
	}
}
