package analytics

import "math"

// Component ceilings of the hydration score.
const (
	goalAchievementWeight = 40
	consistencyWeight     = 30
	averageWeight         = 20
	distributionWeight    = 10

	// distributionTarget is the number of logging events that earns the full
	// distribution component.
	distributionTarget = 3
)

// ScoreBreakdown exposes the four weighted components.
type ScoreBreakdown struct {
	GoalAchievement float64 `json:"goalAchievement"`
	Consistency     float64 `json:"consistency"`
	Average         float64 `json:"average"`
	Distribution    float64 `json:"distribution"`
}

// Total sums the components without rounding.
func (b ScoreBreakdown) Total() float64 {
	return b.GoalAchievement + b.Consistency + b.Average + b.Distribution
}

// HydrationScore is the 0-100 composite with its letter grade.
type HydrationScore struct {
	Score     int            `json:"score"`
	Grade     string         `json:"grade"`
	Color     string         `json:"color"`
	Breakdown ScoreBreakdown `json:"breakdown"`
}

type gradeStep struct {
	min   float64
	grade string
	color string
}

// gradeSteps runs from green to red; first match wins.
var gradeSteps = []gradeStep{
	{90, "A+", "#4CAF50"},
	{85, "A", "#66BB6A"},
	{80, "A-", "#81C784"},
	{75, "B+", "#9CCC65"},
	{70, "B", "#AED581"},
	{65, "B-", "#C5E1A5"},
	{60, "C+", "#FFF176"},
	{55, "C", "#FFD54F"},
	{50, "C-", "#FFCA28"},
	{45, "D+", "#FFB74D"},
	{40, "D", "#FFA726"},
	{35, "D-", "#FF9800"},
}

const (
	failingGrade = "F"
	failingColor = "#F44336"
)

// GradeFor maps a score to its letter grade and display color.
func GradeFor(score float64) (string, string) {
	for _, step := range gradeSteps {
		if score >= step.min {
			return step.grade, step.color
		}
	}
	return failingGrade, failingColor
}

// ComputeScore weighs today's progress, weekly consistency, the weekly
// average, and how many separate logging events happened today. The grade is
// taken from the unrounded total.
func ComputeScore(todayML int, weekly WeeklyRollup, todayEvents int, goal int) HydrationScore {
	if goal <= 0 {
		goal = DefaultGoalML
	}

	b := ScoreBreakdown{
		GoalAchievement: math.Min(goalAchievementWeight, goalAchievementWeight*float64(todayML)/float64(goal)),
		Consistency:     consistencyWeight * float64(weekly.DaysWithData()) / weekLength,
		Average:         averageWeight * math.Min(1, weekly.WeekAverage/float64(goal)),
		Distribution:    distributionWeight * math.Min(1, float64(todayEvents)/distributionTarget),
	}
	if b.GoalAchievement < 0 {
		b.GoalAchievement = 0
	}

	total := b.Total()
	grade, color := GradeFor(total)
	return HydrationScore{
		Score:     int(math.Round(total)),
		Grade:     grade,
		Color:     color,
		Breakdown: b,
	}
}
