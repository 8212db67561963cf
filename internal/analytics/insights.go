package analytics

import (
	"fmt"

	"github.com/aqualog/aqua/internal/intake"
)

// Insight texts.
const (
	InsightNoData          = "💧 No water logged yet today. Start with a glass now!"
	InsightMorningKickoff  = "🌅 Try drinking water first thing in the morning to kickstart hydration"
	InsightConsistencyHigh = "🌟 Excellent consistency this week! You're building a great habit"
	InsightConsistencyLow  = "💪 Try to be more consistent - small daily wins add up!"
	InsightSweetSpot       = "🎯 Perfect hydration today! This is the sweet spot"
	InsightExceeding       = "💧 Wow! You're exceeding your goal by a lot. Great job!"

	sweetSpotWidthML = 500
)

// TimeOfDay names an intake bucket by start hour.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

// timeOfDay buckets an hour into [6,12), [12,18), [18,24). Hours before 6 fall
// in no bucket.
func timeOfDay(hour int) (TimeOfDay, bool) {
	switch {
	case hour >= 6 && hour < 12:
		return Morning, true
	case hour >= 12 && hour < 18:
		return Afternoon, true
	case hour >= 18 && hour < 24:
		return Evening, true
	default:
		return "", false
	}
}

// GenerateInsights evaluates the tip rules in a fixed order. todayRecords are
// the records already selected for today.
func GenerateInsights(todayRecords []intake.Record, daily DailyStats, weekly WeeklyRollup, opts Options) []string {
	opts = opts.withDefaults()
	if len(todayRecords) == 0 {
		return []string{InsightNoData}
	}

	tips := []string{}

	buckets := make(map[TimeOfDay]int, 3)
	for _, rec := range todayRecords {
		if tod, ok := timeOfDay(rec.StartTime.In(opts.Location).Hour()); ok {
			buckets[tod]++
		}
	}

	if buckets[Morning] == 0 {
		tips = append(tips, InsightMorningKickoff)
	}

	for _, tod := range []TimeOfDay{Morning, Afternoon, Evening} {
		others := buckets[Morning] + buckets[Afternoon] + buckets[Evening] - buckets[tod]
		if buckets[tod] > others {
			tips = append(tips, fmt.Sprintf("⚖️ Your hydration is %s-heavy. Try spreading it throughout the day", tod))
			break
		}
	}

	if daily.YesterdayHasData {
		switch {
		case daily.Difference > 0:
			tips = append(tips, fmt.Sprintf("📈 You're %dml ahead of yesterday - keep it up!", daily.Difference))
		case daily.Difference < 0:
			tips = append(tips, fmt.Sprintf("📉 You're %dml behind yesterday. You can catch up!", -daily.Difference))
		}
	}

	switch {
	case weekly.CompletionRate >= 80:
		tips = append(tips, InsightConsistencyHigh)
	case weekly.CompletionRate < 50:
		tips = append(tips, InsightConsistencyLow)
	}

	if daily.Today >= opts.GoalML && daily.Today < opts.GoalML+sweetSpotWidthML {
		tips = append(tips, InsightSweetSpot)
	}
	if float64(daily.Today) >= opts.overachieverThreshold() {
		tips = append(tips, InsightExceeding)
	}

	return tips
}
