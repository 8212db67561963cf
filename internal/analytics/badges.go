package analytics

import "github.com/aqualog/aqua/internal/intake"

// Badge is an achievement label.
type Badge string

const (
	BadgeEarlyBird    Badge = "🌅 Early Bird"
	BadgeNightOwl     Badge = "🦉 Night Owl"
	BadgeStreakMaster Badge = "🔥 Streak Master"
	BadgeOverachiever Badge = "🏆 Overachiever"
	BadgePerfectWeek  Badge = "✨ Perfect Week"
)

const streakMasterLength = 7

// GenerateBadges returns every badge whose condition holds, in a fixed order.
func GenerateBadges(todayRecords []intake.Record, streaks StreakState, daily DailyStats, weekly WeeklyRollup, opts Options) []Badge {
	opts = opts.withDefaults()
	badges := []Badge{}

	early, late := false, false
	for _, rec := range todayRecords {
		hour := rec.StartTime.In(opts.Location).Hour()
		if hour >= 6 && hour <= 9 {
			early = true
		}
		if hour >= 21 && hour <= 23 {
			late = true
		}
	}
	if early {
		badges = append(badges, BadgeEarlyBird)
	}
	if late {
		badges = append(badges, BadgeNightOwl)
	}

	if streaks.Current >= streakMasterLength {
		badges = append(badges, BadgeStreakMaster)
	}
	if float64(daily.Today) >= opts.overachieverThreshold() {
		badges = append(badges, BadgeOverachiever)
	}
	if weekly.CompletionRate == 100 && weekly.DaysWithData() == weekLength {
		badges = append(badges, BadgePerfectWeek)
	}

	return badges
}
