package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/aqualog/aqua/internal/analytics"
	"github.com/aqualog/aqua/internal/intake"
)

func newStatsCmd(flags *globalFlags) *cobra.Command {
	var (
		date   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show progress, streaks, weekly rollup, score, tips, and badges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "table" && format != "json" {
				return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
			}

			sess, err := openSession(cmd, flags)
			if err != nil {
				return err
			}
			defer sess.Close()

			now := time.Now()
			if date != "" {
				day, err := intake.ParseDate(date, sess.intake.Location())
				if err != nil {
					return fmt.Errorf("invalid --date %q (want YYYY-MM-DD)", date)
				}
				now = day.Add(12 * time.Hour)
			}

			report, err := sess.intake.Stats(context.Background(), sess.ownerID, now)
			if err != nil {
				return err
			}

			if format == "json" {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(report)
			}
			renderReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Report on this day instead of today (YYYY-MM-DD)")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}

func progressBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func renderReport(w io.Writer, report analytics.Report) {
	daily := report.Daily
	fmt.Fprintf(w, "%s  %s / %s  %s %.0f%%\n",
		report.Date, formatML(daily.Today), formatML(report.GoalML), progressBar(daily.Progress, 20), daily.Progress)
	if daily.YesterdayHasData {
		fmt.Fprintf(w, "Yesterday: %s (%+dml)\n", formatML(daily.Yesterday), daily.Difference)
	}
	fmt.Fprintf(w, "Streak: %d days (best %d)\n", report.Streaks.Current, report.Streaks.Best)
	fmt.Fprintf(w, "Hydration score: %d (%s)\n\n", report.Score.Score, report.Score.Grade)

	week := table.NewWriter()
	week.SetOutputMirror(w)
	week.SetStyle(table.StyleLight)
	week.AppendHeader(table.Row{"Day", "Date", "Amount", "Goal"})
	for _, day := range report.Weekly.Days {
		met := ""
		if day.GoalMet {
			met = "✓"
		}
		week.AppendRow(table.Row{day.DayName, day.Date, formatML(day.Milliliters), met})
	}
	week.AppendFooter(table.Row{"", "Total", formatML(report.Weekly.WeekTotal), fmt.Sprintf("%d%%", report.Weekly.CompletionRate)})
	week.Render()

	breakdown := report.Score.Breakdown
	score := table.NewWriter()
	score.SetOutputMirror(w)
	score.SetStyle(table.StyleLight)
	score.AppendHeader(table.Row{"Component", "Points"})
	score.AppendRows([]table.Row{
		{"Goal achievement", fmt.Sprintf("%.1f / 40", breakdown.GoalAchievement)},
		{"Consistency", fmt.Sprintf("%.1f / 30", breakdown.Consistency)},
		{"Weekly average", fmt.Sprintf("%.1f / 20", breakdown.Average)},
		{"Distribution", fmt.Sprintf("%.1f / 10", breakdown.Distribution)},
	})
	score.Render()

	if len(report.Insights) > 0 {
		fmt.Fprintln(w, "\nTips")
		for _, tip := range report.Insights {
			fmt.Fprintf(w, "  %s\n", tip)
		}
	}

	if len(report.Badges) > 0 {
		fmt.Fprintln(w, "\nBadges")
		for _, badge := range report.Badges {
			fmt.Fprintf(w, "  %s\n", badge)
		}
	}

	life := report.Lifetime
	fmt.Fprintf(w, "\nAll time: %.2fL over %d days in %d entries, %s/day, goal met on %d days (%d%%)\n",
		life.TotalLiters, life.TotalDays, life.TotalEntries, formatML(life.AvgPerDay), life.DaysMetGoal, life.SuccessRate)
}
