package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aqualog/aqua/internal/intake"
	"github.com/aqualog/aqua/internal/usecase"
)

func newAddCmd(flags *globalFlags) *cobra.Command {
	var (
		cups    int
		bottles int
		start   string
		end     string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log water intake",
		Long:  "Log water intake in cups (250ml) and bottles (500ml). Times accept RFC3339, \"YYYY-MM-DD HH:MM\", or \"HH:MM\" for today.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "text" && format != "json" {
				return fmt.Errorf("invalid format: %s (valid values: text, json)", format)
			}

			sess, err := openSession(cmd, flags)
			if err != nil {
				return err
			}
			defer sess.Close()

			loc := sess.intake.Location()
			now := time.Now()

			startTime := now
			if start != "" {
				if startTime, err = intake.ParseTime(start, now, loc); err != nil {
					return err
				}
			}
			var endTime time.Time
			if end != "" {
				if endTime, err = intake.ParseTime(end, now, loc); err != nil {
					return err
				}
			}

			ctx := context.Background()
			result, err := sess.intake.Submit(ctx, usecase.SubmitInput{
				OwnerID:   sess.ownerID,
				Cups:      cups,
				Bottles:   bottles,
				StartTime: startTime,
				EndTime:   endTime,
			})
			if err != nil {
				return err
			}

			if format == "json" {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(result)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged %dml on %s (%s)\n", result.Record.Milliliters(), result.Record.Date, result.Record.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Day total: %s / %s\n", formatML(result.DayTotalML), formatML(sess.settings.DailyGoalML))
			return nil
		},
	}

	cmd.Flags().IntVarP(&cups, "cups", "c", 0, "Number of 250ml cups")
	cmd.Flags().IntVarP(&bottles, "bottles", "b", 0, "Number of 500ml bottles")
	cmd.Flags().StringVar(&start, "start", "", "When drinking started (default now)")
	cmd.Flags().StringVar(&end, "end", "", "When drinking finished (default --start)")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")

	return cmd
}

func formatML(ml int) string {
	if ml >= 1000 {
		return fmt.Sprintf("%.2fL", float64(ml)/1000)
	}
	return fmt.Sprintf("%dml", ml)
}
