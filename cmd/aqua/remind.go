package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/aqualog/aqua/internal/notify"
)

func newRemindCmd(flags *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Show the hourly reminder schedule",
		Long:  "Show the hourly hydration reminders configured by reminder_start_hour and reminder_end_hour. Delivery is left to the system scheduler.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(cmd, flags)
			settings, err := loadSettings(logger)
			if err != nil {
				return err
			}
			loc, err := settings.Location()
			if err != nil {
				return err
			}

			schedule := notify.ReminderSchedule(settings.ReminderStartHour, settings.ReminderEndHour)
			next, _, hasNext := notify.NextReminder(schedule, time.Now().In(loc))

			switch format {
			case "json":
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(schedule)
			case "table":
				t := table.NewWriter()
				t.SetOutputMirror(cmd.OutOrStdout())
				t.SetStyle(table.StyleLight)
				t.AppendHeader(table.Row{"Time", "Title", "Message"})
				for _, r := range schedule {
					t.AppendRow(table.Row{fmt.Sprintf("%02d:%02d", r.Hour, r.Minute), r.Message.Title, r.Message.Body})
				}
				t.Render()
				if hasNext {
					fmt.Fprintf(cmd.OutOrStdout(), "Next reminder: %s\n", next.Format("Mon 15:04"))
				}
				return nil
			default:
				return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}
