package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/aqualog/aqua/internal/database"
)

func newNotificationsCmd(flags *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "List once-per-day notifications already delivered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := openSession(cmd, flags)
			if err != nil {
				return err
			}
			defer sess.Close()

			history, err := sess.intake.Notifications(context.Background(), sess.ownerID)
			if err != nil {
				return err
			}

			switch format {
			case "json":
				if history == nil {
					history = []database.NotificationRecord{}
				}
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(history)
			case "table":
				if len(history) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No notifications sent")
					return nil
				}
				t := table.NewWriter()
				t.SetOutputMirror(cmd.OutOrStdout())
				t.SetStyle(table.StyleLight)
				t.AppendHeader(table.Row{"Sent", "Kind", "Title", "Message"})
				loc := sess.intake.Location()
				for _, n := range history {
					t.AppendRow(table.Row{n.SentAt.In(loc).Format("2006-01-02 15:04"), n.Kind, n.Title, n.Body})
				}
				t.Render()
				return nil
			default:
				return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}
