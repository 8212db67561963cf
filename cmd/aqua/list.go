package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aqualog/aqua/internal/intake"
	"github.com/aqualog/aqua/internal/usecase"
)

func newListCmd(flags *globalFlags) *cobra.Command {
	var (
		from   string
		to     string
		days   int
		format string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged water intake",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := openSession(cmd, flags)
			if err != nil {
				return err
			}
			defer sess.Close()

			ctx := context.Background()
			records, err := sess.intake.List(ctx, sess.ownerID, usecase.ListOptions{
				From: from,
				To:   to,
				Days: days,
				Now:  time.Now(),
			})
			if err != nil {
				return err
			}

			switch format {
			case "json":
				return outputJSON(cmd, records)
			case "table":
				outputTable(cmd, records, sess.intake.Location())
				return nil
			default:
				return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First day to include (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Last day to include (YYYY-MM-DD)")
	cmd.Flags().IntVar(&days, "days", 0, "Only the trailing number of days ending today")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}

func outputJSON(cmd *cobra.Command, records []intake.Record) error {
	if records == nil {
		records = []intake.Record{}
	}
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

func getTerminalWidth() int {
	// Try to get terminal width from stdout
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	// Default width if terminal size cannot be determined
	return 80
}

// wrapString wraps a string to fit within maxWidth, accounting for multi-byte characters
func wrapString(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return s
	}

	s = strings.TrimSpace(s)
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}

	var result strings.Builder
	var currentLine strings.Builder
	currentWidth := 0

	for _, r := range s {
		charWidth := runewidth.RuneWidth(r)

		if currentWidth+charWidth > maxWidth && currentWidth > 0 {
			result.WriteString(currentLine.String())
			result.WriteString("\n")
			currentLine.Reset()
			currentWidth = 0
		}

		currentLine.WriteRune(r)
		currentWidth += charWidth
	}

	if currentLine.Len() > 0 {
		result.WriteString(currentLine.String())
	}

	return result.String()
}

// columnWidths holds the calculated layout for the list table
type columnWidths struct {
	id         int
	timeLayout string
	timeHeader string
}

// calculateColumnWidths fits the ID column into whatever the fixed columns leave.
// IDs are wrapped rather than truncated so they can still be copied.
func calculateColumnWidths(termWidth int, records []intake.Record) columnWidths {
	const numColumns = 6
	borderPadding := numColumns * 3
	availableWidth := termWidth - borderPadding

	maxIDWidth := 2
	for _, rec := range records {
		if w := runewidth.StringWidth(rec.ID); w > maxIDWidth {
			maxIDWidth = w
		}
	}

	// Date, Cups, Bottles, and Amount are predictable.
	fixedWidth := 10 + 4 + 7 + 7

	widths := columnWidths{
		timeLayout: "15:04",
		timeHeader: "Time",
	}
	timeWidth := 13 // "08:00 - 08:30"

	idWidth := availableWidth - fixedWidth - timeWidth
	if idWidth < maxIDWidth {
		// Show only the start time to leave more room for the ID.
		timeWidth = 5
		widths.timeHeader = "Start"
		idWidth = availableWidth - fixedWidth - timeWidth
	}
	if idWidth > maxIDWidth {
		idWidth = maxIDWidth
	}
	if idWidth < 8 {
		idWidth = 8
	}
	widths.id = idWidth
	return widths
}

func formatInterval(rec intake.Record, loc *time.Location, widths columnWidths) string {
	start := rec.StartTime.In(loc).Format(widths.timeLayout)
	if widths.timeHeader == "Start" {
		return start
	}
	end := rec.EndTime.In(loc).Format(widths.timeLayout)
	if end == start {
		return start
	}
	return start + " - " + end
}

func outputTable(cmd *cobra.Command, records []intake.Record, loc *time.Location) {
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No water logged")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)

	widths := calculateColumnWidths(getTerminalWidth(), records)

	t.AppendHeader(table.Row{"ID", "Date", widths.timeHeader, "Cups", "Bottles", "Amount"})

	total := 0
	for _, rec := range records {
		total += rec.Milliliters()
		t.AppendRow(table.Row{
			wrapString(rec.ID, widths.id),
			rec.Date,
			formatInterval(rec, loc, widths),
			rec.Cups,
			rec.Bottles,
			fmt.Sprintf("%dml", rec.Milliliters()),
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "Total", formatML(total)})

	t.Render()
}
