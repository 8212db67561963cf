package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aqualog/aqua/internal/intake"
	"github.com/aqualog/aqua/internal/services"
)

func newUpdateCmd(flags *globalFlags) *cobra.Command {
	var (
		cups    int
		bottles int
		start   string
		end     string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the amount or time of a logged intake",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			sess, err := openSession(cmd, flags)
			if err != nil {
				return err
			}
			defer sess.Close()

			loc := sess.intake.Location()
			now := time.Now()

			var patch intake.Patch
			if cmd.Flags().Changed("cups") {
				patch.Cups = &cups
			}
			if cmd.Flags().Changed("bottles") {
				patch.Bottles = &bottles
			}
			if cmd.Flags().Changed("start") {
				t, err := intake.ParseTime(start, now, loc)
				if err != nil {
					return err
				}
				patch.StartTime = &t
			}
			if cmd.Flags().Changed("end") {
				t, err := intake.ParseTime(end, now, loc)
				if err != nil {
					return err
				}
				patch.EndTime = &t
			}
			if patch.IsEmpty() {
				return errors.New("nothing to update: pass at least one of --cups, --bottles, --start, --end")
			}

			ctx := context.Background()
			updated, err := sess.intake.Update(ctx, sess.ownerID, id, patch)
			if err != nil {
				if errors.Is(err, services.ErrNotFound) {
					return fmt.Errorf("intake not found: %s", id)
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %d cups, %d bottles (%dml) on %s\n",
				updated.ID, updated.Cups, updated.Bottles, updated.Milliliters(), updated.Date)
			return nil
		},
	}

	cmd.Flags().IntVarP(&cups, "cups", "c", 0, "New number of cups")
	cmd.Flags().IntVarP(&bottles, "bottles", "b", 0, "New number of bottles")
	cmd.Flags().StringVar(&start, "start", "", "New start time")
	cmd.Flags().StringVar(&end, "end", "", "New end time")

	return cmd
}
