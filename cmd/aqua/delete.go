package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aqualog/aqua/internal/services"
)

func newDeleteCmd(flags *globalFlags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a logged intake",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			sess, err := openSession(cmd, flags)
			if err != nil {
				return err
			}
			defer sess.Close()

			ctx := context.Background()
			rec, err := sess.intake.Get(ctx, sess.ownerID, id)
			if err != nil {
				if errors.Is(err, services.ErrNotFound) {
					return fmt.Errorf("intake not found: %s", id)
				}
				return err
			}

			// Confirmation prompt
			if !force {
				reader := bufio.NewReader(cmd.InOrStdin())
				fmt.Fprintf(cmd.ErrOrStderr(), "Delete %dml logged on %s? (y/N) ", rec.Milliliters(), rec.Date)
				answer, err := reader.ReadString('\n')
				if err != nil && answer == "" {
					return err
				}

				answer = strings.TrimSpace(strings.ToLower(answer))
				if answer != "y" {
					fmt.Fprintln(cmd.OutOrStdout(), "Deletion cancelled")
					return nil
				}
			}

			removed, err := sess.intake.Delete(ctx, sess.ownerID, id)
			if err != nil {
				if errors.Is(err, services.ErrNotFound) {
					return fmt.Errorf("intake not found: %s", id)
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s (%dml on %s)\n", removed.ID, removed.Milliliters(), removed.Date)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")

	return cmd
}
