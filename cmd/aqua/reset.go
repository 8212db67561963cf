package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aqualog/aqua/internal/config"
	"github.com/aqualog/aqua/internal/database"
)

func newResetCmd(flags *globalFlags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all logged intake and notification history",
		Long: `Delete every intake record and every sent-notification entry from the
local database, for all owners. Settings are left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, flags)
			if err != nil {
				return err
			}
			defer sess.Close()

			if !force {
				reader := bufio.NewReader(cmd.InOrStdin())
				fmt.Fprintf(cmd.ErrOrStderr(), "Delete all data in %s? (y/N) ", config.GetDBPath())
				answer, err := reader.ReadString('\n')
				if err != nil && answer == "" {
					return err
				}

				answer = strings.TrimSpace(strings.ToLower(answer))
				if answer != "y" {
					fmt.Fprintln(cmd.OutOrStdout(), "Reset cancelled")
					return nil
				}
			}

			if err := database.ClearDatabase(sess.dbCtx); err != nil {
				return fmt.Errorf("failed to clear database: %w", err)
			}
			sess.logger.Info("database cleared", slog.String("db", config.GetDBPath()))

			fmt.Fprintln(cmd.OutOrStdout(), "Database cleared")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")

	return cmd
}
