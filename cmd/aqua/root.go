package main

import (
	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	owner     string
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:          "aqua",
		Short:        "aqua - water intake tracking and hydration analytics",
		Long:         "aqua logs the water you drink in cups (250ml) and bottles (500ml) and derives daily progress, streaks, weekly rollups, a hydration score, tips, and badges.",
		Version:      version,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flags.owner, "owner", "", "Owner id (default $AQUA_OWNER, then the OS user name)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level: debug, info, warn, or error")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "text", "Log format: text or json")

	cmd.AddCommand(newAddCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newUpdateCmd(flags))
	cmd.AddCommand(newDeleteCmd(flags))
	cmd.AddCommand(newStatsCmd(flags))
	cmd.AddCommand(newRemindCmd(flags))
	cmd.AddCommand(newNotificationsCmd(flags))
	cmd.AddCommand(newResetCmd(flags))
	cmd.AddCommand(newConfigCmd(flags))
	cmd.AddCommand(newMCPCmd(flags))

	return cmd
}
