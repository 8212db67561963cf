package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aqualog/aqua/internal/mcp"
	"github.com/aqualog/aqua/internal/notify"
	"github.com/aqualog/aqua/internal/owner"
)

func newMCPCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server",
		Long:  "Start the Model Context Protocol server for aqua over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(cmd, flags)

			ownerID, err := owner.Resolve(owner.Options{Flag: flags.owner})
			if err != nil {
				return err
			}
			settings, err := loadSettings(logger)
			if err != nil {
				return err
			}

			server, err := mcp.NewServer(mcp.Options{
				OwnerID:  ownerID,
				Version:  version,
				Settings: settings,
				Notifier: notify.NewLogNotifier(logger),
				Logger:   logger,
			})
			if err != nil {
				return fmt.Errorf("failed to create MCP server: %w", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.Run(ctx)
		},
	}

	return cmd
}
