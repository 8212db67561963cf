package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aqualog/aqua/internal/config"
	"github.com/aqualog/aqua/internal/database"
	"github.com/aqualog/aqua/internal/logging"
	"github.com/aqualog/aqua/internal/notify"
	"github.com/aqualog/aqua/internal/owner"
	"github.com/aqualog/aqua/internal/usecase"
)

// session bundles what a single command invocation needs.
type session struct {
	dbCtx    *database.Context
	intake   *usecase.Intake
	settings *config.Settings
	ownerID  string
	logger   *slog.Logger
}

func newLogger(cmd *cobra.Command, flags *globalFlags) *slog.Logger {
	return logging.New(cmd.ErrOrStderr(), flags.logLevel, flags.logFormat)
}

func loadSettings(logger *slog.Logger) (*config.Settings, error) {
	return config.NewLoader("", logger).Load()
}

// openSession resolves the owner, loads settings, and opens the database.
// Callers must Close the session.
func openSession(cmd *cobra.Command, flags *globalFlags) (*session, error) {
	logger := newLogger(cmd, flags)

	ownerID, err := owner.Resolve(owner.Options{Flag: flags.owner})
	if err != nil {
		return nil, err
	}

	settings, err := loadSettings(logger)
	if err != nil {
		return nil, err
	}

	dbCtx, err := database.CreateDatabase("")
	if err != nil {
		return nil, err
	}

	uc, err := usecase.NewIntake(dbCtx, settings, &consoleNotifier{w: cmd.ErrOrStderr()}, logger)
	if err != nil {
		_ = database.CloseDatabase(dbCtx)
		return nil, err
	}

	logger.Debug("session opened", slog.String("owner", ownerID), slog.String("db", config.GetDBPath()))

	return &session{
		dbCtx:    dbCtx,
		intake:   uc,
		settings: settings,
		ownerID:  ownerID,
		logger:   logger,
	}, nil
}

func (s *session) Close() {
	_ = database.CloseDatabase(s.dbCtx)
}

// consoleNotifier prints notifications for an interactive terminal.
type consoleNotifier struct {
	w io.Writer
}

func (n *consoleNotifier) Notify(_ context.Context, msg notify.Message) error {
	_, err := fmt.Fprintf(n.w, "%s\n  %s\n", msg.Title, msg.Body)
	return err
}
