// Package mcp exposes intake logging and hydration stats as MCP tools.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/aqualog/aqua/internal/analytics"
	"github.com/aqualog/aqua/internal/config"
	"github.com/aqualog/aqua/internal/database"
	"github.com/aqualog/aqua/internal/intake"
	"github.com/aqualog/aqua/internal/notify"
	"github.com/aqualog/aqua/internal/services"
	"github.com/aqualog/aqua/internal/usecase"
)

// Options configure a Server.
type Options struct {
	// DBPath selects the database; empty means the default data directory.
	DBPath   string
	OwnerID  string
	Version  string
	Settings *config.Settings
	Notifier notify.Notifier
	Logger   *slog.Logger
}

// Server wraps the MCP server with hydration-specific tools. Every tool acts
// on the owner the server was started for.
type Server struct {
	server  *mcp.Server
	dbCtx   *database.Context
	intake  *usecase.Intake
	ownerID string
	logger  *slog.Logger
	now     func() time.Time
}

// NewServer opens the database and registers the tools.
func NewServer(opts Options) (*Server, error) {
	if opts.OwnerID == "" {
		return nil, intake.ErrMissingOwner
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	dbCtx, err := database.CreateDatabase(opts.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create database: %w", err)
	}

	uc, err := usecase.NewIntake(dbCtx, opts.Settings, opts.Notifier, logger)
	if err != nil {
		_ = database.CloseDatabase(dbCtx)
		return nil, err
	}

	version := opts.Version
	if version == "" {
		version = "dev"
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "aqua",
		Version: version,
	}, nil)

	s := &Server{
		server:  mcpServer,
		dbCtx:   dbCtx,
		intake:  uc,
		ownerID: opts.OwnerID,
		logger:  logger,
		now:     time.Now,
	}
	uc.SetClock(func() time.Time { return s.now() })

	s.registerTools()

	return s, nil
}

// Run serves over stdio until ctx is cancelled or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	defer s.Close()
	s.logger.InfoContext(ctx, "mcp server starting", slog.String("owner", s.ownerID))
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Close releases the database.
func (s *Server) Close() error {
	return database.CloseDatabase(s.dbCtx)
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "intake_add",
		Description: "Log water intake as cups (250ml) and bottles (500ml)",
	}, s.handleAdd)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "intake_list",
		Description: "List logged water intake, newest first",
	}, s.handleList)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "intake_update",
		Description: "Change the amount or time of a logged intake",
	}, s.handleUpdate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "intake_delete",
		Description: "Delete a logged intake",
	}, s.handleDelete)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "hydration_stats",
		Description: "Daily progress, streaks, weekly rollup, hydration score, insights, and badges",
	}, s.handleStats)
}

type RecordView struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Cups        int    `json:"cups"`
	Bottles     int    `json:"bottles"`
	Milliliters int    `json:"milliliters"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

func newRecordView(rec intake.Record, loc *time.Location) RecordView {
	return RecordView{
		ID:          rec.ID,
		Date:        rec.Date,
		Cups:        rec.Cups,
		Bottles:     rec.Bottles,
		Milliliters: rec.Milliliters(),
		StartTime:   rec.StartTime.In(loc).Format(time.RFC3339),
		EndTime:     rec.EndTime.In(loc).Format(time.RFC3339),
	}
}

type AddInput struct {
	Cups      int    `json:"cups,omitempty" jsonschema:"Number of 250ml cups"`
	Bottles   int    `json:"bottles,omitempty" jsonschema:"Number of 500ml bottles"`
	StartTime string `json:"startTime,omitempty" jsonschema:"When drinking started: RFC3339, YYYY-MM-DD HH:MM, or HH:MM today (default now)"`
	EndTime   string `json:"endTime,omitempty" jsonschema:"When drinking finished, same formats (default startTime)"`
}

type AddOutput struct {
	Message      string     `json:"message"`
	Record       RecordView `json:"record"`
	DayTotalML   int        `json:"dayTotalMl"`
	GoalMet      bool       `json:"goalMet"`
	GoalNotified bool       `json:"goalNotified"`
}

type ListInput struct {
	From string `json:"from,omitempty" jsonschema:"First day to include, YYYY-MM-DD"`
	To   string `json:"to,omitempty" jsonschema:"Last day to include, YYYY-MM-DD"`
	Days int    `json:"days,omitempty" jsonschema:"List only the trailing number of days ending today"`
}

type ListOutput struct {
	Records []RecordView `json:"records"`
	TotalML int          `json:"totalMl"`
}

type UpdateInput struct {
	ID        string  `json:"id" jsonschema:"The intake id"`
	Cups      *int    `json:"cups,omitempty" jsonschema:"New number of cups"`
	Bottles   *int    `json:"bottles,omitempty" jsonschema:"New number of bottles"`
	StartTime *string `json:"startTime,omitempty" jsonschema:"New start time"`
	EndTime   *string `json:"endTime,omitempty" jsonschema:"New end time"`
}

type UpdateOutput struct {
	Message string     `json:"message"`
	Record  RecordView `json:"record"`
}

type DeleteInput struct {
	ID string `json:"id" jsonschema:"The intake id to delete"`
}

type DeleteOutput struct {
	Message string `json:"message"`
}

type StatsInput struct {
	Date string `json:"date,omitempty" jsonschema:"Day to report on, YYYY-MM-DD (default today)"`
}

// Tool handlers

func (s *Server) handleAdd(ctx context.Context, req *mcp.CallToolRequest, input AddInput) (*mcp.CallToolResult, AddOutput, error) {
	loc := s.intake.Location()
	now := s.now()

	start := now
	if input.StartTime != "" {
		parsed, err := intake.ParseTime(input.StartTime, now, loc)
		if err != nil {
			return nil, AddOutput{}, err
		}
		start = parsed
	}
	var end time.Time
	if input.EndTime != "" {
		parsed, err := intake.ParseTime(input.EndTime, now, loc)
		if err != nil {
			return nil, AddOutput{}, err
		}
		end = parsed
	}

	result, err := s.intake.Submit(ctx, usecase.SubmitInput{
		OwnerID:   s.ownerID,
		Cups:      input.Cups,
		Bottles:   input.Bottles,
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		return nil, AddOutput{}, fmt.Errorf("failed to add intake: %w", err)
	}

	return nil, AddOutput{
		Message:      fmt.Sprintf("Logged %dml (%s total for %s)", result.Record.Milliliters(), formatML(result.DayTotalML), result.Record.Date),
		Record:       newRecordView(result.Record, loc),
		DayTotalML:   result.DayTotalML,
		GoalMet:      result.GoalMet,
		GoalNotified: result.GoalNotified,
	}, nil
}

func (s *Server) handleList(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
	records, err := s.intake.List(ctx, s.ownerID, usecase.ListOptions{
		From: input.From,
		To:   input.To,
		Days: input.Days,
		Now:  s.now(),
	})
	if err != nil {
		return nil, ListOutput{}, fmt.Errorf("failed to list intakes: %w", err)
	}

	loc := s.intake.Location()
	out := ListOutput{Records: make([]RecordView, 0, len(records))}
	for _, rec := range records {
		out.Records = append(out.Records, newRecordView(rec, loc))
		out.TotalML += rec.Milliliters()
	}
	return nil, out, nil
}

func (s *Server) handleUpdate(ctx context.Context, req *mcp.CallToolRequest, input UpdateInput) (*mcp.CallToolResult, UpdateOutput, error) {
	if strings.TrimSpace(input.ID) == "" {
		return nil, UpdateOutput{}, fmt.Errorf("id is required")
	}

	loc := s.intake.Location()
	now := s.now()
	patch := intake.Patch{Cups: input.Cups, Bottles: input.Bottles}
	if input.StartTime != nil {
		parsed, err := intake.ParseTime(*input.StartTime, now, loc)
		if err != nil {
			return nil, UpdateOutput{}, err
		}
		patch.StartTime = &parsed
	}
	if input.EndTime != nil {
		parsed, err := intake.ParseTime(*input.EndTime, now, loc)
		if err != nil {
			return nil, UpdateOutput{}, err
		}
		patch.EndTime = &parsed
	}

	updated, err := s.intake.Update(ctx, s.ownerID, input.ID, patch)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil, UpdateOutput{}, fmt.Errorf("intake not found: %s", input.ID)
		}
		return nil, UpdateOutput{}, fmt.Errorf("failed to update intake: %w", err)
	}

	return nil, UpdateOutput{
		Message: fmt.Sprintf("Updated intake %s", updated.ID),
		Record:  newRecordView(updated, loc),
	}, nil
}

func (s *Server) handleDelete(ctx context.Context, req *mcp.CallToolRequest, input DeleteInput) (*mcp.CallToolResult, DeleteOutput, error) {
	if strings.TrimSpace(input.ID) == "" {
		return nil, DeleteOutput{}, fmt.Errorf("id is required")
	}

	removed, err := s.intake.Delete(ctx, s.ownerID, input.ID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil, DeleteOutput{}, fmt.Errorf("intake not found: %s", input.ID)
		}
		return nil, DeleteOutput{}, fmt.Errorf("failed to delete intake: %w", err)
	}

	return nil, DeleteOutput{
		Message: fmt.Sprintf("Deleted %dml logged on %s", removed.Milliliters(), removed.Date),
	}, nil
}

func (s *Server) handleStats(ctx context.Context, req *mcp.CallToolRequest, input StatsInput) (*mcp.CallToolResult, analytics.Report, error) {
	now := s.now()
	if input.Date != "" {
		day, err := intake.ParseDate(input.Date, s.intake.Location())
		if err != nil {
			return nil, analytics.Report{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", input.Date)
		}
		now = day.Add(12 * time.Hour)
	}

	report, err := s.intake.Stats(ctx, s.ownerID, now)
	if err != nil {
		return nil, analytics.Report{}, fmt.Errorf("failed to compute stats: %w", err)
	}
	return nil, report, nil
}

func formatML(ml int) string {
	if ml >= 1000 {
		return fmt.Sprintf("%.2fL", float64(ml)/1000)
	}
	return fmt.Sprintf("%dml", ml)
}
