package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aqualog/aqua/internal/analytics"
	"github.com/aqualog/aqua/internal/intake"
	"github.com/aqualog/aqua/internal/usecase"
)

func setupCLI(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("AQUA_DIR", dir)
	t.Setenv("AQUA_CONFIG", filepath.Join(dir, "config.yaml"))
	t.Setenv("AQUA_OWNER", "tester")
}

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestAddListDeleteFlow(t *testing.T) {
	setupCLI(t)

	out, stderr, err := runCLI(t, "", "add", "--cups", "1", "--start", "2024-05-10 08:00", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, "One Cup Finished!")

	var added usecase.SubmitResult
	require.NoError(t, json.Unmarshal([]byte(out), &added))
	assert.Equal(t, 250, added.Record.Milliliters())
	assert.Equal(t, "tester", added.Record.OwnerID)

	_, _, err = runCLI(t, "", "add", "--bottles", "1", "--start", "2024-05-10 13:00")
	require.NoError(t, err)

	out, _, err = runCLI(t, "", "list", "--format", "json")
	require.NoError(t, err)
	var records []intake.Record
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 2)

	out, _, err = runCLI(t, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "500ml")

	out, _, err = runCLI(t, "n\n", "delete", added.Record.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Deletion cancelled")

	out, _, err = runCLI(t, "y\n", "delete", added.Record.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted "+added.Record.ID)

	_, _, err = runCLI(t, "", "delete", "--force", added.Record.ID)
	assert.Error(t, err)

	out, _, err = runCLI(t, "", "list", "--format", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	assert.Len(t, records, 1)
}

func TestAddRejectsEmptyIntake(t *testing.T) {
	setupCLI(t)
	_, _, err := runCLI(t, "", "add")
	assert.ErrorIs(t, err, intake.ErrEmptyIntake)
}

func TestUpdateCommand(t *testing.T) {
	setupCLI(t)

	out, _, err := runCLI(t, "", "add", "--cups", "2", "--start", "2024-05-10 09:00", "--format", "json")
	require.NoError(t, err)
	var added usecase.SubmitResult
	require.NoError(t, json.Unmarshal([]byte(out), &added))

	_, _, err = runCLI(t, "", "update", added.Record.ID)
	assert.Error(t, err, "an update without flags is rejected")

	out, _, err = runCLI(t, "", "update", added.Record.ID, "--cups", "0", "--bottles", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "0 cups, 2 bottles (1000ml)")

	_, _, err = runCLI(t, "", "--owner", "someone-else", "update", added.Record.ID, "--cups", "1")
	assert.ErrorContains(t, err, "intake not found")
}

func TestStatsCommand(t *testing.T) {
	setupCLI(t)

	for _, start := range []string{"2024-05-10 07:00", "2024-05-10 12:00", "2024-05-10 18:00"} {
		_, _, err := runCLI(t, "", "add", "--cups", "3", "--start", start)
		require.NoError(t, err)
	}

	out, _, err := runCLI(t, "", "stats", "--date", "2024-05-10", "--format", "json")
	require.NoError(t, err)
	var report analytics.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "2024-05-10", report.Date)
	assert.Equal(t, 2250, report.Daily.Today)
	assert.Equal(t, 1, report.Streaks.Current)
	assert.Contains(t, report.Badges, analytics.BadgeEarlyBird)

	out, _, err = runCLI(t, "", "stats", "--date", "2024-05-10")
	require.NoError(t, err)
	assert.Contains(t, out, "Hydration score")
	assert.Contains(t, out, "Badges")

	_, _, err = runCLI(t, "", "stats", "--format", "xml")
	assert.Error(t, err)
}

func TestRemindAndConfigCommands(t *testing.T) {
	setupCLI(t)

	out, _, err := runCLI(t, "", "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "config.yaml")

	_, _, err = runCLI(t, "", "config", "init")
	assert.Error(t, err)

	out, _, err = runCLI(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "daily_goal_ml: 2000")

	out, _, err = runCLI(t, "", "remind", "--format", "json")
	require.NoError(t, err)
	var schedule []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &schedule))
	assert.Len(t, schedule, 15)

	out, _, err = runCLI(t, "", "remind")
	require.NoError(t, err)
	assert.Contains(t, out, "08:00")
	assert.Contains(t, out, "Next reminder")
}

func TestNotificationsCommand(t *testing.T) {
	setupCLI(t)

	out, _, err := runCLI(t, "", "notifications")
	require.NoError(t, err)
	assert.Contains(t, out, "No notifications sent")

	_, stderr, err := runCLI(t, "", "add", "--bottles", "4")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Daily Goal Achieved!")

	out, _, err = runCLI(t, "", "notifications", "--format", "json")
	require.NoError(t, err)
	var history []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &history))
	require.Len(t, history, 1)
	assert.Equal(t, "goal", history[0]["kind"])
}

func TestResetCommand(t *testing.T) {
	setupCLI(t)

	_, _, err := runCLI(t, "", "add", "--bottles", "4")
	require.NoError(t, err)

	out, _, err := runCLI(t, "n\n", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Reset cancelled")

	var records []intake.Record
	out, _, err = runCLI(t, "", "list", "--format", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	assert.Len(t, records, 1)

	out, _, err = runCLI(t, "", "reset", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Database cleared")

	out, _, err = runCLI(t, "", "list", "--format", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	assert.Empty(t, records)

	out, _, err = runCLI(t, "", "notifications")
	require.NoError(t, err)
	assert.Contains(t, out, "No notifications sent")
}

func TestCalculateColumnWidths(t *testing.T) {
	records := []intake.Record{{ID: "6f1c2a3e-0000-4000-8000-000000000000"}}

	wide := calculateColumnWidths(160, records)
	assert.Equal(t, 36, wide.id)
	assert.Equal(t, "Time", wide.timeHeader)

	narrow := calculateColumnWidths(60, records)
	assert.Equal(t, "Start", narrow.timeHeader)
	assert.Less(t, narrow.id, 36)
}

func TestWrapString(t *testing.T) {
	assert.Equal(t, "abc", wrapString("abc", 5))
	assert.Equal(t, "abcd\nef", wrapString("abcdef", 4))
	assert.Equal(t, "abc", wrapString("abc", 0))
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░", progressBar(50, 10))
	assert.Equal(t, "██████████", progressBar(150, 10))
}
