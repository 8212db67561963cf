// Package config resolves storage paths and loads user settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings are the user-tunable hydration parameters.
type Settings struct {
	// DailyGoalML is the daily target in milliliters.
	DailyGoalML int `yaml:"daily_goal_ml"`
	// OverachieverMultiplier scales the goal for the Overachiever badge.
	OverachieverMultiplier float64 `yaml:"overachiever_multiplier"`
	// ReminderStartHour and ReminderEndHour bound the hourly reminders, inclusive.
	ReminderStartHour int `yaml:"reminder_start_hour"`
	ReminderEndHour   int `yaml:"reminder_end_hour"`
	// Timezone is an IANA name used for day bucketing; empty means local time.
	Timezone string `yaml:"timezone"`
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() *Settings {
	return &Settings{
		DailyGoalML:            2000,
		OverachieverMultiplier: 1.5,
		ReminderStartHour:      8,
		ReminderEndHour:        22,
		Timezone:               "",
	}
}

// Validate checks that the settings are usable.
func (s *Settings) Validate() error {
	if s.DailyGoalML <= 0 {
		return fmt.Errorf("daily_goal_ml must be positive")
	}
	if s.OverachieverMultiplier < 1 {
		return fmt.Errorf("overachiever_multiplier must be at least 1")
	}
	if s.ReminderStartHour < 0 || s.ReminderStartHour > 23 {
		return fmt.Errorf("reminder_start_hour must be between 0 and 23")
	}
	if s.ReminderEndHour < 0 || s.ReminderEndHour > 23 {
		return fmt.Errorf("reminder_end_hour must be between 0 and 23")
	}
	if s.ReminderStartHour > s.ReminderEndHour {
		return fmt.Errorf("reminder_start_hour must not be after reminder_end_hour")
	}
	if _, err := s.Location(); err != nil {
		return err
	}
	return nil
}

// Location returns the time zone used to bucket records into days.
func (s *Settings) Location() (*time.Location, error) {
	if s.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", s.Timezone, err)
	}
	return loc, nil
}

// LoadFromFile reads settings from a YAML file on top of the defaults.
func LoadFromFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	return settings, nil
}

// SaveToFile writes settings as YAML, creating the parent directory.
func (s *Settings) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// Loader loads settings from the resolved settings path.
type Loader struct {
	logger *slog.Logger
	path   string
}

// NewLoader creates a loader. An empty path means GetSettingsPath.
func NewLoader(path string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	if path == "" {
		path = GetSettingsPath()
	}
	return &Loader{logger: logger, path: path}
}

// Path returns the file the loader reads.
func (l *Loader) Path() string {
	return l.path
}

// Load returns defaults when the file is absent and an error when it is
// present but malformed or invalid.
func (l *Loader) Load() (*Settings, error) {
	settings, err := LoadFromFile(l.path)
	switch {
	case err == nil:
		l.logger.Debug("Loaded settings", slog.String("path", l.path))
	case errors.Is(err, fs.ErrNotExist):
		l.logger.Debug("No settings file, using defaults", slog.String("path", l.path))
		settings = DefaultSettings()
	default:
		return nil, err
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", l.path, err)
	}
	return settings, nil
}
