package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/aqualog/aqua/internal/analytics"
	"github.com/aqualog/aqua/internal/config"
	"github.com/aqualog/aqua/internal/database"
	"github.com/aqualog/aqua/internal/intake"
	"github.com/aqualog/aqua/internal/notify"
	"github.com/aqualog/aqua/internal/services"
)

type Intake struct {
	intakeService       *services.IntakeService
	notificationService *services.NotificationService
	dispatcher          *notify.Dispatcher
	settings            *config.Settings
	location            *time.Location
	logger              *slog.Logger
	now                 func() time.Time
}

// NewIntake wires the record store and notifications for one database. A nil
// settings value means the defaults, and a nil notifier logs messages.
func NewIntake(dbCtx *database.Context, settings *config.Settings, notifier notify.Notifier, logger *slog.Logger) (*Intake, error) {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	loc, err := settings.Location()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	if notifier == nil {
		notifier = notify.NewLogNotifier(logger)
	}

	notificationSvc := services.NewNotificationService(dbCtx)
	return &Intake{
		intakeService:       services.NewIntakeService(dbCtx),
		notificationService: notificationSvc,
		dispatcher:          notify.NewDispatcher(notifier, notificationSvc, logger),
		settings:            settings,
		location:            loc,
		logger:              logger,
		now:                 time.Now,
	}, nil
}

// SetClock replaces the clock used to decide which day is today.
func (u *Intake) SetClock(now func() time.Time) {
	u.now = now
}

// Location is the time zone records are bucketed in.
func (u *Intake) Location() *time.Location {
	return u.location
}

type SubmitInput struct {
	OwnerID   string
	Cups      int
	Bottles   int
	StartTime time.Time
	EndTime   time.Time
}

type SubmitResult struct {
	Record     intake.Record `json:"record"`
	DayTotalML int           `json:"dayTotalMl"`
	GoalMet    bool          `json:"goalMet"`
	// GoalNotified is true only for the submission that first crossed the
	// goal today.
	GoalNotified bool `json:"goalNotified"`
}

// Submit validates and stores a new intake, then announces it and, once per
// day, the reached goal. Notification failures are logged, not returned.
func (u *Intake) Submit(ctx context.Context, input SubmitInput) (*SubmitResult, error) {
	rec, err := intake.NewRecord(intake.NewInput{
		OwnerID:   input.OwnerID,
		Cups:      input.Cups,
		Bottles:   input.Bottles,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
	}, u.location)
	if err != nil {
		return nil, err
	}

	created, err := u.intakeService.Create(ctx, rec)
	if err != nil {
		return nil, err
	}
	u.logger.InfoContext(ctx, "intake recorded",
		slog.String("owner", created.OwnerID),
		slog.String("id", created.ID),
		slog.Int("ml", created.Milliliters()))

	if err := u.dispatcher.Send(ctx, notify.DrinkAddedMessage(created.Cups, created.Bottles)); err != nil {
		u.logger.WarnContext(ctx, "failed to send drink notification", slog.String("error", err.Error()))
	}

	result := &SubmitResult{Record: created}

	total, _, err := u.intakeService.DayTotal(ctx, created.OwnerID, created.Date)
	if err != nil {
		u.logger.WarnContext(ctx, "failed to total day", slog.String("date", created.Date), slog.String("error", err.Error()))
		return result, nil
	}
	result.DayTotalML = total
	result.GoalMet = total >= u.settings.DailyGoalML

	today := intake.DateFor(u.now(), u.location)
	if result.GoalMet && created.Date == today {
		sent, err := u.dispatcher.SendOnce(ctx, created.OwnerID, notify.GoalKey(created.OwnerID, today), notify.GoalReachedMessage(total))
		if err != nil {
			u.logger.WarnContext(ctx, "failed to send goal notification", slog.String("error", err.Error()))
		}
		result.GoalNotified = sent
	}

	return result, nil
}

// Update applies a partial change to one of the owner's records.
func (u *Intake) Update(ctx context.Context, ownerID, id string, patch intake.Patch) (intake.Record, error) {
	updated, err := u.intakeService.Update(ctx, ownerID, id, patch, u.location)
	if err != nil {
		return intake.Record{}, err
	}
	u.logger.InfoContext(ctx, "intake updated",
		slog.String("owner", ownerID),
		slog.String("id", id),
		slog.String("patch", patch.String()))
	return updated, nil
}

// Delete removes one of the owner's records and returns it.
func (u *Intake) Delete(ctx context.Context, ownerID, id string) (intake.Record, error) {
	removed, err := u.intakeService.Delete(ctx, ownerID, id)
	if err != nil {
		return intake.Record{}, err
	}
	u.logger.InfoContext(ctx, "intake deleted", slog.String("owner", ownerID), slog.String("id", id))
	return removed, nil
}

// Get returns one of the owner's records.
func (u *Intake) Get(ctx context.Context, ownerID, id string) (*intake.Record, error) {
	return u.intakeService.Get(ctx, ownerID, id)
}

// List returns the owner's records in the requested day range, newest first.
func (u *Intake) List(ctx context.Context, ownerID string, opts ListOptions) ([]intake.Record, error) {
	dates, err := ResolveRange(opts, u.location)
	if err != nil {
		return nil, err
	}
	return u.intakeService.ListByOwner(ctx, ownerID, dates)
}

// Stats reads the owner's full history and derives the report for the day of
// now. A store failure is returned without computing anything.
func (u *Intake) Stats(ctx context.Context, ownerID string, now time.Time) (analytics.Report, error) {
	records, err := u.intakeService.ListByOwner(ctx, ownerID, database.DateRange{})
	if err != nil {
		return analytics.Report{}, err
	}

	report := analytics.Build(records, now, analytics.Options{
		GoalML:                 u.settings.DailyGoalML,
		OverachieverMultiplier: u.settings.OverachieverMultiplier,
		Location:               u.location,
	})
	u.logger.DebugContext(ctx, "stats computed",
		slog.String("owner", ownerID),
		slog.Int("records", len(records)),
		slog.Int("score", report.Score.Score))
	return report, nil
}

// Notifications lists the messages already delivered to the owner, newest first.
func (u *Intake) Notifications(ctx context.Context, ownerID string) ([]database.NotificationRecord, error) {
	return u.notificationService.History(ctx, ownerID)
}
