// Package notify builds user-facing hydration messages and delivers them
// through a Notifier.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aqualog/aqua/internal/intake"
)

// Message kinds.
const (
	KindDrink    = "drink"
	KindGoal     = "goal"
	KindReminder = "reminder"
)

// Message is a single notification.
type Message struct {
	Kind  string `json:"kind"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Notifier delivers messages. Delivery is best effort; callers decide whether
// a failure matters.
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// LogNotifier delivers messages as structured log records.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a Notifier that writes through logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, msg Message) error {
	n.logger.InfoContext(ctx, msg.Title,
		slog.String("kind", msg.Kind),
		slog.String("body", msg.Body))
	return nil
}

// DrinkAddedMessage describes a freshly logged intake.
func DrinkAddedMessage(cups, bottles int) Message {
	msg := Message{Kind: KindDrink}
	switch {
	case cups == 1 && bottles == 0:
		msg.Title = "🥤 One Cup Finished!"
		msg.Body = "Great job! You drank 250ml of water."
	case cups == 2 && bottles == 0:
		msg.Title = "💧 Two Cups Finished!"
		msg.Body = "Awesome! You drank 500ml of water."
	case cups == 0 && bottles == 1:
		msg.Title = "🍾 One Bottle Finished!"
		msg.Body = "Excellent! You drank 500ml of water."
	default:
		msg.Title = "💧 Water Added!"
		msg.Body = fmt.Sprintf("You logged %dml of water. Keep it up!", intake.Milliliters(cups, bottles))
	}
	return msg
}

// GoalReachedMessage congratulates the owner on reaching totalML for the day.
func GoalReachedMessage(totalML int) Message {
	return Message{
		Kind:  KindGoal,
		Title: "🎉 Daily Goal Achieved!",
		Body:  fmt.Sprintf("Congratulations! You reached %dml today. Stay hydrated!", totalML),
	}
}

// GoalKey identifies the goal-reached message for one owner and calendar day.
func GoalKey(ownerID, day string) string {
	return "goal:" + ownerID + ":" + day
}

// Reminder is one recurring daily reminder.
type Reminder struct {
	Hour    int     `json:"hour"`
	Minute  int     `json:"minute"`
	Message Message `json:"message"`
}

// On returns the reminder's firing time on the calendar day of t.
func (r Reminder) On(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, r.Hour, r.Minute, 0, 0, t.Location())
}

// ReminderSchedule returns one reminder on the hour for every hour from
// startHour through endHour inclusive. An empty or out-of-range window yields
// no reminders.
func ReminderSchedule(startHour, endHour int) []Reminder {
	if startHour < 0 || endHour > 23 || startHour > endHour {
		return nil
	}

	reminders := make([]Reminder, 0, endHour-startHour+1)
	for hour := startHour; hour <= endHour; hour++ {
		reminders = append(reminders, Reminder{
			Hour: hour,
			Message: Message{
				Kind:  KindReminder,
				Title: "💧 Hydration Reminder",
				Body:  "Time to drink water! Stay hydrated.",
			},
		})
	}
	return reminders
}

// NextReminder returns the first reminder strictly after now, rolling over to
// the next day when today's window has passed.
func NextReminder(schedule []Reminder, now time.Time) (time.Time, Reminder, bool) {
	if len(schedule) == 0 {
		return time.Time{}, Reminder{}, false
	}
	for _, r := range schedule {
		if at := r.On(now); at.After(now) {
			return at, r, true
		}
	}
	first := schedule[0]
	return first.On(now.AddDate(0, 0, 1)), first, true
}
