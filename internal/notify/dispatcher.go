package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aqualog/aqua/internal/database"
)

// Claimer records idempotency keys. Claim returns false when the key was
// already taken.
type Claimer interface {
	Claim(ctx context.Context, rec database.NotificationRecord) (bool, error)
}

// Dispatcher sends messages, optionally at most once per idempotency key.
type Dispatcher struct {
	notifier Notifier
	claims   Claimer
	logger   *slog.Logger
	now      func() time.Time
}

// NewDispatcher wires a notifier to a claim store.
func NewDispatcher(notifier Notifier, claims Claimer, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		notifier: notifier,
		claims:   claims,
		logger:   logger,
		now:      time.Now,
	}
}

// Send delivers msg without deduplication.
func (d *Dispatcher) Send(ctx context.Context, msg Message) error {
	if d.notifier == nil {
		return nil
	}
	return d.notifier.Notify(ctx, msg)
}

// SendOnce claims key for ownerID and delivers msg only when the claim is new.
// It reports whether the message was sent. A key that was claimed but whose
// delivery failed is not retried.
func (d *Dispatcher) SendOnce(ctx context.Context, ownerID, key string, msg Message) (bool, error) {
	if d.claims == nil {
		return false, fmt.Errorf("dispatcher: missing claim store")
	}

	won, err := d.claims.Claim(ctx, database.NotificationRecord{
		Key:     key,
		OwnerID: ownerID,
		Kind:    msg.Kind,
		Title:   msg.Title,
		Body:    msg.Body,
		SentAt:  d.now(),
	})
	if err != nil {
		return false, fmt.Errorf("failed to claim notification %s: %w", key, err)
	}
	if !won {
		d.logger.DebugContext(ctx, "notification already sent", slog.String("key", key))
		return false, nil
	}

	if err := d.Send(ctx, msg); err != nil {
		return false, err
	}
	return true, nil
}
