package services

import (
	"context"
	"testing"
	"time"

	"github.com/aqualog/aqua/internal/database"
)

func TestNotificationServiceClaimOnce(t *testing.T) {
	ctx := context.Background()
	service := NewNotificationService(setupServiceDB(t))

	rec := database.NotificationRecord{
		Key:     "goal:u1:2024-05-10",
		OwnerID: "u1",
		Kind:    "goal",
		Title:   "title",
		Body:    "body",
		SentAt:  time.Date(2024, 5, 10, 18, 0, 0, 0, time.UTC),
	}

	won, err := service.Claim(ctx, rec)
	if err != nil {
		t.Fatalf("Claim returned error: %v", err)
	}
	if !won {
		t.Fatalf("expected first claim to win")
	}

	won, err = service.Claim(ctx, rec)
	if err != nil {
		t.Fatalf("second Claim returned error: %v", err)
	}
	if won {
		t.Fatalf("expected second claim to lose")
	}

	history, err := service.History(ctx, "u1")
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if len(history) != 1 || history[0].Key != rec.Key {
		t.Fatalf("expected one recorded notification, got %#v", history)
	}
}
