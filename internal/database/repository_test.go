package database

import (
	"context"
	"testing"
	"time"
)

func TestIntakeRepositoryFindByID(t *testing.T) {
	ctx := context.Background()
	dbCtx := setupTestDB(t)
	repo := NewIntakeRepository(dbCtx)

	insertIntake(t, dbCtx.DB, "id-1", "u1", 4, 2, "2024-05-10")

	found, err := repo.FindByID(ctx, "id-1")
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if found == nil || found.OwnerID != "u1" || found.Cups != 4 || found.Bottles != 2 {
		t.Fatalf("unexpected record %#v", found)
	}
	if found.Milliliters() != 2000 {
		t.Fatalf("expected 2000 ml, got %d", found.Milliliters())
	}
	if found.StartTime.Hour() != 9 {
		t.Fatalf("expected start time to round-trip, got %v", found.StartTime)
	}

	missing, err := repo.FindByID(ctx, "nope")
	if err != nil {
		t.Fatalf("FindByID missing returned error: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing record, got %#v", missing)
	}
}

func TestIntakeRepositoryListByOwner(t *testing.T) {
	ctx := context.Background()
	dbCtx := setupTestDB(t)
	repo := NewIntakeRepository(dbCtx)

	insertIntake(t, dbCtx.DB, "a", "u1", 1, 0, "2024-05-08")
	insertIntake(t, dbCtx.DB, "b", "u1", 1, 0, "2024-05-10")
	insertIntake(t, dbCtx.DB, "c", "u1", 1, 0, "2024-05-09")
	insertIntake(t, dbCtx.DB, "d", "u2", 1, 0, "2024-05-10")

	all, err := repo.ListByOwner(ctx, "u1", DateRange{})
	if err != nil {
		t.Fatalf("ListByOwner returned error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	if all[0].ID != "b" || all[1].ID != "c" || all[2].ID != "a" {
		t.Fatalf("expected newest day first, got %s,%s,%s", all[0].ID, all[1].ID, all[2].ID)
	}

	ranged, err := repo.ListByOwner(ctx, "u1", DateRange{From: "2024-05-09"})
	if err != nil {
		t.Fatalf("ListByOwner ranged returned error: %v", err)
	}
	if len(ranged) != 2 {
		t.Fatalf("expected 2 records from 2024-05-09, got %d", len(ranged))
	}

	bounded, err := repo.ListByOwner(ctx, "u1", DateRange{From: "2024-05-08", To: "2024-05-08"})
	if err != nil {
		t.Fatalf("ListByOwner bounded returned error: %v", err)
	}
	if len(bounded) != 1 || bounded[0].ID != "a" {
		t.Fatalf("expected only record a, got %#v", bounded)
	}
}

func TestIntakeRepositoryDayTotal(t *testing.T) {
	ctx := context.Background()
	dbCtx := setupTestDB(t)
	repo := NewIntakeRepository(dbCtx)

	ml, entries, err := repo.DayTotal(ctx, "u1", "2024-05-10")
	if err != nil {
		t.Fatalf("DayTotal returned error: %v", err)
	}
	if ml != 0 || entries != 0 {
		t.Fatalf("expected empty day, got %d ml over %d entries", ml, entries)
	}

	insertIntake(t, dbCtx.DB, "a", "u1", 2, 1, "2024-05-10")
	insertIntake(t, dbCtx.DB, "b", "u1", 0, 2, "2024-05-10")
	insertIntake(t, dbCtx.DB, "c", "u1", 4, 0, "2024-05-09")

	ml, entries, err = repo.DayTotal(ctx, "u1", "2024-05-10")
	if err != nil {
		t.Fatalf("DayTotal returned error: %v", err)
	}
	if ml != 2000 || entries != 2 {
		t.Fatalf("expected 2000 ml over 2 entries, got %d over %d", ml, entries)
	}
}

func TestNotificationRepositoryClaimIsIdempotent(t *testing.T) {
	ctx := context.Background()
	dbCtx := setupTestDB(t)
	repo := NewNotificationRepository(dbCtx)

	rec := NotificationRecord{
		Key:     "goal:u1:2024-05-10",
		OwnerID: "u1",
		Kind:    "goal",
		Title:   "title",
		Body:    "body",
		SentAt:  time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC),
	}

	claimed, err := repo.Claim(ctx, rec)
	if err != nil {
		t.Fatalf("Claim returned error: %v", err)
	}
	if !claimed {
		t.Fatalf("expected first claim to succeed")
	}

	claimed, err = repo.Claim(ctx, rec)
	if err != nil {
		t.Fatalf("second Claim returned error: %v", err)
	}
	if claimed {
		t.Fatalf("expected second claim to be rejected")
	}

	list, err := repo.ListByOwner(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByOwner returned error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(list))
	}
	if list[0].Key != rec.Key || list[0].Kind != "goal" || !list[0].SentAt.Equal(rec.SentAt) {
		t.Fatalf("unexpected notification %#v", list[0])
	}

	others, err := repo.ListByOwner(ctx, "u2")
	if err != nil {
		t.Fatalf("ListByOwner other owner returned error: %v", err)
	}
	if len(others) != 0 {
		t.Fatalf("expected no notifications for another owner, got %d", len(others))
	}
}
