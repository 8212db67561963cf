package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aqualog/aqua/internal/database"
	"github.com/aqualog/aqua/internal/intake"
)

func setupServiceDB(t *testing.T) *database.Context {
	t.Helper()
	dbCtx, err := database.CreateDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	t.Cleanup(func() {
		_ = database.CloseDatabase(dbCtx)
	})
	return dbCtx
}

func newRecord(t *testing.T, ownerID string, cups, bottles int, start time.Time) intake.Record {
	t.Helper()
	rec, err := intake.NewRecord(intake.NewInput{
		OwnerID:   ownerID,
		Cups:      cups,
		Bottles:   bottles,
		StartTime: start,
	}, time.UTC)
	if err != nil {
		t.Fatalf("NewRecord returned error: %v", err)
	}
	return rec
}

func intPtr(v int) *int { return &v }

func TestIntakeServiceCreateAndGet(t *testing.T) {
	ctx := context.Background()
	service := NewIntakeService(setupServiceDB(t))

	start := time.Date(2024, 5, 10, 8, 30, 0, 0, time.UTC)
	created, err := service.Create(ctx, newRecord(t, "u1", 2, 1, start))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected an assigned id")
	}
	if created.CreatedAt.IsZero() || !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("expected matching creation timestamps, got %v / %v", created.CreatedAt, created.UpdatedAt)
	}

	got, err := service.Get(ctx, "u1", created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Cups != 2 || got.Bottles != 1 || got.Date != "2024-05-10" {
		t.Fatalf("unexpected stored record %#v", got)
	}
	if !got.StartTime.Equal(start) || !got.EndTime.Equal(start) {
		t.Fatalf("expected interval to round-trip, got %v-%v", got.StartTime, got.EndTime)
	}
}

func TestIntakeServiceGetIsOwnerScoped(t *testing.T) {
	ctx := context.Background()
	service := NewIntakeService(setupServiceDB(t))

	created, err := service.Create(ctx, newRecord(t, "u1", 1, 0, time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := service.Get(ctx, "u2", created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for another owner, got %v", err)
	}
	if _, err := service.Get(ctx, "u1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestIntakeServiceUpdateCupsRoundTrip(t *testing.T) {
	ctx := context.Background()
	service := NewIntakeService(setupServiceDB(t))

	start := time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)
	created, err := service.Create(ctx, newRecord(t, "u1", 1, 1, start))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := service.Update(ctx, "u1", created.ID, intake.Patch{Cups: intPtr(3)}, time.UTC)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Cups != 3 || updated.Bottles != 1 {
		t.Fatalf("expected cups patched and bottles kept, got %#v", updated)
	}

	got, err := service.Get(ctx, "u1", created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Cups != 3 || got.Bottles != 1 || !got.StartTime.Equal(start) || got.Date != "2024-05-10" {
		t.Fatalf("unexpected record after patch %#v", got)
	}
	if got.Milliliters() != 1250 {
		t.Fatalf("expected 1250 ml, got %d", got.Milliliters())
	}
}

func TestIntakeServiceUpdateMovesDate(t *testing.T) {
	ctx := context.Background()
	service := NewIntakeService(setupServiceDB(t))

	created, err := service.Create(ctx, newRecord(t, "u1", 1, 0, time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	newStart := time.Date(2024, 5, 8, 21, 0, 0, 0, time.UTC)
	newEnd := newStart.Add(30 * time.Minute)
	updated, err := service.Update(ctx, "u1", created.ID, intake.Patch{StartTime: &newStart, EndTime: &newEnd}, time.UTC)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Date != "2024-05-08" {
		t.Fatalf("expected date to follow start time, got %s", updated.Date)
	}

	records, err := service.ListByOwner(ctx, "u1", database.DateRange{From: "2024-05-08", To: "2024-05-08"})
	if err != nil {
		t.Fatalf("ListByOwner returned error: %v", err)
	}
	if len(records) != 1 || records[0].ID != created.ID {
		t.Fatalf("expected moved record in range, got %#v", records)
	}
}

func TestIntakeServiceUpdateStartOnly(t *testing.T) {
	ctx := context.Background()
	service := NewIntakeService(setupServiceDB(t))

	created, err := service.Create(ctx, newRecord(t, "u1", 1, 0, time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	later := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	if _, err := service.Update(ctx, "u1", created.ID, intake.Patch{StartTime: &later}, time.UTC); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	got, err := service.Get(ctx, "u1", created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !got.StartTime.Equal(later) || !got.EndTime.Equal(later) {
		t.Fatalf("expected record moved to 09:00, got %v-%v", got.StartTime, got.EndTime)
	}
}

func TestIntakeServiceUpdateRejections(t *testing.T) {
	ctx := context.Background()
	service := NewIntakeService(setupServiceDB(t))

	start := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	created, err := service.Create(ctx, newRecord(t, "u1", 1, 0, start))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := service.Update(ctx, "u1", created.ID, intake.Patch{}, time.UTC); !errors.Is(err, intake.ErrEmptyPatch) {
		t.Fatalf("expected ErrEmptyPatch, got %v", err)
	}
	if _, err := service.Update(ctx, "u1", created.ID, intake.Patch{Cups: intPtr(-1)}, time.UTC); !errors.Is(err, intake.ErrNegativeCount) {
		t.Fatalf("expected ErrNegativeCount, got %v", err)
	}
	early := start.Add(-time.Hour)
	if _, err := service.Update(ctx, "u1", created.ID, intake.Patch{EndTime: &early}, time.UTC); !errors.Is(err, intake.ErrInvalidInterval) {
		t.Fatalf("expected ErrInvalidInterval, got %v", err)
	}
	if _, err := service.Update(ctx, "u2", created.ID, intake.Patch{Cups: intPtr(2)}, time.UTC); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for another owner, got %v", err)
	}

	got, err := service.Get(ctx, "u1", created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Cups != 1 {
		t.Fatalf("rejected updates must not change the record, got %#v", got)
	}
}

func TestIntakeServiceDelete(t *testing.T) {
	ctx := context.Background()
	service := NewIntakeService(setupServiceDB(t))

	created, err := service.Create(ctx, newRecord(t, "u1", 0, 2, time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := service.Delete(ctx, "u2", created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for another owner, got %v", err)
	}

	removed, err := service.Delete(ctx, "u1", created.ID)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if removed.ID != created.ID || removed.Bottles != 2 {
		t.Fatalf("unexpected removed record %#v", removed)
	}

	if _, err := service.Delete(ctx, "u1", created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestIntakeServiceDayTotal(t *testing.T) {
	ctx := context.Background()
	service := NewIntakeService(setupServiceDB(t))

	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	for _, rec := range []intake.Record{
		newRecord(t, "u1", 2, 0, day.Add(8*time.Hour)),
		newRecord(t, "u1", 0, 1, day.Add(13*time.Hour)),
		newRecord(t, "u1", 4, 0, day.Add(-2*time.Hour)),
		newRecord(t, "u2", 4, 0, day.Add(9*time.Hour)),
	} {
		if _, err := service.Create(ctx, rec); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	ml, entries, err := service.DayTotal(ctx, "u1", "2024-05-10")
	if err != nil {
		t.Fatalf("DayTotal returned error: %v", err)
	}
	if ml != 1000 || entries != 2 {
		t.Fatalf("expected 1000 ml over 2 entries, got %d over %d", ml, entries)
	}
}
