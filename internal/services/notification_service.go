package services

import (
	"context"

	"github.com/aqualog/aqua/internal/database"
)

// NotificationService records delivered notifications by idempotency key.
type NotificationService struct {
	repo *database.NotificationRepository
}

func NewNotificationService(ctx *database.Context) *NotificationService {
	return &NotificationService{repo: database.NewNotificationRepository(ctx)}
}

// Claim stores rec unless its key was claimed before. The boolean reports
// whether this call won the key.
func (s *NotificationService) Claim(ctx context.Context, rec database.NotificationRecord) (bool, error) {
	return s.repo.Claim(ctx, rec)
}

// History lists the owner's delivered notifications, newest first.
func (s *NotificationService) History(ctx context.Context, ownerID string) ([]database.NotificationRecord, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}
