package sqldb

import "time"

type Intake struct {
	ID        string
	OwnerID   string
	Cups      int64
	Bottles   int64
	StartTime time.Time
	EndTime   time.Time
	Date      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Notification struct {
	IdempotencyKey string
	OwnerID        string
	Kind           string
	Title          string
	Body           string
	SentAt         time.Time
}
