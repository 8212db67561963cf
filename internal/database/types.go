package database

import "time"

// NotificationRecord mirrors the notifications table. Each row marks a
// message that has already been delivered under its idempotency key.
type NotificationRecord struct {
	Key     string    `json:"key"`
	OwnerID string    `json:"ownerId"`
	Kind    string    `json:"kind"`
	Title   string    `json:"title"`
	Body    string    `json:"body"`
	SentAt  time.Time `json:"sentAt"`
}

// DateRange bounds a listing by inclusive calendar-day keys. Empty bounds are
// open.
type DateRange struct {
	From string
	To   string
}

// IsOpen reports whether the range places no bound at all.
func (r DateRange) IsOpen() bool {
	return r.From == "" && r.To == ""
}
