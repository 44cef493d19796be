package model

import "time"

// Notification source types. Each recorded notification points back at
// the booking or contact message that triggered it.
const (
	NotificationTypeBooking = "booking"
	NotificationTypeContact = "contact"
)

// EmailNotification is the audit record of a notification that was
// handed to the delivery sink. It is written after a delivery attempt
// succeeds, so the store holds a history of what was sent and for
// which record.
type EmailNotification struct {
	ID       int       `json:"id"`
	To       string    `json:"to"`
	Subject  string    `json:"subject"`
	Content  string    `json:"content"`
	SentAt   time.Time `json:"sentAt"`
	Type     string    `json:"type"`
	SourceID int       `json:"sourceId"`
}
