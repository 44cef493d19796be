package model

import "time"

// MinContactMessageLen is the minimum length of a contact message body.
const MinContactMessageLen = 10

// ContactMessage is a message submitted through the site's contact
// form. IsRead starts false and transitions to true exactly once when
// an admin marks the message read; it never reverts.
type ContactMessage struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	IsRead    bool      `json:"isRead"`
}

// InsertContactMessage is the client-supplied subset of a
// ContactMessage; id, createdAt and isRead are server assigned.
type InsertContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
