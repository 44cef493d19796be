// Package queue defines message payloads exchanged over the message
// broker and the background consumer that drains them.
package queue

// EmailQueueName is the durable queue carrying notification events.
const EmailQueueName = "notification.email"

// EmailRequestedEvent is published for every notification handed to
// the queue sink. It carries the fully rendered message so consumers
// need no access to the in-memory store.
type EmailRequestedEvent struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	Content  string `json:"content"`
	QueuedAt string `json:"queued_at"`
}
