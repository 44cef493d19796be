package store

import (
	"sync"
	"time"

	"github.com/mountainmixology/cocktail-catering/internal/model"
)

// NotificationStore keeps the audit trail of delivered notifications.
// Records are appended by the notifier after a delivery attempt
// succeeds, never by the entity stores themselves.
type NotificationStore struct {
	mu     sync.Mutex
	byID   map[int]model.EmailNotification
	order  []int
	nextID int
}

// NewNotificationStore constructs an empty NotificationStore.
func NewNotificationStore() *NotificationStore {
	return &NotificationStore{byID: make(map[int]model.EmailNotification), nextID: 1}
}

// Create records a delivered notification and returns the full record
// with its id and sent timestamp.
func (s *NotificationStore) Create(to, subject, content, typ string, sourceID int) model.EmailNotification {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := model.EmailNotification{
		ID:       s.nextID,
		To:       to,
		Subject:  subject,
		Content:  content,
		SentAt:   time.Now().UTC(),
		Type:     typ,
		SourceID: sourceID,
	}
	s.nextID++
	s.byID[n.ID] = n
	s.order = append(s.order, n.ID)
	return n
}

// GetAll returns every recorded notification in insertion order.
func (s *NotificationStore) GetAll() []model.EmailNotification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.EmailNotification, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}
