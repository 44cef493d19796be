package store

import (
	"sync"
	"time"

	"github.com/mountainmixology/cocktail-catering/internal/model"
)

// ContactStore keeps contact-form messages in memory. Same shape as
// BookingStore: sequential ids, insertion-order listing and an
// optional post-commit hook for notifications.
type ContactStore struct {
	mu          sync.Mutex
	byID        map[int]model.ContactMessage
	order       []int
	nextID      int
	afterCreate func(model.ContactMessage)
}

// NewContactStore constructs an empty ContactStore. afterCreate may be nil.
func NewContactStore(afterCreate func(model.ContactMessage)) *ContactStore {
	return &ContactStore{
		byID:        make(map[int]model.ContactMessage),
		nextID:      1,
		afterCreate: afterCreate,
	}
}

// Create stores a validated contact message and returns the full
// record. New messages always start unread.
func (s *ContactStore) Create(in model.InsertContactMessage) model.ContactMessage {
	s.mu.Lock()
	m := model.ContactMessage{
		ID:        s.nextID,
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
		IsRead:    false,
	}
	s.nextID++
	s.byID[m.ID] = m
	s.order = append(s.order, m.ID)
	s.mu.Unlock()

	if s.afterCreate != nil {
		s.afterCreate(m)
	}
	return m
}

// GetByID returns the message with the given id or ErrMessageNotFound.
func (s *ContactStore) GetByID(id int) (model.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.byID[id]
	if !ok {
		return model.ContactMessage{}, ErrMessageNotFound
	}
	return m, nil
}

// GetAll returns every message in insertion order.
func (s *ContactStore) GetAll() []model.ContactMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.ContactMessage, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// MarkRead flips IsRead to true and returns the updated record. The
// flag only ever moves false to true; marking an already-read message
// is a no-op that still succeeds.
func (s *ContactStore) MarkRead(id int) (model.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.byID[id]
	if !ok {
		return model.ContactMessage{}, ErrMessageNotFound
	}
	m.IsRead = true
	s.byID[id] = m
	return m, nil
}
