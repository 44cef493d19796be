package store

import (
	"sync"
	"time"

	"github.com/mountainmixology/cocktail-catering/internal/model"
)

// BookingStore keeps all booking requests in memory. Creates assign
// the next sequential id and fill server-defaulted fields; the
// optional afterCreate hook runs outside the lock once the record is
// committed, so a slow or failing consumer can never roll back or
// delay the write.
type BookingStore struct {
	mu          sync.Mutex
	byID        map[int]model.Booking
	order       []int
	nextID      int
	afterCreate func(model.Booking)
}

// NewBookingStore constructs an empty BookingStore. afterCreate may be
// nil when no notification hook is wanted (tests usually pass nil).
func NewBookingStore(afterCreate func(model.Booking)) *BookingStore {
	return &BookingStore{
		byID:        make(map[int]model.Booking),
		nextID:      1,
		afterCreate: afterCreate,
	}
}

// Create stores a validated booking request and returns the full
// record with id, createdAt and the "pending" status filled in.
func (s *BookingStore) Create(in model.InsertBooking) model.Booking {
	s.mu.Lock()
	b := model.Booking{
		ID:          s.nextID,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Phone:       in.Phone,
		EventDate:   in.EventDate,
		EventTime:   in.EventTime,
		EventType:   in.EventType,
		PackageType: in.PackageType,
		GuestCount:  in.GuestCount,
		Message:     in.Message,
		CreatedAt:   time.Now().UTC(),
		Status:      model.BookingStatusPending,
	}
	s.nextID++
	s.byID[b.ID] = b
	s.order = append(s.order, b.ID)
	s.mu.Unlock()

	if s.afterCreate != nil {
		s.afterCreate(b)
	}
	return b
}

// GetByID returns the booking with the given id or ErrBookingNotFound.
func (s *BookingStore) GetByID(id int) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.byID[id]
	if !ok {
		return model.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

// GetAll returns every booking in insertion order. The slice is a
// copy; callers may not mutate store state through it.
func (s *BookingStore) GetAll() []model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Booking, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// UpdateStatus replaces the status of a booking in place and returns
// the updated record. Any string is accepted as the new status; the
// original system imposed no transition set and this keeps that
// contract. Returns ErrBookingNotFound for an unknown id.
func (s *BookingStore) UpdateStatus(id int, status string) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.byID[id]
	if !ok {
		return model.Booking{}, ErrBookingNotFound
	}
	b.Status = status
	s.byID[id] = b
	return b, nil
}
