package store

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mountainmixology/cocktail-catering/internal/model"
)

func insertBooking() model.InsertBooking {
	return model.InsertBooking{
		FirstName:   "A",
		LastName:    "B",
		Email:       "a@b.com",
		Phone:       "4035551234",
		EventDate:   "2025-06-01",
		EventTime:   "14:00",
		EventType:   "wedding",
		PackageType: "premium",
		GuestCount:  50,
	}
}

func TestBookingStore_CreateAssignsDefaults(t *testing.T) {
	s := NewBookingStore(nil)
	before := time.Now().UTC()

	b := s.Create(insertBooking())

	assert.Equal(t, 1, b.ID)
	assert.Equal(t, model.BookingStatusPending, b.Status)
	assert.False(t, b.CreatedAt.Before(before))

	b2 := s.Create(insertBooking())
	assert.Equal(t, 2, b2.ID)
}

func TestBookingStore_GetByID(t *testing.T) {
	s := NewBookingStore(nil)
	created := s.Create(insertBooking())

	got, err := s.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	// Reads are idempotent: a second read with no intervening write
	// returns identical data.
	again, err := s.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, got, again)

	_, err = s.GetByID(9999)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestBookingStore_GetAllInsertionOrder(t *testing.T) {
	s := NewBookingStore(nil)
	assert.Empty(t, s.GetAll())

	first := s.Create(insertBooking())
	second := s.Create(insertBooking())

	all := s.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
}

func TestBookingStore_UpdateStatus(t *testing.T) {
	s := NewBookingStore(nil)
	b := s.Create(insertBooking())

	updated, err := s.UpdateStatus(b.ID, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", updated.Status)

	stored, err := s.GetByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", stored.Status)

	// Any text is accepted.
	updated, err = s.UpdateStatus(b.ID, "waiting on deposit")
	require.NoError(t, err)
	assert.Equal(t, "waiting on deposit", updated.Status)

	_, err = s.UpdateStatus(9999, "confirmed")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestBookingStore_ConcurrentCreatesUniqueIDs(t *testing.T) {
	s := NewBookingStore(nil)
	const n = 100

	ids := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- s.Create(insertBooking()).ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
		assert.GreaterOrEqual(t, id, 1)
		assert.LessOrEqual(t, id, n)
	}
	assert.Len(t, seen, n)
}

func TestBookingStore_AfterCreateHook(t *testing.T) {
	var got model.Booking
	called := make(chan struct{})
	s := NewBookingStore(func(b model.Booking) {
		got = b
		close(called)
	})

	created := s.Create(insertBooking())

	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("afterCreate hook was not invoked")
	}
	assert.Equal(t, created, got)

	// The hook sees the committed record: it is already readable.
	stored, err := s.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, stored)
}

func TestBookingStore_PanickingHookDoesNotLoseRecord(t *testing.T) {
	s := NewBookingStore(func(model.Booking) { panic("sink blew up") })

	func() {
		defer func() { _ = recover() }()
		s.Create(insertBooking())
	}()

	// The record was committed before the hook ran.
	stored, err := s.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.ID)
}
