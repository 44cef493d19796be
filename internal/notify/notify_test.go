package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mountainmixology/cocktail-catering/internal/model"
	"github.com/mountainmixology/cocktail-catering/internal/store"
)

// recordingSink captures deliveries and signals when one lands.
type recordingSink struct {
	mu        sync.Mutex
	delivered []string // subjects
	bodies    []string
	err       error
	done      chan struct{}
}

func newRecordingSink(err error) *recordingSink {
	return &recordingSink{err: err, done: make(chan struct{}, 8)}
}

func (r *recordingSink) Deliver(_ context.Context, to, subject, body string) error {
	r.mu.Lock()
	r.delivered = append(r.delivered, subject)
	r.bodies = append(r.bodies, body)
	r.mu.Unlock()
	r.done <- struct{}{}
	return r.err
}

func waitDelivery(t *testing.T, r *recordingSink) {
	t.Helper()
	select {
	case <-r.done:
	case <-time.After(2 * time.Second):
		t.Fatal("sink was never invoked")
	}
}

func TestNotifier_BookingReceived(t *testing.T) {
	sink := newRecordingSink(nil)
	records := store.NewNotificationStore()
	n := NewNotifier(sink, "leads@example.com", records)

	n.BookingReceived(model.Booking{
		ID: 3, FirstName: "A", LastName: "B", Email: "a@b.com",
		Phone: "4035551234", EventDate: "2025-06-01", EventTime: "14:00",
		EventType: "wedding", PackageType: "premium", GuestCount: 50,
		Message: "Outdoor ceremony",
	})
	waitDelivery(t, sink)

	assert.Equal(t, []string{"New Booking Request - wedding"}, sink.delivered)
	assert.Contains(t, sink.bodies[0], "Name: A B")
	assert.Contains(t, sink.bodies[0], "Guest Count: 50")

	// The audit record lands after the delivery succeeds; poll
	// briefly since the dispatch goroutine writes it.
	require.Eventually(t, func() bool { return len(records.GetAll()) == 1 }, 2*time.Second, 10*time.Millisecond)
	rec := records.GetAll()[0]
	assert.Equal(t, "leads@example.com", rec.To)
	assert.Equal(t, model.NotificationTypeBooking, rec.Type)
	assert.Equal(t, 3, rec.SourceID)
}

func TestNotifier_ContactReceived(t *testing.T) {
	sink := newRecordingSink(nil)
	records := store.NewNotificationStore()
	n := NewNotifier(sink, "leads@example.com", records)

	n.ContactReceived(model.ContactMessage{
		ID: 9, Name: "A", Email: "a@b.com", Subject: "Quote", Message: "Need a bar for fifty.",
	})
	waitDelivery(t, sink)

	assert.Equal(t, []string{"New Contact Message - Quote"}, sink.delivered)
	require.Eventually(t, func() bool { return len(records.GetAll()) == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, model.NotificationTypeContact, records.GetAll()[0].Type)
	assert.Equal(t, 9, records.GetAll()[0].SourceID)
}

func TestNotifier_SinkFailureIsSwallowed(t *testing.T) {
	sink := newRecordingSink(errors.New("smtp down"))
	records := store.NewNotificationStore()
	n := NewNotifier(sink, "leads@example.com", records)

	// Must not panic or block the caller.
	n.BookingReceived(model.Booking{ID: 1, EventType: "wedding"})
	waitDelivery(t, sink)

	// Failed deliveries are not recorded.
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, records.GetAll())
}

func TestLogSink_AlwaysSucceeds(t *testing.T) {
	err := LogSink{}.Deliver(context.Background(), "a@b.com", "s", "b")
	assert.NoError(t, err)
}
