// Package notify turns store events into outbound notifications. The
// business runs on a single inbox: every new booking or contact
// message produces one email-style notification to the configured
// recipient. Delivery is fire-and-forget; a sink failure is logged and
// never surfaces to the request that triggered it.
package notify

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mountainmixology/cocktail-catering/internal/model"
	"github.com/mountainmixology/cocktail-catering/internal/store"
)

// Sink delivers a rendered notification. Implementations must be safe
// for concurrent use. The default sink only logs; a real mail
// transport can be substituted without touching any caller.
type Sink interface {
	Deliver(ctx context.Context, to, subject, body string) error
}

// LogSink writes the notification content to the process log instead
// of dispatching real email. This is the default transport.
type LogSink struct{}

// Deliver logs the would-be email and always succeeds.
func (LogSink) Deliver(_ context.Context, to, subject, body string) error {
	log.Printf("notify: email would be sent to: %s", to)
	log.Printf("notify: subject: %s", subject)
	log.Printf("notify: content: %s", body)
	return nil
}

// Notifier renders entity summaries and hands them to the sink on a
// separate goroutine. After a successful delivery it appends an audit
// record to the notification store.
type Notifier struct {
	sink    Sink
	to      string
	records *store.NotificationStore
	timeout time.Duration
}

// NewNotifier constructs a Notifier sending to the given recipient.
// records may be nil to skip the audit trail (used by some tests).
func NewNotifier(sink Sink, to string, records *store.NotificationStore) *Notifier {
	return &Notifier{sink: sink, to: to, records: records, timeout: 10 * time.Second}
}

// BookingReceived dispatches the new-booking notification. Safe to
// call from the store's post-commit hook: it returns immediately.
func (n *Notifier) BookingReceived(b model.Booking) {
	subject := fmt.Sprintf("New Booking Request - %s", b.EventType)
	body := fmt.Sprintf(
		"New booking request received:\n\n"+
			"Name: %s %s\nEmail: %s\nPhone: %s\n"+
			"Event Date: %s\nEvent Time: %s\nEvent Type: %s\n"+
			"Package: %s\nGuest Count: %d\nMessage: %s\n",
		b.FirstName, b.LastName, b.Email, b.Phone,
		b.EventDate, b.EventTime, b.EventType,
		b.PackageType, b.GuestCount, b.Message)
	n.dispatch(subject, body, model.NotificationTypeBooking, b.ID)
}

// ContactReceived dispatches the new-contact-message notification.
func (n *Notifier) ContactReceived(m model.ContactMessage) {
	subject := fmt.Sprintf("New Contact Message - %s", m.Subject)
	body := fmt.Sprintf(
		"New contact message received:\n\n"+
			"Name: %s\nEmail: %s\nSubject: %s\nMessage: %s\n",
		m.Name, m.Email, m.Subject, m.Message)
	n.dispatch(subject, body, model.NotificationTypeContact, m.ID)
}

func (n *Notifier) dispatch(subject, body, typ string, sourceID int) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
		defer cancel()
		if err := n.sink.Deliver(ctx, n.to, subject, body); err != nil {
			log.Printf("notify: deliver failed (%s #%d): %v", typ, sourceID, err)
			return
		}
		if n.records != nil {
			n.records.Create(n.to, subject, body, typ, sourceID)
		}
	}()
}
