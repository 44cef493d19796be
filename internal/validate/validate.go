// Package validate holds the pure input validators for the two
// lead-capture forms. Validators are synchronous, perform no I/O and
// always examine every field so the caller can report the full set of
// violations in a single response.
package validate

import (
	"regexp"
	"strings"

	"github.com/mountainmixology/cocktail-catering/internal/model"
)

// FieldErrors maps a field name to the validation messages recorded
// against it. An empty map means the input is valid.
type FieldErrors map[string][]string

// Add appends a message for the named field.
func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Empty reports whether no violations were recorded.
func (fe FieldErrors) Empty() bool { return len(fe) == 0 }

// emailRe accepts the usual local@domain.tld shape. It is a grammar
// check, not a deliverability check.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var eventTypes = map[string]bool{
	model.EventWedding:   true,
	model.EventCorporate: true,
	model.EventBirthday:  true,
	model.EventHoliday:   true,
	model.EventOther:     true,
}

var packageTypes = map[string]bool{
	model.PackageEssential: true,
	model.PackagePremium:   true,
	model.PackageLuxe:      true,
	model.PackageCustom:    true,
}

// Booking checks a booking request against the insert contract and
// returns every violation found.
func Booking(in model.InsertBooking) FieldErrors {
	fe := FieldErrors{}
	requireText(fe, "firstName", in.FirstName)
	requireText(fe, "lastName", in.LastName)
	requireEmail(fe, in.Email)
	if len(in.Phone) < 10 {
		fe.Add("phone", "Please provide a valid phone number")
	}
	requireText(fe, "eventDate", in.EventDate)
	requireText(fe, "eventTime", in.EventTime)
	if !eventTypes[in.EventType] {
		fe.Add("eventType", "Event type must be one of: wedding, corporate, birthday, holiday, other")
	}
	if !packageTypes[in.PackageType] {
		fe.Add("packageType", "Package must be one of: essential, premium, luxe, custom")
	}
	if in.GuestCount < model.MinGuestCount {
		fe.Add("guestCount", "Minimum guest count is 10")
	}
	// message is optional free text; no constraint
	return fe
}

// Contact checks a contact-form submission and returns every
// violation found.
func Contact(in model.InsertContactMessage) FieldErrors {
	fe := FieldErrors{}
	requireText(fe, "name", in.Name)
	requireEmail(fe, in.Email)
	requireText(fe, "subject", in.Subject)
	if len(in.Message) < model.MinContactMessageLen {
		fe.Add("message", "Message must be at least 10 characters long")
	}
	return fe
}

func requireText(fe FieldErrors, field, v string) {
	if strings.TrimSpace(v) == "" {
		fe.Add(field, field+" is required")
	}
}

func requireEmail(fe FieldErrors, v string) {
	if !emailRe.MatchString(v) {
		fe.Add("email", "Please provide a valid email address")
	}
}
