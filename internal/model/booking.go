package model

import "time"

// Event types accepted on a booking request. Any other value is
// rejected during validation.
const (
	EventWedding   = "wedding"
	EventCorporate = "corporate"
	EventBirthday  = "birthday"
	EventHoliday   = "holiday"
	EventOther     = "other"
)

// Service packages offered by the catering business.
const (
	PackageEssential = "essential"
	PackagePremium   = "premium"
	PackageLuxe      = "luxe"
	PackageCustom    = "custom"
)

// MinGuestCount is the smallest event size the business caters.
const MinGuestCount = 10

// BookingStatusPending is the status assigned to every new booking.
// Status is free text after creation; admins may set any value.
const BookingStatusPending = "pending"

// Booking records a single event booking request submitted through the
// site. The ID is assigned by the store, CreatedAt by the server clock
// and Status defaults to "pending".
//
// Fields:
//  ID          – sequential identifier, unique per booking.
//  FirstName   – requester's first name.
//  LastName    – requester's last name.
//  Email       – contact email address.
//  Phone       – contact phone number (free text, length-checked only).
//  EventDate   – calendar date of the event as text (e.g. "2025-06-01").
//  EventTime   – time of day of the event as text (e.g. "14:00").
//  EventType   – one of the event type constants above.
//  PackageType – one of the package constants above.
//  GuestCount  – expected number of guests, never below MinGuestCount.
//  Message     – optional free-text note from the requester.
//  CreatedAt   – timestamp assigned at creation.
//  Status      – workflow status, "pending" on creation.
type Booking struct {
	ID          int       `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	EventDate   string    `json:"eventDate"`
	EventTime   string    `json:"eventTime"`
	EventType   string    `json:"eventType"`
	PackageType string    `json:"packageType"`
	GuestCount  int       `json:"guestCount"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
	Status      string    `json:"status"`
}

// InsertBooking is the client-supplied subset of a Booking. Server
// assigned fields (id, createdAt, status) are omitted.
type InsertBooking struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	EventDate   string `json:"eventDate"`
	EventTime   string `json:"eventTime"`
	EventType   string `json:"eventType"`
	PackageType string `json:"packageType"`
	GuestCount  int    `json:"guestCount"`
	Message     string `json:"message"`
}
