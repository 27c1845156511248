package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventType classifies an event.
type EventType string

const (
	EventTypeWedding   EventType = "wedding"
	EventTypeBirthday  EventType = "birthday"
	EventTypeCorporate EventType = "corporate"
	EventTypeReligious EventType = "religious"
	EventTypeCultural  EventType = "cultural"
	EventTypeOther     EventType = "other"
)

// Valid reports whether t is a known event type.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeWedding, EventTypeBirthday, EventTypeCorporate,
		EventTypeReligious, EventTypeCultural, EventTypeOther:
		return true
	}
	return false
}

// EventStatus is the publication lifecycle of an event.
type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusCancelled EventStatus = "cancelled"
	EventStatusCompleted EventStatus = "completed"
)

// SeatingArrangement describes how attendees are seated.
type SeatingArrangement string

const (
	SeatingOpen     SeatingArrangement = "open"
	SeatingAssigned SeatingArrangement = "assigned"
	SeatingTables   SeatingArrangement = "tables"
)

// Valid reports whether s is a known seating arrangement.
func (s SeatingArrangement) Valid() bool {
	return s == SeatingOpen || s == SeatingAssigned || s == SeatingTables
}

// ContactInfo is a phone/email pair published with an event.
type ContactInfo struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Event is a listed gathering.  Date is YYYY-MM-DD and Time is HH:MM in
// the venue's local time.  A nil or zero Price means the event is free.
// Attendees is expected to stay within Capacity but nothing enforces it.
type Event struct {
	ID                 string             `json:"id"`
	Title              string             `json:"title"`
	Description        string             `json:"description"`
	Type               EventType          `json:"type"`
	Date               string             `json:"date"`
	Time               string             `json:"time"`
	Venue              string             `json:"venue"`
	Address            string             `json:"address"`
	City               string             `json:"city"`
	Organizer          User               `json:"organizer"`
	IsPublic           bool               `json:"is_public"`
	Capacity           int                `json:"capacity"`
	Attendees          int                `json:"attendees"`
	Image              string             `json:"image"`
	Price              *decimal.Decimal   `json:"price,omitempty"`
	RSVPDeadline       string             `json:"rsvp_deadline,omitempty"`
	Tags               []string           `json:"tags"`
	Gallery            []string           `json:"gallery,omitempty"`
	Amenities          []string           `json:"amenities,omitempty"`
	Requirements       []string           `json:"requirements,omitempty"`
	ContactInfo        *ContactInfo       `json:"contact_info,omitempty"`
	SeatingArrangement SeatingArrangement `json:"seating_arrangement,omitempty"`
	AvailableSeats     int                `json:"available_seats,omitempty"`
	BookedSeats        int                `json:"booked_seats,omitempty"`
	Participants       []EventParticipant `json:"participants,omitempty"`
	Status             EventStatus        `json:"status"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// IsFree reports whether the event has no ticket price.
func (e Event) IsFree() bool {
	return e.Price == nil || e.Price.IsZero()
}

// TicketPrice returns the ticket price, zero for free events.
func (e Event) TicketPrice() decimal.Decimal {
	if e.Price == nil {
		return decimal.Zero
	}
	return *e.Price
}

// SeatsLeft returns the number of seats that can still be booked.  An
// explicit AvailableSeats wins; otherwise it is capacity minus attendees.
func (e Event) SeatsLeft() int {
	if e.AvailableSeats > 0 {
		return e.AvailableSeats
	}
	left := e.Capacity - e.Attendees
	if left < 0 {
		return 0
	}
	return left
}

// AttendancePercent is attendees as a percentage of capacity.
func (e Event) AttendancePercent() float64 {
	if e.Capacity <= 0 {
		return 0
	}
	return float64(e.Attendees) / float64(e.Capacity) * 100
}

// Clone returns a deep copy of e, including its participants.
func (e Event) Clone() Event {
	out := e
	out.Organizer = e.Organizer.Clone()
	if e.Price != nil {
		p := *e.Price
		out.Price = &p
	}
	out.Tags = cloneStrings(e.Tags)
	out.Gallery = cloneStrings(e.Gallery)
	out.Amenities = cloneStrings(e.Amenities)
	out.Requirements = cloneStrings(e.Requirements)
	if e.ContactInfo != nil {
		ci := *e.ContactInfo
		out.ContactInfo = &ci
	}
	if e.Participants != nil {
		out.Participants = make([]EventParticipant, len(e.Participants))
		for i, p := range e.Participants {
			out.Participants[i] = p.Clone()
		}
	}
	return out
}

// RSVPStatus is an attendee's stated intent.
type RSVPStatus string

const (
	RSVPGoing    RSVPStatus = "going"
	RSVPMaybe    RSVPStatus = "maybe"
	RSVPNotGoing RSVPStatus = "not-going"
)

// Valid reports whether s is a known RSVP status.
func (s RSVPStatus) Valid() bool {
	return s == RSVPGoing || s == RSVPMaybe || s == RSVPNotGoing
}

type TicketType string

const (
	TicketFree TicketType = "free"
	TicketPaid TicketType = "paid"
)

// PaymentStatus tracks the payment of a participant or booking.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

type CheckInStatus string

const (
	CheckInPending   CheckInStatus = "pending"
	CheckInCheckedIn CheckInStatus = "checked-in"
)

// EventParticipant links a user to an event.  Participants exist only in
// fixtures; completing a booking does not add one.
type EventParticipant struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	EventID       string        `json:"event_id"`
	User          User          `json:"user"`
	Status        RSVPStatus    `json:"status"`
	TicketType    TicketType    `json:"ticket_type,omitempty"`
	TicketNumber  string        `json:"ticket_number,omitempty"`
	BookingID     string        `json:"booking_id,omitempty"`
	JoinedAt      time.Time     `json:"joined_at"`
	Seats         int           `json:"seats"`
	PaymentStatus PaymentStatus `json:"payment_status,omitempty"`
	CheckInStatus CheckInStatus `json:"check_in_status,omitempty"`
	CheckInTime   *time.Time    `json:"check_in_time,omitempty"`
}

// Clone returns a deep copy of p.
func (p EventParticipant) Clone() EventParticipant {
	out := p
	out.User = p.User.Clone()
	if p.CheckInTime != nil {
		t := *p.CheckInTime
		out.CheckInTime = &t
	}
	return out
}
