// Package queue defines message payloads exchanged over the message broker
// and the consumer that records them.
package queue

import (
	"time"

	"github.com/iliyamo/eventistan/internal/model"
)

// BookingConfirmedEvent is published when a ticket booking completes.  It
// contains enough information for downstream consumers to log, notify, or
// trigger analytics without looking the event up again.
type BookingConfirmedEvent struct {
	BookingID     string `json:"booking_id"`
	TicketNumber  string `json:"ticket_number"`
	UserID        string `json:"user_id,omitempty"`
	EventID       string `json:"event_id"`
	EventTitle    string `json:"event_title"`
	EventDate     string `json:"event_date"`
	EventTime     string `json:"event_time"`
	Venue         string `json:"venue"`
	City          string `json:"city"`
	Seats         int    `json:"seats"`
	TotalAmount   string `json:"total_amount"`
	PaymentMethod string `json:"payment_method"`
	PaymentStatus string `json:"payment_status"`
	ContactEmail  string `json:"contact_email"`
	ConfirmedAt   string `json:"confirmed_at"`
}

// NewBookingConfirmedEvent flattens a booking and its event into a message.
func NewBookingConfirmedEvent(b model.Booking, e model.Event) BookingConfirmedEvent {
	return BookingConfirmedEvent{
		BookingID:     b.ID,
		TicketNumber:  b.TicketNumber,
		UserID:        b.UserID,
		EventID:       e.ID,
		EventTitle:    e.Title,
		EventDate:     e.Date,
		EventTime:     e.Time,
		Venue:         e.Venue,
		City:          e.City,
		Seats:         b.Seats,
		TotalAmount:   b.TotalAmount.StringFixed(2),
		PaymentMethod: string(b.PaymentMethod),
		PaymentStatus: string(b.PaymentStatus),
		ContactEmail:  b.ContactInfo.Email,
		ConfirmedAt:   b.BookingDate.UTC().Format(time.RFC3339),
	}
}
