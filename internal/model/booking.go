package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType identifies a payment method.
type PaymentType string

const (
	PaymentJazzCash  PaymentType = "jazzcash"
	PaymentEasyPaisa PaymentType = "easypaisa"
	PaymentWallet    PaymentType = "wallet"
	PaymentCash      PaymentType = "cash"
)

// Valid reports whether t is a known payment type.
func (t PaymentType) Valid() bool {
	switch t {
	case PaymentJazzCash, PaymentEasyPaisa, PaymentWallet, PaymentCash:
		return true
	}
	return false
}

// PaymentMethod is an entry of the static payment method catalog.
type PaymentMethod struct {
	ID          string      `json:"id"`
	Type        PaymentType `json:"type"`
	Name        string      `json:"name"`
	Icon        string      `json:"icon"`
	Description string      `json:"description"`
	IsActive    bool        `json:"is_active"`
}

// BookingContact is who a booking or inquiry should be addressed to.
type BookingContact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Booking is the synthesized record of a completed ticket purchase.  It is
// returned to the client and published, never stored.
type Booking struct {
	ID            string          `json:"id"`
	EventID       string          `json:"event_id"`
	UserID        string          `json:"user_id,omitempty"`
	Seats         int             `json:"seats"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod PaymentType     `json:"payment_method"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	BookingDate   time.Time       `json:"booking_date"`
	TicketNumber  string          `json:"ticket_number"`
	ContactInfo   BookingContact  `json:"contact_info"`
}
