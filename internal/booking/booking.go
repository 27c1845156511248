// Package booking implements the two-step ticket booking wizard: step 1
// collects the ticket count and contact details, step 2 the payment method.
// Nothing is charged; completion synthesizes a booking record.
package booking

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/eventistan/internal/model"
	"github.com/iliyamo/eventistan/internal/wizard"
)

const (
	StepDetails = 1
	StepPayment = 2
	Steps       = 2
)

var ErrSoldOut = errors.New("no seats left")

// CashLocation is where a cash payment is collected.
type CashLocation string

const (
	CashAtVenue    CashLocation = "venue"
	CashAtOffice   CashLocation = "office"
	CashOnDelivery CashLocation = "delivery"
)

func (l CashLocation) Valid() bool {
	return l == CashAtVenue || l == CashAtOffice || l == CashOnDelivery
}

// PaymentDetails carries the extra input each payment method needs.
type PaymentDetails struct {
	JazzCashPhone  string       `json:"jazzcash_phone,omitempty"`
	EasyPaisaPhone string       `json:"easypaisa_phone,omitempty"`
	CashLocation   CashLocation `json:"cash_location,omitempty"`
}

// Request is everything the wizard has collected so far.
type Request struct {
	Seats         int                  `json:"seats"`
	Contact       model.BookingContact `json:"contact_info"`
	PaymentMethod model.PaymentType    `json:"payment_method"`
	Payment       PaymentDetails       `json:"payment_details"`
}

// ClampSeats limits requested to [1, seats left].
func ClampSeats(e model.Event, requested int) int {
	return wizard.Clamp(requested, 1, e.SeatsLeft())
}

// ServiceFee is charged on top of the tickets.  It is always zero.
func ServiceFee(model.Event, int) decimal.Decimal { return decimal.Zero }

// Total is price times seats plus the service fee; free events total zero.
func Total(e model.Event, seats int) decimal.Decimal {
	return e.TicketPrice().Mul(decimal.NewFromInt(int64(seats))).Add(ServiceFee(e, seats))
}

// CanProceed validates step 1.  The returned error wraps
// model.ErrValidation with one FieldError per problem.
func CanProceed(e model.Event, r Request) error {
	var errs []error
	if e.SeatsLeft() == 0 {
		errs = append(errs, model.NewFieldError("seats", ErrSoldOut.Error()))
	} else if r.Seats < 1 {
		errs = append(errs, model.NewFieldError("seats", "at least one ticket is required"))
	}
	if strings.TrimSpace(r.Contact.Name) == "" {
		errs = append(errs, model.NewFieldError("contact_info.name", "is required"))
	}
	if email := strings.TrimSpace(r.Contact.Email); email == "" {
		errs = append(errs, model.NewFieldError("contact_info.email", "is required"))
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs = append(errs, model.NewFieldError("contact_info.email", "is not a valid address"))
	}
	if strings.TrimSpace(r.Contact.Phone) == "" {
		errs = append(errs, model.NewFieldError("contact_info.phone", "is required"))
	}
	return model.Validation(errs...)
}

// CanComplete validates step 2 against the given wallet balance.  A
// wallet payment that exceeds the balance is reported as
// ErrInsufficientBalance rather than a validation error.
func CanComplete(e model.Event, r Request, method model.PaymentMethod, wallet decimal.Decimal) error {
	if !method.IsActive {
		return model.Validation(model.NewFieldError("payment_method", "is not available"))
	}
	switch r.PaymentMethod {
	case model.PaymentJazzCash:
		if strings.TrimSpace(r.Payment.JazzCashPhone) == "" {
			return model.Validation(model.NewFieldError("payment_details.jazzcash_phone", "is required"))
		}
	case model.PaymentEasyPaisa:
		if strings.TrimSpace(r.Payment.EasyPaisaPhone) == "" {
			return model.Validation(model.NewFieldError("payment_details.easypaisa_phone", "is required"))
		}
	case model.PaymentWallet:
		if Total(e, ClampSeats(e, r.Seats)).GreaterThan(wallet) {
			return ErrInsufficientBalance
		}
	case model.PaymentCash:
		if !r.Payment.CashLocation.Valid() {
			return model.Validation(model.NewFieldError("payment_details.cash_location", "must be venue, office or delivery"))
		}
	default:
		return model.Validation(model.NewFieldError("payment_method", "is required"))
	}
	return nil
}

var ErrInsufficientBalance = errors.New("insufficient wallet balance")

// Quote is what step 1 of the wizard shows.
type Quote struct {
	EventID    string             `json:"event_id"`
	Seats      int                `json:"seats"`
	MaxSeats   int                `json:"max_seats"`
	UnitPrice  decimal.Decimal    `json:"unit_price"`
	ServiceFee decimal.Decimal    `json:"service_fee"`
	Total      decimal.Decimal    `json:"total"`
	Step       wizard.Steps       `json:"step"`
	CanProceed bool               `json:"can_proceed"`
	Problems   []model.FieldError `json:"problems,omitempty"`
}

// NewQuote prices r against e.  The seat count is clamped first, so the
// quote never exceeds the seats left.
func NewQuote(e model.Event, r Request) Quote {
	r.Seats = ClampSeats(e, r.Seats)
	err := CanProceed(e, r)
	steps := wizard.Steps{Current: StepDetails, Max: Steps}
	if err == nil {
		steps = steps.Next()
	}
	return Quote{
		EventID:    e.ID,
		Seats:      r.Seats,
		MaxSeats:   e.SeatsLeft(),
		UnitPrice:  e.TicketPrice(),
		ServiceFee: ServiceFee(e, r.Seats),
		Total:      Total(e, r.Seats),
		Step:       steps,
		CanProceed: err == nil,
		Problems:   model.Fields(err),
	}
}
