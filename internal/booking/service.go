package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/eventistan/internal/logger"
	"github.com/iliyamo/eventistan/internal/model"
)

// Outcome tells a succeeded booking from a failed one.
type Outcome string

const (
	Succeeded Outcome = "succeeded"
	Failed    Outcome = "failed"
)

// Result is the explicit outcome of Complete.  Booking is set only when
// Outcome is Succeeded; Reason only when it is Failed.
type Result struct {
	Outcome Outcome        `json:"outcome"`
	Booking *model.Booking `json:"booking,omitempty"`
	Reason  string         `json:"reason,omitempty"`
}

func (r Result) Succeeded() bool { return r.Outcome == Succeeded }

// EventGetter resolves the event being booked.
type EventGetter interface {
	GetByID(ctx context.Context, id string) (model.Event, error)
}

// PaymentMethodGetter resolves the chosen payment method.
type PaymentMethodGetter interface {
	GetByType(ctx context.Context, t model.PaymentType) (model.PaymentMethod, error)
}

// Notifier is told about every succeeded booking.
type Notifier interface {
	BookingConfirmed(ctx context.Context, b model.Booking, e model.Event) error
}

// Service completes bookings.
type Service struct {
	events  EventGetter
	methods PaymentMethodGetter
	notify  Notifier
	delay   time.Duration
	wallet  decimal.Decimal
	now     func() time.Time
}

// Option tweaks a Service.
type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

// WithNotifier publishes succeeded bookings.
func WithNotifier(n Notifier) Option { return func(s *Service) { s.notify = n } }

// NewService builds a Service that simulates payment processing for delay
// and checks wallet payments against wallet.
func NewService(events EventGetter, methods PaymentMethodGetter, delay time.Duration, wallet decimal.Decimal, opts ...Option) *Service {
	s := &Service{
		events:  events,
		methods: methods,
		delay:   delay,
		wallet:  wallet,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Wallet is the balance wallet payments are checked against.
func (s *Service) Wallet() decimal.Decimal { return s.wallet }

// Quote prices a step 1 request for eventID.
func (s *Service) Quote(ctx context.Context, eventID string, r Request) (Quote, error) {
	const op = "booking.Quote"

	e, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return Quote{}, fmt.Errorf("%s: %w", op, err)
	}
	return NewQuote(e, r), nil
}

// Complete validates both steps, waits out the simulated processing time
// and returns the booking.  Validation problems come back as errors; an
// insufficient wallet balance comes back as a Failed result.  Cancelling
// ctx during processing aborts without a result.
func (s *Service) Complete(ctx context.Context, eventID, userID string, r Request) (Result, error) {
	const op = "booking.Complete"

	e, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}
	r.Seats = ClampSeats(e, r.Seats)
	if err := CanProceed(e, r); err != nil {
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}
	if !r.PaymentMethod.Valid() {
		return Result{}, fmt.Errorf("%s: %w", op, model.Validation(model.NewFieldError("payment_method", "is required")))
	}
	method, err := s.methods.GetByType(ctx, r.PaymentMethod)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := CanComplete(e, r, method, s.wallet); err != nil {
		if errors.Is(err, ErrInsufficientBalance) {
			logger.Info(ctx, "booking declined",
				logger.String("event_id", e.ID),
				logger.String("reason", err.Error()),
			)
			return Result{Outcome: Failed, Reason: err.Error()}, nil
		}
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return Result{}, fmt.Errorf("%s: %w", op, ctx.Err())
		case <-timer.C:
		}
	}

	now := s.now().UTC()
	b := model.Booking{
		ID:            fmt.Sprintf("BK%d", now.UnixMilli()),
		EventID:       e.ID,
		UserID:        userID,
		Seats:         r.Seats,
		TotalAmount:   Total(e, r.Seats),
		PaymentMethod: r.PaymentMethod,
		PaymentStatus: paymentStatus(r.PaymentMethod),
		BookingDate:   now,
		TicketNumber:  ticketNumber(),
		ContactInfo:   r.Contact,
	}

	logger.Info(ctx, "booking completed",
		logger.String("booking_id", b.ID),
		logger.String("event_id", e.ID),
		logger.Int("seats", b.Seats),
		logger.String("total", b.TotalAmount.String()),
		logger.String("payment_method", string(b.PaymentMethod)),
	)

	if s.notify != nil {
		if err := s.notify.BookingConfirmed(ctx, b, e); err != nil {
			logger.Warn(ctx, "booking notification failed",
				logger.String("booking_id", b.ID),
				logger.ErrorF(err),
			)
		}
	}
	return Result{Outcome: Succeeded, Booking: &b}, nil
}

// Cash is collected later; everything else counts as paid on completion.
func paymentStatus(t model.PaymentType) model.PaymentStatus {
	if t == model.PaymentCash {
		return model.PaymentPending
	}
	return model.PaymentCompleted
}

func ticketNumber() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "TKT-" + id[:10]
}

// ShareText is the message shared after a booking.
func ShareText(e model.Event, bookingID string) string {
	return fmt.Sprintf("I'm attending %s on %s! Booking ID: %s", e.Title, FormatDate(e.Date), bookingID)
}

// FormatDate renders a YYYY-MM-DD date as "Monday, January 28, 2025".
// Unparseable input is returned as is.
func FormatDate(date string) string {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}
