package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/eventistan/internal/booking"
	"github.com/iliyamo/eventistan/internal/logger"
	"github.com/iliyamo/eventistan/internal/middleware"
	"github.com/iliyamo/eventistan/internal/model"
	"github.com/iliyamo/eventistan/internal/repository"
)

// EventHandler serves the public event catalog, RSVPs and the booking
// wizard.
type EventHandler struct {
	Events  *repository.EventRepo
	Methods *repository.PaymentMethodRepo
	Booking *booking.Service
	Now     func() time.Time
}

func NewEventHandler(events *repository.EventRepo, methods *repository.PaymentMethodRepo, svc *booking.Service) *EventHandler {
	return &EventHandler{Events: events, Methods: methods, Booking: svc, Now: time.Now}
}

// EventView is an event as the public details screen shows it.  The
// participant list is organizer-only and never included.
type EventView struct {
	model.Event
	SeatsLeft         int     `json:"seats_left"`
	AttendancePercent float64 `json:"attendance_percent"`
	PriceLabel        string  `json:"price_label"`
	Free              bool    `json:"is_free"`
}

func publicEvent(e model.Event) EventView {
	e.Participants = nil
	return EventView{
		Event:             e,
		SeatsLeft:         e.SeatsLeft(),
		AttendancePercent: e.AttendancePercent(),
		PriceLabel:        e.PriceLabel(),
		Free:              e.IsFree(),
	}
}

// ListEvents filters the catalog.  Query params: q, city, type, price
// (bucket key or UI label), date (YYYY-MM-DD), page, page_size.
func (h *EventHandler) ListEvents(c echo.Context) error {
	price, err := repository.ParsePriceBucket(c.QueryParam("price"))
	if err != nil {
		return fail(c, err)
	}
	page, ps := pageParams(c)

	q := repository.EventSearchQuery{
		Query:    strings.TrimSpace(c.QueryParam("q")),
		City:     strings.TrimSpace(c.QueryParam("city")),
		Type:     strings.TrimSpace(c.QueryParam("type")),
		Price:    price,
		Date:     strings.TrimSpace(c.QueryParam("date")),
		Page:     page,
		PageSize: ps,
	}
	items, total, err := h.Events.Search(c.Request().Context(), q)
	if err != nil {
		return fail(c, err)
	}

	data := make([]EventView, 0, len(items))
	for _, e := range items {
		data = append(data, publicEvent(e))
	}
	return c.JSON(http.StatusOK, echo.Map{
		"data":      data,
		"total":     total,
		"page":      page,
		"page_size": ps,
	})
}

// GetEvent returns the details screen of one event.
func (h *EventHandler) GetEvent(c echo.Context) error {
	e, err := h.Events.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, publicEvent(e))
}

// ShareEvent returns the share sheet payload of an event.
func (h *EventHandler) ShareEvent(c echo.Context) error {
	e, err := h.Events.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, SharePayload{
		Title: e.Title,
		Text:  e.Description,
		URL:   shareURL(c, "/v1/events/"+e.ID),
	})
}

type rsvpReq struct {
	Status model.RSVPStatus `json:"status"`
	Guests int              `json:"guests"`
}

// RSVP records the caller's intent for an event.  The RSVP is logged and
// echoed back, never stored, and the event's counts do not change.
func (h *EventHandler) RSVP(c echo.Context) error {
	var req rsvpReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	ctx := c.Request().Context()
	e, err := h.Events.GetByID(ctx, c.Param("id"))
	if err != nil {
		return fail(c, err)
	}

	var errs []error
	if !req.Status.Valid() {
		errs = append(errs, model.NewFieldError("status", "must be going, maybe or not-going"))
	}
	if req.Guests < 0 {
		errs = append(errs, model.NewFieldError("guests", "must not be negative"))
	}
	if err := model.Validation(errs...); err != nil {
		return fail(c, err)
	}

	uid, _ := middleware.UserID(c)
	rsvp := model.RSVP{
		ID:        uuid.NewString(),
		EventID:   e.ID,
		UserID:    uid,
		Status:    req.Status,
		Guests:    req.Guests,
		CreatedAt: h.Now().UTC(),
	}
	logger.Info(ctx, "rsvp received",
		logger.String("event_id", e.ID),
		logger.String("status", string(rsvp.Status)),
		logger.Int("guests", rsvp.Guests),
	)
	return c.JSON(http.StatusCreated, rsvp)
}

// QuoteBooking prices step 1 of the booking wizard and reports whether
// the client may move on to payment.
func (h *EventHandler) QuoteBooking(c echo.Context) error {
	var req booking.Request
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	q, err := h.Booking.Quote(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, q)
}

// CreateBooking completes the wizard.  It blocks for the simulated
// processing time.  A declined payment answers 402 with the failed result.
func (h *EventHandler) CreateBooking(c echo.Context) error {
	var req booking.Request
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	uid, _ := middleware.UserID(c)
	res, err := h.Booking.Complete(c.Request().Context(), c.Param("id"), uid, req)
	if err != nil {
		return fail(c, err)
	}
	if !res.Succeeded() {
		return c.JSON(http.StatusPaymentRequired, res)
	}
	return c.JSON(http.StatusCreated, res)
}

// ShareBooking returns the post-booking share text.
func (h *EventHandler) ShareBooking(c echo.Context) error {
	e, err := h.Events.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	id := c.Param("booking_id")
	if !strings.HasPrefix(id, "BK") {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	return c.JSON(http.StatusOK, SharePayload{
		Title: e.Title,
		Text:  booking.ShareText(e, id),
		URL:   shareURL(c, "/v1/events/"+e.ID),
	})
}

// PaymentMethods lists the active payment methods and the wallet balance
// wallet payments are checked against.
func (h *EventHandler) PaymentMethods(c echo.Context) error {
	methods, err := h.Methods.ListActive(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	wallet := h.Booking.Wallet()
	return c.JSON(http.StatusOK, echo.Map{
		"data":                 methods,
		"wallet_balance":       wallet,
		"wallet_balance_label": model.FormatRupees(wallet),
	})
}
