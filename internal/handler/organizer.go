package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"

	"github.com/iliyamo/eventistan/internal/dashboard"
	"github.com/iliyamo/eventistan/internal/forms"
	"github.com/iliyamo/eventistan/internal/logger"
	"github.com/iliyamo/eventistan/internal/middleware"
	"github.com/iliyamo/eventistan/internal/model"
	"github.com/iliyamo/eventistan/internal/repository"
)

// OrganizerHandler serves the signed-in screens: dashboard, profile and
// the organizer's view of their own events.  Edits are validated, logged
// and acknowledged; nothing is stored.
type OrganizerHandler struct {
	Events *repository.EventRepo
	Users  *repository.UserRepo
	Now    func() time.Time
}

func NewOrganizerHandler(events *repository.EventRepo, users *repository.UserRepo) *OrganizerHandler {
	return &OrganizerHandler{Events: events, Users: users, Now: time.Now}
}

// Dashboard returns the overview of the caller's events.
func (h *OrganizerHandler) Dashboard(c echo.Context) error {
	uid, _ := middleware.UserID(c)
	events, err := h.Events.ListByOrganizer(c.Request().Context(), uid)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dashboard.NewOverview(events, h.Now()))
}

// Profile returns the caller and the events they organize.
func (h *OrganizerHandler) Profile(c echo.Context) error {
	ctx := c.Request().Context()
	uid, _ := middleware.UserID(c)
	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		return fail(c, err)
	}
	events, err := h.Events.ListByOrganizer(ctx, uid)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dashboard.NewProfile(u, events))
}

// UpdateProfile validates an edit and echoes the edited user back.
func (h *OrganizerHandler) UpdateProfile(c echo.Context) error {
	var upd dashboard.ProfileUpdate
	if err := c.Bind(&upd); err != nil {
		return badBody(c)
	}
	ctx := c.Request().Context()
	uid, _ := middleware.UserID(c)
	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		return fail(c, err)
	}
	edited, err := upd.Apply(u)
	if err != nil {
		return fail(c, err)
	}
	logger.Info(ctx, "profile update accepted", logger.String("user_id", uid))
	return c.JSON(http.StatusOK, edited)
}

// participantQuery reads ?status= and ?q=.
func participantQuery(c echo.Context) (dashboard.ParticipantQuery, error) {
	status, err := dashboard.ParseStatusFilter(c.QueryParam("status"))
	if err != nil {
		return dashboard.ParticipantQuery{}, err
	}
	return dashboard.ParticipantQuery{Status: status, Search: c.QueryParam("q")}, nil
}

func (h *OrganizerHandler) owned(c echo.Context) (model.Event, error) {
	uid, _ := middleware.UserID(c)
	return h.Events.GetOwned(c.Request().Context(), c.Param("id"), uid)
}

// MyEvent returns the my-event details screen: stats, analytics and the
// filtered participants.
func (h *OrganizerHandler) MyEvent(c echo.Context) error {
	q, err := participantQuery(c)
	if err != nil {
		return fail(c, err)
	}
	e, err := h.owned(c)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dashboard.NewEventDetails(e, q))
}

// Participants lists the filtered participants of an owned event.
func (h *OrganizerHandler) Participants(c echo.Context) error {
	q, err := participantQuery(c)
	if err != nil {
		return fail(c, err)
	}
	e, err := h.owned(c)
	if err != nil {
		return fail(c, err)
	}
	filtered := dashboard.FilterParticipants(e.Participants, q)
	return c.JSON(http.StatusOK, echo.Map{
		"data":  filtered,
		"total": len(e.Participants),
		"shown": len(filtered),
		"stats": dashboard.NewParticipantStats(e.Participants),
	})
}

// ExportParticipants downloads the filtered participants as CSV.
func (h *OrganizerHandler) ExportParticipants(c echo.Context) error {
	q, err := participantQuery(c)
	if err != nil {
		return fail(c, err)
	}
	e, err := h.owned(c)
	if err != nil {
		return fail(c, err)
	}

	var buf bytes.Buffer
	if err := dashboard.WriteParticipantsCSV(&buf, dashboard.FilterParticipants(e.Participants, q)); err != nil {
		return fail(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", dashboard.ExportFilename(e)))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

var bulkActions = []string{"email", "remind", "check-in", "export"}

type bulkReq struct {
	Action         string   `json:"action"`
	ParticipantIDs []string `json:"participant_ids"`
}

// BulkAction acknowledges an action on selected participants.  Every id
// must belong to the event.
func (h *OrganizerHandler) BulkAction(c echo.Context) error {
	var req bulkReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	e, err := h.owned(c)
	if err != nil {
		return fail(c, err)
	}

	var errs []error
	if !lo.Contains(bulkActions, req.Action) {
		errs = append(errs, model.NewFieldError("action", "must be one of "+strings.Join(bulkActions, ", ")))
	}
	if len(req.ParticipantIDs) == 0 {
		errs = append(errs, model.NewFieldError("participant_ids", "select at least one participant"))
	}
	known := lo.Map(e.Participants, func(p model.EventParticipant, _ int) string { return p.ID })
	if unknown := lo.Without(req.ParticipantIDs, known...); len(unknown) > 0 {
		errs = append(errs, model.NewFieldError("participant_ids", "unknown ids: "+strings.Join(unknown, ", ")))
	}
	if err := model.Validation(errs...); err != nil {
		return fail(c, err)
	}

	ids := lo.Uniq(req.ParticipantIDs)
	logger.Info(c.Request().Context(), "bulk action accepted",
		logger.String("event_id", e.ID),
		logger.String("action", req.Action),
		logger.Strings("participant_ids", ids),
	)
	return c.JSON(http.StatusAccepted, echo.Map{"action": req.Action, "count": len(ids), "status": "acknowledged"})
}

// UpdateEvent validates an edit of an owned event and returns the edited
// event.  Nothing is stored.
func (h *OrganizerHandler) UpdateEvent(c echo.Context) error {
	var d forms.EventDraft
	if err := c.Bind(&d); err != nil {
		return badBody(c)
	}
	e, err := h.owned(c)
	if err != nil {
		return fail(c, err)
	}
	edited, err := d.Build(e.Organizer, e.CreatedAt)
	if err != nil {
		return fail(c, err)
	}
	edited.ID = e.ID
	edited.Status = e.Status
	edited.Attendees = e.Attendees
	edited.UpdatedAt = h.Now().UTC()

	logger.Info(c.Request().Context(), "event edit accepted", logger.String("event_id", e.ID))
	return c.JSON(http.StatusAccepted, edited)
}

// DeleteEvent acknowledges deleting an owned event.  The catalog is not
// changed.
func (h *OrganizerHandler) DeleteEvent(c echo.Context) error {
	e, err := h.owned(c)
	if err != nil {
		return fail(c, err)
	}
	logger.Info(c.Request().Context(), "event delete accepted", logger.String("event_id", e.ID))
	return c.JSON(http.StatusAccepted, echo.Map{"id": e.ID, "status": "acknowledged"})
}
