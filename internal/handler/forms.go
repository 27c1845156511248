package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/eventistan/internal/forms"
	"github.com/iliyamo/eventistan/internal/logger"
	"github.com/iliyamo/eventistan/internal/middleware"
	"github.com/iliyamo/eventistan/internal/model"
	"github.com/iliyamo/eventistan/internal/navigation"
	"github.com/iliyamo/eventistan/internal/repository"
	"github.com/iliyamo/eventistan/internal/wizard"
)

// FormHandler drives the event creation and vendor registration wizards.
// Submissions are validated, logged and returned as previews.
type FormHandler struct {
	Users *repository.UserRepo
	Now   func() time.Time
}

func NewFormHandler(users *repository.UserRepo) *FormHandler {
	return &FormHandler{Users: users, Now: time.Now}
}

type stepResp struct {
	Step      wizard.Steps       `json:"step"`
	Valid     bool               `json:"valid"`
	Next      int                `json:"next"`
	CanGoBack bool               `json:"can_go_back"`
	CanSubmit bool               `json:"can_submit"`
	Problems  []model.FieldError `json:"problems,omitempty"`
}

func newStepResp(at, dest wizard.Steps, valid bool) stepResp {
	return stepResp{
		Step:      at,
		Valid:     valid,
		Next:      dest.Current,
		CanGoBack: !dest.IsFirst(),
		CanSubmit: valid && at.IsLast(),
	}
}

// checkStep moves the wizard cursor from the :step param.  ?direction=prev
// goes back without validating.  Moving forward validates the step: an
// invalid step stays where it is, a valid one reports the next step,
// clamped to the last.
func checkStep(c echo.Context, max int, validate func(step int) error) error {
	n, err := strconv.Atoi(c.Param("step"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "step must be a number"})
	}
	steps, err := wizard.New(max)
	if err != nil {
		return fail(c, err)
	}
	steps = steps.At(n)

	switch c.QueryParam("direction") {
	case "", "next":
	case "prev":
		return c.JSON(http.StatusOK, newStepResp(steps, steps.Prev(), true))
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "direction must be next or prev"})
	}

	if err := validate(steps.Current); err != nil {
		if !errors.Is(err, model.ErrValidation) {
			return fail(c, err)
		}
		resp := newStepResp(steps, steps, false)
		resp.Problems = model.Fields(err)
		return c.JSON(http.StatusUnprocessableEntity, resp)
	}
	return c.JSON(http.StatusOK, newStepResp(steps, steps.Next(), true))
}

// EventDraftStep validates one step of the event creation wizard.
func (h *FormHandler) EventDraftStep(c echo.Context) error {
	var d forms.EventDraft
	if err := c.Bind(&d); err != nil {
		return badBody(c)
	}
	return checkStep(c, forms.EventDraftSteps, d.ValidateStep)
}

// SubmitEventDraft validates the whole form and returns the draft event
// organized by the caller.
func (h *FormHandler) SubmitEventDraft(c echo.Context) error {
	var d forms.EventDraft
	if err := c.Bind(&d); err != nil {
		return badBody(c)
	}
	ctx := c.Request().Context()
	uid, _ := middleware.UserID(c)
	organizer, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		return fail(c, err)
	}
	e, err := d.Build(organizer, h.Now())
	if err != nil {
		return fail(c, err)
	}
	logger.Info(ctx, "event created",
		logger.String("event_id", e.ID),
		logger.String("title", e.Title),
		logger.String("organizer_id", organizer.ID),
	)
	return c.JSON(http.StatusCreated, echo.Map{"event": e, "next_view": navigation.ViewDashboard})
}

// NewVendorRegistration returns an empty registration form with its
// defaults and the option lists.
func (h *FormHandler) NewVendorRegistration(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"form":            forms.NewVendorRegistration(),
		"cities":          forms.Cities,
		"payment_options": forms.PaymentOptions,
		"steps":           forms.VendorRegistrationSteps,
	})
}

// VendorRegistrationStep validates one step of the vendor wizard.
func (h *FormHandler) VendorRegistrationStep(c echo.Context) error {
	var r forms.VendorRegistration
	if err := c.Bind(&r); err != nil {
		return badBody(c)
	}
	now := h.Now()
	return checkStep(c, forms.VendorRegistrationSteps, func(step int) error { return r.ValidateStep(step, now) })
}

type listEditReq struct {
	Form forms.VendorRegistration `json:"form"`
	forms.ListEdit
}

// EditVendorRegistration applies one list edit (add, set, remove, or a
// payment method toggle) and returns the updated form.
func (h *FormHandler) EditVendorRegistration(c echo.Context) error {
	var req listEditReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	r, err := req.Form.Edit(req.ListEdit)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"form": r})
}

// SubmitVendorRegistration validates the whole form and returns the
// vendor profile preview.
func (h *FormHandler) SubmitVendorRegistration(c echo.Context) error {
	var r forms.VendorRegistration
	if err := c.Bind(&r); err != nil {
		return badBody(c)
	}
	v, err := r.Build(h.Now())
	if err != nil {
		return fail(c, err)
	}
	ctx := c.Request().Context()
	uid, _ := middleware.UserID(c)
	logger.Info(ctx, "vendor registered",
		logger.String("vendor_id", v.ID),
		logger.String("name", v.Name),
		logger.String("user_id", uid),
	)
	return c.JSON(http.StatusCreated, echo.Map{"vendor": v, "next_view": navigation.ViewVendors})
}
