package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/eventistan/internal/dashboard"
	"github.com/iliyamo/eventistan/internal/forms"
	"github.com/iliyamo/eventistan/internal/logger"
	"github.com/iliyamo/eventistan/internal/model"
	"github.com/iliyamo/eventistan/internal/navigation"
	"github.com/iliyamo/eventistan/internal/repository"
	"github.com/iliyamo/eventistan/internal/session"
	"github.com/iliyamo/eventistan/internal/utils"
)

// pageParams reads page/page_size with the usual defaults: page 1, 20 per
// page, at most 100.
func pageParams(c echo.Context) (page, size int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	size, _ = strconv.Atoi(c.QueryParam("page_size"))
	if size < 1 {
		size = 20
	}
	if size > 100 {
		size = 100
	}
	return page, size
}

// statusFor maps the sentinel errors of the domain packages to an HTTP
// status and the message shown to the client.
var statusFor = []struct {
	err    error
	status int
}{
	{model.ErrValidation, http.StatusBadRequest},
	{repository.ErrInvalidFilter, http.StatusBadRequest},
	{dashboard.ErrInvalidStatusFilter, http.StatusBadRequest},
	{navigation.ErrUnknownView, http.StatusBadRequest},
	{navigation.ErrUnknownAction, http.StatusBadRequest},
	{navigation.ErrMissingTarget, http.StatusBadRequest},
	{utils.ErrWeakPassword, http.StatusBadRequest},
	{forms.ErrIndexOutOfRange, http.StatusBadRequest},
	{repository.ErrInvalidCredentials, http.StatusUnauthorized},
	{repository.ErrForbidden, http.StatusForbidden},
	{repository.ErrEventNotFound, http.StatusNotFound},
	{repository.ErrVendorNotFound, http.StatusNotFound},
	{repository.ErrUserNotFound, http.StatusNotFound},
	{repository.ErrPaymentMethodNotFound, http.StatusNotFound},
	{session.ErrNotFound, http.StatusNotFound},
	{model.ErrNotFound, http.StatusNotFound},
	{repository.ErrEmailExists, http.StatusConflict},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
	{context.Canceled, http.StatusServiceUnavailable},
}

// fail writes err as {"error": ...}.  Validation errors also carry the
// offending fields.  Unknown errors are logged and reported as 500.
func fail(c echo.Context, err error) error {
	for _, m := range statusFor {
		if !errors.Is(err, m.err) {
			continue
		}
		body := echo.Map{"error": m.err.Error()}
		if fields := model.Fields(err); len(fields) > 0 {
			body["fields"] = fields
		}
		if errors.Is(err, navigation.ErrUnknownView) || errors.Is(err, navigation.ErrUnknownAction) ||
			errors.Is(err, navigation.ErrMissingTarget) {
			body["message"] = err.Error()
		}
		return c.JSON(m.status, body)
	}
	logger.Error(c.Request().Context(), "request failed",
		logger.String("route", c.Path()),
		logger.ErrorF(err),
	)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}

func badBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
}

// shareURL is the absolute URL of path on this server.
func shareURL(c echo.Context, path string) string {
	return c.Scheme() + "://" + c.Request().Host + path
}

// SharePayload is what a client hands to the platform share sheet.
type SharePayload struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}
