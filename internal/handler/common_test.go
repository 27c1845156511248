package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/eventistan/internal/model"
	"github.com/iliyamo/eventistan/internal/navigation"
	"github.com/iliyamo/eventistan/internal/repository"
	"github.com/iliyamo/eventistan/internal/session"
)

func newContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestPageParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query      string
		page, size int
	}{
		{"", 1, 20},
		{"?page=3&page_size=5", 3, 5},
		{"?page=-1&page_size=0", 1, 20},
		{"?page=x&page_size=1000", 1, 100},
	}
	for _, tt := range tests {
		c, _ := newContext("/v1/events" + tt.query)
		page, size := pageParams(c)
		assert.Equal(t, tt.page, page, tt.query)
		assert.Equal(t, tt.size, size, tt.query)
	}
}

func TestFail_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err    error
		status int
		msg    string
	}{
		{model.Validation(model.NewFieldError("seats", "is required")), http.StatusBadRequest, model.ErrValidation.Error()},
		{fmt.Errorf("repo: %w", repository.ErrEventNotFound), http.StatusNotFound, repository.ErrEventNotFound.Error()},
		{repository.ErrForbidden, http.StatusForbidden, repository.ErrForbidden.Error()},
		{repository.ErrInvalidCredentials, http.StatusUnauthorized, repository.ErrInvalidCredentials.Error()},
		{repository.ErrEmailExists, http.StatusConflict, repository.ErrEmailExists.Error()},
		{session.ErrNotFound, http.StatusNotFound, session.ErrNotFound.Error()},
		{fmt.Errorf("booking %w", model.ErrNotFound), http.StatusNotFound, model.ErrNotFound.Error()},
		{fmt.Errorf("booking.Complete: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, context.DeadlineExceeded.Error()},
		{errors.New("disk on fire"), http.StatusInternalServerError, "internal error"},
	}
	for _, tt := range tests {
		c, rec := newContext("/")
		_ = fail(c, tt.err)
		assert.Equal(t, tt.status, rec.Code, tt.err.Error())
		assert.Contains(t, rec.Body.String(), tt.msg)
	}
}

func TestFail_NavigationCarriesMessage(t *testing.T) {
	t.Parallel()

	_, err := navigation.Initial().Navigate("settings")
	c, rec := newContext("/")
	_ = fail(c, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"unknown view: \"settings\""`)
}

func TestFail_ValidationFields(t *testing.T) {
	t.Parallel()

	c, rec := newContext("/")
	_ = fail(c, model.Validation(
		model.NewFieldError("title", "is required"),
		model.NewFieldError("city", "is required"),
	))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"title"`)
	assert.Contains(t, rec.Body.String(), `"field":"city"`)
}
