// Package repository defines error types that are reused across the
// catalog repositories.  These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios.  For
// example, ErrForbidden indicates that the caller asked for an
// organizer-only view of an event organized by someone else, while
// ErrInvalidFilter signals a search parameter outside the accepted set.
package repository

import (
	"errors"
	"fmt"

	"github.com/iliyamo/eventistan/internal/model"
)

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own.  Handlers should translate this into an HTTP
// 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidFilter is returned by the search methods for an unknown
// price bucket or rating.  Handlers should translate this into an HTTP 400
// response.
var ErrInvalidFilter = errors.New("invalid filter")

// The not-found errors all wrap model.ErrNotFound.
var (
	ErrEventNotFound         = fmt.Errorf("event %w", model.ErrNotFound)
	ErrVendorNotFound        = fmt.Errorf("vendor %w", model.ErrNotFound)
	ErrUserNotFound          = fmt.Errorf("user %w", model.ErrNotFound)
	ErrPaymentMethodNotFound = fmt.Errorf("payment method %w", model.ErrNotFound)
)
