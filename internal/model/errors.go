package model

import "errors"

var (
	// ErrValidation marks input that failed field validation.  Callers
	// join it with per-field errors so handlers can report them.
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

// FieldError names a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Message }

// NewFieldError returns a *FieldError as an error.
func NewFieldError(field, msg string) error {
	return &FieldError{Field: field, Message: msg}
}

// Fields extracts every FieldError joined into err.
func Fields(err error) []FieldError {
	var out []FieldError
	var walk func(error)
	walk = func(e error) {
		if e == nil {
			return
		}
		if fe, ok := e.(*FieldError); ok {
			out = append(out, *fe)
			return
		}
		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(u.Unwrap())
		}
	}
	walk(err)
	return out
}

// Validation joins field errors with ErrValidation.  It returns nil when
// errs is empty.
func Validation(errs ...error) error {
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrValidation}, errs...)...)
}
