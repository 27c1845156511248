// Package forms validates the event creation and vendor registration
// wizards step by step and turns a finished form into a preview record.
// Nothing is stored.
package forms

import (
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/iliyamo/eventistan/internal/model"
)

// Cities offered by both wizards.
var Cities = []string{"Karachi", "Lahore", "Islamabad", "Faisalabad", "Rawalpindi", "Multan", "Peshawar", "Quetta"}

type checker struct {
	errs []error
}

func (c *checker) add(field, msg string) { c.errs = append(c.errs, model.NewFieldError(field, msg)) }

func (c *checker) required(field, v string) bool {
	if strings.TrimSpace(v) == "" {
		c.add(field, "is required")
		return false
	}
	return true
}

func (c *checker) email(field, v string) {
	if _, err := mail.ParseAddress(strings.TrimSpace(v)); err != nil {
		c.add(field, "is not a valid address")
	}
}

func (c *checker) date(field, v string) (time.Time, bool) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(v))
	if err != nil {
		c.add(field, "must be YYYY-MM-DD")
		return time.Time{}, false
	}
	return t, true
}

func (c *checker) clock(field, v string) (time.Time, bool) {
	t, err := time.Parse("15:04", strings.TrimSpace(v))
	if err != nil {
		c.add(field, "must be HH:MM")
		return time.Time{}, false
	}
	return t, true
}

func (c *checker) link(field, v string) {
	if strings.TrimSpace(v) == "" {
		return
	}
	u, err := url.Parse(strings.TrimSpace(v))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		c.add(field, "must be an http(s) URL")
	}
}

func (c *checker) oneOf(field, v string, allowed []string) {
	for _, a := range allowed {
		if v == a {
			return
		}
	}
	c.add(field, "is not a supported value")
}

func (c *checker) err() error { return model.Validation(c.errs...) }

// validateSteps runs check for steps 1..n and flattens the field errors
// into a single validation error.
func validateSteps(n int, check func(step int) error) error {
	var c checker
	for step := 1; step <= n; step++ {
		for _, fe := range model.Fields(check(step)) {
			c.add(fe.Field, fe.Message)
		}
	}
	return c.err()
}
