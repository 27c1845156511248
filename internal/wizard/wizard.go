// Package wizard tracks the current step of a multi-step form.
package wizard

import "errors"

var ErrNoSteps = errors.New("wizard needs at least one step")

// Steps is a 1-based step cursor bounded by [1, Max].
type Steps struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// New starts at step 1.
func New(max int) (Steps, error) {
	if max < 1 {
		return Steps{}, ErrNoSteps
	}
	return Steps{Current: 1, Max: max}, nil
}

// At returns a cursor positioned at step n, clamped to the bounds.
func (s Steps) At(n int) Steps {
	s.Current = Clamp(n, 1, s.Max)
	return s
}

func (s Steps) Next() Steps { return s.At(s.Current + 1) }

func (s Steps) Prev() Steps { return s.At(s.Current - 1) }

func (s Steps) IsFirst() bool { return s.Current <= 1 }

func (s Steps) IsLast() bool { return s.Current >= s.Max }

// Clamp limits n to [lo, hi].  When hi < lo the result is lo.
func Clamp(n, lo, hi int) int {
	if n > hi {
		n = hi
	}
	if n < lo {
		n = lo
	}
	return n
}
