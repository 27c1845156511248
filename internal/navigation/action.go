package navigation

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrMissingTarget = errors.New("action needs a target id")
)

// Action is a serialized transition, as posted by clients.
type Action struct {
	Type      string `json:"type"`
	View      string `json:"view,omitempty"`
	Page      string `json:"page,omitempty"`
	EventID   string `json:"event_id,omitempty"`
	VendorID  string `json:"vendor_id,omitempty"`
	BookingID string `json:"booking_id,omitempty"`
}

func need(id, action string) error {
	if id == "" {
		return fmt.Errorf("%w: %s", ErrMissingTarget, action)
	}
	return nil
}

// Apply runs a. On error the returned State equals s.
func (s State) Apply(a Action) (State, error) {
	switch a.Type {
	case "navigate":
		return s.Navigate(a.View)
	case "auth-navigate":
		return s.AuthNavigate(a.Page)
	case "login":
		return s.Login(), nil
	case "register":
		return s.Register(), nil
	case "logout":
		return s.Logout(), nil
	case "select-event":
		if err := need(a.EventID, a.Type); err != nil {
			return s, err
		}
		return s.SelectEvent(a.EventID), nil
	case "select-vendor":
		if err := need(a.VendorID, a.Type); err != nil {
			return s, err
		}
		return s.SelectVendor(a.VendorID), nil
	case "book-ticket":
		if err := need(a.EventID, a.Type); err != nil {
			return s, err
		}
		return s.BookTicket(a.EventID), nil
	case "complete-booking":
		if err := need(a.BookingID, a.Type); err != nil {
			return s, err
		}
		return s.CompleteBooking(a.BookingID), nil
	case "event-created":
		return s.EventCreated(), nil
	case "vendor-registered":
		return s.VendorRegistered(), nil
	case "open-my-event":
		if err := need(a.EventID, a.Type); err != nil {
			return s, err
		}
		return s.OpenMyEvent(a.EventID), nil
	case "back":
		return s.Back(), nil
	}
	return s, fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
}

// AuthenticatesSession reports whether a needs a signed-in caller to be
// accepted.
func (a Action) AuthenticatesSession() bool {
	return a.Type == "login" || a.Type == "register"
}
