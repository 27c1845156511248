// Package navigation models which screen a client is looking at.  A State
// is a plain value; every transition returns a new State and leaves the
// receiver untouched, so the same input always yields the same output.
package navigation

import (
	"errors"
	"fmt"
)

// View is one screen of the application.
type View string

const (
	ViewEvents             View = "events"
	ViewEventDetails       View = "event-details"
	ViewCreateEvent        View = "create-event"
	ViewVendors            View = "vendors"
	ViewVendorDetails      View = "vendor-details"
	ViewVendorRegistration View = "vendor-registration"
	ViewDashboard          View = "dashboard"
	ViewMyEventDetails     View = "my-event-details"
	ViewProfile            View = "profile"
	ViewLogin              View = "login"
	ViewRegister           View = "register"
	ViewForgotPassword     View = "forgot-password"
	ViewBooking            View = "booking"
	ViewBookingSuccess     View = "booking-success"
)

// AuthPage is the sub-page shown while signing in.
type AuthPage string

const (
	AuthLogin          AuthPage = "login"
	AuthRegister       AuthPage = "register"
	AuthForgotPassword AuthPage = "forgot-password"
)

var ErrUnknownView = errors.New("unknown view")

var views = map[View]bool{
	ViewEvents: true, ViewEventDetails: true, ViewCreateEvent: true, ViewVendors: true,
	ViewVendorDetails: true, ViewVendorRegistration: true, ViewDashboard: true,
	ViewMyEventDetails: true, ViewProfile: true, ViewLogin: true, ViewRegister: true,
	ViewForgotPassword: true, ViewBooking: true, ViewBookingSuccess: true,
}

var gated = map[View]bool{
	ViewDashboard:          true,
	ViewProfile:            true,
	ViewCreateEvent:        true,
	ViewVendorRegistration: true,
	ViewMyEventDetails:     true,
}

var parents = map[View]View{
	ViewEventDetails:       ViewEvents,
	ViewBooking:            ViewEventDetails,
	ViewBookingSuccess:     ViewEvents,
	ViewCreateEvent:        ViewDashboard,
	ViewProfile:            ViewDashboard,
	ViewVendorDetails:      ViewVendors,
	ViewVendorRegistration: ViewVendors,
	ViewMyEventDetails:     ViewDashboard,
	ViewRegister:           ViewLogin,
	ViewForgotPassword:     ViewLogin,
}

// ParseView returns ErrUnknownView for names outside the closed set.
func ParseView(s string) (View, error) {
	v := View(s)
	if !views[v] {
		return "", fmt.Errorf("%w: %q", ErrUnknownView, s)
	}
	return v, nil
}

// RequiresAuth reports whether v is only reachable once signed in.
func (v View) RequiresAuth() bool { return gated[v] }

// State is what the client currently sees.
type State struct {
	View           View     `json:"view"`
	AuthPage       AuthPage `json:"auth_page"`
	Authenticated  bool     `json:"authenticated"`
	SignedOut      bool     `json:"signed_out,omitempty"`
	SelectedEvent  string   `json:"selected_event_id,omitempty"`
	SelectedVendor string   `json:"selected_vendor_id,omitempty"`
	BookingID      string   `json:"booking_id,omitempty"`
}

// Initial is the state of a fresh session: the public event list.
func Initial() State {
	return State{View: ViewEvents, AuthPage: AuthLogin}
}

func (s State) toLogin() State {
	s.View = ViewLogin
	s.AuthPage = AuthLogin
	return s
}

// Navigate switches to the named view.  Gated views redirect to the login
// page while unauthenticated.
func (s State) Navigate(name string) (State, error) {
	v, err := ParseView(name)
	if err != nil {
		return s, err
	}
	if v.RequiresAuth() && !s.Authenticated {
		return s.toLogin(), nil
	}
	s.View = v
	switch v {
	case ViewLogin, ViewRegister, ViewForgotPassword:
		s.AuthPage = AuthPage(v)
	}
	return s, nil
}

// AuthNavigate moves between the sign-in sub-pages.
func (s State) AuthNavigate(page string) (State, error) {
	switch p := AuthPage(page); p {
	case AuthLogin, AuthRegister, AuthForgotPassword:
		s.AuthPage = p
		s.View = View(p)
		return s, nil
	}
	return s, fmt.Errorf("%w: %q", ErrUnknownView, page)
}

// Login marks the session authenticated and opens the dashboard.
func (s State) Login() State {
	s.Authenticated = true
	s.SignedOut = false
	s.View = ViewDashboard
	return s
}

// Register behaves like Login.
func (s State) Register() State { return s.Login() }

// Logout drops authentication and returns to the event list.  SignedOut
// stays set until the next Login or Register.
func (s State) Logout() State {
	s.Authenticated = false
	s.SignedOut = true
	s.View = ViewEvents
	s.AuthPage = AuthLogin
	return s
}

func (s State) SelectEvent(eventID string) State {
	s.SelectedEvent = eventID
	s.View = ViewEventDetails
	return s
}

func (s State) SelectVendor(vendorID string) State {
	s.SelectedVendor = vendorID
	s.View = ViewVendorDetails
	return s
}

func (s State) BookTicket(eventID string) State {
	s.SelectedEvent = eventID
	s.View = ViewBooking
	return s
}

func (s State) CompleteBooking(bookingID string) State {
	s.BookingID = bookingID
	s.View = ViewBookingSuccess
	return s
}

// EventCreated returns to the dashboard after the create-event wizard.
func (s State) EventCreated() State {
	if !s.Authenticated {
		return s.toLogin()
	}
	s.View = ViewDashboard
	return s
}

func (s State) VendorRegistered() State {
	s.View = ViewVendors
	return s
}

// OpenMyEvent shows the organizer view of eventID.
func (s State) OpenMyEvent(eventID string) State {
	if !s.Authenticated {
		return s.toLogin()
	}
	s.SelectedEvent = eventID
	s.View = ViewMyEventDetails
	return s
}

// Back goes to the parent of the current view.  Views without a parent
// stay where they are.
func (s State) Back() State {
	p, ok := parents[s.View]
	if !ok {
		return s
	}
	if p.RequiresAuth() && !s.Authenticated {
		return s.toLogin()
	}
	s.View = p
	if p == ViewLogin {
		s.AuthPage = AuthLogin
	}
	return s
}

// Screen is what should be rendered for a State.  Render is false when the
// view needs a selected entity that is missing, or when a gated view is
// reached without authentication.
type Screen struct {
	View      View   `json:"view"`
	Render    bool   `json:"render"`
	EventID   string `json:"event_id,omitempty"`
	VendorID  string `json:"vendor_id,omitempty"`
	BookingID string `json:"booking_id,omitempty"`
}

// Screen resolves the state to the screen to render.
func (s State) Screen() Screen {
	out := Screen{View: s.View, Render: true}
	if s.View.RequiresAuth() && !s.Authenticated {
		out.Render = false
		return out
	}
	switch s.View {
	case ViewEventDetails, ViewBooking, ViewMyEventDetails:
		out.EventID = s.SelectedEvent
		out.Render = s.SelectedEvent != ""
	case ViewBookingSuccess:
		out.EventID = s.SelectedEvent
		out.BookingID = s.BookingID
		out.Render = s.SelectedEvent != ""
	case ViewVendorDetails:
		out.VendorID = s.SelectedVendor
		out.Render = s.SelectedVendor != ""
	}
	return out
}
