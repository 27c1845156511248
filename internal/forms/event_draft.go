package forms

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/eventistan/internal/model"
	"github.com/iliyamo/eventistan/internal/wizard"
)

// EventDraftSteps is the number of steps of the event creation wizard:
// basic info, location and details.
const EventDraftSteps = 3

// EventDraft is the event creation form as the client fills it in.
// Tags, amenities and requirements are comma separated.
type EventDraft struct {
	Title              string                   `json:"title"`
	Description        string                   `json:"description"`
	Type               model.EventType          `json:"type"`
	Date               string                   `json:"date"`
	Time               string                   `json:"time"`
	Venue              string                   `json:"venue"`
	Address            string                   `json:"address"`
	City               string                   `json:"city"`
	Capacity           int                      `json:"capacity"`
	Price              *decimal.Decimal         `json:"price,omitempty"`
	IsPublic           *bool                    `json:"is_public,omitempty"`
	RSVPDeadline       string                   `json:"rsvp_deadline,omitempty"`
	Tags               string                   `json:"tags,omitempty"`
	Amenities          string                   `json:"amenities,omitempty"`
	Requirements       string                   `json:"requirements,omitempty"`
	ContactPhone       string                   `json:"contact_phone,omitempty"`
	ContactEmail       string                   `json:"contact_email,omitempty"`
	SeatingArrangement model.SeatingArrangement `json:"seating_arrangement,omitempty"`
}

// ValidateStep checks the fields of one step.  step is clamped to the
// wizard bounds first.
func (d EventDraft) ValidateStep(step int) error {
	var c checker
	switch wizard.Clamp(step, 1, EventDraftSteps) {
	case 1:
		c.required("title", d.Title)
		if !d.Type.Valid() {
			c.add("type", "is required")
		}
		c.required("description", d.Description)
		if c.required("date", d.Date) {
			c.date("date", d.Date)
		}
		if c.required("time", d.Time) {
			c.clock("time", d.Time)
		}
	case 2:
		c.required("venue", d.Venue)
		c.required("address", d.Address)
		if c.required("city", d.City) {
			c.oneOf("city", d.City, Cities)
		}
		if d.Capacity < 1 {
			c.add("capacity", "must be at least 1")
		}
		if d.SeatingArrangement != "" && !d.SeatingArrangement.Valid() {
			c.add("seating_arrangement", "must be open, assigned or tables")
		}
		if d.Price != nil && d.Price.IsNegative() {
			c.add("price", "must not be negative")
		}
		if strings.TrimSpace(d.RSVPDeadline) != "" {
			deadline, ok := c.date("rsvp_deadline", d.RSVPDeadline)
			date, err := time.Parse(time.DateOnly, strings.TrimSpace(d.Date))
			if ok && err == nil && deadline.After(date) {
				c.add("rsvp_deadline", "must not be after the event date")
			}
		}
	case 3:
		if strings.TrimSpace(d.ContactEmail) != "" {
			c.email("contact_email", d.ContactEmail)
		}
	}
	return c.err()
}

// Validate checks every step and joins the problems.
func (d EventDraft) Validate() error {
	return validateSteps(EventDraftSteps, d.ValidateStep)
}

// Build validates d and turns it into a draft event organized by
// organizer.  The event is not stored anywhere.
func (d EventDraft) Build(organizer model.User, now time.Time) (model.Event, error) {
	if err := d.Validate(); err != nil {
		return model.Event{}, err
	}
	seating := d.SeatingArrangement
	if seating == "" {
		seating = model.SeatingOpen
	}
	public := true
	if d.IsPublic != nil {
		public = *d.IsPublic
	}
	e := model.Event{
		ID:                 uuid.NewString(),
		Title:              strings.TrimSpace(d.Title),
		Description:        strings.TrimSpace(d.Description),
		Type:               d.Type,
		Date:               strings.TrimSpace(d.Date),
		Time:               strings.TrimSpace(d.Time),
		Venue:              strings.TrimSpace(d.Venue),
		Address:            strings.TrimSpace(d.Address),
		City:               d.City,
		Organizer:          organizer.Clone(),
		IsPublic:           public,
		Capacity:           d.Capacity,
		RSVPDeadline:       strings.TrimSpace(d.RSVPDeadline),
		Tags:               SplitCSV(d.Tags),
		Amenities:          SplitCSV(d.Amenities),
		Requirements:       SplitCSV(d.Requirements),
		SeatingArrangement: seating,
		AvailableSeats:     d.Capacity,
		Status:             model.EventStatusDraft,
		CreatedAt:          now.UTC(),
		UpdatedAt:          now.UTC(),
	}
	if d.Price != nil && !d.Price.IsZero() {
		p := *d.Price
		e.Price = &p
	}
	if d.ContactPhone != "" || d.ContactEmail != "" {
		e.ContactInfo = &model.ContactInfo{
			Phone: strings.TrimSpace(d.ContactPhone),
			Email: strings.TrimSpace(d.ContactEmail),
		}
	}
	return e, nil
}
