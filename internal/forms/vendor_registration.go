package forms

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/eventistan/internal/model"
	"github.com/iliyamo/eventistan/internal/wizard"
)

// VendorRegistrationSteps is the number of steps of the vendor wizard:
// basic info, business details, services and hours, gallery and social.
const VendorRegistrationSteps = 4

// PaymentOptions are the payment methods a vendor can declare.
var PaymentOptions = []string{"Cash", "Bank Transfer", "JazzCash", "EasyPaisa", "Cheque"}

// VendorRegistration is the vendor registration form.  The list fields
// hold one entry per input box, blanks included.
type VendorRegistration struct {
	Name        string               `json:"name"`
	Category    model.VendorCategory `json:"category"`
	Description string               `json:"description"`
	City        string               `json:"city"`
	Address     string               `json:"address"`
	Phone       string               `json:"phone"`
	Email       string               `json:"email"`
	Website     string               `json:"website,omitempty"`

	EstablishedYear int                 `json:"established_year,omitempty"`
	TeamSize        int                 `json:"team_size,omitempty"`
	PriceRange      model.PriceRange    `json:"price_range"`
	MinimumOrder    *decimal.Decimal    `json:"minimum_order,omitempty"`
	ServiceAreas    []string            `json:"service_areas"`
	Specializations []string            `json:"specializations"`
	Certifications  []string            `json:"certifications"`
	Services        []string            `json:"services"`
	BusinessHours   model.BusinessHours `json:"business_hours"`

	SocialLinks        model.SocialLinks `json:"social_links"`
	PaymentMethods     []string          `json:"payment_methods"`
	CancellationPolicy string            `json:"cancellation_policy,omitempty"`
	Gallery            []string          `json:"gallery"`
}

// NewVendorRegistration returns an empty form: one blank entry per list
// and the default business hours.
func NewVendorRegistration() VendorRegistration {
	return VendorRegistration{
		ServiceAreas:    []string{""},
		Specializations: []string{""},
		Certifications:  []string{""},
		Services:        []string{""},
		Gallery:         []string{""},
		BusinessHours:   model.DefaultBusinessHours(),
		PaymentMethods:  []string{},
	}
}

// TogglePaymentMethod returns a copy of r with method switched on or off.
func (r VendorRegistration) TogglePaymentMethod(method string) (VendorRegistration, error) {
	if !lo.Contains(PaymentOptions, method) {
		return r, model.Validation(model.NewFieldError("payment_methods", "is not a supported value"))
	}
	r.PaymentMethods = Toggle(r.PaymentMethods, method)
	return r, nil
}

// ValidateStep checks the fields of one step.  step is clamped to the
// wizard bounds first.
func (r VendorRegistration) ValidateStep(step int, now time.Time) error {
	var c checker
	switch wizard.Clamp(step, 1, VendorRegistrationSteps) {
	case 1:
		c.required("name", r.Name)
		if !r.Category.Valid() {
			c.add("category", "is required")
		}
		c.required("description", r.Description)
		if c.required("city", r.City) {
			c.oneOf("city", r.City, Cities)
		}
		c.required("address", r.Address)
		c.required("phone", r.Phone)
		if c.required("email", r.Email) {
			c.email("email", r.Email)
		}
		c.link("website", r.Website)
	case 2:
		if !r.PriceRange.Valid() {
			c.add("price_range", "must be budget, mid-range or premium")
		}
		if r.EstablishedYear != 0 && (r.EstablishedYear < 1900 || r.EstablishedYear > now.Year()) {
			c.add("established_year", "is out of range")
		}
		if r.TeamSize < 0 {
			c.add("team_size", "must not be negative")
		}
		if r.MinimumOrder != nil && r.MinimumOrder.IsNegative() {
			c.add("minimum_order", "must not be negative")
		}
	case 3:
		if len(Compact(r.Services)) == 0 {
			c.add("services", "at least one service is required")
		}
		for _, day := range model.Weekdays {
			h, ok := r.BusinessHours[day]
			if !ok || !h.IsOpen {
				continue
			}
			field := "business_hours." + day
			open, okOpen := c.clock(field+".open", h.Open)
			closing, okClose := c.clock(field+".close", h.Close)
			if okOpen && okClose && !open.Before(closing) {
				c.add(field, "must open before it closes")
			}
		}
	case 4:
		c.link("social_links.facebook", r.SocialLinks.Facebook)
		c.link("social_links.instagram", r.SocialLinks.Instagram)
		c.link("social_links.website", r.SocialLinks.Website)
		for _, m := range r.PaymentMethods {
			if !lo.Contains(PaymentOptions, m) {
				c.add("payment_methods", "is not a supported value")
				break
			}
		}
		for _, g := range Compact(r.Gallery) {
			c.link("gallery", g)
		}
	}
	return c.err()
}

// Validate checks every step and joins the problems.
func (r VendorRegistration) Validate(now time.Time) error {
	return validateSteps(VendorRegistrationSteps, func(step int) error { return r.ValidateStep(step, now) })
}

// Build validates r and returns the vendor profile preview.  Blank list
// entries and unknown weekdays are dropped.
func (r VendorRegistration) Build(now time.Time) (model.Vendor, error) {
	if err := r.Validate(now); err != nil {
		return model.Vendor{}, err
	}
	hours := lo.PickBy(r.BusinessHours, func(day string, _ model.DayHours) bool {
		return lo.Contains(model.Weekdays, day)
	})
	v := model.Vendor{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(r.Name),
		Category:    r.Category,
		Description: strings.TrimSpace(r.Description),
		City:        r.City,
		PriceRange:  r.PriceRange,
		Gallery:     Compact(r.Gallery),
		Contact: model.VendorContact{
			Phone:   strings.TrimSpace(r.Phone),
			Email:   strings.TrimSpace(r.Email),
			Address: strings.TrimSpace(r.Address),
			Website: strings.TrimSpace(r.Website),
		},
		Services:           Compact(r.Services),
		BusinessHours:      hours,
		JoinedDate:         now.UTC().Format(time.DateOnly),
		ResponseTime:       "Within 24 hours",
		CancellationPolicy: strings.TrimSpace(r.CancellationPolicy),
		PaymentMethods:     lo.Uniq(r.PaymentMethods),
		ServiceAreas:       Compact(r.ServiceAreas),
		Specializations:    Compact(r.Specializations),
		Certifications:     Compact(r.Certifications),
		TeamSize:           r.TeamSize,
		EstablishedYear:    r.EstablishedYear,
	}
	if len(v.Gallery) > 0 {
		v.Image = v.Gallery[0]
	}
	if r.SocialLinks != (model.SocialLinks{}) {
		links := r.SocialLinks
		v.SocialLinks = &links
	}
	if r.MinimumOrder != nil {
		m := *r.MinimumOrder
		v.MinimumOrder = &m
	}
	return v, nil
}

// ListEdit is one change to a growable list of the form.  Op is add, set
// or remove; the payment_methods list only takes toggle.
type ListEdit struct {
	List  string `json:"list"`
	Op    string `json:"op"`
	Index int    `json:"index"`
	Value string `json:"value"`
}

// Edit returns a copy of r with e applied.  Index errors wrap
// ErrIndexOutOfRange; unknown lists or ops are validation errors.
func (r VendorRegistration) Edit(e ListEdit) (VendorRegistration, error) {
	if e.List == "payment_methods" {
		if e.Op != "toggle" {
			return r, model.Validation(model.NewFieldError("op", "payment_methods only supports toggle"))
		}
		return r.TogglePaymentMethod(e.Value)
	}

	lists := map[string]*[]string{
		"service_areas":   &r.ServiceAreas,
		"specializations": &r.Specializations,
		"certifications":  &r.Certifications,
		"services":        &r.Services,
		"gallery":         &r.Gallery,
	}
	list, ok := lists[e.List]
	if !ok {
		return r, model.Validation(model.NewFieldError("list", "is not a list of the form"))
	}

	var (
		out []string
		err error
	)
	switch e.Op {
	case "add":
		out = AddItem(*list)
	case "set":
		out, err = SetItem(*list, e.Index, e.Value)
	case "remove":
		out, err = RemoveItem(*list, e.Index)
	default:
		return r, model.Validation(model.NewFieldError("op", "must be add, set or remove"))
	}
	if err != nil {
		return r, fmt.Errorf("%s[%d]: %w", e.List, e.Index, err)
	}
	*list = out
	return r, nil
}
