package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// VendorCategory is the service a vendor sells.
type VendorCategory string

const (
	CategoryCatering    VendorCategory = "catering"
	CategoryVenue       VendorCategory = "venue"
	CategoryPhotography VendorCategory = "photography"
	CategoryDecoration  VendorCategory = "decoration"
	CategoryDJ          VendorCategory = "dj"
	CategoryTransport   VendorCategory = "transport"
	CategoryPlanning    VendorCategory = "planning"
	CategorySecurity    VendorCategory = "security"
)

// Valid reports whether c is a known vendor category.
func (c VendorCategory) Valid() bool {
	switch c {
	case CategoryCatering, CategoryVenue, CategoryPhotography, CategoryDecoration,
		CategoryDJ, CategoryTransport, CategoryPlanning, CategorySecurity:
		return true
	}
	return false
}

// PriceRange is a vendor's pricing tier.
type PriceRange string

const (
	PriceBudget   PriceRange = "budget"
	PriceMidRange PriceRange = "mid-range"
	PricePremium  PriceRange = "premium"
)

// Valid reports whether p is a known price range.
func (p PriceRange) Valid() bool {
	return p == PriceBudget || p == PriceMidRange || p == PricePremium
}

// VendorContact holds how to reach a vendor.
type VendorContact struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address,omitempty"`
	Website string `json:"website,omitempty"`
}

// DayHours is the opening window of a single weekday.  Open and Close
// are HH:MM.
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	IsOpen bool   `json:"is_open"`
}

// Weekdays lists the keys used in BusinessHours, Monday first.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// BusinessHours maps a lower-case weekday name to its hours.
type BusinessHours map[string]DayHours

// On returns the hours for the weekday of t.
func (b BusinessHours) On(t time.Time) (DayHours, bool) {
	h, ok := b[strings.ToLower(t.Weekday().String())]
	return h, ok
}

// DefaultBusinessHours is Monday to Friday 09:00-18:00, Saturday
// 10:00-16:00 and Sunday closed.
func DefaultBusinessHours() BusinessHours {
	h := BusinessHours{}
	for _, day := range Weekdays[:5] {
		h[day] = DayHours{Open: "09:00", Close: "18:00", IsOpen: true}
	}
	h["saturday"] = DayHours{Open: "10:00", Close: "16:00", IsOpen: true}
	h["sunday"] = DayHours{Open: "10:00", Close: "16:00", IsOpen: false}
	return h
}

// VendorPortfolioItem is a past job a vendor showcases.
type VendorPortfolioItem struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Images            []string `json:"images"`
	EventType         string   `json:"event_type"`
	CompletedDate     string   `json:"completed_date"`
	ClientTestimonial string   `json:"client_testimonial,omitempty"`
	Budget            string   `json:"budget,omitempty"`
}

// Vendor is a service provider listed in the marketplace.
type Vendor struct {
	ID                 string                `json:"id"`
	Name               string                `json:"name"`
	Category           VendorCategory        `json:"category"`
	Description        string                `json:"description"`
	City               string                `json:"city"`
	Rating             float64               `json:"rating"`
	Reviews            int                   `json:"reviews"`
	PriceRange         PriceRange            `json:"price_range"`
	Image              string                `json:"image"`
	Gallery            []string              `json:"gallery"`
	Contact            VendorContact         `json:"contact"`
	Services           []string              `json:"services"`
	Portfolio          []VendorPortfolioItem `json:"portfolio,omitempty"`
	BusinessHours      BusinessHours         `json:"business_hours,omitempty"`
	SocialLinks        *SocialLinks          `json:"social_links,omitempty"`
	IsVerified         bool                  `json:"is_verified"`
	JoinedDate         string                `json:"joined_date"`
	CompletedEvents    int                   `json:"completed_events"`
	ResponseTime       string                `json:"response_time"`
	CancellationPolicy string                `json:"cancellation_policy,omitempty"`
	PaymentMethods     []string              `json:"payment_methods"`
	MinimumOrder       *decimal.Decimal      `json:"minimum_order,omitempty"`
	ServiceAreas       []string              `json:"service_areas"`
	Specializations    []string              `json:"specializations,omitempty"`
	Certifications     []string              `json:"certifications,omitempty"`
	TeamSize           int                   `json:"team_size,omitempty"`
	EstablishedYear    int                   `json:"established_year,omitempty"`
}

// Clone returns a deep copy of v.
func (v Vendor) Clone() Vendor {
	out := v
	out.Gallery = cloneStrings(v.Gallery)
	out.Services = cloneStrings(v.Services)
	out.PaymentMethods = cloneStrings(v.PaymentMethods)
	out.ServiceAreas = cloneStrings(v.ServiceAreas)
	out.Specializations = cloneStrings(v.Specializations)
	out.Certifications = cloneStrings(v.Certifications)
	if v.Portfolio != nil {
		out.Portfolio = make([]VendorPortfolioItem, len(v.Portfolio))
		for i, item := range v.Portfolio {
			item.Images = cloneStrings(item.Images)
			out.Portfolio[i] = item
		}
	}
	if v.BusinessHours != nil {
		out.BusinessHours = make(BusinessHours, len(v.BusinessHours))
		for day, h := range v.BusinessHours {
			out.BusinessHours[day] = h
		}
	}
	if v.SocialLinks != nil {
		links := *v.SocialLinks
		out.SocialLinks = &links
	}
	if v.MinimumOrder != nil {
		m := *v.MinimumOrder
		out.MinimumOrder = &m
	}
	return out
}

// ReviewResponse is a vendor's public reply to a review.
type ReviewResponse struct {
	Message     string    `json:"message"`
	RespondedAt time.Time `json:"responded_at"`
}

// VendorReview is a rating left by a user for a vendor.
type VendorReview struct {
	ID         string          `json:"id"`
	VendorID   string          `json:"vendor_id"`
	UserID     string          `json:"user_id"`
	User       User            `json:"user"`
	Rating     float64         `json:"rating"`
	Comment    string          `json:"comment"`
	EventID    string          `json:"event_id,omitempty"`
	EventTitle string          `json:"event_title,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	IsVerified bool            `json:"is_verified"`
	Response   *ReviewResponse `json:"response,omitempty"`
}

// InquiryStatus tracks a vendor inquiry.
type InquiryStatus string

const (
	InquiryPending   InquiryStatus = "pending"
	InquiryResponded InquiryStatus = "responded"
	InquiryClosed    InquiryStatus = "closed"
)

// InquiryEventDetails describes the event a prospective client is planning.
type InquiryEventDetails struct {
	Date       string `json:"date"`
	Venue      string `json:"venue"`
	GuestCount int    `json:"guest_count"`
	Budget     string `json:"budget"`
}

// VendorInquiry is a message sent to a vendor.  Inquiries are logged and
// acknowledged only.
type VendorInquiry struct {
	ID           string               `json:"id"`
	VendorID     string               `json:"vendor_id"`
	UserID       string               `json:"user_id,omitempty"`
	EventID      string               `json:"event_id,omitempty"`
	Message      string               `json:"message"`
	ContactInfo  BookingContact       `json:"contact_info"`
	EventDetails *InquiryEventDetails `json:"event_details,omitempty"`
	Status       InquiryStatus        `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
}
