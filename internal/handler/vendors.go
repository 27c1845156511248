package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/eventistan/internal/dashboard"
	"github.com/iliyamo/eventistan/internal/logger"
	"github.com/iliyamo/eventistan/internal/middleware"
	"github.com/iliyamo/eventistan/internal/model"
	"github.com/iliyamo/eventistan/internal/repository"
)

// VendorHandler serves the vendor marketplace.
type VendorHandler struct {
	Vendors *repository.VendorRepo
	Now     func() time.Time
}

func NewVendorHandler(vendors *repository.VendorRepo) *VendorHandler {
	return &VendorHandler{Vendors: vendors, Now: time.Now}
}

// ListVendors filters the marketplace.  Query params: q, city, category,
// price_range, rating ("4+ Stars" or a number), page, page_size.
func (h *VendorHandler) ListVendors(c echo.Context) error {
	rating, err := repository.ParseMinRating(c.QueryParam("rating"))
	if err != nil {
		return fail(c, err)
	}
	page, ps := pageParams(c)

	q := repository.VendorSearchQuery{
		Query:      strings.TrimSpace(c.QueryParam("q")),
		City:       strings.TrimSpace(c.QueryParam("city")),
		Category:   strings.TrimSpace(c.QueryParam("category")),
		PriceRange: strings.TrimSpace(c.QueryParam("price_range")),
		MinRating:  rating,
		Page:       page,
		PageSize:   ps,
	}
	items, total, err := h.Vendors.Search(c.Request().Context(), q)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"data":      items,
		"total":     total,
		"page":      page,
		"page_size": ps,
	})
}

// VendorDetails is the vendor details screen.
type VendorDetails struct {
	Vendor        model.Vendor            `json:"vendor"`
	Reviews       []model.VendorReview    `json:"reviews"`
	ReviewSummary dashboard.ReviewSummary `json:"review_summary"`
	TodayHours    string                  `json:"today_hours"`
	MinimumOrder  string                  `json:"minimum_order_label,omitempty"`
}

// GetVendor returns a vendor with its reviews, the rating distribution and
// whether it is open today.
func (h *VendorHandler) GetVendor(c echo.Context) error {
	ctx := c.Request().Context()
	v, err := h.Vendors.GetByID(ctx, c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	reviews, err := h.Vendors.Reviews(ctx, v.ID)
	if err != nil {
		return fail(c, err)
	}
	out := VendorDetails{
		Vendor:        v,
		Reviews:       reviews,
		ReviewSummary: dashboard.NewReviewSummary(v, reviews),
		TodayHours:    dashboard.TodayHours(v, h.Now()),
	}
	if v.MinimumOrder != nil {
		out.MinimumOrder = model.FormatRupees(*v.MinimumOrder)
	}
	return c.JSON(http.StatusOK, out)
}

// ShareVendor returns the share sheet payload of a vendor.
func (h *VendorHandler) ShareVendor(c echo.Context) error {
	v, err := h.Vendors.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, SharePayload{
		Title: v.Name,
		Text:  v.Description,
		URL:   shareURL(c, "/v1/vendors/"+v.ID),
	})
}

type inquiryReq struct {
	Message      string                     `json:"message"`
	EventID      string                     `json:"event_id"`
	ContactInfo  model.BookingContact       `json:"contact_info"`
	EventDetails *model.InquiryEventDetails `json:"event_details"`
}

func (r inquiryReq) validate() error {
	var errs []error
	if strings.TrimSpace(r.Message) == "" {
		errs = append(errs, model.NewFieldError("message", "is required"))
	}
	if strings.TrimSpace(r.ContactInfo.Name) == "" {
		errs = append(errs, model.NewFieldError("contact_info.name", "is required"))
	}
	if strings.TrimSpace(r.ContactInfo.Email) == "" && strings.TrimSpace(r.ContactInfo.Phone) == "" {
		errs = append(errs, model.NewFieldError("contact_info", "an email or a phone is required"))
	}
	if d := r.EventDetails; d != nil {
		if d.Date != "" {
			if _, err := time.Parse(time.DateOnly, d.Date); err != nil {
				errs = append(errs, model.NewFieldError("event_details.date", "must be YYYY-MM-DD"))
			}
		}
		if d.GuestCount < 0 {
			errs = append(errs, model.NewFieldError("event_details.guest_count", "must not be negative"))
		}
	}
	return model.Validation(errs...)
}

// CreateInquiry sends a message to a vendor.  The inquiry is logged and
// acknowledged as pending; nothing is delivered.
func (h *VendorHandler) CreateInquiry(c echo.Context) error {
	var req inquiryReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	ctx := c.Request().Context()
	v, err := h.Vendors.GetByID(ctx, c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	if err := req.validate(); err != nil {
		return fail(c, err)
	}

	uid, _ := middleware.UserID(c)
	inq := model.VendorInquiry{
		ID:           uuid.NewString(),
		VendorID:     v.ID,
		UserID:       uid,
		EventID:      req.EventID,
		Message:      strings.TrimSpace(req.Message),
		ContactInfo:  req.ContactInfo,
		EventDetails: req.EventDetails,
		Status:       model.InquiryPending,
		CreatedAt:    h.Now().UTC(),
	}
	logger.Info(ctx, "vendor inquiry received",
		logger.String("vendor_id", v.ID),
		logger.String("inquiry_id", inq.ID),
	)
	return c.JSON(http.StatusCreated, inq)
}
