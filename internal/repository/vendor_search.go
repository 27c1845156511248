package repository

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/iliyamo/eventistan/internal/model"
)

// VendorSearchQuery defines filters & pagination for searching vendors.
// MinRating of zero disables the rating predicate.
type VendorSearchQuery struct {
	Query      string
	City       string
	Category   string
	PriceRange string
	MinRating  float64
	Page       int
	PageSize   int
}

// ParseMinRating accepts the dropdown labels ("4+ Stars") as well as a
// bare number.  Empty and "All Ratings" yield zero.
func ParseMinRating(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "All Ratings") {
		return 0, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(f) || f < 0 || f > 5 {
			return 0, ErrInvalidFilter
		}
		return f, nil
	}
	// "4+ Stars" style labels carry the threshold in the leading digit.
	if n := s[0] - '0'; n <= 5 && strings.Contains(s, "+") {
		return float64(n), nil
	}
	return 0, ErrInvalidFilter
}

// Matches reports whether v satisfies every active predicate of q.
func (q VendorSearchQuery) Matches(v model.Vendor) bool {
	if needle := strings.ToLower(strings.TrimSpace(q.Query)); needle != "" {
		hay := []string{v.Name, v.Description, v.City}
		hay = append(hay, v.Services...)
		if !lo.SomeBy(hay, func(s string) bool { return strings.Contains(strings.ToLower(s), needle) }) {
			return false
		}
	}
	if active(q.City, "All Cities") && v.City != q.City {
		return false
	}
	if active(q.Category, "All Categories") && string(v.Category) != q.Category {
		return false
	}
	if active(q.PriceRange, "All Prices") && string(v.PriceRange) != q.PriceRange {
		return false
	}
	return v.Rating >= q.MinRating
}

// Search filters the vendor catalog and returns the requested page
// together with the total number of matches.
func (r *VendorRepo) Search(ctx context.Context, q VendorSearchQuery) ([]model.Vendor, int, error) {
	matched := lo.Filter(r.vendors, func(v model.Vendor, _ int) bool { return q.Matches(v) })
	page := paginate(matched, q.Page, q.PageSize)
	return lo.Map(page, func(v model.Vendor, _ int) model.Vendor { return v.Clone() }), len(matched), nil
}
