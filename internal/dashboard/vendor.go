package dashboard

import (
	"math"
	"time"

	"github.com/samber/lo"

	"github.com/iliyamo/eventistan/internal/model"
)

// StarCount is one bar of the rating distribution.
type StarCount struct {
	Stars   int     `json:"stars"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// ReviewSummary is the rating block of the vendor details page.
type ReviewSummary struct {
	Rating       float64     `json:"rating"`
	Reviews      int         `json:"reviews"`
	Distribution []StarCount `json:"distribution"`
}

// NewReviewSummary buckets reviews by whole stars, 5 down to 1.  A 4.5
// rating counts as 4.  Rating and Reviews come from the vendor record.
func NewReviewSummary(v model.Vendor, reviews []model.VendorReview) ReviewSummary {
	counts := lo.CountValuesBy(reviews, func(r model.VendorReview) int { return int(math.Floor(r.Rating)) })
	dist := make([]StarCount, 0, 5)
	for stars := 5; stars >= 1; stars-- {
		dist = append(dist, StarCount{
			Stars:   stars,
			Count:   counts[stars],
			Percent: share(counts[stars], len(reviews)),
		})
	}
	return ReviewSummary{Rating: v.Rating, Reviews: v.Reviews, Distribution: dist}
}

// TodayHours describes whether v is open on the weekday of now.
func TodayHours(v model.Vendor, now time.Time) string {
	if len(v.BusinessHours) == 0 {
		return "Contact for hours"
	}
	h, ok := v.BusinessHours.On(now)
	if !ok || !h.IsOpen {
		return "Closed today"
	}
	return "Open today: " + h.Open + " - " + h.Close
}
