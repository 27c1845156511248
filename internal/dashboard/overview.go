// Package dashboard derives the figures shown on the organizer dashboard,
// the my-event details screen, the profile and the vendor details page.
// Everything here is computed from catalog records; nothing is stored.
package dashboard

import (
	"sort"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/eventistan/internal/model"
)

// Overview is the headline block of the organizer dashboard.
type Overview struct {
	TotalEvents    int             `json:"total_events"`
	TotalAttendees int             `json:"total_attendees"`
	Revenue        decimal.Decimal `json:"revenue"`
	RevenueLabel   string          `json:"revenue_label"`
	Upcoming       []EventSummary  `json:"upcoming"`
}

// EventSummary is an event row on the dashboard.
type EventSummary struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Date         string            `json:"date"`
	City         string            `json:"city"`
	Status       model.EventStatus `json:"status"`
	Capacity     int               `json:"capacity"`
	Attendees    int               `json:"attendees"`
	ResponseRate int               `json:"response_rate"`
	PriceLabel   string            `json:"price_label"`
}

// Summarize builds the dashboard row of e.
func Summarize(e model.Event) EventSummary {
	return EventSummary{
		ID:           e.ID,
		Title:        e.Title,
		Date:         e.Date,
		City:         e.City,
		Status:       e.Status,
		Capacity:     e.Capacity,
		Attendees:    e.Attendees,
		ResponseRate: percent(e.Attendees, e.Capacity),
		PriceLabel:   e.PriceLabel(),
	}
}

// NewOverview aggregates the organizer's events.  Revenue is the sum of
// the ticket prices, one ticket per event.  Upcoming holds the events
// dated today or later, soonest first.
func NewOverview(events []model.Event, today time.Time) Overview {
	revenue := lo.Reduce(events, func(sum decimal.Decimal, e model.Event, _ int) decimal.Decimal {
		return sum.Add(e.TicketPrice())
	}, decimal.Zero)

	day := today.Format(time.DateOnly)
	upcoming := lo.Filter(events, func(e model.Event, _ int) bool { return e.Date >= day })
	sort.SliceStable(upcoming, func(i, j int) bool { return upcoming[i].Date < upcoming[j].Date })

	return Overview{
		TotalEvents:    len(events),
		TotalAttendees: lo.SumBy(events, func(e model.Event) int { return e.Attendees }),
		Revenue:        revenue,
		RevenueLabel:   model.FormatRupees(revenue),
		Upcoming:       lo.Map(upcoming, func(e model.Event, _ int) EventSummary { return Summarize(e) }),
	}
}

// percent is part/whole*100 rounded half away from zero; 0 when whole is 0.
func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(decimal.NewFromInt(int64(part)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(whole))).
		Round(0).
		IntPart())
}
