package repository

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/eventistan/internal/model"
)

// PriceBucket is a ticket price band used by the event search.
type PriceBucket string

const (
	PriceAny        PriceBucket = ""
	PriceFree       PriceBucket = "free"
	PriceUnder1000  PriceBucket = "under-1000"
	Price1000To5000 PriceBucket = "1000-5000"
	PriceAbove5000  PriceBucket = "above-5000"
)

var priceLabels = map[string]PriceBucket{
	"":                  PriceAny,
	"all prices":        PriceAny,
	"free":              PriceFree,
	"under rs. 1,000":   PriceUnder1000,
	"under-1000":        PriceUnder1000,
	"rs. 1,000 - 5,000": Price1000To5000,
	"1000-5000":         Price1000To5000,
	"above rs. 5,000":   PriceAbove5000,
	"above-5000":        PriceAbove5000,
}

// ParsePriceBucket accepts either the bucket keys or the labels shown in
// the price dropdown, case-insensitively.
func ParsePriceBucket(s string) (PriceBucket, error) {
	b, ok := priceLabels[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return PriceAny, ErrInvalidFilter
	}
	return b, nil
}

var (
	thousand     = decimal.NewFromInt(1000)
	fiveThousand = decimal.NewFromInt(5000)
)

// Contains reports whether an event with the given price falls into b.
// A nil or zero price is free and matches only PriceFree (and PriceAny).
func (b PriceBucket) Contains(price *decimal.Decimal) bool {
	free := price == nil || price.IsZero()
	switch b {
	case PriceAny:
		return true
	case PriceFree:
		return free
	case PriceUnder1000:
		return !free && price.IsPositive() && price.LessThan(thousand)
	case Price1000To5000:
		return !free && price.GreaterThanOrEqual(thousand) && price.LessThanOrEqual(fiveThousand)
	case PriceAbove5000:
		return !free && price.GreaterThan(fiveThousand)
	}
	return false
}

// EventSearchQuery defines filters & pagination for searching events.
// Empty values and the "All ..." sentinels disable a predicate.  A
// PageSize of zero returns every match.
type EventSearchQuery struct {
	Query    string
	City     string
	Type     string
	Price    PriceBucket
	Date     string
	Page     int
	PageSize int
}

func active(v, sentinel string) bool {
	return v != "" && v != sentinel
}

// Matches reports whether e satisfies every active predicate of q.
func (q EventSearchQuery) Matches(e model.Event) bool {
	if needle := strings.ToLower(strings.TrimSpace(q.Query)); needle != "" {
		hay := []string{e.Title, e.Description, e.City}
		hay = append(hay, e.Tags...)
		if !lo.SomeBy(hay, func(s string) bool { return strings.Contains(strings.ToLower(s), needle) }) {
			return false
		}
	}
	if active(q.City, "All Cities") && e.City != q.City {
		return false
	}
	if active(q.Type, "All Types") && string(e.Type) != q.Type {
		return false
	}
	if !q.Price.Contains(e.Price) {
		return false
	}
	if q.Date != "" && e.Date != q.Date {
		return false
	}
	return true
}

// Search filters the catalog and returns the requested page together with
// the total number of matches.
func (r *EventRepo) Search(ctx context.Context, q EventSearchQuery) ([]model.Event, int, error) {
	matched := lo.Filter(r.events, func(e model.Event, _ int) bool { return q.Matches(e) })
	page := paginate(matched, q.Page, q.PageSize)
	return lo.Map(page, func(e model.Event, _ int) model.Event { return e.Clone() }), len(matched), nil
}

func paginate[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize
	if offset >= len(items) {
		return []T{}
	}
	return lo.Subset(items, offset, uint(pageSize))
}
