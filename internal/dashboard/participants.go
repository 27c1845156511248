package dashboard

import (
	"errors"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/eventistan/internal/model"
)

var ErrInvalidStatusFilter = errors.New("status filter must be all, going, maybe or not-going")

// StatusFilter narrows the participant list.  The zero value and "all"
// keep everyone.
type StatusFilter string

const StatusAll StatusFilter = "all"

// ParseStatusFilter accepts "", "all" or an RSVP status.
func ParseStatusFilter(s string) (StatusFilter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == string(StatusAll) {
		return StatusAll, nil
	}
	if !model.RSVPStatus(s).Valid() {
		return "", ErrInvalidStatusFilter
	}
	return StatusFilter(s), nil
}

// ParticipantQuery is the participants tab filter.
type ParticipantQuery struct {
	Status StatusFilter
	Search string
}

// Matches reports whether p passes the status filter and whether the
// search text occurs in the participant's name or email.
func (q ParticipantQuery) Matches(p model.EventParticipant) bool {
	if q.Status != "" && q.Status != StatusAll && string(p.Status) != string(q.Status) {
		return false
	}
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.User.Name), needle) ||
		strings.Contains(strings.ToLower(p.User.Email), needle)
}

// FilterParticipants returns the participants matching q, in order.
func FilterParticipants(ps []model.EventParticipant, q ParticipantQuery) []model.EventParticipant {
	return lo.Filter(ps, func(p model.EventParticipant, _ int) bool { return q.Matches(p) })
}

// ParticipantStats counts participants by RSVP, check-in and payment.
type ParticipantStats struct {
	Total     int `json:"total"`
	Going     int `json:"going"`
	Maybe     int `json:"maybe"`
	NotGoing  int `json:"not_going"`
	CheckedIn int `json:"checked_in"`
	Paid      int `json:"paid"`
}

func NewParticipantStats(ps []model.EventParticipant) ParticipantStats {
	byStatus := lo.CountValuesBy(ps, func(p model.EventParticipant) model.RSVPStatus { return p.Status })
	return ParticipantStats{
		Total:    len(ps),
		Going:    byStatus[model.RSVPGoing],
		Maybe:    byStatus[model.RSVPMaybe],
		NotGoing: byStatus[model.RSVPNotGoing],
		CheckedIn: lo.CountBy(ps, func(p model.EventParticipant) bool {
			return p.CheckInStatus == model.CheckInCheckedIn
		}),
		Paid: lo.CountBy(ps, func(p model.EventParticipant) bool {
			return p.PaymentStatus == model.PaymentCompleted
		}),
	}
}

// RSVPBreakdown is each RSVP status as a share of all participants.
type RSVPBreakdown struct {
	Going    float64 `json:"going"`
	Maybe    float64 `json:"maybe"`
	NotGoing float64 `json:"not_going"`
}

// Analytics is the analytics tab of an event.
type Analytics struct {
	CapacityUtilization int             `json:"capacity_utilization"`
	Revenue             decimal.Decimal `json:"revenue"`
	RevenueLabel        string          `json:"revenue_label"`
	CheckInRate         int             `json:"check_in_rate"`
	RSVP                RSVPBreakdown   `json:"rsvp_breakdown"`
}

// NewAnalytics derives the analytics of e from its participant stats.
// Utilization counts participant records against capacity, revenue is
// the ticket price times paid participants and the check-in rate is
// relative to those going.
func NewAnalytics(e model.Event, s ParticipantStats) Analytics {
	revenue := e.TicketPrice().Mul(decimal.NewFromInt(int64(s.Paid)))
	return Analytics{
		CapacityUtilization: percent(s.Total, e.Capacity),
		Revenue:             revenue,
		RevenueLabel:        model.FormatRupees(revenue),
		CheckInRate:         percent(s.CheckedIn, s.Going),
		RSVP: RSVPBreakdown{
			Going:    share(s.Going, s.Total),
			Maybe:    share(s.Maybe, s.Total),
			NotGoing: share(s.NotGoing, s.Total),
		},
	}
}

// share is part/whole*100 to one decimal place; 0 when whole is 0.
func share(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	f, _ := decimal.NewFromInt(int64(part)).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(int64(whole)), 1).
		Float64()
	return f
}

// EventDetails is the my-event details screen: the event, its stats and
// the filtered participant list.
type EventDetails struct {
	Event        model.Event              `json:"event"`
	Stats        ParticipantStats         `json:"stats"`
	Analytics    Analytics                `json:"analytics"`
	Participants []model.EventParticipant `json:"participants"`
	Showing      int                      `json:"showing"`
}

// NewEventDetails computes stats over every participant and lists those
// matching q.
func NewEventDetails(e model.Event, q ParticipantQuery) EventDetails {
	stats := NewParticipantStats(e.Participants)
	filtered := FilterParticipants(e.Participants, q)
	return EventDetails{
		Event:        e,
		Stats:        stats,
		Analytics:    NewAnalytics(e, stats),
		Participants: filtered,
		Showing:      len(filtered),
	}
}
