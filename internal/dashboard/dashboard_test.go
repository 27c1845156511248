package dashboard

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/eventistan/internal/fixtures"
	"github.com/iliyamo/eventistan/internal/model"
)

func event(id string) model.Event {
	for _, e := range fixtures.Events() {
		if e.ID == id {
			return e
		}
	}
	panic("no fixture event " + id)
}

func TestNewOverview(t *testing.T) {
	t.Parallel()

	o := NewOverview(fixtures.Events(), time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 3, o.TotalEvents)
	assert.Equal(t, 946, o.TotalAttendees)
	assert.Equal(t, "7500", o.Revenue.String())
	assert.Equal(t, "Rs. 7,500", o.RevenueLabel)
	require.Len(t, o.Upcoming, 2)
	assert.Equal(t, "1", o.Upcoming[0].ID)
	assert.Equal(t, "3", o.Upcoming[1].ID)
	assert.Equal(t, 47, o.Upcoming[0].ResponseRate)
	assert.Equal(t, "Free", o.Upcoming[1].PriceLabel)

	empty := NewOverview(nil, time.Now())
	assert.Zero(t, empty.TotalEvents)
	assert.True(t, empty.Revenue.IsZero())
	assert.Empty(t, empty.Upcoming)
}

func TestStatsAndAnalytics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id        string
		stats     ParticipantStats
		util      int
		revenue   string
		checkIn   int
		goingPart float64
	}{
		{"1", ParticipantStats{Total: 5, Going: 3, Maybe: 1, NotGoing: 1, CheckedIn: 1, Paid: 2}, 1, "10000", 33, 60},
		{"2", ParticipantStats{Total: 3, Going: 2, Maybe: 1, CheckedIn: 2, Paid: 2}, 0, "5000", 100, 66.7},
		{"3", ParticipantStats{Total: 2, Going: 1, Maybe: 1}, 1, "0", 0, 50},
	}

	for _, tt := range tests {
		t.Run("event "+tt.id, func(t *testing.T) {
			t.Parallel()

			e := event(tt.id)
			s := NewParticipantStats(e.Participants)
			assert.Equal(t, tt.stats, s)

			a := NewAnalytics(e, s)
			assert.Equal(t, tt.util, a.CapacityUtilization)
			assert.Equal(t, tt.revenue, a.Revenue.String())
			assert.Equal(t, tt.checkIn, a.CheckInRate)
			assert.InDelta(t, tt.goingPart, a.RSVP.Going, 0.001)
		})
	}
}

func TestNewAnalytics_NobodyGoing(t *testing.T) {
	t.Parallel()

	a := NewAnalytics(model.Event{}, ParticipantStats{})
	assert.Zero(t, a.CheckInRate)
	assert.Zero(t, a.CapacityUtilization)
	assert.Zero(t, a.RSVP.Going)
}

func TestFilterParticipants(t *testing.T) {
	t.Parallel()

	ps := event("1").Participants
	tests := []struct {
		name  string
		query ParticipantQuery
		want  []string
	}{
		{"all", ParticipantQuery{Status: StatusAll}, []string{"1-2", "1-3", "1-4", "1-5", "1-6"}},
		{"going", ParticipantQuery{Status: "going"}, []string{"1-2", "1-3", "1-6"}},
		{"search by name", ParticipantQuery{Search: "KHAN"}, []string{"1-2"}},
		{"search by email", ParticipantQuery{Search: "usman.tariq@"}, []string{"1-5"}},
		{"status and search", ParticipantQuery{Status: "maybe", Search: "fatima"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FilterParticipants(ps, tt.query)
			var ids []string
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestParseStatusFilter(t *testing.T) {
	t.Parallel()

	f, err := ParseStatusFilter("")
	require.NoError(t, err)
	assert.Equal(t, StatusAll, f)

	f, err = ParseStatusFilter("Not-Going")
	require.NoError(t, err)
	assert.Equal(t, StatusFilter("not-going"), f)

	_, err = ParseStatusFilter("attending")
	assert.ErrorIs(t, err, ErrInvalidStatusFilter)
}

func TestWriteParticipantsCSV(t *testing.T) {
	t.Parallel()

	e := event("1")
	var buf bytes.Buffer
	require.NoError(t, WriteParticipantsCSV(&buf, FilterParticipants(e.Participants, ParticipantQuery{Status: "not-going"})))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Name,Email,Phone,Status,Seats,Payment Status,Check-in Status,Joined Date", lines[0])
	assert.Equal(t, "Usman Tariq,usman.tariq@example.com,+92-345-5678901,not-going,1,N/A,N/A,1/14/2025", lines[1])
	assert.Equal(t, "Grand Wedding Celebration-participants.csv", ExportFilename(e))
}

func TestWriteParticipantsCSV_RowsMatchFilter(t *testing.T) {
	t.Parallel()

	f := gofakeit.New(17)
	statuses := []model.RSVPStatus{model.RSVPGoing, model.RSVPMaybe, model.RSVPNotGoing}
	for run := 0; run < 50; run++ {
		ps := make([]model.EventParticipant, f.IntRange(0, 30))
		for i := range ps {
			ps[i] = model.EventParticipant{
				ID:       f.UUID(),
				User:     model.User{Name: f.Name() + ", Jr.", Email: f.Email(), Phone: f.Phone()},
				Status:   statuses[f.IntRange(0, 2)],
				Seats:    f.IntRange(1, 8),
				JoinedAt: f.DateRange(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
			}
		}
		q := ParticipantQuery{Status: StatusFilter(statuses[f.IntRange(0, 2)])}
		filtered := FilterParticipants(ps, q)

		var buf bytes.Buffer
		require.NoError(t, WriteParticipantsCSV(&buf, filtered))
		records, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, len(filtered)+1)
		for i, p := range filtered {
			assert.Equal(t, ParticipantRow(p), records[i+1])
			assert.Equal(t, string(q.Status), records[i+1][3])
		}
	}
}

func TestNewReviewSummary(t *testing.T) {
	t.Parallel()

	var vendor model.Vendor
	for _, v := range fixtures.Vendors() {
		if v.ID == "1" {
			vendor = v
		}
	}
	reviews := []model.VendorReview{}
	for _, r := range fixtures.VendorReviews() {
		if r.VendorID == "1" {
			reviews = append(reviews, r)
		}
	}

	s := NewReviewSummary(vendor, reviews)
	require.Len(t, s.Distribution, 5)
	assert.Equal(t, StarCount{Stars: 5, Count: 1, Percent: 33.3}, s.Distribution[0])
	assert.Equal(t, StarCount{Stars: 4, Count: 2, Percent: 66.7}, s.Distribution[1])
	assert.Equal(t, StarCount{Stars: 1, Count: 0, Percent: 0}, s.Distribution[4])
	assert.Equal(t, vendor.Rating, s.Rating)

	empty := NewReviewSummary(vendor, nil)
	assert.Zero(t, empty.Distribution[0].Percent)
}

func TestTodayHours(t *testing.T) {
	t.Parallel()

	monday := time.Date(2025, 1, 27, 10, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 1, 26, 10, 0, 0, 0, time.UTC)
	v := model.Vendor{BusinessHours: model.DefaultBusinessHours()}

	assert.Equal(t, "Open today: 09:00 - 18:00", TodayHours(v, monday))
	assert.Equal(t, "Closed today", TodayHours(v, sunday))
	assert.Equal(t, "Contact for hours", TodayHours(model.Vendor{}, monday))
}

func TestProfileUpdate_Apply(t *testing.T) {
	t.Parallel()

	u := fixtures.DemoUser()
	name, email, dob := "  Ahmed H. ", "ahmed.h@example.com", "1990-05-15"
	got, err := ProfileUpdate{
		Name:        &name,
		Email:       &email,
		DateOfBirth: &dob,
		Preferences: []string{"music", " ", "music", "food"},
		SocialLinks: &model.SocialLinks{Website: "https://ahmed.dev"},
	}.Apply(u)
	require.NoError(t, err)
	assert.Equal(t, "Ahmed H.", got.Name)
	assert.Equal(t, email, got.Email)
	assert.Equal(t, []string{"music", "food"}, got.Preferences)
	assert.Equal(t, "https://ahmed.dev", got.SocialLinks.Website)
	assert.Equal(t, fixtures.DemoUser().Name, u.Name)

	blank, bad := "", "not-an-email"
	_, err = ProfileUpdate{
		Name:        &blank,
		Email:       &bad,
		SocialLinks: &model.SocialLinks{Facebook: "facebook.com/me"},
	}.Apply(u)
	require.ErrorIs(t, err, model.ErrValidation)
	var fields []string
	for _, fe := range model.Fields(err) {
		fields = append(fields, fe.Field)
	}
	assert.Equal(t, []string{"name", "email", "social_links.facebook"}, fields)
}

func TestNewProfile(t *testing.T) {
	t.Parallel()

	p := NewProfile(fixtures.DemoUser(), fixtures.Events())
	assert.Equal(t, fixtures.DemoUserID, p.User.ID)
	assert.Len(t, p.Events, 3)
}
