package queue

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/eventistan/internal/fixtures"
	"github.com/iliyamo/eventistan/internal/model"
)

func sampleEvent() BookingConfirmedEvent {
	e := fixtures.Events()[1]
	b := model.Booking{
		ID:            "BK1738000000000",
		EventID:       e.ID,
		Seats:         2,
		TotalAmount:   decimal.NewFromInt(5000),
		PaymentMethod: model.PaymentJazzCash,
		PaymentStatus: model.PaymentCompleted,
		BookingDate:   time.Date(2025, time.January, 20, 8, 0, 0, 0, time.UTC),
		TicketNumber:  "TKT-ABCDEF1234",
		ContactInfo:   model.BookingContact{Email: "bilal.ahmed@example.com"},
	}
	return NewBookingConfirmedEvent(b, e)
}

func TestNewBookingConfirmedEvent(t *testing.T) {
	t.Parallel()

	ev := sampleEvent()
	assert.Equal(t, "Tech Innovation Summit 2025", ev.EventTitle)
	assert.Equal(t, "5000.00", ev.TotalAmount)
	assert.Equal(t, "2025-01-20T08:00:00Z", ev.ConfirmedAt)
}

func TestBookingConsumer_Handle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	c := NewBookingConsumer("", "booking.confirmed", dir)

	body, err := json.Marshal(sampleEvent())
	require.NoError(t, err)
	require.NoError(t, c.Handle(body))
	require.NoError(t, c.Handle(body))

	raw, err := os.ReadFile(filepath.Join(dir, "booking.log"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "booking_id=BK1738000000000")
	assert.Contains(t, lines[0], `event="Tech Innovation Summit 2025"`)

	assert.Error(t, c.Handle([]byte("{")))
	assert.Error(t, c.Handle([]byte("{}")))
}
