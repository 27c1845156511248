package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_SeatsLeft(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10, Event{Capacity: 100, Attendees: 50, AvailableSeats: 10}.SeatsLeft())
	assert.Equal(t, 50, Event{Capacity: 100, Attendees: 50}.SeatsLeft())
	assert.Equal(t, 0, Event{Capacity: 10, Attendees: 12}.SeatsLeft())
}

func TestEvent_PriceLabel(t *testing.T) {
	t.Parallel()

	p := decimal.NewFromInt(12500)
	zero := decimal.Zero
	assert.Equal(t, "Rs. 12,500", Event{Price: &p}.PriceLabel())
	assert.Equal(t, "Free", Event{Price: &zero}.PriceLabel())
	assert.Equal(t, "Free", Event{}.PriceLabel())
}

func TestEvent_CloneIsDeep(t *testing.T) {
	t.Parallel()

	p := decimal.NewFromInt(100)
	e := Event{Price: &p, Tags: []string{"a"}, ContactInfo: &ContactInfo{Phone: "1"},
		Participants: []EventParticipant{{User: User{Preferences: []string{"x"}}}}}
	c := e.Clone()
	c.Tags[0] = "b"
	c.ContactInfo.Phone = "2"
	c.Participants[0].User.Preferences[0] = "y"
	*c.Price = decimal.NewFromInt(1)

	assert.Equal(t, "a", e.Tags[0])
	assert.Equal(t, "1", e.ContactInfo.Phone)
	assert.Equal(t, "x", e.Participants[0].User.Preferences[0])
	assert.Equal(t, "100", e.Price.String())
}

func TestFields(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("wrap: %w", Validation(NewFieldError("title", "is required"), NewFieldError("date", "bad")))
	require.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, []FieldError{{Field: "title", Message: "is required"}, {Field: "date", Message: "bad"}}, Fields(err))
	assert.Nil(t, Validation())
}
