package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvents_Invariants(t *testing.T) {
	t.Parallel()

	for _, e := range Events() {
		assert.LessOrEqual(t, e.Attendees, e.Capacity, e.Title)
		assert.Equal(t, DemoUserID, e.Organizer.ID)
		for _, p := range e.Participants {
			assert.Equal(t, e.ID, p.EventID)
			assert.NotEmpty(t, p.User.Email)
		}
	}
}

func TestEvents_ReturnsFreshCopies(t *testing.T) {
	t.Parallel()

	first := Events()
	first[0].Title = "changed"
	first[0].Tags[0] = "changed"
	first[0].Participants[0].User.Name = "changed"

	second := Events()
	require.NotEqual(t, "changed", second[0].Title)
	require.NotEqual(t, "changed", second[0].Tags[0])
	require.NotEqual(t, "changed", second[0].Participants[0].User.Name)
}

func TestVendorReviews_BelongToKnownVendors(t *testing.T) {
	t.Parallel()

	ids := map[string]bool{}
	for _, v := range Vendors() {
		ids[v.ID] = true
	}
	for _, r := range VendorReviews() {
		assert.True(t, ids[r.VendorID], r.ID)
		assert.GreaterOrEqual(t, r.Rating, 1.0)
		assert.LessOrEqual(t, r.Rating, 5.0)
	}
}

func TestPaymentMethods_AllActive(t *testing.T) {
	t.Parallel()

	methods := PaymentMethods()
	require.Len(t, methods, 4)
	for _, m := range methods {
		assert.True(t, m.IsActive)
		assert.True(t, m.Type.Valid())
	}
}
