package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/eventistan/internal/fixtures"
	"github.com/iliyamo/eventistan/internal/model"
)

func TestVendorRepo_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query VendorSearchQuery
		names []string
	}{
		{
			name:  "query over services",
			query: VendorSearchQuery{Query: "drone"},
			names: []string{"Pixel Perfect Photography"},
		},
		{
			name:  "premium tier",
			query: VendorSearchQuery{PriceRange: "premium"},
			names: []string{"Royal Caterers", "Pixel Perfect Photography"},
		},
		{
			name:  "rating threshold",
			query: VendorSearchQuery{MinRating: 4.7},
			names: []string{"Royal Caterers", "Pixel Perfect Photography"},
		},
		{
			name:  "category and city",
			query: VendorSearchQuery{Category: "venue", City: "Lahore"},
			names: []string{"Majestic Venues"},
		},
		{
			name:  "sentinels",
			query: VendorSearchQuery{City: "All Cities", Category: "All Categories", PriceRange: "All Prices"},
			names: []string{"Royal Caterers", "Majestic Venues", "Pixel Perfect Photography"},
		},
	}

	repo := NewVendorRepo(fixtures.Vendors(), fixtures.VendorReviews())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, total, err := repo.Search(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, len(tt.names), total)
			names := make([]string, 0, len(got))
			for _, v := range got {
				names = append(names, v.Name)
			}
			assert.Equal(t, tt.names, names)
		})
	}
}

func TestParseMinRating(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]float64{
		"":            0,
		"All Ratings": 0,
		"4+ Stars":    4,
		"3+ Stars":    3,
		"4.5":         4.5,
	} {
		got, err := ParseMinRating(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"great", "9", "-1", "x+ Stars", "NaN", "nan", "+Inf"} {
		_, err := ParseMinRating(in)
		assert.ErrorIs(t, err, ErrInvalidFilter, in)
	}
}

func TestVendorRepo_Reviews(t *testing.T) {
	t.Parallel()

	repo := NewVendorRepo(fixtures.Vendors(), fixtures.VendorReviews())
	reviews, err := repo.Reviews(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	for i := 1; i < len(reviews); i++ {
		assert.False(t, reviews[i].CreatedAt.After(reviews[i-1].CreatedAt))
	}

	_, err = repo.GetByID(context.Background(), "99")
	assert.ErrorIs(t, err, ErrVendorNotFound)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepo_Authenticate(t *testing.T) {
	t.Parallel()

	repo, err := NewUserRepo(fixtures.Users(), "demo-password", bcrypt.MinCost)
	require.NoError(t, err)

	u, err := repo.Authenticate(context.Background(), "  AHMED@example.com ", "demo-password")
	require.NoError(t, err)
	assert.Equal(t, fixtures.DemoUserID, u.ID)

	_, err = repo.Authenticate(context.Background(), "ahmed@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = repo.Authenticate(context.Background(), "nobody@example.com", "demo-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	assert.True(t, repo.Exists(context.Background(), "fatima.khan@example.com"))
}
