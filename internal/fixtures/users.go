// Package fixtures holds the static catalog the service runs on: users,
// events with their participants, vendors, vendor reviews and payment
// methods.  Every accessor builds fresh values, so callers may mutate what
// they get back without affecting anyone else.
package fixtures

import "github.com/iliyamo/eventistan/internal/model"

// DemoUserID is the organizer every fixture event belongs to.
const DemoUserID = "1"

// DemoUser returns the signed-in organizer of the demo.
func DemoUser() model.User {
	return model.User{
		ID:          DemoUserID,
		Name:        "Ahmed Hassan",
		Email:       "ahmed@example.com",
		Phone:       "+92-300-1234567",
		Role:        model.RoleOrganizer,
		City:        "Karachi",
		DateOfBirth: "1990-05-15",
		Bio:         "Event organizer with 5+ years of experience in creating memorable celebrations.",
		Preferences: []string{"weddings", "corporate", "cultural"},
		JoinedDate:  "2023-01-15",
		IsVerified:  true,
	}
}

// Users returns every account known to the demo, organizer first.
func Users() []model.User {
	return []model.User{
		DemoUser(),
		{
			ID:         "2",
			Name:       "Fatima Khan",
			Email:      "fatima.khan@example.com",
			Phone:      "+92-301-2345678",
			Role:       model.RoleUser,
			City:       "Karachi",
			JoinedDate: "2023-06-02",
		},
		{
			ID:         "3",
			Name:       "Bilal Ahmed",
			Email:      "bilal.ahmed@example.com",
			Phone:      "+92-321-3456789",
			Role:       model.RoleUser,
			City:       "Lahore",
			JoinedDate: "2023-08-19",
		},
		{
			ID:         "4",
			Name:       "Ayesha Malik",
			Email:      "ayesha.malik@example.com",
			Phone:      "+92-333-4567890",
			Role:       model.RoleUser,
			City:       "Lahore",
			JoinedDate: "2024-01-07",
		},
		{
			ID:         "5",
			Name:       "Usman Tariq",
			Email:      "usman.tariq@example.com",
			Phone:      "+92-345-5678901",
			Role:       model.RoleUser,
			City:       "Islamabad",
			JoinedDate: "2024-03-22",
		},
		{
			ID:         "6",
			Name:       "Zainab Hussain",
			Email:      "zainab.hussain@example.com",
			Phone:      "+92-302-6789012",
			Role:       model.RoleUser,
			City:       "Karachi",
			JoinedDate: "2024-05-11",
		},
		{
			ID:         "7",
			Name:       "Hamza Siddiqui",
			Email:      "hamza@royalcaterers.pk",
			Phone:      "+92-21-1234567",
			Role:       model.RoleVendor,
			City:       "Karachi",
			JoinedDate: "2022-11-30",
			IsVerified: true,
		},
	}
}

func userByID(id string) model.User {
	for _, u := range Users() {
		if u.ID == id {
			return u
		}
	}
	return model.User{ID: id}
}
