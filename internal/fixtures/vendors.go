package fixtures

import (
	"time"

	"github.com/iliyamo/eventistan/internal/model"
)

// Vendors returns the vendor catalog.
func Vendors() []model.Vendor {
	venueHours := model.DefaultBusinessHours()
	venueHours["sunday"] = model.DayHours{Open: "12:00", Close: "22:00", IsOpen: true}
	return []model.Vendor{
		{
			ID:          "1",
			Name:        "Royal Caterers",
			Category:    model.CategoryCatering,
			Description: "Premium catering services specializing in traditional Pakistani and continental cuisine for all types of events.",
			City:        "Karachi",
			Rating:      4.8,
			Reviews:     156,
			PriceRange:  model.PricePremium,
			Image:       "https://images.pexels.com/photos/958545/pexels-photo-958545.jpeg?auto=compress&cs=tinysrgb&w=800",
			Gallery: []string{
				"https://images.pexels.com/photos/958545/pexels-photo-958545.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Contact:            model.VendorContact{Phone: "+92-21-1234567", Email: "info@royalcaterers.pk", Address: "Shahrah-e-Faisal, Karachi"},
			Services:           []string{"Traditional Pakistani Cuisine", "Continental Food", "BBQ Specialists", "Live Cooking Stations"},
			BusinessHours:      model.DefaultBusinessHours(),
			IsVerified:         true,
			JoinedDate:         "2022-11-30",
			CompletedEvents:    420,
			ResponseTime:       "Within 2 hours",
			CancellationPolicy: "Full refund up to 14 days before the event.",
			PaymentMethods:     []string{"Cash", "Bank Transfer", "JazzCash"},
			MinimumOrder:       price(50000),
			ServiceAreas:       []string{"Karachi", "Hyderabad"},
			Specializations:    []string{"Weddings", "Corporate Lunches"},
			TeamSize:           45,
			EstablishedYear:    2012,
		},
		{
			ID:          "2",
			Name:        "Majestic Venues",
			Category:    model.CategoryVenue,
			Description: "Elegant wedding halls and event venues with modern amenities and traditional Pakistani architecture.",
			City:        "Lahore",
			Rating:      4.6,
			Reviews:     89,
			PriceRange:  model.PriceMidRange,
			Image:       "https://images.pexels.com/photos/1616113/pexels-photo-1616113.jpeg?auto=compress&cs=tinysrgb&w=800",
			Gallery: []string{
				"https://images.pexels.com/photos/1616113/pexels-photo-1616113.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/169193/pexels-photo-169193.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Contact:         model.VendorContact{Phone: "+92-42-1234567", Email: "bookings@majesticvenues.pk"},
			Services:        []string{"Wedding Halls", "Conference Rooms", "Outdoor Gardens", "Parking Facilities"},
			BusinessHours:   venueHours,
			IsVerified:      true,
			JoinedDate:      "2023-02-14",
			CompletedEvents: 310,
			ResponseTime:    "Within 24 hours",
			PaymentMethods:  []string{"Cash", "Bank Transfer", "Cheque"},
			ServiceAreas:    []string{"Lahore"},
			TeamSize:        30,
			EstablishedYear: 2008,
		},
		{
			ID:          "3",
			Name:        "Pixel Perfect Photography",
			Category:    model.CategoryPhotography,
			Description: "Professional wedding and event photography capturing your special moments with artistic excellence.",
			City:        "Islamabad",
			Rating:      4.9,
			Reviews:     203,
			PriceRange:  model.PricePremium,
			Image:       "https://images.pexels.com/photos/1187766/pexels-photo-1187766.jpeg?auto=compress&cs=tinysrgb&w=800",
			Gallery: []string{
				"https://images.pexels.com/photos/1187766/pexels-photo-1187766.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1024993/pexels-photo-1024993.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Contact:  model.VendorContact{Phone: "+92-51-1234567", Email: "info@pixelperfect.pk"},
			Services: []string{"Wedding Photography", "Event Coverage", "Pre-wedding Shoots", "Drone Photography"},
			Portfolio: []model.VendorPortfolioItem{
				{
					ID:            "p1",
					Title:         "Khan Family Wedding",
					Description:   "Three day wedding coverage with drone footage.",
					Images:        []string{"https://images.pexels.com/photos/1024993/pexels-photo-1024993.jpeg?auto=compress&cs=tinysrgb&w=800"},
					EventType:     "wedding",
					CompletedDate: "2024-11-20",
				},
			},
			SocialLinks:     &model.SocialLinks{Instagram: "https://instagram.com/pixelperfect.pk"},
			IsVerified:      true,
			JoinedDate:      "2023-05-01",
			CompletedEvents: 510,
			ResponseTime:    "Within 1 hour",
			PaymentMethods:  []string{"Bank Transfer", "JazzCash", "EasyPaisa"},
			ServiceAreas:    []string{"Islamabad", "Rawalpindi", "Lahore"},
			Certifications:  []string{"Certified Drone Operator"},
			TeamSize:        8,
			EstablishedYear: 2016,
		},
	}
}

// VendorReviews returns every review across all vendors.
func VendorReviews() []model.VendorReview {
	review := func(id, vendorID, userID string, rating float64, comment string, at time.Time) model.VendorReview {
		return model.VendorReview{
			ID:         id,
			VendorID:   vendorID,
			UserID:     userID,
			User:       userByID(userID),
			Rating:     rating,
			Comment:    comment,
			CreatedAt:  at,
			IsVerified: true,
		}
	}
	out := []model.VendorReview{
		review("r1", "1", "2", 5, "The biryani was the highlight of our wedding. Guests are still talking about it.", time.Date(2024, time.December, 18, 0, 0, 0, 0, time.UTC)),
		review("r2", "1", "3", 4.5, "Great food and punctual service. Live BBQ station was a hit.", time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)),
		review("r3", "1", "4", 4, "Tasty menu, slightly delayed setup.", time.Date(2025, time.January, 11, 0, 0, 0, 0, time.UTC)),
		review("r4", "2", "5", 5, "Beautiful hall and very helpful staff.", time.Date(2024, time.October, 2, 0, 0, 0, 0, time.UTC)),
		review("r5", "2", "6", 3, "Good venue but parking was full early.", time.Date(2024, time.November, 27, 0, 0, 0, 0, time.UTC)),
		review("r6", "3", "2", 5, "Stunning photos, the drone shots were magical.", time.Date(2024, time.December, 3, 0, 0, 0, 0, time.UTC)),
	}
	out[0].EventID = "1"
	out[0].EventTitle = "Grand Wedding Celebration"
	out[3].Response = &model.ReviewResponse{
		Message:     "Thank you, we look forward to hosting you again!",
		RespondedAt: time.Date(2024, time.October, 3, 0, 0, 0, 0, time.UTC),
	}
	return out
}

// PaymentMethods returns the payment method catalog.
func PaymentMethods() []model.PaymentMethod {
	return []model.PaymentMethod{
		{ID: "1", Type: model.PaymentJazzCash, Name: "JazzCash", Icon: "📱", Description: "Pay securely with your JazzCash mobile wallet", IsActive: true},
		{ID: "2", Type: model.PaymentEasyPaisa, Name: "EasyPaisa", Icon: "💳", Description: "Quick payment through EasyPaisa mobile account", IsActive: true},
		{ID: "3", Type: model.PaymentWallet, Name: "Digital Wallet", Icon: "💰", Description: "Use your Eventistan wallet balance", IsActive: true},
		{ID: "4", Type: model.PaymentCash, Name: "Cash Payment", Icon: "💵", Description: "Pay cash at the venue or designated location", IsActive: true},
	}
}
