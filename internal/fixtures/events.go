package fixtures

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/eventistan/internal/model"
)

var catalogCreated = time.Date(2024, time.December, 1, 10, 0, 0, 0, time.UTC)

func price(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// Events returns the event catalog.
func Events() []model.Event {
	organizer := DemoUser()
	return []model.Event{
		{
			ID:           "1",
			Title:        "Grand Wedding Celebration",
			Description:  "Join us for a magnificent wedding celebration with traditional Pakistani customs, delicious cuisine, and joyful festivities. Experience the rich cultural heritage of Pakistan with traditional music, dance performances, and authentic Pakistani dishes prepared by renowned chefs.",
			Type:         model.EventTypeWedding,
			Date:         "2025-02-15",
			Time:         "18:00",
			Venue:        "Pearl Continental Hotel",
			Address:      "Club Road, Karachi",
			City:         "Karachi",
			Organizer:    organizer,
			IsPublic:     true,
			Capacity:     500,
			Attendees:    234,
			Image:        "https://images.pexels.com/photos/1729808/pexels-photo-1729808.jpeg?auto=compress&cs=tinysrgb&w=800",
			RSVPDeadline: "2025-02-10",
			Tags:         []string{"wedding", "traditional", "family"},
			Gallery: []string{
				"https://images.pexels.com/photos/1729808/pexels-photo-1729808.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/3014856/pexels-photo-3014856.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1616113/pexels-photo-1616113.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Amenities:          []string{"Air Conditioning", "Parking", "Sound System", "Catering", "Photography"},
			Requirements:       []string{"Formal Dress Code", "RSVP Required", "No Outside Food"},
			ContactInfo:        &model.ContactInfo{Phone: "+92-21-1234567", Email: "wedding@example.com"},
			SeatingArrangement: model.SeatingTables,
			AvailableSeats:     266,
			BookedSeats:        234,
			Price:              price(5000),
			Participants:       participants("1"),
			Status:             model.EventStatusPublished,
			CreatedAt:          catalogCreated,
			UpdatedAt:          catalogCreated,
		},
		{
			ID:           "2",
			Title:        "Tech Innovation Summit 2025",
			Description:  "Pakistan's premier technology conference bringing together innovators, entrepreneurs, and tech enthusiasts. Featuring keynote speakers from leading tech companies, startup pitches, and networking opportunities.",
			Type:         model.EventTypeCorporate,
			Date:         "2025-01-28",
			Time:         "09:00",
			Venue:        "Expo Centre",
			Address:      "University Road, Lahore",
			City:         "Lahore",
			Organizer:    organizer,
			IsPublic:     true,
			Capacity:     1000,
			Attendees:    567,
			Image:        "https://images.pexels.com/photos/2774556/pexels-photo-2774556.jpeg?auto=compress&cs=tinysrgb&w=800",
			Price:        price(2500),
			RSVPDeadline: "2025-01-25",
			Tags:         []string{"technology", "business", "networking"},
			Gallery: []string{
				"https://images.pexels.com/photos/2774556/pexels-photo-2774556.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1181396/pexels-photo-1181396.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Amenities:          []string{"WiFi", "Lunch Included", "Networking Area", "Exhibition Booths"},
			Requirements:       []string{"Business Attire", "Registration Required", "ID Card Mandatory"},
			ContactInfo:        &model.ContactInfo{Phone: "+92-42-1234567", Email: "summit@techpk.com"},
			SeatingArrangement: model.SeatingOpen,
			AvailableSeats:     433,
			BookedSeats:        567,
			Participants:       participants("2"),
			Status:             model.EventStatusPublished,
			CreatedAt:          catalogCreated,
			UpdatedAt:          catalogCreated,
		},
		{
			ID:           "3",
			Title:        "Mehndi Night Celebration",
			Description:  "A colorful and vibrant mehndi celebration with traditional music, dance, and henna designs. Join us for an evening filled with joy, laughter, and beautiful Pakistani traditions.",
			Type:         model.EventTypeCultural,
			Date:         "2025-02-20",
			Time:         "19:00",
			Venue:        "Fortress Stadium",
			Address:      "Stadium Road, Lahore",
			City:         "Lahore",
			Organizer:    organizer,
			IsPublic:     false,
			Capacity:     300,
			Attendees:    145,
			Image:        "https://images.pexels.com/photos/3014856/pexels-photo-3014856.jpeg?auto=compress&cs=tinysrgb&w=800",
			RSVPDeadline: "2025-02-18",
			Tags:         []string{"mehndi", "traditional", "celebration"},
			Gallery: []string{
				"https://images.pexels.com/photos/3014856/pexels-photo-3014856.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1729808/pexels-photo-1729808.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Amenities:          []string{"Traditional Music", "Henna Artists", "Photography", "Refreshments"},
			Requirements:       []string{"Traditional Dress Preferred", "Family Event", "Invitation Only"},
			ContactInfo:        &model.ContactInfo{Phone: "+92-42-9876543", Email: "mehndi@celebration.pk"},
			SeatingArrangement: model.SeatingOpen,
			AvailableSeats:     155,
			BookedSeats:        145,
			Participants:       participants("3"),
			Status:             model.EventStatusPublished,
			CreatedAt:          catalogCreated,
			UpdatedAt:          catalogCreated,
		},
	}
}

type participantSeed struct {
	userID  string
	status  model.RSVPStatus
	seats   int
	payment model.PaymentStatus
	checkIn model.CheckInStatus
	joined  time.Time
}

var participantSeeds = map[string][]participantSeed{
	"1": {
		{"2", model.RSVPGoing, 2, model.PaymentCompleted, model.CheckInCheckedIn, time.Date(2025, time.January, 5, 14, 30, 0, 0, time.UTC)},
		{"3", model.RSVPGoing, 4, model.PaymentCompleted, model.CheckInPending, time.Date(2025, time.January, 8, 9, 15, 0, 0, time.UTC)},
		{"4", model.RSVPMaybe, 1, model.PaymentPending, model.CheckInPending, time.Date(2025, time.January, 12, 18, 0, 0, 0, time.UTC)},
		{"5", model.RSVPNotGoing, 1, "", "", time.Date(2025, time.January, 14, 11, 45, 0, 0, time.UTC)},
		{"6", model.RSVPGoing, 3, model.PaymentFailed, model.CheckInPending, time.Date(2025, time.January, 20, 20, 10, 0, 0, time.UTC)},
	},
	"2": {
		{"3", model.RSVPGoing, 1, model.PaymentCompleted, model.CheckInCheckedIn, time.Date(2024, time.December, 28, 10, 0, 0, 0, time.UTC)},
		{"5", model.RSVPGoing, 2, model.PaymentCompleted, model.CheckInCheckedIn, time.Date(2025, time.January, 3, 16, 20, 0, 0, time.UTC)},
		{"6", model.RSVPMaybe, 1, model.PaymentPending, "", time.Date(2025, time.January, 10, 13, 5, 0, 0, time.UTC)},
	},
	"3": {
		{"2", model.RSVPGoing, 2, "", model.CheckInPending, time.Date(2025, time.February, 1, 19, 0, 0, 0, time.UTC)},
		{"4", model.RSVPMaybe, 3, "", "", time.Date(2025, time.February, 4, 12, 30, 0, 0, time.UTC)},
	},
}

func participants(eventID string) []model.EventParticipant {
	seeds := participantSeeds[eventID]
	out := make([]model.EventParticipant, 0, len(seeds))
	for i, s := range seeds {
		p := model.EventParticipant{
			ID:            eventID + "-" + s.userID,
			UserID:        s.userID,
			EventID:       eventID,
			User:          userByID(s.userID),
			Status:        s.status,
			TicketType:    model.TicketPaid,
			JoinedAt:      s.joined,
			Seats:         s.seats,
			PaymentStatus: s.payment,
			CheckInStatus: s.checkIn,
		}
		if eventID == "3" {
			p.TicketType = model.TicketFree
		}
		if s.status == model.RSVPGoing {
			p.TicketNumber = ticketNumber(eventID, i+1)
		}
		if s.checkIn == model.CheckInCheckedIn {
			at := s.joined.Add(24 * time.Hour)
			p.CheckInTime = &at
		}
		out = append(out, p)
	}
	return out
}

func ticketNumber(eventID string, n int) string {
	return fmt.Sprintf("TKT-%s-%03d", eventID, n)
}
