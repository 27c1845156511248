package model

import "time"

// Role is the kind of account a user holds.
type Role string

const (
	RoleOrganizer Role = "organizer"
	RoleUser      Role = "user"
	RoleVendor    Role = "vendor"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleOrganizer, RoleUser, RoleVendor:
		return true
	}
	return false
}

// SocialLinks holds optional public profile links for users and vendors.
type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Website   string `json:"website,omitempty"`
}

// User represents an account from the fixture catalog.  Users are
// embedded by value wherever they appear (event organizer, participant,
// reviewer); there is no foreign key resolution against a store.
//
// Fields:
//
//	ID          – fixture identifier.
//	Name        – display name.
//	Email       – contact email, also the sign-in identifier.
//	Phone       – contact phone in +92 format.
//	Role        – organizer, user or vendor.
//	City        – home city.
//	DateOfBirth – YYYY-MM-DD, optional.
//	JoinedDate  – YYYY-MM-DD.
type User struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Role        Role         `json:"role"`
	Avatar      string       `json:"avatar,omitempty"`
	City        string       `json:"city"`
	DateOfBirth string       `json:"date_of_birth,omitempty"`
	Bio         string       `json:"bio,omitempty"`
	Preferences []string     `json:"preferences,omitempty"`
	JoinedDate  string       `json:"joined_date"`
	IsVerified  bool         `json:"is_verified"`
	SocialLinks *SocialLinks `json:"social_links,omitempty"`
}

// Clone returns a deep copy of u.
func (u User) Clone() User {
	out := u
	out.Preferences = cloneStrings(u.Preferences)
	if u.SocialLinks != nil {
		links := *u.SocialLinks
		out.SocialLinks = &links
	}
	return out
}

// RSVP records an attendee's stated intent for an event.  RSVPs are
// acknowledged and returned to the caller but never stored.
type RSVP struct {
	ID        string     `json:"id"`
	EventID   string     `json:"event_id"`
	UserID    string     `json:"user_id,omitempty"`
	Status    RSVPStatus `json:"status"`
	Guests    int        `json:"guests"`
	CreatedAt time.Time  `json:"created_at"`
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
