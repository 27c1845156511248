package dashboard

import (
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/iliyamo/eventistan/internal/model"
)

// ProfileUpdate is an edit of the current user's profile.  Nil fields
// are left unchanged.
type ProfileUpdate struct {
	Name        *string            `json:"name,omitempty"`
	Email       *string            `json:"email,omitempty"`
	Phone       *string            `json:"phone,omitempty"`
	City        *string            `json:"city,omitempty"`
	DateOfBirth *string            `json:"date_of_birth,omitempty"`
	Bio         *string            `json:"bio,omitempty"`
	Preferences []string           `json:"preferences,omitempty"`
	SocialLinks *model.SocialLinks `json:"social_links,omitempty"`
}

// Apply validates upd and returns a copy of u with it applied.  u itself
// is never modified.
func (upd ProfileUpdate) Apply(u model.User) (model.User, error) {
	var errs []error
	out := u.Clone()
	if upd.Name != nil {
		if strings.TrimSpace(*upd.Name) == "" {
			errs = append(errs, model.NewFieldError("name", "is required"))
		}
		out.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Email != nil {
		if _, err := mail.ParseAddress(strings.TrimSpace(*upd.Email)); err != nil {
			errs = append(errs, model.NewFieldError("email", "is not a valid address"))
		}
		out.Email = strings.TrimSpace(*upd.Email)
	}
	if upd.Phone != nil {
		out.Phone = strings.TrimSpace(*upd.Phone)
	}
	if upd.City != nil {
		out.City = strings.TrimSpace(*upd.City)
	}
	if upd.DateOfBirth != nil {
		dob := strings.TrimSpace(*upd.DateOfBirth)
		if dob != "" {
			if _, err := time.Parse(time.DateOnly, dob); err != nil {
				errs = append(errs, model.NewFieldError("date_of_birth", "must be YYYY-MM-DD"))
			}
		}
		out.DateOfBirth = dob
	}
	if upd.Bio != nil {
		out.Bio = strings.TrimSpace(*upd.Bio)
	}
	if upd.Preferences != nil {
		out.Preferences = lo.Uniq(lo.Compact(lo.Map(upd.Preferences, func(s string, _ int) string { return strings.TrimSpace(s) })))
	}
	if upd.SocialLinks != nil {
		for _, l := range []struct{ field, link string }{
			{"social_links.facebook", upd.SocialLinks.Facebook},
			{"social_links.instagram", upd.SocialLinks.Instagram},
			{"social_links.website", upd.SocialLinks.Website},
		} {
			if l.link == "" {
				continue
			}
			if p, err := url.Parse(l.link); err != nil || (p.Scheme != "http" && p.Scheme != "https") || p.Host == "" {
				errs = append(errs, model.NewFieldError(l.field, "must be an http(s) URL"))
			}
		}
		links := *upd.SocialLinks
		out.SocialLinks = &links
	}
	if err := model.Validation(errs...); err != nil {
		return model.User{}, err
	}
	return out, nil
}

// Profile is the profile screen: the user and the events they organize.
type Profile struct {
	User   model.User     `json:"user"`
	Events []EventSummary `json:"events"`
}

func NewProfile(u model.User, organized []model.Event) Profile {
	return Profile{
		User:   u,
		Events: lo.Map(organized, func(e model.Event, _ int) EventSummary { return Summarize(e) }),
	}
}
