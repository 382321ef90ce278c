package screens

import (
	"context"

	"createscale/api"
	"createscale/booking"
	"createscale/models"
	"createscale/session"
)

// ProfileDetailScreen shows another user's profile and, when the hire
// checks pass, the inline hire form.
type ProfileDetailScreen struct {
	store *session.Store
	api   *api.Client
	term  *Terminal
}

func NewProfileDetailScreen(store *session.Store, client *api.Client, term *Terminal) *ProfileDetailScreen {
	return &ProfileDetailScreen{store: store, api: client, term: term}
}

func (s *ProfileDetailScreen) Run(ctx context.Context, userID int64) {
	token := s.store.Token()

	target, err := s.api.ProfileDetail(ctx, token, userID)
	if err != nil {
		s.term.Error(err)
		return
	}

	// The viewer's own profile drives the hire gating. Best effort: without
	// it we fall back to the most conservative notice.
	viewer, err := s.api.MyProfile(ctx, token)
	if err != nil {
		viewer = nil
	}

	s.render(target)

	verdict := booking.HireEligibility(viewer, target)
	switch verdict {
	case booking.HireNotPerformer:
		return
	case booking.HireEligible:
		if s.term.Confirm("Send a hire request?") {
			s.hire(ctx, target)
		}
	default:
		// Exactly one notice, by precedence.
		s.term.Println(booking.HireNotice(verdict))
	}
}

func (s *ProfileDetailScreen) render(p *models.Profile) {
	s.term.Println()
	s.term.Printf("%s\n", p.Username)
	if p.Profession != "" {
		s.term.Printf("Profession: %s\n", p.Profession)
	}
	if p.Bio != "" {
		s.term.Printf("Bio: %s\n", p.Bio)
	}
	if p.IsPerformer {
		s.term.Println("Available for hire")
	}
	for _, upload := range p.Uploads {
		url := upload.ImageURL
		if url == "" {
			url = upload.VideoURL
		}
		s.term.Printf("  upload: %s (%s)\n", url, upload.Caption)
	}
}

// hire collects the form fields and posts the hire request. Backend
// rejections (booking limits, duplicate request, gating) render verbatim.
func (s *ProfileDetailScreen) hire(ctx context.Context, target *models.Profile) {
	date, err := s.term.Prompt("Date (YYYY-MM-DD)")
	if err != nil {
		return
	}
	timeOfDay, err := s.term.Prompt("Time (HH:MM)")
	if err != nil {
		return
	}
	venue, err := s.term.Prompt("Venue")
	if err != nil {
		return
	}
	occasion, err := s.term.Prompt("Occasion")
	if err != nil {
		return
	}
	if date == "" || timeOfDay == "" || venue == "" || occasion == "" {
		s.term.Error(&api.ValidationError{Message: "All hire fields are required."})
		return
	}

	engagement, err := s.api.Hire(ctx, s.store.Token(), target.UserID, models.HireRequest{
		Date:     date,
		Time:     timeOfDay,
		Venue:    venue,
		Occasion: occasion,
	})
	if err != nil {
		s.term.Error(err)
		return
	}
	s.term.Printf("Hire request sent to %s for %s — status %s.\n",
		engagement.Performer.Username, engagement.Date, booking.StatusLabel(engagement.Status))
}
