package screens

import (
	"context"
	"strconv"

	"createscale/api"
	"createscale/booking"
	"createscale/models"
	"createscale/session"
)

// BookingsScreen is the engagement dashboard: every booking where the viewer
// is client or performer, with the actions the gating model permits. The
// list is only ever changed by a re-fetch; a failed action leaves it
// exactly as rendered.
type BookingsScreen struct {
	store       *session.Store
	api         *api.Client
	term        *Terminal
	engagements []models.Engagement
}

func NewBookingsScreen(store *session.Store, client *api.Client, term *Terminal) *BookingsScreen {
	return &BookingsScreen{store: store, api: client, term: term}
}

func (s *BookingsScreen) Run(ctx context.Context) {
	if !s.reload(ctx) {
		return
	}

	for {
		s.render()
		s.term.Println("  [#] act on booking  [r] refresh  [b] back")
		choice, err := s.term.Prompt("Bookings")
		if err != nil {
			return
		}

		switch choice {
		case "r":
			s.reload(ctx)
		case "b", "":
			return
		default:
			idx, convErr := strconv.Atoi(choice)
			if convErr != nil || idx < 1 || idx > len(s.engagements) {
				s.term.Println("Unknown choice.")
				continue
			}
			s.act(ctx, s.engagements[idx-1])
		}
	}
}

func (s *BookingsScreen) reload(ctx context.Context) bool {
	engagements, err := s.api.Engagements(ctx, s.store.Token())
	if err != nil {
		s.term.Error(err)
		return s.engagements != nil
	}
	s.engagements = engagements
	return true
}

func (s *BookingsScreen) render() {
	viewerID := s.store.ViewerID()
	s.term.Println()
	s.term.Println("Bookings")
	if len(s.engagements) == 0 {
		s.term.Println("  No bookings yet. Hire a performer from the feed, or wait for clients to find you.")
		return
	}
	for i, e := range s.engagements {
		role := booking.RoleOf(e, viewerID)
		other := booking.OtherParty(e, viewerID)
		s.term.Printf("  [%d] %s %s — %s %s at %s (%s) — %s\n",
			i+1, booking.RoleLabel(role), other.Username,
			e.Date, e.Time, e.Venue, e.Occasion,
			booking.StatusLabel(e.Status))
		if e.ClientEmergencyReason != "" {
			s.term.Printf("      client emergency: %s\n", e.ClientEmergencyReason)
		}
		if e.PerformerEmergencyReason != "" {
			s.term.Printf("      performer emergency: %s\n", e.PerformerEmergencyReason)
		}
	}
}

// act offers exactly the permitted actions for one engagement and submits
// the chosen one. On success the authoritative list is re-fetched; the model
// never mutates a status locally.
func (s *BookingsScreen) act(ctx context.Context, e models.Engagement) {
	actions := booking.PermittedActions(e, s.store.ViewerID())
	if len(actions) == 0 {
		s.term.Printf("This booking is %s — no further actions.\n", booking.StatusLabel(e.Status))
		return
	}

	s.term.Println("Actions:")
	for i, action := range actions {
		s.term.Printf("  [%d] %s\n", i+1, actionLabel(action))
	}
	choice, err := s.term.Prompt("Action")
	if err != nil || choice == "" {
		return
	}
	idx, convErr := strconv.Atoi(choice)
	if convErr != nil || idx < 1 || idx > len(actions) {
		s.term.Println("Unknown choice.")
		return
	}
	action := actions[idx-1]

	// Cancels always transmit the reason, even empty: the backend's own
	// 24-hour rule decides whether one is required.
	emergencyReason := ""
	if action == booking.ActionCancelClient || action == booking.ActionCancelPerformer {
		s.term.Println("Cancelling within 24 hours of the event requires an emergency reason.")
		emergencyReason, err = s.term.Prompt("Emergency reason (if applicable)")
		if err != nil {
			return
		}
	}

	if !s.term.Confirm(actionLabel(action) + "?") {
		return
	}

	result, err := s.api.EngagementAction(ctx, s.store.Token(), e.ID, action, emergencyReason)
	if err != nil {
		// Validation or transport failure: surface the message, touch nothing.
		s.term.Error(err)
		return
	}
	if result.Detail != "" {
		s.term.Println(result.Detail)
	}
	// Success: the displayed copy is stale by definition. Re-fetch.
	s.reload(ctx)
}

func actionLabel(action booking.Action) string {
	switch action {
	case booking.ActionAccept:
		return "Accept"
	case booking.ActionDecline:
		return "Decline"
	case booking.ActionCancelClient:
		return "Cancel as client"
	case booking.ActionCancelPerformer:
		return "Cancel as performer"
	default:
		return string(action)
	}
}
