package screens

import (
	"context"

	"createscale/api"
	"createscale/models"
	"createscale/session"
)

// LiveEventsScreen lists accepted engagements, upcoming or past, using the
// same pagination envelope as the feed.
type LiveEventsScreen struct {
	store *session.Store
	api   *api.Client
	term  *Terminal

	scope  string
	events []models.LiveEvent
	page   int
	more   bool
}

func NewLiveEventsScreen(store *session.Store, client *api.Client, term *Terminal) *LiveEventsScreen {
	return &LiveEventsScreen{store: store, api: client, term: term, scope: "upcoming"}
}

func (s *LiveEventsScreen) Run(ctx context.Context) {
	if !s.load(ctx, 1) {
		return
	}

	for {
		s.render()
		s.term.Println("  [u] upcoming  [p] past  [m] more  [b] back")
		choice, err := s.term.Prompt("Live events")
		if err != nil {
			return
		}

		switch choice {
		case "u":
			s.scope = "upcoming"
			s.load(ctx, 1)
		case "p":
			s.scope = "past"
			s.load(ctx, 1)
		case "m":
			if s.more {
				s.load(ctx, s.page+1)
			}
		case "b", "":
			return
		default:
			s.term.Println("Unknown choice.")
		}
	}
}

// load fetches one page; page 1 replaces, later pages append.
func (s *LiveEventsScreen) load(ctx context.Context, page int) bool {
	resp, err := s.api.LiveEvents(ctx, s.store.Token(), s.scope, page)
	if err != nil {
		s.term.Error(err)
		return len(s.events) > 0
	}
	if page == 1 {
		s.events = resp.Results
	} else {
		s.events = append(s.events, resp.Results...)
	}
	s.page = resp.Page
	s.more = resp.HasNext
	return true
}

func (s *LiveEventsScreen) render() {
	s.term.Println()
	s.term.Printf("Live events — %s\n", s.scope)
	if len(s.events) == 0 {
		s.term.Println("  (none)")
		return
	}
	for _, e := range s.events {
		s.term.Printf("  %s %s — %s performs for %s at %s (%s)\n",
			e.Date, e.Time, e.Performer, e.Client, e.Venue, e.Occasion)
	}
	if s.more {
		s.term.Println("  …more available")
	}
}
