package screens

import (
	"context"
	"strconv"
	"strings"

	"createscale/api"
	"createscale/feed"
	"createscale/models"
	"createscale/session"
)

// FeedScreen is the performer discovery list: paginated, with an optional
// profession filter. Selecting a row opens the profile detail screen.
type FeedScreen struct {
	store *session.Store
	api   *api.Client
	term  *Terminal
	pager *feed.Pager
}

func NewFeedScreen(store *session.Store, client *api.Client, term *Terminal) *FeedScreen {
	// The store stays the live token source; every fetch reads it fresh.
	pager := feed.NewPager(func(ctx context.Context, profession string, page int) (*models.FeedPage, error) {
		return client.Feed(ctx, store.Token(), profession, page)
	})
	return &FeedScreen{store: store, api: client, term: term, pager: pager}
}

func (s *FeedScreen) Run(ctx context.Context) {
	if err := s.pager.Reset(ctx, ""); err != nil {
		s.term.Error(err)
		return
	}

	for {
		s.render()
		s.term.Println("  [#] open profile  [f] filter  [m] more  [r] refresh  [b] back")
		choice, err := s.term.Prompt("Feed")
		if err != nil {
			return
		}

		switch choice {
		case "f":
			s.filter(ctx)
		case "m":
			if err := s.pager.LoadMore(ctx); err != nil {
				s.term.Error(err)
			}
		case "r":
			if err := s.pager.Reset(ctx, s.pager.Profession()); err != nil {
				s.term.Error(err)
			}
		case "b", "":
			return
		default:
			s.open(ctx, choice)
		}
	}
}

func (s *FeedScreen) render() {
	profiles := s.pager.Profiles()
	s.term.Println()
	if filter := s.pager.Profession(); filter != "" {
		s.term.Printf("Performers — %s\n", filter)
	} else {
		s.term.Println("Performers")
	}
	if len(profiles) == 0 {
		s.term.Println("  (no profiles)")
		return
	}
	for i, p := range profiles {
		line := p.Username
		if p.Profession != "" {
			line += " — " + p.Profession
		}
		if p.IsPerformer {
			line += "  [for hire]"
		}
		s.term.Printf("  [%d] %s\n", i+1, line)
	}
	if s.pager.HasNext() {
		s.term.Println("  …more available")
	}
}

// filter asks for a profession, listing the known ones best-effort.
func (s *FeedScreen) filter(ctx context.Context) {
	professions, err := s.api.Professions(ctx, s.store.Token())
	if err == nil && len(professions) > 0 {
		s.term.Printf("Professions: %s\n", strings.Join(professions, ", "))
	}
	choice, err := s.term.Prompt("Profession (empty for all)")
	if err != nil {
		return
	}
	if err := s.pager.Reset(ctx, choice); err != nil {
		s.term.Error(err)
	}
}

func (s *FeedScreen) open(ctx context.Context, choice string) {
	idx, err := strconv.Atoi(choice)
	profiles := s.pager.Profiles()
	if err != nil || idx < 1 || idx > len(profiles) {
		s.term.Println("Unknown choice.")
		return
	}
	NewProfileDetailScreen(s.store, s.api, s.term).Run(ctx, profiles[idx-1].UserID)
}
