package screens

import (
	"context"
	"io"

	"go.uber.org/zap"

	"createscale/api"
	"createscale/oauth"
	"createscale/session"
	"createscale/utils"
)

// Shell is the navigation root: it initializes the session store and then
// keeps presenting the stack matching the session state: unauthenticated
// iff initialization finished and no token is present.
type Shell struct {
	store  *session.Store
	api    *api.Client
	flow   *oauth.Flow
	term   *Terminal
	logger *zap.Logger
}

func NewShell(store *session.Store, client *api.Client, flow *oauth.Flow, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		store:  store,
		api:    client,
		flow:   flow,
		term:   NewTerminal(in, out),
		logger: utils.GetLogger(),
	}
}

// Run drives the whole app until the user quits or input ends.
func (s *Shell) Run(ctx context.Context) {
	// The only suspend point before the first real screen: show a neutral
	// loading line, never an auth form, while restoring the session.
	s.term.Println("Loading session…")
	s.store.Initialize(ctx)

	for {
		var done bool
		if s.store.LoggedIn() {
			done = s.runAuthenticated(ctx)
		} else {
			done = s.runUnauthenticated(ctx)
		}
		if done {
			return
		}
	}
}

// runUnauthenticated presents the login/signup/social stack. Returns true
// when the app should exit.
func (s *Shell) runUnauthenticated(ctx context.Context) bool {
	s.term.Println()
	s.term.Println("CreateScale — sign in")
	s.term.Println("  [1] Log in")
	s.term.Println("  [2] Sign up")
	s.term.Println("  [3] Continue with Google")
	s.term.Println("  [4] Continue with Twitter")
	s.term.Println("  [5] Continue with LinkedIn")
	s.term.Println("  [q] Quit")

	choice, err := s.term.Prompt("Choose")
	if err != nil {
		return true
	}

	switch choice {
	case "1":
		NewLoginScreen(s.store, s.term).Run(ctx)
	case "2":
		NewSignupScreen(s.store, s.api, s.term).Run(ctx)
	case "3", "4", "5":
		NewSocialLoginScreen(s.store, s.flow, s.term).Run(ctx, choice)
	case "q", "quit":
		return true
	default:
		s.term.Println("Unknown choice.")
	}
	return false
}

// runAuthenticated presents the main app stack. Returns true when the app
// should exit.
func (s *Shell) runAuthenticated(ctx context.Context) bool {
	username := ""
	if user := s.store.User(); user != nil {
		username = " — " + user.Username
	}
	s.term.Println()
	s.term.Printf("CreateScale%s\n", username)
	s.term.Println("  [1] Discover performers")
	s.term.Println("  [2] My bookings")
	s.term.Println("  [3] Live events")
	s.term.Println("  [4] My profile")
	s.term.Println("  [5] Log out")
	s.term.Println("  [q] Quit")

	choice, err := s.term.Prompt("Choose")
	if err != nil {
		return true
	}

	switch choice {
	case "1":
		NewFeedScreen(s.store, s.api, s.term).Run(ctx)
	case "2":
		NewBookingsScreen(s.store, s.api, s.term).Run(ctx)
	case "3":
		NewLiveEventsScreen(s.store, s.api, s.term).Run(ctx)
	case "4":
		NewProfileScreen(s.store, s.api, s.term).Run(ctx)
	case "5":
		s.store.Logout(ctx)
		s.term.Println("Logged out.")
	case "q", "quit":
		return true
	default:
		s.term.Println("Unknown choice.")
	}
	return false
}
