package screens

import (
	"context"

	"createscale/session"
)

// LoginScreen is the username/password form.
type LoginScreen struct {
	store *session.Store
	term  *Terminal
}

func NewLoginScreen(store *session.Store, term *Terminal) *LoginScreen {
	return &LoginScreen{store: store, term: term}
}

func (s *LoginScreen) Run(ctx context.Context) {
	username, err := s.term.Prompt("Username")
	if err != nil {
		return
	}
	password, err := s.term.Prompt("Password")
	if err != nil {
		return
	}
	if username == "" || password == "" {
		s.term.Println("Username and password are required.")
		return
	}

	if err := s.store.Login(ctx, username, password); err != nil {
		// AuthError carries the backend's message or the connectivity hint.
		s.term.Error(err)
		return
	}
	s.term.Println("Logged in.")
}
