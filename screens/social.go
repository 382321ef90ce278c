package screens

import (
	"context"

	"createscale/models"
	"createscale/oauth"
	"createscale/session"
)

// SocialLoginScreen drives one provider flow and adopts the resulting token.
type SocialLoginScreen struct {
	store *session.Store
	flow  *oauth.Flow
	term  *Terminal
}

func NewSocialLoginScreen(store *session.Store, flow *oauth.Flow, term *Terminal) *SocialLoginScreen {
	return &SocialLoginScreen{store: store, flow: flow, term: term}
}

// Run executes the provider selected in the shell menu ("3" google,
// "4" twitter, "5" linkedin).
func (s *SocialLoginScreen) Run(ctx context.Context, choice string) {
	var (
		resp *models.TokenResponse
		err  error
	)

	switch choice {
	case "3":
		var idToken string
		idToken, err = s.term.Prompt("Paste your Google ID token")
		if err != nil {
			return
		}
		resp, err = s.flow.LoginGoogle(ctx, idToken)
	case "4":
		resp, err = s.flow.LoginTwitter(ctx)
	case "5":
		resp, err = s.flow.LoginLinkedIn(ctx)
	default:
		return
	}

	if err != nil {
		s.term.Error(err)
		return
	}

	if err := s.store.LoginWithToken(ctx, resp.Token); err != nil {
		s.term.Error(err)
		return
	}
	s.term.Println("Logged in.")
}
