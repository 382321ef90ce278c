package screens

import (
	"context"
	"strings"

	"createscale/api"
	"createscale/models"
	"createscale/session"
)

// SignupScreen registers a new account and adopts the returned token.
type SignupScreen struct {
	store *session.Store
	api   *api.Client
	term  *Terminal
}

func NewSignupScreen(store *session.Store, client *api.Client, term *Terminal) *SignupScreen {
	return &SignupScreen{store: store, api: client, term: term}
}

func (s *SignupScreen) Run(ctx context.Context) {
	req, err := s.collect()
	if err != nil {
		return
	}
	if vErr := validateSignup(req); vErr != nil {
		// Pre-flight failures never reach the network.
		s.term.Error(vErr)
		return
	}

	resp, err := s.api.Signup(ctx, *req)
	if err != nil {
		// Field errors arrive flattened, e.g.
		// "username: A user with that username already exists."
		s.term.Error(err)
		return
	}

	if resp.Token != "" {
		if err := s.store.LoginWithToken(ctx, resp.Token); err != nil {
			s.term.Error(err)
			return
		}
	}
	s.term.Printf("Welcome, %s!\n", resp.Username)
}

func (s *SignupScreen) collect() (*models.SignupRequest, error) {
	username, err := s.term.Prompt("Username")
	if err != nil {
		return nil, err
	}
	email, err := s.term.Prompt("Email")
	if err != nil {
		return nil, err
	}
	password1, err := s.term.Prompt("Password")
	if err != nil {
		return nil, err
	}
	password2, err := s.term.Prompt("Confirm password")
	if err != nil {
		return nil, err
	}
	return &models.SignupRequest{
		Username:  username,
		Email:     email,
		Password1: password1,
		Password2: password2,
	}, nil
}

// validateSignup is the local pre-flight check: required fields and the
// password match. Everything else (username uniqueness, password strength)
// is the backend's call.
func validateSignup(req *models.SignupRequest) error {
	var missing []string
	if req.Username == "" {
		missing = append(missing, "username")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Password1 == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return &api.ValidationError{Message: "Required: " + strings.Join(missing, ", ") + "."}
	}
	if req.Password1 != req.Password2 {
		return &api.ValidationError{Message: "Passwords do not match."}
	}
	return nil
}
