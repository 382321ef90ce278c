// Package oauth drives the client side of social sign-in. The app never
// trusts a provider itself: it only obtains a provider credential (a Google
// ID token, or a Twitter/LinkedIn authorization code caught on a loopback
// redirect) and trades it at POST /auth/oauth/ for the same opaque token
// password login yields.
package oauth

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"createscale/api"
	"createscale/config"
	"createscale/models"
	"createscale/utils"
)

const (
	twitterAuthorizeURL  = "https://twitter.com/i/oauth2/authorize"
	linkedinAuthorizeURL = "https://www.linkedin.com/oauth/v2/authorization"
)

// Flow runs one provider's sign-in against the backend.
type Flow struct {
	API *api.Client
	// OpenURL presents the provider authorize URL to the user, e.g. by
	// printing it or launching a browser.
	OpenURL func(authorizeURL string) error
	Logger  *zap.Logger
	Port    int
}

func NewFlow(client *api.Client, openURL func(string) error) *Flow {
	port := config.AppConfig.OAuthCallbackPort
	if port == 0 {
		port = 8765
	}
	return &Flow{
		API:     client,
		OpenURL: openURL,
		Logger:  utils.GetLogger(),
		Port:    port,
	}
}

// LoginGoogle trades a Google ID token for an app token. The ID token is
// obtained out of band (Google's device or web flow); the backend verifies
// it against its own client ids.
func (f *Flow) LoginGoogle(ctx context.Context, idToken string) (*models.TokenResponse, error) {
	if idToken == "" {
		return nil, &api.ValidationError{Message: "Google ID token is required."}
	}
	return f.API.SocialLogin(ctx, api.SocialLoginRequest{
		Provider: "google",
		Token:    idToken,
	})
}

// LoginTwitter runs the PKCE authorization-code flow: authorize URL with an
// S256 challenge, loopback redirect, then the code + verifier go to the
// backend which performs the token exchange itself.
func (f *Flow) LoginTwitter(ctx context.Context) (*models.TokenResponse, error) {
	clientID := config.AppConfig.TwitterClientID
	if clientID == "" {
		return nil, &api.ValidationError{Message: "Twitter sign-in is not configured (TWITTER_CLIENT_ID)."}
	}

	verifier, err := NewCodeVerifier()
	if err != nil {
		return nil, err
	}
	state := uuid.NewString()
	redirectURI := RedirectURI(f.Port)

	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("client_id", clientID)
	params.Set("redirect_uri", redirectURI)
	params.Set("scope", "tweet.read users.read")
	params.Set("state", state)
	params.Set("code_challenge", ChallengeS256(verifier))
	params.Set("code_challenge_method", "S256")

	code, err := f.authorize(ctx, twitterAuthorizeURL+"?"+params.Encode(), state)
	if err != nil {
		return nil, err
	}

	return f.API.SocialLogin(ctx, api.SocialLoginRequest{
		Provider:     "twitter",
		Code:         code,
		RedirectURI:  redirectURI,
		CodeVerifier: verifier,
	})
}

// LoginLinkedIn runs the plain authorization-code flow; LinkedIn does not
// use PKCE here, the backend holds the client secret.
func (f *Flow) LoginLinkedIn(ctx context.Context) (*models.TokenResponse, error) {
	clientID := config.AppConfig.LinkedInClientID
	if clientID == "" {
		return nil, &api.ValidationError{Message: "LinkedIn sign-in is not configured (LINKEDIN_CLIENT_ID)."}
	}

	state := uuid.NewString()
	redirectURI := RedirectURI(f.Port)

	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("client_id", clientID)
	params.Set("redirect_uri", redirectURI)
	params.Set("scope", "openid profile email")
	params.Set("state", state)

	code, err := f.authorize(ctx, linkedinAuthorizeURL+"?"+params.Encode(), state)
	if err != nil {
		return nil, err
	}

	return f.API.SocialLogin(ctx, api.SocialLoginRequest{
		Provider:    "linkedin",
		Code:        code,
		RedirectURI: redirectURI,
	})
}

// authorize hands the URL to the user and waits for the loopback redirect.
func (f *Flow) authorize(ctx context.Context, authorizeURL, state string) (string, error) {
	if err := f.OpenURL(authorizeURL); err != nil {
		return "", fmt.Errorf("failed to open authorize URL: %w", err)
	}
	f.Logger.Info("Waiting for provider redirect", zap.Int("port", f.Port))
	return CatchRedirect(ctx, f.Port, state)
}
