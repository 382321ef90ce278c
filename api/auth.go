package api

import (
	"context"

	"createscale/models"
)

// Login exchanges username + password for an auth token.
// POST /auth/token/ {username, password} → {token}.
func (c *Client) Login(ctx context.Context, username, password string) (*models.TokenResponse, error) {
	body := map[string]string{"username": username, "password": password}
	var resp models.TokenResponse
	if err := c.post(ctx, "/auth/token/", "", body, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, &RemoteError{StatusCode: 200, Detail: "Login response did not contain a token."}
	}
	return &resp, nil
}

// Signup registers a new account.
// POST /auth/signup/ {username, email, password1, password2} → {token, user_id, username}.
// Field-level rejections arrive as {field: [messages]} and surface flattened.
func (c *Client) Signup(ctx context.Context, req models.SignupRequest) (*models.TokenResponse, error) {
	var resp models.TokenResponse
	if err := c.post(ctx, "/auth/signup/", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SocialLoginRequest is the single-endpoint payload for all providers.
// Google sends an ID token; Twitter and LinkedIn send an authorization code
// obtained via the loopback redirect, which the backend exchanges itself.
type SocialLoginRequest struct {
	Provider     string `json:"provider"`
	Token        string `json:"token,omitempty"`
	Code         string `json:"code,omitempty"`
	RedirectURI  string `json:"redirect_uri,omitempty"`
	CodeVerifier string `json:"code_verifier,omitempty"`
}

// SocialLogin trades a provider credential for the same opaque token type
// Login returns. POST /auth/oauth/.
func (c *Client) SocialLogin(ctx context.Context, req SocialLoginRequest) (*models.TokenResponse, error) {
	var resp models.TokenResponse
	if err := c.post(ctx, "/auth/oauth/", "", req, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, &RemoteError{StatusCode: 200, Detail: "Social login response did not contain a token."}
	}
	return &resp, nil
}

// Me fetches the signed-in user's identity.
// GET /auth/me/ → {user_id, username, profile}.
func (c *Client) Me(ctx context.Context, token string) (*models.AuthUser, error) {
	var user models.AuthUser
	if err := c.get(ctx, "/auth/me/", token, &user); err != nil {
		return nil, err
	}
	normalizeAuthUser(&user)
	return &user, nil
}

// Logout invalidates the token server-side. Best effort: the store clears
// local state regardless of the outcome.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.post(ctx, "/auth/logout/", token, nil, nil)
}
