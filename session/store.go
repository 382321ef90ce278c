// Package session owns the one cross-screen shared mutable resource: the
// auth token and the signed-in user fetched with it. Screens read the store
// and call its mutators; nothing else in the client writes session state.
// The store is always passed by reference, never reached for as an ambient
// singleton, so tests can hand screens a store wired to fakes.
package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"createscale/api"
	"createscale/models"
	"createscale/utils"
)

// AuthError is a failed credential exchange, carrying the backend's own
// message or a generic fallback.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string { return e.Message }

func (e *AuthError) Unwrap() error { return e.Err }

// Store is the single source of truth for "is someone logged in".
type Store struct {
	mu           sync.Mutex
	api          *api.Client
	storage      TokenStorage
	logger       *zap.Logger
	token        string
	user         *models.AuthUser
	initializing bool
	initOnce     sync.Once
	onChange     []func()
}

// NewStore builds a store in the initializing state. Callers must run
// Initialize before trusting Token/Initializing.
func NewStore(client *api.Client, storage TokenStorage) *Store {
	return &Store{
		api:          client,
		storage:      storage,
		logger:       utils.GetLogger(),
		initializing: true,
	}
}

// Subscribe registers a callback fired after every state change:
// initialization completing, a token adopted, a logout. Callers observe
// session flips without polling the accessors.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.onChange = append(s.onChange, fn)
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.Lock()
	subs := make([]func(), len(s.onChange))
	copy(subs, s.onChange)
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// Token returns the current token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User returns the signed-in user, which may be nil even while logged in
// when the best-effort profile fetch failed.
func (s *Store) User() *models.AuthUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// ViewerID is the canonical id used for engagement role checks, 0 when the
// user record is absent.
func (s *Store) ViewerID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return 0
	}
	return s.user.UserID
}

// Initializing reports whether the startup restore is still in flight.
func (s *Store) Initializing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initializing
}

// LoggedIn is true once a token is adopted.
func (s *Store) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

// Initialize restores any persisted token and best-effort fetches the user
// behind it. A failed user fetch does not invalidate the token: the session
// stays logged in with the user absent. Initializing flips to false exactly
// once, whatever the outcome.
func (s *Store) Initialize(ctx context.Context) {
	s.initOnce.Do(func() {
		defer func() {
			s.mu.Lock()
			s.initializing = false
			s.mu.Unlock()
			s.notify()
		}()

		stored, err := s.storage.Read()
		if err != nil {
			s.logger.Warn("Failed to read persisted token", zap.Error(err))
			return
		}
		if stored == "" {
			return
		}

		s.mu.Lock()
		s.token = stored
		s.mu.Unlock()

		s.preloadUser(ctx, stored)
	})
}

// preloadUser is the best-effort /auth/me/ fetch: failures are logged and
// ignored, since losing the user record is non-fatal to the session.
func (s *Store) preloadUser(ctx context.Context, token string) {
	user, err := s.api.Me(ctx, token)
	if err != nil {
		s.logger.Warn("Failed to preload user", zap.Error(err))
		return
	}
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
}

// Login exchanges credentials for a token, persists it and adopts it. On
// failure the prior session state is left untouched.
func (s *Store) Login(ctx context.Context, username, password string) error {
	resp, err := s.api.Login(ctx, username, password)
	if err != nil {
		return &AuthError{Message: loginMessage(err), Err: err}
	}
	return s.adopt(ctx, resp.Token)
}

// LoginWithToken adopts a token obtained elsewhere; the social-login flows
// trade a provider credential for the same opaque token type.
func (s *Store) LoginWithToken(ctx context.Context, token string) error {
	return s.adopt(ctx, token)
}

func (s *Store) adopt(ctx context.Context, token string) error {
	if err := s.storage.Write(token); err != nil {
		// Session still works for this run; it just won't survive a restart.
		s.logger.Warn("Failed to persist token", zap.Error(err))
	}

	s.mu.Lock()
	s.token = token
	s.user = nil
	s.mu.Unlock()

	s.preloadUser(ctx, token)
	s.notify()
	return nil
}

// Logout clears in-memory and persisted session state. Idempotent. The
// server-side token invalidation is best effort.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	token := s.token
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.storage.Clear(); err != nil {
		s.logger.Warn("Failed to clear persisted token", zap.Error(err))
	}
	if token != "" {
		if err := s.api.Logout(ctx, token); err != nil {
			s.logger.Warn("Backend logout failed", zap.Error(err))
		}
	}
	s.notify()
}

// loginMessage keeps the backend's own words when it answered, and the fixed
// connectivity hint when it did not.
func loginMessage(err error) string {
	switch e := err.(type) {
	case *api.RemoteError:
		if e.Detail != "" {
			return e.Detail
		}
		return "Login failed. Check your credentials."
	case *api.NetworkError:
		return e.Error()
	default:
		return "Login failed. Check your credentials."
	}
}
