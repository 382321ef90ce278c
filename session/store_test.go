package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"createscale/api"
)

// fakeStorage is an in-memory TokenStorage.
type fakeStorage struct {
	token   string
	readErr error
}

func (f *fakeStorage) Read() (string, error) { return f.token, f.readErr }
func (f *fakeStorage) Write(token string) error {
	f.token = token
	return nil
}
func (f *fakeStorage) Clear() error {
	f.token = ""
	return nil
}

func newTestBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/token/", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "right" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid credentials."})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"token": "fresh-token"})
	})
	mux.HandleFunc("GET /auth/me/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "No token."})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"user_id": 42, "username": "ruth"})
	})
	mux.HandleFunc("POST /auth/logout/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Logged out."})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestStore_InitializeRestoresPersistedToken(t *testing.T) {
	server := newTestBackend(t)
	storage := &fakeStorage{token: "persisted-token"}
	store := NewStore(api.New(server.URL), storage)

	assert.True(t, store.Initializing())
	store.Initialize(context.Background())

	assert.False(t, store.Initializing())
	assert.Equal(t, "persisted-token", store.Token())
	require.NotNil(t, store.User())
	assert.Equal(t, int64(42), store.ViewerID())
}

func TestStore_InitializeWithoutToken(t *testing.T) {
	server := newTestBackend(t)
	store := NewStore(api.New(server.URL), &fakeStorage{})

	store.Initialize(context.Background())

	assert.False(t, store.Initializing())
	assert.False(t, store.LoggedIn())
}

func TestStore_InitializeFlipsOnce(t *testing.T) {
	server := newTestBackend(t)
	store := NewStore(api.New(server.URL), &fakeStorage{})

	flips := 0
	store.Subscribe(func() {
		if !store.Initializing() {
			flips++
		}
	})

	store.Initialize(context.Background())
	store.Initialize(context.Background())

	assert.Equal(t, 1, flips)
}

func TestStore_InitializeSurvivesUserFetchFailure(t *testing.T) {
	// Token restore must stand even when /auth/me/ is unreachable.
	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/me/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	store := NewStore(api.New(server.URL), &fakeStorage{token: "persisted"})
	store.Initialize(context.Background())

	assert.True(t, store.LoggedIn())
	assert.Nil(t, store.User())
	assert.False(t, store.Initializing())
}

func TestStore_LoginSuccessPersists(t *testing.T) {
	server := newTestBackend(t)
	storage := &fakeStorage{}
	store := NewStore(api.New(server.URL), storage)
	store.Initialize(context.Background())

	require.NoError(t, store.Login(context.Background(), "ruth", "right"))

	assert.Equal(t, "fresh-token", store.Token())
	assert.Equal(t, "fresh-token", storage.token)
	require.NotNil(t, store.User())
	assert.Equal(t, "ruth", store.User().Username)
}

func TestStore_LoginFailureLeavesStateUntouched(t *testing.T) {
	server := newTestBackend(t)
	storage := &fakeStorage{token: "old-token"}
	store := NewStore(api.New(server.URL), storage)
	store.Initialize(context.Background())

	err := store.Login(context.Background(), "ruth", "wrong")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Invalid credentials.", authErr.Message)
	assert.Equal(t, "old-token", store.Token())
	assert.Equal(t, "old-token", storage.token)
}

func TestStore_LoginNetworkFailureMessage(t *testing.T) {
	store := NewStore(api.New("http://127.0.0.1:1"), &fakeStorage{})
	store.Initialize(context.Background())

	err := store.Login(context.Background(), "ruth", "right")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	var netErr *api.NetworkError
	assert.True(t, errors.As(authErr.Err, &netErr))
	assert.Contains(t, authErr.Message, "Check your connection")
}

func TestStore_LoginWithToken(t *testing.T) {
	server := newTestBackend(t)
	storage := &fakeStorage{}
	store := NewStore(api.New(server.URL), storage)
	store.Initialize(context.Background())

	require.NoError(t, store.LoginWithToken(context.Background(), "social-token"))

	assert.Equal(t, "social-token", store.Token())
	assert.Equal(t, "social-token", storage.token)
}

func TestStore_LogoutIdempotent(t *testing.T) {
	server := newTestBackend(t)
	storage := &fakeStorage{token: "persisted"}
	store := NewStore(api.New(server.URL), storage)
	store.Initialize(context.Background())
	require.True(t, store.LoggedIn())

	store.Logout(context.Background())
	assert.False(t, store.LoggedIn())
	assert.Nil(t, store.User())
	assert.Equal(t, "", storage.token)

	// Logging out again is safe.
	store.Logout(context.Background())
	assert.False(t, store.LoggedIn())
}

func TestStore_SubscribeFiresOnChange(t *testing.T) {
	server := newTestBackend(t)
	store := NewStore(api.New(server.URL), &fakeStorage{})
	store.Initialize(context.Background())

	notified := 0
	store.Subscribe(func() { notified++ })

	require.NoError(t, store.Login(context.Background(), "ruth", "right"))
	store.Logout(context.Background())

	assert.Equal(t, 2, notified)
}
