package screens

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"createscale/api"
	"createscale/models"
)

func TestFeedScreen_FetchesWithLiveToken(t *testing.T) {
	var seen []string

	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/me/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"user_id": 1, "username": "fan"})
	})
	mux.HandleFunc("GET /users/feed/", func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(models.FeedPage{
			Results: []models.FeedProfile{{UserID: 9, Username: "artist", IsPerformer: true}},
			Page:    1,
			HasNext: false,
			Count:   1,
		})
	})
	backend := httptest.NewServer(mux)
	t.Cleanup(backend.Close)

	store := newTestStore(t, backend.URL)
	screen := NewFeedScreen(store, api.New(backend.URL), NewTerminal(strings.NewReader("b\n"), &strings.Builder{}))

	// The session rotates after the screen was built; fetches must pick up
	// the current token, not the one at construction time.
	require.NoError(t, store.LoginWithToken(context.Background(), "rotated-token"))
	screen.Run(context.Background())

	require.Len(t, seen, 1)
	assert.Equal(t, "Token rotated-token", seen[0])
}
