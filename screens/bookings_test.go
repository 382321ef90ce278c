package screens

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"createscale/api"
	"createscale/models"
	"createscale/session"
)

// bookingsBackend serves a signed-in performer (id 2) with one pending
// engagement and records action submissions.
type bookingsBackend struct {
	*httptest.Server
	status     string
	actions    []map[string]string
	rejectWith string
}

func newBookingsBackend(t *testing.T) *bookingsBackend {
	t.Helper()
	backend := &bookingsBackend{status: models.StatusPending}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/me/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"user_id": 2, "username": "artist"})
	})
	mux.HandleFunc("GET /bookings/engagements/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Engagement{{
			ID:        7,
			Client:    models.PartyRef{ID: 1, Username: "hirer"},
			Performer: models.PartyRef{ID: 2, Username: "artist"},
			Date:      "2026-09-12",
			Time:      "19:30:00",
			Venue:     "Roundhouse",
			Occasion:  "Wedding",
			Status:    backend.status,
		}})
	})
	mux.HandleFunc("POST /bookings/engagements/7/action/", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		backend.actions = append(backend.actions, body)
		if backend.rejectWith != "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"detail": backend.rejectWith})
			return
		}
		backend.status = models.StatusAccepted
		json.NewEncoder(w).Encode(models.ActionResult{Detail: "Accepted."})
	})

	backend.Server = httptest.NewServer(mux)
	t.Cleanup(backend.Close)
	return backend
}

func newTestStore(t *testing.T, baseURL string) *session.Store {
	t.Helper()
	storage := session.NewFileTokenStorage(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, storage.Write("test-token"))
	store := session.NewStore(api.New(baseURL), storage)
	store.Initialize(context.Background())
	return store
}

func TestBookingsScreen_AcceptFlow(t *testing.T) {
	backend := newBookingsBackend(t)
	store := newTestStore(t, backend.URL)

	// Act on booking 1, pick action 1 (accept), confirm, then back.
	input := strings.NewReader("1\n1\ny\nb\n")
	var output strings.Builder
	screen := NewBookingsScreen(store, api.New(backend.URL), NewTerminal(input, &output))
	screen.Run(context.Background())

	rendered := output.String()
	// Performer on a pending booking sees all three actions.
	assert.Contains(t, rendered, "Accept")
	assert.Contains(t, rendered, "Decline")
	assert.Contains(t, rendered, "Cancel as performer")
	assert.Contains(t, rendered, "Hired by hirer")
	assert.Contains(t, rendered, "Pending")

	// Accept went over the wire without an emergency reason.
	require.Len(t, backend.actions, 1)
	assert.Equal(t, map[string]string{"action": "accept"}, backend.actions[0])

	// The re-fetched authoritative status rendered after the action.
	assert.Contains(t, rendered, "Accepted")
}

func TestBookingsScreen_CancelSendsEmptyReason(t *testing.T) {
	backend := newBookingsBackend(t)
	store := newTestStore(t, backend.URL)

	// Act on booking 1, pick action 3 (cancel as performer), empty reason,
	// confirm, back.
	input := strings.NewReader("1\n3\n\ny\nb\n")
	var output strings.Builder
	screen := NewBookingsScreen(store, api.New(backend.URL), NewTerminal(input, &output))
	screen.Run(context.Background())

	require.Len(t, backend.actions, 1)
	assert.Equal(t, map[string]string{
		"action":           "cancel_performer",
		"emergency_reason": "",
	}, backend.actions[0])
}

func TestBookingsScreen_RejectionLeavesListUnchanged(t *testing.T) {
	backend := newBookingsBackend(t)
	backend.rejectWith = "Cancelling now requires an emergency reason."
	store := newTestStore(t, backend.URL)

	input := strings.NewReader("1\n3\n\ny\nb\n")
	var output strings.Builder
	screen := NewBookingsScreen(store, api.New(backend.URL), NewTerminal(input, &output))
	screen.Run(context.Background())

	rendered := output.String()
	// The backend's message surfaces verbatim and the row still shows the
	// old status: no local mutation, no hidden re-fetch.
	assert.Contains(t, rendered, "Cancelling now requires an emergency reason.")
	assert.NotContains(t, rendered, "Accepted")
}

func TestBookingsScreen_TerminalBookingOffersNothing(t *testing.T) {
	backend := newBookingsBackend(t)
	backend.status = models.StatusAutoExpired
	store := newTestStore(t, backend.URL)

	input := strings.NewReader("1\nb\n")
	var output strings.Builder
	screen := NewBookingsScreen(store, api.New(backend.URL), NewTerminal(input, &output))
	screen.Run(context.Background())

	rendered := output.String()
	assert.Contains(t, rendered, "Auto expired")
	assert.Contains(t, rendered, "no further actions")
	assert.Empty(t, backend.actions)
}
