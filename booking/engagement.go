// Package booking holds the client-side engagement model: who the viewer is
// on a booking, which lifecycle actions they may currently invoke, and what
// the wire payload for an action looks like. It is pure logic over records
// the backend returned: it never mutates a status locally and never
// re-derives a transition; after any successful action the caller must
// re-fetch the authoritative list.
package booking

import (
	"fmt"

	"createscale/models"
)

// Role is the viewer's side of an engagement.
type Role int

const (
	// RoleNone means the viewer is neither party. The backend should never
	// return such a record; when it does, the engagement gets zero actions.
	RoleNone Role = iota
	RoleClient
	RolePerformer
)

// Action is one of the four server-validated lifecycle actions.
type Action string

const (
	ActionAccept          Action = "accept"
	ActionDecline         Action = "decline"
	ActionCancelClient    Action = "cancel_client"
	ActionCancelPerformer Action = "cancel_performer"
)

// RoleOf determines the viewer's role. Exactly one side matches for any
// engagement the backend legitimately returns; a record matching neither is
// treated as RoleNone rather than guessing.
func RoleOf(e models.Engagement, viewerID int64) Role {
	switch {
	case e.Client.ID == viewerID:
		return RoleClient
	case e.Performer.ID == viewerID:
		return RolePerformer
	default:
		return RoleNone
	}
}

// IsActive reports whether the engagement can still have actions.
// Everything outside pending/accepted is terminal.
func IsActive(status string) bool {
	return status == models.StatusPending || status == models.StatusAccepted
}

// PermittedActions computes the actions the viewer may invoke right now.
//
//	status    performer                              client
//	pending   accept, decline, cancel_performer      cancel_client
//	accepted  cancel_performer                       cancel_client
//	terminal  (none)                                 (none)
//
// Cancels are available throughout the active lifetime for both roles;
// accept/decline only while pending and only to the performer.
func PermittedActions(e models.Engagement, viewerID int64) []Action {
	if !IsActive(e.Status) {
		return nil
	}
	switch RoleOf(e, viewerID) {
	case RolePerformer:
		if e.Status == models.StatusPending {
			return []Action{ActionAccept, ActionDecline, ActionCancelPerformer}
		}
		return []Action{ActionCancelPerformer}
	case RoleClient:
		return []Action{ActionCancelClient}
	default:
		return nil
	}
}

// ActionPayload builds the wire body for an action invocation. The two
// cancel variants always carry emergency_reason, even when empty, so the
// backend's own 24-hour-window policy can decide whether to require one.
// Accept and decline never carry it.
func ActionPayload(action Action, emergencyReason string) (map[string]string, error) {
	switch action {
	case ActionAccept, ActionDecline:
		return map[string]string{"action": string(action)}, nil
	case ActionCancelClient, ActionCancelPerformer:
		return map[string]string{
			"action":           string(action),
			"emergency_reason": emergencyReason,
		}, nil
	default:
		return nil, fmt.Errorf("unknown engagement action %q", action)
	}
}

// statusLabels mirrors the backend's display strings.
var statusLabels = map[string]string{
	models.StatusPending:            "Pending",
	models.StatusAccepted:           "Accepted",
	models.StatusDeclined:           "Declined",
	models.StatusCancelledClient:    "Cancelled by client",
	models.StatusCancelledPerformer: "Cancelled by performer",
	models.StatusAutoExpired:        "Auto expired",
}

// StatusLabel returns the human-readable label for a status. Unknown values
// echo through raw so a newer backend never crashes an older client.
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

// OtherParty names the counterpart the viewer cares about: the performer
// when the viewer hired, the client when the viewer was hired.
func OtherParty(e models.Engagement, viewerID int64) models.PartyRef {
	if RoleOf(e, viewerID) == RoleClient {
		return e.Performer
	}
	return e.Client
}

// RoleLabel is the dashboard's framing line for a row.
func RoleLabel(role Role) string {
	switch role {
	case RoleClient:
		return "You hired"
	case RolePerformer:
		return "Hired by"
	default:
		return ""
	}
}
