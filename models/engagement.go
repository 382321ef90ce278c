package models

// Engagement statuses as the backend reports them. The client never invents
// one of these; the authoritative value is always supplied by the server.
const (
	StatusPending            = "pending"
	StatusAccepted           = "accepted"
	StatusDeclined           = "declined"
	StatusCancelledClient    = "cancelled_client"
	StatusCancelledPerformer = "cancelled_performer"
	StatusAutoExpired        = "auto_expired"
)

// PartyRef identifies one side of an engagement.
type PartyRef struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Engagement represents one booking between a client (hirer) and a performer.
type Engagement struct {
	ID                       int64    `json:"id"`
	Client                   PartyRef `json:"client"`
	Performer                PartyRef `json:"performer"`
	Date                     string   `json:"date"` // "YYYY-MM-DD"
	Time                     string   `json:"time"` // "HH:MM:SS"
	Venue                    string   `json:"venue"`
	Occasion                 string   `json:"occasion"`
	Status                   string   `json:"status"`
	ClientEmergencyReason    string   `json:"client_emergency_reason"`
	PerformerEmergencyReason string   `json:"performer_emergency_reason"`
	CreatedAt                string   `json:"created_at"` // display only
}

// HireRequest carries the fields of the inline hire form.
type HireRequest struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Venue    string `json:"venue"`
	Occasion string `json:"occasion"`
}

// ActionResult is the backend's response to an engagement action.
type ActionResult struct {
	Detail string `json:"detail"`
}
