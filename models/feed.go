package models

// FeedProfile is the slim profile shape returned by the discovery feed.
type FeedProfile struct {
	UserID            int64  `json:"user_id"`
	Username          string `json:"username"`
	Profession        string `json:"profession,omitempty"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
	IsPerformer       bool   `json:"is_performer"`
	Bio               string `json:"bio,omitempty"`
}

// FeedPage is the pagination envelope shared by the feed and live-events
// endpoints: {results, page, has_next, count}.
type FeedPage struct {
	Results []FeedProfile `json:"results"`
	Page    int           `json:"page"`
	HasNext bool          `json:"has_next"`
	Count   int           `json:"count"`
}

// LiveEvent is one accepted engagement as the live-events list renders it.
type LiveEvent struct {
	ID        int64  `json:"id"`
	Performer string `json:"performer"`
	Client    string `json:"client"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Venue     string `json:"venue"`
	Occasion  string `json:"occasion"`
}

// LiveEventsPage uses the same envelope as the feed.
type LiveEventsPage struct {
	Results []LiveEvent `json:"results"`
	Page    int         `json:"page"`
	HasNext bool        `json:"has_next"`
	Count   int         `json:"count"`
}

// ProfessionList is the /users/professions/ response.
type ProfessionList struct {
	Professions []string `json:"professions"`
}
