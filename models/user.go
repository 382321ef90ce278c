package models

// AuthUser is the /auth/me/ response: the signed-in user's identity plus
// their profile. The endpoint reports the id as "user_id"; some older list
// endpoints use "id"; the API layer normalizes onto UserID.
type AuthUser struct {
	UserID   int64    `json:"user_id"`
	ID       int64    `json:"id,omitempty"` // legacy alias, normalized away
	Username string   `json:"username"`
	Profile  *Profile `json:"profile,omitempty"`
}

// Profile mirrors the backend profile record, both the viewer's own
// (/users/me/) and other users' (/users/profiles/<id>/).
type Profile struct {
	UserID            int64  `json:"user_id"`
	Username          string `json:"username"`
	Bio               string `json:"bio,omitempty"`
	Profession        string `json:"profession,omitempty"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`

	// Hire-eligibility flags (see booking.HireEligibility).
	IsPerformer       bool `json:"is_performer"`
	IsPotentialClient bool `json:"is_potential_client"`
	ClientApproved    bool `json:"client_approved"`
	ClientBlacklisted bool `json:"client_blacklisted"`

	Uploads []Upload `json:"uploads,omitempty"`
}

// ProfileUpdate carries the editable fields of the viewer's own profile.
type ProfileUpdate struct {
	Bio               string `json:"bio"`
	Profession        string `json:"profession"`
	IsPerformer       bool   `json:"is_performer"`
	IsPotentialClient bool   `json:"is_potential_client"`
}

// Upload is one media item on a profile.
type Upload struct {
	ID         int64  `json:"id"`
	Caption    string `json:"caption"`
	UploadDate string `json:"upload_date"`
	ImageURL   string `json:"image_url,omitempty"`
	VideoURL   string `json:"video_url,omitempty"`
}

// TokenResponse is the /auth/token/ and /auth/oauth/ success body.
type TokenResponse struct {
	Token    string `json:"token"`
	UserID   int64  `json:"user_id,omitempty"`
	Username string `json:"username,omitempty"`
}

// SignupRequest is the /auth/signup/ body.
type SignupRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password1 string `json:"password1"`
	Password2 string `json:"password2"`
}
