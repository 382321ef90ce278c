package api

import (
	"createscale/models"
)

// The backend is not perfectly consistent about two things: the viewer id
// appears as "user_id" on /auth/me/ but as "id" on some older records, and
// profile pictures appear as "profile_picture_url" on API serializers but as
// a bare "profile_picture" path on legacy payloads. Normalization happens
// here, once, at the gateway boundary; render sites only ever see the
// canonical UserID and ProfilePictureURL fields.

// profileWire decodes a profile payload including the legacy aliases.
type profileWire struct {
	models.Profile
	LegacyID             int64  `json:"id"`
	LegacyProfilePicture string `json:"profile_picture"`
}

func (w *profileWire) normalized() models.Profile {
	p := w.Profile
	if p.UserID == 0 {
		p.UserID = w.LegacyID
	}
	if p.ProfilePictureURL == "" {
		p.ProfilePictureURL = w.LegacyProfilePicture
	}
	return p
}

func normalizeAuthUser(u *models.AuthUser) {
	if u.UserID == 0 {
		u.UserID = u.ID
	}
	u.ID = 0
}
