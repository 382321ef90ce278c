package api

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"createscale/models"
)

// MyProfile fetches the viewer's own profile. GET /users/me/.
func (c *Client) MyProfile(ctx context.Context, token string) (*models.Profile, error) {
	var wire profileWire
	if err := c.get(ctx, "/users/me/", token, &wire); err != nil {
		return nil, err
	}
	p := wire.normalized()
	return &p, nil
}

// UpdateMyProfile writes the editable profile fields. PATCH /users/me/.
func (c *Client) UpdateMyProfile(ctx context.Context, token string, update models.ProfileUpdate) (*models.Profile, error) {
	var wire profileWire
	if err := c.patch(ctx, "/users/me/", token, update, &wire); err != nil {
		return nil, err
	}
	p := wire.normalized()
	return &p, nil
}

// ProfileDetail fetches another user's public profile including uploads.
// GET /users/profiles/<user_id>/.
func (c *Client) ProfileDetail(ctx context.Context, token string, userID int64) (*models.Profile, error) {
	var wire profileWire
	if err := c.get(ctx, fmt.Sprintf("/users/profiles/%d/", userID), token, &wire); err != nil {
		return nil, err
	}
	p := wire.normalized()
	return &p, nil
}

// MyUploads lists the viewer's media uploads. GET /users/me/uploads/.
func (c *Client) MyUploads(ctx context.Context, token string) ([]models.Upload, error) {
	var uploads []models.Upload
	if err := c.get(ctx, "/users/me/uploads/", token, &uploads); err != nil {
		return nil, err
	}
	return uploads, nil
}

// CreateUpload posts one media file with an optional caption.
// POST /users/me/uploads/ (multipart). The field name is "image" or "video"
// depending on kind; the backend rejects uploads carrying neither.
func (c *Client) CreateUpload(ctx context.Context, token, kind, fileName, caption string, file io.Reader) (*models.Upload, error) {
	if kind != "image" && kind != "video" {
		return nil, &ValidationError{Message: "Upload kind must be image or video."}
	}
	fields := map[string]string{}
	if caption != "" {
		fields["caption"] = caption
	}
	var upload models.Upload
	if err := c.postMultipart(ctx, "/users/me/uploads/", token, fields, kind, fileName, file, &upload); err != nil {
		return nil, err
	}
	return &upload, nil
}

// DeleteUpload removes one of the viewer's own uploads.
// DELETE /users/me/uploads/<upload_id>/.
func (c *Client) DeleteUpload(ctx context.Context, token string, uploadID int64) error {
	return c.delete(ctx, fmt.Sprintf("/users/me/uploads/%d/", uploadID), token)
}

// Feed fetches one page of the discovery feed, optionally filtered by
// profession. GET /users/feed/?profession=&page=.
func (c *Client) Feed(ctx context.Context, token, profession string, page int) (*models.FeedPage, error) {
	params := url.Values{}
	if profession != "" {
		params.Set("profession", profession)
	}
	if page > 1 {
		params.Set("page", strconv.Itoa(page))
	}
	var feed models.FeedPage
	if err := c.get(ctx, "/users/feed/"+queryString(params), token, &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}

// Professions fetches the distinct professions for the feed filter.
// GET /users/professions/.
func (c *Client) Professions(ctx context.Context, token string) ([]string, error) {
	var list models.ProfessionList
	if err := c.get(ctx, "/users/professions/", token, &list); err != nil {
		return nil, err
	}
	return list.Professions, nil
}

// LiveEvents fetches one page of accepted engagements.
// GET /users/live-events/?scope=upcoming|past&page=.
func (c *Client) LiveEvents(ctx context.Context, token, scope string, page int) (*models.LiveEventsPage, error) {
	params := url.Values{}
	if scope != "" {
		params.Set("scope", scope)
	}
	if page > 1 {
		params.Set("page", strconv.Itoa(page))
	}
	var events models.LiveEventsPage
	if err := c.get(ctx, "/users/live-events/"+queryString(params), token, &events); err != nil {
		return nil, err
	}
	return &events, nil
}
