package api

import (
	"context"
	"fmt"

	"createscale/booking"
	"createscale/models"
)

// Engagements fetches every engagement where the viewer is client or
// performer, unordered and mixed across roles. GET /bookings/engagements/.
func (c *Client) Engagements(ctx context.Context, token string) ([]models.Engagement, error) {
	var engagements []models.Engagement
	if err := c.get(ctx, "/bookings/engagements/", token, &engagements); err != nil {
		return nil, err
	}
	return engagements, nil
}

// EngagementAction submits one lifecycle action against an engagement.
// POST /bookings/engagements/<id>/action/.
//
// The wire body comes from booking.ActionPayload so the emergency-reason
// contract holds: cancels always carry it (even empty), accept/decline never
// do. The 24-hour emergency rule is evaluated server-side only; a rejection
// surfaces here as a RemoteError with the backend's message and the caller
// leaves its local list untouched.
func (c *Client) EngagementAction(ctx context.Context, token string, engagementID int64, action booking.Action, emergencyReason string) (*models.ActionResult, error) {
	payload, err := booking.ActionPayload(action, emergencyReason)
	if err != nil {
		return nil, err
	}
	var result models.ActionResult
	path := fmt.Sprintf("/bookings/engagements/%d/action/", engagementID)
	if err := c.post(ctx, path, token, payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Hire sends a hire request to a performer. POST /bookings/hire/<performer_id>/.
// Returns the created engagement; backend gating rejections (not approved,
// blacklisted, booking limits) surface as RemoteError.
func (c *Client) Hire(ctx context.Context, token string, performerID int64, req models.HireRequest) (*models.Engagement, error) {
	var engagement models.Engagement
	path := fmt.Sprintf("/bookings/hire/%d/", performerID)
	if err := c.post(ctx, path, token, req, &engagement); err != nil {
		return nil, err
	}
	return &engagement, nil
}
