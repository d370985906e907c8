package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/gmoroz-comanager/co-console/pkg/schedule"
)

// PostDraft is the create/update payload for a scheduled post. Relations are
// referenced by documentId.
type PostDraft struct {
	Idea        string    `json:"idea,omitempty"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Channel     string    `json:"channel,omitempty"`
	Status      string    `json:"status,omitempty"`
}

type draftEnvelope struct {
	Data PostDraft `json:"data"`
}

// ListScheduledPosts returns all posts scheduled within [start, end].
func (c *Client) ListScheduledPosts(ctx context.Context, start, end time.Time) ([]schedule.ScheduledPost, error) {
	q := url.Values{}
	q.Set("filters[scheduledAt][$gte]", start.UTC().Format(time.RFC3339))
	q.Set("filters[scheduledAt][$lte]", end.UTC().Format(time.RFC3339))
	q.Set("populate", "*")

	var posts []schedule.ScheduledPost
	if err := c.do(ctx, http.MethodGet, "/scheduled-posts", q, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// CreateScheduledPost persists a new scheduled post and returns the stored
// record.
func (c *Client) CreateScheduledPost(ctx context.Context, draft PostDraft) (schedule.ScheduledPost, error) {
	var post schedule.ScheduledPost
	err := c.do(ctx, http.MethodPost, "/scheduled-posts", nil, draftEnvelope{Data: draft}, &post)
	return post, err
}

// UpdateScheduledPost patches an existing post by documentId.
func (c *Client) UpdateScheduledPost(ctx context.Context, documentID string, draft PostDraft) (schedule.ScheduledPost, error) {
	var post schedule.ScheduledPost
	err := c.do(ctx, http.MethodPut, "/scheduled-posts/"+documentID, nil, draftEnvelope{Data: draft}, &post)
	return post, err
}

// DeleteScheduledPost removes a post by documentId.
func (c *Client) DeleteScheduledPost(ctx context.Context, documentID string) error {
	return c.do(ctx, http.MethodDelete, "/scheduled-posts/"+documentID, nil, nil, nil)
}
