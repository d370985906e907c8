package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gmoroz-comanager/co-console/pkg/schedule"
)

// ListChannels returns the known Telegram channels with their bots populated.
func (c *Client) ListChannels(ctx context.Context) ([]schedule.TelegramChannel, error) {
	q := url.Values{}
	q.Set("populate", "bot")

	var channels []schedule.TelegramChannel
	if err := c.do(ctx, http.MethodGet, "/telegram-channels", q, nil, &channels); err != nil {
		return nil, err
	}
	return channels, nil
}

// ListBots returns the registered Telegram bots with their channels.
func (c *Client) ListBots(ctx context.Context) ([]schedule.TelegramBot, error) {
	q := url.Values{}
	q.Set("populate", "channels")

	var bots []schedule.TelegramBot
	if err := c.do(ctx, http.MethodGet, "/telegram-bots", q, nil, &bots); err != nil {
		return nil, err
	}
	return bots, nil
}

type channelColorPatch struct {
	Data struct {
		CalendarColor string `json:"calendarColor"`
	} `json:"data"`
}

// UpdateChannelColor saves a channel's calendar color on the server, making
// it the authoritative color from then on.
func (c *Client) UpdateChannelColor(ctx context.Context, documentID, hexColor string) (schedule.TelegramChannel, error) {
	var patch channelColorPatch
	patch.Data.CalendarColor = hexColor

	var channel schedule.TelegramChannel
	err := c.do(ctx, http.MethodPut, "/telegram-channels/"+documentID, nil, patch, &channel)
	return channel, err
}

// PublishResult is the outcome of an immediate publish request.
type PublishResult struct {
	Status string `json:"status"`
	URL    string `json:"url,omitempty"`
}

type publishRequest struct {
	IdeaDocumentID    string `json:"ideaDocumentId"`
	ChannelDocumentID string `json:"channelDocumentId"`
}

// PublishIdea publishes an idea to a channel right away, bypassing the
// scheduler.
func (c *Client) PublishIdea(ctx context.Context, ideaDocumentID, channelDocumentID string) (PublishResult, error) {
	var result PublishResult
	err := c.do(ctx, http.MethodPost, "/telegram-channel/publish",
		nil, publishRequest{IdeaDocumentID: ideaDocumentID, ChannelDocumentID: channelDocumentID}, &result)
	return result, err
}

// ListIdeas returns the ideas available for scheduling.
func (c *Client) ListIdeas(ctx context.Context) ([]schedule.Idea, error) {
	var ideas []schedule.Idea
	if err := c.do(ctx, http.MethodGet, "/ideas", nil, nil, &ideas); err != nil {
		return nil, err
	}
	return ideas, nil
}
