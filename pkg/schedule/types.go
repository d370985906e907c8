// Package schedule holds the content-operations domain types exchanged with
// the CMS backend: ideas, Telegram channels, and scheduled posts.
package schedule

import "time"

// Post statuses as stored by the backend.
const (
	StatusScheduled = "scheduled"
	StatusPublished = "published"
	StatusFailed    = "failed"
)

// Display-only statuses used by the calendar; never persisted.
const (
	StatusPreview = "preview"
	StatusLoading = "loading"
)

// AllChannels is the pseudo channel id meaning "no channel filter".
const AllChannels = "all"

// Idea is a piece of content waiting to be scheduled.
type Idea struct {
	ID         int    `json:"id"`
	DocumentID string `json:"documentId"`
	Title      string `json:"title"`
	Summary    string `json:"summary,omitempty"`
	Status     string `json:"ideaStatus,omitempty"`
}

// TelegramBot is the bot that owns one or more channels.
type TelegramBot struct {
	ID         int    `json:"id"`
	DocumentID string `json:"documentId"`
	Username   string `json:"username"`
	FirstName  string `json:"first_name,omitempty"`
}

// TelegramChannel is a publish target. DocumentID is the stable identity;
// the numeric ID is backend-internal and never used for lookups.
type TelegramChannel struct {
	ID            int          `json:"id"`
	DocumentID    string       `json:"documentId"`
	Title         string       `json:"title"`
	Username      string       `json:"username,omitempty"`
	CalendarColor string       `json:"calendarColor,omitempty"`
	Bot           *TelegramBot `json:"bot,omitempty"`
}

// ScheduledPost ties an idea to a channel at an instant. Channel may be nil
// for posts created before a channel was assigned.
type ScheduledPost struct {
	ID          int              `json:"id"`
	DocumentID  string           `json:"documentId"`
	ScheduledAt time.Time        `json:"scheduledAt"`
	Status      string           `json:"status"`
	Idea        *Idea            `json:"idea,omitempty"`
	Channel     *TelegramChannel `json:"channel,omitempty"`
}

// Title returns the display title for the post, falling back when the idea
// relation was not populated.
func (p ScheduledPost) Title() string {
	if p.Idea != nil && p.Idea.Title != "" {
		return p.Idea.Title
	}
	return "Scheduled Post"
}

// FindChannel returns the channel with the given documentId, or nil.
func FindChannel(channels []TelegramChannel, documentID string) *TelegramChannel {
	for i := range channels {
		if channels[i].DocumentID == documentID {
			return &channels[i]
		}
	}
	return nil
}
