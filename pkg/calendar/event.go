// Package calendar turns scheduled posts into display events and maps
// pointer positions on the rendered grid back to time slots.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/gmoroz-comanager/co-console/pkg/colors"
	"github.com/gmoroz-comanager/co-console/pkg/schedule"
	"github.com/gmoroz-comanager/co-console/pkg/timeutil"
)

// EventDurationMillis is the fixed visual length of every event block. Posts
// have a start instant only; the 30 minutes exist purely for display.
const EventDurationMillis = 30 * 60 * 1000

// ShadowEventID is the id of the singleton drag-preview event.
const ShadowEventID = "shadow-event"

// Event is one visual block on the calendar. Start and End are unix
// milliseconds.
type Event struct {
	ID        string
	Title     string
	Start     int64
	End       int64
	Color     string
	IsLoading bool
	IsShadow  bool
	Status    string
	Channel   *schedule.TelegramChannel
}

// ColorFunc resolves a channel to its display color against the live
// channel list.
type ColorFunc func(ch *schedule.TelegramChannel) string

// ChannelColorFunc adapts colors.ChannelColor to a fixed channel list.
func ChannelColorFunc(channels []schedule.TelegramChannel) ColorFunc {
	return func(ch *schedule.TelegramChannel) string {
		return colors.ChannelColor(ch, channels)
	}
}

// Project maps scheduled posts to display events. When selectedChannelID is
// a concrete channel, only posts on that channel are kept; posts with no
// channel at all are always included, regardless of filter.
func Project(posts []schedule.ScheduledPost, channels []schedule.TelegramChannel, selectedChannelID string, colorFor ColorFunc) []Event {
	events := make([]Event, 0, len(posts))
	filtered := selectedChannelID != "" && selectedChannelID != schedule.AllChannels
	for _, post := range posts {
		if filtered && post.Channel != nil && post.Channel.DocumentID != selectedChannelID {
			continue
		}
		start := post.ScheduledAt.UnixMilli()
		color := colors.DefaultBlue
		if post.Channel != nil {
			// Resolve against the live list so a recolored channel
			// repaints its events on the next render.
			if live := schedule.FindChannel(channels, post.Channel.DocumentID); live != nil {
				color = colorFor(live)
			} else {
				color = colorFor(post.Channel)
			}
		}
		events = append(events, Event{
			ID:      post.DocumentID,
			Title:   post.Title(),
			Start:   start,
			End:     start + EventDurationMillis,
			Color:   color,
			Status:  post.Status,
			Channel: post.Channel,
		})
	}
	return events
}

// ShadowEvent builds the drag-preview block. The channel is not known yet
// during the shadow phase.
func ShadowEvent(idea schedule.Idea, startMillis int64) Event {
	return Event{
		ID:       ShadowEventID,
		Title:    idea.Title,
		Start:    startMillis,
		End:      startMillis + EventDurationMillis,
		Color:    colors.Muted(colors.DefaultBlue),
		IsShadow: true,
		Status:   schedule.StatusPreview,
	}
}

// LoadingEvent builds the optimistic placeholder inserted at drop time. The
// id embeds the current unix-millisecond clock so it can never collide with
// a persisted event id.
func LoadingEvent(idea schedule.Idea, startMillis int64, ch *schedule.TelegramChannel, colorFor ColorFunc) Event {
	color := colors.DefaultBlue
	if ch != nil {
		color = colorFor(ch)
	}
	return Event{
		ID:        fmt.Sprintf("loading-%d", time.Now().UnixMilli()),
		Title:     idea.Title,
		Start:     startMillis,
		End:       startMillis + EventDurationMillis,
		Color:     color,
		IsLoading: true,
		Status:    schedule.StatusLoading,
		Channel:   ch,
	}
}

// IsLoadingID reports whether an event id names an optimistic placeholder.
func IsLoadingID(id string) bool {
	return strings.HasPrefix(id, "loading-")
}

// Merge appends the shadow event, if any, to the persisted list.
func Merge(events []Event, shadow *Event) []Event {
	if shadow == nil {
		return events
	}
	merged := make([]Event, 0, len(events)+1)
	merged = append(merged, events...)
	return append(merged, *shadow)
}

// RemoveByID filters out the event with the given id.
func RemoveByID(events []Event, id string) []Event {
	kept := events[:0:0]
	for _, e := range events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	return kept
}

// StartSlot returns the event start decomposed as a local time slot.
func (e Event) StartSlot() timeutil.TimeSlot {
	return timeutil.SlotAt(time.UnixMilli(e.Start))
}
