package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/gmoroz-comanager/co-console/pkg/colors"
	"github.com/gmoroz-comanager/co-console/pkg/schedule"
)

func testChannels() []schedule.TelegramChannel {
	return []schedule.TelegramChannel{
		{DocumentID: "chan-a", Title: "Alpha", CalendarColor: "#ABC123"},
		{DocumentID: "chan-b", Title: "Beta"},
	}
}

func testPosts() []schedule.ScheduledPost {
	at := time.Date(2025, time.January, 7, 14, 0, 0, 0, time.Local)
	return []schedule.ScheduledPost{
		{DocumentID: "post-1", ScheduledAt: at, Status: schedule.StatusScheduled,
			Idea:    &schedule.Idea{Title: "Idea A"},
			Channel: &schedule.TelegramChannel{DocumentID: "chan-a", Title: "Alpha"}},
		{DocumentID: "post-2", ScheduledAt: at.Add(time.Hour), Status: schedule.StatusPublished,
			Idea:    &schedule.Idea{Title: "Idea B"},
			Channel: &schedule.TelegramChannel{DocumentID: "chan-b", Title: "Beta"}},
		{DocumentID: "post-3", ScheduledAt: at.Add(2 * time.Hour), Status: schedule.StatusScheduled},
	}
}

func TestProjectFixedDuration(t *testing.T) {
	channels := testChannels()
	events := Project(testPosts(), channels, schedule.AllChannels, ChannelColorFunc(channels))
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	for _, e := range events {
		if e.End-e.Start != EventDurationMillis {
			t.Fatalf("event %s: duration %d", e.ID, e.End-e.Start)
		}
	}
}

func TestProjectChannelFilter(t *testing.T) {
	channels := testChannels()
	events := Project(testPosts(), channels, "chan-a", ChannelColorFunc(channels))
	for _, e := range events {
		if e.Channel != nil && e.Channel.DocumentID != "chan-a" {
			t.Fatalf("foreign channel leaked through filter: %s", e.Channel.DocumentID)
		}
	}
	// post-3 has no channel and is always visible.
	found := false
	for _, e := range events {
		if e.ID == "post-3" {
			found = true
		}
	}
	if !found {
		t.Fatalf("channel-less post must survive the filter")
	}
}

func TestProjectLiveChannelColor(t *testing.T) {
	channels := testChannels()
	events := Project(testPosts(), channels, schedule.AllChannels, ChannelColorFunc(channels))
	for _, e := range events {
		switch e.ID {
		case "post-1":
			// Saved color comes from the live list, not the embedded relation.
			if e.Color != "#ABC123" {
				t.Fatalf("post-1 color %s", e.Color)
			}
		case "post-2":
			if e.Color != colors.DefaultColors[1] {
				t.Fatalf("post-2 color %s, want palette slot 1", e.Color)
			}
		case "post-3":
			if e.Color != colors.DefaultBlue {
				t.Fatalf("post-3 color %s, want default", e.Color)
			}
		}
	}
}

func TestProjectFallbackTitle(t *testing.T) {
	channels := testChannels()
	events := Project(testPosts(), channels, schedule.AllChannels, ChannelColorFunc(channels))
	for _, e := range events {
		if e.ID == "post-3" && e.Title != "Scheduled Post" {
			t.Fatalf("expected fallback title, got %q", e.Title)
		}
	}
}

func TestShadowEvent(t *testing.T) {
	start := time.Date(2025, time.January, 7, 14, 0, 0, 0, time.Local).UnixMilli()
	e := ShadowEvent(schedule.Idea{Title: "Idea A"}, start)
	if e.ID != ShadowEventID {
		t.Fatalf("shadow id %s", e.ID)
	}
	if !e.IsShadow || e.Status != schedule.StatusPreview {
		t.Fatalf("shadow flags wrong: %+v", e)
	}
	if e.Channel != nil {
		t.Fatalf("shadow must not carry a channel")
	}
	if e.Start != start || e.End != start+EventDurationMillis {
		t.Fatalf("shadow span wrong: %d..%d", e.Start, e.End)
	}
}

func TestLoadingEvent(t *testing.T) {
	channels := testChannels()
	start := time.Date(2025, time.January, 7, 14, 0, 0, 0, time.Local).UnixMilli()
	e := LoadingEvent(schedule.Idea{Title: "Idea A"}, start, &channels[0], ChannelColorFunc(channels))
	if !strings.HasPrefix(e.ID, "loading-") || !IsLoadingID(e.ID) {
		t.Fatalf("loading id %s", e.ID)
	}
	if !e.IsLoading || e.Status != schedule.StatusLoading {
		t.Fatalf("loading flags wrong: %+v", e)
	}
	if e.Color != "#ABC123" {
		t.Fatalf("loading color should come from channel, got %s", e.Color)
	}

	noChannel := LoadingEvent(schedule.Idea{Title: "Idea A"}, start, nil, ChannelColorFunc(channels))
	if noChannel.Color != colors.DefaultBlue {
		t.Fatalf("expected default color without channel, got %s", noChannel.Color)
	}
}

func TestMergeAndRemove(t *testing.T) {
	channels := testChannels()
	events := Project(testPosts(), channels, schedule.AllChannels, ChannelColorFunc(channels))
	shadow := ShadowEvent(schedule.Idea{Title: "Idea A"}, 0)

	merged := Merge(events, &shadow)
	if len(merged) != len(events)+1 {
		t.Fatalf("merge length %d", len(merged))
	}
	if Merge(events, nil)[len(events)-1].ID != events[len(events)-1].ID {
		t.Fatalf("nil shadow should leave events unchanged")
	}

	removed := RemoveByID(merged, "post-2")
	for _, e := range removed {
		if e.ID == "post-2" {
			t.Fatalf("remove failed")
		}
	}
	if len(removed) != len(merged)-1 {
		t.Fatalf("remove length %d", len(removed))
	}
}
