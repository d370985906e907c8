package app

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/gmoroz-comanager/co-console/pkg/api"
	"github.com/gmoroz-comanager/co-console/pkg/calendar"
	"github.com/gmoroz-comanager/co-console/pkg/schedule"
	"github.com/gmoroz-comanager/co-console/pkg/tui/events"
)

type fakeBackend struct {
	posts     []schedule.ScheduledPost
	channels  []schedule.TelegramChannel
	ideas     []schedule.Idea
	created   []api.PostDraft
	createErr error
}

func (f *fakeBackend) ListScheduledPosts(context.Context, time.Time, time.Time) ([]schedule.ScheduledPost, error) {
	return f.posts, nil
}

func (f *fakeBackend) CreateScheduledPost(_ context.Context, draft api.PostDraft) (schedule.ScheduledPost, error) {
	if f.createErr != nil {
		return schedule.ScheduledPost{}, f.createErr
	}
	f.created = append(f.created, draft)
	post := schedule.ScheduledPost{
		ID:          100 + len(f.created),
		DocumentID:  "post-new",
		ScheduledAt: draft.ScheduledAt,
		Status:      draft.Status,
		Channel:     schedule.FindChannel(f.channels, draft.Channel),
	}
	f.posts = append(f.posts, post)
	return post, nil
}

func (f *fakeBackend) ListChannels(context.Context) ([]schedule.TelegramChannel, error) {
	return f.channels, nil
}

func (f *fakeBackend) ListIdeas(context.Context) ([]schedule.Idea, error) {
	return f.ideas, nil
}

func console(t *testing.T) (*Model, *fakeBackend) {
	t.Helper()
	backend := &fakeBackend{
		channels: []schedule.TelegramChannel{
			{ID: 1, DocumentID: "chan-123", Title: "News"},
			{ID: 2, DocumentID: "chan-456", Title: "Memes"},
		},
		ideas: []schedule.Idea{
			{ID: 1, DocumentID: "idea-1", Title: "Launch teaser"},
		},
	}
	m := New(backend, nil)
	m.Update(tea.WindowSizeMsg{Width: 104, Height: 26})
	m.Update(events.ChannelsLoadedMsg{Channels: backend.channels})
	m.Update(events.IdeasLoadedMsg{Ideas: backend.ideas})
	m.cal.SetNow(func() time.Time {
		return time.Date(2025, time.January, 6, 9, 0, 0, 0, time.Local)
	})
	m.cal.SetFocus(time.Date(2025, time.January, 6, 0, 0, 0, 0, time.Local)) // Monday
	return m, backend
}

// Sidebar is 28 wide, the calendar gutter 6, so day columns start at x=34
// with 10 cells each: Tuesday spans 44..53. With the grid scrolled to 08:00,
// screen row 14 is the 14:00 row.
const (
	tueX = 46
	slotY14 = 14
)

var tue14 = time.Date(2025, time.January, 7, 14, 0, 0, 0, time.Local)

func dragIdeaToTue14(m *Model) tea.Cmd {
	m.handleMousePress(2, 1)
	m.handleMouseMove(tueX, slotY14)
	return m.handleMouseRelease(tueX, slotY14)
}

func asCommitResult(t *testing.T, msg tea.Msg) events.CommitResultMsg {
	t.Helper()
	res, ok := msg.(events.CommitResultMsg)
	if !ok {
		t.Fatalf("expected CommitResultMsg, got %T", msg)
	}
	return res
}

func TestDropOnConcreteFilterCommits(t *testing.T) {
	m, backend := console(t)
	m.selected = "chan-456"

	cmd := dragIdeaToTue14(m)
	if cmd == nil {
		t.Fatalf("expected a commit command")
	}
	if len(m.loading) != 1 || !calendar.IsLoadingID(m.loading[0].ID) {
		t.Fatalf("expected one optimistic placeholder, got %+v", m.loading)
	}

	res := asCommitResult(t, cmd())
	if len(backend.created) != 1 {
		t.Fatalf("created = %d", len(backend.created))
	}
	draft := backend.created[0]
	if draft.Channel != "chan-456" || draft.Idea != "idea-1" {
		t.Fatalf("draft = %+v", draft)
	}
	if !draft.ScheduledAt.Equal(tue14) {
		t.Fatalf("scheduledAt = %v, want %v", draft.ScheduledAt, tue14)
	}
	if draft.Status != schedule.StatusScheduled {
		t.Fatalf("status = %q", draft.Status)
	}

	m.Update(res)
	if len(m.loading) != 0 {
		t.Fatalf("placeholder should be replaced by the server record")
	}
}

func TestDropOnAllChannelsDefersToPicker(t *testing.T) {
	m, backend := console(t)

	if cmd := dragIdeaToTue14(m); cmd != nil {
		t.Fatalf("picker path must not fire a backend call")
	}
	if !m.picker.IsOpen() {
		t.Fatalf("picker should open for an unresolved channel")
	}
	if len(backend.created) != 0 {
		t.Fatalf("no create call may happen before the channel is chosen")
	}
	if !m.drag.HasPending() {
		t.Fatalf("drop should be pending behind the picker")
	}

	_, cmd := m.Update(events.ChannelPickedMsg{Component: "picker", ChannelID: "chan-123"})
	if cmd == nil {
		t.Fatalf("confirmed choice should produce a commit command")
	}
	if m.picker.IsOpen() {
		t.Fatalf("picker should close on confirmation")
	}

	res := asCommitResult(t, cmd())
	if len(backend.created) != 1 || backend.created[0].Channel != "chan-123" {
		t.Fatalf("created = %+v", backend.created)
	}
	if !backend.created[0].ScheduledAt.Equal(tue14) {
		t.Fatalf("scheduledAt = %v", backend.created[0].ScheduledAt)
	}

	m.Update(res)
	if len(m.loading) != 0 {
		t.Fatalf("placeholder should be gone after the commit lands")
	}
}

func TestPickerCancelDiscardsDrop(t *testing.T) {
	m, backend := console(t)

	dragIdeaToTue14(m)
	m.Update(events.ChannelPickCancelledMsg{Component: "picker"})

	if m.picker.IsOpen() || m.drag.HasPending() {
		t.Fatalf("cancel should close the picker and drop the pending state")
	}
	if len(backend.created) != 0 {
		t.Fatalf("cancel must not create anything")
	}
}

func TestDropOnAllChannelsUsesPin(t *testing.T) {
	m, backend := console(t)
	m.pinned = "chan-456"

	cmd := dragIdeaToTue14(m)
	if cmd == nil {
		t.Fatalf("pinned channel should commit without the picker")
	}
	if m.picker.IsOpen() {
		t.Fatalf("picker must stay closed when a pin resolves the channel")
	}
	asCommitResult(t, cmd())
	if len(backend.created) != 1 || backend.created[0].Channel != "chan-456" {
		t.Fatalf("created = %+v", backend.created)
	}
}

func TestRejectedCommitRollsBack(t *testing.T) {
	m, backend := console(t)
	m.selected = "chan-123"
	backend.createErr = errors.New("503 service unavailable")

	cmd := dragIdeaToTue14(m)
	if cmd == nil {
		t.Fatalf("expected a commit command")
	}
	if len(m.loading) != 1 {
		t.Fatalf("placeholder should be visible while the call is in flight")
	}

	m.Update(asCommitResult(t, cmd()))

	if len(m.loading) != 0 {
		t.Fatalf("rejected placeholder must be rolled back")
	}
	for _, post := range m.posts {
		if calendar.IsLoadingID(post.DocumentID) {
			t.Fatalf("loading id leaked into posts: %q", post.DocumentID)
		}
	}
	if !m.toasts.Visible() || m.toasts.Tone() != events.ToneError {
		t.Fatalf("rollback should surface an error toast")
	}
}

func TestReleaseOutsideCalendarIsNoop(t *testing.T) {
	m, backend := console(t)
	m.selected = "chan-123"

	m.handleMousePress(2, 1)
	m.handleMouseMove(tueX, slotY14)
	m.handleMouseMove(2, 10) // back over the sidebar
	if cmd := m.handleMouseRelease(2, 10); cmd != nil {
		t.Fatalf("release off the grid must not commit")
	}
	if len(backend.created) != 0 || len(m.loading) != 0 {
		t.Fatalf("no side effects expected")
	}
	if m.drag.Dragging() {
		t.Fatalf("gesture should be over")
	}
}

func TestFilterCycleAndShadowProjection(t *testing.T) {
	m, _ := console(t)

	m.cycleFilter(1)
	if m.selected != "chan-123" {
		t.Fatalf("selected = %q", m.selected)
	}
	m.cycleFilter(-1)
	if m.selected != schedule.AllChannels {
		t.Fatalf("selected = %q", m.selected)
	}

	m.handleMousePress(2, 1)
	m.handleMouseMove(tueX, slotY14)
	if m.shadow == nil || !m.shadow.IsShadow {
		t.Fatalf("moving over the grid should produce a shadow event")
	}
	if got := m.shadow.Start; got != tue14.UnixMilli() {
		t.Fatalf("shadow start = %d, want %d", got, tue14.UnixMilli())
	}
	m.handleMouseRelease(tueX, slotY14)
}
