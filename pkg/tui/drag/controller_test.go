package drag

import (
	"testing"
	"time"

	"github.com/gmoroz-comanager/co-console/pkg/calendar"
	"github.com/gmoroz-comanager/co-console/pkg/schedule"
)

func weekLayout() calendar.Layout {
	focus := time.Date(2025, time.January, 8, 0, 0, 0, 0, time.Local)
	return calendar.Layout{
		Mode:        calendar.ModeWeek,
		Focus:       focus,
		Bounds:      calendar.Rect{X: 0, Y: 0, Width: 80, Height: 40},
		Columns:     calendar.WeekColumns(focus, 6, 76),
		FirstRowTop: 2,
		RowHeight:   1,
		ScrollTop:   0,
	}
}

func ideaA() schedule.Idea {
	return schedule.Idea{DocumentID: "idea-1", Title: "Idea A"}
}

func TestIdleMoveIsNoop(t *testing.T) {
	c := New()
	if shadow := c.Move(20, 10, weekLayout()); shadow != nil {
		t.Fatalf("move without drag produced a shadow")
	}
	if c.State() != StateIdle {
		t.Fatalf("state %s", c.State())
	}
}

func TestDragProducesShadowAndSlot(t *testing.T) {
	c := New()
	c.Start(ideaA(), 5, 5)
	if c.State() != StateDragging {
		t.Fatalf("state %s", c.State())
	}

	l := weekLayout()
	shadow := c.Move(17, l.FirstRowTop+14, l) // Tuesday, hour 14
	if shadow == nil {
		t.Fatalf("expected shadow over valid cell")
	}
	if shadow.ID != calendar.ShadowEventID || !shadow.IsShadow {
		t.Fatalf("shadow %+v", shadow)
	}
	want := time.Date(2025, time.January, 7, 14, 0, 0, 0, time.Local).UnixMilli()
	if shadow.Start != want {
		t.Fatalf("shadow start %d, want %d", shadow.Start, want)
	}
	if shadow.End != shadow.Start+calendar.EventDurationMillis {
		t.Fatalf("shadow end %d", shadow.End)
	}
	if slot, ok := c.LastSlot(); !ok || slot.Hour != 14 {
		t.Fatalf("slot %+v ok=%v", slot, ok)
	}
}

func TestMoveOutsideClearsSlot(t *testing.T) {
	c := New()
	c.Start(ideaA(), 5, 5)
	l := weekLayout()
	if c.Move(17, l.FirstRowTop+14, l) == nil {
		t.Fatalf("expected shadow first")
	}
	if shadow := c.Move(200, 200, l); shadow != nil {
		t.Fatalf("shadow should clear when pointer leaves the calendar")
	}
	if _, ok := c.LastSlot(); ok {
		t.Fatalf("slot should clear when pointer leaves the calendar")
	}
}

func TestReleaseOutsideIsNoop(t *testing.T) {
	c := New()
	c.Start(ideaA(), 5, 5)
	l := weekLayout()
	c.Move(17, l.FirstRowTop+14, l)
	c.Move(200, 200, l)

	drop := c.Release("chan-a", "")
	if drop.Kind != DropNone {
		t.Fatalf("drop %+v", drop)
	}
	if c.State() != StateIdle {
		t.Fatalf("state %s", c.State())
	}
}

func TestReleaseOnConcreteChannelCommits(t *testing.T) {
	c := New()
	c.Start(ideaA(), 5, 5)
	l := weekLayout()
	c.Move(17, l.FirstRowTop+14, l)

	drop := c.Release("chan-a", "")
	if drop.Kind != DropCommit {
		t.Fatalf("drop %+v", drop)
	}
	if drop.ChannelID != "chan-a" || drop.Idea.DocumentID != "idea-1" {
		t.Fatalf("drop %+v", drop)
	}
	want := time.Date(2025, time.January, 7, 14, 0, 0, 0, time.Local)
	if !drop.Time.Equal(want) {
		t.Fatalf("drop time %s", drop.Time)
	}
	if c.State() != StateIdle {
		t.Fatalf("state %s", c.State())
	}
}

func TestReleaseAllViewUsesPin(t *testing.T) {
	c := New()
	c.Start(ideaA(), 5, 5)
	l := weekLayout()
	c.Move(17, l.FirstRowTop+14, l)

	drop := c.Release(schedule.AllChannels, "chan-pin")
	if drop.Kind != DropCommit || drop.ChannelID != "chan-pin" {
		t.Fatalf("drop %+v", drop)
	}
}

func TestReleaseAllViewWithoutPinDefersToPicker(t *testing.T) {
	c := New()
	c.Start(ideaA(), 5, 5)
	l := weekLayout()
	c.Move(17, l.FirstRowTop+14, l)

	drop := c.Release(schedule.AllChannels, "")
	if drop.Kind != DropPickChannel {
		t.Fatalf("drop %+v", drop)
	}
	if c.State() != StateAwaitingChannel {
		t.Fatalf("state %s", c.State())
	}
	// The gesture itself is torn down so a second drag can start.
	if c.Dragging() {
		t.Fatalf("gesture should be reset while picker is open")
	}

	confirmed, ok := c.ConfirmChannel("chan-123")
	if !ok || confirmed.Kind != DropCommit || confirmed.ChannelID != "chan-123" {
		t.Fatalf("confirm %+v ok=%v", confirmed, ok)
	}
	if confirmed.Idea.Title != "Idea A" {
		t.Fatalf("pending idea lost: %+v", confirmed.Idea)
	}
	if c.State() != StateIdle || c.HasPending() {
		t.Fatalf("pending not cleared")
	}
}

func TestCancelChannelDiscardsPending(t *testing.T) {
	c := New()
	c.Start(ideaA(), 5, 5)
	l := weekLayout()
	c.Move(17, l.FirstRowTop+14, l)
	c.Release(schedule.AllChannels, "")

	c.CancelChannel()
	if c.State() != StateIdle {
		t.Fatalf("state %s", c.State())
	}
	if _, ok := c.ConfirmChannel("chan-a"); ok {
		t.Fatalf("confirm after cancel must be a no-op")
	}
}

func TestSecondDragWhilePickerOpen(t *testing.T) {
	c := New()
	c.Start(ideaA(), 5, 5)
	l := weekLayout()
	c.Move(17, l.FirstRowTop+14, l)
	c.Release(schedule.AllChannels, "")

	second := schedule.Idea{DocumentID: "idea-2", Title: "Idea B"}
	c.Start(second, 5, 5)
	if c.State() != StateDragging {
		t.Fatalf("state %s", c.State())
	}
	if !c.HasPending() {
		t.Fatalf("pending choice must survive a new drag")
	}

	c.Move(27, l.FirstRowTop+9, l) // Wednesday, hour 9
	drop := c.Release("chan-b", "")
	if drop.Kind != DropCommit || drop.Idea.DocumentID != "idea-2" {
		t.Fatalf("drop %+v", drop)
	}

	confirmed, ok := c.ConfirmChannel("chan-123")
	if !ok || confirmed.Idea.DocumentID != "idea-1" {
		t.Fatalf("pending drop corrupted: %+v", confirmed)
	}
}

func TestResetConvergesAllPaths(t *testing.T) {
	c := New()
	c.Start(ideaA(), 5, 5)
	l := weekLayout()
	c.Move(17, l.FirstRowTop+14, l)
	c.Release(schedule.AllChannels, "")
	c.Start(ideaA(), 5, 5)

	c.Reset()
	if c.State() != StateIdle || c.Dragging() || c.HasPending() {
		t.Fatalf("reset incomplete: %s", c.State())
	}
	if _, ok := c.LastSlot(); ok {
		t.Fatalf("slot survived reset")
	}
}
