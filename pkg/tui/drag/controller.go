// Package drag owns the idea-to-calendar drag gesture: a single controller
// consumes pointer positions from the UI loop, tracks the hovered time slot,
// and decides what a release means. It performs no I/O itself; drops are
// returned as decisions for the caller to execute.
package drag

import (
	"time"

	"github.com/gmoroz-comanager/co-console/pkg/calendar"
	"github.com/gmoroz-comanager/co-console/pkg/schedule"
	"github.com/gmoroz-comanager/co-console/pkg/timeutil"
)

// State is the observable phase of the interaction.
type State int

const (
	StateIdle State = iota
	StateDragging
	StateAwaitingChannel
)

func (s State) String() string {
	switch s {
	case StateDragging:
		return "dragging"
	case StateAwaitingChannel:
		return "awaiting-channel"
	default:
		return "idle"
	}
}

// DropKind classifies the decision produced by a release.
type DropKind int

const (
	// DropNone: the gesture ended with no side effect.
	DropNone DropKind = iota
	// DropCommit: create a scheduled post at Time on ChannelID.
	DropCommit
	// DropPickChannel: open the channel picker; the drop is pending.
	DropPickChannel
)

// Drop is the outcome of releasing the pointer (or resolving the picker).
type Drop struct {
	Kind      DropKind
	Idea      schedule.Idea
	Time      time.Time
	ChannelID string
}

type pending struct {
	idea schedule.Idea
	at   time.Time
}

// Controller is the single owner and mutator of the drag session. The
// session never outlives one gesture: every exit path runs the same reset.
// A pending channel choice survives the session so a new drag can start
// while the picker is open.
type Controller struct {
	dragging bool
	idea     schedule.Idea
	lastSlot *timeutil.TimeSlot
	ghostX   int
	ghostY   int

	pending *pending
}

// New returns an idle controller.
func New() *Controller {
	return &Controller{}
}

// State derives the observable phase. Dragging wins over a pending picker,
// because a second gesture may be in flight while the dialog is open.
func (c *Controller) State() State {
	switch {
	case c.dragging:
		return StateDragging
	case c.pending != nil:
		return StateAwaitingChannel
	default:
		return StateIdle
	}
}

// Dragging reports whether a gesture is in progress.
func (c *Controller) Dragging() bool { return c.dragging }

// Idea returns the dragged idea while a gesture is in progress.
func (c *Controller) Idea() (schedule.Idea, bool) {
	return c.idea, c.dragging
}

// GhostPosition is the cursor-following label position.
func (c *Controller) GhostPosition() (int, int) { return c.ghostX, c.ghostY }

// LastSlot is the slot remembered from the most recent hit, the sole source
// of truth consulted on release.
func (c *Controller) LastSlot() (timeutil.TimeSlot, bool) {
	if c.lastSlot == nil {
		return timeutil.TimeSlot{}, false
	}
	return *c.lastSlot, true
}

// HasPending reports whether a drop awaits a channel choice.
func (c *Controller) HasPending() bool { return c.pending != nil }

// Start begins a gesture from a mouse press on an idea card. Any prior
// session state except a pending channel choice is discarded.
func (c *Controller) Start(idea schedule.Idea, x, y int) {
	c.dragging = true
	c.idea = idea
	c.lastSlot = nil
	c.ghostX, c.ghostY = x+1, y+1
}

// Move consumes a pointer position. When the pointer is over a valid grid
// cell it returns the recomputed shadow event; otherwise it clears the
// remembered slot and returns nil, which is what makes a release outside
// the calendar a no-op.
func (c *Controller) Move(x, y int, layout calendar.Layout) *calendar.Event {
	if !c.dragging {
		return nil
	}
	c.ghostX, c.ghostY = x+1, y+1

	slot, ok := layout.SlotAt(x, y)
	if !ok {
		c.lastSlot = nil
		return nil
	}
	c.lastSlot = &slot
	shadow := calendar.ShadowEvent(c.idea, timeutil.SlotMillis(slot))
	return &shadow
}

// Release ends the gesture. selectedChannelID is the calendar's current
// filter ("all" or a concrete documentId); pinnedChannelID is the user's
// designated default target, if any.
func (c *Controller) Release(selectedChannelID, pinnedChannelID string) Drop {
	if !c.dragging {
		return Drop{Kind: DropNone}
	}
	idea := c.idea
	slot := c.lastSlot
	c.resetGesture()

	if slot == nil || selectedChannelID == "" {
		return Drop{Kind: DropNone}
	}
	at := time.UnixMilli(timeutil.RoundTime(timeutil.SlotMillis(*slot), true))

	if selectedChannelID != schedule.AllChannels {
		return Drop{Kind: DropCommit, Idea: idea, Time: at, ChannelID: selectedChannelID}
	}
	if pinnedChannelID != "" {
		return Drop{Kind: DropCommit, Idea: idea, Time: at, ChannelID: pinnedChannelID}
	}

	c.pending = &pending{idea: idea, at: at}
	return Drop{Kind: DropPickChannel, Idea: idea, Time: at}
}

// ConfirmChannel resolves a pending drop with the chosen channel.
func (c *Controller) ConfirmChannel(channelID string) (Drop, bool) {
	if c.pending == nil {
		return Drop{Kind: DropNone}, false
	}
	p := *c.pending
	c.pending = nil
	return Drop{Kind: DropCommit, Idea: p.idea, Time: p.at, ChannelID: channelID}, true
}

// CancelChannel discards a pending drop without a server call.
func (c *Controller) CancelChannel() {
	c.pending = nil
}

// Reset is the full teardown shared by every exit path, including program
// shutdown: gesture and pending choice are both dropped.
func (c *Controller) Reset() {
	c.resetGesture()
	c.pending = nil
}

func (c *Controller) resetGesture() {
	c.dragging = false
	c.idea = schedule.Idea{}
	c.lastSlot = nil
	c.ghostX, c.ghostY = 0, 0
}
