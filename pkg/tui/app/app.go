// Package app hosts the Bubble Tea program for the scheduling console: the
// idea sidebar, the calendar grid, the drag loop, and the optimistic commit
// pipeline against the CMS backend.
package app

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/gmoroz-comanager/co-console/pkg/api"
	"github.com/gmoroz-comanager/co-console/pkg/calendar"
	"github.com/gmoroz-comanager/co-console/pkg/schedule"
	"github.com/gmoroz-comanager/co-console/pkg/store"
	"github.com/gmoroz-comanager/co-console/pkg/timeutil"
	"github.com/gmoroz-comanager/co-console/pkg/tui/components/calendarview"
	"github.com/gmoroz-comanager/co-console/pkg/tui/components/channelpicker"
	"github.com/gmoroz-comanager/co-console/pkg/tui/components/ideanav"
	"github.com/gmoroz-comanager/co-console/pkg/tui/components/toast"
	"github.com/gmoroz-comanager/co-console/pkg/tui/drag"
	"github.com/gmoroz-comanager/co-console/pkg/tui/events"
	"github.com/gmoroz-comanager/co-console/pkg/tui/theme"
)

const (
	sidebarWidth   = 28
	footerRows     = 1
	requestTimeout = 15 * time.Second
)

// Backend is the slice of the CMS API the UI needs. *api.Client satisfies it.
type Backend interface {
	ListScheduledPosts(ctx context.Context, start, end time.Time) ([]schedule.ScheduledPost, error)
	CreateScheduledPost(ctx context.Context, draft api.PostDraft) (schedule.ScheduledPost, error)
	ListChannels(ctx context.Context) ([]schedule.TelegramChannel, error)
	ListIdeas(ctx context.Context) ([]schedule.Idea, error)
}

var _ Backend = (*api.Client)(nil)

// Model contains UI state.
type Model struct {
	backend Backend
	cache   *store.Cache
	theme   theme.Theme

	sidebar *ideanav.Model
	cal     *calendarview.Model
	picker  *channelpicker.Model
	toasts  *toast.Model
	drag    *drag.Controller

	channels []schedule.TelegramChannel
	posts    []schedule.ScheduledPost
	// loading holds the optimistic placeholders not yet confirmed by a
	// fetch; shadow is the drag preview, at most one.
	loading []calendar.Event
	shadow  *calendar.Event

	// selected is the channel filter: "all" or a channel documentId.
	selected string
	pinned   string

	termWidth  int
	termHeight int
}

// New creates the UI model. cache may be nil; cached snapshots paint the
// first frame and are superseded by every fetch.
func New(backend Backend, cache *store.Cache) *Model {
	th := theme.Default()
	m := &Model{
		backend:  backend,
		cache:    cache,
		theme:    th,
		sidebar:  ideanav.NewModel(th.Sidebar),
		cal:      calendarview.NewModel(th.Calendar),
		picker:   channelpicker.NewModel("picker", th.Picker),
		toasts:   toast.NewModel(th.Toast),
		drag:     drag.New(),
		selected: schedule.AllChannels,
	}
	m.loadSnapshot()
	m.syncEvents()
	return m
}

func (m *Model) loadSnapshot() {
	if m.cache == nil {
		return
	}
	if channels, ok, err := m.cache.Channels(); err == nil && ok {
		m.channels = channels
	}
	if posts, ok, err := m.cache.Posts(); err == nil && ok {
		m.posts = posts
	}
	if pinned, err := m.cache.Pinned(); err == nil {
		m.pinned = pinned
	}
}

// Init kicks off the initial loads.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.fetchChannels(), m.fetchPosts(), m.fetchIdeas())
}

// fetchWindow is the visible range padded by a month on each side, so week
// navigation near a month boundary needs no immediate re-fetch.
func fetchWindow(focus time.Time) (time.Time, time.Time) {
	start := time.Date(focus.Year(), focus.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, -1, 0)
	end := start.AddDate(0, 3, 0).Add(-time.Millisecond)
	return start, end
}

func (m *Model) fetchPosts() tea.Cmd {
	backend := m.backend
	start, end := fetchWindow(m.cal.Focus())
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		posts, err := backend.ListScheduledPosts(ctx, start, end)
		return events.PostsLoadedMsg{Posts: posts, Start: start, End: end, Err: err}
	}
}

func (m *Model) fetchChannels() tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		channels, err := backend.ListChannels(ctx)
		return events.ChannelsLoadedMsg{Channels: channels, Err: err}
	}
}

func (m *Model) fetchIdeas() tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		ideas, err := backend.ListIdeas(ctx)
		return events.IdeasLoadedMsg{Ideas: ideas, Err: err}
	}
}

// syncEvents re-projects posts through the channel filter and layers the
// optimistic placeholders and the drag shadow on top.
func (m *Model) syncEvents() {
	projected := calendar.Project(m.posts, m.channels, m.selected, calendar.ChannelColorFunc(m.channels))
	display := append(projected, m.loading...)
	m.cal.SetEvents(calendar.Merge(display, m.shadow))
}

// commit inserts the optimistic placeholder and fires the create call. The
// placeholder id travels with the request so a failure can roll it back.
func (m *Model) commit(drop drag.Drop) tea.Cmd {
	ch := schedule.FindChannel(m.channels, drop.ChannelID)
	placeholder := calendar.LoadingEvent(drop.Idea, drop.Time.UnixMilli(), ch, calendar.ChannelColorFunc(m.channels))
	m.loading = append(m.loading, placeholder)
	m.syncEvents()

	backend := m.backend
	loadingID := placeholder.ID
	draft := api.PostDraft{
		Idea:        drop.Idea.DocumentID,
		ScheduledAt: drop.Time,
		Channel:     drop.ChannelID,
		Status:      schedule.StatusScheduled,
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		post, err := backend.CreateScheduledPost(ctx, draft)
		return events.CommitResultMsg{LoadingID: loadingID, Post: post, Err: err}
	}
}

// Update routes messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()

	case tea.KeyPressMsg:
		m.handleKey(msg, &cmds)

	case tea.MouseClickMsg:
		ev := msg.Mouse()
		if cmd := m.handleMousePress(ev.X, ev.Y); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case tea.MouseMotionMsg:
		ev := msg.Mouse()
		m.handleMouseMove(ev.X, ev.Y)
	case tea.MouseReleaseMsg:
		ev := msg.Mouse()
		if cmd := m.handleMouseRelease(ev.X, ev.Y); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case tea.MouseWheelMsg:
		ev := msg.Mouse()
		delta := 1
		if ev.Button == tea.MouseWheelUp {
			delta = -1
		}
		if m.sidebar.Contains(ev.X, ev.Y) {
			m.sidebar.ScrollBy(delta)
		} else {
			m.cal.ScrollBy(delta)
		}

	case events.ChannelsLoadedMsg:
		if msg.Err != nil {
			cmds = append(cmds, m.toasts.Show(events.ToneWarning, "Could not load channels: "+msg.Err.Error()))
			break
		}
		m.channels = msg.Channels
		if m.cache != nil {
			_ = m.cache.SaveChannels(msg.Channels)
		}
		m.syncEvents()

	case events.PostsLoadedMsg:
		if msg.Err != nil {
			cmds = append(cmds, m.toasts.Show(events.ToneError, "Could not load scheduled posts: "+msg.Err.Error()))
			break
		}
		// A successful fetch is authoritative: placeholders are dropped
		// along with whatever state they papered over.
		m.posts = msg.Posts
		m.loading = nil
		if m.cache != nil {
			_ = m.cache.SavePosts(msg.Posts)
		}
		m.syncEvents()

	case events.IdeasLoadedMsg:
		if msg.Err != nil {
			cmds = append(cmds, m.toasts.Show(events.ToneWarning, "Could not load ideas: "+msg.Err.Error()))
			break
		}
		m.sidebar.SetIdeas(msg.Ideas)

	case events.CommitResultMsg:
		m.loading = calendar.RemoveByID(m.loading, msg.LoadingID)
		if msg.Err != nil {
			m.syncEvents()
			cmds = append(cmds, m.toasts.Show(events.ToneError, "Failed to schedule post. Please try again."))
			break
		}
		m.posts = append(m.posts, msg.Post)
		m.syncEvents()
		cmds = append(cmds,
			m.toasts.Show(events.ToneSuccess, "Post scheduled"),
			m.fetchPosts())

	case events.ChannelPickedMsg:
		m.picker.Close()
		if drop, ok := m.drag.ConfirmChannel(msg.ChannelID); ok {
			cmds = append(cmds, m.commit(drop))
		}

	case events.ChannelPickCancelledMsg:
		m.picker.Close()
		m.drag.CancelChannel()

	case events.ToastMsg:
		cmds = append(cmds, m.toasts.Show(msg.Tone, msg.Message))
	}

	m.toasts.Update(msg)
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	if m.picker.IsOpen() {
		if cmd := m.picker.Update(msg); cmd != nil {
			*cmds = append(*cmds, cmd)
		}
		return
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.drag.Reset()
		*cmds = append(*cmds, tea.Quit)
	case "w":
		m.cal.SetMode(calendar.ModeWeek)
	case "d":
		m.cal.SetMode(calendar.ModeDay)
	case "m":
		m.cal.SetMode(calendar.ModeMonth)
	case "left", "h":
		m.moveFocus(-1, cmds)
	case "right", "l":
		m.moveFocus(1, cmds)
	case "up", "k":
		m.cal.ScrollBy(-1)
	case "down", "j":
		m.cal.ScrollBy(1)
	case "t":
		m.cal.SetFocus(time.Now())
		*cmds = append(*cmds, m.fetchPosts())
	case "r":
		*cmds = append(*cmds, m.fetchChannels(), m.fetchPosts(), m.fetchIdeas())
	case "tab":
		m.cycleFilter(1)
	case "shift+tab":
		m.cycleFilter(-1)
	case "p":
		m.togglePin(cmds)
	case "esc":
		m.toasts.Dismiss()
	}
}

func (m *Model) moveFocus(direction int, cmds *[]tea.Cmd) {
	focus := m.cal.Focus()
	switch m.cal.Mode() {
	case calendar.ModeDay:
		focus = focus.AddDate(0, 0, direction)
	case calendar.ModeMonth:
		focus = focus.AddDate(0, direction, 0)
	default:
		focus = focus.AddDate(0, 0, 7*direction)
	}
	m.cal.SetFocus(focus)
	*cmds = append(*cmds, m.fetchPosts())
}

// cycleFilter steps through "all" plus each channel in list order. Posts
// without a channel stay visible under every filter.
func (m *Model) cycleFilter(direction int) {
	options := make([]string, 0, len(m.channels)+1)
	options = append(options, schedule.AllChannels)
	for _, ch := range m.channels {
		options = append(options, ch.DocumentID)
	}
	current := 0
	for i, id := range options {
		if id == m.selected {
			current = i
			break
		}
	}
	next := (current + direction + len(options)) % len(options)
	m.selected = options[next]
	m.syncEvents()
}

// togglePin pins the currently selected channel as the default drop target
// for the "all channels" view, or clears the pin when it already matches.
func (m *Model) togglePin(cmds *[]tea.Cmd) {
	switch {
	case m.selected == schedule.AllChannels && m.pinned != "":
		m.pinned = ""
		*cmds = append(*cmds, m.toasts.Show(events.ToneSuccess, "Pin cleared"))
	case m.selected == schedule.AllChannels:
		*cmds = append(*cmds, m.toasts.Show(events.ToneWarning, "Select a channel filter to pin it"))
		return
	case m.pinned == m.selected:
		m.pinned = ""
		*cmds = append(*cmds, m.toasts.Show(events.ToneSuccess, "Pin cleared"))
	default:
		m.pinned = m.selected
		if ch := schedule.FindChannel(m.channels, m.pinned); ch != nil {
			*cmds = append(*cmds, m.toasts.Show(events.ToneSuccess, "Pinned "+ch.Title))
		}
	}
	if m.cache != nil {
		_ = m.cache.SavePinned(m.pinned)
	}
}

// handleMousePress starts a drag when the press lands on an idea card.
func (m *Model) handleMousePress(x, y int) tea.Cmd {
	if m.picker.IsOpen() {
		return nil
	}
	if idea, ok := m.sidebar.IdeaAt(x, y); ok {
		m.drag.Start(idea, x, y)
	}
	return nil
}

// handleMouseMove feeds the drag controller and refreshes the shadow block.
func (m *Model) handleMouseMove(x, y int) {
	if !m.drag.Dragging() {
		return
	}
	m.shadow = m.drag.Move(x, y, m.cal.Layout())
	m.syncEvents()
}

// handleMouseRelease resolves the drop decision: commit, open the channel
// picker, or nothing.
func (m *Model) handleMouseRelease(x, y int) tea.Cmd {
	if !m.drag.Dragging() {
		return nil
	}
	drop := m.drag.Release(m.selected, m.pinned)
	m.shadow = nil
	m.syncEvents()

	switch drop.Kind {
	case drag.DropCommit:
		return m.commit(drop)
	case drag.DropPickChannel:
		m.picker.Open(m.channels)
	}
	return nil
}

func (m *Model) applySizes() {
	body := m.termHeight - footerRows
	if body < 0 {
		body = 0
	}
	side := sidebarWidth
	if side > m.termWidth {
		side = m.termWidth
	}
	m.sidebar.SetOrigin(0, 0)
	m.sidebar.SetSize(side, body)
	m.cal.SetOrigin(side, 0)
	m.cal.SetSize(m.termWidth-side, body)
	m.picker.SetSize(m.termWidth, m.termHeight)
	m.toasts.SetWidth(m.termWidth)
}

// View renders the console.
func (m *Model) View() string {
	if m.termWidth == 0 || m.termHeight == 0 {
		return "loading..."
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), m.cal.View())
	if m.picker.IsOpen() {
		body = lipgloss.Place(m.termWidth, m.termHeight-footerRows,
			lipgloss.Center, lipgloss.Center, m.picker.View())
	}

	footer := m.footer()
	if m.toasts.Visible() {
		footer = m.toasts.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

func (m *Model) footer() string {
	help := m.theme.Footer.Help.Render("q quit · w/d/m view · ←/→ move · tab filter · p pin · r refresh")

	status := "filter: all"
	if ch := schedule.FindChannel(m.channels, m.selected); ch != nil {
		status = "filter: " + ch.Title
	}
	if ch := schedule.FindChannel(m.channels, m.pinned); ch != nil {
		status += " · pin: " + ch.Title
	}
	if slot, ok := m.drag.LastSlot(); ok && m.drag.Dragging() {
		at := timeutil.SlotTime(slot)
		status += fmt.Sprintf(" · drop: %s", at.Format("Mon 15:04"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, help, "  ", m.theme.Footer.Status.Render(status))
}

// Run starts the program in the alternate screen with mouse tracking.
func Run(backend Backend, cache *store.Cache) error {
	p := tea.NewProgram(New(backend, cache), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
