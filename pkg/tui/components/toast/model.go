// Package toast renders transient, dismissible notifications.
package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/gmoroz-comanager/co-console/pkg/tui/events"
	"github.com/gmoroz-comanager/co-console/pkg/tui/theme"
)

// Duration a toast stays visible before auto-expiring.
const Duration = 4 * time.Second

type expireMsg struct {
	seq int
}

// Model is the toast bar. Showing a new toast supersedes the previous one;
// the sequence counter keeps stale expiry ticks from hiding it early.
type Model struct {
	theme   theme.ToastTheme
	message string
	tone    events.Tone
	visible bool
	width   int
	seq     int
}

// NewModel constructs an empty toast bar.
func NewModel(th theme.ToastTheme) *Model {
	return &Model{theme: th}
}

// SetWidth updates the wrap width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// Visible reports whether a toast is currently shown.
func (m *Model) Visible() bool { return m.visible }

// Message returns the current toast text.
func (m *Model) Message() string { return m.message }

// Tone returns the current toast tone.
func (m *Model) Tone() events.Tone { return m.tone }

// Show displays a toast and returns the expiry tick.
func (m *Model) Show(tone events.Tone, message string) tea.Cmd {
	m.message = message
	m.tone = tone
	m.visible = true
	m.seq++
	seq := m.seq
	return tea.Tick(Duration, func(time.Time) tea.Msg {
		return expireMsg{seq: seq}
	})
}

// Dismiss hides the toast immediately.
func (m *Model) Dismiss() {
	m.visible = false
}

// Update consumes expiry ticks.
func (m *Model) Update(msg tea.Msg) {
	if e, ok := msg.(expireMsg); ok && e.seq == m.seq {
		m.visible = false
	}
}

// View renders the toast, or empty when hidden.
func (m *Model) View() string {
	if !m.visible {
		return ""
	}
	text := m.message
	if m.width > 4 {
		text = wordwrap.String(text, m.width-4)
	}
	switch m.tone {
	case events.ToneSuccess:
		return m.theme.Success.Render(text)
	case events.ToneWarning:
		return m.theme.Warning.Render(text)
	default:
		return m.theme.Error.Render(text)
	}
}
