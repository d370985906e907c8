// Package channelpicker is the modal list used for two-step scheduling:
// dropping an idea on the "all channels" view with no pinned channel opens
// this picker, and only a confirmed choice triggers the create call.
package channelpicker

import (
	"fmt"

	"github.com/charmbracelet/bubbles/v2/list"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/gmoroz-comanager/co-console/pkg/colors"
	"github.com/gmoroz-comanager/co-console/pkg/schedule"
	"github.com/gmoroz-comanager/co-console/pkg/tui/events"
	"github.com/gmoroz-comanager/co-console/pkg/tui/theme"
)

// Model wraps a bubbles list of channels inside a modal frame.
type Model struct {
	id     events.ComponentID
	theme  theme.PickerTheme
	list   list.Model
	open   bool
	width  int
	height int
}

// NewModel constructs a closed picker.
func NewModel(id events.ComponentID, th theme.PickerTheme) *Model {
	delegate := list.NewDefaultDelegate()
	l := list.New(nil, delegate, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	return &Model{id: id, theme: th, list: l}
}

// ID returns the component identifier used in emitted events.
func (m *Model) ID() events.ComponentID { return m.id }

// Open shows the picker over the given channel list.
func (m *Model) Open(channels []schedule.TelegramChannel) {
	items := make([]list.Item, 0, len(channels))
	for i := range channels {
		items = append(items, channelItem{
			channel: channels[i],
			color:   colors.ChannelColor(&channels[i], channels),
		})
	}
	m.list.SetItems(items)
	m.list.Select(0)
	m.resize()
	m.open = true
}

// Close hides the picker without emitting anything.
func (m *Model) Close() {
	m.open = false
}

// IsOpen reports visibility.
func (m *Model) IsOpen() bool { return m.open }

// SetSize stores the available screen size for the modal placement.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.resize()
}

func (m *Model) resize() {
	w := m.width / 2
	if w < 30 {
		w = min(30, m.width)
	}
	h := len(m.list.Items()) * 3
	if limit := m.height - 6; h > limit {
		h = limit
	}
	if h < 3 {
		h = 3
	}
	m.list.SetSize(w, h)
}

// Update handles confirm/cancel keys and forwards the rest to the list.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.open {
		return nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			item, ok := m.list.SelectedItem().(channelItem)
			if !ok {
				return events.ChannelPickCancelledCmd(m.id)
			}
			return events.ChannelPickedCmd(m.id, item.channel.DocumentID)
		case "esc", "q":
			return events.ChannelPickCancelledCmd(m.id)
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return cmd
}

// View renders the modal frame with the channel list.
func (m *Model) View() string {
	if !m.open {
		return ""
	}
	title := m.theme.Title.Render("Choose a channel")
	hint := m.theme.Hint.Render("enter: schedule  esc: cancel")
	body := lipgloss.JoinVertical(lipgloss.Left, title, "", m.list.View(), "", hint)
	return m.theme.Frame.Render(body)
}

type channelItem struct {
	channel schedule.TelegramChannel
	color   string
}

func (c channelItem) Title() string {
	dot := lipgloss.NewStyle().Foreground(lipgloss.Color(c.color)).Render("■")
	return fmt.Sprintf("%s %s", dot, c.channel.Title)
}

func (c channelItem) Description() string {
	if c.channel.Username != "" {
		return "@" + c.channel.Username
	}
	return c.channel.DocumentID
}

func (c channelItem) FilterValue() string { return c.channel.Title }
