// Package ideanav renders the sidebar of schedulable ideas. Cards are the
// drag sources for the calendar, so the component can answer which idea sits
// under a given screen position.
package ideanav

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"github.com/gmoroz-comanager/co-console/pkg/schedule"
	"github.com/gmoroz-comanager/co-console/pkg/tui/theme"
)

// cardRows is the fixed screen height of one idea card: title, summary,
// separator. Hit-testing depends on it staying fixed.
const cardRows = 3

// Model is the idea sidebar.
type Model struct {
	theme theme.SidebarTheme
	ideas []schedule.Idea

	originX, originY int
	width, height    int
	scroll           int
}

// NewModel constructs an empty sidebar.
func NewModel(th theme.SidebarTheme) *Model {
	return &Model{theme: th}
}

// SetIdeas replaces the rendered ideas and clamps the scroll.
func (m *Model) SetIdeas(ideas []schedule.Idea) {
	m.ideas = append([]schedule.Idea(nil), ideas...)
	m.clampScroll()
}

// Ideas returns the rendered ideas.
func (m *Model) Ideas() []schedule.Idea { return m.ideas }

// SetOrigin places the component on screen for hit-testing.
func (m *Model) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

// SetSize updates the viewport dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.clampScroll()
}

// Contains reports whether the screen position lies inside the sidebar.
func (m *Model) Contains(x, y int) bool {
	return x >= m.originX && x < m.originX+m.width &&
		y >= m.originY && y < m.originY+m.height
}

// IdeaAt returns the idea card under the screen position, accounting for
// the title row and scroll offset.
func (m *Model) IdeaAt(x, y int) (schedule.Idea, bool) {
	if !m.Contains(x, y) {
		return schedule.Idea{}, false
	}
	row := y - m.originY - 1 + m.scroll // first row is the panel title
	if row < 0 {
		return schedule.Idea{}, false
	}
	index := row / cardRows
	if index < 0 || index >= len(m.ideas) {
		return schedule.Idea{}, false
	}
	return m.ideas[index], true
}

// ScrollBy moves the card viewport; positive is down.
func (m *Model) ScrollBy(delta int) {
	m.scroll += delta
	m.clampScroll()
}

func (m *Model) clampScroll() {
	limit := len(m.ideas)*cardRows - (m.height - 1)
	if limit < 0 {
		limit = 0
	}
	if m.scroll > limit {
		m.scroll = limit
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

// View renders the sidebar.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	inner := m.width - 1 // right border

	lines := make([]string, 0, m.height)
	lines = append(lines, m.theme.Title.Render(truncate.String("Ideas", uint(inner))))

	body := make([]string, 0, len(m.ideas)*cardRows)
	for _, idea := range m.ideas {
		title := truncate.StringWithTail("▌ "+idea.Title, uint(inner), "…")
		summary := idea.Summary
		if summary == "" {
			summary = idea.Status
		}
		body = append(body,
			title,
			truncate.StringWithTail("  "+summary, uint(inner), "…"),
			"",
		)
	}
	if len(m.ideas) == 0 {
		body = append(body, "  no ideas yet")
	}

	visible := m.height - 1
	if m.scroll < len(body) {
		body = body[m.scroll:]
	} else {
		body = nil
	}
	if len(body) > visible {
		body = body[:visible]
	}
	lines = append(lines, body...)
	for len(lines) < m.height {
		lines = append(lines, "")
	}

	return m.theme.Frame.Render(
		lipgloss.NewStyle().Width(inner).Render(strings.Join(lines, "\n")))
}
