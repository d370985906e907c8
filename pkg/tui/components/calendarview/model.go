// Package calendarview renders the week/day/month calendar surface and
// publishes its grid geometry as data, so the drag layer can translate
// pointer positions into time slots without inspecting rendered output.
package calendarview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/gmoroz-comanager/co-console/pkg/calendar"
	"github.com/gmoroz-comanager/co-console/pkg/colors"
	"github.com/gmoroz-comanager/co-console/pkg/tui/theme"
)

const (
	// GutterWidth is the hour label column, e.g. "14:00 ".
	GutterWidth = 6
	// HeaderRows covers the day headers and their separator line.
	HeaderRows = 2
	// DefaultRowHeight renders two rows per hour, one per half hour.
	DefaultRowHeight = 2
)

// Model is the calendar grid.
type Model struct {
	theme  theme.CalendarTheme
	mode   calendar.Mode
	focus  time.Time
	events []calendar.Event
	now    func() time.Time

	originX, originY int
	width, height    int
	scroll           int
	rowHeight        int
}

// NewModel constructs a week view focused on today, scrolled to the morning.
func NewModel(th theme.CalendarTheme) *Model {
	m := &Model{
		theme:     th,
		mode:      calendar.ModeWeek,
		focus:     time.Now(),
		now:       time.Now,
		rowHeight: DefaultRowHeight,
	}
	m.scroll = 8 * m.rowHeight
	return m
}

// SetNow injects the clock, for tests and the today marker.
func (m *Model) SetNow(now func() time.Time) { m.now = now }

// SetOrigin places the component on screen.
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

// SetFocus moves the focused date.
func (m *Model) SetFocus(focus time.Time) { m.focus = focus }

// Focus returns the focused date.
func (m *Model) Focus() time.Time { return m.focus }

// SetMode switches between week, day, and month rendering.
func (m *Model) SetMode(mode calendar.Mode) { m.mode = mode }

// Mode returns the current rendering mode.
func (m *Model) Mode() calendar.Mode { return m.mode }

// SetEvents replaces the displayed events (persisted + shadow, pre-merged).
func (m *Model) SetEvents(events []calendar.Event) {
	m.events = events
}

// ScrollBy moves the time viewport; positive scrolls later.
func (m *Model) ScrollBy(rows int) {
	m.scroll += rows
	m.clampScroll()
}

func (m *Model) clampScroll() {
	limit := 24*m.rowHeight - (m.height - HeaderRows)
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

// Contains reports whether the screen position lies inside the calendar.
func (m *Model) Contains(x, y int) bool {
	return m.Layout().Bounds.Contains(x, y)
}

// Layout publishes the rendered grid as data. It must stay in lockstep with
// View: the drag layer trusts it completely.
func (m *Model) Layout() calendar.Layout {
	l := calendar.Layout{
		Mode:        m.mode,
		Focus:       m.focus,
		Bounds:      calendar.Rect{X: m.originX, Y: m.originY, Width: m.width, Height: m.height},
		FirstRowTop: m.originY + HeaderRows,
		RowHeight:   m.rowHeight,
		ScrollTop:   m.scroll,
	}
	switch m.mode {
	case calendar.ModeWeek:
		l.Columns = calendar.WeekColumns(m.focus, m.originX+GutterWidth, m.originX+m.width)
	case calendar.ModeDay:
		l.Columns = []calendar.DayColumn{{
			Date: m.focus,
			MinX: m.originX + GutterWidth,
			MaxX: m.originX + m.width,
		}}
	}
	return l
}

// View renders the calendar.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.mode == calendar.ModeMonth {
		return m.viewMonth()
	}
	return m.viewGrid()
}

func (m *Model) viewGrid() string {
	layout := m.Layout()
	lines := make([]string, 0, m.height)
	lines = append(lines, m.headerLine(layout))
	lines = append(lines, m.theme.GridLine.Render(strings.Repeat("─", m.width)))

	visible := m.height - HeaderRows
	for r := 0; r < visible; r++ {
		abs := r + m.scroll
		hour := abs / m.rowHeight
		sub := abs % m.rowHeight
		if hour > 23 {
			lines = append(lines, "")
			continue
		}
		minute := sub * (60 / m.rowHeight)

		var b strings.Builder
		if sub == 0 {
			b.WriteString(m.theme.Gutter.Render(fmt.Sprintf("%02d:00 ", hour)))
		} else {
			b.WriteString(strings.Repeat(" ", GutterWidth))
		}
		for _, col := range layout.Columns {
			b.WriteString(m.cell(col, hour, minute))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func (m *Model) headerLine(layout calendar.Layout) string {
	var b strings.Builder
	b.WriteString(m.theme.Gutter.Render(pad(m.focus.Format("Jan06"), GutterWidth)))
	today := m.now().Format("2006-01-02")
	for _, col := range layout.Columns {
		width := col.MaxX - col.MinX
		label := pad(col.Date.Format("Mon 2"), width)
		if col.Date.Format("2006-01-02") == today {
			b.WriteString(m.theme.HeaderNow.Render(label))
		} else {
			b.WriteString(m.theme.HeaderDay.Render(label))
		}
	}
	return b.String()
}

// cell renders one column at one half-hour row.
func (m *Model) cell(col calendar.DayColumn, hour, minute int) string {
	width := col.MaxX - col.MinX
	if width <= 0 {
		return ""
	}
	cellStart := time.Date(col.Date.Year(), col.Date.Month(), col.Date.Day(), hour, minute, 0, 0, time.Local).UnixMilli()
	cellEnd := cellStart + int64(60/m.rowHeight)*60*1000

	for i := range m.events {
		e := &m.events[i]
		if e.Start >= cellEnd || e.End <= cellStart {
			continue
		}
		label := ""
		if e.Start >= cellStart {
			label = eventLabel(e)
		}
		// truncate cuts exact-fit strings too, so only ask when needed.
		if ansi.PrintableRuneWidth(label) > width-1 {
			label = truncate.StringWithTail(label, uint(width-1), "…")
		}
		text := pad("▏"+label, width)
		style := m.theme.EventBase
		if e.IsShadow {
			style = m.theme.ShadowBase
		}
		return style.
			Foreground(lipgloss.Color(colors.Foreground(e.Color))).
			Background(lipgloss.Color(e.Color)).
			Render(text)
	}

	sep := "│"
	if minute == 0 {
		return m.theme.GridLine.Render(pad(sep, width))
	}
	return pad(sep, width)
}

func eventLabel(e *calendar.Event) string {
	switch {
	case e.IsLoading:
		return "⋯ " + e.Title
	case e.IsShadow:
		return "◌ " + e.Title
	default:
		return e.Title
	}
}

// viewMonth renders a drop-inert month overview: day numbers with a dot for
// days carrying at least one event.
func (m *Model) viewMonth() string {
	first := time.Date(m.focus.Year(), m.focus.Month(), 1, 0, 0, 0, 0, time.Local)
	next := first.AddDate(0, 1, 0)

	busy := map[string]bool{}
	for _, e := range m.events {
		busy[time.UnixMilli(e.Start).Format("2006-01-02")] = true
	}

	lines := []string{
		m.theme.HeaderDay.Render(pad(first.Format("January 2006"), m.width)),
		m.theme.Gutter.Render("Mon  Tue  Wed  Thu  Fri  Sat  Sun"),
	}

	var row strings.Builder
	day := calendar.Monday(first)
	for day.Before(next) {
		for i := 0; i < 7; i++ {
			label := "     "
			if !day.Before(first) && day.Before(next) {
				mark := " "
				if busy[day.Format("2006-01-02")] {
					mark = "•"
				}
				label = fmt.Sprintf("%3d%s ", day.Day(), mark)
			}
			if day.Format("2006-01-02") == m.now().Format("2006-01-02") {
				row.WriteString(m.theme.HeaderNow.Render(label))
			} else {
				row.WriteString(label)
			}
			day = day.AddDate(0, 0, 1)
		}
		lines = append(lines, row.String())
		row.Reset()
	}
	return strings.Join(lines, "\n")
}

// pad fits s into exactly width cells, measuring display width so
// double-width glyphs cannot push a column out of alignment.
func pad(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.PrintableRuneWidth(s) > width {
		s = truncate.String(s, uint(width))
	}
	if gap := width - ansi.PrintableRuneWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
