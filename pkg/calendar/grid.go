package calendar

import (
	"time"

	"github.com/gmoroz-comanager/co-console/pkg/timeutil"
)

// Mode selects the calendar rendering mode. Only week and day resolve time
// slots; month is drop-inert.
type Mode string

const (
	ModeWeek  Mode = "week"
	ModeDay   Mode = "day"
	ModeMonth Mode = "month"
)

// Rect is a cell-coordinate rectangle on screen.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// DayColumn is one rendered day with its horizontal bounds. MinX is
// inclusive, MaxX exclusive.
type DayColumn struct {
	Date       time.Time
	MinX, MaxX int
}

// Layout is the rendered grid described as data: the view publishes one of
// these per render and the drag layer reads it back. Owning the mapping as a
// struct removes any need to infer dates from rendered header text.
type Layout struct {
	Mode    Mode
	Focus   time.Time
	Bounds  Rect
	Columns []DayColumn

	// FirstRowTop is the screen row of hour 0; RowHeight is rows per hour.
	// ScrollTop counts rows scrolled off the top of the body viewport.
	FirstRowTop int
	RowHeight   int
	ScrollTop   int
}

const defaultHour = 12 // noon, when no hour rows are available

// SlotAt resolves the grid cell under the pointer into a time slot, snapped
// down to the 15-minute grid. ok is false when the pointer is outside the
// calendar or the mode does not support time resolution. Resolution failures
// inside the grid degrade to defaults rather than failing the drag.
func (l Layout) SlotAt(x, y int) (timeutil.TimeSlot, bool) {
	if !l.Bounds.Contains(x, y) {
		return timeutil.TimeSlot{}, false
	}
	if l.Mode == ModeMonth {
		return timeutil.TimeSlot{}, false
	}

	day := l.dayAt(x)
	hour, minute := l.timeAt(y)

	at := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.Local)
	snapped := timeutil.RoundTime(at.UnixMilli(), true)
	return timeutil.SlotAt(time.UnixMilli(snapped)), true
}

// dayAt finds the day column containing x, falling back to the focus date
// (day mode) or to a column index computed from the first column's width,
// anchored at the focused week's Monday.
func (l Layout) dayAt(x int) time.Time {
	for _, col := range l.Columns {
		if x >= col.MinX && x < col.MaxX {
			return col.Date
		}
	}
	if l.Mode == ModeDay || len(l.Columns) == 0 {
		return l.Focus
	}

	first := l.Columns[0]
	width := first.MaxX - first.MinX
	if width <= 0 {
		return l.Focus
	}
	index := (x - first.MinX) / width
	if index < 0 {
		index = 0
	}
	if index > len(l.Columns)-1 {
		index = len(l.Columns) - 1
	}
	return Monday(l.Focus).AddDate(0, 0, index)
}

// timeAt converts a screen row into an hour/minute pair. Rows are uniform:
// one hour per RowHeight rows, with ScrollTop rows hidden above the viewport.
func (l Layout) timeAt(y int) (int, int) {
	if l.RowHeight <= 0 {
		return defaultHour, 0
	}
	rel := y - l.FirstRowTop + l.ScrollTop
	exact := float64(rel) / float64(l.RowHeight)
	if exact < 0 {
		exact = 0
	}
	if exact > 23.99 {
		exact = 23.99
	}
	hour := int(exact)
	minute := int((exact - float64(hour)) * 60)
	return hour, minute
}

// Monday returns the Monday of the week containing t, at midnight local time.
func Monday(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	offset := int(t.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return t.AddDate(0, 0, -offset)
}

// WeekColumns builds the seven day columns for the week containing focus,
// laid out between minX (inclusive) and maxX (exclusive).
func WeekColumns(focus time.Time, minX, maxX int) []DayColumn {
	if maxX <= minX {
		return nil
	}
	monday := Monday(focus)
	width := (maxX - minX) / 7
	if width < 1 {
		width = 1
	}
	cols := make([]DayColumn, 0, 7)
	for i := 0; i < 7; i++ {
		lo := minX + i*width
		hi := lo + width
		if i == 6 || hi > maxX {
			hi = maxX
		}
		cols = append(cols, DayColumn{Date: monday.AddDate(0, 0, i), MinX: lo, MaxX: hi})
		if hi == maxX {
			break
		}
	}
	return cols
}
