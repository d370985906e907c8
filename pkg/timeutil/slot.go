package timeutil

import "time"

// SnapMinutes is the scheduling granularity of the calendar grid.
const SnapMinutes = 15

const snapMillis = SnapMinutes * 60 * 1000

// RoundTime snaps a unix-millisecond timestamp to the 15-minute grid.
// down floors; otherwise the next boundary is returned.
func RoundTime(ts int64, down bool) int64 {
	rem := ts % snapMillis
	if rem < 0 {
		rem += snapMillis
	}
	if down {
		return ts - rem
	}
	return ts + (snapMillis - rem)
}

// TimeSlot is a decomposed local wall-clock instant, the interchange format
// between the rendered calendar grid and absolute timestamps. Month is
// 1-based (January == 1).
type TimeSlot struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
}

// SlotTime interprets the slot as local time and returns the instant.
func SlotTime(s TimeSlot) time.Time {
	return time.Date(s.Year, time.Month(s.Month), s.Day, s.Hour, s.Minute, 0, 0, time.Local)
}

// SlotAt decomposes an instant back into a local-time slot. Together with
// SlotTime it round-trips for any minute-granularity instant outside a DST
// transition.
func SlotAt(t time.Time) TimeSlot {
	t = t.Local()
	return TimeSlot{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
	}
}

// SlotMillis is SlotTime expressed in unix milliseconds.
func SlotMillis(s TimeSlot) int64 {
	return SlotTime(s).UnixMilli()
}
