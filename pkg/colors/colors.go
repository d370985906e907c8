// Package colors resolves display colors for channels and post statuses.
// Resolution is deterministic: a saved channel color wins, otherwise the
// channel's position in the channel list picks from a fixed palette.
package colors

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gmoroz-comanager/co-console/pkg/schedule"
)

// NeutralGray is used for the "all channels" pseudo-channel and for any
// channel that cannot be resolved.
const NeutralGray = "#757575"

// DefaultBlue is the event color when no channel is attached.
const DefaultBlue = "#1976D2"

// DefaultColors is the fallback palette for channels without a saved color.
var DefaultColors = [8]string{
	"#1976D2", // blue
	"#388E3C", // green
	"#F57C00", // orange
	"#7B1FA2", // purple
	"#C2185B", // pink
	"#00796B", // teal
	"#5D4037", // brown
	"#455A64", // blue gray
}

// Swatches is the picker grid offered when assigning a channel color.
var Swatches = [4][3]string{
	{"#1976D2", "#388E3C", "#F57C00"},
	{"#7B1FA2", "#C2185B", "#00796B"},
	{"#5D4037", "#455A64", "#E64A19"},
	{"#0097A7", "#689F38", "#FFA000"},
}

// ChannelColor resolves the display color for a channel. The fallback color
// depends on list position, so it can shift if the list is reordered between
// renders; the saved CalendarColor is the only stable assignment.
func ChannelColor(ch *schedule.TelegramChannel, channels []schedule.TelegramChannel) string {
	if ch == nil || ch.DocumentID == schedule.AllChannels {
		return NeutralGray
	}
	if ch.CalendarColor != "" {
		return ch.CalendarColor
	}
	index := 0
	for i := range channels {
		if channels[i].DocumentID == ch.DocumentID {
			index = i
			break
		}
	}
	return DefaultColors[index%len(DefaultColors)]
}

// StatusName maps a post status to a semantic style name for chips and lists.
func StatusName(status string) string {
	switch status {
	case schedule.StatusPublished:
		return "success"
	case schedule.StatusFailed:
		return "error"
	case schedule.StatusScheduled:
		return "primary"
	default:
		return "grey"
	}
}

// StatusColor maps a post status to the hex color of its calendar dot.
func StatusColor(status string) string {
	switch status {
	case schedule.StatusPublished:
		return "#4CAF50"
	case schedule.StatusFailed:
		return "#F44336"
	case schedule.StatusScheduled:
		return "#2196F3"
	case schedule.StatusPreview, schedule.StatusLoading:
		return "#9E9E9E"
	default:
		return "#9E9E9E"
	}
}

// Muted blends a color halfway toward gray, used for shadow previews and
// loading placeholders so they read as provisional.
func Muted(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return NeutralGray
	}
	gray, _ := colorful.Hex(NeutralGray)
	return c.BlendLab(gray, 0.5).Hex()
}

// Foreground picks a readable text color for the given background.
func Foreground(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#FFFFFF"
	}
	if l, _, _ := c.Lab(); l > 0.6 {
		return "#212121"
	}
	return "#FFFFFF"
}
