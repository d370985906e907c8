// Package printers renders domain objects for the terminal commands.
package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/gmoroz-comanager/co-console/pkg/colors"
	"github.com/gmoroz-comanager/co-console/pkg/schedule"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Channels prints the channel list with their calendar colors. The swatch
// column shows the resolved color, whether server-assigned or palette
// fallback.
func (pp *PrettyPrint) Channels(channels []schedule.TelegramChannel) {
	if len(channels) == 0 {
		pp.none("no channels")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 40
	if pp.ShowID {
		table.AddRow("", "ID", "TITLE", "USERNAME", "COLOR", "BOT")
	} else {
		table.AddRow("", "TITLE", "USERNAME", "COLOR", "BOT")
	}
	for i := range channels {
		ch := &channels[i]
		hex := colors.ChannelColor(ch, channels)
		swatch := color.New(colorAttr(hex)).Sprint("■")
		bot := ""
		if ch.Bot != nil {
			bot = "@" + ch.Bot.Username
		}
		if pp.ShowID {
			table.AddRow(swatch, ch.DocumentID, ch.Title, at(ch.Username), hex, bot)
		} else {
			table.AddRow(swatch, ch.Title, at(ch.Username), hex, bot)
		}
	}
	fmt.Println(table)
	fmt.Println("")
}

// Posts prints scheduled posts ordered as given.
func (pp *PrettyPrint) Posts(posts []schedule.ScheduledPost) {
	if len(posts) == 0 {
		pp.none("no scheduled posts")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 48
	if pp.ShowID {
		table.AddRow("ID", "WHEN", "TITLE", "CHANNEL", "STATUS")
	} else {
		table.AddRow("WHEN", "TITLE", "CHANNEL", "STATUS")
	}
	for _, post := range posts {
		channel := ""
		if post.Channel != nil {
			channel = post.Channel.Title
		}
		status := color.New(statusAttr(post.Status)).Sprint(post.Status)
		when := post.ScheduledAt.Local().Format("Mon Jan 2 15:04")
		if pp.ShowID {
			table.AddRow(post.DocumentID, when, post.Title(), channel, status)
		} else {
			table.AddRow(when, post.Title(), channel, status)
		}
	}
	fmt.Println(table)
	fmt.Println("")
}

// Bots prints the registered bots.
func (pp *PrettyPrint) Bots(bots []schedule.TelegramBot) {
	if len(bots) == 0 {
		pp.none("no bots")
		return
	}
	table := uitable.New()
	table.AddRow("USERNAME", "NAME")
	for _, bot := range bots {
		table.AddRow("@"+bot.Username, bot.FirstName)
	}
	fmt.Println(table)
	fmt.Println("")
}

// Pinned prints the pinned default drop target.
func (pp *PrettyPrint) Pinned(ch *schedule.TelegramChannel) {
	if ch == nil {
		pp.none("no pinned channel")
		return
	}
	fmt.Printf("pinned: %s %s\n\n", ch.Title, at(ch.Username))
}

func (pp *PrettyPrint) none(message string) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Printf(" %s\n\n", message)
}

func at(username string) string {
	if username == "" {
		return ""
	}
	return "@" + username
}

// colorAttr maps a palette hex color to the closest basic terminal color, so
// swatches work without truecolor support.
func colorAttr(hex string) color.Attribute {
	switch strings.ToUpper(hex) {
	case "#1976D2", "#2196F3", "#455A64":
		return color.FgBlue
	case "#388E3C", "#4CAF50", "#689F38":
		return color.FgGreen
	case "#C2185B", "#F44336", "#E64A19":
		return color.FgRed
	case "#F57C00", "#FFA000":
		return color.FgYellow
	case "#7B1FA2":
		return color.FgMagenta
	case "#00796B", "#0097A7":
		return color.FgCyan
	default:
		return color.FgWhite
	}
}

func statusAttr(status string) color.Attribute {
	switch status {
	case schedule.StatusPublished:
		return color.FgGreen
	case schedule.StatusFailed:
		return color.FgRed
	case schedule.StatusScheduled:
		return color.FgBlue
	default:
		return color.Faint
	}
}

// Window formats a listing range for titles.
func Window(start, end time.Time) string {
	return fmt.Sprintf("%s .. %s", start.Format("Jan 2"), end.Format("Jan 2"))
}
