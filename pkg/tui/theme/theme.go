// Package theme centralizes Lip Gloss styles for the scheduling console UI.
package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme groups the styles used across the calendar surface.
type Theme struct {
	Calendar CalendarTheme
	Sidebar  SidebarTheme
	Toast    ToastTheme
	Picker   PickerTheme
	Footer   FooterTheme
}

// CalendarTheme styles the grid, gutter, and event blocks.
type CalendarTheme struct {
	Frame      lipgloss.Style
	HeaderDay  lipgloss.Style
	HeaderNow  lipgloss.Style
	Gutter     lipgloss.Style
	GridLine   lipgloss.Style
	EventBase  lipgloss.Style
	ShadowBase lipgloss.Style
	Ghost      lipgloss.Style
}

// SidebarTheme styles the idea list panel.
type SidebarTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
}

// ToastTheme styles the transient notification bar.
type ToastTheme struct {
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
}

// PickerTheme styles the channel-picker modal.
type PickerTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Hint     lipgloss.Style
}

// FooterTheme styles the status/help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Calendar: CalendarTheme{
			Frame:      lipgloss.NewStyle(),
			HeaderDay:  lipgloss.NewStyle().Bold(true),
			HeaderNow:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
			Gutter:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			GridLine:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			EventBase:  lipgloss.NewStyle().Bold(true),
			ShadowBase: lipgloss.NewStyle().Italic(true),
			Ghost:      lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("250")),
		},
		Sidebar: SidebarTheme{
			Frame: lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, false).
				BorderForeground(lipgloss.Color("238")),
			Title: lipgloss.NewStyle().Bold(true),
		},
		Toast: ToastTheme{
			Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("160")).Padding(0, 1),
			Success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("28")).Padding(0, 1),
			Warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")).Background(lipgloss.Color("178")).Padding(0, 1),
		},
		Picker: PickerTheme{
			Frame:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
			Title:    lipgloss.NewStyle().Bold(true),
			Item:     lipgloss.NewStyle(),
			Selected: lipgloss.NewStyle().Reverse(true),
			Hint:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
	}
}
