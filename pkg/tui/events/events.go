// Package events defines the typed messages exchanged between TUI
// components, with Describe helpers for the debug event log.
package events

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/gmoroz-comanager/co-console/pkg/schedule"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// ChannelsLoadedMsg carries a fresh channel list from the backend or cache.
type ChannelsLoadedMsg struct {
	Channels  []schedule.TelegramChannel
	FromCache bool
	Err       error
}

// Describe renders the load result for logs.
func (m ChannelsLoadedMsg) Describe() string {
	return fmt.Sprintf(`channels:%d cache:%v err:%v`, len(m.Channels), m.FromCache, m.Err)
}

// PostsLoadedMsg carries the scheduled posts for the visible range. A
// successful load replaces the event list wholesale.
type PostsLoadedMsg struct {
	Posts     []schedule.ScheduledPost
	Start     time.Time
	End       time.Time
	FromCache bool
	Err       error
}

// Describe renders the load result for logs.
func (m PostsLoadedMsg) Describe() string {
	return fmt.Sprintf(`posts:%d range:%s..%s err:%v`,
		len(m.Posts), m.Start.Format("2006-01-02"), m.End.Format("2006-01-02"), m.Err)
}

// IdeasLoadedMsg carries the schedulable ideas for the sidebar.
type IdeasLoadedMsg struct {
	Ideas []schedule.Idea
	Err   error
}

// Describe renders the load result for logs.
func (m IdeasLoadedMsg) Describe() string {
	return fmt.Sprintf(`ideas:%d err:%v`, len(m.Ideas), m.Err)
}

// CommitResultMsg reports the outcome of a create-scheduled-post attempt.
// LoadingID names the optimistic placeholder to roll back on failure.
type CommitResultMsg struct {
	LoadingID string
	Post      schedule.ScheduledPost
	Err       error
}

// Describe renders the commit outcome for logs.
func (m CommitResultMsg) Describe() string {
	return fmt.Sprintf(`loading:%q post:%q err:%v`, m.LoadingID, m.Post.DocumentID, m.Err)
}

// Tone classifies toast notifications.
type Tone string

const (
	ToneError   Tone = "error"
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
)

// ToastMsg requests a transient notification.
type ToastMsg struct {
	Message string
	Tone    Tone
}

// Describe renders the toast for logs.
func (m ToastMsg) Describe() string {
	return fmt.Sprintf(`tone:%q message:%q`, m.Tone, m.Message)
}

// ToastCmd wraps ToastMsg in a tea.Cmd.
func ToastCmd(tone Tone, message string) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{Message: message, Tone: tone}
	}
}

// ChannelPickedMsg resolves the two-step channel choice after a drop on the
// "all channels" view.
type ChannelPickedMsg struct {
	Component ComponentID
	ChannelID string
}

// Describe renders the choice for logs.
func (m ChannelPickedMsg) Describe() string {
	return fmt.Sprintf(`component:%q channel:%q`, m.Component, m.ChannelID)
}

// ChannelPickCancelledMsg discards the pending drop without a server call.
type ChannelPickCancelledMsg struct {
	Component ComponentID
}

// Describe renders the cancellation for logs.
func (m ChannelPickCancelledMsg) Describe() string {
	return fmt.Sprintf(`component:%q`, m.Component)
}

// ChannelPickedCmd wraps ChannelPickedMsg.
func ChannelPickedCmd(component ComponentID, channelID string) tea.Cmd {
	return func() tea.Msg {
		return ChannelPickedMsg{Component: component, ChannelID: channelID}
	}
}

// ChannelPickCancelledCmd wraps ChannelPickCancelledMsg.
func ChannelPickCancelledCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return ChannelPickCancelledMsg{Component: component}
	}
}
