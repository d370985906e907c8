package toast

import (
	"strings"
	"testing"

	"github.com/gmoroz-comanager/co-console/pkg/tui/events"
	"github.com/gmoroz-comanager/co-console/pkg/tui/theme"
)

func TestShowAndExpire(t *testing.T) {
	m := NewModel(theme.Default().Toast)
	m.SetWidth(60)

	cmd := m.Show(events.ToneError, "Failed to schedule post. Please try again.")
	if cmd == nil {
		t.Fatalf("expected expiry command")
	}
	if !m.Visible() || m.Tone() != events.ToneError {
		t.Fatalf("toast not visible after Show")
	}
	if !strings.Contains(m.View(), "Failed to schedule post") {
		t.Fatalf("view missing message: %q", m.View())
	}

	m.Update(expireMsg{seq: 1})
	if m.Visible() {
		t.Fatalf("toast should expire")
	}
	if m.View() != "" {
		t.Fatalf("hidden toast should render empty")
	}
}

func TestStaleExpiryIgnored(t *testing.T) {
	m := NewModel(theme.Default().Toast)
	_ = m.Show(events.ToneError, "first")
	_ = m.Show(events.ToneSuccess, "second")

	m.Update(expireMsg{seq: 1})
	if !m.Visible() {
		t.Fatalf("stale expiry must not hide the newer toast")
	}
	m.Update(expireMsg{seq: 2})
	if m.Visible() {
		t.Fatalf("current expiry should hide the toast")
	}
}
