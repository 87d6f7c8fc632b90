// Package header renders the one-line title bar: app name, backend
// host, and connection state.
package header

import (
	"net/url"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/promptstock/promptstock-tui/style"
)

// Model is the header state.
type Model struct {
	backendURL string
	connected  bool
	checked    bool
	width      int
}

// New returns a header for the given backend URL.
func New(backendURL string) Model {
	return Model{backendURL: backendURL, width: 80}
}

// SetConnected records the outcome of the reachability check.
func (m *Model) SetConnected(ok bool) {
	m.connected = ok
	m.checked = true
}

// SetWidth constrains rendering to the terminal width.
func (m *Model) SetWidth(w int) { m.width = w }

// View renders the title line and a separator rule.
func (m Model) View() string {
	title := style.HeaderTitle.Render("PromptStock")
	host := style.Faint.Render(" · " + hostOf(m.backendURL))

	var state string
	switch {
	case !m.checked:
		state = lipgloss.NewStyle().Foreground(style.Warning).Render("● connecting")
	case m.connected:
		state = lipgloss.NewStyle().Foreground(style.Success).Render("● online")
	default:
		state = lipgloss.NewStyle().Foreground(style.Error).Render("● offline")
	}

	left := title + host
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(state)
	if gap < 1 {
		gap = 1
	}

	rule := style.HeaderSeparator.Render(strings.Repeat("─", max(m.width, 1)))
	return left + strings.Repeat(" ", gap) + state + "\n" + rule
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return u.Host
}
