// Package status renders the bottom status bar: session state on the
// left, global key hints on the right.
package status

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/promptstock/promptstock-tui/style"
)

// Model is the status bar state.
type Model struct {
	left    string
	pending bool
	frame   int
	width   int
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// New returns an empty status bar.
func New() Model {
	return Model{width: 80}
}

// SetLeft replaces the left-hand status text.
func (m *Model) SetLeft(text string) { m.left = text }

// SetPending toggles the in-flight spinner.
func (m *Model) SetPending(p bool) { m.pending = p }

// Tick advances the spinner one frame.
func (m *Model) Tick() { m.frame = (m.frame + 1) % len(spinnerFrames) }

// SetWidth constrains rendering to the terminal width.
func (m *Model) SetWidth(w int) { m.width = w }

// View renders the bar. Hints lists the keys valid in the current view.
func (m Model) View(hints string) string {
	left := m.left
	if m.pending {
		spin := lipgloss.NewStyle().Foreground(style.Primary).Render(spinnerFrames[m.frame])
		left = spin + " Generating..."
	}
	left = style.StatusBar.Render(left)
	right := style.Hint.Render(hints)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
