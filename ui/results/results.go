// Package results renders the active result set: the prompts of the
// most recent fulfilled generation, with a cursor for per-prompt
// actions.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/promptstock/promptstock-tui/client"
	"github.com/promptstock/promptstock-tui/style"
)

// SaveMsg asks the app to save the prompt at Index to favorites.
type SaveMsg struct {
	Index int
}

// CopyAllMsg asks the app to copy the whole result set to the clipboard.
type CopyAllMsg struct{}

// CopyOneMsg asks the app to copy a single prompt to the clipboard.
type CopyOneMsg struct {
	Index int
}

// DownloadMsg asks the app to save the result set as a text file.
type DownloadMsg struct{}

// Model holds the displayed generation and the prompt cursor.
type Model struct {
	gen    client.Generation
	hasGen bool
	cursor int
	width  int
}

// New returns an empty results view.
func New() Model {
	return Model{width: 80}
}

// SetGeneration replaces the displayed generation and resets the cursor.
func (m *Model) SetGeneration(g client.Generation) {
	m.gen = g
	m.hasGen = true
	m.cursor = 0
}

// HasGeneration reports whether a result set is on display.
func (m Model) HasGeneration() bool { return m.hasGen }

// Generation returns the displayed generation.
func (m Model) Generation() client.Generation { return m.gen }

// Cursor returns the focused prompt index.
func (m Model) Cursor() int { return m.cursor }

// SetWidth constrains rendering to the terminal width.
func (m *Model) SetWidth(w int) { m.width = w }

// Update handles key events while the results view is active.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !m.hasGen {
		return m, nil
	}

	switch keyMsg.Code {
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyDown:
		if m.cursor < len(m.gen.Prompts)-1 {
			m.cursor++
		}
	}

	switch keyMsg.Code {
	case 's':
		i := m.cursor
		return m, func() tea.Msg { return SaveMsg{Index: i} }
	case 'c':
		return m, func() tea.Msg { return CopyAllMsg{} }
	case 'y':
		i := m.cursor
		return m, func() tea.Msg { return CopyOneMsg{Index: i} }
	case 'd':
		return m, func() tea.Msg { return DownloadMsg{} }
	}

	return m, nil
}

// View renders the generation header and the prompt list.
func (m Model) View() string {
	if !m.hasGen {
		return style.Faint.Render("No prompts yet. Press g to start a generation.")
	}

	var sb strings.Builder

	title := fmt.Sprintf("%q · %s · %s", m.gen.Keyword, m.gen.Style, m.gen.Provider)
	sb.WriteString(style.SectionTitle.Render(title))
	sb.WriteString("\n")
	sb.WriteString(style.ListMeta.Render(fmt.Sprintf("%s · %d prompt(s)", m.gen.Model, len(m.gen.Prompts))))
	sb.WriteString("\n\n")

	bodyWidth := m.width - 6
	if bodyWidth < 20 {
		bodyWidth = 20
	}
	body := lipgloss.NewStyle().Width(bodyWidth)

	for i, prompt := range m.gen.Prompts {
		cur := "  "
		numStyle := style.ListMeta
		if i == m.cursor {
			cur = style.ListCursor.Render("❯ ")
			numStyle = style.ListCursor
		}
		sb.WriteString(cur + numStyle.Render(fmt.Sprintf("%2d. ", i+1)))
		sb.WriteString(body.Render(prompt))
		sb.WriteString("\n\n")
	}

	sb.WriteString(style.Hint.Render("s save · y copy · c copy all · d download · Esc back"))
	return sb.String()
}
