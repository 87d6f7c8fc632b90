// Package histview renders the history projection: past generations,
// newest first, as the backend returns them.
package histview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/promptstock/promptstock-tui/client"
	"github.com/promptstock/promptstock-tui/style"
)

// OpenMsg asks the app to open the generation at Index in the results
// view, making it the active result set.
type OpenMsg struct {
	Index int
}

// ReloadMsg asks the app to refresh the history projection.
type ReloadMsg struct{}

// Model is the history list state.
type Model struct {
	items  []client.Generation
	loaded bool
	cursor int
	offset int
	height int
	width  int
}

// New returns an empty history view.
func New() Model {
	return Model{height: 12, width: 80}
}

// SetItems replaces the list with the latest projection snapshot.
func (m *Model) SetItems(items []client.Generation, loaded bool) {
	m.items = items
	m.loaded = loaded
	if m.cursor >= len(items) {
		m.cursor = len(items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.clampOffset()
}

// Item returns the generation under the cursor.
func (m Model) Item() (client.Generation, bool) {
	if len(m.items) == 0 {
		return client.Generation{}, false
	}
	return m.items[m.cursor], true
}

// SetSize constrains rendering to the terminal size.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	if m.height < 3 {
		m.height = 3
	}
	m.clampOffset()
}

// Update handles key events while the history view is active.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Code {
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
			m.clampOffset()
		}
	case tea.KeyDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
			m.clampOffset()
		}
	case tea.KeyEnter:
		if len(m.items) > 0 {
			i := m.cursor
			return m, func() tea.Msg { return OpenMsg{Index: i} }
		}
	case 'r':
		return m, func() tea.Msg { return ReloadMsg{} }
	}

	return m, nil
}

func (m *Model) clampOffset() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// View renders the history rows inside the scroll window.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(style.SectionTitle.Render("History"))
	sb.WriteString("\n\n")

	switch {
	case !m.loaded:
		sb.WriteString(style.Faint.Render("Loading history..."))
		return sb.String()
	case len(m.items) == 0:
		sb.WriteString(style.Faint.Render("No generations yet."))
		return sb.String()
	}

	end := m.offset + m.height
	if end > len(m.items) {
		end = len(m.items)
	}

	for i := m.offset; i < end; i++ {
		g := m.items[i]
		cur := "  "
		titleStyle := style.ListTitle
		if i == m.cursor {
			cur = style.ListCursor.Render("❯ ")
			titleStyle = style.ListCursor
		}
		meta := fmt.Sprintf("%s · %s · %d prompt(s) · %s",
			g.Style, g.Provider, len(g.Prompts), shortDate(g.CreatedAt))
		sb.WriteString(cur + titleStyle.Render(g.Keyword) + "\n")
		sb.WriteString("  " + style.ListMeta.Render(meta) + "\n")
	}

	if end < len(m.items) {
		sb.WriteString(style.Faint.Render(fmt.Sprintf("  … %d more", len(m.items)-end)) + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(style.Hint.Render("Enter open · r reload · Esc back"))
	return sb.String()
}

// shortDate trims an RFC 3339 timestamp to its date and minute.
func shortDate(ts string) string {
	if len(ts) >= 16 {
		return strings.Replace(ts[:16], "T", " ", 1)
	}
	return ts
}
