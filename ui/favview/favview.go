// Package favview renders the favorites projection: prompts the user
// pinned, with their frozen keyword/style snapshots.
package favview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/promptstock/promptstock-tui/client"
	"github.com/promptstock/promptstock-tui/style"
)

// DeleteMsg asks the app to delete the favorite with the given id.
type DeleteMsg struct {
	ID string
}

// CopyMsg asks the app to copy the favorite's prompt text.
type CopyMsg struct {
	Index int
}

// ReloadMsg asks the app to refresh the favorites projection.
type ReloadMsg struct{}

// Model is the favorites list state.
type Model struct {
	items  []client.Favorite
	loaded bool
	cursor int
	offset int
	height int
	width  int
}

// New returns an empty favorites view.
func New() Model {
	return Model{height: 8, width: 80}
}

// SetItems replaces the list with the latest projection snapshot.
func (m *Model) SetItems(items []client.Favorite, loaded bool) {
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

// Item returns the favorite under the cursor.
func (m Model) Item() (client.Favorite, bool) {
	if len(m.items) == 0 {
		return client.Favorite{}, false
	}
	return m.items[m.cursor], true
}

// SetSize constrains rendering to the terminal size.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	if m.height < 2 {
		m.height = 2
	}
	m.clampOffset()
}

// Update handles key events while the favorites view is active.
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
	case 'x', tea.KeyDelete:
		if fav, ok := m.Item(); ok {
			id := fav.ID
			return m, func() tea.Msg { return DeleteMsg{ID: id} }
		}
	case 'y':
		if len(m.items) > 0 {
			i := m.cursor
			return m, func() tea.Msg { return CopyMsg{Index: i} }
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

// View renders the favorite rows inside the scroll window.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(style.SectionTitle.Render("Favorites"))
	sb.WriteString("\n\n")

	switch {
	case !m.loaded:
		sb.WriteString(style.Faint.Render("Loading favorites..."))
		return sb.String()
	case len(m.items) == 0:
		sb.WriteString(style.Faint.Render("No favorites saved."))
		return sb.String()
	}

	bodyWidth := m.width - 6
	if bodyWidth < 20 {
		bodyWidth = 20
	}
	body := lipgloss.NewStyle().Width(bodyWidth)

	end := m.offset + m.height
	if end > len(m.items) {
		end = len(m.items)
	}

	for i := m.offset; i < end; i++ {
		f := m.items[i]
		cur := "  "
		if i == m.cursor {
			cur = style.ListCursor.Render("❯ ")
		}
		meta := fmt.Sprintf("%s · %s · %s", f.Keyword, f.Style, shortDate(f.SavedAt))
		sb.WriteString(cur + style.ListMeta.Render(meta) + "\n")
		sb.WriteString("  " + body.Render(style.PromptBody.Render(f.PromptText)) + "\n\n")
	}

	if end < len(m.items) {
		sb.WriteString(style.Faint.Render(fmt.Sprintf("  … %d more", len(m.items)-end)) + "\n")
	}

	sb.WriteString(style.Hint.Render("y copy · x delete · r reload · Esc back"))
	return sb.String()
}

func shortDate(ts string) string {
	if len(ts) >= 16 {
		return strings.Replace(ts[:16], "T", " ", 1)
	}
	return ts
}
