// Package picker renders a bordered option list with arrow-key
// navigation. The form opens one picker per field (style, provider,
// model, quantity, output format, credential mode).
package picker

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/promptstock/promptstock-tui/style"
)

// Option is a single selectable entry.
type Option struct {
	ID     string
	Label  string
	Detail string
	Active bool
}

// Choice is emitted when the user selects an option. Field identifies
// which form field the picker was opened for.
type Choice struct {
	Field string
	ID    string
}

// Cancel is emitted when the user presses Esc.
type Cancel struct{}

// Model renders a vertical option list with a scroll window.
type Model struct {
	title    string
	field    string
	items    []Option
	cursor   int
	offset   int
	pageSize int
	width    int
	active   bool
}

// New returns a zero-value picker.
func New() Model {
	return Model{pageSize: 10}
}

// Show populates the picker for a form field and activates it, starting
// the cursor on the currently-active option.
func (m *Model) Show(title, field string, items []Option) {
	m.title = title
	m.field = field
	m.items = items
	m.cursor = 0
	m.offset = 0
	m.active = true
	for i, item := range items {
		if item.Active {
			m.cursor = i
			if m.cursor >= m.pageSize {
				m.offset = m.cursor - m.pageSize/2
				if m.offset+m.pageSize > len(m.items) {
					m.offset = len(m.items) - m.pageSize
				}
				if m.offset < 0 {
					m.offset = 0
				}
			}
			break
		}
	}
}

// Clear deactivates the picker.
func (m *Model) Clear() {
	m.active = false
	m.items = nil
	m.cursor = 0
	m.offset = 0
}

// IsActive reports whether the picker is currently visible.
func (m Model) IsActive() bool { return m.active }

// SetWidth constrains the picker to the terminal width.
func (m *Model) SetWidth(w int) { m.width = w }

// Update handles keyboard and mouse input when the picker is active.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active || len(m.items) == 0 {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.MouseWheelMsg:
		switch msg.Button {
		case tea.MouseWheelUp:
			m.moveCursor(-1)
		case tea.MouseWheelDown:
			m.moveCursor(+1)
		}
		return m, nil

	case tea.KeyPressMsg:
		switch msg.Code {
		case tea.KeyUp:
			if m.cursor == 0 {
				m.cursor = len(m.items) - 1
				if m.cursor >= m.offset+m.pageSize {
					m.offset = m.cursor - m.pageSize + 1
				}
			} else {
				m.moveCursor(-1)
			}

		case tea.KeyDown:
			if m.cursor == len(m.items)-1 {
				m.cursor = 0
				m.offset = 0
			} else {
				m.moveCursor(+1)
			}

		case tea.KeyEnter:
			item := m.items[m.cursor]
			field := m.field
			m.Clear()
			return m, func() tea.Msg {
				return Choice{Field: field, ID: item.ID}
			}

		case tea.KeyEscape:
			m.Clear()
			return m, func() tea.Msg { return Cancel{} }
		}
	}

	return m, nil
}

// moveCursor shifts the cursor by delta within bounds, scrolling the
// visible window along.
func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.items) {
		return
	}
	m.cursor = next
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.pageSize {
		m.offset = m.cursor - m.pageSize + 1
	}
}

// View renders the picker panel with a rounded border.
func (m Model) View() string {
	if !m.active || len(m.items) == 0 {
		return ""
	}

	var sb strings.Builder

	header := lipgloss.NewStyle().
		Foreground(style.Primary).
		Bold(true).
		Render("◈ " + m.title)
	hint := lipgloss.NewStyle().
		Foreground(style.Muted).
		Render("  ↑↓ navigate · Enter select · Esc cancel")
	sb.WriteString(header + hint + "\n\n")

	end := m.offset + m.pageSize
	if end > len(m.items) {
		end = len(m.items)
	}

	if m.offset > 0 {
		sb.WriteString(lipgloss.NewStyle().Foreground(style.Muted).Render("  ↑ more above") + "\n")
	}

	for i := m.offset; i < end; i++ {
		sb.WriteString(m.renderItem(m.items[i], i == m.cursor))
		sb.WriteByte('\n')
	}

	if end < len(m.items) {
		sb.WriteString(lipgloss.NewStyle().Foreground(style.Muted).Render("  ↓ more below") + "\n")
	}

	count := lipgloss.NewStyle().
		Foreground(style.Muted).
		Render(fmt.Sprintf("\n  %d option(s)", len(m.items)))
	sb.WriteString(count)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.Border).
		Padding(0, 1)
	if m.width > 0 {
		boxStyle = boxStyle.Width(m.width - 2)
	}

	return boxStyle.Render(sb.String())
}

func (m Model) renderItem(item Option, isCursor bool) string {
	var cur string
	if isCursor {
		cur = lipgloss.NewStyle().Foreground(style.Primary).Bold(true).Render("  > ")
	} else {
		cur = "    "
	}

	var marker string
	if item.Active {
		marker = lipgloss.NewStyle().Foreground(style.Success).Render("●")
	} else {
		marker = lipgloss.NewStyle().Foreground(style.Muted).Render("○")
	}

	nameStyle := lipgloss.NewStyle()
	if isCursor {
		nameStyle = nameStyle.Bold(true)
	}
	name := nameStyle.Render(item.Label)

	var detail string
	if item.Detail != "" {
		detail = lipgloss.NewStyle().Foreground(style.Muted).Render("  " + item.Detail)
	}

	return cur + marker + " " + name + detail
}
