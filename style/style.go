// Package style holds the themed lipgloss palette shared by every UI
// component. Call SetTheme before the first render.
package style

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors — initialized to dark theme defaults. Updated via SetTheme().
var (
	Primary   color.Color = darkTheme.Primary
	Secondary color.Color = darkTheme.Secondary
	Success   color.Color = darkTheme.Success
	Warning   color.Color = darkTheme.Warning
	Error     color.Color = darkTheme.Error
	Muted     color.Color = darkTheme.Muted
	Dim       color.Color = darkTheme.Dim
	Border    color.Color = darkTheme.Border

	SelectionBg color.Color = darkTheme.SelectionBg
	InputBg     color.Color = darkTheme.InputBg
)

// Base styles — rebuilt when the theme changes via rebuildStyles().
var (
	Bold      lipgloss.Style
	Faint     lipgloss.Style
	ErrorText lipgloss.Style

	// Header
	HeaderTitle     lipgloss.Style
	HeaderSeparator lipgloss.Style

	// Form
	FieldLabel    lipgloss.Style
	FieldValue    lipgloss.Style
	FieldFocused  lipgloss.Style
	FieldHint     lipgloss.Style
	PromptChar    lipgloss.Style
	SectionTitle  lipgloss.Style
	ValidationErr lipgloss.Style

	// Lists (results / history / favorites)
	ListCursor lipgloss.Style
	ListTitle  lipgloss.Style
	ListMeta   lipgloss.Style
	PromptBody lipgloss.Style

	// Status bar
	StatusBar lipgloss.Style

	// Hint text
	Hint lipgloss.Style
)

func init() {
	rebuildStyles()
}

// SetTheme switches the active theme and rebuilds all derived styles.
// Unknown names are ignored.
func SetTheme(name string) {
	t, ok := Themes[name]
	if !ok {
		return
	}
	CurrentThemeName = name

	Primary = t.Primary
	Secondary = t.Secondary
	Success = t.Success
	Warning = t.Warning
	Error = t.Error
	Muted = t.Muted
	Dim = t.Dim
	Border = t.Border
	SelectionBg = t.SelectionBg
	InputBg = t.InputBg

	rebuildStyles()
}

func rebuildStyles() {
	Bold = lipgloss.NewStyle().Bold(true)
	Faint = lipgloss.NewStyle().Foreground(Muted)
	ErrorText = lipgloss.NewStyle().Foreground(Error)

	HeaderTitle = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	HeaderSeparator = lipgloss.NewStyle().Foreground(Border)

	FieldLabel = lipgloss.NewStyle().Foreground(Muted)
	FieldValue = lipgloss.NewStyle()
	FieldFocused = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	FieldHint = lipgloss.NewStyle().Foreground(Dim)
	PromptChar = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	SectionTitle = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	ValidationErr = lipgloss.NewStyle().Foreground(Error)

	ListCursor = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	ListTitle = lipgloss.NewStyle().Bold(true)
	ListMeta = lipgloss.NewStyle().Foreground(Muted)
	PromptBody = lipgloss.NewStyle()

	StatusBar = lipgloss.NewStyle().Foreground(Muted)

	Hint = lipgloss.NewStyle().Foreground(Dim)
}
