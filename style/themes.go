package style

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Theme defines a complete color palette for the TUI.
type Theme struct {
	Name                                        string
	Primary, Secondary, Success, Warning, Error color.Color
	Muted, Dim, Border                          color.Color
	SelectionBg                                 color.Color
	InputBg                                     color.Color
}

// Built-in themes.
var (
	darkTheme = Theme{
		Name:        "dark",
		Primary:     lipgloss.Color("#F59E0B"),
		Secondary:   lipgloss.Color("#38BDF8"),
		Success:     lipgloss.Color("#22C55E"),
		Warning:     lipgloss.Color("#FBBF24"),
		Error:       lipgloss.Color("#EF4444"),
		Muted:       lipgloss.Color("#6B7280"),
		Dim:         lipgloss.Color("#374151"),
		Border:      lipgloss.Color("#4B5563"),
		SelectionBg: lipgloss.Color("#78350F"),
		InputBg:     lipgloss.Color("#111827"),
	}

	lightTheme = Theme{
		Name:        "light",
		Primary:     lipgloss.Color("#B45309"),
		Secondary:   lipgloss.Color("#0284C7"),
		Success:     lipgloss.Color("#16A34A"),
		Warning:     lipgloss.Color("#D97706"),
		Error:       lipgloss.Color("#DC2626"),
		Muted:       lipgloss.Color("#9CA3AF"),
		Dim:         lipgloss.Color("#D1D5DB"),
		Border:      lipgloss.Color("#9CA3AF"),
		SelectionBg: lipgloss.Color("#FDE68A"),
		InputBg:     lipgloss.Color("#FFFFFF"),
	}
)

// Themes maps theme names to their definitions.
var Themes = map[string]Theme{
	"dark":  darkTheme,
	"light": lightTheme,
}

// ThemeNames lists available themes in display order.
var ThemeNames = []string{"dark", "light"}

// CurrentThemeName tracks the active theme name.
var CurrentThemeName = "dark"
