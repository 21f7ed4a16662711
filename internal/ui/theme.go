// Package ui provides theme management for the application.
// Themes define the color palette used throughout the UI.
package ui

import (
	"charm.land/lipgloss/v2"
)

// Theme defines a complete color palette for the application.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (used for focus, highlights, headers)
	Primary string
	// Secondary is the secondary accent color (used for keys and section titles)
	Secondary string

	// Background colors
	Bg         string // Main background
	BgSelected string // Selected item background (defaults to Primary if empty)

	// Text colors
	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on colored backgrounds

	// Semantic colors
	Warning string
	Error   string
	Info    string
	Success string
	Thirsty string // Marker for plants that need water

	// Border colors
	Border      string // Default borders
	BorderFocus string // Focused element borders (defaults to Primary if empty)
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeGarden ThemeName = "garden"
	ThemeNord   ThemeName = "nord"
	ThemeDesert ThemeName = "desert"
	ThemeOrchid ThemeName = "orchid"
	ThemeLight  ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeGarden

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeGarden: {
		Name:        "Garden",
		Primary:     "#16A34A",
		Secondary:   "#A3E635",
		Bg:          "#14201A",
		BgSelected:  "#166534",
		Text:        "#F0FDF4",
		TextMuted:   "#9CB8A5",
		TextInverse: "#052E16",
		Warning:     "#F59E0B",
		Error:       "#EF4444",
		Info:        "#38BDF8",
		Success:     "#4ADE80",
		Thirsty:     "#60A5FA",
		Border:      "#2F4A3A",
	},
	ThemeNord: {
		Name:        "Nord",
		Primary:     "#88C0D0",
		Secondary:   "#A3BE8C",
		Bg:          "#2E3440",
		Text:        "#ECEFF4",
		TextMuted:   "#D8DEE9",
		TextInverse: "#2E3440",
		Warning:     "#EBCB8B",
		Error:       "#BF616A",
		Info:        "#81A1C1",
		Success:     "#A3BE8C",
		Thirsty:     "#5E81AC",
		Border:      "#4C566A",
	},
	ThemeDesert: {
		Name:        "Desert",
		Primary:     "#D97706",
		Secondary:   "#84CC16",
		Bg:          "#292018",
		Text:        "#FEF3C7",
		TextMuted:   "#C8B08A",
		TextInverse: "#292018",
		Warning:     "#FBBF24",
		Error:       "#DC2626",
		Info:        "#0EA5E9",
		Success:     "#65A30D",
		Thirsty:     "#38BDF8",
		Border:      "#57432E",
	},
	ThemeOrchid: {
		Name:        "Orchid",
		Primary:     "#C026D3",
		Secondary:   "#F0ABFC",
		Bg:          "#1F1426",
		Text:        "#FAF5FF",
		TextMuted:   "#BFA8CC",
		TextInverse: "#1F1426",
		Warning:     "#FB923C",
		Error:       "#F43F5E",
		Info:        "#67E8F9",
		Success:     "#86EFAC",
		Thirsty:     "#7DD3FC",
		Border:      "#4A2F5A",
	},
	ThemeLight: {
		Name:        "Light",
		Primary:     "#15803D",
		Secondary:   "#4D7C0F",
		Bg:          "#FFFFFF",
		BgSelected:  "#DCFCE7",
		Text:        "#1F2937",
		TextMuted:   "#6B7280",
		TextInverse: "#FFFFFF",
		Warning:     "#B45309",
		Error:       "#B91C1C",
		Info:        "#0369A1",
		Success:     "#15803D",
		Thirsty:     "#1D4ED8",
		Border:      "#D1D5DB",
	},
}

// ThemeNames returns a list of all available theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{ThemeGarden, ThemeNord, ThemeDesert, ThemeOrchid, ThemeLight}
}

// IsThemeName reports whether name is a built-in theme.
func IsThemeName(name string) bool {
	_, ok := BuiltinThemes[ThemeName(name)]
	return ok
}

// GetTheme returns a theme by name, defaulting to Garden if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

var (
	currentTheme     = BuiltinThemes[DefaultTheme]
	currentThemeName = DefaultTheme
)

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	return currentThemeName
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	if _, ok := BuiltinThemes[name]; !ok {
		name = DefaultTheme
	}
	currentThemeName = name
	currentTheme = BuiltinThemes[name]
	regenerateStyles()
	RefreshModalStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

func init() {
	regenerateStyles()
	RefreshModalStyles()
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorMuted = lipgloss.Color(t.TextMuted)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorInfo = lipgloss.Color(t.Info)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)
	ColorThirsty = lipgloss.Color(t.Thirsty)

	buildStyles(lipgloss.Color(t.GetBgSelected()))
}
