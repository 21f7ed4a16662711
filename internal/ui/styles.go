package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, set from the current theme by regenerateStyles
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorMuted       color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorBg          color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorWarning     color.Color
	ColorInfo        color.Color
	ColorError       color.Color
	ColorSuccess     color.Color
	ColorThirsty     color.Color
)

// Header and footer styles
var (
	HeaderStyle     lipgloss.Style
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
	EmptyStateStyle   lipgloss.Style
)

// List styles
var (
	ListItemStyle     lipgloss.Style
	ListSelectedStyle lipgloss.Style
	PlantMetaStyle    lipgloss.Style
	ThirstyStyle      lipgloss.Style
)

// Detail styles
var (
	DetailNameStyle  lipgloss.Style
	DetailLabelStyle lipgloss.Style
	DetailValueStyle lipgloss.Style
	SectionStyle     lipgloss.Style
)

// Nav bar styles
var (
	NavBarStyle    lipgloss.Style
	NavItemStyle   lipgloss.Style
	NavActiveStyle lipgloss.Style
)

// Modal styles
var (
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style
)

// Status styles
var (
	StatusLoadingStyle lipgloss.Style
	StatusErrorStyle   lipgloss.Style
)

func buildStyles(bgSelected color.Color) {
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)

	EmptyStateStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		Padding(1, 2)

	ListItemStyle = lipgloss.NewStyle().
		Padding(0, 1)

	ListSelectedStyle = lipgloss.NewStyle().
		Background(bgSelected).
		Foreground(ColorText).
		Bold(true).
		Padding(0, 1)

	PlantMetaStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	ThirstyStyle = lipgloss.NewStyle().
		Foreground(ColorThirsty).
		Bold(true)

	DetailNameStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	DetailLabelStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Width(14)

	DetailValueStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	SectionStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary).
		MarginTop(1)

	NavBarStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(ColorBorder)

	NavItemStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	NavActiveStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorPrimary).
		Bold(true).
		Padding(0, 1)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	StatusLoadingStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)
}
