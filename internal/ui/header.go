package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/rivo/uniseg"
)

const headerTitle = " 🌱 GrowMate"

// Header represents the top header bar
type Header struct {
	width    int
	viewName string
	username string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetViewName sets the name of the active screen
func (h *Header) SetViewName(name string) {
	h.viewName = name
}

// SetUsername sets the logged-in user shown on the right, empty when logged out
func (h *Header) SetUsername(name string) {
	h.username = name
}

// View renders the header
func (h *Header) View() string {
	var rightText string
	if h.viewName != "" {
		rightText = h.viewName
		if h.username != "" {
			rightText += " (" + h.username + ")"
		}
		rightText += " "
	}

	paddingLen := h.width - uniseg.StringWidth(headerTitle) - uniseg.StringWidth(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := headerTitle + strings.Repeat(" ", paddingLen) + rightText
	return h.renderGradient(fullContent, h.username)
}

// parseHexColor parses a hex color string (e.g., "#16A34A") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content with a theme-aware gradient background.
// The username portion, if present, is muted.
func (h *Header) renderGradient(content string, username string) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	mutedStart := -1
	if username != "" {
		mutedStart = strings.Index(content, "("+username+")")
	}

	// Step per grapheme cluster so the emoji in the title stays intact.
	clusters := uniseg.GraphemeClusterCount(content)
	titleClusters := uniseg.GraphemeClusterCount(headerTitle)
	var result strings.Builder
	gr := uniseg.NewGraphemes(content)
	for i := 0; gr.Next(); i++ {
		t := float64(i) / float64(clusters)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)
		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		start, _ := gr.Positions()
		style := lipgloss.NewStyle().
			Background(bgColor).
			Bold(i < titleClusters)
		if mutedStart >= 0 && start >= mutedStart {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(gr.Str()))
	}

	return result.String()
}
