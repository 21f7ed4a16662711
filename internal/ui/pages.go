package ui

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/growmate/internal/plant"
)

// Encyclopaedia lists care notes for every plant type.
type Encyclopaedia struct {
	viewport viewport.Model
}

// NewEncyclopaedia creates the encyclopaedia page
func NewEncyclopaedia() *Encyclopaedia {
	e := &Encyclopaedia{viewport: viewport.New()}
	e.viewport.SetContent(renderCareGuides(0))
	return e
}

// SetSize sets the page dimensions
func (e *Encyclopaedia) SetSize(width, height int) {
	e.viewport.SetWidth(width)
	e.viewport.SetHeight(height)
	e.viewport.SetContent(renderCareGuides(width))
}

// Update forwards scroll keys to the viewport
func (e *Encyclopaedia) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	e.viewport, cmd = e.viewport.Update(msg)
	return cmd
}

// View renders the page
func (e *Encyclopaedia) View() string {
	return e.viewport.View()
}

func renderCareGuides(width int) string {
	var blocks []string
	for _, g := range plant.CareGuides() {
		lines := []string{
			DetailNameStyle.Render(g.Type.Label()),
			detailRow("Light", g.Light),
			detailRow("Water", g.Water),
			detailRow("Soil", g.Soil),
		}
		for _, tip := range g.Tips {
			lines = append(lines, PlantMetaStyle.Render("  • "+tip))
		}
		if len(g.Examples) > 0 {
			lines = append(lines, detailRow("Examples", strings.Join(g.Examples, ", ")))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	content := strings.Join(blocks, "\n\n")
	if width > 0 {
		return lipgloss.NewStyle().Width(width).Render(content)
	}
	return content
}

// ReelsView renders the reels placeholder
func ReelsView(width, height int) string {
	msg := lipgloss.JoinVertical(lipgloss.Center,
		PanelTitleStyle.Render("Reels"),
		EmptyStateStyle.Render("Short plant-care videos will appear here."),
	)
	return lipgloss.Place(max(width, 0), max(height, 0), lipgloss.Center, lipgloss.Center, msg)
}

// UserView renders the account page
func UserView(username string, plantCount, width, height int) string {
	who := username
	if who == "" {
		who = "gardener"
	}
	lines := []string{
		PanelTitleStyle.Render("Account"),
		detailRow("Signed in as", who),
		detailRow("Plants", plural(plantCount, "plant")),
		"",
		FooterKeyStyle.Render("l") + FooterDescStyle.Render(": log out"),
	}
	return lipgloss.Place(max(width, 0), max(height, 0), lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
