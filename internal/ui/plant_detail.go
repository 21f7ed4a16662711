package ui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/growmate/internal/plant"
)

// PlantDetail shows one plant in a scrollable viewport.
type PlantDetail struct {
	viewport    viewport.Model
	plant       plant.Plant
	hasPlant    bool
	thirstyDays int
	now         func() time.Time
}

// NewPlantDetail creates an empty detail view
func NewPlantDetail() *PlantDetail {
	return &PlantDetail{
		viewport:    viewport.New(),
		thirstyDays: 5,
		now:         time.Now,
	}
}

// SetSize sets the detail dimensions
func (d *PlantDetail) SetSize(width, height int) {
	d.viewport.SetWidth(width)
	d.viewport.SetHeight(height)
	d.refresh()
}

// SetThirstyAfterDays sets the watering threshold used for the status line
func (d *PlantDetail) SetThirstyAfterDays(days int) {
	if days > 0 {
		d.thirstyDays = days
	}
}

// SetNow overrides the clock used for watering status
func (d *PlantDetail) SetNow(now func() time.Time) {
	d.now = now
}

// SetPlant shows p. Switching to a different plant scrolls back to the top.
func (d *PlantDetail) SetPlant(p plant.Plant) {
	changed := !d.hasPlant || d.plant.ID != p.ID
	d.plant = p
	d.hasPlant = true
	d.refresh()
	if changed {
		d.viewport.GotoTop()
	}
}

// Clear removes the shown plant
func (d *PlantDetail) Clear() {
	d.plant = plant.Plant{}
	d.hasPlant = false
	d.viewport.SetContent("")
}

// Plant returns the shown plant
func (d *PlantDetail) Plant() (plant.Plant, bool) {
	return d.plant, d.hasPlant
}

// Update forwards scroll keys to the viewport
func (d *PlantDetail) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return cmd
}

func (d *PlantDetail) refresh() {
	if !d.hasPlant {
		return
	}
	d.viewport.SetContent(d.render())
}

func detailRow(label, value string) string {
	return DetailLabelStyle.Render(label) + DetailValueStyle.Render(value)
}

func (d *PlantDetail) render() string {
	p := d.plant
	now := d.now()

	lines := []string{
		DetailNameStyle.Render(p.Name),
		PlantMetaStyle.Render(p.Species),
		"",
		detailRow("Type", p.Type.Label()),
		detailRow("Age", fmt.Sprintf("%d months", p.AgeMonths)),
		detailRow("Leaves", fmt.Sprintf("%d", p.Leaves)),
		detailRow("Buds", fmt.Sprintf("%d", p.Buds)),
		detailRow("Flowers", fmt.Sprintf("%d", p.Flowers)),
	}

	photo := "none"
	if p.HasPhoto() {
		photo = p.Photo
	}
	lines = append(lines, detailRow("Photo", photo))

	watered := "never"
	if p.Watered() {
		watered = p.LastWateredString() + " (" + wateredText(p, now) + ")"
	}
	lines = append(lines, detailRow("Last watered", watered))
	if p.NeedsWater(now, d.thirstyDays) {
		lines = append(lines, ThirstyStyle.Render(thirstyMarker+" Needs water"))
	}

	if guide, ok := plant.Care(p.Type); ok {
		lines = append(lines,
			SectionStyle.Render("Care"),
			detailRow("Light", guide.Light),
			detailRow("Water", guide.Water),
		)
	}

	lines = append(lines,
		SectionStyle.Render("Assistant"),
		EmptyStateStyle.Padding(0).Render("Plant assistant is not available yet."),
	)

	width := d.viewport.Width()
	if width > 0 {
		return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
	}
	return strings.Join(lines, "\n")
}

// View renders the detail view
func (d *PlantDetail) View() string {
	if !d.hasPlant {
		return EmptyStateStyle.Render("No plant selected.")
	}
	return d.viewport.View()
}
