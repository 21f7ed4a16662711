package ui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/growmate/internal/plant"
)

const (
	listTypeColumnWidth    = 14
	listWateredColumnWidth = 16
	thirstyMarker          = "💧"
)

// PlantList renders the dashboard list with a movable cursor.
type PlantList struct {
	plants      []plant.Plant
	cursor      int
	offset      int
	width       int
	height      int
	thirstyDays int
	now         func() time.Time
}

// NewPlantList creates an empty list
func NewPlantList() *PlantList {
	return &PlantList{
		thirstyDays: 5,
		now:         time.Now,
	}
}

// SetSize sets the list dimensions
func (l *PlantList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.scrollToCursor()
}

// SetThirstyAfterDays sets the watering threshold for the thirsty marker
func (l *PlantList) SetThirstyAfterDays(days int) {
	if days > 0 {
		l.thirstyDays = days
	}
}

// SetNow overrides the clock used for watering status
func (l *PlantList) SetNow(now func() time.Time) {
	l.now = now
}

// SetPlants replaces the listed plants. The cursor follows the plant it was
// on when that plant is still present, otherwise it is clamped.
func (l *PlantList) SetPlants(plants []plant.Plant) {
	var currentID string
	if p, ok := l.Selected(); ok {
		currentID = p.ID
	}
	l.plants = plants
	if currentID != "" && l.SelectByID(currentID) {
		return
	}
	l.cursor = min(l.cursor, max(len(plants)-1, 0))
	l.scrollToCursor()
}

// Len returns the number of listed plants
func (l *PlantList) Len() int {
	return len(l.plants)
}

// Cursor returns the cursor index
func (l *PlantList) Cursor() int {
	return l.cursor
}

// Selected returns the plant under the cursor
func (l *PlantList) Selected() (plant.Plant, bool) {
	if l.cursor < 0 || l.cursor >= len(l.plants) {
		return plant.Plant{}, false
	}
	return l.plants[l.cursor], true
}

// SelectByID moves the cursor to the plant with the given ID
func (l *PlantList) SelectByID(id string) bool {
	for i, p := range l.plants {
		if p.ID == id {
			l.cursor = i
			l.scrollToCursor()
			return true
		}
	}
	return false
}

// CursorUp moves the cursor up one row
func (l *PlantList) CursorUp() {
	if l.cursor > 0 {
		l.cursor--
		l.scrollToCursor()
	}
}

// CursorDown moves the cursor down one row
func (l *PlantList) CursorDown() {
	if l.cursor < len(l.plants)-1 {
		l.cursor++
		l.scrollToCursor()
	}
}

// CursorHome moves the cursor to the first row
func (l *PlantList) CursorHome() {
	l.cursor = 0
	l.scrollToCursor()
}

// CursorEnd moves the cursor to the last row
func (l *PlantList) CursorEnd() {
	l.cursor = max(len(l.plants)-1, 0)
	l.scrollToCursor()
}

// visibleRows is the number of plant rows that fit below the column header
func (l *PlantList) visibleRows() int {
	if l.height <= 1 {
		return len(l.plants)
	}
	return l.height - 1
}

func (l *PlantList) scrollToCursor() {
	rows := l.visibleRows()
	if rows <= 0 {
		l.offset = 0
		return
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+rows {
		l.offset = l.cursor - rows + 1
	}
}

func (l *PlantList) nameWidth() int {
	// marker + spaces between columns + horizontal padding of the row style
	w := l.width - listTypeColumnWidth - listWateredColumnWidth - runewidth.StringWidth(thirstyMarker) - 4 - 2
	return max(w, 8)
}

func wateredText(p plant.Plant, now time.Time) string {
	days, ok := p.DaysSinceWatered(now)
	switch {
	case !ok:
		return "never watered"
	case days <= 0:
		return "watered today"
	case days == 1:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}

func cell(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

// View renders the list
func (l *PlantList) View() string {
	if len(l.plants) == 0 {
		return EmptyStateStyle.Render("No plants yet. Press a to add your first plant.")
	}

	now := l.now()
	nameW := l.nameWidth()
	markerW := runewidth.StringWidth(thirstyMarker)

	header := ListItemStyle.Render(
		strings.Repeat(" ", markerW) + " " +
			cell("Name", nameW) + " " +
			cell("Type", listTypeColumnWidth) + " " +
			cell("Watered", listWateredColumnWidth))
	rows := []string{PlantMetaStyle.Render(header)}

	end := min(l.offset+l.visibleRows(), len(l.plants))
	for i := l.offset; i < end; i++ {
		p := l.plants[i]
		marker := strings.Repeat(" ", markerW)
		if p.NeedsWater(now, l.thirstyDays) {
			marker = ThirstyStyle.Render(thirstyMarker)
		}
		line := marker + " " +
			cell(p.Name, nameW) + " " +
			cell(p.Type.Label(), listTypeColumnWidth) + " " +
			cell(wateredText(p, now), listWateredColumnWidth)

		style := ListItemStyle
		if i == l.cursor {
			style = ListSelectedStyle
		}
		rows = append(rows, style.Render(line))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
