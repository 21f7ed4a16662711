package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/zhubert/growmate/internal/plant"
)

var testNow = time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

func testPlants() []plant.Plant {
	return []plant.Plant{
		{ID: "1", Name: "Rosie", Species: "Rosa", Type: plant.TypeFlowering, AgeMonths: 6, Leaves: 32, Buds: 5, Flowers: 2,
			LastWatered: time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)},
		{ID: "2", Name: "Spike", Species: "Echinocactus grusonii", Type: plant.TypeSucculent, AgeMonths: 12},
	}
}

func newTestList(plants []plant.Plant) *PlantList {
	l := NewPlantList()
	l.SetNow(func() time.Time { return testNow })
	l.SetSize(80, 20)
	l.SetPlants(plants)
	return l
}

func lineContaining(view, needle string) string {
	for _, line := range strings.Split(stripANSI(view), "\n") {
		if strings.Contains(line, needle) {
			return line
		}
	}
	return ""
}

func TestPlantList_Empty(t *testing.T) {
	l := newTestList(nil)

	if _, ok := l.Selected(); ok {
		t.Error("Empty list should have no selection")
	}
	if !strings.Contains(stripANSI(l.View()), "No plants yet") {
		t.Error("Empty list should show empty state")
	}
}

func TestPlantList_CursorMovement(t *testing.T) {
	l := newTestList(testPlants())

	p, ok := l.Selected()
	if !ok || p.ID != "1" {
		t.Fatalf("Expected first plant selected, got %+v", p)
	}

	l.CursorDown()
	if p, _ := l.Selected(); p.ID != "2" {
		t.Errorf("Expected Spike after down, got %s", p.Name)
	}

	l.CursorDown()
	if l.Cursor() != 1 {
		t.Errorf("Cursor should stop at the last row, got %d", l.Cursor())
	}

	l.CursorUp()
	l.CursorUp()
	if l.Cursor() != 0 {
		t.Errorf("Cursor should stop at the first row, got %d", l.Cursor())
	}

	l.CursorEnd()
	if l.Cursor() != 1 {
		t.Errorf("CursorEnd should move to last row, got %d", l.Cursor())
	}
	l.CursorHome()
	if l.Cursor() != 0 {
		t.Errorf("CursorHome should move to first row, got %d", l.Cursor())
	}
}

func TestPlantList_SetPlantsFollowsSelection(t *testing.T) {
	l := newTestList(testPlants())
	l.CursorDown()

	reordered := []plant.Plant{testPlants()[1], testPlants()[0]}
	l.SetPlants(reordered)

	if p, _ := l.Selected(); p.ID != "2" {
		t.Errorf("Cursor should follow Spike, got %s", p.Name)
	}
}

func TestPlantList_SetPlantsClampsAfterRemoval(t *testing.T) {
	l := newTestList(testPlants())
	l.CursorDown()

	l.SetPlants(testPlants()[:1])

	p, ok := l.Selected()
	if !ok || p.ID != "1" {
		t.Errorf("Cursor should clamp to Rosie, got %+v", p)
	}
}

func TestPlantList_SelectByID(t *testing.T) {
	l := newTestList(testPlants())

	if !l.SelectByID("2") {
		t.Fatal("SelectByID should find Spike")
	}
	if l.Cursor() != 1 {
		t.Errorf("Expected cursor 1, got %d", l.Cursor())
	}
	if l.SelectByID("missing") {
		t.Error("SelectByID should fail for unknown IDs")
	}
}

func TestPlantList_ViewRows(t *testing.T) {
	l := newTestList(testPlants())
	view := l.View()

	rosie := lineContaining(view, "Rosie")
	if rosie == "" {
		t.Fatal("Expected Rosie row")
	}
	if !strings.Contains(rosie, "Flowering") || !strings.Contains(rosie, "1 day ago") {
		t.Errorf("Unexpected Rosie row %q", rosie)
	}
	if strings.Contains(rosie, thirstyMarker) {
		t.Error("Rosie was watered yesterday and should not be thirsty")
	}

	spike := lineContaining(view, "Spike")
	if !strings.Contains(spike, "never watered") {
		t.Errorf("Unexpected Spike row %q", spike)
	}
	if !strings.Contains(spike, thirstyMarker) {
		t.Error("Spike has never been watered and should be thirsty")
	}
}

func TestPlantList_ThirstyThreshold(t *testing.T) {
	l := newTestList(testPlants())
	l.SetNow(func() time.Time { return testNow.AddDate(0, 0, 1) })

	l.SetThirstyAfterDays(2)
	if !strings.Contains(lineContaining(l.View(), "Rosie"), thirstyMarker) {
		t.Error("Rosie should be thirsty after two days with a two day threshold")
	}

	l.SetThirstyAfterDays(0)
	if !strings.Contains(lineContaining(l.View(), "Rosie"), thirstyMarker) {
		t.Error("Non-positive thresholds should be ignored")
	}
}

func TestPlantList_TruncatesLongNames(t *testing.T) {
	long := plant.Plant{ID: "3", Name: strings.Repeat("Monstera ", 20), Type: plant.TypeNonFlowering}
	l := newTestList([]plant.Plant{long})

	row := lineContaining(l.View(), "Monstera")
	if !strings.Contains(row, "…") {
		t.Errorf("Expected long name to be truncated, got %q", row)
	}
	if !strings.Contains(row, "Non-flowering") {
		t.Errorf("Type column should survive truncation, got %q", row)
	}
}

func TestPlantList_ScrollsToCursor(t *testing.T) {
	var plants []plant.Plant
	for _, name := range []string{"Aloe", "Basil", "Cactus", "Dill"} {
		plants = append(plants, plant.Plant{ID: name, Name: name, Type: plant.TypeHerb})
	}
	l := newTestList(plants)
	l.SetSize(80, 3)

	l.CursorEnd()
	view := stripANSI(l.View())
	if !strings.Contains(view, "Dill") {
		t.Error("Last plant should be visible after CursorEnd")
	}
	if strings.Contains(view, "Aloe") {
		t.Error("First plant should scroll out of view")
	}
}
