package modals

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/growmate/internal/plant"
)

var rosie = plant.Plant{
	ID:          "1",
	Name:        "Rosie",
	Species:     "Rosa",
	Type:        plant.TypeFlowering,
	AgeMonths:   6,
	Leaves:      32,
	Buds:        5,
	Flowers:     2,
	Photo:       "https://picsum.photos/seed/rosie/300",
	LastWatered: time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC),
}

func TestPlantFormState_CreateMode(t *testing.T) {
	s := NewPlantFormState(nil)

	if s.IsEdit() {
		t.Error("nil plant should open create mode")
	}
	if s.Title() != "Add Plant" {
		t.Errorf("unexpected title %q", s.Title())
	}
	if _, err := s.Plant(); err == nil {
		t.Error("empty form should not produce a plant")
	}
}

func TestPlantFormState_EditModeSeedsValues(t *testing.T) {
	s := NewPlantFormState(&rosie)

	if !s.IsEdit() || s.PlantID() != "1" {
		t.Fatalf("expected edit mode for plant 1, got %q", s.PlantID())
	}
	if !strings.Contains(s.Title(), "Rosie") {
		t.Errorf("edit title should name the plant, got %q", s.Title())
	}

	got, err := s.Plant()
	if err != nil {
		t.Fatalf("Plant() failed: %v", err)
	}
	if got != rosie {
		t.Errorf("Plant() = %+v, want %+v", got, rosie)
	}
}

func TestPlantFormState_TypingName(t *testing.T) {
	s := NewPlantFormState(nil)
	typeText(func(msg tea.Msg) { s.Update(msg) }, "Minty")

	got, err := s.Plant()
	if err != nil {
		t.Fatalf("Plant() failed: %v", err)
	}
	if got.Name != "Minty" || got.ID != "" {
		t.Errorf("unexpected plant %+v", got)
	}
	if got.Type != plant.TypeFlowering {
		t.Errorf("expected default type flowering, got %q", got.Type)
	}
}

func TestPlantFormState_EnterAndEscNotForwarded(t *testing.T) {
	s := NewPlantFormState(&rosie)

	_, cmd := s.Update(keyPress("enter"))
	if cmd != nil {
		t.Error("enter should be left to the app layer")
	}
	_, cmd = s.Update(keyPress("esc"))
	if cmd != nil {
		t.Error("esc should be left to the app layer")
	}
}

func TestPlantFormState_InvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PlantFormState)
		want   string
	}{
		{"blank name", func(s *PlantFormState) { s.name = "  " }, "name"},
		{"negative leaves", func(s *PlantFormState) { s.leaves = "-1" }, "leaves"},
		{"text age", func(s *PlantFormState) { s.age = "six" }, "age"},
		{"bad date", func(s *PlantFormState) { s.lastWatered = "09/06/2024" }, "YYYY-MM-DD"},
		{"unknown type", func(s *PlantFormState) { s.plantType = "tree" }, "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewPlantFormState(&rosie)
			tt.mutate(s)

			_, err := s.Plant()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"", 0, false},
		{" 12 ", 12, false},
		{"0", 0, false},
		{"-3", 0, true},
		{"1.5", 0, true},
	}
	for _, tt := range tests {
		got, err := parseCount("leaves", tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseCount(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("parseCount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPlantFormState_RenderShowsError(t *testing.T) {
	s := NewPlantFormState(nil)
	s.SetError("name is required")

	if !strings.Contains(s.Render(), "name is required") {
		t.Error("render should include the validation error")
	}
}
