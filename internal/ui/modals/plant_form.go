package modals

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/growmate/internal/plant"
)

// Field limits for the plant form
const (
	PlantNameCharLimit    = 60
	PlantSpeciesCharLimit = 80
	PlantCountCharLimit   = 5
	PlantPhotoCharLimit   = 512
)

// =============================================================================
// PlantFormState - State for the Add / Edit Plant form
// =============================================================================

type PlantFormState struct {
	// Bound form values
	name        string
	species     string
	plantType   plant.Type
	age         string
	leaves      string
	buds        string
	flowers     string
	photo       string
	lastWatered string

	plantID string // empty in create mode
	err     string
	form    *huh.Form
}

func (*PlantFormState) modalState() {}

func (s *PlantFormState) PreferredWidth() int { return ModalWidthWide }

func (s *PlantFormState) Title() string {
	if s.IsEdit() {
		return "Edit " + s.name
	}
	return "Add Plant"
}

func (s *PlantFormState) Help() string {
	return "Tab: next field  Enter: save  Esc: back to dashboard"
}

func (s *PlantFormState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	parts := []string{title, s.form.View()}
	if s.err != "" {
		parts = append(parts, StatusErrorStyle.Render(s.err))
	}
	parts = append(parts, ModalHelpStyle.Render(s.Help()))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *PlantFormState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// IsEdit reports whether the form edits an existing plant.
func (s *PlantFormState) IsEdit() bool {
	return s.plantID != ""
}

// PlantID returns the ID of the plant being edited, empty in create mode.
func (s *PlantFormState) PlantID() string {
	return s.plantID
}

// SetError shows a validation message under the form.
func (s *PlantFormState) SetError(err string) {
	s.err = err
}

// Plant parses the form into a plant. In create mode the returned plant has
// no ID; the caller assigns one on save.
func (s *PlantFormState) Plant() (plant.Plant, error) {
	p := plant.Plant{
		ID:      s.plantID,
		Name:    strings.TrimSpace(s.name),
		Species: strings.TrimSpace(s.species),
		Type:    s.plantType,
		Photo:   strings.TrimSpace(s.photo),
	}
	if p.Name == "" {
		return plant.Plant{}, fmt.Errorf("name is required")
	}
	if !p.Type.Valid() {
		return plant.Plant{}, fmt.Errorf("choose a plant type")
	}

	var err error
	if p.AgeMonths, err = parseCount("age", s.age); err != nil {
		return plant.Plant{}, err
	}
	if p.Leaves, err = parseCount("leaves", s.leaves); err != nil {
		return plant.Plant{}, err
	}
	if p.Buds, err = parseCount("buds", s.buds); err != nil {
		return plant.Plant{}, err
	}
	if p.Flowers, err = parseCount("flowers", s.flowers); err != nil {
		return plant.Plant{}, err
	}
	if p.LastWatered, err = plant.ParseDate(s.lastWatered); err != nil {
		return plant.Plant{}, err
	}
	return p, nil
}

// parseCount parses a non-negative whole number. Blank means zero.
func parseCount(field, v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a whole number of 0 or more", field)
	}
	return n, nil
}

func validateCount(field string) func(string) error {
	return func(v string) error {
		_, err := parseCount(field, v)
		return err
	}
}

func validateDate(v string) error {
	_, err := plant.ParseDate(v)
	return err
}

func validateName(v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// NewPlantFormState creates the form. A nil editing plant opens it in create
// mode; otherwise the fields are seeded with the plant's current values.
func NewPlantFormState(editing *plant.Plant) *PlantFormState {
	s := &PlantFormState{plantType: plant.TypeFlowering}
	if editing != nil {
		s.plantID = editing.ID
		s.name = editing.Name
		s.species = editing.Species
		s.plantType = editing.Type
		s.age = strconv.Itoa(editing.AgeMonths)
		s.leaves = strconv.Itoa(editing.Leaves)
		s.buds = strconv.Itoa(editing.Buds)
		s.flowers = strconv.Itoa(editing.Flowers)
		s.photo = editing.Photo
		s.lastWatered = editing.LastWateredString()
	}

	typeOptions := make([]huh.Option[plant.Type], len(plant.Types))
	for i, t := range plant.Types {
		typeOptions[i] = huh.NewOption(t.Label(), t)
	}

	details := huh.NewGroup(
		huh.NewInput().
			Title("Name").
			Placeholder("Rosie").
			CharLimit(PlantNameCharLimit).
			Validate(validateName).
			Value(&s.name),
		huh.NewInput().
			Title("Species").
			Placeholder("Rosa").
			CharLimit(PlantSpeciesCharLimit).
			Value(&s.species),
		huh.NewSelect[plant.Type]().
			Title("Type").
			Options(typeOptions...).
			Height(len(typeOptions)+1).
			Value(&s.plantType),
	)

	growth := huh.NewGroup(
		huh.NewInput().
			Title("Age (months)").
			Placeholder("0").
			CharLimit(PlantCountCharLimit).
			Validate(validateCount("age")).
			Value(&s.age),
		huh.NewInput().
			Title("Leaves").
			Placeholder("0").
			CharLimit(PlantCountCharLimit).
			Validate(validateCount("leaves")).
			Value(&s.leaves),
		huh.NewInput().
			Title("Buds").
			Placeholder("0").
			CharLimit(PlantCountCharLimit).
			Validate(validateCount("buds")).
			Value(&s.buds),
		huh.NewInput().
			Title("Flowers").
			Placeholder("0").
			CharLimit(PlantCountCharLimit).
			Validate(validateCount("flowers")).
			Value(&s.flowers),
	)

	care := huh.NewGroup(
		huh.NewInput().
			Title("Photo").
			Description("Image URL or path, optional").
			CharLimit(PlantPhotoCharLimit).
			Value(&s.photo),
		huh.NewInput().
			Title("Last watered").
			Placeholder(plant.DateLayout).
			Validate(validateDate).
			Value(&s.lastWatered),
	)

	s.form = newForm(ModalWidthWide-10, details, growth, care)
	return s
}
