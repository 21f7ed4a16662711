package modals

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/growmate/internal/keys"
)

// Confirm dialog options, in display order.
const (
	OptionDelete = "Delete"
	OptionCancel = "Cancel"
)

// =============================================================================
// ConfirmDeleteState - State for the Delete Plant dialog
// =============================================================================

type ConfirmDeleteState struct {
	PlantID       string
	PlantName     string
	Options       []string
	SelectedIndex int
}

func (*ConfirmDeleteState) modalState() {}

func (s *ConfirmDeleteState) Title() string { return "Delete Plant?" }

func (s *ConfirmDeleteState) Help() string {
	return "up/down to select, Enter to confirm, Esc to cancel"
}

// Message is the warning shown above the options.
func (s *ConfirmDeleteState) Message() string {
	return fmt.Sprintf("Are you sure you want to delete %q? This action cannot be undone.", s.PlantName)
}

func (s *ConfirmDeleteState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	message := lipgloss.NewStyle().
		Foreground(ColorText).
		Width(ModalWidth - 6).
		MarginBottom(1).
		Render(s.Message())

	optionList := RenderSelectableList(s.Options, s.SelectedIndex)
	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, message, optionList, help)
}

func (s *ConfirmDeleteState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Up, "k":
			if s.SelectedIndex > 0 {
				s.SelectedIndex--
			}
		case keys.Down, "j":
			if s.SelectedIndex < len(s.Options)-1 {
				s.SelectedIndex++
			}
		}
	}
	return s, nil
}

// ShouldDelete returns true if the user selected the delete option
func (s *ConfirmDeleteState) ShouldDelete() bool {
	return s.SelectedIndex >= 0 && s.SelectedIndex < len(s.Options) && s.Options[s.SelectedIndex] == OptionDelete
}

// NewConfirmDeleteState creates a new ConfirmDeleteState. Cancel is
// preselected so an accidental Enter never deletes.
func NewConfirmDeleteState(plantID, plantName string) *ConfirmDeleteState {
	return &ConfirmDeleteState{
		PlantID:       plantID,
		PlantName:     plantName,
		Options:       []string{OptionDelete, OptionCancel},
		SelectedIndex: 1,
	}
}
