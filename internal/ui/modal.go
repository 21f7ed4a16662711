package ui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/growmate/internal/ui/modals"
)

// Modal state types live in the modals package; these aliases keep callers
// importing only ui.
type (
	ModalState               = modals.ModalState
	ModalWithPreferredWidth  = modals.ModalWithPreferredWidth
	ModalWithSize            = modals.ModalWithSize
	HelpShortcut             = modals.HelpShortcut
	HelpSection              = modals.HelpSection
	HelpShortcutTriggeredMsg = modals.HelpShortcutTriggeredMsg

	ConfirmDeleteState = modals.ConfirmDeleteState
	PlantFormState     = modals.PlantFormState
	AuthFormState      = modals.AuthFormState
	HelpState          = modals.HelpState
)

var (
	NewConfirmDeleteState    = modals.NewConfirmDeleteState
	NewPlantFormState        = modals.NewPlantFormState
	NewAuthFormState         = modals.NewAuthFormState
	NewHelpStateFromSections = modals.NewHelpStateFromSections
)

// RefreshModalStyles pushes the current theme's styles into the modals package.
func RefreshModalStyles() {
	modals.SetStyles(
		ModalTitleStyle, ModalHelpStyle, ListItemStyle, ListSelectedStyle, StatusErrorStyle,
		ColorPrimary, ColorSecondary, ColorText, ColorTextMuted, ColorTextInverse, ColorWarning, ColorError,
		ModalInputWidth, ModalInputCharLimit, ModalWidth, ModalWidthWide, HelpModalMaxVisible,
	)
}

// Modal represents a popup dialog with type-safe state management.
// The State field is nil when no modal is visible.
type Modal struct {
	State ModalState
	error string
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state ModalState) {
	m.State = state
	m.error = ""
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError sets an error message
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// View renders the modal centered on a screen of the given size
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}

	width := ModalWidth
	if p, ok := m.State.(ModalWithPreferredWidth); ok {
		width = p.PreferredWidth()
	}
	// Leave room for the border and a margin on narrow terminals.
	if limit := screenWidth - BorderSize - 2; limit > 0 && width > limit {
		width = limit
	}
	if s, ok := m.State.(ModalWithSize); ok {
		s.SetSize(width-4, screenHeight-BorderSize-4)
	}

	content := m.State.Render()
	if m.error != "" {
		content += "\n" + StatusErrorStyle.Render(m.error)
	}

	modal := ModalStyle.Width(width).Render(content)

	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		modal,
	)
}
