package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/growmate/internal/keys"
	"github.com/zhubert/growmate/internal/state"
	"github.com/zhubert/growmate/internal/ui"
)

// handleModalKey routes a key to the handler for the visible modal
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch s := m.modal.State.(type) {
	case *ui.ConfirmDeleteState:
		return m.handleConfirmDeleteModal(msg, s)
	case *ui.HelpState:
		return m.handleHelpModal(msg, s)
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

func (m *Model) handleConfirmDeleteModal(msg tea.KeyPressMsg, s *ui.ConfirmDeleteState) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape, "n":
		m.dispatch(state.CancelDelete{})
		return m, nil
	case "y":
		return m.confirmDelete(s.PlantName)
	case keys.Enter:
		if s.ShouldDelete() {
			return m.confirmDelete(s.PlantName)
		}
		m.dispatch(state.CancelDelete{})
		return m, nil
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

func (m *Model) confirmDelete(name string) (tea.Model, tea.Cmd) {
	m.dispatch(state.ConfirmDelete{})
	return m, m.ShowFlashSuccess("Deleted " + name)
}

func (m *Model) handleHelpModal(msg tea.KeyPressMsg, s *ui.HelpState) (tea.Model, tea.Cmd) {
	if s.IsFiltering() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}

	switch msg.String() {
	case keys.Escape, "?", "q":
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		shortcut := s.GetSelectedShortcut()
		m.modal.Hide()
		if shortcut == nil {
			return m, nil
		}
		key := helpKeyToShortcutKey(shortcut.Key)
		return m, func() tea.Msg { return ui.HelpShortcutTriggeredMsg{Key: key} }
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// helpKeyToShortcutKey maps a display key back to the registry key
func helpKeyToShortcutKey(display string) string {
	for _, s := range ShortcutRegistry {
		if s.DisplayKey == display && s.DisplayKey != "" {
			return s.Key
		}
	}
	return display
}
