package app

import (
	"github.com/zhubert/growmate/internal/nav"
	"github.com/zhubert/growmate/internal/state"
	"github.com/zhubert/growmate/internal/ui"
)

// syncViews brings every view in line with m.snap. prev is the snapshot
// the views showed before, used to decide when forms must be rebuilt.
func (m *Model) syncViews(prev state.Snapshot) {
	s := m.snap

	m.list.SetPlants(s.Plants)
	if s.Selected != nil {
		m.list.SelectByID(s.Selected.ID)
		m.detail.SetPlant(*s.Selected)
	} else {
		m.detail.Clear()
	}

	m.syncAuthForm(prev)
	m.syncPlantForm(prev)
	m.syncConfirmModal()

	m.navbar.SetActive(s.Main)
	if s.LoggedIn {
		m.header.SetViewName(m.screenTitle())
		m.header.SetUsername(m.username)
	} else {
		m.header.SetViewName(authTitle(s.AuthView))
		m.header.SetUsername("")
	}
	m.footer.SetBindings(m.footerBindings())
}

func authTitle(v state.AuthView) string {
	if v == state.AuthSignup {
		return "Sign up"
	}
	return "Log in"
}

// screenTitle names the active screen for the header
func (m *Model) screenTitle() string {
	s := m.snap
	switch {
	case s.ShowingDetail():
		return s.Selected.Name
	case s.Main == nav.ViewAdd && s.Editing != nil:
		return "Edit " + s.Editing.Name
	default:
		return ui.ViewTitle(s.Main)
	}
}

func (m *Model) syncAuthForm(prev state.Snapshot) {
	s := m.snap
	if s.LoggedIn {
		m.authForm = nil
		return
	}
	if m.authForm != nil && !prev.LoggedIn && prev.AuthView == s.AuthView {
		return
	}
	username := m.username
	if m.authForm != nil {
		username = m.authForm.Username()
	}
	m.authForm = ui.NewAuthFormState(s.AuthView == state.AuthSignup, username)
}

func (m *Model) syncPlantForm(prev state.Snapshot) {
	s := m.snap
	if !s.LoggedIn || s.Main != nav.ViewAdd {
		m.plantForm = nil
		return
	}
	if m.plantForm != nil && prev.LoggedIn && prev.Main == nav.ViewAdd && prev.Form == s.Form {
		return
	}
	m.plantForm = ui.NewPlantFormState(s.Editing)
}

// syncConfirmModal shows the delete dialog exactly while the state says it
// is open and a user is logged in.
func (m *Model) syncConfirmModal() {
	s := m.snap
	current, showing := m.modal.State.(*ui.ConfirmDeleteState)

	if s.LoggedIn && s.ConfirmVisible && s.PendingDelete != nil {
		if !showing || current.PlantID != s.PendingDelete.ID {
			m.modal.Show(ui.NewConfirmDeleteState(s.PendingDelete.ID, s.PendingDelete.Name))
		}
		return
	}
	if showing {
		m.modal.Hide()
	}
	if !s.LoggedIn && m.modal.IsVisible() {
		m.modal.Hide()
	}
}

// updateSizes recalculates component sizes after a resize
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.navbar.SetWidth(ctx.TerminalWidth)
	m.list.SetSize(ctx.ContentWidth, ctx.ContentHeight)
	m.detail.SetSize(ctx.ContentWidth, ctx.ContentHeight)
	m.encyclopaedia.SetSize(ctx.ContentWidth, ctx.ContentHeight)
}
