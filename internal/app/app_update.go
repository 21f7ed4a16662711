package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/growmate/internal/keys"
	"github.com/zhubert/growmate/internal/logger"
	"github.com/zhubert/growmate/internal/nav"
	"github.com/zhubert/growmate/internal/state"
	"github.com/zhubert/growmate/internal/ui"
)

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case StartupMsg:
		logger.WithComponent("app").Info("started", "version", m.version, "plants", len(m.snap.Plants))
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == keys.CtrlC {
			return m, tea.Quit
		}
		if m.modal.IsVisible() {
			return m.handleModalKey(msg)
		}
		if !m.snap.LoggedIn {
			return m.handleAuthKey(msg)
		}
		if m.snap.Main == nav.ViewAdd {
			return m.handlePlantFormKey(msg)
		}
		return m.handleMainKey(msg)

	case ui.HelpShortcutTriggeredMsg:
		result, cmd, _ := m.ExecuteShortcut(msg.Key)
		return result, cmd

	case AuthResultMsg:
		return m.handleAuthResult(msg)

	case ReminderResultMsg:
		if msg.Err != nil {
			return m, m.ShowFlashWarning("Could not send watering reminder")
		}
		return m, nil

	case ClipboardResultMsg:
		if msg.Err != nil {
			return m, m.ShowFlashError("Copy failed: " + userMessage(msg.Err))
		}
		return m, m.ShowFlashSuccess("Copied " + msg.PlantName + " to clipboard")

	case ConfigSavedMsg:
		if msg.Err != nil {
			logger.WithComponent("app").Warn("config save failed", "setting", msg.Setting, "error", msg.Err)
			return m, m.ShowFlashWarning("Setting not saved: " + userMessage(msg.Err))
		}
		return m, nil

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() {
			return m, ui.FlashTick()
		}
		return m, nil
	}

	return m, nil
}

// handleAuthKey handles keys on the login and signup screens
func (m *Model) handleAuthKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.appState == StateAuthenticating {
		return m, nil
	}

	switch msg.String() {
	case keys.CtrlT:
		next := state.AuthSignup
		if m.snap.AuthView == state.AuthSignup {
			next = state.AuthLogin
		}
		m.dispatch(state.SwitchAuthView{View: next})
		return m, nil

	case keys.Enter:
		creds, err := m.authForm.Credentials()
		if err != nil {
			m.authForm.SetError(err.Error())
			return m, nil
		}
		m.authForm.SetBusy(true)
		m.setState(StateAuthenticating)
		return m, authenticate(m.gateway, m.authForm.Signup, creds, m.authTimeout)
	}

	_, cmd := m.authForm.Update(msg)
	return m, cmd
}

// handleAuthResult finishes a login or signup request
func (m *Model) handleAuthResult(msg AuthResultMsg) (tea.Model, tea.Cmd) {
	m.setState(StateIdle)

	if msg.Err != nil {
		text := userMessage(msg.Err)
		if m.authForm != nil {
			m.authForm.SetError(text)
		}
		return m, m.ShowFlashError(text)
	}

	m.username = msg.Username
	if msg.Signup {
		m.dispatch(state.Signup{})
	} else {
		m.dispatch(state.Login{})
	}

	cmds := []tea.Cmd{m.ShowFlashSuccess("Welcome, " + msg.Username)}
	if m.config.GetNotificationsEnabled() {
		cmds = append(cmds, remindThirsty(m.snap.Plants, m.now(), m.config.GetThirstyAfterDays()))
	}
	return m, tea.Batch(cmds...)
}

// handlePlantFormKey handles keys on the add / edit screen. Number keys and
// letters belong to the form fields there, so no shortcuts apply.
func (m *Model) handlePlantFormKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		m.dispatch(state.Navigate{View: nav.ViewDashboard})
		return m, nil

	case keys.Enter, keys.CtrlS:
		p, err := m.plantForm.Plant()
		if err != nil {
			m.plantForm.SetError(err.Error())
			return m, nil
		}
		editing := m.snap.Form.IsEdit()
		m.dispatch(state.SavePlant{Plant: p})
		if editing {
			return m, m.ShowFlashSuccess("Updated " + p.Name)
		}
		return m, m.ShowFlashSuccess("Added " + p.Name)
	}

	_, cmd := m.plantForm.Update(msg)
	return m, cmd
}

// handleMainKey handles keys on the dashboard, encyclopaedia, reels and
// account screens
func (m *Model) handleMainKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if keyIsNavigation(key) {
		return m, m.scroll(msg)
	}
	if key == keys.Backspace && m.snap.ShowingDetail() {
		key = keys.Escape
	}
	if key == keys.Delete {
		key = "d"
	}

	result, cmd, _ := m.ExecuteShortcut(key)
	return result, cmd
}

// scroll moves the list cursor or scrolls the active viewport
func (m *Model) scroll(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case m.snap.ShowingDetail():
		return m.detail.Update(msg)
	case m.snap.Main == nav.ViewEncyclopaedia:
		return m.encyclopaedia.Update(msg)
	case m.snap.Main == nav.ViewDashboard:
		switch msg.String() {
		case keys.Up, "k":
			m.list.CursorUp()
		case keys.Down, "j":
			m.list.CursorDown()
		case keys.Home, keys.PgUp:
			m.list.CursorHome()
		case keys.End, keys.PgDown:
			m.list.CursorEnd()
		}
	}
	return nil
}
