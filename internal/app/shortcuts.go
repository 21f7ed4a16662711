package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/growmate/internal/config"
	"github.com/zhubert/growmate/internal/keys"
	"github.com/zhubert/growmate/internal/logger"
	"github.com/zhubert/growmate/internal/nav"
	"github.com/zhubert/growmate/internal/plant"
	"github.com/zhubert/growmate/internal/state"
	"github.com/zhubert/growmate/internal/ui"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for shortcuts on the logged-in screens
// other than the plant form.
type Shortcut struct {
	Key           string                              // The key binding (e.g., "a", "esc")
	DisplayKey    string                              // Display name in help (e.g., "Esc"); defaults to Key
	Description   string                              // Human-readable description
	Category      string                              // Section for help modal grouping
	RequiresPlant bool                                // Needs a plant under the cursor or in the detail view
	Views         []nav.MainView                      // Views the shortcut works in; empty means all
	Handler       func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition     func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryNavigation = "Navigation"
	CategoryPlants     = "Plants"
	CategorySettings   = "Settings"
	CategoryGeneral    = "General"
)

// categoryOrder defines the display order of categories in the help modal
var categoryOrder = []string{
	CategoryNavigation,
	CategoryPlants,
	CategorySettings,
	CategoryGeneral,
}

func navigateTo(view nav.MainView) func(m *Model) (tea.Model, tea.Cmd) {
	return func(m *Model) (tea.Model, tea.Cmd) {
		m.dispatch(state.Navigate{View: view})
		return m, nil
	}
}

// ShortcutRegistry is the central registry of keyboard shortcuts.
// Shortcuts listed here appear in the help modal and can be triggered
// from it.
var ShortcutRegistry = []Shortcut{
	// Navigation
	{Key: "1", Description: "My plants", Category: CategoryNavigation, Handler: navigateTo(nav.ViewDashboard)},
	{Key: "2", Description: "Add a plant", Category: CategoryNavigation, Handler: navigateTo(nav.ViewAdd)},
	{Key: "3", Description: "Encyclopaedia", Category: CategoryNavigation, Handler: navigateTo(nav.ViewEncyclopaedia)},
	{Key: "4", Description: "Reels", Category: CategoryNavigation, Handler: navigateTo(nav.ViewReels)},
	{Key: "5", Description: "Account", Category: CategoryNavigation, Handler: navigateTo(nav.ViewUser)},
	{
		Key:         "esc",
		DisplayKey:  "Esc",
		Description: "Back to plant list",
		Category:    CategoryNavigation,
		Views:       []nav.MainView{nav.ViewDashboard},
		Handler:     shortcutBack,
		Condition:   func(m *Model) bool { return m.snap.ShowingDetail() },
	},

	// Plants
	{
		Key:           "enter",
		DisplayKey:    "Enter",
		Description:   "Open plant",
		Category:      CategoryPlants,
		RequiresPlant: true,
		Views:         []nav.MainView{nav.ViewDashboard},
		Handler:       shortcutOpenPlant,
		Condition:     func(m *Model) bool { return !m.snap.ShowingDetail() },
	},
	{
		Key:         "a",
		Description: "Add plant",
		Category:    CategoryPlants,
		Views:       []nav.MainView{nav.ViewDashboard},
		Handler:     shortcutAddPlant,
	},
	{
		Key:           "e",
		Description:   "Edit plant",
		Category:      CategoryPlants,
		RequiresPlant: true,
		Views:         []nav.MainView{nav.ViewDashboard},
		Handler:       shortcutEditPlant,
	},
	{
		Key:           "d",
		Description:   "Delete plant",
		Category:      CategoryPlants,
		RequiresPlant: true,
		Views:         []nav.MainView{nav.ViewDashboard},
		Handler:       shortcutDeletePlant,
	},
	{
		Key:           "w",
		Description:   "Mark watered today",
		Category:      CategoryPlants,
		RequiresPlant: true,
		Views:         []nav.MainView{nav.ViewDashboard},
		Handler:       shortcutWaterPlant,
	},
	{
		Key:           "c",
		Description:   "Copy plant summary",
		Category:      CategoryPlants,
		RequiresPlant: true,
		Views:         []nav.MainView{nav.ViewDashboard},
		Handler:       shortcutCopySummary,
		Condition:     func(m *Model) bool { return m.snap.ShowingDetail() },
	},

	// Settings
	{Key: "t", Description: "Next theme", Category: CategorySettings, Handler: shortcutNextTheme},
	{Key: "r", Description: "Toggle watering reminders", Category: CategorySettings, Handler: shortcutToggleReminders},

	// General
	// Note: "?" (help) is handled specially in ExecuteShortcut to avoid init cycle
	{
		Key:         "l",
		Description: "Log out",
		Category:    CategoryGeneral,
		Views:       []nav.MainView{nav.ViewUser},
		Handler:     shortcutLogout,
	},
	{Key: "q", Description: "Quit", Category: CategoryGeneral, Handler: shortcutQuit},
}

// helpShortcut is defined separately to avoid initialization cycle.
// It references ShortcutRegistry, so it can't be in the registry itself.
var helpShortcut = Shortcut{
	Key:         "?",
	Description: "Show this help",
	Category:    CategoryGeneral,
}

// DisplayOnlyShortcuts are shown in help but not executable from the help modal.
var DisplayOnlyShortcuts = []Shortcut{
	{DisplayKey: "↑/↓ or j/k", Description: "Move through plants / scroll", Category: CategoryNavigation},
	{DisplayKey: "PgUp/PgDn", Description: "Scroll plant details", Category: CategoryNavigation},
	{DisplayKey: "Tab", Description: "Next form field", Category: CategoryPlants, Views: []nav.MainView{nav.ViewAdd}},
	{DisplayKey: "Enter / ctrl-s", Description: "Save plant form", Category: CategoryPlants, Views: []nav.MainView{nav.ViewAdd}},
	{DisplayKey: "ctrl-c", Description: "Quit from anywhere", Category: CategoryGeneral},
}

// currentPlant returns the plant shortcuts act on: the plant in the detail
// view, or the plant under the list cursor.
func (m *Model) currentPlant() (plant.Plant, bool) {
	if m.snap.Main != nav.ViewDashboard {
		return plant.Plant{}, false
	}
	if m.snap.ShowingDetail() {
		return *m.snap.Selected, true
	}
	return m.list.Selected()
}

func inViews(views []nav.MainView, v nav.MainView) bool {
	if len(views) == 0 {
		return true
	}
	for _, candidate := range views {
		if candidate == v {
			return true
		}
	}
	return false
}

// isShortcutApplicable checks if a shortcut is applicable given the current model state.
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	if !inViews(s.Views, m.snap.Main) {
		return false
	}
	if s.RequiresPlant {
		if _, ok := m.currentPlant(); !ok {
			return false
		}
	}
	if s.Condition != nil && !s.Condition(m) {
		return false
	}
	return true
}

// ExecuteShortcut finds and executes a shortcut by key.
// Returns (model, cmd, true) if the shortcut was found and executed.
// Returns (model, nil, false) if the shortcut was not found or guards failed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	if key == helpShortcut.Key {
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}

	log := logger.WithComponent("shortcuts")
	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if !m.isShortcutApplicable(s) {
			log.Debug("guards failed", "key", key, "view", m.snap.Main)
			continue
		}
		log.Debug("executing shortcut", "key", key, "view", m.snap.Main)
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// getApplicableHelpSections generates help modal sections from shortcuts
// that are applicable in the current application state.
func (m *Model) getApplicableHelpSections(registry []Shortcut, displayOnly []Shortcut) []ui.HelpSection {
	categories := make(map[string][]ui.HelpShortcut)

	add := func(s Shortcut) {
		displayKey := s.DisplayKey
		if displayKey == "" {
			displayKey = s.Key
		}
		categories[s.Category] = append(categories[s.Category], ui.HelpShortcut{
			Key:  displayKey,
			Desc: s.Description,
		})
	}

	for _, s := range registry {
		if m.isShortcutApplicable(s) {
			add(s)
		}
	}
	add(helpShortcut)
	for _, s := range displayOnly {
		if inViews(s.Views, m.snap.Main) {
			add(s)
		}
	}

	var sections []ui.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts, ok := categories[cat]; ok && len(shortcuts) > 0 {
			sections = append(sections, ui.HelpSection{
				Title:     cat,
				Shortcuts: shortcuts,
			})
		}
	}
	return sections
}

// footerBindings picks the keys shown in the footer for the active screen
func (m *Model) footerBindings() []ui.KeyBinding {
	s := m.snap
	if !s.LoggedIn {
		other := "sign up"
		submit := "log in"
		if s.AuthView == state.AuthSignup {
			other, submit = "log in", "sign up"
		}
		return []ui.KeyBinding{
			{Key: "tab", Desc: "next field"},
			{Key: "enter", Desc: submit},
			{Key: "ctrl+t", Desc: other},
			{Key: "ctrl+c", Desc: "quit"},
		}
	}

	switch {
	case s.Main == nav.ViewAdd:
		return []ui.KeyBinding{
			{Key: "tab", Desc: "next field"},
			{Key: "enter", Desc: "save"},
			{Key: "esc", Desc: "cancel"},
		}
	case s.ShowingDetail():
		return []ui.KeyBinding{
			{Key: "esc", Desc: "back"},
			{Key: "e", Desc: "edit"},
			{Key: "d", Desc: "delete"},
			{Key: "w", Desc: "water"},
			{Key: "c", Desc: "copy"},
			{Key: "?", Desc: "help"},
		}
	case s.Main == nav.ViewDashboard:
		bindings := []ui.KeyBinding{{Key: "a", Desc: "add"}}
		if len(s.Plants) > 0 {
			bindings = append([]ui.KeyBinding{{Key: "enter", Desc: "open"}}, bindings...)
			bindings = append(bindings,
				ui.KeyBinding{Key: "e", Desc: "edit"},
				ui.KeyBinding{Key: "d", Desc: "delete"},
				ui.KeyBinding{Key: "w", Desc: "water"},
			)
		}
		return append(bindings, ui.KeyBinding{Key: "1-5", Desc: "views"}, ui.KeyBinding{Key: "?", Desc: "help"}, ui.KeyBinding{Key: "q", Desc: "quit"})
	case s.Main == nav.ViewUser:
		return []ui.KeyBinding{
			{Key: "l", Desc: "log out"},
			{Key: "1-5", Desc: "views"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		}
	default:
		return []ui.KeyBinding{
			{Key: "1-5", Desc: "views"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		}
	}
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(ui.NewHelpStateFromSections(m.getApplicableHelpSections(ShortcutRegistry, DisplayOnlyShortcuts)))
	return m, nil
}

func shortcutBack(m *Model) (tea.Model, tea.Cmd) {
	m.dispatch(state.Back{})
	return m, nil
}

func shortcutOpenPlant(m *Model) (tea.Model, tea.Cmd) {
	p, _ := m.currentPlant()
	m.dispatch(state.SelectPlant{Plant: p})
	return m, nil
}

func shortcutAddPlant(m *Model) (tea.Model, tea.Cmd) {
	m.dispatch(state.AddPlant{})
	return m, nil
}

func shortcutEditPlant(m *Model) (tea.Model, tea.Cmd) {
	p, _ := m.currentPlant()
	m.dispatch(state.EditPlant{Plant: p})
	return m, nil
}

func shortcutDeletePlant(m *Model) (tea.Model, tea.Cmd) {
	p, _ := m.currentPlant()
	m.dispatch(state.RequestDelete{Plant: p})
	return m, nil
}

// shortcutWaterPlant records today as the watering date. Saving returns to
// the list, so the detail view is reopened when watering from it.
func shortcutWaterPlant(m *Model) (tea.Model, tea.Cmd) {
	p, _ := m.currentPlant()
	fromDetail := m.snap.ShowingDetail()

	y, mo, d := m.now().Date()
	p.LastWatered = time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
	m.dispatch(state.SavePlant{Plant: p})
	if fromDetail {
		m.dispatch(state.SelectPlant{Plant: p})
	}
	logger.WithPlant(p.ID).Info("plant watered", "date", p.LastWateredString())
	return m, m.ShowFlashSuccess("Watered " + p.Name)
}

func shortcutCopySummary(m *Model) (tea.Model, tea.Cmd) {
	p, _ := m.currentPlant()
	return m, copySummary(p)
}

func shortcutNextTheme(m *Model) (tea.Model, tea.Cmd) {
	names := ui.ThemeNames()
	current := ui.CurrentThemeName()
	next := names[0]
	for i, name := range names {
		if name == current {
			next = names[(i+1)%len(names)]
			break
		}
	}
	ui.SetTheme(next)
	m.config.SetTheme(string(next))
	// Styles changed; rebuild the forms so they pick up the new colors.
	m.authForm = nil
	m.plantForm = nil
	m.syncViews(state.Snapshot{})
	return m, tea.Batch(
		m.ShowFlashInfo("Theme: "+ui.GetTheme(next).Name),
		saveConfig(m.config, config.KeyTheme),
	)
}

func shortcutToggleReminders(m *Model) (tea.Model, tea.Cmd) {
	enabled := !m.config.GetNotificationsEnabled()
	m.config.SetNotificationsEnabled(enabled)
	text := "Watering reminders off"
	if enabled {
		text = "Watering reminders on"
	}
	return m, tea.Batch(m.ShowFlashInfo(text), saveConfig(m.config, config.KeyNotificationsEnabled))
}

func shortcutLogout(m *Model) (tea.Model, tea.Cmd) {
	name := m.username
	m.dispatch(state.Logout{})
	if name == "" {
		return m, m.ShowFlashInfo("Logged out")
	}
	return m, m.ShowFlashInfo("Logged out " + name)
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}

// keyIsNavigation reports whether key moves the list cursor or scrolls
func keyIsNavigation(key string) bool {
	switch key {
	case keys.Up, keys.Down, "k", "j", keys.PgUp, keys.PgDown, keys.Home, keys.End:
		return true
	}
	return false
}
