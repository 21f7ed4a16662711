package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/growmate/internal/auth"
	"github.com/zhubert/growmate/internal/config"
	"github.com/zhubert/growmate/internal/logger"
	"github.com/zhubert/growmate/internal/plant"
	"github.com/zhubert/growmate/internal/state"
	"github.com/zhubert/growmate/internal/ui"
)

// DefaultAuthTimeout bounds a single login or signup request.
const DefaultAuthTimeout = 10 * time.Second

// AppState represents what the app is waiting on.
type AppState int

const (
	StateIdle           AppState = iota // Ready for user input
	StateAuthenticating                 // Waiting on the auth gateway
)

// String returns a human-readable name for the state
func (s AppState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateAuthenticating:
		return "Authenticating"
	default:
		return "Unknown"
	}
}

// Model is the main Bubble Tea model. All plant, navigation and session
// state lives in the state controller; the model only mirrors the latest
// snapshot into its views.
type Model struct {
	config  *config.Config
	version string

	header        *ui.Header
	footer        *ui.Footer
	navbar        *ui.NavBar
	list          *ui.PlantList
	detail        *ui.PlantDetail
	encyclopaedia *ui.Encyclopaedia
	modal         *ui.Modal

	// Forms rebuilt whenever the state they edit changes
	authForm  *ui.AuthFormState
	plantForm *ui.PlantFormState

	controller *state.Controller
	snap       state.Snapshot
	gateway    auth.Gateway
	username   string

	width  int
	height int

	appState    AppState
	authTimeout time.Duration
	now         func() time.Time
}

// StartupMsg is sent once when the program starts
type StartupMsg struct{}

// AuthResultMsg carries the outcome of a login or signup request
type AuthResultMsg struct {
	Signup   bool
	Username string
	Err      error
}

// ReminderResultMsg reports whether a watering reminder was sent
type ReminderResultMsg struct {
	Sent bool
	Err  error
}

// ClipboardResultMsg reports the outcome of copying a plant summary
type ClipboardResultMsg struct {
	PlantName string
	Err       error
}

// ConfigSavedMsg reports the outcome of persisting a settings change
type ConfigSavedMsg struct {
	Setting string
	Err     error
}

// New creates a new app model. seed is the initial plant list and gateway
// decides whether login and signup succeed.
func New(cfg *config.Config, version string, seed []plant.Plant, gateway auth.Gateway) *Model {
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	m := &Model{
		config:        cfg,
		version:       version,
		header:        ui.NewHeader(),
		footer:        ui.NewFooter(),
		navbar:        ui.NewNavBar(),
		list:          ui.NewPlantList(),
		detail:        ui.NewPlantDetail(),
		encyclopaedia: ui.NewEncyclopaedia(),
		modal:         ui.NewModal(),
		controller:    state.New(seed, state.Options{ResetViewsOnLogout: cfg.GetResetViewsOnLogout()}),
		gateway:       gateway,
		appState:      StateIdle,
		authTimeout:   DefaultAuthTimeout,
		now:           time.Now,
	}

	days := cfg.GetThirstyAfterDays()
	m.list.SetThirstyAfterDays(days)
	m.detail.SetThirstyAfterDays(days)

	m.snap = m.controller.Snapshot()
	m.syncViews(state.Snapshot{})

	return m
}

// SetClock overrides the clock used for watering status and reminders
func (m *Model) SetClock(now func() time.Time) {
	m.now = now
	m.list.SetNow(now)
	m.detail.SetNow(now)
}

// SetAuthTimeout overrides how long a login or signup may take
func (m *Model) SetAuthTimeout(d time.Duration) {
	m.authTimeout = d
}

// Snapshot returns the state the views currently reflect
func (m *Model) Snapshot() state.Snapshot {
	return m.snap
}

// AppState returns what the app is waiting on
func (m *Model) AppState() AppState {
	return m.appState
}

// setState transitions to a new state with logging
func (m *Model) setState(newState AppState) {
	if m.appState != newState {
		logger.WithComponent("app").Debug("state transition", "from", m.appState, "to", newState)
		m.appState = newState
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return func() tea.Msg {
		return StartupMsg{}
	}
}

// dispatch applies an intent to the state controller and refreshes every
// view from the resulting snapshot.
func (m *Model) dispatch(in state.Intent) {
	prev := m.snap
	m.snap = m.controller.Dispatch(in)
	m.syncViews(prev)
}
