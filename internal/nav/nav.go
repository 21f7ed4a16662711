// Package nav holds the screen navigation state machine: which main view is
// active, whether the dashboard shows the list or a plant's detail, and
// whether the plant form is creating a new plant or editing an existing one.
package nav

import (
	"github.com/zhubert/growmate/internal/logger"
	"github.com/zhubert/growmate/internal/plant"
)

// MainView is the top-level screen selected from the bottom navigation.
type MainView int

const (
	ViewDashboard MainView = iota
	ViewAdd
	ViewEncyclopaedia
	ViewReels
	ViewUser
)

// MainViews lists every main view in bottom-navigation order.
var MainViews = []MainView{ViewDashboard, ViewAdd, ViewEncyclopaedia, ViewReels, ViewUser}

func (v MainView) String() string {
	switch v {
	case ViewDashboard:
		return "dashboard"
	case ViewAdd:
		return "add"
	case ViewEncyclopaedia:
		return "encyclopaedia"
	case ViewReels:
		return "reels"
	case ViewUser:
		return "user"
	default:
		return "unknown"
	}
}

// DashboardView is the dashboard sub-screen.
type DashboardView int

const (
	DashboardList DashboardView = iota
	DashboardDetail
)

func (v DashboardView) String() string {
	switch v {
	case DashboardList:
		return "list"
	case DashboardDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// FormMode says what the plant form does on save: create a new plant, or
// edit the plant with a known ID. The zero value is create mode.
type FormMode struct {
	plantID string
}

// CreateMode returns the form mode for adding a new plant.
func CreateMode() FormMode { return FormMode{} }

// EditMode returns the form mode for editing the plant with the given ID.
func EditMode(plantID string) FormMode { return FormMode{plantID: plantID} }

// IsEdit reports whether the form edits an existing plant.
func (f FormMode) IsEdit() bool { return f.plantID != "" }

// PlantID returns the plant being edited, or false in create mode.
func (f FormMode) PlantID() (string, bool) { return f.plantID, f.plantID != "" }

func (f FormMode) String() string {
	if f.IsEdit() {
		return "edit(" + f.plantID + ")"
	}
	return "create"
}

// Controller owns navigation state. The selected plant is tracked by ID and
// is always empty while the dashboard shows the list.
type Controller struct {
	main       MainView
	dashboard  DashboardView
	selectedID string
	form       FormMode
}

// NewController returns a controller on the dashboard list in create mode.
func NewController() *Controller {
	return &Controller{main: ViewDashboard, dashboard: DashboardList}
}

// Main returns the active main view.
func (c *Controller) Main() MainView { return c.main }

// Dashboard returns the active dashboard sub-view.
func (c *Controller) Dashboard() DashboardView { return c.dashboard }

// Selected returns the ID of the plant shown in the detail view.
func (c *Controller) Selected() (string, bool) { return c.selectedID, c.selectedID != "" }

// Form returns the current form mode.
func (c *Controller) Form() FormMode { return c.form }

// Navigate switches the main view. Leaving the dashboard collapses any open
// detail screen, and entering add directly always starts in create mode.
func (c *Controller) Navigate(view MainView) {
	c.main = view
	switch view {
	case ViewDashboard:
	case ViewAdd:
		c.Back()
		c.form = CreateMode()
	case ViewEncyclopaedia, ViewReels, ViewUser:
		c.Back()
	}
	logger.WithComponent("nav").Debug("navigate", "view", view, "dashboard", c.dashboard, "form", c.form)
}

// SelectPlant opens the detail view for p. It only applies while the
// dashboard is the main view and reports whether it did.
func (c *Controller) SelectPlant(p plant.Plant) bool {
	if c.main != ViewDashboard {
		logger.WithComponent("nav").Debug("select ignored outside dashboard", "view", c.main, "plantID", p.ID)
		return false
	}
	c.selectedID = p.ID
	c.dashboard = DashboardDetail
	return true
}

// Back returns the dashboard to the list and clears the selection.
func (c *Controller) Back() {
	c.dashboard = DashboardList
	c.selectedID = ""
}

// EditPlant opens the form in edit mode for p. The edit target is set after
// the view switch so the create-mode reset of Navigate does not clear it.
func (c *Controller) EditPlant(p plant.Plant) {
	c.Navigate(ViewAdd)
	c.form = EditMode(p.ID)
}

// ClearEdit puts the form back into create mode.
func (c *Controller) ClearEdit() {
	c.form = CreateMode()
}

// Reset returns the controller to its initial state.
func (c *Controller) Reset() {
	*c = Controller{main: ViewDashboard, dashboard: DashboardList}
}
