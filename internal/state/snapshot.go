package state

import (
	"github.com/zhubert/growmate/internal/nav"
	"github.com/zhubert/growmate/internal/plant"
)

// Snapshot is the read-only view of state handed to the UI. It shares no
// memory with the controller, so holding or modifying one has no effect on
// later transitions.
type Snapshot struct {
	LoggedIn bool
	AuthView AuthView

	Plants    []plant.Plant
	Main      nav.MainView
	Dashboard nav.DashboardView
	Selected  *plant.Plant // Plant shown in the detail view, nil on the list
	Form      nav.FormMode
	Editing   *plant.Plant // Current values of the plant being edited, nil in create mode

	PendingDelete  *plant.Plant
	ConfirmVisible bool
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		LoggedIn:       c.loggedIn,
		AuthView:       c.authView,
		Plants:         c.repo.List(),
		Main:           c.nav.Main(),
		Dashboard:      c.nav.Dashboard(),
		Form:           c.nav.Form(),
		ConfirmVisible: c.gate.Visible(),
	}
	if id, ok := c.nav.Selected(); ok {
		s.Selected = c.lookup(id)
	}
	if id, ok := c.nav.Form().PlantID(); ok {
		s.Editing = c.lookup(id)
	}
	if p, ok := c.gate.Pending(); ok {
		s.PendingDelete = &p
	}
	return s
}

func (c *Controller) lookup(id string) *plant.Plant {
	p, ok := c.repo.FindByID(id)
	if !ok {
		return nil
	}
	return &p
}

// ShowingDetail reports whether the dashboard detail screen is active.
func (s Snapshot) ShowingDetail() bool {
	return s.Main == nav.ViewDashboard && s.Dashboard == nav.DashboardDetail && s.Selected != nil
}

// FindPlant returns the plant with the given ID from the snapshot.
func (s Snapshot) FindPlant(id string) (plant.Plant, bool) {
	for _, p := range s.Plants {
		if p.ID == id {
			return p, true
		}
	}
	return plant.Plant{}, false
}
