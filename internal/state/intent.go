package state

import (
	"github.com/zhubert/growmate/internal/nav"
	"github.com/zhubert/growmate/internal/plant"
)

// Intent is a user command consumed by Controller.Dispatch. The set of
// intents is closed: only the types in this file implement it.
type Intent interface {
	intent() // marker method to restrict implementations
}

// Navigate switches the main view.
type Navigate struct{ View nav.MainView }

// AddPlant opens the form in create mode.
type AddPlant struct{}

// SelectPlant opens the detail view for a plant.
type SelectPlant struct{ Plant plant.Plant }

// Back returns from the detail view to the list.
type Back struct{}

// EditPlant opens the form in edit mode for a plant.
type EditPlant struct{ Plant plant.Plant }

// SavePlant creates or updates a plant and returns to the dashboard.
type SavePlant struct{ Plant plant.Plant }

// RequestDelete asks for confirmation before deleting a plant.
type RequestDelete struct{ Plant plant.Plant }

// ConfirmDelete carries out the pending delete.
type ConfirmDelete struct{}

// CancelDelete drops the pending delete.
type CancelDelete struct{}

// Login marks the session as logged in after the gateway accepted the user.
type Login struct{}

// Signup marks the session as logged in after the gateway created the user.
type Signup struct{}

// Logout ends the session.
type Logout struct{}

// SwitchAuthView flips between the login and signup screens.
type SwitchAuthView struct{ View AuthView }

func (Navigate) intent()       {}
func (AddPlant) intent()       {}
func (SelectPlant) intent()    {}
func (Back) intent()           {}
func (EditPlant) intent()      {}
func (SavePlant) intent()      {}
func (RequestDelete) intent()  {}
func (ConfirmDelete) intent()  {}
func (CancelDelete) intent()   {}
func (Login) intent()          {}
func (Signup) intent()         {}
func (Logout) intent()         {}
func (SwitchAuthView) intent() {}
