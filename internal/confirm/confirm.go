// Package confirm implements the two-step delete protocol: a delete is first
// requested, and only an explicit Confirm removes the plant. Cancel leaves
// everything untouched.
package confirm

import (
	"github.com/zhubert/growmate/internal/logger"
	"github.com/zhubert/growmate/internal/plant"
)

// Remover deletes plants by ID. Removing an unknown ID must be a no-op.
type Remover interface {
	Remove(id string) bool
}

// Navigator returns the dashboard to its list after a delete.
type Navigator interface {
	Back()
}

// Gate holds the pending delete target. The confirmation dialog is visible
// exactly when a target is pending.
type Gate struct {
	repo    Remover
	nav     Navigator
	pending *plant.Plant
}

// NewGate returns a gate that removes from repo and navigates with nav.
func NewGate(repo Remover, nav Navigator) *Gate {
	return &Gate{repo: repo, nav: nav}
}

// RequestDelete marks p as the pending delete target, replacing any
// earlier unresolved request.
func (g *Gate) RequestDelete(p plant.Plant) {
	g.pending = &p
	logger.WithComponent("confirm").Debug("delete requested", "plantID", p.ID, "name", p.Name)
}

// Confirm removes the pending plant and returns the dashboard to its list.
// It always clears the pending state and reports whether a plant was removed.
func (g *Gate) Confirm() bool {
	if g.pending == nil {
		return false
	}
	target := *g.pending
	g.pending = nil

	removed := g.repo.Remove(target.ID)
	g.nav.Back()
	logger.WithComponent("confirm").Debug("delete confirmed", "plantID", target.ID, "removed", removed)
	return removed
}

// Cancel drops the pending request without touching the repository.
func (g *Gate) Cancel() {
	if g.pending != nil {
		logger.WithComponent("confirm").Debug("delete cancelled", "plantID", g.pending.ID)
	}
	g.pending = nil
}

// Pending returns the plant awaiting confirmation.
func (g *Gate) Pending() (plant.Plant, bool) {
	if g.pending == nil {
		return plant.Plant{}, false
	}
	return *g.pending, true
}

// Visible reports whether the confirmation dialog should be shown.
func (g *Gate) Visible() bool {
	return g.pending != nil
}
