// Package state is the single owner of GrowMate's application state. It
// composes the plant repository, the navigation controller, the delete
// confirmation gate and the session flag, and is the only thing the UI
// calls into. Every transition is synchronous; callers read the result
// through immutable snapshots.
package state

import (
	"fmt"
	"log/slog"

	"github.com/zhubert/growmate/internal/confirm"
	"github.com/zhubert/growmate/internal/logger"
	"github.com/zhubert/growmate/internal/nav"
	"github.com/zhubert/growmate/internal/plant"
)

// AuthView is the screen shown while logged out.
type AuthView int

const (
	AuthLogin AuthView = iota
	AuthSignup
)

func (v AuthView) String() string {
	switch v {
	case AuthLogin:
		return "login"
	case AuthSignup:
		return "signup"
	default:
		return "unknown"
	}
}

// Options tune behavior that is a policy choice rather than an invariant.
type Options struct {
	// ResetViewsOnLogout returns navigation and the delete dialog to their
	// initial state on logout. When false, a later login resumes where the
	// user left off.
	ResetViewsOnLogout bool
}

// Controller composes the state sub-components. It is not safe for
// concurrent use: the Bubble Tea event loop is its only caller.
type Controller struct {
	repo *plant.Repository
	nav  *nav.Controller
	gate *confirm.Gate
	opts Options

	loggedIn bool
	authView AuthView
}

// New returns a logged-out controller whose repository holds seed, in order.
func New(seed []plant.Plant, opts Options) *Controller {
	repo := plant.NewRepository(seed...)
	n := nav.NewController()
	return &Controller{
		repo: repo,
		nav:  n,
		gate: confirm.NewGate(repo, n),
		opts: opts,
	}
}

func log() *slog.Logger {
	return logger.WithComponent("state")
}

// Dispatch applies one intent and returns the resulting snapshot.
func (c *Controller) Dispatch(in Intent) Snapshot {
	switch in := in.(type) {
	case Navigate:
		c.Navigate(in.View)
	case AddPlant:
		c.AddPlant()
	case SelectPlant:
		c.SelectPlant(in.Plant)
	case Back:
		c.Back()
	case EditPlant:
		c.EditPlant(in.Plant)
	case SavePlant:
		c.SavePlant(in.Plant)
	case RequestDelete:
		c.RequestDelete(in.Plant)
	case ConfirmDelete:
		c.ConfirmDelete()
	case CancelDelete:
		c.CancelDelete()
	case Login:
		c.Login()
	case Signup:
		c.Signup()
	case Logout:
		c.Logout()
	case SwitchAuthView:
		c.SwitchAuthView(in.View)
	default:
		log().Warn("unhandled intent", "type", fmt.Sprintf("%T", in))
	}
	return c.Snapshot()
}

// Navigate switches the main view.
func (c *Controller) Navigate(view nav.MainView) {
	c.nav.Navigate(view)
}

// AddPlant opens the form in create mode.
func (c *Controller) AddPlant() {
	c.nav.Navigate(nav.ViewAdd)
}

// SelectPlant opens the detail view for p. Ignored outside the dashboard
// and for plants not in the repository.
func (c *Controller) SelectPlant(p plant.Plant) {
	if !c.known("select", p) {
		return
	}
	c.nav.SelectPlant(p)
}

// Back returns the dashboard to its list.
func (c *Controller) Back() {
	c.nav.Back()
}

// EditPlant opens the form seeded with p's current values. Ignored for
// plants not in the repository.
func (c *Controller) EditPlant(p plant.Plant) {
	if !c.known("edit", p) {
		return
	}
	c.nav.EditPlant(p)
}

// known reports whether p is in the repository, logging when it is not.
func (c *Controller) known(action string, p plant.Plant) bool {
	if _, ok := c.repo.FindByID(p.ID); !ok {
		log().Debug(action+" ignored for unknown plant", "plantID", p.ID)
		return false
	}
	return true
}

// SavePlant upserts p, leaves edit mode and returns to the dashboard list.
// A plant without an ID is given a new one.
func (c *Controller) SavePlant(p plant.Plant) {
	if p.ID == "" {
		p.ID = plant.NewID()
	}
	inserted := c.repo.Upsert(p)
	c.nav.ClearEdit()
	c.nav.Navigate(nav.ViewDashboard)
	c.nav.Back()
	log().Debug("plant saved", "plantID", p.ID, "name", p.Name, "inserted", inserted, "count", c.repo.Len())
}

// RequestDelete opens the confirmation dialog for p.
func (c *Controller) RequestDelete(p plant.Plant) {
	c.gate.RequestDelete(p)
}

// ConfirmDelete removes the pending plant, if any, and returns to the list.
func (c *Controller) ConfirmDelete() {
	c.gate.Confirm()
}

// CancelDelete closes the confirmation dialog without deleting.
func (c *Controller) CancelDelete() {
	c.gate.Cancel()
}

// Login marks the session as logged in. Call it only after the auth
// gateway has accepted the user.
func (c *Controller) Login() {
	c.startSession("login")
}

// Signup marks the session as logged in after a successful signup.
func (c *Controller) Signup() {
	c.startSession("signup")
}

func (c *Controller) startSession(how string) {
	c.loggedIn = true
	c.dropDanglingReferences()
	log().Info("session started", "via", how, "view", c.nav.Main(), "plants", c.repo.Len())
}

// dropDanglingReferences clears a resumed detail or edit target whose
// plant no longer exists.
func (c *Controller) dropDanglingReferences() {
	if id, ok := c.nav.Selected(); ok {
		if _, found := c.repo.FindByID(id); !found {
			log().Debug("selected plant gone, returning to list", "plantID", id)
			c.nav.Back()
		}
	}
	if id, ok := c.nav.Form().PlantID(); ok {
		if _, found := c.repo.FindByID(id); !found {
			log().Debug("edited plant gone, switching form to create", "plantID", id)
			c.nav.ClearEdit()
		}
	}
}

// Logout ends the session. Plants are never cleared; navigation and the
// delete dialog are kept unless ResetViewsOnLogout is set.
func (c *Controller) Logout() {
	c.loggedIn = false
	if c.opts.ResetViewsOnLogout {
		c.nav.Reset()
		c.gate.Cancel()
	}
	log().Info("session ended", "resetViews", c.opts.ResetViewsOnLogout)
}

// SwitchAuthView selects the login or signup screen.
func (c *Controller) SwitchAuthView(v AuthView) {
	c.authView = v
}

// LoggedIn reports whether a session is active.
func (c *Controller) LoggedIn() bool {
	return c.loggedIn
}
