package state

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhubert/growmate/internal/logger"
	"github.com/zhubert/growmate/internal/nav"
	"github.com/zhubert/growmate/internal/plant"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)
	code := m.Run()
	logger.Reset()
	os.Exit(code)
}

var (
	rosie = plant.Plant{ID: "1", Name: "Rosie", Species: "Rosa", Type: plant.TypeFlowering, AgeMonths: 6, Leaves: 32, Buds: 5, Flowers: 2}
	spike = plant.Plant{ID: "2", Name: "Spike", Species: "Echinocactus grusonii", Type: plant.TypeSucculent, AgeMonths: 12}
)

func newLoggedIn(t *testing.T, opts Options, seed ...plant.Plant) *Controller {
	t.Helper()
	c := New(seed, opts)
	c.Login()
	require.True(t, c.LoggedIn())
	return c
}

func TestNew_StartsLoggedOutOnDashboardList(t *testing.T) {
	c := New([]plant.Plant{rosie, spike}, Options{})
	s := c.Snapshot()

	assert.False(t, s.LoggedIn)
	assert.Equal(t, AuthLogin, s.AuthView)
	assert.Equal(t, nav.ViewDashboard, s.Main)
	assert.Equal(t, nav.DashboardList, s.Dashboard)
	assert.Nil(t, s.Selected)
	assert.Nil(t, s.Editing)
	assert.Nil(t, s.PendingDelete)
	assert.False(t, s.ConfirmVisible)
	assert.Equal(t, []plant.Plant{rosie, spike}, s.Plants)
}

func TestSavePlant_UpdateKeepsPosition(t *testing.T) {
	c := newLoggedIn(t, Options{}, rosie, spike)

	updated := rosie
	updated.Leaves = 40
	c.EditPlant(rosie)
	s := c.Dispatch(SavePlant{Plant: updated})

	require.Len(t, s.Plants, 2)
	assert.Equal(t, 40, s.Plants[0].Leaves)
	assert.Equal(t, "2", s.Plants[1].ID)
	assert.Equal(t, nav.ViewDashboard, s.Main)
	assert.Equal(t, nav.DashboardList, s.Dashboard)
	assert.False(t, s.Form.IsEdit())
}

func TestSavePlant_CreateAppends(t *testing.T) {
	c := newLoggedIn(t, Options{}, rosie)
	c.AddPlant()

	s := c.Dispatch(SavePlant{Plant: plant.Plant{Name: "Minty", Type: plant.TypeHerb}})

	require.Len(t, s.Plants, 2)
	assert.Equal(t, "Minty", s.Plants[1].Name)
	assert.NotEmpty(t, s.Plants[1].ID, "create-mode save assigns an id")
	assert.Equal(t, nav.ViewDashboard, s.Main)
}

func TestSavePlant_ClearsStaleSelection(t *testing.T) {
	c := newLoggedIn(t, Options{}, rosie, spike)
	c.SelectPlant(spike)

	s := c.Dispatch(SavePlant{Plant: rosie})

	assert.Equal(t, nav.DashboardList, s.Dashboard)
	assert.Nil(t, s.Selected)
}

func TestSnapshot_EditingSeedsCurrentValues(t *testing.T) {
	c := newLoggedIn(t, Options{}, rosie)

	s := c.Dispatch(EditPlant{Plant: rosie})

	assert.Equal(t, nav.ViewAdd, s.Main)
	require.NotNil(t, s.Editing)
	assert.Equal(t, rosie, *s.Editing)

	s = c.Dispatch(Navigate{View: nav.ViewAdd})
	assert.Nil(t, s.Editing, "direct navigation to add is create mode")
}

func TestSnapshot_IsIsolated(t *testing.T) {
	c := newLoggedIn(t, Options{}, rosie, spike)
	c.SelectPlant(rosie)

	s := c.Snapshot()
	s.Plants[0].Name = "changed"
	s.Selected.Name = "changed"

	again := c.Snapshot()
	assert.Equal(t, "Rosie", again.Plants[0].Name)
	assert.Equal(t, "Rosie", again.Selected.Name)
}

func TestDeleteFlow_Cancel(t *testing.T) {
	c := newLoggedIn(t, Options{}, rosie, spike)
	c.SelectPlant(spike)
	before := c.Snapshot()

	s := c.Dispatch(RequestDelete{Plant: spike})
	assert.True(t, s.ConfirmVisible)
	require.NotNil(t, s.PendingDelete)
	assert.Equal(t, "2", s.PendingDelete.ID)

	s = c.Dispatch(CancelDelete{})

	assert.False(t, s.ConfirmVisible)
	assert.Nil(t, s.PendingDelete)
	assert.Equal(t, before.Plants, s.Plants)
	assert.Equal(t, before.Main, s.Main)
	assert.Equal(t, before.Dashboard, s.Dashboard)
	assert.Equal(t, before.Selected, s.Selected)
}

func TestDeleteFlow_Confirm(t *testing.T) {
	c := newLoggedIn(t, Options{}, rosie, spike)
	c.SelectPlant(spike)

	c.Dispatch(RequestDelete{Plant: spike})
	s := c.Dispatch(ConfirmDelete{})

	assert.Equal(t, []plant.Plant{rosie}, s.Plants)
	assert.Equal(t, nav.DashboardList, s.Dashboard)
	assert.Nil(t, s.Selected)
	assert.False(t, s.ConfirmVisible)
	assert.Nil(t, s.PendingDelete)
}

func TestConfirmDelete_WithoutRequestChangesNothing(t *testing.T) {
	c := newLoggedIn(t, Options{}, rosie, spike)
	c.SelectPlant(rosie)

	s := c.Dispatch(ConfirmDelete{})

	assert.Len(t, s.Plants, 2)
	assert.Equal(t, nav.DashboardDetail, s.Dashboard)
}

func TestLogout_KeepsPlantsAndViews(t *testing.T) {
	c := newLoggedIn(t, Options{}, rosie, spike)
	c.SelectPlant(spike)

	s := c.Dispatch(Logout{})
	assert.False(t, s.LoggedIn)
	assert.Len(t, s.Plants, 2)
	assert.Equal(t, nav.DashboardDetail, s.Dashboard)

	s = c.Dispatch(Login{})
	assert.True(t, s.LoggedIn)
	require.NotNil(t, s.Selected)
	assert.Equal(t, "2", s.Selected.ID, "login resumes the detail screen")
}

func TestLogout_ResetViewsOption(t *testing.T) {
	c := newLoggedIn(t, Options{ResetViewsOnLogout: true}, rosie, spike)
	c.SelectPlant(spike)
	c.RequestDelete(spike)

	s := c.Dispatch(Logout{})

	assert.Len(t, s.Plants, 2, "plants survive logout")
	assert.Equal(t, nav.ViewDashboard, s.Main)
	assert.Equal(t, nav.DashboardList, s.Dashboard)
	assert.Nil(t, s.Selected)
	assert.False(t, s.ConfirmVisible)
}

func TestLogin_DropsDanglingReferences(t *testing.T) {
	c := newLoggedIn(t, Options{}, rosie, spike)
	c.EditPlant(spike)
	c.Logout()

	// Remove spike behind the navigation state's back.
	c.repo.Remove(spike.ID)
	s := c.Dispatch(Signup{})

	assert.True(t, s.LoggedIn)
	assert.False(t, s.Form.IsEdit())
	assert.Nil(t, s.Editing)
}

func TestSwitchAuthView(t *testing.T) {
	c := New(nil, Options{})

	s := c.Dispatch(SwitchAuthView{View: AuthSignup})
	assert.Equal(t, AuthSignup, s.AuthView)

	s = c.Dispatch(SwitchAuthView{View: AuthLogin})
	assert.Equal(t, AuthLogin, s.AuthView)
	assert.Equal(t, "login", AuthLogin.String())
	assert.Equal(t, "signup", AuthSignup.String())
	assert.Equal(t, "unknown", AuthView(9).String())
}

func TestNavigate_ResetInvariantThroughDispatch(t *testing.T) {
	for _, view := range []nav.MainView{nav.ViewAdd, nav.ViewEncyclopaedia, nav.ViewReels, nav.ViewUser} {
		t.Run(view.String(), func(t *testing.T) {
			c := newLoggedIn(t, Options{}, rosie)
			c.Dispatch(SelectPlant{Plant: rosie})

			s := c.Dispatch(Navigate{View: view})

			assert.Equal(t, nav.DashboardList, s.Dashboard)
			assert.Nil(t, s.Selected)
			assert.False(t, s.ShowingDetail())
		})
	}
}

func TestSelectAndEdit_IgnoreUnknownPlant(t *testing.T) {
	c := newLoggedIn(t, Options{}, rosie)
	stranger := plant.Plant{ID: "zzz", Name: "Stranger", Type: plant.TypeHerb}

	s := c.Dispatch(SelectPlant{Plant: stranger})
	assert.Equal(t, nav.DashboardList, s.Dashboard)
	assert.Nil(t, s.Selected)

	s = c.Dispatch(EditPlant{Plant: stranger})
	assert.Equal(t, nav.ViewDashboard, s.Main)
	assert.False(t, s.Form.IsEdit())
	assert.Nil(t, s.Editing)
}

func TestBackIntent(t *testing.T) {
	c := newLoggedIn(t, Options{}, rosie)
	s := c.Dispatch(SelectPlant{Plant: rosie})
	assert.True(t, s.ShowingDetail())

	s = c.Dispatch(Back{})
	assert.False(t, s.ShowingDetail())
}

// TestScenario_RosieAndSpike walks the documented end-to-end scenario.
func TestScenario_RosieAndSpike(t *testing.T) {
	c := newLoggedIn(t, Options{}, rosie, spike)

	rosie2 := rosie
	rosie2.Leaves = 40
	s := c.Dispatch(SavePlant{Plant: rosie2})
	require.Len(t, s.Plants, 2)
	assert.Equal(t, 40, s.Plants[0].Leaves)

	c.Dispatch(RequestDelete{Plant: spike})
	s = c.Dispatch(ConfirmDelete{})
	assert.Equal(t, []plant.Plant{rosie2}, s.Plants)

	c.Dispatch(Logout{})
	s = c.Dispatch(Login{})
	assert.True(t, s.LoggedIn)
	assert.Equal(t, []plant.Plant{rosie2}, s.Plants)

	found, ok := s.FindPlant("1")
	require.True(t, ok)
	assert.Equal(t, 40, found.Leaves)
	_, ok = s.FindPlant("2")
	assert.False(t, ok)
}
