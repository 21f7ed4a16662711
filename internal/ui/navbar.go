package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/growmate/internal/nav"
)

// NavBar is the bottom navigation strip listing the main views.
type NavBar struct {
	width  int
	active nav.MainView
}

// NewNavBar creates a nav bar with the dashboard active
func NewNavBar() *NavBar {
	return &NavBar{active: nav.ViewDashboard}
}

// SetWidth sets the nav bar width
func (n *NavBar) SetWidth(width int) {
	n.width = width
}

// SetActive highlights the given view
func (n *NavBar) SetActive(v nav.MainView) {
	n.active = v
}

// Active returns the highlighted view
func (n *NavBar) Active() nav.MainView {
	return n.active
}

// ViewTitle returns the display name of a main view
func ViewTitle(v nav.MainView) string {
	switch v {
	case nav.ViewDashboard:
		return "My Plants"
	case nav.ViewAdd:
		return "Add"
	case nav.ViewEncyclopaedia:
		return "Encyclopaedia"
	case nav.ViewReels:
		return "Reels"
	case nav.ViewUser:
		return "Account"
	default:
		return v.String()
	}
}

// View renders the nav bar
func (n *NavBar) View() string {
	items := make([]string, 0, len(nav.MainViews))
	for i, v := range nav.MainViews {
		label := fmt.Sprintf("%d %s", i+1, ViewTitle(v))
		if v == n.active {
			items = append(items, NavActiveStyle.Render(label))
		} else {
			items = append(items, NavItemStyle.Render(label))
		}
	}
	row := strings.Join(items, " ")
	return NavBarStyle.Width(n.width).Render(lipgloss.PlaceHorizontal(max(n.width, 0), lipgloss.Center, row))
}
