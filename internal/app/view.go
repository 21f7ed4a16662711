package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/growmate/internal/nav"
	"github.com/zhubert/growmate/internal/ui"
)

// View renders the UI
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	ctx := ui.GetViewContext()
	width := ctx.TerminalWidth
	height := ctx.TerminalHeight

	var view string
	if !m.snap.LoggedIn {
		body := lipgloss.Place(width, height-ctx.HeaderHeight-ctx.FooterHeight,
			lipgloss.Center, lipgloss.Center, ui.ModalStyle.Width(ui.ModalWidth).Render(m.authForm.Render()))
		view = lipgloss.JoinVertical(lipgloss.Left, m.header.View(), body, m.footer.View())
	} else {
		content := lipgloss.NewStyle().
			Width(ctx.ContentWidth).
			Height(ctx.ContentHeight).
			MaxHeight(ctx.ContentHeight).
			Render(m.contentView())
		view = lipgloss.JoinVertical(lipgloss.Left, m.header.View(), content, m.navbar.View(), m.footer.View())
	}

	if m.modal.IsVisible() {
		view = m.modal.View(width, height)
	}

	v.SetContent(view)
	return v
}

// contentView renders the area between the header and the nav bar
func (m *Model) contentView() string {
	ctx := ui.GetViewContext()
	s := m.snap

	switch s.Main {
	case nav.ViewDashboard:
		if s.ShowingDetail() {
			return m.detail.View()
		}
		return m.list.View()
	case nav.ViewAdd:
		if m.plantForm == nil {
			return ""
		}
		return lipgloss.Place(ctx.ContentWidth, ctx.ContentHeight, lipgloss.Center, lipgloss.Top,
			ui.PanelStyle.Padding(0, 2).Render(m.plantForm.Render()))
	case nav.ViewEncyclopaedia:
		return m.encyclopaedia.View()
	case nav.ViewReels:
		return ui.ReelsView(ctx.ContentWidth, ctx.ContentHeight)
	case nav.ViewUser:
		return ui.UserView(m.username, len(s.Plants), ctx.ContentWidth, ctx.ContentHeight)
	default:
		return ""
	}
}
