package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Adel13Lis/infs3208-routegate/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case constants.StateLogin, constants.StateSignup:
		return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			m.authModel.View(),
			m.viewStatus(),
		))
	}

	var content string
	switch m.state {
	case constants.StateFlights:
		content = m.flightsModel.View()
	default:
		content = m.calcModel.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewStatus(),
		docStyle.Render(content),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	tabs := []struct {
		state constants.SessionState
		title string
	}{
		{constants.StateCalculator, "Calculator"},
		{constants.StateFlights, "All Flights"},
	}

	var rendered []string
	for _, t := range tabs {
		if m.state == t.state {
			rendered = append(rendered, activeTabStyle.Render(t.title))
		} else {
			rendered = append(rendered, inactiveTabStyle.Render(t.title))
		}
	}
	if m.session != nil {
		rendered = append(rendered, userStyle.Render(m.session.Email))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) viewStatus() string {
	if m.status == "" {
		return ""
	}
	return warningStyle.Render("⚠ " + m.status)
}
