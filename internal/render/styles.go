package render

import "github.com/charmbracelet/lipgloss"

const defaultWidth = 80

var (
	affirmativeColor = lipgloss.Color("42")
	warningColor     = lipgloss.Color("214")
	negativeColor    = lipgloss.Color("196")
	mutedColor       = lipgloss.Color("241")

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().Foreground(mutedColor)

	calloutStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(warningColor).
			Padding(0, 1)

	calloutHeaderStyle = lipgloss.NewStyle().
				Foreground(warningColor).
				Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	headerCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)
)

// categoryStyle is the foreground used for a treatment category
func categoryStyle(c Category) lipgloss.Style {
	switch c {
	case CategoryAffirmative:
		return lipgloss.NewStyle().Foreground(affirmativeColor)
	case CategoryWarning:
		return lipgloss.NewStyle().Foreground(warningColor)
	case CategoryNegative:
		return lipgloss.NewStyle().Foreground(negativeColor)
	default:
		return lipgloss.NewStyle()
	}
}

func panelStyle(c Category) lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		Padding(0, 1)
	switch c {
	case CategoryAffirmative:
		s = s.BorderForeground(affirmativeColor)
	case CategoryWarning:
		s = s.Border(lipgloss.DoubleBorder()).BorderForeground(warningColor)
	case CategoryNegative:
		s = s.BorderForeground(negativeColor)
	}
	return s
}

func clampWidth(width int) int {
	if width <= 0 {
		return defaultWidth
	}
	return width
}
