package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Adel13Lis/infs3208-routegate/internal/models"
	"github.com/Adel13Lis/infs3208-routegate/internal/utils"
)

// StatusColor returns the colour used for a flight's operational status
func StatusColor(status string) lipgloss.TerminalColor {
	switch strings.ToLower(status) {
	case "scheduled":
		return affirmativeColor
	case "departed":
		return lipgloss.Color("33")
	case "arrived":
		return mutedColor
	case "cancelled":
		return negativeColor
	default:
		return lipgloss.NoColor{}
	}
}

// FlightsTable renders the flight listing for an origin airport
func FlightsTable(flights []models.UpcomingFlight, width int) string {
	width = clampWidth(width)
	if len(flights) == 0 {
		return mutedStyle.Render("No flights found")
	}

	rows := make([][]string, 0, len(flights))
	for _, f := range flights {
		rows = append(rows, []string{
			f.FlightNumber,
			f.Origin + " → " + f.Destination,
			strings.TrimSpace(f.DepartureDate + " " + utils.ShortTime(f.DepartureTime)),
			strings.TrimSpace(f.ArrivalDate + " " + utils.ShortTime(f.ArrivalTime)),
			f.AircraftType,
			f.Status,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Width(width).
		Headers("Flight #", "Route", "Departure", "Arrival", "Aircraft", "Status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCellStyle
			}
			if col == 5 && row >= 0 && row < len(flights) {
				return cellStyle.Foreground(StatusColor(flights[row].Status)).Bold(true)
			}
			return cellStyle
		})
	return t.Render()
}
