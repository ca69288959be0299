package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Adel13Lis/infs3208-routegate/internal/models"
	"github.com/Adel13Lis/infs3208-routegate/internal/utils"
)

// ForecastTable renders a destination assessment as a per-day table.
// Each row is styled by its own status; there is no overall verdict.
func ForecastTable(origin string, res *models.DestinationAssessment, width int) string {
	width = clampWidth(width)
	if res == nil {
		return ""
	}
	if origin == "" {
		origin = res.Origin.Code
	}
	dest := res.Destination

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%d-Day Forecast: %s -> %s", len(res.Forecast), origin, dest.Code)))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(joinNonEmpty(", ", dest.Name, dest.City, dest.Country)))
	b.WriteString("\n\n")

	if len(res.Forecast) == 0 {
		b.WriteString(mutedStyle.Render("No forecast available"))
		return b.String()
	}

	treatments := rowTreatments(res.Forecast)
	rows := make([][]string, 0, len(res.Forecast))
	for _, day := range res.Forecast {
		rows = append(rows, []string{
			strings.TrimSpace(day.Date + "\n" + utils.Weekday(day.Date)),
			Badge(day.Status),
			fmt.Sprintf("Wind: %s km/h\nRain: %s mm", num(day.OriginWind), num(day.OriginRain)),
			fmt.Sprintf("Wind: %s km/h\nRain: %s mm", num(day.DestWind), num(day.DestRain)),
			day.Reason,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		BorderRow(true).
		Width(width).
		Headers("Date", "Status", fmt.Sprintf("Origin (%s)", origin), fmt.Sprintf("Dest (%s)", dest.Code), "Reason").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCellStyle
			}
			if row < 0 || row >= len(treatments) {
				return cellStyle
			}
			s := cellStyle.Inherit(categoryStyle(treatments[row].Category))
			if col == 1 || Severity(res.Forecast[row].Status) >= Severity(models.RecommendationCancel) {
				s = s.Bold(true)
			}
			return s
		})

	b.WriteString(t.Render())
	return b.String()
}

func rowTreatments(days []models.ForecastEntry) []Treatment {
	out := make([]Treatment, len(days))
	for i, d := range days {
		out[i] = Classify(d.Status)
	}
	return out
}
