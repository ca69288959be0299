package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Adel13Lis/infs3208-routegate/internal/constants"
	"github.com/Adel13Lis/infs3208-routegate/internal/models"
	"github.com/Adel13Lis/infs3208-routegate/internal/utils"
)

// FlightPanel renders a single-flight assessment
func FlightPanel(res *models.FlightAssessment, width int) string {
	width = clampWidth(width)
	if res == nil {
		return ""
	}
	f := res.Flight

	var b strings.Builder
	b.WriteString(titleStyle.Render("Flight Assessment") + "\n\n")
	b.WriteString(field("Flight", f.FlightNumber))
	b.WriteString(field("Route", fmt.Sprintf("%s (%s) → %s (%s)",
		f.Origin, f.OriginCity, f.Destination, joinNonEmpty(", ", f.DestinationName, f.DestinationCountry))))
	b.WriteString(field("Departure", when(f.DepartureDate, f.DepartureTime)))
	b.WriteString(field("Arrival", when(f.ArrivalDate, f.ArrivalTime)))
	b.WriteString("\n")

	b.WriteString(RecommendationBlock(res.Recommendation, res.Reason, width))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Weather Conditions") + "\n")
	cardWidth := (width - 2) / 2
	origin := weatherCard(
		fmt.Sprintf("Departure: %s - %s", f.Origin, f.OriginCity),
		res.OriginWeather, cardWidth)
	dest := weatherCard(
		fmt.Sprintf("Arrival: %s - %s", f.Destination, joinNonEmpty(", ", f.DestinationCity, f.DestinationCountry)),
		res.DestWeather, cardWidth)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, origin, "  ", dest))

	return b.String()
}

// RecommendationBlock renders the recommendation header followed by either
// the severe weather callout or the assessment line.
func RecommendationBlock(rec models.Recommendation, reason string, width int) string {
	width = clampWidth(width)
	t := Classify(rec)
	style := categoryStyle(t.Category)

	header := style.Bold(true).Render(strings.TrimSpace(t.Icon + " Recommendation: " + string(rec)))

	var body string
	if t.Callout {
		body = Callout(reason, width-4)
	} else {
		body = style.Render(labelStyle.Render("Assessment:") + " " + reason)
	}

	return panelStyle(t.Category).Width(width - 2).Render(header + "\n\n" + body)
}

// Callout renders the severe weather warning block
func Callout(reason string, width int) string {
	width = clampWidth(width)
	head := calloutHeaderStyle.Render(IconReschedule + " " + constants.MsgSevereWeather)
	return calloutStyle.Width(width - 2).Render(head + "\n" + labelStyle.Render("Reason:") + " " + reason)
}

func weatherCard(title string, w models.WeatherSnapshot, width int) string {
	lines := []string{
		labelStyle.Render(title),
		"Temperature: " + num(w.Temp) + "°C",
		"Wind Speed: " + num(w.WindSpeed) + " km/h",
		"Wind Gusts: " + num(w.WindGusts) + " km/h",
		"Precipitation: " + num(w.Precipitation) + " mm",
	}
	if width < 20 {
		width = 20
	}
	return cardStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func field(label, value string) string {
	return labelStyle.Render(label+":") + " " + value + "\n"
}

func when(date, clockTime string) string {
	if clockTime == "" {
		return date
	}
	return date + " at " + utils.ShortTime(clockTime)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func joinNonEmpty(sep string, parts ...string) string {
	var out []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
