package flights

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Adel13Lis/infs3208-routegate/internal/api"
	"github.com/Adel13Lis/infs3208-routegate/internal/logger"
	"github.com/Adel13Lis/infs3208-routegate/internal/models"
	"github.com/Adel13Lis/infs3208-routegate/internal/render"
)

var (
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)
)

// LoadedMsg carries the flight listing for an origin
type LoadedMsg struct {
	Origin  string
	Flights []models.UpcomingFlight
	Err     error
}

// Model lists every flight departing the home airport
type Model struct {
	schedule api.Schedule
	session  models.Session
	ctx      context.Context
	table    table.Model
	flights  []models.UpcomingFlight
	loading  bool
	err      string
	width    int
	height   int
}

func New(ctx context.Context, s models.Session, schedule api.Schedule, width, height int) Model {
	t := table.New(
		table.WithColumns(columns(width)),
		table.WithFocused(true),
		table.WithHeight(max(height-4, 3)),
	)
	return Model{
		schedule: schedule,
		session:  s,
		ctx:      ctx,
		table:    t,
		loading:  true,
		width:    width,
		height:   height,
	}
}

func (m Model) Init() tea.Cmd {
	schedule, ctx, origin := m.schedule, m.ctx, m.session.HomeAirport
	return func() tea.Msg {
		flights, err := schedule.ListAllFlights(ctx, origin)
		return LoadedMsg{Origin: origin, Flights: flights, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		if msg.Origin != m.session.HomeAirport {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			logger.Warn("Failed to load flights", "origin", msg.Origin, "error", msg.Err)
			m.err = "Failed to load flights"
			return m, nil
		}
		m.err = ""
		m.SetFlights(msg.Flights)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	heading := headingStyle.Render("Flights from " + m.originName())
	switch {
	case m.loading:
		return lipgloss.JoinVertical(lipgloss.Left, heading, mutedStyle.Render("Loading flights..."))
	case m.err != "":
		return lipgloss.JoinVertical(lipgloss.Left, heading, errorStyle.Render(m.err))
	case len(m.flights) == 0:
		return lipgloss.JoinVertical(lipgloss.Left, heading, mutedStyle.Render("No flights found"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, heading, m.table.View(), m.viewSelected())
}

// SetFlights replaces the listing
func (m *Model) SetFlights(flights []models.UpcomingFlight) {
	m.flights = flights
	rows := make([]table.Row, 0, len(flights))
	for _, f := range flights {
		rows = append(rows, table.Row{
			f.FlightNumber,
			f.Origin + " → " + f.Destination,
			f.DepartureDate + " " + f.DepartureTime,
			f.ArrivalDate + " " + f.ArrivalTime,
			f.AircraftType,
			f.Status,
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m Model) Flights() []models.UpcomingFlight {
	return m.flights
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetColumns(columns(width))
	m.table.SetWidth(width)
	m.table.SetHeight(max(height-4, 3))
}

func (m Model) viewSelected() string {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.flights) {
		return ""
	}
	f := m.flights[i]
	status := lipgloss.NewStyle().Foreground(render.StatusColor(f.Status)).Bold(true).Render(f.Status)
	return mutedStyle.Render(fmt.Sprintf("%s to %s ", f.FlightNumber, f.Destination)) + status
}

func (m Model) originName() string {
	if m.session.HomeAirportName != "" {
		return m.session.HomeAirportName
	}
	return m.session.HomeAirport
}

func columns(width int) []table.Column {
	if width <= 0 {
		width = 80
	}
	narrow := max(width/8, 8)
	wide := max((width-4*narrow-12)/2, 12)
	return []table.Column{
		{Title: "Flight #", Width: narrow},
		{Title: "Route", Width: narrow + 4},
		{Title: "Departure", Width: wide},
		{Title: "Arrival", Width: wide},
		{Title: "Aircraft", Width: narrow},
		{Title: "Status", Width: narrow},
	}
}
