package calculator

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Adel13Lis/infs3208-routegate/internal/api"
	"github.com/Adel13Lis/infs3208-routegate/internal/assessment"
	"github.com/Adel13Lis/infs3208-routegate/internal/models"
	"github.com/Adel13Lis/infs3208-routegate/internal/render"
)

const pickerHeight = 8

var (
	homeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	activeModeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveModeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("214")).
			Bold(true).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// LoadedMsg carries the candidate lists for the workflow that asked for them
type LoadedMsg struct {
	wf     *assessment.Workflow
	Result assessment.LoadResult
}

// ResultMsg carries the outcome of one submitted calculation
type ResultMsg struct {
	wf     *assessment.Workflow
	Req    assessment.Request
	Result models.AssessmentResult
	Err    error
}

type destinationItem struct {
	airport models.Airport
}

func (i destinationItem) Title() string       { return i.airport.Label() }
func (i destinationItem) Description() string { return joinPlace(i.airport.City, i.airport.Country) }
func (i destinationItem) FilterValue() string { return i.airport.Code + " " + i.airport.Name }

type flightItem struct {
	flight models.UpcomingFlight
	origin string
}

func (i flightItem) Title() string       { return i.flight.Label(i.origin) }
func (i flightItem) Description() string { return i.flight.Status }
func (i flightItem) FilterValue() string { return i.flight.FlightNumber + " " + i.flight.Destination }

type KeyMap struct {
	Destination key.Binding
	Flight      key.Binding
	Calculate   key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Destination: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "by destination"),
		),
		Flight: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "by flight"),
		),
		Calculate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "calculate"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "scroll down"),
		),
	}
}

// Model is the calculator view for one session
type Model struct {
	wf        *assessment.Workflow
	collector *assessment.Collector
	invoker   *assessment.Invoker
	keys      KeyMap
	picker    list.Model
	spinner   spinner.Model
	result    viewport.Model
	width     int
	height    int
}

func New(s models.Session, svc api.Service, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, pickerHeight)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.DisableQuitKeybindings()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		wf:        assessment.New(s),
		collector: assessment.NewCollector(svc),
		invoker:   assessment.NewInvoker(svc),
		keys:      DefaultKeyMap(),
		picker:    l,
		spinner:   sp,
		result:    viewport.New(width, 0),
	}
	m.SetSize(width, height)
	return m
}

func (m Model) Init() tea.Cmd {
	return m.load()
}

// Workflow exposes the underlying assessment state
func (m Model) Workflow() *assessment.Workflow {
	return m.wf
}

// Filtering reports whether the picker is capturing keystrokes
func (m Model) Filtering() bool {
	return m.picker.FilterState() == list.Filtering
}

// Dispose tears the view down; outstanding responses are dropped
func (m Model) Dispose() {
	m.wf.Dispose()
}

func (m Model) load() tea.Cmd {
	wf, collector := m.wf, m.collector
	ctx := wf.Context()
	s := wf.Session()
	return func() tea.Msg {
		return LoadedMsg{wf: wf, Result: collector.Load(ctx, s)}
	}
}

// Submit selects the highlighted item and starts a calculation for it
func (m Model) Submit() (Model, tea.Cmd) {
	if !m.wf.Loading() {
		m.selectHighlighted()
	}
	req, err := m.wf.Begin()
	if err != nil {
		m.refreshResult()
		return m, nil
	}
	m.refreshResult()

	wf, invoker := m.wf, m.invoker
	ctx := wf.Context()
	call := func() tea.Msg {
		res, err := invoker.Call(ctx, req)
		return ResultMsg{wf: wf, Req: req, Result: res, Err: err}
	}
	return m, tea.Batch(call, m.spinner.Tick)
}

// SetMode switches between destination and flight assessment
func (m Model) SetMode(mode models.Mode) Model {
	if m.wf.Mode() == mode {
		return m
	}
	if err := m.wf.SetMode(mode); err != nil {
		return m
	}
	m.refreshItems()
	m.refreshResult()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		if msg.wf != m.wf {
			return m, nil
		}
		m.wf.ApplyLoad(msg.Result)
		m.refreshItems()
		return m, nil

	case ResultMsg:
		if msg.wf != m.wf {
			return m, nil
		}
		if m.wf.Resolve(msg.Req, msg.Result, msg.Err) {
			m.refreshResult()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.wf.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.Filtering() {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Destination):
			return m.SetMode(models.ModeDestination), nil
		case key.Matches(msg, m.keys.Flight):
			return m.SetMode(models.ModeFlight), nil
		case key.Matches(msg, m.keys.Calculate):
			return m.Submit()
		case key.Matches(msg, m.keys.ScrollUp):
			m.result.HalfPageUp()
			return m, nil
		case key.Matches(msg, m.keys.ScrollDown):
			m.result.HalfPageDown()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	s := m.wf.Session()
	var sections []string

	sections = append(sections, homeStyle.Render("Home airport: "+s.HomeLabel()))
	sections = append(sections, m.viewModes())

	if msg := m.wf.LoadError(); msg != "" {
		sections = append(sections, bannerStyle.Render("⚠ "+msg))
	}

	if !m.wf.Loaded() {
		sections = append(sections, hintStyle.Render("Loading inputs..."))
	} else {
		sections = append(sections, m.picker.View())
	}

	switch {
	case m.wf.Loading():
		sections = append(sections, m.spinner.View()+" Calculating...")
	case m.wf.Error() != "":
		sections = append(sections, errorStyle.Render(m.wf.Error()))
	case m.wf.Result() == nil:
		sections = append(sections, hintStyle.Render("Press enter to calculate feasibility"))
	}

	if m.wf.Result() != nil {
		sections = append(sections, m.result.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewModes() string {
	titles := []struct {
		mode  models.Mode
		title string
	}{
		{models.ModeDestination, "By Destination"},
		{models.ModeFlight, "By Flight"},
	}
	var tabs []string
	for _, t := range titles {
		if m.wf.Mode() == t.mode {
			tabs = append(tabs, activeModeStyle.Render(t.title))
		} else {
			tabs = append(tabs, inactiveModeStyle.Render(t.title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.picker.SetSize(width, pickerHeight)
	m.result.Width = width
	m.result.Height = max(height-pickerHeight-6, 5)
	m.refreshResult()
}

// ShortHelp lists the calculator bindings for the help bar
func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Destination, m.keys.Flight, m.keys.Calculate}
}

func (m Model) FullHelp() []key.Binding {
	return []key.Binding{m.keys.Destination, m.keys.Flight, m.keys.Calculate, m.keys.ScrollUp, m.keys.ScrollDown}
}

func (m *Model) refreshItems() {
	var items []list.Item
	switch m.wf.Mode() {
	case models.ModeFlight:
		origin := m.wf.Session().HomeAirport
		for _, f := range m.wf.Flights() {
			items = append(items, flightItem{flight: f, origin: origin})
		}
		m.picker.SetStatusBarItemName("flight", "flights")
	default:
		for _, a := range m.wf.Destinations() {
			items = append(items, destinationItem{airport: a})
		}
		m.picker.SetStatusBarItemName("destination", "destinations")
	}
	m.picker.ResetFilter()
	m.picker.SetItems(items)
	m.picker.Select(0)
}

func (m *Model) refreshResult() {
	content := render.Result(m.wf.Session().HomeAirport, m.wf.Result(), m.width)
	m.result.SetContent(content)
	m.result.GotoTop()
}

func (m *Model) selectHighlighted() {
	switch item := m.picker.SelectedItem().(type) {
	case destinationItem:
		_ = m.wf.SelectDestination(item.airport.Code)
	case flightItem:
		_ = m.wf.SelectFlight(item.flight.FlightID)
	case nil:
		// nothing visible, so nothing is selected
		if m.wf.Mode() == models.ModeFlight {
			_ = m.wf.SelectFlight("")
		} else {
			_ = m.wf.SelectDestination("")
		}
	}
}

func joinPlace(city, country string) string {
	switch {
	case city == "":
		return country
	case country == "":
		return city
	default:
		return fmt.Sprintf("%s, %s", city, country)
	}
}

// Selection returns the current selection text, for display by the parent
func (m Model) Selection() string {
	return strings.TrimSpace(m.wf.Selection())
}
