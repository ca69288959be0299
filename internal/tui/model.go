package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Adel13Lis/infs3208-routegate/internal/api"
	"github.com/Adel13Lis/infs3208-routegate/internal/constants"
	"github.com/Adel13Lis/infs3208-routegate/internal/logger"
	"github.com/Adel13Lis/infs3208-routegate/internal/models"
	"github.com/Adel13Lis/infs3208-routegate/internal/session"
	"github.com/Adel13Lis/infs3208-routegate/internal/tui/components/auth"
	"github.com/Adel13Lis/infs3208-routegate/internal/tui/components/calculator"
	"github.com/Adel13Lis/infs3208-routegate/internal/tui/components/flights"
)

// Model is the root of the terminal UI. Views past the login screen are only
// reachable with a session.
type Model struct {
	backend  api.Backend
	sessions session.Store
	ctx      context.Context
	cancel   context.CancelFunc

	state   constants.SessionState
	keys    KeyMap
	help    help.Model
	session *models.Session

	authModel    auth.Model
	calcModel    calculator.Model
	flightsModel flights.Model

	status   string
	quitting bool
	width    int
	height   int
}

func NewModel(backend api.Backend, sessions session.Store) Model {
	ctx, cancel := context.WithCancel(context.Background())
	m := Model{
		backend:  backend,
		sessions: sessions,
		ctx:      ctx,
		cancel:   cancel,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}

	s, err := session.Require(sessions)
	switch {
	case err == nil:
		m.enter(s)
	case errors.Is(err, session.ErrNotLoggedIn):
		m.showLogin()
	default:
		logger.Warn("Failed to read session", "error", err)
		m.status = "Could not read the saved session"
		m.showLogin()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	switch m.state {
	case constants.StateCalculator, constants.StateFlights:
		return tea.Batch(m.calcModel.Init(), m.flightsModel.Init())
	default:
		return m.authModel.Init()
	}
}

// State returns the active view
func (m Model) State() constants.SessionState {
	return m.state
}

// Session returns the logged-in session, if any
func (m Model) Session() (models.Session, bool) {
	if m.session == nil {
		return models.Session{}, false
	}
	return *m.session, true
}

func (m Model) ShortHelp() []key.Binding {
	switch m.state {
	case constants.StateLogin:
		return []key.Binding{m.keys.NewAccount}
	case constants.StateSignup:
		return []key.Binding{m.keys.Back}
	}
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help, m.keys.Logout}
	if m.state == constants.StateCalculator {
		keys = append(keys, m.calcModel.ShortHelp()...)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Logout}
	var actions []key.Binding
	if m.state == constants.StateCalculator {
		actions = m.calcModel.FullHelp()
	}
	return [][]key.Binding{global, actions}
}

// enter opens the protected views for session s
func (m *Model) enter(s models.Session) {
	m.session = &s
	m.flightsModel = flights.New(m.ctx, s, m.backend, m.width, m.contentHeight())
	m.openCalculator()
}

// openCalculator starts a fresh calculator view. Leaving the view disposes it,
// so nothing from a previous visit survives.
func (m *Model) openCalculator() {
	m.calcModel = calculator.New(*m.session, m.backend, m.width, m.contentHeight())
	m.state = constants.StateCalculator
}

func (m *Model) showLogin() {
	m.authModel = auth.NewLogin(m.ctx, m.backend)
	m.authModel.SetWidth(m.width)
	m.state = constants.StateLogin
}

func (m *Model) showSignup() {
	m.authModel = auth.NewSignup(m.ctx, m.backend)
	m.authModel.SetWidth(m.width)
	m.state = constants.StateSignup
}

// logout tears down the calculator and clears the stored session
func (m *Model) logout() {
	if m.session != nil {
		m.calcModel.Dispose()
	}
	if err := m.sessions.Clear(); err != nil {
		logger.Warn("Failed to clear session", "error", err)
	}
	m.session = nil
	m.status = ""
	m.showLogin()
}

func (m Model) contentHeight() int {
	return max(m.height-4, 0)
}
