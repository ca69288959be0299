package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Adel13Lis/infs3208-routegate/internal/constants"
	"github.com/Adel13Lis/infs3208-routegate/internal/logger"
	"github.com/Adel13Lis/infs3208-routegate/internal/tui/components/auth"
	"github.com/Adel13Lis/infs3208-routegate/internal/tui/components/calculator"
	"github.com/Adel13Lis/infs3208-routegate/internal/tui/components/flights"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.authModel.SetWidth(msg.Width)
		if m.session != nil {
			m.calcModel.SetSize(msg.Width, m.contentHeight())
			m.flightsModel.SetSize(msg.Width, m.contentHeight())
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}

	case auth.ResultMsg:
		if m.session != nil {
			return m, nil
		}
		if msg.Err == nil && !msg.Session.Valid() {
			msg.Err = errors.New("the API returned an account without a home airport")
		}
		if msg.Err == nil {
			return m.login(msg)
		}
		var cmd tea.Cmd
		m.authModel, cmd = m.authModel.Update(msg)
		return m, cmd

	case auth.AirportsMsg:
		var cmd tea.Cmd
		m.authModel, cmd = m.authModel.Update(msg)
		return m, cmd

	case calculator.LoadedMsg, calculator.ResultMsg, spinner.TickMsg:
		if m.session == nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.calcModel, cmd = m.calcModel.Update(msg)
		return m, cmd

	case flights.LoadedMsg:
		if m.session == nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.flightsModel, cmd = m.flightsModel.Update(msg)
		return m, cmd
	}

	switch m.state {
	case constants.StateLogin, constants.StateSignup:
		return m.updateAuth(msg)
	default:
		return m.updateApp(msg)
	}
}

func (m Model) updateAuth(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && !m.authModel.Busy() {
		switch {
		case m.state == constants.StateLogin && key.Matches(msg, m.keys.NewAccount):
			m.showSignup()
			return m, m.authModel.Init()
		case m.state == constants.StateSignup && key.Matches(msg, m.keys.Back):
			m.showLogin()
			return m, m.authModel.Init()
		}
	}

	var cmd tea.Cmd
	m.authModel, cmd = m.authModel.Update(msg)
	return m, cmd
}

func (m Model) updateApp(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && !m.calcModel.Filtering() {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Logout):
			m.logout()
			return m, m.authModel.Init()
		case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab):
			if m.state == constants.StateCalculator {
				m.calcModel.Dispose()
				m.state = constants.StateFlights
				return m, nil
			}
			m.openCalculator()
			return m, m.calcModel.Init()
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateFlights:
		m.flightsModel, cmd = m.flightsModel.Update(msg)
	default:
		m.calcModel, cmd = m.calcModel.Update(msg)
	}
	return m, cmd
}

func (m Model) login(msg auth.ResultMsg) (tea.Model, tea.Cmd) {
	if err := m.sessions.Set(msg.Session); err != nil {
		logger.Warn("Failed to save session", "error", err)
		m.status = "Logged in, but the session could not be saved"
	} else {
		m.status = ""
	}
	logger.Info("Logged in", "email", msg.Session.Email, "home", msg.Session.HomeAirport)
	m.enter(msg.Session)
	return m, tea.Batch(m.calcModel.Init(), m.flightsModel.Init())
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.session != nil {
		m.calcModel.Dispose()
	}
	m.cancel()
	m.quitting = true
	return m, tea.Quit
}
