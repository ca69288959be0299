package auth

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/Adel13Lis/infs3208-routegate/internal/api"
	"github.com/Adel13Lis/infs3208-routegate/internal/constants"
	"github.com/Adel13Lis/infs3208-routegate/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

type Kind int

const (
	KindLogin Kind = iota
	KindSignup
)

// LoginFormModel holds the login form values
type LoginFormModel struct {
	Email    string
	Password string
}

// SignupFormModel holds the signup form values
type SignupFormModel struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	HomeAirport string
}

// ResultMsg is the outcome of a login or signup request
type ResultMsg struct {
	Kind    Kind
	Session models.Session
	Err     error
}

// AirportsMsg carries the home airport choices for signup
type AirportsMsg struct {
	Airports []models.Airport
	Err      error
}

// Backend is what the auth forms need from the API
type Backend interface {
	api.Authenticator
	ListAirports(ctx context.Context) ([]models.Airport, error)
}

// Model is the login or signup screen
type Model struct {
	kind     Kind
	backend  Backend
	ctx      context.Context
	form     *huh.Form
	login    *LoginFormModel
	signup   *SignupFormModel
	airports []models.Airport
	ready    bool
	busy     bool
	err      string
	width    int
}

func NewLogin(ctx context.Context, backend Backend) Model {
	m := Model{
		kind:    KindLogin,
		backend: backend,
		ctx:     ctx,
		login:   &LoginFormModel{},
		ready:   true,
	}
	m.form = NewLoginForm(m.login)
	return m
}

// NewSignup returns the signup screen; its form appears once the airport list arrives
func NewSignup(ctx context.Context, backend Backend) Model {
	return Model{
		kind:    KindSignup,
		backend: backend,
		ctx:     ctx,
		signup:  &SignupFormModel{},
	}
}

func (m Model) Kind() Kind  { return m.kind }
func (m Model) Busy() bool  { return m.busy }
func (m Model) Err() string { return m.err }

func (m Model) Init() tea.Cmd {
	if m.kind == KindSignup && !m.ready {
		backend, ctx := m.backend, m.ctx
		return func() tea.Msg {
			airports, err := backend.ListAirports(ctx)
			return AirportsMsg{Airports: airports, Err: err}
		}
	}
	return m.form.Init()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case AirportsMsg:
		if m.kind != KindSignup || m.ready {
			return m, nil
		}
		if msg.Err == nil {
			m.airports = msg.Airports
		}
		m.ready = true
		m.form = NewSignupForm(m.signup, m.airports)
		return m, m.form.Init()

	case ResultMsg:
		if msg.Kind != m.kind {
			return m, nil
		}
		m.busy = false
		if msg.Err != nil {
			m.err = failureMessage(m.kind, msg.Err)
			return m, m.reset()
		}
		m.err = ""
		return m, nil
	}

	if !m.ready || m.busy {
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	if m.form.State == huh.StateCompleted {
		m.busy = true
		m.err = ""
		cmds = append(cmds, m.submit())
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	title := "RouteGate - Login"
	if m.kind == KindSignup {
		title = "RouteGate - Sign Up"
	}

	parts := []string{titleStyle.Render(title), ""}
	switch {
	case !m.ready:
		parts = append(parts, hintStyle.Render("Loading airports..."))
	case m.busy:
		parts = append(parts, hintStyle.Render("Please wait..."))
	default:
		parts = append(parts, m.form.View())
	}
	if m.err != "" {
		parts = append(parts, errorStyle.Render(m.err))
	}
	if m.kind == KindLogin {
		parts = append(parts, hintStyle.Render("ctrl+n: create an account"))
	} else {
		parts = append(parts, hintStyle.Render("esc: back to login"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) SetWidth(width int) {
	m.width = width
	if m.form != nil {
		m.form = m.form.WithWidth(min(width, 60))
	}
}

func (m Model) submit() tea.Cmd {
	backend, ctx := m.backend, m.ctx
	switch m.kind {
	case KindSignup:
		req := api.SignupRequest{
			Email:       strings.TrimSpace(m.signup.Email),
			Password:    m.signup.Password,
			FirstName:   strings.TrimSpace(m.signup.FirstName),
			LastName:    strings.TrimSpace(m.signup.LastName),
			HomeAirport: strings.ToUpper(strings.TrimSpace(m.signup.HomeAirport)),
		}
		return func() tea.Msg {
			s, err := backend.Signup(ctx, req)
			return ResultMsg{Kind: KindSignup, Session: s, Err: err}
		}
	default:
		email, password := strings.TrimSpace(m.login.Email), m.login.Password
		return func() tea.Msg {
			s, err := backend.Login(ctx, email, password)
			return ResultMsg{Kind: KindLogin, Session: s, Err: err}
		}
	}
}

// reset rebuilds the form after a failed attempt, keeping everything but the password
func (m *Model) reset() tea.Cmd {
	switch m.kind {
	case KindSignup:
		m.signup.Password = ""
		m.form = NewSignupForm(m.signup, m.airports)
	default:
		m.login.Password = ""
		m.form = NewLoginForm(m.login)
	}
	if m.width > 0 {
		m.form = m.form.WithWidth(min(m.width, 60))
	}
	return m.form.Init()
}

func failureMessage(kind Kind, err error) string {
	msg := strings.TrimSpace(api.Message(err))
	if msg != "" {
		return msg
	}
	if kind == KindSignup {
		return constants.MsgSignupFailed
	}
	return constants.MsgInvalidLogin
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// NewLoginForm creates the login form bound to fm
func NewLoginForm(fm *LoginFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Value(&fm.Email).
				Validate(required("email")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&fm.Password).
				Validate(required("password")),
		),
	).WithTheme(huh.ThemeDracula()).WithShowHelp(false)
}

// NewSignupForm creates the signup form bound to fm. With no airports the
// home airport is typed as a code.
func NewSignupForm(fm *SignupFormModel, airports []models.Airport) *huh.Form {
	var home huh.Field
	if len(airports) > 0 {
		opts := make([]huh.Option[string], 0, len(airports))
		for _, a := range airports {
			opts = append(opts, huh.NewOption(a.Label(), a.Code))
		}
		home = huh.NewSelect[string]().
			Title("Home Airport").
			Options(opts...).
			Height(8).
			Value(&fm.HomeAirport)
	} else {
		home = huh.NewInput().
			Title("Home Airport (code)").
			Value(&fm.HomeAirport).
			Validate(required("home airport"))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("First Name").
				Value(&fm.FirstName).
				Validate(required("first name")),
			huh.NewInput().
				Title("Last Name").
				Value(&fm.LastName).
				Validate(required("last name")),
			huh.NewInput().
				Title("Email").
				Value(&fm.Email).
				Validate(required("email")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&fm.Password).
				Validate(required("password")),
			home,
		),
	).WithTheme(huh.ThemeDracula()).WithShowHelp(false)
}
