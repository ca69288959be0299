package account

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/Adel13Lis/infs3208-routegate/internal/api"
	"github.com/Adel13Lis/infs3208-routegate/internal/cli"
	"github.com/Adel13Lis/infs3208-routegate/internal/constants"
	"github.com/Adel13Lis/infs3208-routegate/internal/logger"
	"github.com/Adel13Lis/infs3208-routegate/internal/models"
	"github.com/Adel13Lis/infs3208-routegate/internal/tui/components/auth"
)

// prompt runs an interactive form; tests replace it
var prompt = func(f *huh.Form) error { return f.Run() }

type LoginCmd struct {
	Email    string `help:"Account email." short:"e"`
	Password string `help:"Account password. Prompted for when omitted." env:"ROUTEGATE_PASSWORD"`
}

func (c *LoginCmd) Run(ctx *cli.Context) error {
	fm := &auth.LoginFormModel{Email: c.Email, Password: c.Password}
	if strings.TrimSpace(fm.Email) == "" || fm.Password == "" {
		if err := prompt(auth.NewLoginForm(fm)); err != nil {
			return fmt.Errorf("login cancelled: %w", err)
		}
	}

	reqCtx, cancel := ctx.Deadline()
	defer cancel()
	s, err := ctx.API.Login(reqCtx, strings.TrimSpace(fm.Email), fm.Password)
	if err != nil {
		return fmt.Errorf("login failed: %s", failure(err, constants.MsgInvalidLogin))
	}
	return save(ctx, s)
}

type SignupCmd struct {
	Email     string `help:"Account email." short:"e"`
	Password  string `help:"Account password." env:"ROUTEGATE_PASSWORD"`
	FirstName string `help:"First name."`
	LastName  string `help:"Last name."`
	Home      string `help:"Home airport code, e.g. BNE."`
}

func (c *SignupCmd) Run(ctx *cli.Context) error {
	fm := &auth.SignupFormModel{
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		Password:    c.Password,
		HomeAirport: c.Home,
	}

	if !complete(fm) {
		if !blank(fm) {
			return errors.New(constants.MsgAllFieldsRequired)
		}
		reqCtx, cancel := ctx.Deadline()
		airports, err := ctx.API.ListAirports(reqCtx)
		cancel()
		if err != nil {
			logger.Warn("Failed to load airports for signup", "error", err)
		}
		if err := prompt(auth.NewSignupForm(fm, airports)); err != nil {
			return fmt.Errorf("signup cancelled: %w", err)
		}
		if !complete(fm) {
			return errors.New(constants.MsgAllFieldsRequired)
		}
	}

	reqCtx, cancel := ctx.Deadline()
	defer cancel()
	s, err := ctx.API.Signup(reqCtx, api.SignupRequest{
		Email:       strings.TrimSpace(fm.Email),
		Password:    fm.Password,
		FirstName:   strings.TrimSpace(fm.FirstName),
		LastName:    strings.TrimSpace(fm.LastName),
		HomeAirport: strings.ToUpper(strings.TrimSpace(fm.HomeAirport)),
	})
	if err != nil {
		return fmt.Errorf("signup failed: %s", failure(err, constants.MsgSignupFailed))
	}
	return save(ctx, s)
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *cli.Context) error {
	if err := ctx.Sessions.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	fmt.Fprintln(ctx.Stdout(), "✓ Logged out")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *cli.Context) error {
	s, err := ctx.RequireSession()
	if err != nil {
		return err
	}
	out := ctx.Stdout()
	fmt.Fprintf(out, "Email:        %s\n", s.Email)
	if s.Name != "" {
		fmt.Fprintf(out, "Name:         %s\n", s.Name)
	}
	fmt.Fprintf(out, "Home airport: %s\n", s.HomeLabel())
	if !s.CreatedAt.IsZero() {
		fmt.Fprintf(out, "Logged in:    %s\n", s.CreatedAt.Local().Format(constants.DateFormat+" "+constants.ShortTimeFormat))
	}
	return nil
}

func save(ctx *cli.Context, s models.Session) error {
	if !s.Valid() {
		return errors.New("the API returned an account without a home airport")
	}
	if err := ctx.Sessions.Set(s); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	logger.Info("Logged in", "email", s.Email, "home", s.HomeAirport)
	fmt.Fprintf(ctx.Stdout(), "✓ Logged in as %s (home %s)\n", s.Email, s.HomeLabel())
	return nil
}

func failure(err error, fallback string) string {
	if msg := strings.TrimSpace(api.Message(err)); msg != "" {
		return msg
	}
	return fallback
}

func complete(fm *auth.SignupFormModel) bool {
	for _, v := range []string{fm.FirstName, fm.LastName, fm.Email, fm.Password, fm.HomeAirport} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

func blank(fm *auth.SignupFormModel) bool {
	for _, v := range []string{fm.FirstName, fm.LastName, fm.Email, fm.Password, fm.HomeAirport} {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
