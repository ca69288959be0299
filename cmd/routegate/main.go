package main

import (
	"io"
	"time"

	"github.com/alecthomas/kong"

	"github.com/Adel13Lis/infs3208-routegate/internal/api"
	"github.com/Adel13Lis/infs3208-routegate/internal/cli"
	"github.com/Adel13Lis/infs3208-routegate/internal/cli/account"
	"github.com/Adel13Lis/infs3208-routegate/internal/cli/assess"
	"github.com/Adel13Lis/infs3208-routegate/internal/cli/system"
	"github.com/Adel13Lis/infs3208-routegate/internal/constants"
	"github.com/Adel13Lis/infs3208-routegate/internal/errors"
	"github.com/Adel13Lis/infs3208-routegate/internal/logger"
	"github.com/Adel13Lis/infs3208-routegate/internal/session"
)

var CLI struct {
	Version      kong.VersionFlag
	APIURL       string        `name:"api-url" help:"Base URL of the RouteGate API." env:"ROUTEGATE_API_URL" default:"${api_url}"`
	Timeout      time.Duration `help:"Timeout for each API request." env:"ROUTEGATE_TIMEOUT" default:"${timeout}"`
	SessionStore string        `help:"Where to keep the login session (keyring or file)." env:"ROUTEGATE_SESSION_STORE" enum:"keyring,file" default:"keyring"`
	ConfigDir    string        `help:"Directory for config, logs and the file session store." type:"path" default:"${config_dir}"`
	Debug        bool          `help:"Log debug output to stderr."`

	Tui     system.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Login   account.LoginCmd  `cmd:"" help:"Log in to RouteGate."`
	Signup  account.SignupCmd `cmd:"" help:"Create a RouteGate account."`
	Logout  account.LogoutCmd `cmd:"" help:"Log out and forget the stored session."`
	Whoami  account.WhoamiCmd `cmd:"" help:"Show the logged-in operator."`
	Assess  assess.AssessCmd  `cmd:"" help:"Assess flight feasibility."`
	Flights assess.FlightsCmd `cmd:"" help:"List flights departing your home airport."`

	Airports assess.AirportsCmd `cmd:"" help:"List airports known to the API."`
	Init     system.InitCmd     `cmd:"" help:"Write a config file with the current settings."`
	Doctor   system.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Session  system.SessionCmd  `cmd:"" help:"Inspect or clear the stored session."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Weather-based flight feasibility assessments"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Configuration(kong.JSON, constants.DefaultConfigFile),
		kong.Vars{
			"version":    constants.Version,
			"api_url":    constants.DefaultAPIURL,
			"timeout":    constants.DefaultTimeout.String(),
			"config_dir": constants.DefaultConfigDir,
		},
	)

	logCfg := logger.Config{Debug: CLI.Debug, ConfigDir: CLI.ConfigDir}
	if ctx.Command() == "tui" {
		logCfg.Stderr = io.Discard
	}
	if err := logger.Init(logCfg); err != nil {
		errors.Fatalf("failed to initialize logger: %v", err)
	}
	logger.Debug("Starting", "command", ctx.Command(), "api", CLI.APIURL, "session_store", CLI.SessionStore)

	store, err := session.Open(CLI.SessionStore, CLI.ConfigDir)
	if err != nil {
		errors.Fatal(err)
	}
	if closer, ok := store.(io.Closer); ok {
		defer closer.Close()
	}

	appCtx := &cli.Context{
		API:       api.New(CLI.APIURL, CLI.Timeout),
		Sessions:  store,
		APIURL:    CLI.APIURL,
		ConfigDir: CLI.ConfigDir,
		StoreKind: CLI.SessionStore,
		Timeout:   CLI.Timeout,
	}

	if err := ctx.Run(appCtx); err != nil {
		if closer, ok := store.(io.Closer); ok {
			closer.Close()
		}
		errors.Fatal(err)
	}
}
