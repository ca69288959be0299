package assess

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/Adel13Lis/infs3208-routegate/internal/assessment"
	"github.com/Adel13Lis/infs3208-routegate/internal/cli"
	"github.com/Adel13Lis/infs3208-routegate/internal/models"
	"github.com/Adel13Lis/infs3208-routegate/internal/render"
)

const outputWidth = 100

// prompt runs an interactive picker; tests replace it
var prompt = func(f *huh.Form) error { return f.Run() }

type AssessCmd struct {
	Flight      AssessFlightCmd      `cmd:"" help:"Assess one scheduled flight from your home airport."`
	Destination AssessDestinationCmd `cmd:"" help:"Assess a destination over the forecast horizon."`
}

type AssessFlightCmd struct {
	ID          string `arg:"" optional:"" help:"Flight ID, as shown by 'routegate flights'."`
	Interactive bool   `help:"Pick the flight from a list." short:"i"`
	JSON        bool   `help:"Print the raw result as JSON."`
}

func (c *AssessFlightCmd) Run(ctx *cli.Context) error {
	s, err := ctx.RequireSession()
	if err != nil {
		return err
	}
	wf := assessment.New(s)
	defer wf.Dispose()

	if err := wf.SetMode(models.ModeFlight); err != nil {
		return err
	}

	id := models.FlightID(c.ID)
	if id == "" && c.Interactive {
		if id, err = pickFlight(ctx, wf); err != nil {
			return err
		}
	}
	if err := wf.SelectFlight(id); err != nil {
		return err
	}
	return run(ctx, wf, c.JSON)
}

type AssessDestinationCmd struct {
	Code        string `arg:"" optional:"" help:"Destination airport code, e.g. JFK."`
	Interactive bool   `help:"Pick the destination from a list." short:"i"`
	JSON        bool   `help:"Print the raw result as JSON."`
}

func (c *AssessDestinationCmd) Run(ctx *cli.Context) error {
	s, err := ctx.RequireSession()
	if err != nil {
		return err
	}
	wf := assessment.New(s)
	defer wf.Dispose()

	if err := wf.SetMode(models.ModeDestination); err != nil {
		return err
	}

	code := c.Code
	if code == "" && c.Interactive {
		if code, err = pickDestination(ctx, wf); err != nil {
			return err
		}
	}
	if err := wf.SelectDestination(code); err != nil {
		return err
	}
	return run(ctx, wf, c.JSON)
}

func run(ctx *cli.Context, wf *assessment.Workflow, asJSON bool) error {
	reqCtx, cancel := ctx.Deadline()
	defer cancel()

	err := assessment.NewInvoker(ctx.API).Run(reqCtx, wf)
	if err != nil {
		if msg := wf.Error(); msg != "" {
			return errors.New(msg)
		}
		return err
	}

	out := ctx.Stdout()
	if asJSON {
		data, err := json.MarshalIndent(wf.Result(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}
	fmt.Fprintln(out, render.Result(wf.Session().HomeAirport, wf.Result(), outputWidth))
	return nil
}

// load fetches the candidate inputs into wf
func load(ctx *cli.Context, wf *assessment.Workflow) error {
	reqCtx, cancel := ctx.Deadline()
	defer cancel()
	wf.ApplyLoad(assessment.NewCollector(ctx.API).Load(reqCtx, wf.Session()))
	if msg := wf.LoadError(); msg != "" {
		return errors.New(msg)
	}
	return nil
}

func pickFlight(ctx *cli.Context, wf *assessment.Workflow) (models.FlightID, error) {
	if err := load(ctx, wf); err != nil && len(wf.Flights()) == 0 {
		return "", err
	}
	origin := wf.Session().HomeAirport
	opts := make([]huh.Option[models.FlightID], 0, len(wf.Flights()))
	for _, f := range wf.Flights() {
		opts = append(opts, huh.NewOption(f.Label(origin), f.FlightID))
	}
	if len(opts) == 0 {
		return "", fmt.Errorf("no upcoming flights from %s", origin)
	}

	var id models.FlightID
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[models.FlightID]().
			Title("Select Flight").
			Options(opts...).
			Value(&id),
	)).WithTheme(huh.ThemeDracula())
	if err := prompt(form); err != nil {
		return "", err
	}
	return id, nil
}

func pickDestination(ctx *cli.Context, wf *assessment.Workflow) (string, error) {
	if err := load(ctx, wf); err != nil && len(wf.Destinations()) == 0 {
		return "", err
	}
	opts := make([]huh.Option[string], 0, len(wf.Destinations()))
	for _, a := range wf.Destinations() {
		opts = append(opts, huh.NewOption(a.Label(), a.Code))
	}
	if len(opts) == 0 {
		return "", errors.New("no destinations available")
	}

	var code string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Select Destination").
			Options(opts...).
			Height(10).
			Value(&code),
	)).WithTheme(huh.ThemeDracula())
	if err := prompt(form); err != nil {
		return "", err
	}
	return code, nil
}
