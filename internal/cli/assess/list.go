package assess

import (
	"fmt"

	"github.com/Adel13Lis/infs3208-routegate/internal/cli"
	"github.com/Adel13Lis/infs3208-routegate/internal/render"
)

type AirportsCmd struct{}

func (c *AirportsCmd) Run(ctx *cli.Context) error {
	reqCtx, cancel := ctx.Deadline()
	defer cancel()

	airports, err := ctx.API.ListAirports(reqCtx)
	if err != nil {
		return fmt.Errorf("failed to list airports: %w", err)
	}

	out := ctx.Stdout()
	if len(airports) == 0 {
		fmt.Fprintln(out, "No airports found.")
		return nil
	}

	fmt.Fprintf(out, "%-6s %-40s %-20s %-20s\n", "Code", "Name", "City", "Country")
	fmt.Fprintf(out, "%-6s %-40s %-20s %-20s\n", "----", "----", "----", "-------")
	for _, a := range airports {
		fmt.Fprintf(out, "%-6s %-40s %-20s %-20s\n", a.Code, a.Name, a.City, a.Country)
	}
	return nil
}

type FlightsCmd struct {
	All    bool   `help:"List every scheduled flight instead of the upcoming window."`
	Origin string `help:"Origin airport code. Defaults to your home airport."`
}

func (c *FlightsCmd) Run(ctx *cli.Context) error {
	origin := c.Origin
	if origin == "" {
		s, err := ctx.RequireSession()
		if err != nil {
			return err
		}
		origin = s.HomeAirport
	}

	reqCtx, cancel := ctx.Deadline()
	defer cancel()

	list := ctx.API.ListUpcomingFlights
	if c.All {
		list = ctx.API.ListAllFlights
	}
	flights, err := list(reqCtx, origin)
	if err != nil {
		return fmt.Errorf("failed to load flights: %w", err)
	}

	fmt.Fprintf(ctx.Stdout(), "Flights from %s\n", origin)
	fmt.Fprintln(ctx.Stdout(), render.FlightsTable(flights, outputWidth))
	return nil
}
