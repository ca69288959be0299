package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Adel13Lis/infs3208-routegate/internal/cli"
	"github.com/Adel13Lis/infs3208-routegate/internal/session"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	out := ctx.Stdout()
	fmt.Fprintln(out, "Running diagnostics...")
	fmt.Fprintln(out)

	hasError := false

	// Check 1: API reachable
	apiReachable := false
	if err := checkAPIReachable(ctx); err != nil {
		fmt.Fprintf(out, "❌ API reachable (%s): FAIL\n", ctx.APIURL)
		fmt.Fprintf(out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(out, "✓ API reachable (%s): OK\n", ctx.APIURL)
		apiReachable = true
	}

	// Check 2: Session store readable
	if err := checkSessionStore(ctx); err != nil {
		fmt.Fprintf(out, "❌ Session store (%s): FAIL\n", storeKind(ctx))
		fmt.Fprintf(out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(out, "✓ Session store (%s): OK\n", storeKind(ctx))
	}

	// Check 3: Logged in (warning only)
	s, err := ctx.RequireSession()
	loggedIn := err == nil
	if loggedIn {
		fmt.Fprintf(out, "✓ Session: %s (home %s)\n", s.Email, s.HomeAirport)
	} else {
		fmt.Fprintf(out, "⚠ Session: WARNING\n")
		fmt.Fprintf(out, "   %v\n", err)
	}

	// Check 4: Home airport served by the API (only if reachable and logged in)
	if apiReachable && loggedIn {
		if err := checkHomeAirport(ctx, s.HomeAirport); err != nil {
			fmt.Fprintf(out, "❌ Home airport: FAIL\n")
			fmt.Fprintf(out, "   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Fprintf(out, "✓ Home airport: OK\n")
		}
	} else {
		fmt.Fprintf(out, "⊘ Home airport: SKIPPED (API not reachable or not logged in)\n")
	}

	// Check 5: Config directory writable
	if err := checkConfigDir(ctx.ConfigDir); err != nil {
		fmt.Fprintf(out, "❌ Config directory: FAIL\n")
		fmt.Fprintf(out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(out, "✓ Config directory: OK\n")
	}

	// Check 6: Clock sanity
	if err := checkClock(time.Now()); err != nil {
		fmt.Fprintf(out, "❌ Clock: FAIL\n")
		fmt.Fprintf(out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(out, "✓ Clock: OK\n")
	}

	fmt.Fprintln(out)
	if hasError {
		fmt.Fprintln(out, "Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Fprintln(out, "All diagnostics passed!")
	return nil
}

func checkAPIReachable(ctx *cli.Context) error {
	if ctx.API == nil {
		return errors.New("no API client configured")
	}
	c, cancel := ctx.Deadline()
	defer cancel()
	if _, err := ctx.API.ListAirports(c); err != nil {
		return fmt.Errorf("failed to list airports: %w", err)
	}
	return nil
}

func checkSessionStore(ctx *cli.Context) error {
	if ctx.Sessions == nil {
		return errors.New("no session store configured")
	}
	if _, err := ctx.Sessions.Get(); err != nil && !errors.Is(err, session.ErrNoSession) {
		return err
	}
	return nil
}

func checkHomeAirport(ctx *cli.Context, code string) error {
	c, cancel := ctx.Deadline()
	defer cancel()
	airports, err := ctx.API.ListAirports(c)
	if err != nil {
		return err
	}
	for _, a := range airports {
		if a.Code == code {
			return nil
		}
	}
	return fmt.Errorf("home airport %s is not known to the API", code)
}

func checkConfigDir(dir string) error {
	if dir == "" {
		return errors.New("config directory not set")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	probe, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return fmt.Errorf("%s is not writable: %w", dir, err)
	}
	name := probe.Name()
	_ = probe.Close()
	return os.Remove(filepath.Clean(name))
}

func checkClock(now time.Time) error {
	// Check if time is in a reasonable range (after 2020 and before 2100)
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

func storeKind(ctx *cli.Context) string {
	if ctx.StoreKind == "" {
		return "keyring"
	}
	return ctx.StoreKind
}
