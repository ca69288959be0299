package system

import (
	"errors"
	"fmt"

	"github.com/Adel13Lis/infs3208-routegate/internal/cli"
	"github.com/Adel13Lis/infs3208-routegate/internal/constants"
	"github.com/Adel13Lis/infs3208-routegate/internal/keyring"
	"github.com/Adel13Lis/infs3208-routegate/internal/session"
)

type SessionCmd struct {
	Status SessionStatusCmd `cmd:"" help:"Show where the session is stored and whether one exists." default:"1"`
	Clear  SessionClearCmd  `cmd:"" help:"Remove the stored session from the OS keyring."`
}

// SessionStatusCmd checks the session store and the availability of the OS keyring
type SessionStatusCmd struct{}

func (cmd *SessionStatusCmd) Run(ctx *cli.Context) error {
	out := ctx.Stdout()
	fmt.Fprintf(out, "Session store: %s\n", storeKind(ctx))

	if keyring.IsAvailable() {
		fmt.Fprintln(out, "✓ OS keyring is available")
	} else {
		fmt.Fprintln(out, "❌ OS keyring is not available on this system")
		if storeKind(ctx) == constants.SessionStoreKeyring {
			fmt.Fprintf(out, "   Use --session-store=%s to keep the session in %s\n", constants.SessionStoreFile, constants.SessionDBName)
			return errors.New("keyring unavailable")
		}
	}

	s, err := ctx.Sessions.Get()
	switch {
	case err == nil:
		fmt.Fprintf(out, "✓ Logged in as %s (home %s)\n", s.Email, s.HomeLabel())
	case errors.Is(err, session.ErrNoSession):
		fmt.Fprintln(out, "ℹ No session stored")
	default:
		return fmt.Errorf("failed to read session: %w", err)
	}
	return nil
}

// SessionClearCmd removes a session left in the OS keyring regardless of the configured store
type SessionClearCmd struct{}

func (cmd *SessionClearCmd) Run(ctx *cli.Context) error {
	err := keyring.DeleteSession()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no session found in keyring")
		}
		return fmt.Errorf("failed to delete session from keyring: %w", err)
	}

	fmt.Fprintln(ctx.Stdout(), "✓ Session deleted from OS keyring")
	return nil
}
