package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/Adel13Lis/infs3208-routegate/internal/api"
	"github.com/Adel13Lis/infs3208-routegate/internal/constants"
	"github.com/Adel13Lis/infs3208-routegate/internal/models"
	"github.com/Adel13Lis/infs3208-routegate/internal/session"
)

// Context is passed to every command's Run method
type Context struct {
	API       api.Backend
	Sessions  session.Store
	APIURL    string
	ConfigDir string
	StoreKind string
	Timeout   time.Duration
	Out       io.Writer
}

// Stdout returns where command output goes
func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// Deadline returns a context bounded by the configured request timeout
func (c *Context) Deadline() (context.Context, context.CancelFunc) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = constants.DefaultTimeout
	}
	return context.WithTimeout(context.Background(), timeout)
}

// RequireSession returns the logged-in session or session.ErrNotLoggedIn
func (c *Context) RequireSession() (models.Session, error) {
	return session.Require(c.Sessions)
}
