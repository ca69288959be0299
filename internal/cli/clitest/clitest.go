// Package clitest wires command tests to a stub API server and a throwaway session store.
package clitest

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/Adel13Lis/infs3208-routegate/internal/api"
	"github.com/Adel13Lis/infs3208-routegate/internal/cli"
	"github.com/Adel13Lis/infs3208-routegate/internal/constants"
	"github.com/Adel13Lis/infs3208-routegate/internal/models"
	"github.com/Adel13Lis/infs3208-routegate/internal/session"
)

// Session is the operator most command tests run as
func Session() models.Session {
	return models.Session{
		ID:              "5d1c7a3e-0000-4000-8000-000000000002",
		Email:           "demo@routegate.com",
		Name:            "Demo User",
		HomeAirport:     "BNE",
		HomeAirportName: "Brisbane Airport",
		CreatedAt:       time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC),
	}
}

// NewContext returns a command context talking to handler, with output captured in the buffer
func NewContext(t *testing.T, handler http.Handler) (*cli.Context, *bytes.Buffer) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	store := session.NewFileStore(filepath.Join(dir, constants.SessionDBName))
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close session store: %v", err)
		}
	})

	var out bytes.Buffer
	return &cli.Context{
		API:       api.New(srv.URL, 5*time.Second),
		Sessions:  store,
		APIURL:    srv.URL,
		ConfigDir: dir,
		StoreKind: constants.SessionStoreFile,
		Timeout:   5 * time.Second,
		Out:       &out,
	}, &out
}

// Login stores Session in ctx's session store
func Login(t *testing.T, ctx *cli.Context) models.Session {
	t.Helper()
	s := Session()
	if err := ctx.Sessions.Set(s); err != nil {
		t.Fatalf("failed to store session: %v", err)
	}
	return s
}

// JSON answers every request with status and body
func JSON(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}
