package session

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/Adel13Lis/infs3208-routegate/internal/keyring"
	"github.com/Adel13Lis/infs3208-routegate/internal/models"
)

func testSession() models.Session {
	return models.Session{
		ID:              "5d1c7a3e-0000-4000-8000-000000000001",
		Email:           "demo@routegate.com",
		Name:            "Demo User",
		HomeAirport:     "BNE",
		HomeAirportName: "Brisbane Airport",
		CreatedAt:       time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC),
	}
}

// writeRaw stores data verbatim so tests can plant bad records
func (f *FileStore) writeRaw(data string) error {
	if err := f.open(); err != nil {
		return err
	}
	_, err := f.db.Exec("INSERT OR REPLACE INTO session (id, data, updated_at) VALUES (1, ?, ?)", data, "")
	return err
}

func newFileStore(t *testing.T) *FileStore {
	t.Helper()
	store := NewFileStore(filepath.Join(t.TempDir(), "routegate", "session.db"))
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return store
}

func TestStores(t *testing.T) {
	backends := []struct {
		name  string
		store func(t *testing.T) Store
	}{
		{
			name: "keyring",
			store: func(t *testing.T) Store {
				gokeyring.MockInit()
				_ = keyring.DeleteSession()
				return NewKeyringStore()
			},
		},
		{
			name: "file",
			store: func(t *testing.T) Store {
				return newFileStore(t)
			},
		},
	}

	for _, b := range backends {
		t.Run(b.name+"/empty", func(t *testing.T) {
			store := b.store(t)
			if _, err := store.Get(); !errors.Is(err, ErrNoSession) {
				t.Errorf("Get() on empty store error = %v, want ErrNoSession", err)
			}
		})

		t.Run(b.name+"/set get clear", func(t *testing.T) {
			store := b.store(t)
			want := testSession()

			if err := store.Set(want); err != nil {
				t.Fatalf("Set() failed: %v", err)
			}
			got, err := store.Get()
			if err != nil {
				t.Fatalf("Get() failed: %v", err)
			}
			if !sameSession(got, want) {
				t.Errorf("Get() = %+v, want %+v", got, want)
			}

			if err := store.Clear(); err != nil {
				t.Fatalf("Clear() failed: %v", err)
			}
			if _, err := store.Get(); !errors.Is(err, ErrNoSession) {
				t.Errorf("Get() after Clear() error = %v, want ErrNoSession", err)
			}
		})

		t.Run(b.name+"/clear when empty", func(t *testing.T) {
			store := b.store(t)
			if err := store.Clear(); err != nil {
				t.Errorf("Clear() on empty store error = %v, want nil", err)
			}
		})

		t.Run(b.name+"/session without home airport", func(t *testing.T) {
			store := b.store(t)
			s := testSession()
			s.HomeAirport = "  "
			if err := store.Set(s); err != nil {
				t.Fatalf("Set() failed: %v", err)
			}
			if _, err := store.Get(); !errors.Is(err, ErrNoSession) {
				t.Errorf("Get() error = %v, want ErrNoSession", err)
			}
		})
	}
}

func TestMalformedRecordsReadAsLoggedOut(t *testing.T) {
	t.Run("keyring", func(t *testing.T) {
		gokeyring.MockInit()
		if err := keyring.SetSession("{not json"); err != nil {
			t.Fatalf("SetSession() failed: %v", err)
		}
		if _, err := NewKeyringStore().Get(); !errors.Is(err, ErrNoSession) {
			t.Errorf("Get() error = %v, want ErrNoSession", err)
		}
	})

	t.Run("file", func(t *testing.T) {
		store := newFileStore(t)
		if err := store.writeRaw("[]"); err != nil {
			t.Fatalf("writeRaw() failed: %v", err)
		}
		if _, err := store.Get(); !errors.Is(err, ErrNoSession) {
			t.Errorf("Get() error = %v, want ErrNoSession", err)
		}
	})
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	first := NewFileStore(path)
	if err := first.Set(testSession()); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	second := NewFileStore(path)
	defer second.Close()
	got, err := second.Get()
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got.HomeAirport != "BNE" {
		t.Errorf("HomeAirport = %q, want BNE", got.HomeAirport)
	}
}

func TestRequire(t *testing.T) {
	store := newFileStore(t)

	_, err := Require(store)
	if !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("Require() error = %v, want ErrNotLoggedIn", err)
	}
	var h interface{ Hint() string }
	if !errors.As(err, &h) || h.Hint() == "" {
		t.Error("ErrNotLoggedIn should carry a hint")
	}

	if err := store.Set(testSession()); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	s, err := Require(store)
	if err != nil {
		t.Fatalf("Require() error = %v", err)
	}
	if s.Email != "demo@routegate.com" {
		t.Errorf("Require() email = %q", s.Email)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		kind    string
		want    string
		wantErr bool
	}{
		{kind: "", want: "*session.KeyringStore"},
		{kind: "keyring", want: "*session.KeyringStore"},
		{kind: "file", want: "*session.FileStore"},
		{kind: "redis", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			store, err := Open(tt.kind, dir)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Open(%q) error = %v, wantErr %v", tt.kind, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := typeName(store); got != tt.want {
				t.Errorf("Open(%q) = %s, want %s", tt.kind, got, tt.want)
			}
		})
	}
}

func sameSession(a, b models.Session) bool {
	return a.ID == b.ID &&
		a.Email == b.Email &&
		a.Name == b.Name &&
		a.HomeAirport == b.HomeAirport &&
		a.HomeAirportName == b.HomeAirportName &&
		a.CreatedAt.Equal(b.CreatedAt)
}

func typeName(s Store) string {
	switch s.(type) {
	case *KeyringStore:
		return "*session.KeyringStore"
	case *FileStore:
		return "*session.FileStore"
	default:
		return "unknown"
	}
}
