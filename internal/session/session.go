// Package session persists the logged-in operator between runs.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/Adel13Lis/infs3208-routegate/internal/constants"
	"github.com/Adel13Lis/infs3208-routegate/internal/logger"
	"github.com/Adel13Lis/infs3208-routegate/internal/models"
)

var (
	// ErrNoSession is returned by Store.Get when nothing usable is stored
	ErrNoSession = errors.New("no session")
	// ErrNotLoggedIn is returned by Require when a protected command runs without a session
	ErrNotLoggedIn error = notLoggedInError{}
)

type notLoggedInError struct{}

func (notLoggedInError) Error() string { return "not logged in" }
func (notLoggedInError) Hint() string  { return "Run 'routegate login' first." }

// Store reads, writes and clears the current session.
// Get never fails on bad stored data: it reports ErrNoSession instead.
type Store interface {
	Get() (models.Session, error)
	Set(models.Session) error
	Clear() error
}

// Open returns the session store for the given backend name
func Open(kind, configDir string) (Store, error) {
	switch kind {
	case "", constants.SessionStoreKeyring:
		return NewKeyringStore(), nil
	case constants.SessionStoreFile:
		return NewFileStore(filepath.Join(configDir, constants.SessionDBName)), nil
	default:
		return nil, fmt.Errorf("unknown session store %q (want %s or %s)", kind, constants.SessionStoreKeyring, constants.SessionStoreFile)
	}
}

// Require is the authentication gate for protected views and commands
func Require(store Store) (models.Session, error) {
	s, err := store.Get()
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return models.Session{}, ErrNotLoggedIn
		}
		return models.Session{}, err
	}
	return s, nil
}

func encode(s models.Session) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to encode session: %w", err)
	}
	return string(data), nil
}

// decode turns stored data into a session, treating anything unusable as absent
func decode(data, backend string) (models.Session, error) {
	var s models.Session
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		logger.Warn("Discarding malformed session record", "store", backend, "error", err)
		return models.Session{}, ErrNoSession
	}
	if !s.Valid() {
		logger.Warn("Discarding session without home airport", "store", backend)
		return models.Session{}, ErrNoSession
	}
	return s, nil
}
