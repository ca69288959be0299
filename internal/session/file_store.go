package session

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Adel13Lis/infs3208-routegate/internal/migration"
	"github.com/Adel13Lis/infs3208-routegate/internal/models"
	"github.com/Adel13Lis/infs3208-routegate/internal/session/migrations"
)

// FileStore keeps the session in a local SQLite database.
// It is meant for hosts without an OS keyring.
type FileStore struct {
	path string
	db   *sql.DB
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
	}
}

// Path returns the database file location
func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) open() error {
	if f.db != nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", f.path)
	if err != nil {
		return fmt.Errorf("failed to open session database: %w", err)
	}
	if _, err := migration.NewRunner(db, migrations.FS).Apply(); err != nil {
		db.Close()
		return fmt.Errorf("failed to prepare session database: %w", err)
	}
	f.db = db
	return nil
}

func (f *FileStore) Get() (models.Session, error) {
	if err := f.open(); err != nil {
		return models.Session{}, err
	}

	var data string
	err := f.db.QueryRow("SELECT data FROM session WHERE id = 1").Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrNoSession
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to read session: %w", err)
	}
	return decode(data, "file")
}

func (f *FileStore) Set(s models.Session) error {
	data, err := encode(s)
	if err != nil {
		return err
	}
	if err := f.open(); err != nil {
		return err
	}

	_, err = f.db.Exec(
		"INSERT OR REPLACE INTO session (id, data, updated_at) VALUES (1, ?, ?)",
		data, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (f *FileStore) Clear() error {
	if err := f.open(); err != nil {
		return err
	}
	if _, err := f.db.Exec("DELETE FROM session"); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Close releases the database handle
func (f *FileStore) Close() error {
	if f.db != nil {
		err := f.db.Close()
		f.db = nil
		return err
	}
	return nil
}

