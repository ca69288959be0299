package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/Adel13Lis/infs3208-routegate/internal/constants"
)

var (
	// ErrNotFound is returned when no session is stored in the keyring
	ErrNotFound = errors.New("session not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetSession retrieves the encoded session record from the OS keyring.
// Returns ErrNotFound if no session is stored.
func GetSession() (string, error) {
	data, err := keyring.Get(constants.AppName, constants.KeyringSessionKey)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return data, nil
}

// SetSession stores the encoded session record in the OS keyring.
func SetSession(data string) error {
	if data == "" {
		return errors.New("session data cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.KeyringSessionKey, data); err != nil {
		return fmt.Errorf("failed to store session in keyring: %w", err)
	}
	return nil
}

// DeleteSession removes the session record from the OS keyring.
func DeleteSession() error {
	err := keyring.Delete(constants.AppName, constants.KeyringSessionKey)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete session from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	// ErrNotFound means the keyring answered, it just has nothing for us
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}
