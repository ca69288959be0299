package session

import (
	"errors"

	"github.com/Adel13Lis/infs3208-routegate/internal/keyring"
	"github.com/Adel13Lis/infs3208-routegate/internal/models"
)

// KeyringStore keeps the session in the OS keyring
type KeyringStore struct{}

func NewKeyringStore() *KeyringStore {
	return &KeyringStore{}
}

func (k *KeyringStore) Get() (models.Session, error) {
	data, err := keyring.GetSession()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return models.Session{}, ErrNoSession
		}
		return models.Session{}, err
	}
	return decode(data, "keyring")
}

func (k *KeyringStore) Set(s models.Session) error {
	data, err := encode(s)
	if err != nil {
		return err
	}
	return keyring.SetSession(data)
}

func (k *KeyringStore) Clear() error {
	if err := keyring.DeleteSession(); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	return nil
}
