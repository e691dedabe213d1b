package secretbind

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// KeyringStore persists values through the OS credential manager via
// go-keyring: macOS Keychain, the freedesktop Secret Service on Linux,
// the Credential Manager on Windows.
//
// go-keyring exposes no protection-class attribute, so the
// Accessibility argument is accepted for interface conformance but not
// enforced; items get whatever at-rest protection the platform manager
// applies. Key enumeration is likewise unavailable, so KeyringStore
// implements neither Lister nor Wiper.
type KeyringStore struct {
	service string
}

// NewKeyringStore creates a credential-manager-backed store scoped to
// service.
func NewKeyringStore(service string) *KeyringStore {
	return &KeyringStore{service: service}
}

func (s *KeyringStore) getRaw(key string) ([]byte, error) {
	v, err := keyring.Get(s.service, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("keyring get %q: %w", key, err)
	}
	return []byte(v), nil
}

func (s *KeyringStore) setRaw(key string, data []byte) error {
	if err := keyring.Set(s.service, key, string(data)); err != nil {
		return fmt.Errorf("keyring set %q: %w", key, err)
	}
	return nil
}

func (s *KeyringStore) GetString(key string) (string, error) {
	data, err := s.getRaw(key)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *KeyringStore) GetBool(key string) (bool, error) {
	data, err := s.getRaw(key)
	if err != nil {
		return false, err
	}
	return decodeBool(key, data)
}

func (s *KeyringStore) GetData(key string) ([]byte, error) {
	return s.getRaw(key)
}

func (s *KeyringStore) SetString(key, value string, _ Accessibility) error {
	return s.setRaw(key, []byte(value))
}

func (s *KeyringStore) SetBool(key string, value bool, _ Accessibility) error {
	return s.setRaw(key, encodeBool(value))
}

func (s *KeyringStore) SetData(key string, value []byte, _ Accessibility) error {
	return s.setRaw(key, value)
}

// Delete removes a key. Missing items are not an error.
func (s *KeyringStore) Delete(key string) error {
	err := keyring.Delete(s.service, key)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("keyring delete %q: %w", key, err)
	}
	return nil
}
