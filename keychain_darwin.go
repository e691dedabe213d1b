//go:build darwin

package secretbind

import (
	"errors"
	"fmt"

	gokeychain "github.com/keybase/go-keychain"
)

// SystemStore keeps values in the macOS Keychain as generic passwords:
//   - Service: the store's service name (ServiceName by default)
//   - Account: the key
//   - Label: "secretbind: <key>" (for Keychain Access.app visibility)
type SystemStore struct {
	service        string
	synchronizable bool
}

// NewSystemStore creates a Keychain-backed store under ServiceName.
func NewSystemStore() *SystemStore {
	return &SystemStore{service: ServiceName}
}

// NewSystemStoreFor creates a Keychain-backed store scoped to service.
func NewSystemStoreFor(service string) *SystemStore {
	return &SystemStore{service: service}
}

// SetSynchronizable marks future writes for iCloud Keychain sync. Items
// written with a ThisDeviceOnly policy are never synced regardless.
func (s *SystemStore) SetSynchronizable(on bool) {
	s.synchronizable = on
}

var accessibleRef = map[Accessibility]gokeychain.Accessible{
	AccessibilityDefault:                     gokeychain.AccessibleDefault,
	AccessibleWhenUnlocked:                   gokeychain.AccessibleWhenUnlocked,
	AccessibleAfterFirstUnlock:               gokeychain.AccessibleAfterFirstUnlock,
	AccessibleWhenUnlockedThisDeviceOnly:     gokeychain.AccessibleWhenUnlockedThisDeviceOnly,
	AccessibleAfterFirstUnlockThisDeviceOnly: gokeychain.AccessibleAfterFirstUnlockThisDeviceOnly,
	AccessibleWhenPasscodeSetThisDeviceOnly:  gokeychain.AccessibleWhenPasscodeSetThisDeviceOnly,
}

func (s *SystemStore) setRaw(key string, data []byte, access Accessibility) error {
	// Update = delete + add; AddItem fails on duplicates.
	_ = s.Delete(key)

	item := gokeychain.NewGenericPassword(
		s.service,
		key,
		fmt.Sprintf("secretbind: %s", key),
		data,
		"",
	)
	if s.synchronizable {
		item.SetSynchronizable(gokeychain.SynchronizableYes)
	} else {
		item.SetSynchronizable(gokeychain.SynchronizableNo)
	}
	if accessible, ok := accessibleRef[access]; ok && access != AccessibilityDefault {
		item.SetAccessible(accessible)
	}

	if err := gokeychain.AddItem(item); err != nil {
		return fmt.Errorf("keychain add %q: %w", key, err)
	}
	return nil
}

func (s *SystemStore) getRaw(key string) ([]byte, error) {
	data, err := gokeychain.GetGenericPassword(s.service, key, "", "")
	if err != nil {
		if errors.Is(err, gokeychain.ErrorItemNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("keychain get %q: %w", key, err)
	}
	// GetGenericPassword reports a missing item as empty data, not an
	// error; absent key and empty value are the same state here.
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return data, nil
}

func (s *SystemStore) GetString(key string) (string, error) {
	data, err := s.getRaw(key)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *SystemStore) GetBool(key string) (bool, error) {
	data, err := s.getRaw(key)
	if err != nil {
		return false, err
	}
	return decodeBool(key, data)
}

func (s *SystemStore) GetData(key string) ([]byte, error) {
	return s.getRaw(key)
}

func (s *SystemStore) SetString(key, value string, access Accessibility) error {
	return s.setRaw(key, []byte(value), access)
}

func (s *SystemStore) SetBool(key string, value bool, access Accessibility) error {
	return s.setRaw(key, encodeBool(value), access)
}

func (s *SystemStore) SetData(key string, value []byte, access Accessibility) error {
	return s.setRaw(key, value, access)
}

// Delete removes a key from the Keychain. Missing items are not an
// error.
func (s *SystemStore) Delete(key string) error {
	err := gokeychain.DeleteGenericPasswordItem(s.service, key)
	if err != nil && !errors.Is(err, gokeychain.ErrorItemNotFound) {
		return fmt.Errorf("keychain delete %q: %w", key, err)
	}
	return nil
}

// List returns all keys stored under this store's service.
func (s *SystemStore) List() ([]string, error) {
	accounts, err := gokeychain.GetGenericPasswordAccounts(s.service)
	if err != nil {
		if errors.Is(err, gokeychain.ErrorItemNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("keychain list: %w", err)
	}
	return accounts, nil
}

// DeleteAll removes every item under this store's service.
func (s *SystemStore) DeleteAll() error {
	keys, err := s.List()
	if err != nil {
		return err
	}
	for _, k := range keys {
		if err := s.Delete(k); err != nil {
			return err
		}
	}
	return nil
}
