package secretbind

import (
	"fmt"
	"sort"
	"sync"
)

// MemoryStore is an in-memory implementation of Store for testing. It
// records the accessibility each key was last written with, so tests
// can observe policy propagation.
type MemoryStore struct {
	mu     sync.RWMutex
	items  map[string][]byte
	access map[string]Accessibility
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items:  make(map[string][]byte),
		access: make(map[string]Accessibility),
	}
}

func (s *MemoryStore) get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.items[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return data, nil
}

func (s *MemoryStore) set(key string, data []byte, access Accessibility) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = data
	s.access[key] = access
	return nil
}

func (s *MemoryStore) GetString(key string) (string, error) {
	data, err := s.get(key)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *MemoryStore) GetBool(key string) (bool, error) {
	data, err := s.get(key)
	if err != nil {
		return false, err
	}
	return decodeBool(key, data)
}

func (s *MemoryStore) GetData(key string) ([]byte, error) {
	data, err := s.get(key)
	if err != nil {
		return nil, err
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

func (s *MemoryStore) SetString(key, value string, access Accessibility) error {
	return s.set(key, []byte(value), access)
}

func (s *MemoryStore) SetBool(key string, value bool, access Accessibility) error {
	return s.set(key, encodeBool(value), access)
}

func (s *MemoryStore) SetData(key string, value []byte, access Accessibility) error {
	cp := make([]byte, len(value))
	copy(cp, value)
	return s.set(key, cp, access)
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	delete(s.access, key)
	return nil
}

func (s *MemoryStore) List() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.items))
	for k := range s.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *MemoryStore) DeleteAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string][]byte)
	s.access = make(map[string]Accessibility)
	return nil
}

// AccessibilityFor reports the policy key was last written with, or
// AccessibilityDefault if the key is absent.
func (s *MemoryStore) AccessibilityFor(key string) Accessibility {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access[key]
}
