//go:build integration

package secretbind

import (
	"bytes"
	"testing"
)

// Integration tests use the real platform credential store.
// Run with: go test -tags integration .
//
// On macOS this requires an unlocked login Keychain and an interactive
// session (first run may prompt for Keychain access approval).

func integrationStore() Store {
	return NewSystemStoreFor("com.mcrich23.secretbind.test")
}

func cleanupIntegration(t *testing.T, s Store, keys ...string) {
	t.Helper()
	for _, k := range keys {
		s.Delete(k)
	}
}

func TestSystemSetAndGet(t *testing.T) {
	s := integrationStore()
	key := "test/integration-set-get"
	defer cleanupIntegration(t, s, key)

	if err := s.SetString(key, "hello-keychain", AccessibilityDefault); err != nil {
		t.Fatalf("SetString: %v", err)
	}

	val, err := s.GetString(key)
	if err != nil {
		t.Fatalf("GetString: %v", err)
	}
	if val != "hello-keychain" {
		t.Errorf("expected 'hello-keychain', got %q", val)
	}
}

func TestSystemOverwrite(t *testing.T) {
	s := integrationStore()
	key := "test/integration-overwrite"
	defer cleanupIntegration(t, s, key)

	s.SetString(key, "first", AccessibilityDefault)
	s.SetString(key, "second", AccessibilityDefault)

	val, err := s.GetString(key)
	if err != nil {
		t.Fatalf("GetString: %v", err)
	}
	if val != "second" {
		t.Errorf("expected 'second', got %q", val)
	}
}

func TestSystemBlobRoundTrip(t *testing.T) {
	s := integrationStore()
	key := "test/integration-blob"
	defer cleanupIntegration(t, s, key)

	want := []byte{0x00, 0x01, 0xFE, 0xFF}
	if err := s.SetData(key, want, AccessibilityDefault); err != nil {
		t.Fatalf("SetData: %v", err)
	}

	got, err := s.GetData(key)
	if err != nil {
		t.Fatalf("GetData: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSystemDeleteThenGet(t *testing.T) {
	s := integrationStore()
	key := "test/integration-delete"
	defer cleanupIntegration(t, s, key)

	s.SetString(key, "to-delete", AccessibilityDefault)

	if err := s.Delete(key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(key); err != nil {
		t.Fatalf("Delete (repeat): %v", err)
	}

	if _, err := s.GetString(key); err == nil {
		t.Error("expected error after delete")
	}
}

func TestSystemAccessorWithPolicy(t *testing.T) {
	s := integrationStore()
	key := "test/integration-policy"
	defer cleanupIntegration(t, s, key)

	a, err := New[string](key, Options{
		Store:         s,
		Accessibility: AccessibleWhenUnlockedThisDeviceOnly,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := a.Set("scoped-value"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	val, ok := a.Get()
	if !ok || val != "scoped-value" {
		t.Errorf("expected 'scoped-value', got %q, %v", val, ok)
	}
}
