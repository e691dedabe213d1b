package secretbind

import "sync"

// Process-wide defaults consulted by New when Options leaves the store
// or policy unset. Both are configuration-time state: set them during
// startup, before accessors are constructed. Accessors capture the
// defaults at construction and never re-read them.

var (
	defaultsMu    sync.Mutex
	defaultStore  Store
	defaultAccess Accessibility
)

// DefaultStore returns the process-wide default store, constructing the
// platform system store on first use if none was set.
func DefaultStore() Store {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	if defaultStore == nil {
		defaultStore = NewSystemStore()
	}
	return defaultStore
}

// SetDefaultStore replaces the process-wide default store. Accessors
// already constructed keep the store they captured.
func SetDefaultStore(s Store) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaultStore = s
}

// DefaultAccessibility returns the process-wide default access policy.
// The zero value, AccessibilityDefault, defers to the backend's own
// default protection class — it does not track later changes to this
// setting.
func DefaultAccessibility() Accessibility {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	return defaultAccess
}

// SetDefaultAccessibility sets the policy used by accessors constructed
// without an explicit one. Existing accessors are unaffected.
func SetDefaultAccessibility(a Accessibility) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaultAccess = a
}
