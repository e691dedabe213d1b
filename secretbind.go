// Package secretbind binds a single key in a secure credential store to a
// typed Go value.
//
// An Accessor couples a key, a backing Store, and an access policy into a
// get/set/clear surface for exactly one value of a declared type. Three
// value kinds are supported — string, bool, and []byte — and the set is
// closed: the compiler rejects any other type parameter.
//
// Persistence is entirely the Store's concern. The darwin SystemStore
// keeps values in the macOS Keychain as generic passwords; KeyringStore
// uses the OS credential manager on any platform; MemoryStore backs
// tests.
package secretbind

import (
	"errors"
	"fmt"
)

// ServiceName is the default service attribute under which backends
// scope their items.
const ServiceName = "com.mcrich23.secretbind"

// ErrNotFound is returned by a Store when a key does not exist.
var ErrNotFound = errors.New("secret not found")

// Store is the backend capability an Accessor consumes. Implementations
// own the persistence format; the per-kind methods define the only
// encodings an accessor relies on.
//
// Delete is idempotent: removing an absent key is not an error. A Get on
// an absent key returns an error wrapping ErrNotFound; a Get on a value
// that cannot be interpreted as the requested kind returns a decode
// error. Accessors treat both as absence.
type Store interface {
	GetString(key string) (string, error)
	GetBool(key string) (bool, error)
	GetData(key string) ([]byte, error)
	SetString(key, value string, access Accessibility) error
	SetBool(key string, value bool, access Accessibility) error
	SetData(key string, value []byte, access Accessibility) error
	Delete(key string) error
}

// Lister is an optional Store extension for enumerating stored keys.
type Lister interface {
	List() ([]string, error)
}

// Wiper is an optional Store extension for removing every item the
// store owns.
type Wiper interface {
	DeleteAll() error
}

// WriteError reports a failed Set or Clear. The backend cause is
// available via errors.Unwrap.
type WriteError struct {
	Key string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("secretbind: write %q: %v", e.Key, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
