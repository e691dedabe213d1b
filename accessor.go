package secretbind

import "errors"

// Value is the closed set of storable kinds. There is deliberately no
// struct or interface variant: a generic "encode anything" path is not
// offered, so unsupported types fail at compile time rather than on
// first use.
type Value interface {
	string | bool | []byte
}

// Options configures an Accessor at construction. Zero fields fall back
// to the process-wide defaults (see DefaultStore and
// DefaultAccessibility), captured once when New runs.
type Options struct {
	Store         Store
	Accessibility Accessibility
}

// Accessor reads and writes one value of type T under one key. It holds
// no resources of its own and performs no caching: every operation is a
// round trip to the store.
//
// Accessors are safe for concurrent use to the extent the underlying
// Store is; they add no coordination of their own.
type Accessor[T Value] struct {
	key    string
	store  Store
	access Accessibility
}

// New builds an accessor for key. The store and access policy are fixed
// for the accessor's lifetime; later changes to the process-wide
// defaults do not affect it.
func New[T Value](key string, opts Options) (*Accessor[T], error) {
	if key == "" {
		return nil, errors.New("secretbind: empty key")
	}
	store := opts.Store
	if store == nil {
		store = DefaultStore()
	}
	access := opts.Accessibility
	if access == AccessibilityDefault {
		access = DefaultAccessibility()
	}
	return &Accessor[T]{key: key, store: store, access: access}, nil
}

// Key returns the key this accessor operates on.
func (a *Accessor[T]) Key() string { return a.key }

// Accessibility returns the policy captured at construction.
func (a *Accessor[T]) Accessibility() Accessibility { return a.access }

// Get returns the stored value and true, or the zero value and false if
// the key is absent or the stored bytes cannot be read as T. Backend
// failures read as absence; Get never returns an error.
func (a *Accessor[T]) Get() (T, bool) {
	var zero T
	switch any(zero).(type) {
	case string:
		v, err := a.store.GetString(a.key)
		if err != nil {
			return zero, false
		}
		return any(v).(T), true
	case bool:
		v, err := a.store.GetBool(a.key)
		if err != nil {
			return zero, false
		}
		return any(v).(T), true
	case []byte:
		v, err := a.store.GetData(a.key)
		if err != nil {
			return zero, false
		}
		return any(v).(T), true
	}
	return zero, false
}

// Set upserts value under the accessor's key and policy, overwriting any
// prior value. A backend failure is returned as a *WriteError.
func (a *Accessor[T]) Set(value T) error {
	var err error
	switch v := any(value).(type) {
	case string:
		err = a.store.SetString(a.key, v, a.access)
	case bool:
		err = a.store.SetBool(a.key, v, a.access)
	case []byte:
		err = a.store.SetData(a.key, v, a.access)
	}
	if err != nil {
		return &WriteError{Key: a.key, Err: err}
	}
	return nil
}

// Clear removes the key from the store. It is the write-absent
// operation: a cleared key and a never-written key are the same state,
// and clearing an absent key is a no-op.
func (a *Accessor[T]) Clear() error {
	if err := a.store.Delete(a.key); err != nil {
		return &WriteError{Key: a.key, Err: err}
	}
	return nil
}
