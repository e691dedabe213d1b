//go:build !darwin

package secretbind

// NewSystemStore returns a KeyringStore on non-darwin platforms, backed
// by the OS credential manager (Secret Service on Linux, Credential
// Manager on Windows).
func NewSystemStore() *KeyringStore {
	return NewKeyringStore(ServiceName)
}

// NewSystemStoreFor returns a KeyringStore scoped to service.
func NewSystemStoreFor(service string) *KeyringStore {
	return NewKeyringStore(service)
}
