// Package storage provides a small keyed string store with the semantics of
// browser local storage: whole values are read and written under a key.
package storage

// LocalStorage is a keyed string store.
type LocalStorage interface {
	// GetItem returns the value stored under key and whether it exists.
	GetItem(key string) (string, bool, error)
	// SetItem replaces the value stored under key.
	SetItem(key, value string) error
	// RemoveItem deletes key. Removing a missing key is not an error.
	RemoveItem(key string) error
}
