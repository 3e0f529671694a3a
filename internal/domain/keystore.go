package domain

import (
	"maps"
	"slices"
)

// KeystoreData maps credential names (privateKey, apiKey, ...) to their values.
type KeystoreData map[string]string

// Clone returns an independent copy; a nil receiver yields an empty map.
func (d KeystoreData) Clone() KeystoreData {
	out := make(KeystoreData, len(d))
	maps.Copy(out, d)
	return out
}

// SortedKeys returns the keys in lexical order.
func (d KeystoreData) SortedKeys() []string {
	return slices.Sorted(maps.Keys(d))
}

// Keystore is the contract signing providers depend on. Set and Delete
// only touch the in-memory view; Write persists it.
type Keystore interface {
	Path() string
	Read() (KeystoreData, error)
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Keys() ([]string, error)
	GetAll() (KeystoreData, error)
	Write() error
}
