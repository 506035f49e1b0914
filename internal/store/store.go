// Package store provides the durable key-value storage backing the session layer.
package store

// Store is a device-local key-value byte store. Writes are always full-value
// overwrites; there are no partial updates to race against.
type Store interface {
	// Get returns the stored value for key, with ok=false when absent.
	Get(key string) (value []byte, ok bool, err error)
	Put(key string, value []byte) error
	Delete(key string) error
	Close() error
}
