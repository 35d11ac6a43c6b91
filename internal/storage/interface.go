package storage

import "errors"

var (
	// ErrNotFound is returned by Get when a key has never been written
	ErrNotFound = errors.New("key not found")
	// ErrNotLoaded is returned when a provider is used before Init or Load
	ErrNotLoaded = errors.New("storage not loaded")
	// ErrNotInitialized is returned by Load when the backing store does not exist yet
	ErrNotInitialized = errors.New("storage not initialized, run 'studylit init' first")
)

// Provider is a durable key-value store holding serialized records. Writes replace the
// whole value for a key; there are no partial updates.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Records
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Keys() ([]string, error)

	// Utils
	GetConfigPath() string
}
