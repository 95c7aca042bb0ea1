// Package storage provides the embedded key-value stores the ledger persists to.
package storage

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned by Get for a missing key.
	ErrNotFound = errors.New("key not found")
	// ErrStop ends an Iterate early without an error.
	ErrStop = errors.New("stop iteration")
)

type (
	// Provider is an ordered embedded key-value store living in one directory.
	Provider interface {
		Get(key []byte) ([]byte, error)
		Put(key, value []byte) error
		Delete(key []byte) error
		Has(key []byte) (bool, error)
		// Iterate calls fn for every pair in ascending key order. Key and value are copies.
		Iterate(fn func(key, value []byte) error) error
		NewBatch() Batch
		// Flush makes every acknowledged write durable.
		Flush() error
		Close() error
	}

	// Batch groups writes that are applied atomically by Write.
	Batch interface {
		Put(key, value []byte)
		Delete(key []byte)
		Len() int
		Write() error
	}
)

// Backend names a Provider implementation.
type Backend string

const (
	LevelDB Backend = "leveldb"
	Bolt    Backend = "bolt"
	Badger  Backend = "badger"
)

// ParseBackend validates a backend name.
func ParseBackend(name string) (Backend, error) {
	switch b := Backend(strings.ToLower(name)); b {
	case LevelDB, Bolt, Badger:
		return b, nil
	case "":
		return LevelDB, nil
	default:
		return "", fmt.Errorf("unsupported storage backend %q", name)
	}
}

// Open opens (creating if needed) the store of backend in dir.
func Open(backend Backend, dir string) (Provider, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create store directory %s: %w", dir, err)
	}
	switch backend {
	case LevelDB, "":
		return NewLevelDBProvider(dir)
	case Bolt:
		return NewBoltProvider(dir)
	case Badger:
		return NewBadgerProvider(dir)
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", backend)
	}
}

// Opener opens the store living in dir.
type Opener func(dir string) (Provider, error)

// NewOpener returns an Opener for backend. Stores it opens report to metrics when metrics is not nil.
func NewOpener(backend Backend, metrics func(dir string) OperationMetrics) Opener {
	return func(dir string) (Provider, error) {
		p, err := Open(backend, dir)
		if err != nil {
			return nil, err
		}
		if metrics == nil {
			return p, nil
		}
		return NewObservedProvider(p, metrics(dir)), nil
	}
}

// Wipe removes the store directory. A missing directory is logged and ignored.
func Wipe(dir string, logger *zap.Logger) error {
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		logger.Info("no existing store to delete", zap.String("dir", dir))
		return nil
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("remove store directory %s: %w", dir, err)
	}
	return nil
}

func cloneBytes(b []byte) []byte {
	return append([]byte(nil), b...)
}
