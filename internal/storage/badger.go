package storage

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v3"
)

// BadgerProvider implements Provider on Badger.
type BadgerProvider struct {
	db *badger.DB
}

// NewBadgerProvider opens the Badger database in dir with synchronous writes.
func NewBadgerProvider(dir string) (*BadgerProvider, error) {
	opts := badger.DefaultOptions(dir).
		WithSyncWrites(true).
		WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger %s: %w", dir, err)
	}
	return &BadgerProvider{db: db}, nil
}

func (p *BadgerProvider) Get(key []byte) ([]byte, error) {
	var value []byte
	err := p.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	return value, err
}

func (p *BadgerProvider) Put(key, value []byte) error {
	return p.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

func (p *BadgerProvider) Delete(key []byte) error {
	return p.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

func (p *BadgerProvider) Has(key []byte) (bool, error) {
	_, err := p.Get(key)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (p *BadgerProvider) Iterate(fn func(key, value []byte) error) error {
	err := p.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			if err := fn(item.KeyCopy(nil), value); err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, ErrStop) {
		return nil
	}
	return err
}

func (p *BadgerProvider) NewBatch() Batch {
	return &badgerBatch{wb: p.db.NewWriteBatch()}
}

func (p *BadgerProvider) Flush() error {
	return p.db.Sync()
}

func (p *BadgerProvider) Close() error {
	return p.db.Close()
}

type badgerBatch struct {
	wb  *badger.WriteBatch
	n   int
	err error
}

func (b *badgerBatch) Put(key, value []byte) {
	if b.err == nil {
		b.err = b.wb.Set(cloneBytes(key), cloneBytes(value))
	}
	b.n++
}

func (b *badgerBatch) Delete(key []byte) {
	if b.err == nil {
		b.err = b.wb.Delete(cloneBytes(key))
	}
	b.n++
}

func (b *badgerBatch) Len() int { return b.n }

func (b *badgerBatch) Write() error {
	if b.err != nil {
		b.wb.Cancel()
		return b.err
	}
	return b.wb.Flush()
}
