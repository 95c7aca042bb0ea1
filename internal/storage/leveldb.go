package storage

import (
	"errors"
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	lerrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

var levelDBSync = &opt.WriteOptions{Sync: true}

// LevelDBProvider implements Provider on goleveldb.
type LevelDBProvider struct {
	once sync.Once
	db   *leveldb.DB
}

// NewLevelDBProvider opens the LevelDB database in dir, recovering it if corrupted.
func NewLevelDBProvider(dir string) (*LevelDBProvider, error) {
	db, err := leveldb.OpenFile(dir, nil)
	var corrupted *lerrors.ErrCorrupted
	if errors.As(err, &corrupted) {
		db, err = leveldb.RecoverFile(dir, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("open leveldb %s: %w", dir, err)
	}
	return &LevelDBProvider{db: db}, nil
}

func (p *LevelDBProvider) Get(key []byte) ([]byte, error) {
	value, err := p.db.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, ErrNotFound
	}
	return value, err
}

func (p *LevelDBProvider) Put(key, value []byte) error {
	return p.db.Put(key, value, nil)
}

func (p *LevelDBProvider) Delete(key []byte) error {
	return p.db.Delete(key, nil)
}

func (p *LevelDBProvider) Has(key []byte) (bool, error) {
	return p.db.Has(key, nil)
}

func (p *LevelDBProvider) Iterate(fn func(key, value []byte) error) error {
	iter := p.db.NewIterator(nil, nil)
	defer iter.Release()

	for iter.Next() {
		if err := fn(cloneBytes(iter.Key()), cloneBytes(iter.Value())); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return err
		}
	}
	return iter.Error()
}

func (p *LevelDBProvider) NewBatch() Batch {
	return &levelDBBatch{db: p.db, batch: new(leveldb.Batch)}
}

// Flush forces a synced write so that every earlier write reaches the journal on disk.
func (p *LevelDBProvider) Flush() error {
	b := new(leveldb.Batch)
	b.Put([]byte{}, nil)
	b.Delete([]byte{})
	return p.db.Write(b, levelDBSync)
}

func (p *LevelDBProvider) Close() error {
	var err error
	p.once.Do(func() {
		err = p.db.Close()
	})
	return err
}

type levelDBBatch struct {
	db    *leveldb.DB
	batch *leveldb.Batch
}

func (b *levelDBBatch) Put(key, value []byte) { b.batch.Put(key, value) }
func (b *levelDBBatch) Delete(key []byte)     { b.batch.Delete(key) }
func (b *levelDBBatch) Len() int              { return b.batch.Len() }

func (b *levelDBBatch) Write() error {
	return b.db.Write(b.batch, levelDBSync)
}
