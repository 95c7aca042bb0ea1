// Package utxoset maintains the UTXO index, a projection of the block log kept in its own store.
package utxoset

import (
	"errors"
	"fmt"
	"sort"

	"github.com/goodnatureofminers/utxoledger/internal/storage"
	"github.com/goodnatureofminers/utxoledger/internal/utxo/encoding"
	"github.com/goodnatureofminers/utxoledger/internal/utxo/model"
	"github.com/goodnatureofminers/utxoledger/pkg/safe"
	"go.uber.org/zap"
)

// Set is the UTXO index: transaction id to the still unspent outputs of that transaction.
type Set struct {
	store  storage.Provider
	source UTXOSource
	logger *zap.Logger
}

func New(store storage.Provider, source UTXOSource, logger *zap.Logger) *Set {
	return &Set{
		store:  store,
		source: source,
		logger: logger.Named("utxoset"),
	}
}

// Close releases the underlying store.
func (s *Set) Close() error {
	return s.store.Close()
}

// Reindex replaces the whole index with the unspent outputs recomputed from the block log.
// It returns the number of records written.
func (s *Set) Reindex() (int, error) {
	utxos, err := s.source.FindUTXO()
	if err != nil {
		return 0, fmt.Errorf("find utxo: %w", err)
	}

	batch := s.store.NewBatch()
	stale := 0
	err = s.store.Iterate(func(key, _ []byte) error {
		if _, ok := utxos[string(key)]; !ok {
			batch.Delete(key)
			stale++
		}
		return nil
	})
	if err != nil {
		return 0, model.StorageError("scan utxo index", err)
	}
	for id, outs := range utxos {
		batch.Put([]byte(id), encoding.MarshalOutputs(&outs))
	}
	if err := batch.Write(); err != nil {
		return 0, model.StorageError("write utxo index", err)
	}
	if err := s.store.Flush(); err != nil {
		return 0, model.StorageError("flush utxo index", err)
	}

	s.logger.Info("utxo index rebuilt", zap.Int("records", len(utxos)), zap.Int("removed", stale))
	return len(utxos), nil
}

// Update applies b to the index: outputs spent by its inputs are dropped, its own outputs are added.
func (s *Set) Update(b *model.Block) error {
	pending := make(map[string]*model.Outputs)

	for _, tx := range b.Transactions {
		if tx.IsCoinbase() {
			continue
		}
		for _, in := range tx.Vin {
			record, ok := pending[in.PrevTxID]
			if !ok {
				var err error
				if record, err = s.record(in.PrevTxID); err != nil {
					return err
				}
				pending[in.PrevTxID] = record
			}
			if !removeIndex(record, in.PrevVout) {
				return fmt.Errorf("output %s:%d is not unspent: %w", in.PrevTxID, in.PrevVout, model.ErrNotFound)
			}
		}
	}

	for _, tx := range b.Transactions {
		record := &model.Outputs{Outputs: make([]model.UTXO, 0, len(tx.Vout))}
		for i, out := range tx.Vout {
			idx, err := safe.Int32(i)
			if err != nil {
				return fmt.Errorf("output %d of %s: %w", i, tx.ID, err)
			}
			record.Outputs = append(record.Outputs, model.UTXO{Index: idx, Output: out})
		}
		pending[tx.ID] = record
	}

	batch := s.store.NewBatch()
	for id, record := range pending {
		if len(record.Outputs) == 0 {
			batch.Delete([]byte(id))
			continue
		}
		batch.Put([]byte(id), encoding.MarshalOutputs(record))
	}
	if err := batch.Write(); err != nil {
		return model.StorageError("update utxo index", err)
	}
	return nil
}

// SelectSpendable collects outputs locked to pubKeyHash until their sum reaches amount.
// Records are visited in transaction id order and outputs in vout order.
func (s *Set) SelectSpendable(pubKeyHash []byte, amount uint64) (uint64, model.Selection, error) {
	var accumulated uint64
	selection := make(model.Selection)

	err := s.forEach(func(id string, record *model.Outputs) error {
		for _, u := range record.Outputs {
			if accumulated >= amount {
				return storage.ErrStop
			}
			if u.Output.IsLockedWithKey(pubKeyHash) {
				accumulated += u.Output.Value
				selection[id] = append(selection[id], u.Index)
			}
		}
		if accumulated >= amount {
			return storage.ErrStop
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return accumulated, selection, nil
}

// FindOutputs returns every unspent output locked to pubKeyHash.
func (s *Set) FindOutputs(pubKeyHash []byte) ([]model.Output, error) {
	var outs []model.Output
	err := s.forEach(func(_ string, record *model.Outputs) error {
		for _, u := range record.Outputs {
			if u.Output.IsLockedWithKey(pubKeyHash) {
				outs = append(outs, u.Output)
			}
		}
		return nil
	})
	return outs, err
}

// Balance sums the unspent outputs locked to pubKeyHash.
func (s *Set) Balance(pubKeyHash []byte) (uint64, error) {
	outs, err := s.FindOutputs(pubKeyHash)
	if err != nil {
		return 0, err
	}
	var balance uint64
	for _, out := range outs {
		balance += out.Value
	}
	return balance, nil
}

// Count returns the number of transactions with unspent outputs.
func (s *Set) Count() (int, error) {
	count := 0
	err := s.store.Iterate(func(_, _ []byte) error {
		count++
		return nil
	})
	if err != nil {
		return 0, model.StorageError("count utxo index", err)
	}
	return count, nil
}

// All returns a copy of the whole index.
func (s *Set) All() (map[string]model.Outputs, error) {
	all := make(map[string]model.Outputs)
	err := s.forEach(func(id string, record *model.Outputs) error {
		all[id] = *record
		return nil
	})
	return all, err
}

func (s *Set) forEach(fn func(id string, record *model.Outputs) error) error {
	var fnErr error
	err := s.store.Iterate(func(key, value []byte) error {
		record, err := encoding.UnmarshalOutputs(value)
		if err != nil {
			return fmt.Errorf("decode utxo record %s: %w", key, err)
		}
		if err := fn(string(key), record); err != nil {
			if !errors.Is(err, storage.ErrStop) {
				fnErr = err
			}
			return err
		}
		return nil
	})
	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		return model.StorageError("scan utxo index", err)
	}
	return nil
}

func (s *Set) record(id string) (*model.Outputs, error) {
	data, err := s.store.Get([]byte(id))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("utxo record %s: %w", id, model.ErrNotFound)
	}
	if err != nil {
		return nil, model.StorageError("get utxo record", err)
	}
	record, err := encoding.UnmarshalOutputs(data)
	if err != nil {
		return nil, model.StorageError("decode utxo record "+id, err)
	}
	return record, nil
}

// removeIndex drops the entry for vout from record and reports whether it was present.
func removeIndex(record *model.Outputs, vout int32) bool {
	i := sort.Search(len(record.Outputs), func(i int) bool {
		return record.Outputs[i].Index >= vout
	})
	if i == len(record.Outputs) || record.Outputs[i].Index != vout {
		return false
	}
	record.Outputs = append(record.Outputs[:i], record.Outputs[i+1:]...)
	return true
}
