// Package blockchain implements the append-only block log and its tip pointer.
package blockchain

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/utxoledger/internal/storage"
	"github.com/goodnatureofminers/utxoledger/internal/utxo/encoding"
	"github.com/goodnatureofminers/utxoledger/internal/utxo/model"
	"github.com/goodnatureofminers/utxoledger/internal/utxo/txn"
	"github.com/goodnatureofminers/utxoledger/pkg/safe"
	"go.uber.org/zap"
)

// GenesisData is the coinbase payload of the first block.
const GenesisData = "This is the Genesis Block"

var lastKey = []byte("LAST")

// ErrMalformedBlock is returned when a block's transactions do not start with exactly one coinbase.
var ErrMalformedBlock = errors.New("block must start with exactly one coinbase transaction")

// Blockchain is the block log: blocks keyed by hash plus the LAST pointer to the tip.
type Blockchain struct {
	store  storage.Provider
	miner  Miner
	logger *zap.Logger
	tip    string
}

// Create wipes dir and starts a new chain whose genesis block pays the reward to genesisAddress.
func Create(dir string, open storage.Opener, codec AddressDecoder, miner Miner, logger *zap.Logger, genesisAddress string) (*Blockchain, error) {
	logger = logger.Named("blockchain")
	coinbase, err := txn.NewCoinbase(codec, genesisAddress, GenesisData)
	if err != nil {
		return nil, err
	}
	if err := storage.Wipe(dir, logger); err != nil {
		return nil, model.StorageError("wipe block store", err)
	}

	store, err := open(dir)
	if err != nil {
		return nil, model.StorageError("open block store", err)
	}
	bc := &Blockchain{store: store, miner: miner, logger: logger}

	genesis := miner.Mine([]model.Transaction{*coinbase}, "", 0)
	if err := bc.append(genesis); err != nil {
		_ = store.Close()
		return nil, err
	}
	if err := store.Flush(); err != nil {
		_ = store.Close()
		return nil, model.StorageError("flush block store", err)
	}

	logger.Info("blockchain created", zap.String("genesis", genesis.Hash), zap.String("address", genesisAddress))
	return bc, nil
}

// Open loads an existing chain from dir. It fails with model.ErrChainMissing when no chain was created there.
func Open(dir string, open storage.Opener, miner Miner, logger *zap.Logger) (*Blockchain, error) {
	store, err := open(dir)
	if err != nil {
		return nil, model.StorageError("open block store", err)
	}

	tip, err := store.Get(lastKey)
	if errors.Is(err, storage.ErrNotFound) {
		_ = store.Close()
		return nil, model.ErrChainMissing
	}
	if err != nil {
		_ = store.Close()
		return nil, model.StorageError("read tip", err)
	}

	bc := &Blockchain{store: store, miner: miner, logger: logger.Named("blockchain"), tip: string(tip)}
	bc.logger.Debug("blockchain opened", zap.String("tip", bc.tip))
	return bc, nil
}

// Tip returns the hash of the last block.
func (bc *Blockchain) Tip() string {
	return bc.tip
}

// Close releases the underlying store.
func (bc *Blockchain) Close() error {
	return bc.store.Close()
}

// AddBlock verifies txs against the chain, mines them on top of the tip and appends the result.
// txs[0] must be the block's only coinbase. Every other transaction must carry valid signatures,
// spend distinct outputs that are unspent on the chain and create exactly the value it spends.
func (bc *Blockchain) AddBlock(txs []model.Transaction) (*model.Block, error) {
	if len(txs) == 0 || !txs[0].IsCoinbase() {
		return nil, ErrMalformedBlock
	}
	for i := 1; i < len(txs); i++ {
		if txs[i].IsCoinbase() {
			return nil, ErrMalformedBlock
		}
		ok, err := bc.VerifyTransaction(&txs[i])
		if err != nil {
			return nil, fmt.Errorf("verify transaction %s: %w", txs[i].ID, err)
		}
		if !ok {
			return nil, fmt.Errorf("transaction %s: %w", txs[i].ID, model.ErrBadSignature)
		}
	}
	if err := bc.checkSpends(txs[1:]); err != nil {
		return nil, err
	}

	tip, err := bc.Block(bc.tip)
	if err != nil {
		return nil, fmt.Errorf("load tip: %w", err)
	}

	b := bc.miner.Mine(txs, tip.Hash, tip.Height+1)
	if err := bc.append(b); err != nil {
		return nil, err
	}
	if err := bc.store.Flush(); err != nil {
		return nil, model.StorageError("flush block store", err)
	}

	bc.logger.Info("block added",
		zap.String("hash", b.Hash),
		zap.Int64("height", b.Height),
		zap.Int("transactions", len(b.Transactions)),
	)
	return b, nil
}

type outpoint struct {
	txID string
	vout int32
}

// checkSpends rejects transfers that reuse an output, spend one already consumed on the chain
// or do not balance.
func (bc *Blockchain) checkSpends(txs []model.Transaction) error {
	if len(txs) == 0 {
		return nil
	}
	unspent, err := bc.FindUTXO()
	if err != nil {
		return err
	}

	used := make(map[outpoint]string)
	for i := range txs {
		tx := &txs[i]
		var in uint64
		for _, input := range tx.Vin {
			op := outpoint{txID: input.PrevTxID, vout: input.PrevVout}
			if by, ok := used[op]; ok {
				return fmt.Errorf("transaction %s: output %s:%d also spent by %s: %w",
					tx.ID, op.txID, op.vout, by, model.ErrDoubleSpend)
			}
			prev, ok := unspentOutput(unspent[op.txID], op.vout)
			if !ok {
				return fmt.Errorf("transaction %s: output %s:%d: %w", tx.ID, op.txID, op.vout, model.ErrDoubleSpend)
			}
			used[op] = tx.ID
			if in, ok = addValue(in, prev.Value); !ok {
				return fmt.Errorf("transaction %s: input total overflows: %w", tx.ID, model.ErrUnbalanced)
			}
		}

		var out uint64
		for _, o := range tx.Vout {
			var ok bool
			if out, ok = addValue(out, o.Value); !ok {
				return fmt.Errorf("transaction %s: output total overflows: %w", tx.ID, model.ErrUnbalanced)
			}
		}
		if in != out {
			return fmt.Errorf("transaction %s: inputs sum to %d but outputs to %d: %w", tx.ID, in, out, model.ErrUnbalanced)
		}
	}
	return nil
}

func unspentOutput(record model.Outputs, vout int32) (model.Output, bool) {
	for _, u := range record.Outputs {
		if u.Index == vout {
			return u.Output, true
		}
	}
	return model.Output{}, false
}

func addValue(sum, v uint64) (uint64, bool) {
	if sum+v < sum {
		return 0, false
	}
	return sum + v, true
}

// append persists b and then advances LAST to it.
func (bc *Blockchain) append(b *model.Block) error {
	if err := bc.store.Put([]byte(b.Hash), encoding.MarshalBlock(b)); err != nil {
		return model.StorageError("put block", err)
	}
	if err := bc.store.Put(lastKey, []byte(b.Hash)); err != nil {
		return model.StorageError("put tip", err)
	}
	bc.tip = b.Hash
	return nil
}

// Block loads the block stored under hash.
func (bc *Blockchain) Block(hash string) (*model.Block, error) {
	if hash == "" {
		return nil, fmt.Errorf("empty block hash: %w", model.ErrNotFound)
	}
	data, err := bc.store.Get([]byte(hash))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("block %q: %w", hash, model.ErrNotFound)
	}
	if err != nil {
		return nil, model.StorageError("get block", err)
	}
	b, err := encoding.UnmarshalBlock(data)
	if err != nil {
		return nil, model.StorageError("decode block "+hash, err)
	}
	return b, nil
}

// Iterator walks the chain from the tip to genesis.
func (bc *Blockchain) Iterator() *Iterator {
	return &Iterator{bc: bc, next: bc.tip}
}

// ForEach calls fn for every block from the tip to genesis. Returning storage.ErrStop ends the walk early.
func (bc *Blockchain) ForEach(fn func(b *model.Block) error) error {
	it := bc.Iterator()
	for it.Next() {
		if err := fn(it.Block()); err != nil {
			if errors.Is(err, storage.ErrStop) {
				return nil
			}
			return err
		}
	}
	return it.Err()
}

// BestHeight returns the height of the tip, or -1 for an empty chain.
func (bc *Blockchain) BestHeight() (int64, error) {
	if bc.tip == "" {
		return -1, nil
	}
	b, err := bc.Block(bc.tip)
	if err != nil {
		return 0, err
	}
	return b.Height, nil
}

// BlockHashes returns every block hash from the tip to genesis.
func (bc *Blockchain) BlockHashes() ([]string, error) {
	var hashes []string
	err := bc.ForEach(func(b *model.Block) error {
		hashes = append(hashes, b.Hash)
		return nil
	})
	return hashes, err
}

// FindTransaction returns the most recent transaction with id.
func (bc *Blockchain) FindTransaction(id string) (*model.Transaction, error) {
	var found *model.Transaction
	err := bc.ForEach(func(b *model.Block) error {
		for i := range b.Transactions {
			if b.Transactions[i].ID == id {
				found = &b.Transactions[i]
				return storage.ErrStop
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("transaction %q: %w", id, model.ErrNotFound)
	}
	return found, nil
}

// FindUTXO recomputes every unspent output of the chain, keyed by transaction id.
// Surviving outputs keep their vout positions.
func (bc *Blockchain) FindUTXO() (map[string]model.Outputs, error) {
	utxos := make(map[string]model.Outputs)
	spent := make(map[string]map[int32]struct{})

	err := bc.ForEach(func(b *model.Block) error {
		for _, tx := range b.Transactions {
			for i, out := range tx.Vout {
				idx, err := safe.Int32(i)
				if err != nil {
					return fmt.Errorf("output %d of %s: %w", i, tx.ID, err)
				}
				if _, ok := spent[tx.ID][idx]; ok {
					continue
				}
				record := utxos[tx.ID]
				record.Outputs = append(record.Outputs, model.UTXO{Index: idx, Output: out})
				utxos[tx.ID] = record
			}
			if tx.IsCoinbase() {
				continue
			}
			for _, in := range tx.Vin {
				if spent[in.PrevTxID] == nil {
					spent[in.PrevTxID] = make(map[int32]struct{})
				}
				spent[in.PrevTxID][in.PrevVout] = struct{}{}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return utxos, nil
}

// SignTransaction signs tx with secretKey against the previous transactions found in the chain.
func (bc *Blockchain) SignTransaction(tx *model.Transaction, secretKey []byte) error {
	prevTxs, err := bc.previousTransactions(tx)
	if err != nil {
		return err
	}
	return txn.Sign(tx, secretKey, prevTxs)
}

// VerifyTransaction checks the signatures of tx against the previous transactions found in the chain.
func (bc *Blockchain) VerifyTransaction(tx *model.Transaction) (bool, error) {
	if tx.IsCoinbase() {
		return true, nil
	}
	prevTxs, err := bc.previousTransactions(tx)
	if err != nil {
		return false, err
	}
	return txn.Verify(tx, prevTxs)
}

func (bc *Blockchain) previousTransactions(tx *model.Transaction) (map[string]*model.Transaction, error) {
	prevTxs := make(map[string]*model.Transaction, len(tx.Vin))
	for _, in := range tx.Vin {
		if _, ok := prevTxs[in.PrevTxID]; ok {
			continue
		}
		prev, err := bc.FindTransaction(in.PrevTxID)
		if errors.Is(err, model.ErrNotFound) {
			return nil, &model.MissingPrevTxError{TxID: in.PrevTxID}
		}
		if err != nil {
			return nil, err
		}
		prevTxs[in.PrevTxID] = prev
	}
	return prevTxs, nil
}
