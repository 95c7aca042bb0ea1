package service

import (
	"fmt"

	"github.com/goodnatureofminers/utxoledger/internal/storage"
	"github.com/goodnatureofminers/utxoledger/internal/utxo/blockchain"
	"github.com/goodnatureofminers/utxoledger/internal/utxo/utxoset"
	"go.uber.org/zap"
)

// StoreFactory opens the block log and the UTXO index from their directories.
type StoreFactory struct {
	blocksDir string
	utxosDir  string
	open      storage.Opener
	codec     blockchain.AddressDecoder
	miner     blockchain.Miner
	logger    *zap.Logger
}

func NewStoreFactory(
	blocksDir, utxosDir string,
	open storage.Opener,
	codec blockchain.AddressDecoder,
	miner blockchain.Miner,
	logger *zap.Logger,
) *StoreFactory {
	return &StoreFactory{
		blocksDir: blocksDir,
		utxosDir:  utxosDir,
		open:      open,
		codec:     codec,
		miner:     miner,
		logger:    logger,
	}
}

// Create wipes both stores and starts a new chain. The returned index is empty until reindexed.
func (f *StoreFactory) Create(genesisAddress string) (Chain, UTXOIndex, error) {
	if err := storage.Wipe(f.utxosDir, f.logger); err != nil {
		return nil, nil, fmt.Errorf("wipe utxo index: %w", err)
	}
	bc, err := blockchain.Create(f.blocksDir, f.open, f.codec, f.miner, f.logger, genesisAddress)
	if err != nil {
		return nil, nil, err
	}
	return f.withIndex(bc)
}

// Open loads an existing chain and its index.
func (f *StoreFactory) Open() (Chain, UTXOIndex, error) {
	bc, err := blockchain.Open(f.blocksDir, f.open, f.miner, f.logger)
	if err != nil {
		return nil, nil, err
	}
	return f.withIndex(bc)
}

func (f *StoreFactory) withIndex(bc *blockchain.Blockchain) (Chain, UTXOIndex, error) {
	store, err := f.open(f.utxosDir)
	if err != nil {
		_ = bc.Close()
		return nil, nil, fmt.Errorf("open utxo index: %w", err)
	}
	return bc, utxoset.New(store, bc, f.logger), nil
}
