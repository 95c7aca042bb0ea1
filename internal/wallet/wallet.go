// Package wallet keeps the Ed25519 key pairs of the ledger's users, indexed by address.
package wallet

import (
	"crypto/rand"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/goodnatureofminers/utxoledger/internal/crypto"
	"github.com/goodnatureofminers/utxoledger/internal/storage"
	"github.com/goodnatureofminers/utxoledger/internal/utxo/encoding"
	"github.com/goodnatureofminers/utxoledger/internal/utxo/model"
	"go.uber.org/zap"
)

type (
	AddressEncoder interface {
		FromPublicKey(publicKey []byte) (string, error)
	}
)

// Store holds wallets in memory and persists them on SaveAll.
type Store struct {
	mu      sync.RWMutex
	store   storage.Provider
	codec   AddressEncoder
	random  io.Reader
	wallets map[string]model.Wallet
	logger  *zap.Logger
}

// NewStore loads every wallet persisted in store.
func NewStore(store storage.Provider, codec AddressEncoder, logger *zap.Logger) (*Store, error) {
	s := &Store{
		store:   store,
		codec:   codec,
		random:  rand.Reader,
		wallets: make(map[string]model.Wallet),
		logger:  logger.Named("wallets"),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	err := s.store.Iterate(func(key, value []byte) error {
		w, err := encoding.UnmarshalWallet(value)
		if err != nil {
			return fmt.Errorf("decode wallet %s: %w", key, err)
		}
		s.wallets[string(key)] = w
		return nil
	})
	if err != nil {
		return model.StorageError("load wallets", err)
	}
	s.logger.Debug("wallets loaded", zap.Int("count", len(s.wallets)))
	return nil
}

// CreateWallet generates a key pair and returns its address. The wallet is persisted by SaveAll.
func (s *Store) CreateWallet() (string, error) {
	secret, public, err := crypto.GenerateKeyPair(s.random)
	if err != nil {
		return "", fmt.Errorf("generate key pair: %w", err)
	}
	addr, err := s.codec.FromPublicKey(public)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.wallets[addr] = model.Wallet{SecretKey: secret, PublicKey: public}
	s.mu.Unlock()

	s.logger.Info("wallet created", zap.String("address", addr))
	return addr, nil
}

// Wallet returns the wallet of address.
func (s *Store) Wallet(address string) (model.Wallet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.wallets[address]
	return w, ok
}

// Addresses returns every known address in lexical order.
func (s *Store) Addresses() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	addrs := make([]string, 0, len(s.wallets))
	for addr := range s.wallets {
		addrs = append(addrs, addr)
	}
	sort.Strings(addrs)
	return addrs
}

// SaveAll writes every wallet to the store and flushes it.
func (s *Store) SaveAll() error {
	s.mu.RLock()
	batch := s.store.NewBatch()
	for addr, w := range s.wallets {
		batch.Put([]byte(addr), encoding.MarshalWallet(w))
	}
	s.mu.RUnlock()

	if err := batch.Write(); err != nil {
		return model.StorageError("save wallets", err)
	}
	if err := s.store.Flush(); err != nil {
		return model.StorageError("flush wallets", err)
	}
	return nil
}

// Close releases the underlying store.
func (s *Store) Close() error {
	return s.store.Close()
}
