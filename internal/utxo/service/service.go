// Package service runs the ledger operations on top of the block log, the UTXO index and the wallets.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/utxoledger/internal/utxo/model"
	"github.com/goodnatureofminers/utxoledger/internal/utxo/txn"
	"github.com/goodnatureofminers/utxoledger/internal/utxo/validation"
	"go.uber.org/zap"
)

// Deps are the collaborators of a Service.
type Deps struct {
	Factory          ChainFactory
	Wallets          Wallets
	Codec            AddressCodec
	Guard            Guard
	Metrics          SubmissionMetrics
	ValidatorMetrics ValidatorMetrics
	// VerifyWorkers bounds the goroutines verifying signatures in VerifyChain.
	VerifyWorkers int
}

// LedgerService serializes every chain mutation behind one lock.
type LedgerService struct {
	mu     sync.RWMutex
	deps   Deps
	chain  Chain
	utxos  UTXOIndex
	logger *zap.Logger
}

// New returns a service without a chain. Call Open or Create before chain operations.
func New(deps Deps, logger *zap.Logger) *LedgerService {
	return &LedgerService{
		deps:   deps,
		logger: logger.Named("ledger"),
	}
}

// Open loads the existing chain. A missing chain is returned as model.ErrChainMissing and leaves
// the service usable for wallet operations.
func (s *LedgerService) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	chain, utxos, err := s.deps.Factory.Open()
	if err != nil {
		return err
	}
	s.chain, s.utxos = chain, utxos
	return nil
}

// Create replaces any existing chain with a new one paying the genesis reward to address,
// then rebuilds the UTXO index.
func (s *LedgerService) Create(address string) error {
	if _, err := s.deps.Codec.Decode(address); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.closeChain(); err != nil {
		return err
	}
	chain, utxos, err := s.deps.Factory.Create(address)
	if err != nil {
		return fmt.Errorf("create blockchain: %w", err)
	}
	s.chain, s.utxos = chain, utxos

	if _, err := s.utxos.Reindex(); err != nil {
		return fmt.Errorf("reindex: %w", err)
	}
	s.logger.Info("ledger created", zap.String("address", address))
	return nil
}

// Balance sums the unspent outputs locked to address.
func (s *LedgerService) Balance(address string) (uint64, error) {
	pubKeyHash, err := s.deps.Codec.Decode(address)
	if err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.chain == nil {
		return 0, model.ErrChainMissing
	}
	return s.utxos.Balance(pubKeyHash)
}

// Send transfers amount from one wallet to another and mines it in a new block together with
// a reward for the sender.
func (s *LedgerService) Send(from, to string, amount uint64) (b *model.Block, err error) {
	started := time.Now()
	defer func() {
		s.deps.Metrics.ObserveSubmission(err, started)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.chain == nil {
		return nil, model.ErrChainMissing
	}
	// Only known senders reach the guard, which keeps its table bounded by the wallet file.
	if _, err := s.deps.Codec.Decode(from); err != nil {
		return nil, err
	}
	if _, ok := s.deps.Wallets.Wallet(from); !ok {
		return nil, fmt.Errorf("source %q: %w", from, model.ErrUnknownWallet)
	}
	if err := s.deps.Guard.Execute(from); err != nil {
		return nil, err
	}

	builder := txn.NewBuilder(s.deps.Codec, s.deps.Wallets, s.utxos, s.chain)
	tx, err := builder.NewTransfer(from, to, amount)
	if err != nil {
		return nil, err
	}

	height, err := s.chain.BestHeight()
	if err != nil {
		return nil, fmt.Errorf("best height: %w", err)
	}
	reward, err := txn.NewCoinbase(s.deps.Codec, from, fmt.Sprintf("Reward! height=%d", height+1))
	if err != nil {
		return nil, err
	}

	b, err = s.chain.AddBlock([]model.Transaction{*reward, *tx})
	if err != nil {
		return nil, fmt.Errorf("add block: %w", err)
	}
	if err := s.utxos.Update(b); err != nil {
		s.logger.Error("utxo index update failed, rebuilding", zap.String("block", b.Hash), zap.Error(err))
		if _, rerr := s.utxos.Reindex(); rerr != nil {
			return nil, fmt.Errorf("update utxo index: %w", errors.Join(err, rerr))
		}
	}

	s.logger.Info("transfer mined",
		zap.String("from", from),
		zap.String("to", to),
		zap.Uint64("amount", amount),
		zap.String("tx", tx.ID),
		zap.String("block", b.Hash),
		zap.Int64("height", b.Height),
	)
	return b, nil
}

// CreateWallet generates a wallet, persists every wallet and returns the new address.
func (s *LedgerService) CreateWallet() (string, error) {
	addr, err := s.deps.Wallets.CreateWallet()
	if err != nil {
		return "", err
	}
	if err := s.deps.Wallets.SaveAll(); err != nil {
		return "", err
	}
	return addr, nil
}

// Addresses lists the addresses of every known wallet.
func (s *LedgerService) Addresses() []string {
	return s.deps.Wallets.Addresses()
}

// Reindex rebuilds the UTXO index from the block log and returns the number of indexed transactions.
func (s *LedgerService) Reindex() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.chain == nil {
		return 0, model.ErrChainMissing
	}
	if _, err := s.utxos.Reindex(); err != nil {
		return 0, err
	}
	return s.utxos.Count()
}

// Blocks calls fn for every block from the tip to genesis.
func (s *LedgerService) Blocks(fn func(b *model.Block) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.chain == nil {
		return model.ErrChainMissing
	}
	return s.chain.ForEach(fn)
}

// VerifyChain audits the whole chain.
func (s *LedgerService) VerifyChain(ctx context.Context) (*validation.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.chain == nil {
		return nil, model.ErrChainMissing
	}
	v := validation.New(s.chain, s.deps.VerifyWorkers, s.deps.ValidatorMetrics, s.logger)
	return v.Validate(ctx)
}

// Close releases the chain stores.
func (s *LedgerService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closeChain()
}

func (s *LedgerService) closeChain() error {
	if s.chain == nil {
		return nil
	}
	err := errors.Join(s.utxos.Close(), s.chain.Close())
	s.chain, s.utxos = nil, nil
	if err != nil {
		return fmt.Errorf("close chain: %w", err)
	}
	return nil
}
