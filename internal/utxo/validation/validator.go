// Package validation audits a whole chain: links, proof of work, block composition,
// signatures, double spends and value conservation.
package validation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/utxoledger/internal/utxo/block"
	"github.com/goodnatureofminers/utxoledger/internal/utxo/model"
	"github.com/goodnatureofminers/utxoledger/internal/utxo/txn"
	"github.com/goodnatureofminers/utxoledger/pkg/workerpool"
	"go.uber.org/zap"
)

// ErrInvalidChain matches every *Violation.
var ErrInvalidChain = errors.New("invalid chain")

// Violation describes the first broken rule found in a block.
type Violation struct {
	BlockHash string
	Height    int64
	Reason    string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("block %s at height %d: %s", v.BlockHash, v.Height, v.Reason)
}

func (v *Violation) Is(target error) bool {
	return target == ErrInvalidChain
}

// Report summarizes a successful verification.
type Report struct {
	Blocks       int
	Transactions int
	Tip          string
}

type outpoint struct {
	txID string
	vout int32
}

type signatureCheck struct {
	block   *model.Block
	tx      *model.Transaction
	prevTxs map[string]*model.Transaction
}

// Validator checks every block of a chain.
type Validator struct {
	source  BlockSource
	workers int
	metrics ValidatorMetrics
	logger  *zap.Logger
}

// New returns a Validator verifying signatures on up to workers goroutines.
func New(source BlockSource, workers int, metrics ValidatorMetrics, logger *zap.Logger) *Validator {
	return &Validator{
		source:  source,
		workers: workers,
		metrics: metrics,
		logger:  logger.Named("validator"),
	}
}

// Validate walks the chain from genesis to tip and returns the first *Violation found.
func (v *Validator) Validate(ctx context.Context) (report *Report, err error) {
	started := time.Now()
	var blocks []*model.Block
	defer func() {
		v.metrics.ObserveVerification(err, len(blocks), started)
	}()

	blocks, err = v.load()
	if err != nil {
		return nil, err
	}

	report = &Report{Blocks: len(blocks)}
	if len(blocks) > 0 {
		report.Tip = blocks[len(blocks)-1].Hash
	}

	txs := make(map[string]*model.Transaction)
	spent := make(map[outpoint]string)
	var checks []signatureCheck

	for i, b := range blocks {
		if err := checkHeader(b, blocks, i); err != nil {
			return nil, err
		}
		for j := range b.Transactions {
			tx := &b.Transactions[j]
			report.Transactions++
			if err := checkTransaction(b, j, tx, txs, spent); err != nil {
				return nil, err
			}
			if !tx.IsCoinbase() {
				checks = append(checks, signatureCheck{block: b, tx: tx, prevTxs: previous(tx, txs)})
			}
		}
		// outputs become spendable from the next block on
		for j := range b.Transactions {
			txs[b.Transactions[j].ID] = &b.Transactions[j]
		}
	}

	err = workerpool.Process(ctx, v.workers, checks, func(_ context.Context, c signatureCheck) error {
		ok, err := txn.Verify(c.tx, c.prevTxs)
		if err != nil {
			return violation(c.block, "transaction %s: %v", c.tx.ID, err)
		}
		if !ok {
			return violation(c.block, "transaction %s: %v", c.tx.ID, model.ErrBadSignature)
		}
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}

	v.logger.Info("chain verified",
		zap.Int("blocks", report.Blocks),
		zap.Int("transactions", report.Transactions),
		zap.Duration("took", time.Since(started)),
	)
	return report, nil
}

// load returns the chain ordered from genesis to tip.
func (v *Validator) load() ([]*model.Block, error) {
	var blocks []*model.Block
	if err := v.source.ForEach(func(b *model.Block) error {
		blocks = append(blocks, b)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("load chain: %w", err)
	}
	for i, j := 0, len(blocks)-1; i < j; i, j = i+1, j-1 {
		blocks[i], blocks[j] = blocks[j], blocks[i]
	}
	return blocks, nil
}

func checkHeader(b *model.Block, blocks []*model.Block, i int) error {
	if i == 0 {
		if !b.IsGenesis() || b.Height != 0 {
			return violation(b, "chain does not start at a genesis block")
		}
	} else {
		prev := blocks[i-1]
		if b.PrevBlockHash != prev.Hash {
			return violation(b, "previous hash %s does not match %s", b.PrevBlockHash, prev.Hash)
		}
		if b.Height != prev.Height+1 {
			return violation(b, "height does not follow %d", prev.Height)
		}
	}
	if !block.Validate(b) {
		return violation(b, "hash does not match header or misses the difficulty target")
	}
	if len(b.Transactions) == 0 {
		return violation(b, "no transactions")
	}
	return nil
}

func checkTransaction(b *model.Block, pos int, tx *model.Transaction, txs map[string]*model.Transaction, spent map[outpoint]string) error {
	if tx.IsCoinbase() != (pos == 0) {
		return violation(b, "transaction %d: coinbase must be first and only first", pos)
	}
	if id := txn.Hash(tx); id != tx.ID {
		return violation(b, "transaction %s: id does not match contents", tx.ID)
	}
	if _, dup := txs[tx.ID]; dup {
		return violation(b, "transaction %s: duplicate id", tx.ID)
	}
	if tx.IsCoinbase() {
		return nil
	}

	var in uint64
	for _, input := range tx.Vin {
		prev, ok := txs[input.PrevTxID]
		if !ok {
			return violation(b, "transaction %s: %v", tx.ID, &model.MissingPrevTxError{TxID: input.PrevTxID})
		}
		if input.PrevVout < 0 || int(input.PrevVout) >= len(prev.Vout) {
			return violation(b, "transaction %s: output %s:%d does not exist", tx.ID, input.PrevTxID, input.PrevVout)
		}
		op := outpoint{txID: input.PrevTxID, vout: input.PrevVout}
		if by, ok := spent[op]; ok {
			return violation(b, "transaction %s: output %s:%d already spent by %s", tx.ID, op.txID, op.vout, by)
		}
		spent[op] = tx.ID
		in += prev.Vout[input.PrevVout].Value
	}
	if out := tx.OutputSum(); in != out {
		return violation(b, "transaction %s: inputs sum to %d but outputs to %d", tx.ID, in, out)
	}
	return nil
}

func previous(tx *model.Transaction, txs map[string]*model.Transaction) map[string]*model.Transaction {
	prevTxs := make(map[string]*model.Transaction, len(tx.Vin))
	for _, in := range tx.Vin {
		prevTxs[in.PrevTxID] = txs[in.PrevTxID]
	}
	return prevTxs
}

func violation(b *model.Block, format string, args ...any) *Violation {
	return &Violation{BlockHash: b.Hash, Height: b.Height, Reason: fmt.Sprintf(format, args...)}
}
