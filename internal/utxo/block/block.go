// Package block seals transactions into proof-of-work blocks.
package block

import (
	"strings"
	"time"

	"github.com/goodnatureofminers/utxoledger/internal/clock"
	"github.com/goodnatureofminers/utxoledger/internal/crypto"
	"github.com/goodnatureofminers/utxoledger/internal/utxo/encoding"
	"github.com/goodnatureofminers/utxoledger/internal/utxo/merkle"
	"github.com/goodnatureofminers/utxoledger/internal/utxo/model"
	"go.uber.org/zap"
)

var target = strings.Repeat("0", model.Difficulty)

// Miner builds blocks by searching for a nonce whose header hash meets the difficulty target.
type Miner struct {
	clock   clock.Clock
	metrics MiningMetrics
	logger  *zap.Logger
}

func NewMiner(clk clock.Clock, metrics MiningMetrics, logger *zap.Logger) *Miner {
	return &Miner{
		clock:   clk,
		metrics: metrics,
		logger:  logger.Named("miner"),
	}
}

// Mine seals txs on top of prevHash. It runs until a valid nonce is found.
func (m *Miner) Mine(txs []model.Transaction, prevHash string, height int64) *model.Block {
	b := &model.Block{
		Timestamp:     clock.UnixMilli(m.clock),
		Transactions:  txs,
		PrevBlockHash: prevHash,
		Height:        height,
	}

	started := time.Now()
	root := MerkleRoot(b)
	for {
		hash := headerHash(b.PrevBlockHash, root, b.Timestamp, b.Nonce)
		if meetsTarget(hash) {
			b.Hash = hash
			break
		}
		b.Nonce++
	}

	m.metrics.ObserveMined(b.Nonce+1, started)
	m.logger.Debug("block mined",
		zap.String("hash", b.Hash),
		zap.Int64("height", b.Height),
		zap.Int64("nonce", b.Nonce),
		zap.Int("transactions", len(b.Transactions)),
		zap.Duration("took", time.Since(started)),
	)
	return b
}

// HashOf recomputes the header hash of b from its fields, ignoring b.Hash.
func HashOf(b *model.Block) string {
	return headerHash(b.PrevBlockHash, MerkleRoot(b), b.Timestamp, b.Nonce)
}

// Validate reports whether b.Hash matches its recomputed header hash and meets the difficulty target.
func Validate(b *model.Block) bool {
	hash := HashOf(b)
	return hash == b.Hash && meetsTarget(hash)
}

// MerkleRoot returns the merkle root committed to by b's header.
func MerkleRoot(b *model.Block) []byte {
	ids := make([]string, len(b.Transactions))
	for i := range b.Transactions {
		ids[i] = b.Transactions[i].ID
	}
	return merkle.TransactionRoot(ids)
}

func headerHash(prevHash string, merkleRoot []byte, timestamp, nonce int64) string {
	return crypto.SHA256Hex(encoding.MarshalBlockHeader(prevHash, merkleRoot, timestamp, model.Difficulty, nonce))
}

func meetsTarget(hash string) bool {
	return strings.HasPrefix(hash, target)
}
