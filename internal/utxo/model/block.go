// Package model defines the ledger data model shared by every UTXO component.
package model

// Difficulty is the number of leading '0' hex characters a block hash must carry.
const Difficulty = 4

// Block carries an ordered list of transactions sealed by proof of work.
// Transactions[0] is the block's only coinbase.
type Block struct {
	Timestamp     int64 // unix milliseconds
	Transactions  []Transaction
	PrevBlockHash string
	Hash          string
	Height        int64
	Nonce         int64
}

// IsGenesis reports whether b has no predecessor.
func (b *Block) IsGenesis() bool {
	return b.PrevBlockHash == ""
}
