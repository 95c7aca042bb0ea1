package blockchain

import (
	"errors"

	"github.com/goodnatureofminers/utxoledger/internal/utxo/model"
)

// Iterator lazily walks blocks from the tip towards genesis.
// The walk ends at the first hash with no stored block, which is "" past genesis.
//
//	it := bc.Iterator()
//	for it.Next() {
//		b := it.Block()
//	}
//	if err := it.Err(); err != nil { ... }
type Iterator struct {
	bc      *Blockchain
	next    string
	current *model.Block
	err     error
}

// Next advances to the previous block and reports whether there is one.
func (it *Iterator) Next() bool {
	if it.err != nil {
		return false
	}
	b, err := it.bc.Block(it.next)
	if errors.Is(err, model.ErrNotFound) {
		it.current = nil
		return false
	}
	if err != nil {
		it.err = err
		it.current = nil
		return false
	}
	it.current = b
	it.next = b.PrevBlockHash
	return true
}

// Block returns the block Next advanced to.
func (it *Iterator) Block() *model.Block {
	return it.current
}

// Err returns the first error that stopped the walk.
func (it *Iterator) Err() error {
	return it.err
}
