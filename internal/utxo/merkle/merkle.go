// Package merkle computes the complete binary merkle tree root of a block's transactions.
package merkle

import (
	"github.com/goodnatureofminers/utxoledger/internal/crypto"
)

// Root returns the root of the complete binary merkle tree over leaves.
//
// The n leaves occupy nodes[n-1:], parents are filled from n-2 down to 0 and
// nodes[i] = sha256(nodes[2i+1] || nodes[2i+2]). A single leaf is its own
// root and an empty set yields nil.
func Root(leaves [][]byte) []byte {
	n := len(leaves)
	if n == 0 {
		return nil
	}
	nodes := make([][]byte, 2*n-1)
	copy(nodes[n-1:], leaves)
	for i := n - 2; i >= 0; i-- {
		buf := make([]byte, 0, len(nodes[2*i+1])+len(nodes[2*i+2]))
		buf = append(buf, nodes[2*i+1]...)
		buf = append(buf, nodes[2*i+2]...)
		nodes[i] = crypto.SHA256(buf)
	}
	return append([]byte(nil), nodes[0]...)
}

// TransactionRoot builds the root over transaction ids, using the bytes of each hex id string as a leaf.
func TransactionRoot(ids []string) []byte {
	leaves := make([][]byte, len(ids))
	for i, id := range ids {
		leaves[i] = []byte(id)
	}
	return Root(leaves)
}
