package model

import "bytes"

// Output is spendable value locked to the holder of a public-key hash.
type Output struct {
	Value      uint64
	PubKeyHash []byte
}

// IsLockedWithKey reports whether the output can be claimed by pubKeyHash.
func (o Output) IsLockedWithKey(pubKeyHash []byte) bool {
	return bytes.Equal(o.PubKeyHash, pubKeyHash)
}

// Input references exactly one output of a prior transaction.
// For a coinbase input PrevTxID is empty, PrevVout is -1 and PubKey carries arbitrary data.
type Input struct {
	PrevTxID  string
	PrevVout  int32
	Signature []byte
	PubKey    []byte
}

// CoinbaseVout is the PrevVout marker of a coinbase input.
const CoinbaseVout int32 = -1

// Transaction moves value from referenced outputs to new outputs.
type Transaction struct {
	ID   string
	Vin  []Input
	Vout []Output
}

// IsCoinbase reports whether tx mints new value instead of spending prior outputs.
func (tx *Transaction) IsCoinbase() bool {
	return len(tx.Vin) == 1 && tx.Vin[0].PrevTxID == "" && tx.Vin[0].PrevVout == CoinbaseVout
}

// Clone returns a deep copy of tx.
func (tx *Transaction) Clone() *Transaction {
	cp := &Transaction{
		ID:   tx.ID,
		Vin:  make([]Input, len(tx.Vin)),
		Vout: make([]Output, len(tx.Vout)),
	}
	for i, in := range tx.Vin {
		cp.Vin[i] = Input{
			PrevTxID:  in.PrevTxID,
			PrevVout:  in.PrevVout,
			Signature: cloneBytes(in.Signature),
			PubKey:    cloneBytes(in.PubKey),
		}
	}
	for i, out := range tx.Vout {
		cp.Vout[i] = Output{Value: out.Value, PubKeyHash: cloneBytes(out.PubKeyHash)}
	}
	return cp
}

// OutputSum returns the total value of tx outputs.
func (tx *Transaction) OutputSum() uint64 {
	var sum uint64
	for _, out := range tx.Vout {
		sum += out.Value
	}
	return sum
}

func cloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return append([]byte(nil), b...)
}
