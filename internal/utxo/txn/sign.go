package txn

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/utxoledger/internal/crypto"
	"github.com/goodnatureofminers/utxoledger/internal/utxo/model"
)

// Sign authorizes every input of tx with secretKey and then recomputes tx.ID over the signed transaction.
// prevTxs must hold every transaction referenced by an input. Coinbase transactions are left untouched.
func Sign(tx *model.Transaction, secretKey []byte, prevTxs map[string]*model.Transaction) error {
	if tx.IsCoinbase() {
		return nil
	}
	preimages, err := signingPreimages(tx, prevTxs)
	if err != nil {
		return err
	}
	for i, preimage := range preimages {
		sig, err := crypto.Sign([]byte(preimage), secretKey)
		if err != nil {
			return fmt.Errorf("sign input %d: %w", i, err)
		}
		tx.Vin[i].Signature = sig
	}
	tx.ID = Hash(tx)
	return nil
}

// Verify checks that every input of tx is signed by the key the spent output is locked to.
// Coinbase transactions are always valid and a transfer without inputs never is.
// An unresolvable previous transaction is an error, a reference past its outputs verifies as false.
func Verify(tx *model.Transaction, prevTxs map[string]*model.Transaction) (bool, error) {
	if tx.IsCoinbase() {
		return true, nil
	}
	if len(tx.Vin) == 0 {
		return false, nil
	}
	preimages, err := signingPreimages(tx, prevTxs)
	if errors.Is(err, ErrOutputOutOfRange) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	for i, preimage := range preimages {
		in := tx.Vin[i]
		if !prevTxs[in.PrevTxID].Vout[in.PrevVout].IsLockedWithKey(crypto.HashPubKey(in.PubKey)) {
			return false, nil
		}
		if !crypto.Verify([]byte(preimage), in.PubKey, in.Signature) {
			return false, nil
		}
	}
	return true, nil
}

// signingPreimages returns, per input, the id of the trimmed copy of tx whose input i
// carries the public-key hash of the output it spends.
func signingPreimages(tx *model.Transaction, prevTxs map[string]*model.Transaction) ([]string, error) {
	for _, in := range tx.Vin {
		if prev, ok := prevTxs[in.PrevTxID]; !ok || prev == nil || prev.ID == "" {
			return nil, &model.MissingPrevTxError{TxID: in.PrevTxID}
		}
	}

	trimmed := trimmedCopy(tx)
	preimages := make([]string, len(tx.Vin))
	for i, in := range tx.Vin {
		prev := prevTxs[in.PrevTxID]
		if in.PrevVout < 0 || int(in.PrevVout) >= len(prev.Vout) {
			return nil, fmt.Errorf("input %d spends %s:%d: %w", i, in.PrevTxID, in.PrevVout, ErrOutputOutOfRange)
		}
		trimmed.Vin[i].PubKey = prev.Vout[in.PrevVout].PubKeyHash
		trimmed.ID = Hash(trimmed)
		preimages[i] = trimmed.ID
		trimmed.Vin[i].PubKey = nil
	}
	return preimages, nil
}

func trimmedCopy(tx *model.Transaction) *model.Transaction {
	cp := tx.Clone()
	for i := range cp.Vin {
		cp.Vin[i].Signature = nil
		cp.Vin[i].PubKey = nil
	}
	return cp
}
