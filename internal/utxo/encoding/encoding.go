// Package encoding implements the compact binary form of every persisted or hashed ledger value.
// Fields are written in declaration order with protobuf wire framing; every field is emitted,
// including empty ones, so the same value always serializes to the same bytes.
package encoding

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/utxoledger/internal/utxo/model"
	"google.golang.org/protobuf/encoding/protowire"
)

var errWireType = errors.New("unexpected wire type")

// MarshalTransaction serializes tx.
func MarshalTransaction(tx *model.Transaction) []byte {
	return appendTransaction(nil, tx)
}

// UnmarshalTransaction decodes a value produced by MarshalTransaction.
func UnmarshalTransaction(b []byte) (*model.Transaction, error) {
	tx := &model.Transaction{}
	if err := decodeTransaction(b, tx); err != nil {
		return nil, fmt.Errorf("decode transaction: %w", err)
	}
	return tx, nil
}

// MarshalBlock serializes b.
func MarshalBlock(b *model.Block) []byte {
	var buf []byte
	buf = appendVarint(buf, 1, uint64(b.Timestamp))
	for i := range b.Transactions {
		buf = protowire.AppendTag(buf, 2, protowire.BytesType)
		buf = protowire.AppendBytes(buf, appendTransaction(nil, &b.Transactions[i]))
	}
	buf = appendString(buf, 3, b.PrevBlockHash)
	buf = appendString(buf, 4, b.Hash)
	buf = appendVarint(buf, 5, protowire.EncodeZigZag(b.Height))
	buf = appendVarint(buf, 6, uint64(b.Nonce))
	return buf
}

// UnmarshalBlock decodes a value produced by MarshalBlock.
func UnmarshalBlock(data []byte) (*model.Block, error) {
	b := &model.Block{}
	err := consumeFields(data, func(num protowire.Number, typ protowire.Type, in []byte) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeVarint(typ, in)
			b.Timestamp = int64(v)
			return n, err
		case 2:
			v, n, err := consumeBytes(typ, in)
			if err != nil || n < 0 {
				return n, err
			}
			var tx model.Transaction
			if err := decodeTransaction(v, &tx); err != nil {
				return 0, err
			}
			b.Transactions = append(b.Transactions, tx)
			return n, nil
		case 3:
			v, n, err := consumeBytes(typ, in)
			b.PrevBlockHash = string(v)
			return n, err
		case 4:
			v, n, err := consumeBytes(typ, in)
			b.Hash = string(v)
			return n, err
		case 5:
			v, n, err := consumeVarint(typ, in)
			b.Height = protowire.DecodeZigZag(v)
			return n, err
		case 6:
			v, n, err := consumeVarint(typ, in)
			b.Nonce = int64(v)
			return n, err
		}
		return protowire.ConsumeFieldValue(num, typ, in), nil
	})
	if err != nil {
		return nil, fmt.Errorf("decode block: %w", err)
	}
	return b, nil
}

// MarshalBlockHeader serializes the proof-of-work preimage of a block.
func MarshalBlockHeader(prevBlockHash string, merkleRoot []byte, timestamp int64, difficulty int, nonce int64) []byte {
	var buf []byte
	buf = appendString(buf, 1, prevBlockHash)
	buf = appendBytes(buf, 2, merkleRoot)
	buf = appendVarint(buf, 3, uint64(timestamp))
	buf = appendVarint(buf, 4, uint64(difficulty))
	buf = appendVarint(buf, 5, uint64(nonce))
	return buf
}

// MarshalOutputs serializes a UTXO index record.
func MarshalOutputs(outs *model.Outputs) []byte {
	var buf []byte
	for _, u := range outs.Outputs {
		var entry []byte
		entry = appendVarint(entry, 1, protowire.EncodeZigZag(int64(u.Index)))
		entry = protowire.AppendTag(entry, 2, protowire.BytesType)
		entry = protowire.AppendBytes(entry, appendOutput(nil, u.Output))
		buf = protowire.AppendTag(buf, 1, protowire.BytesType)
		buf = protowire.AppendBytes(buf, entry)
	}
	return buf
}

// UnmarshalOutputs decodes a value produced by MarshalOutputs.
func UnmarshalOutputs(data []byte) (*model.Outputs, error) {
	outs := &model.Outputs{}
	err := consumeFields(data, func(num protowire.Number, typ protowire.Type, in []byte) (int, error) {
		if num != 1 {
			return protowire.ConsumeFieldValue(num, typ, in), nil
		}
		v, n, err := consumeBytes(typ, in)
		if err != nil || n < 0 {
			return n, err
		}
		var u model.UTXO
		err = consumeFields(v, func(num protowire.Number, typ protowire.Type, in []byte) (int, error) {
			switch num {
			case 1:
				idx, n, err := consumeVarint(typ, in)
				u.Index = int32(protowire.DecodeZigZag(idx))
				return n, err
			case 2:
				raw, n, err := consumeBytes(typ, in)
				if err != nil || n < 0 {
					return n, err
				}
				return n, decodeOutput(raw, &u.Output)
			}
			return protowire.ConsumeFieldValue(num, typ, in), nil
		})
		if err != nil {
			return 0, err
		}
		outs.Outputs = append(outs.Outputs, u)
		return n, nil
	})
	if err != nil {
		return nil, fmt.Errorf("decode outputs: %w", err)
	}
	return outs, nil
}

// MarshalWallet serializes a key pair.
func MarshalWallet(w model.Wallet) []byte {
	var buf []byte
	buf = appendBytes(buf, 1, w.SecretKey)
	buf = appendBytes(buf, 2, w.PublicKey)
	return buf
}

// UnmarshalWallet decodes a value produced by MarshalWallet.
func UnmarshalWallet(data []byte) (model.Wallet, error) {
	var w model.Wallet
	err := consumeFields(data, func(num protowire.Number, typ protowire.Type, in []byte) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeBytes(typ, in)
			w.SecretKey = cloneBytes(v)
			return n, err
		case 2:
			v, n, err := consumeBytes(typ, in)
			w.PublicKey = cloneBytes(v)
			return n, err
		}
		return protowire.ConsumeFieldValue(num, typ, in), nil
	})
	if err != nil {
		return model.Wallet{}, fmt.Errorf("decode wallet: %w", err)
	}
	return w, nil
}

func appendTransaction(buf []byte, tx *model.Transaction) []byte {
	buf = appendString(buf, 1, tx.ID)
	for _, in := range tx.Vin {
		var entry []byte
		entry = appendString(entry, 1, in.PrevTxID)
		entry = appendVarint(entry, 2, protowire.EncodeZigZag(int64(in.PrevVout)))
		entry = appendBytes(entry, 3, in.Signature)
		entry = appendBytes(entry, 4, in.PubKey)
		buf = protowire.AppendTag(buf, 2, protowire.BytesType)
		buf = protowire.AppendBytes(buf, entry)
	}
	for _, out := range tx.Vout {
		buf = protowire.AppendTag(buf, 3, protowire.BytesType)
		buf = protowire.AppendBytes(buf, appendOutput(nil, out))
	}
	return buf
}

func appendOutput(buf []byte, out model.Output) []byte {
	buf = appendVarint(buf, 1, out.Value)
	buf = appendBytes(buf, 2, out.PubKeyHash)
	return buf
}

func decodeTransaction(data []byte, tx *model.Transaction) error {
	return consumeFields(data, func(num protowire.Number, typ protowire.Type, in []byte) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeBytes(typ, in)
			tx.ID = string(v)
			return n, err
		case 2:
			v, n, err := consumeBytes(typ, in)
			if err != nil || n < 0 {
				return n, err
			}
			input, err := decodeInput(v)
			if err != nil {
				return 0, err
			}
			tx.Vin = append(tx.Vin, input)
			return n, nil
		case 3:
			v, n, err := consumeBytes(typ, in)
			if err != nil || n < 0 {
				return n, err
			}
			var out model.Output
			if err := decodeOutput(v, &out); err != nil {
				return 0, err
			}
			tx.Vout = append(tx.Vout, out)
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, in), nil
	})
}

func decodeInput(data []byte) (model.Input, error) {
	var in model.Input
	err := consumeFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeBytes(typ, b)
			in.PrevTxID = string(v)
			return n, err
		case 2:
			v, n, err := consumeVarint(typ, b)
			in.PrevVout = int32(protowire.DecodeZigZag(v))
			return n, err
		case 3:
			v, n, err := consumeBytes(typ, b)
			in.Signature = cloneBytes(v)
			return n, err
		case 4:
			v, n, err := consumeBytes(typ, b)
			in.PubKey = cloneBytes(v)
			return n, err
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
	return in, err
}

func decodeOutput(data []byte, out *model.Output) error {
	return consumeFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeVarint(typ, b)
			out.Value = v
			return n, err
		case 2:
			v, n, err := consumeBytes(typ, b)
			out.PubKeyHash = cloneBytes(v)
			return n, err
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
}
