// Package txn builds, hashes, signs and verifies ledger transactions.
package txn

import (
	"errors"
	"fmt"
	"sort"

	"github.com/goodnatureofminers/utxoledger/internal/crypto"
	"github.com/goodnatureofminers/utxoledger/internal/utxo/encoding"
	"github.com/goodnatureofminers/utxoledger/internal/utxo/model"
)

// Reward is the value minted by every coinbase transaction.
const Reward uint64 = 100

// ErrOutputOutOfRange is returned when an input points past the outputs of its previous transaction.
var ErrOutputOutOfRange = errors.New("referenced output does not exist")

// Hash returns the hex SHA-256 of tx serialized with an empty id.
func Hash(tx *model.Transaction) string {
	cp := *tx
	cp.ID = ""
	return crypto.SHA256Hex(encoding.MarshalTransaction(&cp))
}

// NewCoinbase mints Reward to the address to. An empty data is replaced by a payload naming the recipient.
func NewCoinbase(codec AddressDecoder, to, data string) (*model.Transaction, error) {
	if data == "" {
		data = fmt.Sprintf("Reward to '%s'", to)
	}
	pubKeyHash, err := codec.Decode(to)
	if err != nil {
		return nil, err
	}

	tx := &model.Transaction{
		Vin: []model.Input{{
			PrevVout: model.CoinbaseVout,
			PubKey:   []byte(data),
		}},
		Vout: []model.Output{{Value: Reward, PubKeyHash: pubKeyHash}},
	}
	tx.ID = Hash(tx)
	return tx, nil
}

// Builder assembles signed transfers from wallets and the spendable outputs of the UTXO index.
type Builder struct {
	codec    AddressDecoder
	wallets  WalletSource
	selector SpendableSelector
	signer   TransactionSigner
}

func NewBuilder(codec AddressDecoder, wallets WalletSource, selector SpendableSelector, signer TransactionSigner) *Builder {
	return &Builder{
		codec:    codec,
		wallets:  wallets,
		selector: selector,
		signer:   signer,
	}
}

// NewTransfer moves amount from the wallet at from to the wallet at to, returning change to from.
func (b *Builder) NewTransfer(from, to string, amount uint64) (*model.Transaction, error) {
	if amount == 0 {
		return nil, model.ErrInvalidAmount
	}
	sender, ok := b.wallets.Wallet(from)
	if !ok {
		return nil, fmt.Errorf("source %q: %w", from, model.ErrUnknownWallet)
	}
	if _, ok := b.wallets.Wallet(to); !ok {
		return nil, fmt.Errorf("destination %q: %w", to, model.ErrUnknownWallet)
	}
	toHash, err := b.codec.Decode(to)
	if err != nil {
		return nil, err
	}
	fromHash, err := b.codec.Decode(from)
	if err != nil {
		return nil, err
	}

	accumulated, selection, err := b.selector.SelectSpendable(crypto.HashPubKey(sender.PublicKey), amount)
	if err != nil {
		return nil, fmt.Errorf("select spendable outputs: %w", err)
	}
	if accumulated < amount {
		return nil, &model.InsufficientFundsError{Balance: accumulated}
	}

	tx := &model.Transaction{
		Vin:  selectionInputs(selection, sender.PublicKey),
		Vout: []model.Output{{Value: amount, PubKeyHash: toHash}},
	}
	if accumulated > amount {
		tx.Vout = append(tx.Vout, model.Output{Value: accumulated - amount, PubKeyHash: fromHash})
	}
	tx.ID = Hash(tx)

	if err := b.signer.SignTransaction(tx, sender.SecretKey); err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}
	return tx, nil
}

func selectionInputs(selection model.Selection, publicKey []byte) []model.Input {
	ids := make([]string, 0, len(selection))
	for id := range selection {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var vin []model.Input
	for _, id := range ids {
		for _, vout := range selection[id] {
			vin = append(vin, model.Input{
				PrevTxID: id,
				PrevVout: vout,
				PubKey:   append([]byte(nil), publicKey...),
			})
		}
	}
	return vin
}
