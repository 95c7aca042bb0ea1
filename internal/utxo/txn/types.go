package txn

import (
	"github.com/goodnatureofminers/utxoledger/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	AddressDecoder interface {
		Decode(address string) ([]byte, error)
	}
	WalletSource interface {
		Wallet(address string) (model.Wallet, bool)
	}
	SpendableSelector interface {
		SelectSpendable(pubKeyHash []byte, amount uint64) (uint64, model.Selection, error)
	}
	TransactionSigner interface {
		SignTransaction(tx *model.Transaction, secretKey []byte) error
	}
)
