package service

import (
	"time"

	"github.com/goodnatureofminers/utxoledger/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Chain interface {
		AddBlock(txs []model.Transaction) (*model.Block, error)
		BestHeight() (int64, error)
		ForEach(fn func(b *model.Block) error) error
		SignTransaction(tx *model.Transaction, secretKey []byte) error
		Close() error
	}
	UTXOIndex interface {
		Reindex() (int, error)
		Update(b *model.Block) error
		SelectSpendable(pubKeyHash []byte, amount uint64) (uint64, model.Selection, error)
		Balance(pubKeyHash []byte) (uint64, error)
		Count() (int, error)
		Close() error
	}
	ChainFactory interface {
		Create(genesisAddress string) (Chain, UTXOIndex, error)
		Open() (Chain, UTXOIndex, error)
	}
	Wallets interface {
		CreateWallet() (string, error)
		Wallet(address string) (model.Wallet, bool)
		Addresses() []string
		SaveAll() error
	}
	Guard interface {
		Execute(address string) error
	}
	AddressCodec interface {
		Decode(address string) ([]byte, error)
	}
	SubmissionMetrics interface {
		ObserveSubmission(err error, started time.Time)
	}
	ValidatorMetrics interface {
		ObserveVerification(err error, blocks int, started time.Time)
	}
)
