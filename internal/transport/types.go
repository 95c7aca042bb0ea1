package transport

import (
	"time"

	"github.com/goodnatureofminers/utxoledger/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Ledger interface {
		Balance(address string) (uint64, error)
		Send(from, to string, amount uint64) (*model.Block, error)
		CreateWallet() (string, error)
		Addresses() []string
		Reindex() (int, error)
		Blocks(fn func(b *model.Block) error) error
	}
	AddressEncoder interface {
		Encode(pubKeyHash []byte) (string, error)
	}
	RequestMetrics interface {
		ObserveRequest(route string, code int, started time.Time)
	}
)
