package blockchain

import (
	"github.com/goodnatureofminers/utxoledger/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Miner interface {
		Mine(txs []model.Transaction, prevHash string, height int64) *model.Block
	}
	AddressDecoder interface {
		Decode(address string) ([]byte, error)
	}
)
