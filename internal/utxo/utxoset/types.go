package utxoset

import (
	"github.com/goodnatureofminers/utxoledger/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	UTXOSource interface {
		FindUTXO() (map[string]model.Outputs, error)
	}
)
