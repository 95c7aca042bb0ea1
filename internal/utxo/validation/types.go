package validation

import (
	"time"

	"github.com/goodnatureofminers/utxoledger/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockSource interface {
		ForEach(fn func(b *model.Block) error) error
	}
	ValidatorMetrics interface {
		ObserveVerification(err error, blocks int, started time.Time)
	}
)
