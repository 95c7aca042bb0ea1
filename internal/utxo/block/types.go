package block

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	MiningMetrics interface {
		ObserveMined(attempts int64, started time.Time)
	}
)
