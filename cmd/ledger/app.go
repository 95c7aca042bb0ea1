package main

import (
	"errors"
	"path/filepath"

	"github.com/goodnatureofminers/utxoledger/internal/address"
	"github.com/goodnatureofminers/utxoledger/internal/clock"
	"github.com/goodnatureofminers/utxoledger/internal/guard"
	"github.com/goodnatureofminers/utxoledger/internal/metrics"
	"github.com/goodnatureofminers/utxoledger/internal/storage"
	"github.com/goodnatureofminers/utxoledger/internal/utxo/block"
	"github.com/goodnatureofminers/utxoledger/internal/utxo/model"
	"github.com/goodnatureofminers/utxoledger/internal/utxo/service"
	"github.com/goodnatureofminers/utxoledger/internal/wallet"
	"go.uber.org/zap"
)

type app struct {
	ledger  *service.LedgerService
	wallets *wallet.Store
	codec   *address.Codec
	logger  *zap.Logger
}

func newApp(cfg *globalConfig, logger *zap.Logger) (*app, error) {
	backend, err := storage.ParseBackend(cfg.DBBackend)
	if err != nil {
		return nil, err
	}
	codec, err := address.NewCodec(model.Network(cfg.Network))
	if err != nil {
		return nil, err
	}

	open := storage.NewOpener(backend, func(dir string) storage.OperationMetrics {
		return metrics.NewStore(filepath.Base(dir), string(backend))
	})
	walletStore, err := open(filepath.Join(cfg.DataDir, "wallets"))
	if err != nil {
		return nil, err
	}
	wallets, err := wallet.NewStore(walletStore, codec, logger)
	if err != nil {
		_ = walletStore.Close()
		return nil, err
	}

	clk := clock.New()
	miner := block.NewMiner(clk, metrics.NewMiner(), logger)
	factory := service.NewStoreFactory(
		filepath.Join(cfg.DataDir, "blocks"),
		filepath.Join(cfg.DataDir, "utxos"),
		open,
		codec,
		miner,
		logger,
	)
	ledger := service.New(service.Deps{
		Factory:          factory,
		Wallets:          wallets,
		Codec:            codec,
		Guard:            guard.New(clk, cfg.RateLimitInterval, logger),
		Metrics:          metrics.NewSubmissions(),
		ValidatorMetrics: metrics.NewValidator(),
		VerifyWorkers:    cfg.VerifyWorkers,
	}, logger)

	return &app{
		ledger:  ledger,
		wallets: wallets,
		codec:   codec,
		logger:  logger,
	}, nil
}

func (a *app) Close() error {
	return errors.Join(a.ledger.Close(), a.wallets.Close())
}
