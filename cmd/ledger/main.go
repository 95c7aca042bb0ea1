// Package main is the command line entrypoint of the ledger.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	subCmd, global, config, err := parseCommandLine(os.Args[1:])
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, flagsErr.Message)
			return
		}
		printErrorAndExit(err)
	}

	logger, err := newLogger(global.LogLevel, global.LogJSON)
	if err != nil {
		printErrorAndExit(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, subCmd, global, config, os.Stdout, logger); err != nil {
		_ = logger.Sync()
		stop()
		printErrorAndExit(err)
	}
}

func run(ctx context.Context, subCmd string, global *globalConfig, config any, out io.Writer, logger *zap.Logger) error {
	a, err := newApp(global, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Error("Failed to close stores", zap.Error(err))
		}
	}()

	switch subCmd {
	case createSubCmd:
		return create(a, config.(*createConfig), out)
	case getBalanceSubCmd:
		return getBalance(a, config.(*getBalanceConfig), out)
	case sendSubCmd:
		return send(a, config.(*sendConfig), out)
	case createWalletSubCmd:
		return createWallet(a, out)
	case listAddressesSubCmd:
		return listAddresses(a, out)
	case reindexSubCmd:
		return reindex(a, out)
	case printChainSubCmd:
		return printChain(a, out)
	case verifyChainSubCmd:
		return verifyChain(ctx, a, out)
	case serveSubCmd:
		return serve(ctx, a, config.(*serveConfig))
	default:
		return fmt.Errorf("unknown sub-command '%s'", subCmd)
	}
}

func newLogger(level string, json bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	cfg := zap.NewDevelopmentConfig()
	if json {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func printErrorAndExit(err error) {
	fmt.Fprintf(os.Stderr, "error: %s\n", err)
	os.Exit(1)
}
