package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goodnatureofminers/utxoledger/internal/metrics"
	"github.com/goodnatureofminers/utxoledger/internal/transport"
	"github.com/goodnatureofminers/utxoledger/internal/utxo/block"
	"github.com/goodnatureofminers/utxoledger/internal/utxo/model"
	"go.uber.org/zap"
)

func create(a *app, cfg *createConfig, out io.Writer) error {
	if err := a.ledger.Create(cfg.Args.Address); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out, "Done! Blockchain created.")
	return err
}

func getBalance(a *app, cfg *getBalanceConfig, out io.Writer) error {
	if err := a.ledger.Open(); err != nil {
		return err
	}
	balance, err := a.ledger.Balance(cfg.Args.Address)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Balance of '%s': %d\n", cfg.Args.Address, balance)
	return err
}

func send(a *app, cfg *sendConfig, out io.Writer) error {
	if err := a.ledger.Open(); err != nil {
		return err
	}
	if _, err := a.ledger.Send(cfg.Args.From, cfg.Args.To, cfg.Args.Amount); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out, "Success!")
	return err
}

func createWallet(a *app, out io.Writer) error {
	addr, err := a.ledger.CreateWallet()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Success! address: %s\n", addr)
	return err
}

func listAddresses(a *app, out io.Writer) error {
	for _, addr := range a.ledger.Addresses() {
		if _, err := fmt.Fprintln(out, addr); err != nil {
			return err
		}
	}
	return nil
}

func reindex(a *app, out io.Writer) error {
	if err := a.ledger.Open(); err != nil {
		return err
	}
	n, err := a.ledger.Reindex()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Done! There are %d transactions in the UTXO set.\n", n)
	return err
}

func printChain(a *app, out io.Writer) error {
	if err := a.ledger.Open(); err != nil {
		return err
	}
	return a.ledger.Blocks(func(b *model.Block) error {
		return writeBlock(out, b, a.codec)
	})
}

type addressEncoder interface {
	Encode(pubKeyHash []byte) (string, error)
}

func writeBlock(out io.Writer, b *model.Block, codec addressEncoder) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "============ Block %s ============\n", b.Hash)
	fmt.Fprintf(&sb, "Height: %d\n", b.Height)
	fmt.Fprintf(&sb, "Prev. block: %s\n", b.PrevBlockHash)
	fmt.Fprintf(&sb, "Timestamp: %s\n", time.UnixMilli(b.Timestamp).UTC().Format(time.RFC3339Nano))
	fmt.Fprintf(&sb, "Nonce: %d\n", b.Nonce)
	fmt.Fprintf(&sb, "PoW: %t\n", block.Validate(b))
	for _, tx := range b.Transactions {
		fmt.Fprintf(&sb, "--- Transaction %s:\n", tx.ID)
		for i, in := range tx.Vin {
			if tx.IsCoinbase() {
				fmt.Fprintf(&sb, "     Input %d: coinbase %q\n", i, in.PubKey)
				continue
			}
			fmt.Fprintf(&sb, "     Input %d: %s:%d\n", i, in.PrevTxID, in.PrevVout)
		}
		for i, o := range tx.Vout {
			addr, err := codec.Encode(o.PubKeyHash)
			if err != nil {
				return err
			}
			fmt.Fprintf(&sb, "     Output %d: %d to %s\n", i, o.Value, addr)
		}
	}
	sb.WriteString("\n")
	_, err := io.WriteString(out, sb.String())
	return err
}

func verifyChain(ctx context.Context, a *app, out io.Writer) error {
	if err := a.ledger.Open(); err != nil {
		return err
	}
	report, err := a.ledger.VerifyChain(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Chain is valid: %d blocks, %d transactions, tip %s\n",
		report.Blocks, report.Transactions, report.Tip)
	return err
}

func serve(ctx context.Context, a *app, cfg *serveConfig) error {
	if err := a.ledger.Open(); err != nil {
		if !errors.Is(err, model.ErrChainMissing) {
			return err
		}
		a.logger.Warn("No blockchain found, chain endpoints answer 409 until one is created and the server restarted")
	}

	h := transport.NewHandler(a.ledger, a.codec, metrics.NewHTTP(), a.logger)
	s := transport.NewServer(cfg.Listen, h, cfg.CORSOrigins)
	go func() {
		<-ctx.Done()
		a.logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			a.logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	a.logger.Info("Starting HTTP server", zap.String("addr", cfg.Listen))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
