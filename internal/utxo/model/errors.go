package model

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrChainMissing is returned when the block log is opened before it was created.
	ErrChainMissing = errors.New("no existing blockchain found, create one first")
	// ErrUnknownWallet is returned when a sender or recipient is not in the wallet store.
	ErrUnknownWallet = errors.New("wallet not found")
	// ErrInvalidAddress is returned by the address codec for malformed text.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrInvalidAmount is returned for a transfer of zero units.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrInsufficientFunds matches every *InsufficientFundsError.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrMissingPrevTx matches every *MissingPrevTxError.
	ErrMissingPrevTx = errors.New("previous transaction not found")
	// ErrBadSignature is returned when transaction verification fails.
	ErrBadSignature = errors.New("invalid transaction signature")
	// ErrDoubleSpend is returned when an input references an output that is already spent.
	ErrDoubleSpend = errors.New("output already spent")
	// ErrUnbalanced is returned when a transfer's inputs and outputs carry different totals.
	ErrUnbalanced = errors.New("inputs and outputs do not balance")
	// ErrRateLimited matches every *RateLimitedError.
	ErrRateLimited = errors.New("rate limited")
	// ErrStorage marks embedded-store and serialization failures.
	ErrStorage = errors.New("storage error")
	// ErrNotFound is returned by lookups that miss.
	ErrNotFound = errors.New("not found")
)

// InsufficientFundsError reports the spendable balance found for a transfer.
type InsufficientFundsError struct {
	Balance uint64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: current balance %d", e.Balance)
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// MissingPrevTxError names the transaction an input references but which cannot be resolved.
type MissingPrevTxError struct {
	TxID string
}

func (e *MissingPrevTxError) Error() string {
	return fmt.Sprintf("previous transaction %q not found", e.TxID)
}

func (e *MissingPrevTxError) Is(target error) bool {
	return target == ErrMissingPrevTx
}

// RateLimitedError reports how long a submitter has to wait.
type RateLimitedError struct {
	Remaining time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited: please wait %d more seconds before making another transaction", int64(e.Remaining.Seconds()))
}

func (e *RateLimitedError) Is(target error) bool {
	return target == ErrRateLimited
}

// StorageError wraps err so that it matches ErrStorage while keeping the cause reachable.
func StorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}
