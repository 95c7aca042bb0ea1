// Package transport exposes the ledger over HTTP.
package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/goodnatureofminers/utxoledger/internal/utxo/model"
	"go.uber.org/zap"
)

// Handler serves the ledger operations as JSON endpoints.
type Handler struct {
	ledger  Ledger
	codec   AddressEncoder
	metrics RequestMetrics
	logger  *zap.Logger
}

// NewHandler returns a Handler instance.
func NewHandler(ledger Ledger, codec AddressEncoder, metrics RequestMetrics, logger *zap.Logger) *Handler {
	return &Handler{
		ledger:  ledger,
		codec:   codec,
		metrics: metrics,
		logger:  logger.Named("http"),
	}
}

// Routes registers every endpoint on a new mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	h.handle(mux, "GET /health", h.Health)
	h.handle(mux, "GET /blocks", h.Blocks)
	h.handle(mux, "POST /wallets", h.CreateWallet)
	h.handle(mux, "GET /wallets", h.ListWallets)
	h.handle(mux, "GET /balances/{address}", h.Balance)
	h.handle(mux, "POST /transfers", h.Transfer)
	h.handle(mux, "POST /reindex", h.Reindex)
	return mux
}

func (h *Handler) handle(mux *http.ServeMux, pattern string, fn http.HandlerFunc) {
	mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		fn(rec, r)
		h.metrics.ObserveRequest(pattern, rec.status, started)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	var limited *model.RateLimitedError
	if errors.As(err, &limited) {
		w.Header().Set("Retry-After", strconv.FormatInt(int64(limited.Remaining.Seconds()), 10))
	}
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidAddress), errors.Is(err, model.ErrInvalidAmount), errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrUnbalanced):
		return http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, model.ErrUnknownWallet), errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrChainMissing), errors.Is(err, model.ErrDoubleSpend):
		return http.StatusConflict
	case errors.Is(err, model.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
