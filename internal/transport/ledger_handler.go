package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/goodnatureofminers/utxoledger/pkg/safe"
)

var errBadRequest = errors.New("bad request")

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
}

type walletResponse struct {
	Address string `json:"address"`
}

type walletsResponse struct {
	Addresses []string `json:"addresses"`
}

type balanceResponse struct {
	Address string `json:"address"`
	Balance uint64 `json:"balance"`
}

type transferRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

type transferResponse struct {
	Block  string `json:"block"`
	Height int64  `json:"height"`
	TxID   string `json:"txid"`
}

type reindexResponse struct {
	Transactions int `json:"transactions"`
}

// CreateWallet generates and persists a new wallet.
func (h *Handler) CreateWallet(w http.ResponseWriter, _ *http.Request) {
	addr, err := h.ledger.CreateWallet()
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, walletResponse{Address: addr})
}

// ListWallets returns every known address.
func (h *Handler) ListWallets(w http.ResponseWriter, _ *http.Request) {
	addrs := h.ledger.Addresses()
	if addrs == nil {
		addrs = []string{}
	}
	h.writeJSON(w, http.StatusOK, walletsResponse{Addresses: addrs})
}

// Balance returns the spendable balance of the address path parameter.
func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	addr := r.PathValue("address")
	balance, err := h.ledger.Balance(addr)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, balanceResponse{Address: addr, Balance: balance})
}

// Transfer submits a transfer and answers once its block is mined.
func (h *Handler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.writeError(w, badRequest("decode body: %v", err))
		return
	}
	if req.From == "" || req.To == "" {
		h.writeError(w, badRequest("from and to are required"))
		return
	}
	amount, err := safe.Uint64(req.Amount)
	if err != nil {
		h.writeError(w, badRequest("amount: %v", err))
		return
	}

	b, err := h.ledger.Send(req.From, req.To, amount)
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp := transferResponse{Block: b.Hash, Height: b.Height}
	if len(b.Transactions) > 1 {
		resp.TxID = b.Transactions[len(b.Transactions)-1].ID
	}
	h.writeJSON(w, http.StatusCreated, resp)
}

// Reindex rebuilds the UTXO index.
func (h *Handler) Reindex(w http.ResponseWriter, _ *http.Request) {
	n, err := h.ledger.Reindex()
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, reindexResponse{Transactions: n})
}
