package transport

import (
	"net/http"
	"strconv"

	"github.com/goodnatureofminers/utxoledger/internal/storage"
	"github.com/goodnatureofminers/utxoledger/internal/utxo/block"
	"github.com/goodnatureofminers/utxoledger/internal/utxo/model"
)

type healthResponse struct {
	Status string `json:"status"`
}

type outputView struct {
	Value   uint64 `json:"value"`
	Address string `json:"address"`
}

type inputView struct {
	PrevTxID string `json:"prev_txid,omitempty"`
	PrevVout int32  `json:"prev_vout"`
	Data     string `json:"data,omitempty"`
}

type transactionView struct {
	ID       string       `json:"id"`
	Coinbase bool         `json:"coinbase"`
	Inputs   []inputView  `json:"inputs"`
	Outputs  []outputView `json:"outputs"`
}

type blockView struct {
	Hash         string            `json:"hash"`
	PrevHash     string            `json:"prev_hash"`
	Height       int64             `json:"height"`
	Timestamp    int64             `json:"timestamp"`
	Nonce        int64             `json:"nonce"`
	PoW          bool              `json:"pow"`
	Transactions []transactionView `json:"transactions"`
}

// Health reports server health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, healthResponse{Status: "healthy"})
}

// Blocks lists blocks from the tip down. The optional limit query parameter bounds the count.
func (h *Handler) Blocks(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.writeError(w, badRequest("limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	views := []blockView{}
	err := h.ledger.Blocks(func(b *model.Block) error {
		view, err := h.blockView(b)
		if err != nil {
			return err
		}
		views = append(views, view)
		if limit > 0 && len(views) == limit {
			return storage.ErrStop
		}
		return nil
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, views)
}

func (h *Handler) blockView(b *model.Block) (blockView, error) {
	view := blockView{
		Hash:         b.Hash,
		PrevHash:     b.PrevBlockHash,
		Height:       b.Height,
		Timestamp:    b.Timestamp,
		Nonce:        b.Nonce,
		PoW:          block.Validate(b),
		Transactions: make([]transactionView, 0, len(b.Transactions)),
	}
	for i := range b.Transactions {
		tx := &b.Transactions[i]
		txView := transactionView{
			ID:       tx.ID,
			Coinbase: tx.IsCoinbase(),
			Inputs:   make([]inputView, 0, len(tx.Vin)),
			Outputs:  make([]outputView, 0, len(tx.Vout)),
		}
		for _, in := range tx.Vin {
			iv := inputView{PrevTxID: in.PrevTxID, PrevVout: in.PrevVout}
			if txView.Coinbase {
				iv.Data = string(in.PubKey)
			}
			txView.Inputs = append(txView.Inputs, iv)
		}
		for _, out := range tx.Vout {
			addr, err := h.codec.Encode(out.PubKeyHash)
			if err != nil {
				return blockView{}, err
			}
			txView.Outputs = append(txView.Outputs, outputView{Value: out.Value, Address: addr})
		}
		view.Transactions = append(view.Transactions, txView)
	}
	return view, nil
}
