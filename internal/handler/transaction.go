package handler

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Dan9191/finance-service/internal/apperr"
	"github.com/Dan9191/finance-service/internal/models"
	"github.com/Dan9191/finance-service/internal/service"
)

type createTransactionRequest struct {
	Amount      decimal.Decimal        `json:"amount"`
	Type        models.TransactionType `json:"type"`
	Category    string                 `json:"category"`
	Description string                 `json:"description"`
	IsFixed     bool                   `json:"is_fixed"`
	Recurrence  models.Recurrence      `json:"recurrence"`
	Date        *time.Time             `json:"date"`
}

// CreateTransaction records a transaction for the caller
func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	var req createTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	tx, err := h.svc.CreateTransaction(r.Context(), uid, service.TransactionInput{
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Description: req.Description,
		IsFixed:     req.IsFixed,
		Recurrence:  req.Recurrence,
		Date:        req.Date,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, tx)
}

// ListTransactions returns the caller's transactions, optionally ?from=YYYY-MM-DD
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	var from *time.Time
	if raw := r.URL.Query().Get("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			h.writeError(w, r, apperr.Validation("list transactions", "from must be YYYY-MM-DD, got %q", raw))
			return
		}
		from = &t
	}
	txs, err := h.svc.ListTransactions(r.Context(), uid, from)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	writeJSON(w, http.StatusOK, txs)
}
