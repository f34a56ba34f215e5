package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/Dan9191/finance-service/internal/apperr"
	"github.com/Dan9191/finance-service/internal/service"
)

type upsertAdjustmentRequest struct {
	Month             *int            `json:"month"`
	Year              *int            `json:"year"`
	IncomeAdjustment  decimal.Decimal `json:"income_adjustment"`
	ExpenseAdjustment decimal.Decimal `json:"expense_adjustment"`
	Description       string          `json:"description"`
}

// ListAdjustments handles GET /forecast/adjustments
func (h *Handler) ListAdjustments(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	out, err := h.svc.ListAdjustments(r.Context(), uid)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// UpsertAdjustment handles POST /forecast/adjustments
func (h *Handler) UpsertAdjustment(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	var req upsertAdjustmentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if req.Month == nil || req.Year == nil {
		h.writeError(w, r, apperr.Validation("upsert adjustment", "month and year are required"))
		return
	}
	a, err := h.svc.UpsertAdjustment(r.Context(), uid, service.AdjustmentInput{
		Month:             *req.Month,
		Year:              *req.Year,
		IncomeAdjustment:  req.IncomeAdjustment,
		ExpenseAdjustment: req.ExpenseAdjustment,
		Description:       req.Description,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// DeleteAdjustment handles DELETE /forecast/adjustments/{id}
func (h *Handler) DeleteAdjustment(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.writeError(w, r, apperr.NotFound("delete adjustment", "adjustment"))
		return
	}
	if err := h.svc.DeleteAdjustment(r.Context(), uid, id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
