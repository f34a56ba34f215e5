package handler

import (
	"net/http"
	"time"

	"github.com/Dan9191/finance-service/internal/apperr"
	"github.com/Dan9191/finance-service/internal/export"
	"github.com/Dan9191/finance-service/internal/forecast"
)

// GetForecast handles GET /forecast?months=N[&format=xml]
func (h *Handler) GetForecast(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	months, err := forecast.ParseMonths(r.URL.Query().Get("months"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out, err := h.svc.GenerateForecast(r.Context(), uid, months)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if r.URL.Query().Get("format") == "xml" {
		body, err := export.ForecastXML(uid, out)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// GetMonthlyStats handles GET /stats/monthly
func (h *Handler) GetMonthlyStats(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	stats, err := h.svc.MonthlyStats(r.Context(), uid)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// GetCategoryStats handles GET /stats/categories[?from=YYYY-MM-DD]
func (h *Handler) GetCategoryStats(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	var from *time.Time
	if raw := r.URL.Query().Get("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			h.writeError(w, r, apperr.Validation("category stats", "from must be YYYY-MM-DD, got %q", raw))
			return
		}
		from = &t
	}
	buckets, err := h.svc.CategoryStats(r.Context(), uid, from)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, buckets)
}
