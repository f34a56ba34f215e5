package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Dan9191/finance-service/internal/config"
	"github.com/Dan9191/finance-service/internal/middleware"
)

// NewRouter wires public and protected routes
func NewRouter(h *Handler, cfg *config.Config) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(h.log))

	// Public routes
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")

	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("/transactions", h.CreateTransaction).Methods("POST")
	authRouter.HandleFunc("/transactions", h.ListTransactions).Methods("GET")
	authRouter.HandleFunc("/forecast", h.GetForecast).Methods("GET")
	authRouter.HandleFunc("/forecast/adjustments", h.ListAdjustments).Methods("GET")
	authRouter.HandleFunc("/forecast/adjustments", h.UpsertAdjustment).Methods("POST")
	authRouter.HandleFunc("/forecast/adjustments/{id:[0-9]+}", h.DeleteAdjustment).Methods("DELETE")
	authRouter.HandleFunc("/stats/monthly", h.GetMonthlyStats).Methods("GET")
	authRouter.HandleFunc("/stats/categories", h.GetCategoryStats).Methods("GET")

	return r
}
