package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-service/internal/apperr"
	"github.com/Dan9191/finance-service/internal/middleware"
	"github.com/Dan9191/finance-service/internal/service"
)

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeError maps service errors onto status codes
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		writeMessage(w, http.StatusBadRequest, apperr.Message(err))
	case errors.Is(err, apperr.ErrNotFound):
		writeMessage(w, http.StatusNotFound, apperr.Message(err))
	case errors.Is(err, service.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, err.Error())
	default:
		h.log.WithFields(logrus.Fields{
			"path":       r.URL.Path,
			"request_id": w.Header().Get(middleware.RequestIDHeader),
		}).WithError(err).Error("Request failed")
		writeMessage(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apperr.Validation("decode request", "malformed JSON body: %v", err)
	}
	return nil
}

// userID returns the authenticated user or writes 401
func userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "user ID not found in context")
	}
	return id, ok
}
