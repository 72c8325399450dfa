package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/eldtechnologies/anonchat/internal/store"
)

// Handler contains shared dependencies for all HTTP handlers.
type Handler struct {
	store store.RoomStore
	sim   *store.Simulator // nil when auto-replies are disabled
	redis *redis.Client    // nil when not configured; health check only
}

// NewHandler creates a new Handler with the given dependencies.
func NewHandler(st store.RoomStore, sim *store.Simulator, rdb *redis.Client) *Handler {
	return &Handler{store: st, sim: sim, redis: rdb}
}

// envelope is the uniform response shape: a success flag plus either
// the payload or an error string.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// JSON sends a successful response with the given status code.
func (h *Handler) JSON(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

// Error sends a failure response with the given status code.
func (h *Handler) Error(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: false, Error: message})
}

// StoreError maps a store error onto the HTTP failure taxonomy:
// unknown room 404, denied ownership 403, rejected input 400.
func (h *Handler) StoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrRoomNotFound):
		h.Error(w, http.StatusNotFound, "chat not found")
	case errors.Is(err, store.ErrForbidden):
		h.Error(w, http.StatusForbidden, "not authorized")
	case errors.Is(err, store.ErrValidation):
		h.Error(w, http.StatusBadRequest, err.Error())
	default:
		h.Error(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
