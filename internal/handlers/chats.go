package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/eldtechnologies/anonchat/internal/metrics"
)

// CreateChatRequest represents the chat creation request.
type CreateChatRequest struct {
	Name        string `json:"name"`
	BurnMinutes int    `json:"burnTime"` // minutes of inactivity, 0 for infinite
	Creator     string `json:"creator"`
}

// DeleteChatRequest represents the chat deletion request.
type DeleteChatRequest struct {
	Creator string `json:"creator"`
}

// ListChats handles listing all chat rooms, newest first.
func (h *Handler) ListChats(w http.ResponseWriter, r *http.Request) {
	h.JSON(w, http.StatusOK, h.store.ListRooms())
}

// CreateChat handles chat room creation.
func (h *Handler) CreateChat(w http.ResponseWriter, r *http.Request) {
	var req CreateChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		h.Error(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.BurnMinutes < 0 {
		h.Error(w, http.StatusBadRequest, "burnTime must be zero or positive")
		return
	}

	room, err := h.store.CreateRoom(req.Name, req.BurnMinutes, req.Creator)
	if err != nil {
		h.StoreError(w, err)
		return
	}

	metrics.RoomsCreated.WithLabelValues("api").Inc()
	metrics.RoomsLive.Set(float64(h.store.Count()))

	h.JSON(w, http.StatusCreated, room)
}

// DeleteChat handles chat room deletion by its creator.
func (h *Handler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	var req DeleteChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.store.DeleteRoom(chi.URLParam(r, "id"), req.Creator); err != nil {
		h.StoreError(w, err)
		return
	}

	metrics.RoomsDeleted.Inc()
	metrics.RoomsLive.Set(float64(h.store.Count()))

	h.JSON(w, http.StatusOK, nil)
}
