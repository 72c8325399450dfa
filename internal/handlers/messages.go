package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/eldtechnologies/anonchat/internal/metrics"
)

// PostMessageRequest represents the post message request.
type PostMessageRequest struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// GetMessages handles fetching the full message log of a chat room.
func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	room, err := h.store.GetRoom(chi.URLParam(r, "id"))
	if err != nil {
		h.StoreError(w, err)
		return
	}
	h.JSON(w, http.StatusOK, room.Messages)
}

// PostMessage handles appending a message to a chat room.
func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")

	var req PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		h.Error(w, http.StatusBadRequest, "text is required")
		return
	}

	msg, err := h.store.AppendMessage(roomID, req.Sender, req.Text)
	if err != nil {
		h.StoreError(w, err)
		return
	}

	metrics.MessagesPosted.WithLabelValues("api").Inc()

	if h.sim != nil {
		h.sim.MessagePosted(roomID)
	}

	h.JSON(w, http.StatusCreated, msg)
}
