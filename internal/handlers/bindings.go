package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/BayHyn/battlefield-tool/internal/models"
)

// BindUser validates an EA name upstream and stores the chat binding.
func (h *Handler) BindUser(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	var req models.BindUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	bind, err := h.svc.BindUser(r.Context(), req.ChatID, req.EAName)
	if err != nil {
		h.logger.Warnw("User bind rejected", "chatID", req.ChatID, "eaName", req.EAName, "error", err)
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	h.jsonResponse(w, http.StatusOK, bind)
}

// BindChannel stores the default game for a channel.
func (h *Handler) BindChannel(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	var req models.BindChannelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	def, err := h.svc.BindChannel(r.Context(), req.ChannelID, req.Game)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	h.jsonResponse(w, http.StatusOK, def)
}
