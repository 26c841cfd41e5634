package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/BayHyn/battlefield-tool/internal/logic"
	"github.com/BayHyn/battlefield-tool/internal/normalize"
)

var validDataTypes = map[string]normalize.DataType{
	"stat":     normalize.DataStat,
	"weapons":  normalize.DataWeapons,
	"vehicles": normalize.DataVehicles,
	"soldiers": normalize.DataSoldiers,
}

func reportRequest(r *http.Request) (logic.ReportRequest, bool) {
	dataType, ok := validDataTypes[chi.URLParam(r, "dataType")]
	if !ok {
		return logic.ReportRequest{}, false
	}
	q := r.URL.Query()
	return logic.ReportRequest{
		ChatID:    q.Get("chat_id"),
		ChannelID: q.Get("channel_id"),
		Game:      chi.URLParam(r, "game"),
		Player:    q.Get("player"),
		DataType:  dataType,
	}, true
}

// GetReport answers with the normalized bundle, or the rendered report card
// when format=html is requested.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	req, ok := reportRequest(r)
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, "invalid data type")
		return
	}

	if r.URL.Query().Get("format") == "html" {
		html, err := h.svc.ReportHTML(r.Context(), req)
		if err != nil {
			h.serviceError(w, err)
			return
		}
		h.htmlResponse(w, html)
		return
	}

	bundle, err := h.svc.Report(r.Context(), req)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, bundle)
}

// GetReportText answers with the text projection of a report.
func (h *Handler) GetReportText(w http.ResponseWriter, r *http.Request) {
	req, ok := reportRequest(r)
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, "invalid data type")
		return
	}

	text, err := h.svc.ReportText(r.Context(), req)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]string{"text": text})
}

// GetServers answers with the server list for a game.
func (h *Handler) GetServers(w http.ResponseWriter, r *http.Request) {
	game := chi.URLParam(r, "game")
	serverName := r.URL.Query().Get("name")

	if r.URL.Query().Get("format") == "html" {
		html, err := h.svc.ServersHTML(r.Context(), game, serverName)
		if err != nil {
			h.serviceError(w, err)
			return
		}
		h.htmlResponse(w, html)
		return
	}

	bundle, err := h.svc.Servers(r.Context(), game, serverName)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, bundle)
}

// serviceError maps service errors onto HTTP statuses. The advisory texts are
// passed through untouched; the chat frontend shows them as-is.
func (h *Handler) serviceError(w http.ResponseWriter, err error) {
	var unknownGame *logic.UnknownGameError
	var unsupported *normalize.UnsupportedError
	var upstream *normalize.UpstreamError
	var malformed *normalize.MalformedPayloadError

	switch {
	case errors.As(err, &unknownGame), errors.As(err, &unsupported), errors.Is(err, logic.ErrNoBinding):
		h.errorResponse(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &upstream), errors.As(err, &malformed):
		h.errorResponse(w, http.StatusBadGateway, err.Error())
	default:
		h.logger.Errorw("Report query failed", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "internal error")
	}
}
