package http

import (
	"encoding/json"
	"net/http"

	"github.com/iankatengeza/energy-monitor-build/internal/logger"
	"github.com/iankatengeza/energy-monitor-build/internal/utils"
	"github.com/iankatengeza/energy-monitor-build/models"
)

// maxMessageSize bounds the inbound message body.
const maxMessageSize = 64 << 10

type errorResponse struct {
	Error string `json:"error"`
	Tag   string `json:"tag,omitempty"`
}

func (h *Handler) onMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var msg models.InboundMessage
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxMessageSize)).Decode(&msg); err != nil {
		log.Err(err).Msg("invalid message JSON was passed")
		utils.WriteJSON(w, errorResponse{Error: "invalid message JSON"}, http.StatusBadRequest)
		return
	}

	req, err := h.services.NotificationService.OnMessage(ctx, msg)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("tag", req.Tag).Int("status", status).Msg("message was not relayed")
		utils.WriteJSON(w, errorResponse{Error: http.StatusText(status), Tag: req.Tag}, status)
		return
	}

	if _, err = utils.WriteJSON(w, req, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing notification request")
	}
}
