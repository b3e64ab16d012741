package http

import (
	"net/http"

	"github.com/iankatengeza/energy-monitor-build/internal/logger"
	"github.com/iankatengeza/energy-monitor-build/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  http.Handler

	logger *logger.Logger
}

// NewHandler creates the relay HTTP handler. A nil metrics handler leaves
// /metrics unrouted.
func NewHandler(services *service.Services, metrics http.Handler, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  metrics,
		logger:   logger,
	}
}
