package handler

import (
	"net/http"

	"github.com/iankatengeza/energy-monitor-build/internal/config"
	httphandler "github.com/iankatengeza/energy-monitor-build/internal/handler/http"
	"github.com/iankatengeza/energy-monitor-build/internal/logger"
	"github.com/iankatengeza/energy-monitor-build/internal/service"
)

type Handlers struct {
	HTTP *httphandler.Handler
}

// NewHandlers creates the transport handlers of the relay process. metrics
// may be nil.
func NewHandlers(services *service.Services, metrics http.Handler, cfg config.Relay, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: httphandler.NewHandler(services, metrics, logger),
	}, nil
}
