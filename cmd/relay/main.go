// Command relay runs the background notification relay: it accepts push
// messages over HTTP and shows them through the host notification display.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/iankatengeza/energy-monitor-build/internal/adapter"
	"github.com/iankatengeza/energy-monitor-build/internal/config"
	"github.com/iankatengeza/energy-monitor-build/internal/handler"
	"github.com/iankatengeza/energy-monitor-build/internal/logger"
	"github.com/iankatengeza/energy-monitor-build/internal/metrics"
	"github.com/iankatengeza/energy-monitor-build/internal/server"
	"github.com/iankatengeza/energy-monitor-build/internal/service"
	"github.com/iankatengeza/energy-monitor-build/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(info)

	log := logger.NewLogger("relay")
	cfg, err := config.GetStructuredConfig()
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	if err = cfg.Relay.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid relay configs")
	}

	log.Debug().Any("config", cfg.Relay).Msg("received configs")

	display := adapter.NewHTTPDisplayAdapter(adapter.HTTPDisplayConfig{
		BaseURL: cfg.Relay.DisplayURL,
		Timeout: cfg.Relay.RequestTimeout,
	})
	recorder := metrics.NewRecorder()

	services, err := service.NewRelayServices(*cfg, info, display, recorder, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, recorder.Handler(), cfg.Relay, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Relay, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
