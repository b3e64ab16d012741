package service

import (
	"github.com/iankatengeza/energy-monitor-build/internal/adapter"
	"github.com/iankatengeza/energy-monitor-build/internal/config"
	"github.com/iankatengeza/energy-monitor-build/internal/logger"
	"github.com/iankatengeza/energy-monitor-build/internal/metrics"
	"github.com/iankatengeza/energy-monitor-build/internal/relay"
	"github.com/iankatengeza/energy-monitor-build/models"
)

// Services aggregates the services of a binary. Each constructor fills only
// the services its binary uses.
type Services struct {
	BuildService        BuildService
	NotificationService NotificationService
	AppInfoService      AppInfoService
}

// NewBuildServices wires the services of the build step.
func NewBuildServices(cfg config.StructuredConfig, info models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	buildService, err := NewBuildService(cfg.Build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		BuildService:   buildService,
		AppInfoService: NewAppInfoService(cfg.App, info, logger),
	}, nil
}

// NewRelayServices wires the relay behind the metrics decorator.
func NewRelayServices(cfg config.StructuredConfig, info models.AppBuildInfo, display adapter.NotificationDisplay,
	recorder *metrics.Recorder, logger *logger.Logger) (*Services, error) {
	if display == nil {
		return nil, ErrNoDisplay
	}

	var notificationService NotificationService = relay.New(display, relay.Options{
		FallbackTitle: cfg.Relay.FallbackTitle,
		FallbackBody:  cfg.Relay.FallbackBody,
		IconRef:       cfg.Relay.IconRef,
		BadgeRef:      cfg.Relay.BadgeRef,
	}, logger)
	if recorder != nil {
		notificationService = NewNotificationMetricsService(recorder).Wrap(notificationService)
	}

	return &Services{
		NotificationService: notificationService,
		AppInfoService:      NewAppInfoService(cfg.App, info, logger),
	}, nil
}
