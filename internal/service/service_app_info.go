package service

import (
	"context"

	"github.com/iankatengeza/energy-monitor-build/internal/config"
	"github.com/iankatengeza/energy-monitor-build/internal/logger"
	"github.com/iankatengeza/energy-monitor-build/models"
)

// unknownVersion is what binaries built without linker flags report.
const unknownVersion = "N/A"

type appInfoService struct {
	appVersion string
	buildInfo  models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService reports cfg.Version when it is set explicitly, the
// linked build version otherwise and "N/A" when neither is known.
func NewAppInfoService(cfg config.App, info models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	version := cfg.Version
	if version == "" || version == unknownVersion {
		version = info.BuildVersion()
	}

	if version == "" {
		version = unknownVersion
	}

	return &appInfoService{
		appVersion: version,
		buildInfo:  info,
		logger:     logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}
