//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"

	"github.com/iankatengeza/energy-monitor-build/models"
)

// BuildService prepares the packaging inputs of one build variant.
type BuildService interface {
	// Prepare resolves the build configuration and selects the signer for
	// variant. An empty variant means the configured default. When signer
	// selection fails the returned plan still carries the resolved
	// configuration and an Unsigned decision.
	Prepare(ctx context.Context, variant string) (models.BuildPlan, error)
}

// NotificationService relays background push messages to the host display.
type NotificationService interface {
	OnMessage(ctx context.Context, msg models.InboundMessage) (models.NotificationRequest, error)
}

// NotificationServiceWrapper defines middleware composition for
// NotificationService. Implementations wrap an existing NotificationService
// to add behavior such as metrics.
type NotificationServiceWrapper interface {
	Wrap(NotificationService) NotificationService
}

// AppInfoService reports build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
