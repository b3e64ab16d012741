package service

import (
	"context"
	"time"

	"github.com/iankatengeza/energy-monitor-build/internal/metrics"
	"github.com/iankatengeza/energy-monitor-build/models"
)

// NotificationMetricsService records the outcome of every relayed message.
type NotificationMetricsService struct {
	inner    NotificationService
	recorder *metrics.Recorder
}

func NewNotificationMetricsService(recorder *metrics.Recorder) NotificationServiceWrapper {
	return &NotificationMetricsService{recorder: recorder}
}

func (m *NotificationMetricsService) OnMessage(ctx context.Context, msg models.InboundMessage) (models.NotificationRequest, error) {
	start := time.Now()
	req, err := m.inner.OnMessage(ctx, msg)

	outcome := metrics.OutcomeDisplayed
	if err != nil {
		outcome = metrics.OutcomeDropped
	}
	m.recorder.ObserveMessage(outcome, time.Since(start))

	for _, field := range req.FallbackFields {
		m.recorder.IncFallback(field)
	}

	return req, err
}

func (m *NotificationMetricsService) Wrap(inner NotificationService) NotificationService {
	m.inner = inner
	return m
}
