// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ian Katengeza

// Package adapter provides the client for the host notification display API.
//
// The primary abstraction is [NotificationDisplay], which decouples the relay
// from the host runtime. The package ships an HTTP implementation
// ([NewHTTPDisplayAdapter]) that posts requests to the host with resty.
//
// Transport failures, 404 and 5xx responses are mapped to [ErrHostUnavailable]
// by mapHTTPError so callers can use [errors.Is] without knowing the protocol.
package adapter

import (
	"context"

	"github.com/iankatengeza/energy-monitor-build/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notification_display_mock.go -package=mock

// NotificationDisplay shows a local notification through the host runtime.
// It does not manage channels, permissions or notification lifecycle.
type NotificationDisplay interface {
	// Show issues exactly one display request. It does not retry.
	Show(ctx context.Context, req models.NotificationRequest) error
}
