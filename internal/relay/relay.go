// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ian Katengeza

// Package relay turns push messages received while the client is in the
// background into local notification requests.
//
// A [Relay] is a stateless, single-shot handler: every call to OnMessage
// composes one request and issues exactly one display call. It keeps no
// queue, imposes no ordering and never retries; delivery guarantees belong
// to the push transport.
package relay

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/iankatengeza/energy-monitor-build/internal/adapter"
	"github.com/iankatengeza/energy-monitor-build/internal/logger"
	"github.com/iankatengeza/energy-monitor-build/internal/utils"
	"github.com/iankatengeza/energy-monitor-build/models"
)

// ErrNotificationDisplayUnavailable is returned when the host display API
// fails. The message is dropped.
var ErrNotificationDisplayUnavailable = errors.New("notification display unavailable")

// Default notification content.
const (
	DefaultTitle    = "Energy Alert"
	DefaultBody     = "Check your energy usage"
	DefaultIconRef  = "/icons/Icon-192.png"
	DefaultBadgeRef = "/icons/Icon-192.png"
)

// Options holds the fixed content used when a message omits a field.
// Empty fields fall back to the package defaults.
type Options struct {
	FallbackTitle string
	FallbackBody  string
	IconRef       string
	BadgeRef      string
}

// TagGenerator produces identifiers for notification requests.
type TagGenerator interface {
	Generate() string
}

// Relay composes and displays background notifications. It holds no
// mutable state and may be invoked concurrently.
type Relay struct {
	display adapter.NotificationDisplay
	opts    Options
	tags    TagGenerator
	logger  *logger.Logger
}

// New creates a Relay showing notifications through display.
func New(display adapter.NotificationDisplay, opts Options, log *logger.Logger) *Relay {
	if opts.FallbackTitle == "" {
		opts.FallbackTitle = DefaultTitle
	}
	if opts.FallbackBody == "" {
		opts.FallbackBody = DefaultBody
	}
	if opts.IconRef == "" {
		opts.IconRef = DefaultIconRef
	}
	if opts.BadgeRef == "" {
		opts.BadgeRef = DefaultBadgeRef
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Relay{
		display: display,
		opts:    opts,
		tags:    utils.NewUUIDGenerator(),
		logger:  log,
	}
}

// Compose builds the notification request for msg without displaying it.
// Absent or blank title and body are replaced by the fallback strings and
// listed in FallbackFields. Icon and badge are always the configured resources.
func (r *Relay) Compose(msg models.InboundMessage) models.NotificationRequest {
	req := models.NotificationRequest{
		Tag:      r.tags.Generate(),
		IconRef:  r.opts.IconRef,
		BadgeRef: r.opts.BadgeRef,
	}

	var fellBack bool
	if req.Title, fellBack = valueOr(msg.NotificationTitle, r.opts.FallbackTitle); fellBack {
		req.FallbackFields = append(req.FallbackFields, models.NotificationFieldTitle)
	}
	if req.Body, fellBack = valueOr(msg.NotificationBody, r.opts.FallbackBody); fellBack {
		req.FallbackFields = append(req.FallbackFields, models.NotificationFieldBody)
	}

	return req
}

// OnMessage composes the request for msg and hands it to the host display
// API exactly once. On display failure the composed request is still
// returned together with an error wrapping ErrNotificationDisplayUnavailable.
func (r *Relay) OnMessage(ctx context.Context, msg models.InboundMessage) (models.NotificationRequest, error) {
	req := r.Compose(msg)

	if err := r.display.Show(ctx, req); err != nil {
		r.logger.Error().
			Err(err).
			Str("message_id", msg.MessageID).
			Str("tag", req.Tag).
			Msg("notification dropped")
		return req, fmt.Errorf("%w: %w", ErrNotificationDisplayUnavailable, err)
	}

	r.logger.Info().
		Str("message_id", msg.MessageID).
		Str("tag", req.Tag).
		Msg("notification displayed")

	return req, nil
}

func valueOr(v *string, fallback string) (string, bool) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return fallback, true
	}
	return *v, false
}
