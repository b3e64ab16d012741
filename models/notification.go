// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ian Katengeza

package models

// InboundMessage is a push message already deserialized by the push
// transport and delivered while the client is not in the foreground.
type InboundMessage struct {
	// MessageID is the transport-assigned identifier, if any.
	MessageID string `json:"message_id,omitempty"`

	// NotificationTitle is the optional notification title.
	NotificationTitle *string `json:"notification_title,omitempty"`

	// NotificationBody is the optional notification body text.
	NotificationBody *string `json:"notification_body,omitempty"`

	// Data is the free-form data payload. It is not used to build the
	// notification content.
	Data map[string]string `json:"data,omitempty"`
}

// NotificationRequest is a single request to the host display API.
type NotificationRequest struct {
	// Tag identifies this request in logs and on the host side.
	Tag string `json:"tag"`

	Title    string `json:"title"`
	Body     string `json:"body"`
	IconRef  string `json:"icon"`
	BadgeRef string `json:"badge"`

	// FallbackFields names the content fields filled from fallbacks. It is
	// not sent to the display.
	FallbackFields []string `json:"-"`
}

// Content fields of a notification that may fall back.
const (
	NotificationFieldTitle = "title"
	NotificationFieldBody  = "body"
)
