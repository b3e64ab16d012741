// Package http implements the HTTP surface of the notification relay.
//
// The push transport delivers each background message to POST /api/messages;
// the handler relays it to the host display and answers with the composed
// notification request. GET /api/version and GET /metrics serve build info
// and Prometheus metrics. Every request gets a trace ID and an access log
// entry before it reaches the service layer.
package http
