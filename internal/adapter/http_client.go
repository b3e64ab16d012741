package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/iankatengeza/energy-monitor-build/models"
)

const showPath = "/notifications"

// HTTPDisplayConfig configures the HTTP display adapter.
type HTTPDisplayConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpDisplayAdapter struct {
	client *resty.Client
}

// NewHTTPDisplayAdapter returns a NotificationDisplay posting JSON requests
// to BaseURL + "/notifications". Retries are disabled.
func NewHTTPDisplayAdapter(cfg HTTPDisplayConfig) NotificationDisplay {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8090"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetRetryCount(0)

	return &httpDisplayAdapter{client: cli}
}

func (h *httpDisplayAdapter) Show(ctx context.Context, req models.NotificationRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(showPath)
	if err != nil {
		return fmt.Errorf("%w: show request: %w", ErrHostUnavailable, err)
	}

	return mapHTTPError(resp)
}
