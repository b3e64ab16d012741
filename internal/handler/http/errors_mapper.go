package http

import (
	"errors"
	"net/http"

	"github.com/iankatengeza/energy-monitor-build/internal/relay"
)

var errorStatusMap = map[error]int{
	relay.ErrNotificationDisplayUnavailable: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
