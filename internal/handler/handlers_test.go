package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iankatengeza/energy-monitor-build/internal/config"
	"github.com/iankatengeza/energy-monitor-build/internal/logger"
	"github.com/iankatengeza/energy-monitor-build/internal/metrics"
	"github.com/iankatengeza/energy-monitor-build/internal/service"
)

func TestNewHandlers_WithAddress(t *testing.T) {
	handlers, err := NewHandlers(&service.Services{}, metrics.NewRecorder().Handler(),
		config.Relay{HTTPAddress: "localhost:8081"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, handlers)
	assert.NotNil(t, handlers.HTTP)
	assert.NotNil(t, handlers.HTTP.Init())
}

func TestNewHandlers_NoAddress(t *testing.T) {
	handlers, err := NewHandlers(&service.Services{}, nil, config.Relay{}, logger.Nop())

	assert.Nil(t, handlers)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
