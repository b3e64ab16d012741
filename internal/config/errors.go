package config

import "errors"

// Validation errors returned when a configuration section is incomplete or
// invalid.
var (
	// ErrInvalidAppConfigs indicates invalid process-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidBuildConfigs indicates invalid build settings
	// (for example, an unknown signing mode or output format).
	ErrInvalidBuildConfigs = errors.New("invalid build configuration")
	// ErrInvalidRelayConfigs indicates invalid relay settings
	// (for example, an empty display URL or zero request timeout).
	ErrInvalidRelayConfigs = errors.New("invalid relay configuration")
)
