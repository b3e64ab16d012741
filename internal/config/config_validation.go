// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ian Katengeza

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks the sections shared by every binary.
func (cfg *StructuredConfig) validate() error {
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
	}

	return nil
}

// Validate checks the settings needed by the build step.
func (b Build) Validate() error {
	switch strings.ToLower(b.SigningMode) {
	case "strict", "permissive":
	default:
		return fmt.Errorf("%w: signing mode %q", ErrInvalidBuildConfigs, b.SigningMode)
	}

	switch strings.ToLower(b.OutputFormat) {
	case "json", "yaml":
	default:
		return fmt.Errorf("%w: output format %q", ErrInvalidBuildConfigs, b.OutputFormat)
	}

	if strings.TrimSpace(b.Variant) == "" {
		return fmt.Errorf("%w: empty variant", ErrInvalidBuildConfigs)
	}

	if b.MinPlatformVersion < 1 {
		return fmt.Errorf("%w: min platform version %d", ErrInvalidBuildConfigs, b.MinPlatformVersion)
	}

	return nil
}

// Validate checks the settings needed by the relay process.
func (r Relay) Validate() error {
	if r.HTTPAddress == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidRelayConfigs)
	}

	u, err := url.Parse(r.DisplayURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: display url %q", ErrInvalidRelayConfigs, r.DisplayURL)
	}

	if r.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout %s", ErrInvalidRelayConfigs, r.RequestTimeout)
	}

	return nil
}
