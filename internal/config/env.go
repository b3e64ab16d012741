// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ian Katengeza

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envPrefix namespaces every variable read by [parseEnv].
const envPrefix = "EMB_"

// parseEnv populates cfg from EMB_-prefixed environment variables using
// caarlos0/env. Fields are mapped via the `env` and `envPrefix` tags of
// [StructuredConfig]. Unset variables leave fields at their zero value so
// later sources can fill them.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
