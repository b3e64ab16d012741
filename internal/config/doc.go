// Package config loads, merges and validates the settings of the build step
// and of the notification relay process.
//
// Configuration is assembled from several sources. The builder merges them
// with mergo in the order below; mergo only fills zero fields, so the first
// source that sets a field wins:
//  1. Command-line flags
//  2. Environment variables (EMB_ prefix)
//  3. JSON config file (path from -c/-config or EMB_CONFIG)
//  4. Built-in defaults
//
// The entry point is [GetStructuredConfig]. Section-specific checks are done
// with [Build.Validate] and [Relay.Validate] by the binary that needs them.
package config
