// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ian Katengeza

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// buildcfg and relay binaries.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings.
	App App `envPrefix:"APP_"`

	// Build holds the inputs of build configuration resolution and release
	// signer selection.
	Build Build `envPrefix:"BUILD_"`

	// Relay holds the settings of the background notification relay.
	Relay Relay `envPrefix:"RELAY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via EMB_CONFIG or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// Version is reported by the relay on /api/version.
	// Env: EMB_APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: EMB_APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Build configures property file locations, the signing policy and the
// manifest output.
type Build struct {
	// ProjectDir is the platform project root holding the property files.
	// Env: EMB_BUILD_PROJECT_DIR
	ProjectDir string `env:"PROJECT_DIR"`

	// LocalPropertiesFile holds developer-local overrides. It is the
	// highest-priority property source. Relative to ProjectDir.
	// Env: EMB_BUILD_LOCAL_PROPERTIES
	LocalPropertiesFile string `env:"LOCAL_PROPERTIES"`

	// ProjectPropertiesFile holds checked-in project values, consulted after
	// LocalPropertiesFile. Relative to ProjectDir.
	// Env: EMB_BUILD_PROJECT_PROPERTIES
	ProjectPropertiesFile string `env:"PROJECT_PROPERTIES"`

	// SigningPropertiesFile holds the release signing credentials.
	// Relative to ProjectDir.
	// Env: EMB_BUILD_SIGNING_PROPERTIES
	SigningPropertiesFile string `env:"SIGNING_PROPERTIES"`

	// KeystoreBaseDir anchors relative keystore locations. Relative to
	// ProjectDir.
	// Env: EMB_BUILD_KEYSTORE_BASE_DIR
	KeystoreBaseDir string `env:"KEYSTORE_BASE_DIR"`

	// Variant is the build variant to prepare (e.g. "debug", "release").
	// Env: EMB_BUILD_VARIANT
	Variant string `env:"VARIANT"`

	// ReleaseVariants lists the variants that require release signing.
	// Env: EMB_BUILD_RELEASE_VARIANTS (comma separated)
	ReleaseVariants []string `env:"RELEASE_VARIANTS" envSeparator:","`

	// SigningMode is "strict" or "permissive".
	// Env: EMB_BUILD_SIGNING_MODE
	SigningMode string `env:"SIGNING_MODE"`

	// ShrinkResources and Minify apply to release-signed artifacts only.
	// Pointers distinguish an explicit false from unset.
	// Env: EMB_BUILD_SHRINK_RESOURCES, EMB_BUILD_MINIFY
	ShrinkResources *bool `env:"SHRINK_RESOURCES"`
	Minify          *bool `env:"MINIFY"`

	// RulesFiles are the shrinker rule files used when minifying.
	// Env: EMB_BUILD_RULES_FILES (comma separated)
	RulesFiles []string `env:"RULES_FILES" envSeparator:","`

	// MinPlatformVersion is the minimum platform API level used when no
	// property source defines one.
	// Env: EMB_BUILD_MIN_PLATFORM_VERSION
	MinPlatformVersion int `env:"MIN_PLATFORM_VERSION"`

	// RequireSDKPath makes a missing flutter.sdk entry in the local
	// properties a hard error.
	// Env: EMB_BUILD_REQUIRE_SDK_PATH
	RequireSDKPath *bool `env:"REQUIRE_SDK_PATH"`

	// OutputFormat is "json" or "yaml".
	// Env: EMB_BUILD_OUTPUT_FORMAT
	OutputFormat string `env:"OUTPUT_FORMAT"`

	// OutputPath is the manifest destination; empty means stdout.
	// Env: EMB_BUILD_OUTPUT
	OutputPath string `env:"OUTPUT"`
}

// Relay configures the notification relay process.
type Relay struct {
	// HTTPAddress is the listen address, "host:port".
	// Env: EMB_RELAY_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// DisplayURL is the base URL of the host notification display API.
	// Env: EMB_RELAY_DISPLAY_URL
	DisplayURL string `env:"DISPLAY_URL"`

	// RequestTimeout bounds a single display request.
	// Env: EMB_RELAY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Fallback content and fixed resources of composed notifications.
	// Env: EMB_RELAY_FALLBACK_TITLE, EMB_RELAY_FALLBACK_BODY,
	// EMB_RELAY_ICON_REF, EMB_RELAY_BADGE_REF
	FallbackTitle string `env:"FALLBACK_TITLE"`
	FallbackBody  string `env:"FALLBACK_BODY"`
	IconRef       string `env:"ICON_REF"`
	BadgeRef      string `env:"BADGE_REF"`
}

// GetStructuredConfig loads and merges the configuration from the process
// arguments, the environment, an optional JSON file and the defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return LoadStructuredConfig(os.Args[1:])
}

// LoadStructuredConfig is GetStructuredConfig for explicit arguments.
func LoadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
