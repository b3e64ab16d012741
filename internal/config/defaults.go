package config

import "time"

func boolPtr(b bool) *bool {
	return &b
}

// defaultConfig mirrors the Android project layout: property files at the
// platform project root, keystores resolved from the app module.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  "N/A",
			LogLevel: "info",
		},
		Build: Build{
			ProjectDir:            ".",
			LocalPropertiesFile:   "local.properties",
			ProjectPropertiesFile: "gradle.properties",
			SigningPropertiesFile: "key.properties",
			KeystoreBaseDir:       "app",
			Variant:               "release",
			ReleaseVariants:       []string{"release"},
			SigningMode:           "strict",
			ShrinkResources:       boolPtr(true),
			Minify:                boolPtr(true),
			RulesFiles:            []string{"proguard-android-optimize.txt", "proguard-rules.pro"},
			MinPlatformVersion:    21,
			RequireSDKPath:        boolPtr(false),
			OutputFormat:          "json",
		},
		Relay: Relay{
			HTTPAddress:    "localhost:8081",
			DisplayURL:     "http://localhost:8090",
			RequestTimeout: 5 * time.Second,
			FallbackTitle:  "Energy Alert",
			FallbackBody:   "Check your energy usage",
			IconRef:        "/icons/Icon-192.png",
			BadgeRef:       "/icons/Icon-192.png",
		},
	}
}
