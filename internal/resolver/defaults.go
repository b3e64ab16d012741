// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ian Katengeza

package resolver

import (
	"fmt"
	"regexp"
)

// Keys names the property keys read for each BuildConfiguration field.
type Keys struct {
	VersionCode            string
	VersionName            string
	ApplicationID          string
	MinPlatformVersion     string
	TargetPlatformVersion  string
	CompileTargetVersion   string
	SupportedArchitectures string
}

// DefaultKeys returns the keys written by the Flutter tooling into
// local.properties, plus app.* keys for values the tooling does not manage.
func DefaultKeys() Keys {
	return Keys{
		VersionCode:            "flutter.versionCode",
		VersionName:            "flutter.versionName",
		ApplicationID:          "app.applicationId",
		MinPlatformVersion:     "flutter.minSdkVersion",
		TargetPlatformVersion:  "flutter.targetSdkVersion",
		CompileTargetVersion:   "flutter.compileSdkVersion",
		SupportedArchitectures: "app.abiFilters",
	}
}

// Defaults is the explicit fallback table used for keys that no source
// supplies. Every field must be valid on its own.
type Defaults struct {
	VersionCode            int
	VersionName            string
	ApplicationID          string
	MinPlatformVersion     int
	TargetPlatformVersion  int
	CompileTargetVersion   int
	SupportedArchitectures []string
}

// Platform default values.
const (
	DefaultVersionCode           = 1
	DefaultVersionName           = "1.0.0"
	DefaultApplicationID         = "com.iankatengeza.energy_monitor_app"
	DefaultMinPlatformVersion    = 21
	DefaultTargetPlatformVersion = 34
	DefaultCompileTargetVersion  = 35
)

// PlatformDefaults returns the documented default table. The minimum
// platform version is a fixed floor, not a value derived from the host
// tooling; callers that need another floor set it explicitly.
func PlatformDefaults() Defaults {
	return Defaults{
		VersionCode:            DefaultVersionCode,
		VersionName:            DefaultVersionName,
		ApplicationID:          DefaultApplicationID,
		MinPlatformVersion:     DefaultMinPlatformVersion,
		TargetPlatformVersion:  DefaultTargetPlatformVersion,
		CompileTargetVersion:   DefaultCompileTargetVersion,
		SupportedArchitectures: []string{"armeabi-v7a", "arm64-v8a", "x86", "x86_64"},
	}
}

var applicationIDPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*(\.[A-Za-z][A-Za-z0-9_]*)+$`)

func (d Defaults) validate() error {
	switch {
	case d.VersionCode <= 0:
		return fmt.Errorf("%w: version code must be positive, got %d", ErrInvalidDefaults, d.VersionCode)
	case d.VersionName == "":
		return fmt.Errorf("%w: empty version name", ErrInvalidDefaults)
	case !applicationIDPattern.MatchString(d.ApplicationID):
		return fmt.Errorf("%w: application id %q is not a reverse-domain identifier", ErrInvalidDefaults, d.ApplicationID)
	case d.MinPlatformVersion <= 0 || d.TargetPlatformVersion <= 0 || d.CompileTargetVersion <= 0:
		return fmt.Errorf("%w: platform versions must be positive", ErrInvalidDefaults)
	case len(normalizeArchitectures(d.SupportedArchitectures)) == 0:
		return fmt.Errorf("%w: no supported architectures", ErrInvalidDefaults)
	}

	return nil
}
