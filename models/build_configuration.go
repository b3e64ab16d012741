// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ian Katengeza

package models

// ProvenanceDefault marks a BuildConfiguration field whose value came from the
// caller-supplied defaults rather than from a property source.
const ProvenanceDefault = "default"

// BuildConfiguration is the fully resolved set of packaging parameters handed
// to the native packaging toolchain.
//
// After resolution every field carries a value; absent inputs are replaced
// by documented defaults, so there is no "unset" state.
type BuildConfiguration struct {
	// VersionCode is the monotonically increasing integer version used by
	// the platform store to order releases. Always positive.
	VersionCode int `json:"version_code" yaml:"version_code"`

	// VersionName is the human-readable version string (e.g. "1.0.0").
	VersionName string `json:"version_name" yaml:"version_name"`

	// ApplicationID is the stable reverse-domain package identifier
	// (e.g. "com.iankatengeza.energy_monitor_app").
	ApplicationID string `json:"application_id" yaml:"application_id"`

	// MinPlatformVersion is the lowest platform API level the artifact
	// installs on.
	MinPlatformVersion int `json:"min_platform_version" yaml:"min_platform_version"`

	// TargetPlatformVersion is the platform API level the artifact is
	// tested against.
	TargetPlatformVersion int `json:"target_platform_version" yaml:"target_platform_version"`

	// CompileTargetVersion is the platform API level the sources compile
	// against.
	CompileTargetVersion int `json:"compile_target_version" yaml:"compile_target_version"`

	// SupportedArchitectures lists the instruction-set identifiers packaged
	// into the artifact (e.g. "arm64-v8a"). Order-preserving, no duplicates.
	SupportedArchitectures []string `json:"supported_architectures" yaml:"supported_architectures"`

	// Provenance maps each field name to the origin of the property source
	// that supplied it, or to ProvenanceDefault.
	Provenance map[string]string `json:"provenance,omitempty" yaml:"provenance,omitempty"`
}
