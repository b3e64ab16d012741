// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ian Katengeza

package models

import "fmt"

const redacted = "******"

// SigningCredentials holds the release signing identity read from the
// operator-managed signing property file.
//
// Credentials are all-or-nothing: a value is usable only when all four fields
// are non-empty. Partially populated credentials are treated as absent.
type SigningCredentials struct {
	// KeystoreLocation is the path to the keystore file, relative to the
	// project directory unless absolute.
	KeystoreLocation string `json:"keystore_location" yaml:"keystore_location"`

	// KeystorePassword unlocks the keystore. Never logged or serialized.
	KeystorePassword string `json:"-" yaml:"-"`

	// KeyAlias names the signing key inside the keystore.
	KeyAlias string `json:"key_alias" yaml:"key_alias"`

	// KeyPassword unlocks the signing key. Never logged or serialized.
	KeyPassword string `json:"-" yaml:"-"`
}

// Complete reports whether all four credential fields are populated.
func (c *SigningCredentials) Complete() bool {
	if c == nil {
		return false
	}

	return c.KeystoreLocation != "" &&
		c.KeystorePassword != "" &&
		c.KeyAlias != "" &&
		c.KeyPassword != ""
}

// String implements fmt.Stringer with both passwords redacted.
func (c *SigningCredentials) String() string {
	if c == nil {
		return "<absent>"
	}

	return fmt.Sprintf("keystore=%s alias=%s storePassword=%s keyPassword=%s",
		c.KeystoreLocation, c.KeyAlias, redacted, redacted)
}

// SigningKind enumerates the possible outcomes of release signer selection.
type SigningKind string

const (
	// UseReleaseIdentity signs the artifact with the operator's release key.
	UseReleaseIdentity SigningKind = "release_identity"

	// UseFallbackIdentity signs the artifact with the development identity.
	UseFallbackIdentity SigningKind = "fallback_identity"

	// Unsigned leaves the artifact unsigned; the build must not ship it.
	Unsigned SigningKind = "unsigned"
)

// SigningDecision is the per-variant signing outcome consumed by the
// packaging toolchain. It is derived on every build and never persisted.
type SigningDecision struct {
	// Variant is the build variant the decision applies to (e.g. "release").
	Variant string `json:"variant" yaml:"variant"`

	// Kind is the selected signing identity.
	Kind SigningKind `json:"kind" yaml:"kind"`

	// Credentials is set only when Kind is UseReleaseIdentity.
	Credentials *SigningCredentials `json:"credentials,omitempty" yaml:"credentials,omitempty"`

	// ShrinkResources removes unused resources from the artifact.
	// Only ever true for UseReleaseIdentity.
	ShrinkResources bool `json:"shrink_resources" yaml:"shrink_resources"`

	// Minify removes and obfuscates unused code.
	// Only ever true for UseReleaseIdentity.
	Minify bool `json:"minify" yaml:"minify"`

	// RulesFiles lists the shrinker rule files applied when Minify is on.
	RulesFiles []string `json:"rules_files,omitempty" yaml:"rules_files,omitempty"`

	// Warnings carries caller-visible notices, such as a permissive-mode
	// fallback to the development identity.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// BuildPlan is everything the packaging toolchain needs for one variant.
type BuildPlan struct {
	Configuration BuildConfiguration `json:"configuration" yaml:"configuration"`
	Signing       SigningDecision    `json:"signing" yaml:"signing"`
	SigningMode   string             `json:"signing_mode" yaml:"signing_mode"`
}
