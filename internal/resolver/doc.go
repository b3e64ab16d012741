// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ian Katengeza

// Package resolver merges layered property sources into a fully resolved
// [models.BuildConfiguration].
//
// Sources are consulted in priority order, the first element being the most
// specific (for example developer-local overrides before project defaults).
// For every key the first source that exists and holds a non-empty value
// wins. Keys no source supplies take the caller-provided [Defaults]; there are
// no ambient or global defaults.
//
// A value that is present but malformed (a non-numeric version code, an
// invalid application id) fails resolution with [ErrInvalidFieldFormat]
// instead of silently falling back to the default.
package resolver
