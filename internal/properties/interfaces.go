// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ian Katengeza

package properties

// Source is a read-only, named key/value property source.
type Source interface {
	// Origin identifies where the values came from (usually a file path).
	Origin() string

	// Exists reports whether the backing origin was present when loaded.
	// Lookup on a non-existent source always reports false.
	Exists() bool

	// Lookup returns the raw value stored under key and whether the key is
	// defined. An empty value is still reported as defined.
	Lookup(key string) (string, bool)
}
