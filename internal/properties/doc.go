// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ian Katengeza

// Package properties provides the key/value property sources consulted when
// resolving a build configuration.
//
// Every source implements [Source]: a named origin, an existence flag and a
// single Lookup operation. File-backed sources read Java-style .properties
// files (the format used by local.properties and key.properties); a source
// whose file does not exist is reported as non-existent rather than as an
// error. Sources are loaded once and are immutable afterwards.
package properties
