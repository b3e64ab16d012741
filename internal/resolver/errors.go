// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ian Katengeza

package resolver

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFieldFormat indicates that the winning value for a field was
	// present but could not be parsed.
	ErrInvalidFieldFormat = errors.New("invalid field format")

	// ErrInvalidDefaults indicates that the caller-supplied defaults do not
	// themselves form a valid configuration.
	ErrInvalidDefaults = errors.New("invalid defaults")

	// ErrInvalidPlatformRange indicates that the resolved minimum platform
	// version is above the target platform version.
	ErrInvalidPlatformRange = errors.New("minimum platform version exceeds target platform version")
)

// FieldFormatError describes a malformed value and where it came from.
// It matches [ErrInvalidFieldFormat] with errors.Is.
type FieldFormatError struct {
	Field  string
	Origin string
	Value  string
	Reason string
}

func (e *FieldFormatError) Error() string {
	return fmt.Sprintf("%s: %s=%q from %s: %s", ErrInvalidFieldFormat, e.Field, e.Value, e.Origin, e.Reason)
}

func (e *FieldFormatError) Unwrap() error {
	return ErrInvalidFieldFormat
}
