// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ian Katengeza

package signing

import "errors"

var (
	// ErrMissingSigningCredentials is returned in strict mode when a release
	// variant is built without complete signing credentials.
	ErrMissingSigningCredentials = errors.New("missing signing credentials")

	// ErrInvalidCredentialPath is returned when the keystore location does
	// not resolve to a readable file. It requires operator action and is
	// never retried.
	ErrInvalidCredentialPath = errors.New("invalid keystore path")

	// ErrUnknownSigningMode is returned for a mode other than strict or
	// permissive.
	ErrUnknownSigningMode = errors.New("unknown signing mode")
)
