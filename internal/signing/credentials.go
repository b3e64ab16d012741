// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ian Katengeza

package signing

import (
	"strings"

	"github.com/iankatengeza/energy-monitor-build/internal/properties"
	"github.com/iankatengeza/energy-monitor-build/models"
)

// Keys read from the signing property file (key.properties).
const (
	KeyStoreFile     = "storeFile"
	KeyStorePassword = "storePassword"
	KeyAlias         = "keyAlias"
	KeyPassword      = "keyPassword"
)

// LoadCredentials reads signing credentials from src.
//
// It returns nil unless all four keys hold non-blank values: partially
// specified credentials are treated as absent, never partially applied.
// A nil or non-existent source also yields nil.
func LoadCredentials(src properties.Source) *models.SigningCredentials {
	if src == nil || !src.Exists() {
		return nil
	}

	get := func(key string) string {
		v, ok := src.Lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			return ""
		}
		return v
	}

	creds := &models.SigningCredentials{
		KeystoreLocation: strings.TrimSpace(get(KeyStoreFile)),
		KeystorePassword: get(KeyStorePassword),
		KeyAlias:         strings.TrimSpace(get(KeyAlias)),
		KeyPassword:      get(KeyPassword),
	}
	if !creds.Complete() {
		return nil
	}

	return creds
}
