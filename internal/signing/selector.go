// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ian Katengeza

package signing

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/iankatengeza/energy-monitor-build/internal/logger"
	"github.com/iankatengeza/energy-monitor-build/models"
)

// Mode is the policy applied to release variants without credentials.
type Mode string

const (
	// ModeStrict fails the build with ErrMissingSigningCredentials.
	ModeStrict Mode = "strict"

	// ModePermissive signs with the development identity and warns.
	ModePermissive Mode = "permissive"
)

// ParseMode converts s into a Mode. Matching is case-insensitive.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeStrict:
		return ModeStrict, nil
	case ModePermissive:
		return ModePermissive, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSigningMode, s)
	}
}

// Options configures a Selector.
type Options struct {
	// Mode is fixed for the lifetime of the Selector.
	Mode Mode

	// ReleaseVariants names the variants that require release signing.
	// Defaults to ["release"].
	ReleaseVariants []string

	// ShrinkResources and Minify apply only to release-signed variants.
	ShrinkResources bool
	Minify          bool

	// RulesFiles are handed to the shrinker when Minify is on.
	RulesFiles []string

	// BaseDir anchors relative keystore locations. Empty means the current
	// working directory.
	BaseDir string
}

// DefaultRulesFiles are the shrinker rules applied to release builds.
func DefaultRulesFiles() []string {
	return []string{"proguard-android-optimize.txt", "proguard-rules.pro"}
}

// Selector chooses a SigningDecision per variant. It is safe for concurrent
// use; the only I/O it performs is opening the keystore to check it is
// accessible.
type Selector struct {
	opts     Options
	releases []string
	logger   *logger.Logger
}

// NewSelector validates opts and returns a Selector. A nil log discards
// output.
func NewSelector(opts Options, log *logger.Logger) (*Selector, error) {
	if opts.Mode != ModeStrict && opts.Mode != ModePermissive {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSigningMode, opts.Mode)
	}
	if log == nil {
		log = logger.Nop()
	}

	releases := make([]string, 0, len(opts.ReleaseVariants))
	for _, v := range opts.ReleaseVariants {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			releases = append(releases, v)
		}
	}
	if len(releases) == 0 {
		releases = []string{"release"}
	}

	return &Selector{
		opts:     opts,
		releases: releases,
		logger:   log,
	}, nil
}

// Mode reports the active policy for missing release credentials.
func (s *Selector) Mode() Mode {
	return s.opts.Mode
}

// IsRelease reports whether variant requires release signing.
func (s *Selector) IsRelease(variant string) bool {
	return slices.Contains(s.releases, strings.ToLower(strings.TrimSpace(variant)))
}

// Select returns the signing decision for variant.
//
// Non-release variants always get UseFallbackIdentity, even when release
// credentials are available. Release variants get UseReleaseIdentity when
// creds is complete and its keystore is a readable file; otherwise strict
// mode returns an Unsigned decision together with
// ErrMissingSigningCredentials and permissive mode returns
// UseFallbackIdentity with a warning.
func (s *Selector) Select(cfg models.BuildConfiguration, variant string, creds *models.SigningCredentials) (models.SigningDecision, error) {
	log := s.logger.With().
		Str("variant", variant).
		Str("application_id", cfg.ApplicationID).
		Str("signing_mode", string(s.opts.Mode)).
		Logger()

	if !s.IsRelease(variant) {
		log.Debug().Msg("non-release variant, using development identity")
		return models.SigningDecision{Variant: variant, Kind: models.UseFallbackIdentity}, nil
	}

	if !creds.Complete() {
		if s.opts.Mode == ModeStrict {
			return models.SigningDecision{Variant: variant, Kind: models.Unsigned},
				fmt.Errorf("%w: variant %q requires %s, %s, %s and %s",
					ErrMissingSigningCredentials, variant, KeyStoreFile, KeyStorePassword, KeyAlias, KeyPassword)
		}

		warning := fmt.Sprintf("release variant %q has no signing credentials, signing with development identity", variant)
		log.Warn().Msg(warning)
		return models.SigningDecision{
			Variant:  variant,
			Kind:     models.UseFallbackIdentity,
			Warnings: []string{warning},
		}, nil
	}

	location, err := s.keystorePath(creds.KeystoreLocation)
	if err != nil {
		return models.SigningDecision{Variant: variant, Kind: models.Unsigned}, err
	}

	signed := *creds
	signed.KeystoreLocation = location

	decision := models.SigningDecision{
		Variant:         variant,
		Kind:            models.UseReleaseIdentity,
		Credentials:     &signed,
		ShrinkResources: s.opts.ShrinkResources,
		Minify:          s.opts.Minify,
	}
	if decision.Minify {
		decision.RulesFiles = slices.Clone(s.opts.RulesFiles)
	}

	log.Info().
		Str("keystore", location).
		Str("key_alias", signed.KeyAlias).
		Bool("shrink_resources", decision.ShrinkResources).
		Bool("minify", decision.Minify).
		Msg("signing with release identity")

	return decision, nil
}

func (s *Selector) keystorePath(location string) (string, error) {
	path := location
	if !filepath.IsAbs(path) && s.opts.BaseDir != "" {
		path = filepath.Join(s.opts.BaseDir, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrInvalidCredentialPath, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrInvalidCredentialPath, path, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s is not a regular file", ErrInvalidCredentialPath, path)
	}

	return path, nil
}
