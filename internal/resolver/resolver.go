// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ian Katengeza

package resolver

import (
	"fmt"
	"strconv"
	"strings"

	"dario.cat/mergo"

	"github.com/iankatengeza/energy-monitor-build/internal/logger"
	"github.com/iankatengeza/energy-monitor-build/internal/properties"
	"github.com/iankatengeza/energy-monitor-build/models"
)

// Field names used in errors and in BuildConfiguration.Provenance.
const (
	FieldVersionCode            = "version_code"
	FieldVersionName            = "version_name"
	FieldApplicationID          = "application_id"
	FieldMinPlatformVersion     = "min_platform_version"
	FieldTargetPlatformVersion  = "target_platform_version"
	FieldCompileTargetVersion   = "compile_target_version"
	FieldSupportedArchitectures = "supported_architectures"
)

// rawValue is a trimmed, non-empty value together with the origin of the
// source that supplied it. Both fields are set together or not at all.
type rawValue struct {
	Raw    string
	Origin string
}

// layer holds the raw values one source contributes. Layers are merged with
// mergo in priority order; mergo only fills zero fields, so the first
// non-empty value for every key wins.
type layer struct {
	VersionCode            rawValue
	VersionName            rawValue
	ApplicationID          rawValue
	MinPlatformVersion     rawValue
	TargetPlatformVersion  rawValue
	CompileTargetVersion   rawValue
	SupportedArchitectures rawValue
}

// Resolver turns ordered property sources into a BuildConfiguration.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	keys   Keys
	logger *logger.Logger
}

// New creates a Resolver reading the given keys. A nil log discards output.
func New(keys Keys, log *logger.Logger) *Resolver {
	if log == nil {
		log = logger.Nop()
	}

	return &Resolver{
		keys:   keys,
		logger: log,
	}
}

// Resolve resolves sources with [DefaultKeys] and no logging.
func Resolve(sources []properties.Source, defaults Defaults) (models.BuildConfiguration, error) {
	return New(DefaultKeys(), logger.Nop()).Resolve(sources, defaults)
}

// Resolve merges sources, highest priority first, and fills the remaining
// fields from defaults.
//
// Non-existent sources are skipped. Empty values count as absent. The
// winning value of a numeric field must be a positive integer and the
// winning application id must be a reverse-domain identifier, otherwise a
// [*FieldFormatError] is returned.
func (r *Resolver) Resolve(sources []properties.Source, defaults Defaults) (models.BuildConfiguration, error) {
	if err := defaults.validate(); err != nil {
		return models.BuildConfiguration{}, err
	}

	merged, err := r.merge(sources)
	if err != nil {
		return models.BuildConfiguration{}, err
	}

	return r.build(merged, defaults)
}

func (r *Resolver) merge(sources []properties.Source) (layer, error) {
	var merged layer
	for _, src := range sources {
		if src == nil || !src.Exists() {
			if src != nil {
				r.logger.Debug().Str("source", src.Origin()).Msg("property source does not exist, skipping")
			}
			continue
		}

		if err := mergo.Merge(&merged, r.readLayer(src)); err != nil {
			return layer{}, fmt.Errorf("error merging property source %s: %w", src.Origin(), err)
		}
	}

	return merged, nil
}

func (r *Resolver) readLayer(src properties.Source) layer {
	lookup := func(key string) rawValue {
		v, ok := src.Lookup(key)
		v = strings.TrimSpace(v)
		if !ok || v == "" {
			return rawValue{}
		}
		return rawValue{Raw: v, Origin: src.Origin()}
	}

	return layer{
		VersionCode:            lookup(r.keys.VersionCode),
		VersionName:            lookup(r.keys.VersionName),
		ApplicationID:          lookup(r.keys.ApplicationID),
		MinPlatformVersion:     lookup(r.keys.MinPlatformVersion),
		TargetPlatformVersion:  lookup(r.keys.TargetPlatformVersion),
		CompileTargetVersion:   lookup(r.keys.CompileTargetVersion),
		SupportedArchitectures: lookup(r.keys.SupportedArchitectures),
	}
}

func (r *Resolver) build(merged layer, defaults Defaults) (models.BuildConfiguration, error) {
	var (
		cfg models.BuildConfiguration
		err error
	)

	if cfg.VersionCode, err = positiveInt(FieldVersionCode, merged.VersionCode); err != nil {
		return models.BuildConfiguration{}, err
	}
	if cfg.MinPlatformVersion, err = positiveInt(FieldMinPlatformVersion, merged.MinPlatformVersion); err != nil {
		return models.BuildConfiguration{}, err
	}
	if cfg.TargetPlatformVersion, err = positiveInt(FieldTargetPlatformVersion, merged.TargetPlatformVersion); err != nil {
		return models.BuildConfiguration{}, err
	}
	if cfg.CompileTargetVersion, err = positiveInt(FieldCompileTargetVersion, merged.CompileTargetVersion); err != nil {
		return models.BuildConfiguration{}, err
	}

	if v := merged.ApplicationID; v.Raw != "" && !applicationIDPattern.MatchString(v.Raw) {
		return models.BuildConfiguration{}, &FieldFormatError{
			Field:  FieldApplicationID,
			Origin: v.Origin,
			Value:  v.Raw,
			Reason: "not a reverse-domain identifier",
		}
	}
	cfg.ApplicationID = merged.ApplicationID.Raw
	cfg.VersionName = merged.VersionName.Raw

	if v := merged.SupportedArchitectures; v.Raw != "" {
		cfg.SupportedArchitectures = normalizeArchitectures(strings.Split(v.Raw, ","))
		if len(cfg.SupportedArchitectures) == 0 {
			return models.BuildConfiguration{}, &FieldFormatError{
				Field:  FieldSupportedArchitectures,
				Origin: v.Origin,
				Value:  v.Raw,
				Reason: "no architecture listed",
			}
		}
	}

	cfg.Provenance = provenance(merged)

	fallback := models.BuildConfiguration{
		VersionCode:            defaults.VersionCode,
		VersionName:            defaults.VersionName,
		ApplicationID:          defaults.ApplicationID,
		MinPlatformVersion:     defaults.MinPlatformVersion,
		TargetPlatformVersion:  defaults.TargetPlatformVersion,
		CompileTargetVersion:   defaults.CompileTargetVersion,
		SupportedArchitectures: normalizeArchitectures(defaults.SupportedArchitectures),
	}
	if err = mergo.Merge(&cfg, fallback); err != nil {
		return models.BuildConfiguration{}, fmt.Errorf("error applying defaults: %w", err)
	}

	if cfg.MinPlatformVersion > cfg.TargetPlatformVersion {
		return models.BuildConfiguration{}, fmt.Errorf("%w: %d > %d",
			ErrInvalidPlatformRange, cfg.MinPlatformVersion, cfg.TargetPlatformVersion)
	}

	r.logger.Debug().
		Int("version_code", cfg.VersionCode).
		Str("version_name", cfg.VersionName).
		Str("application_id", cfg.ApplicationID).
		Interface("provenance", cfg.Provenance).
		Msg("build configuration resolved")

	return cfg, nil
}

func provenance(merged layer) map[string]string {
	fields := []struct {
		name  string
		value rawValue
	}{
		{FieldVersionCode, merged.VersionCode},
		{FieldVersionName, merged.VersionName},
		{FieldApplicationID, merged.ApplicationID},
		{FieldMinPlatformVersion, merged.MinPlatformVersion},
		{FieldTargetPlatformVersion, merged.TargetPlatformVersion},
		{FieldCompileTargetVersion, merged.CompileTargetVersion},
		{FieldSupportedArchitectures, merged.SupportedArchitectures},
	}

	p := make(map[string]string, len(fields))
	for _, f := range fields {
		if f.value.Origin == "" {
			p[f.name] = models.ProvenanceDefault
			continue
		}
		p[f.name] = f.value.Origin
	}

	return p
}

func positiveInt(field string, v rawValue) (int, error) {
	if v.Raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(v.Raw)
	if err != nil || n <= 0 {
		return 0, &FieldFormatError{
			Field:  field,
			Origin: v.Origin,
			Value:  v.Raw,
			Reason: "not a positive integer",
		}
	}

	return n, nil
}

// normalizeArchitectures trims entries, drops empty ones and duplicates,
// and keeps the first-seen order. It always returns a fresh slice.
func normalizeArchitectures(archs []string) []string {
	seen := make(map[string]struct{}, len(archs))
	out := make([]string, 0, len(archs))
	for _, a := range archs {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}

	return out
}
