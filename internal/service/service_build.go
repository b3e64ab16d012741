// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ian Katengeza

package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/iankatengeza/energy-monitor-build/internal/config"
	"github.com/iankatengeza/energy-monitor-build/internal/logger"
	"github.com/iankatengeza/energy-monitor-build/internal/properties"
	"github.com/iankatengeza/energy-monitor-build/internal/resolver"
	"github.com/iankatengeza/energy-monitor-build/internal/signing"
	"github.com/iankatengeza/energy-monitor-build/models"
)

// SDKPathKey is the local property naming the framework SDK location.
const SDKPathKey = "flutter.sdk"

type buildService struct {
	cfg      config.Build
	resolver *resolver.Resolver
	selector *signing.Selector

	logger *logger.Logger
}

// NewBuildService creates a BuildService reading the property files named in
// cfg. Unset optional switches take their documented defaults.
func NewBuildService(cfg config.Build, log *logger.Logger) (BuildService, error) {
	mode, err := signing.ParseMode(cfg.SigningMode)
	if err != nil {
		return nil, err
	}

	rules := cfg.RulesFiles
	if len(rules) == 0 {
		rules = signing.DefaultRulesFiles()
	}

	selector, err := signing.NewSelector(signing.Options{
		Mode:            mode,
		ReleaseVariants: cfg.ReleaseVariants,
		ShrinkResources: boolOr(cfg.ShrinkResources, true),
		Minify:          boolOr(cfg.Minify, true),
		RulesFiles:      rules,
		BaseDir:         projectPath(cfg.ProjectDir, cfg.KeystoreBaseDir),
	}, log)
	if err != nil {
		return nil, err
	}

	return &buildService{
		cfg:      cfg,
		resolver: resolver.New(resolver.DefaultKeys(), log),
		selector: selector,
		logger:   log,
	}, nil
}

func (s *buildService) Prepare(ctx context.Context, variant string) (models.BuildPlan, error) {
	if err := ctx.Err(); err != nil {
		return models.BuildPlan{}, err
	}

	if strings.TrimSpace(variant) == "" {
		variant = s.cfg.Variant
	}

	sources, err := properties.LoadFiles(
		projectPath(s.cfg.ProjectDir, s.cfg.LocalPropertiesFile),
		projectPath(s.cfg.ProjectDir, s.cfg.ProjectPropertiesFile),
	)
	if err != nil {
		return models.BuildPlan{}, fmt.Errorf("%w: %w", ErrLoadBuildInputs, err)
	}

	if boolOr(s.cfg.RequireSDKPath, false) {
		if sdk, ok := sources[0].Lookup(SDKPathKey); !ok || strings.TrimSpace(sdk) == "" {
			return models.BuildPlan{}, fmt.Errorf("%w: %s", ErrSDKPathNotSet, sources[0].Origin())
		}
	}

	defaults := resolver.PlatformDefaults()
	if s.cfg.MinPlatformVersion > 0 {
		defaults.MinPlatformVersion = s.cfg.MinPlatformVersion
	}

	conf, err := s.resolver.Resolve(sources, defaults)
	if err != nil {
		return models.BuildPlan{}, fmt.Errorf("error resolving build configuration: %w", err)
	}

	signingSource, err := properties.LoadFile(projectPath(s.cfg.ProjectDir, s.cfg.SigningPropertiesFile))
	if err != nil {
		return models.BuildPlan{}, fmt.Errorf("%w: %w", ErrLoadBuildInputs, err)
	}

	creds := signing.LoadCredentials(signingSource)
	if creds == nil && signingSource.Exists() {
		s.logger.Warn().
			Str("source", signingSource.Origin()).
			Msg("signing properties are incomplete, ignoring them")
	}

	plan := models.BuildPlan{
		Configuration: conf,
		SigningMode:   string(s.selector.Mode()),
	}

	plan.Signing, err = s.selector.Select(conf, variant, creds)
	if err != nil {
		return plan, fmt.Errorf("error selecting signer for variant %q: %w", variant, err)
	}

	return plan, nil
}

// projectPath resolves name against dir unless name is absolute.
func projectPath(dir, name string) string {
	if name == "" || filepath.IsAbs(name) || dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
