// Command buildcfg resolves the build configuration and release signer of a
// platform project and writes the resulting build plan for the packaging
// toolchain. The plan goes to stdout (or -o); logs go to stderr.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/iankatengeza/energy-monitor-build/internal/config"
	"github.com/iankatengeza/energy-monitor-build/internal/logger"
	"github.com/iankatengeza/energy-monitor-build/internal/service"
	"github.com/iankatengeza/energy-monitor-build/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Fprint(os.Stderr, info)

	log := logger.NewBuildLogger("buildcfg")
	cfg, err := config.GetStructuredConfig()
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	if err = cfg.Build.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid build configs")
	}

	log.Debug().Any("config", cfg.Build).Msg("received configs")

	services, err := service.NewBuildServices(*cfg, info, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	plan, err := services.BuildService.Prepare(context.Background(), cfg.Build.Variant)
	if err != nil {
		log.Fatal().Err(err).
			Str("variant", cfg.Build.Variant).
			Str("signing_kind", string(plan.Signing.Kind)).
			Msg("build preparation failed")
	}

	if err = writeManifest(cfg.Build.OutputPath, cfg.Build.OutputFormat, plan); err != nil {
		log.Fatal().Err(err).Msg("error writing build manifest")
	}

	log.Info().
		Str("variant", plan.Signing.Variant).
		Str("signing_kind", string(plan.Signing.Kind)).
		Int("version_code", plan.Configuration.VersionCode).
		Str("version_name", plan.Configuration.VersionName).
		Msg("build plan written")
}
