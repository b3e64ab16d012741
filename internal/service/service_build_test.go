package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iankatengeza/energy-monitor-build/internal/config"
	"github.com/iankatengeza/energy-monitor-build/internal/logger"
	"github.com/iankatengeza/energy-monitor-build/internal/properties"
	"github.com/iankatengeza/energy-monitor-build/internal/resolver"
	"github.com/iankatengeza/energy-monitor-build/internal/service"
	"github.com/iankatengeza/energy-monitor-build/internal/signing"
	"github.com/iankatengeza/energy-monitor-build/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func boolPtr(b bool) *bool {
	return &b
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func buildConfig(dir string) config.Build {
	return config.Build{
		ProjectDir:            dir,
		LocalPropertiesFile:   "local.properties",
		ProjectPropertiesFile: "gradle.properties",
		SigningPropertiesFile: "key.properties",
		KeystoreBaseDir:       "app",
		Variant:               "release",
		SigningMode:           "strict",
		MinPlatformVersion:    21,
	}
}

func newBuildService(t *testing.T, cfg config.Build) service.BuildService {
	t.Helper()
	svc, err := service.NewBuildService(cfg, logger.Nop())
	require.NoError(t, err)
	return svc
}

const signingProperties = `storeFile=upload.jks
storePassword=store-secret
keyAlias=upload
keyPassword=key-secret
`

// ── NewBuildService ───────────────────────────────────────────────────────────

func TestNewBuildService_UnknownSigningMode(t *testing.T) {
	cfg := buildConfig(t.TempDir())
	cfg.SigningMode = "lenient"

	svc, err := service.NewBuildService(cfg, logger.Nop())
	assert.Nil(t, svc)
	assert.ErrorIs(t, err, signing.ErrUnknownSigningMode)
}

// ── Prepare ───────────────────────────────────────────────────────────────────

func TestPrepare_NoFilesUsesDefaults(t *testing.T) {
	cfg := buildConfig(t.TempDir())
	cfg.Variant = "debug"

	plan, err := newBuildService(t, cfg).Prepare(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, resolver.DefaultVersionCode, plan.Configuration.VersionCode)
	assert.Equal(t, resolver.DefaultVersionName, plan.Configuration.VersionName)
	assert.Equal(t, resolver.DefaultApplicationID, plan.Configuration.ApplicationID)
	assert.Equal(t, models.ProvenanceDefault, plan.Configuration.Provenance[resolver.FieldVersionCode])
	assert.Equal(t, models.UseFallbackIdentity, plan.Signing.Kind)
	assert.Equal(t, "debug", plan.Signing.Variant)
	assert.Equal(t, "strict", plan.SigningMode)
}

func TestPrepare_LocalOverridesProject(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "local.properties"), "flutter.versionCode=7\n")
	writeFile(t, filepath.Join(dir, "gradle.properties"), "flutter.versionCode=3\nflutter.versionName=2.1.0\n")

	plan, err := newBuildService(t, buildConfig(dir)).Prepare(context.Background(), "debug")
	require.NoError(t, err)

	assert.Equal(t, 7, plan.Configuration.VersionCode)
	assert.Equal(t, "2.1.0", plan.Configuration.VersionName)
	assert.Equal(t, filepath.Join(dir, "local.properties"), plan.Configuration.Provenance[resolver.FieldVersionCode])
	assert.Equal(t, filepath.Join(dir, "gradle.properties"), plan.Configuration.Provenance[resolver.FieldVersionName])
}

func TestPrepare_MinPlatformVersionKnob(t *testing.T) {
	cfg := buildConfig(t.TempDir())
	cfg.MinPlatformVersion = 26

	plan, err := newBuildService(t, cfg).Prepare(context.Background(), "debug")
	require.NoError(t, err)
	assert.Equal(t, 26, plan.Configuration.MinPlatformVersion)
}

func TestPrepare_MalformedValue(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "local.properties"), "flutter.versionCode=abc\n")

	_, err := newBuildService(t, buildConfig(dir)).Prepare(context.Background(), "debug")
	assert.ErrorIs(t, err, resolver.ErrInvalidFieldFormat)
}

func TestPrepare_UnreadablePropertiesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "local.properties"), 0o755))

	_, err := newBuildService(t, buildConfig(dir)).Prepare(context.Background(), "debug")
	assert.ErrorIs(t, err, service.ErrLoadBuildInputs)
	assert.ErrorIs(t, err, properties.ErrLoadSource)
}

func TestPrepare_RequireSDKPath(t *testing.T) {
	tests := []struct {
		name    string
		local   string
		wantErr bool
	}{
		{name: "sdk set", local: "flutter.sdk=/opt/flutter\n"},
		{name: "sdk blank", local: "flutter.sdk=\n", wantErr: true},
		{name: "sdk missing", local: "flutter.versionCode=2\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, "local.properties"), tt.local)
			cfg := buildConfig(dir)
			cfg.RequireSDKPath = boolPtr(true)

			_, err := newBuildService(t, cfg).Prepare(context.Background(), "debug")
			if tt.wantErr {
				assert.ErrorIs(t, err, service.ErrSDKPathNotSet)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPrepare_ReleaseWithCredentials(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "key.properties"), signingProperties)
	writeFile(t, filepath.Join(dir, "app", "upload.jks"), "keystore")

	plan, err := newBuildService(t, buildConfig(dir)).Prepare(context.Background(), "release")
	require.NoError(t, err)

	assert.Equal(t, models.UseReleaseIdentity, plan.Signing.Kind)
	require.NotNil(t, plan.Signing.Credentials)
	assert.Equal(t, filepath.Join(dir, "app", "upload.jks"), plan.Signing.Credentials.KeystoreLocation)
	assert.True(t, plan.Signing.ShrinkResources)
	assert.True(t, plan.Signing.Minify)
	assert.Equal(t, signing.DefaultRulesFiles(), plan.Signing.RulesFiles)
}

func TestPrepare_ReleaseMinifyDisabled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "key.properties"), signingProperties)
	writeFile(t, filepath.Join(dir, "app", "upload.jks"), "keystore")
	cfg := buildConfig(dir)
	cfg.Minify = boolPtr(false)
	cfg.ShrinkResources = boolPtr(false)

	plan, err := newBuildService(t, cfg).Prepare(context.Background(), "release")
	require.NoError(t, err)

	assert.False(t, plan.Signing.Minify)
	assert.False(t, plan.Signing.ShrinkResources)
	assert.Empty(t, plan.Signing.RulesFiles)
}

func TestPrepare_ReleaseWithoutCredentials(t *testing.T) {
	t.Run("strict", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "gradle.properties"), "flutter.versionCode=9\n")

		plan, err := newBuildService(t, buildConfig(dir)).Prepare(context.Background(), "release")
		require.ErrorIs(t, err, signing.ErrMissingSigningCredentials)
		assert.Equal(t, models.Unsigned, plan.Signing.Kind)
		assert.Equal(t, 9, plan.Configuration.VersionCode)
	})

	t.Run("permissive", func(t *testing.T) {
		cfg := buildConfig(t.TempDir())
		cfg.SigningMode = "permissive"

		plan, err := newBuildService(t, cfg).Prepare(context.Background(), "release")
		require.NoError(t, err)
		assert.Equal(t, models.UseFallbackIdentity, plan.Signing.Kind)
		assert.NotEmpty(t, plan.Signing.Warnings)
		assert.Equal(t, "permissive", plan.SigningMode)
	})

	t.Run("incomplete file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "key.properties"), "storeFile=upload.jks\nkeyAlias=upload\n")

		_, err := newBuildService(t, buildConfig(dir)).Prepare(context.Background(), "release")
		assert.ErrorIs(t, err, signing.ErrMissingSigningCredentials)
	})
}

func TestPrepare_MissingKeystore(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "key.properties"), signingProperties)

	plan, err := newBuildService(t, buildConfig(dir)).Prepare(context.Background(), "release")
	assert.ErrorIs(t, err, signing.ErrInvalidCredentialPath)
	assert.Equal(t, models.Unsigned, plan.Signing.Kind)
}

func TestPrepare_CustomReleaseVariants(t *testing.T) {
	cfg := buildConfig(t.TempDir())
	cfg.ReleaseVariants = []string{"staging"}

	plan, err := newBuildService(t, cfg).Prepare(context.Background(), "release")
	require.NoError(t, err)
	assert.Equal(t, models.UseFallbackIdentity, plan.Signing.Kind, "release is no longer a release variant")

	_, err = newBuildService(t, cfg).Prepare(context.Background(), "staging")
	assert.ErrorIs(t, err, signing.ErrMissingSigningCredentials)
}

func TestPrepare_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newBuildService(t, buildConfig(t.TempDir())).Prepare(ctx, "debug")
	assert.ErrorIs(t, err, context.Canceled)
}
