package config

import (
	"bytes"
	"flag"
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		want        NetAddress
	}{
		{name: "localhost", input: "localhost:8081", want: NetAddress{Host: "localhost", Port: 8081}},
		{name: "ipv4", input: "127.0.0.1:9000", want: NetAddress{Host: "127.0.0.1", Port: 9000}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "hostname not allowed", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-config", "/tmp/cfg.json",
		"-log-level", "debug",
		"-project-dir", "android",
		"-variant", "release",
		"-release-variants", "release, staging",
		"-signing-mode", "permissive",
		"-minify=false",
		"-shrink-resources",
		"-rules-files", "a.pro,b.pro",
		"-min-platform-version", "23",
		"-format", "yaml",
		"-o", "manifest.yaml",
		"-a", "localhost:9000",
		"-display-url", "http://display:8090",
		"-request-timeout", "2s",
		"-fallback-title", "Alert",
	})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/cfg.json", cfg.JSONFilePath)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "android", cfg.Build.ProjectDir)
	assert.Equal(t, "release", cfg.Build.Variant)
	assert.Equal(t, []string{"release", "staging"}, cfg.Build.ReleaseVariants)
	assert.Equal(t, "permissive", cfg.Build.SigningMode)
	require.NotNil(t, cfg.Build.Minify)
	assert.False(t, *cfg.Build.Minify)
	require.NotNil(t, cfg.Build.ShrinkResources)
	assert.True(t, *cfg.Build.ShrinkResources)
	assert.Nil(t, cfg.Build.RequireSDKPath)
	assert.Equal(t, []string{"a.pro", "b.pro"}, cfg.Build.RulesFiles)
	assert.Equal(t, 23, cfg.Build.MinPlatformVersion)
	assert.Equal(t, "yaml", cfg.Build.OutputFormat)
	assert.Equal(t, "manifest.yaml", cfg.Build.OutputPath)
	assert.Equal(t, "localhost:9000", cfg.Relay.HTTPAddress)
	assert.Equal(t, "http://display:8090", cfg.Relay.DisplayURL)
	assert.Equal(t, 2*time.Second, cfg.Relay.RequestTimeout)
	assert.Equal(t, "Alert", cfg.Relay.FallbackTitle)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_HelpPrintsUsage(t *testing.T) {
	var out bytes.Buffer
	flagOutput = &out
	t.Cleanup(func() { flagOutput = os.Stderr })

	_, err := ParseFlags([]string{"-h"})

	require.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, out.String(), "-signing-mode")
	assert.Contains(t, out.String(), "-display-url")
}

func TestParseFlags_Invalid(t *testing.T) {
	flagOutput = io.Discard
	t.Cleanup(func() { flagOutput = os.Stderr })

	tests := []struct {
		name string
		args []string
	}{
		{name: "bad address", args: []string{"-a", "nohost"}},
		{name: "bad bool", args: []string{"-minify=maybe"}},
		{name: "bad duration", args: []string{"-request-timeout", "soon"}},
		{name: "unknown flag", args: []string{"-token-issuer", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlags(tt.args)
			assert.Error(t, err)
		})
	}
}
