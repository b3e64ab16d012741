package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// flagOutput receives the usage text and flag errors.
var flagOutput io.Writer = os.Stderr

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// optionalBool is a boolean flag that remembers whether it was set, so an
// explicit -minify=false survives the merge with defaults.
type optionalBool struct {
	value **bool
}

// stringList is a comma-separated flag value.
type stringList []string

// ParseFlags parses configuration flags from args (without the program name).
//
// Flags:
//
//	-c/-config json file path with configs
//	-log-level zerolog level name
//	-version application version reported by the relay
//	-project-dir platform project root
//	-local-properties local overrides file
//	-project-properties project properties file
//	-signing-properties signing credentials file
//	-keystore-base-dir directory relative keystore paths are resolved against
//	-variant build variant to prepare
//	-release-variants comma separated variants requiring release signing
//	-signing-mode strict or permissive
//	-shrink-resources shrink resources of release artifacts
//	-minify minify release artifacts
//	-rules-files comma separated shrinker rule files
//	-min-platform-version minimum platform API level default
//	-require-sdk-path fail when local properties lack flutter.sdk
//	-format manifest format, json or yaml
//	-o manifest output path
//	-a relay address in format [host]:[port]
//	-display-url notification display base URL
//	-request-timeout display request timeout (e.g., "5s")
//	-fallback-title / -fallback-body fallback notification content
//	-icon / -badge notification resource references
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		cfg            StructuredConfig
		relayAddress   NetAddress
		releaseVariant stringList
		rulesFiles     stringList
		requestTimeout time.Duration
	)

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(flagOutput)

	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&cfg.App.Version, "version", "", "Application version")

	fs.StringVar(&cfg.Build.ProjectDir, "project-dir", "", "Platform project root")
	fs.StringVar(&cfg.Build.LocalPropertiesFile, "local-properties", "", "Local properties file")
	fs.StringVar(&cfg.Build.ProjectPropertiesFile, "project-properties", "", "Project properties file")
	fs.StringVar(&cfg.Build.SigningPropertiesFile, "signing-properties", "", "Signing properties file")
	fs.StringVar(&cfg.Build.KeystoreBaseDir, "keystore-base-dir", "", "Base directory of relative keystore paths")
	fs.StringVar(&cfg.Build.Variant, "variant", "", "Build variant")
	fs.Var(&releaseVariant, "release-variants", "Comma separated release variants")
	fs.StringVar(&cfg.Build.SigningMode, "signing-mode", "", "Signing mode: strict or permissive")
	fs.Var(&optionalBool{value: &cfg.Build.ShrinkResources}, "shrink-resources", "Shrink resources of release artifacts")
	fs.Var(&optionalBool{value: &cfg.Build.Minify}, "minify", "Minify release artifacts")
	fs.Var(&rulesFiles, "rules-files", "Comma separated shrinker rule files")
	fs.IntVar(&cfg.Build.MinPlatformVersion, "min-platform-version", 0, "Default minimum platform API level")
	fs.Var(&optionalBool{value: &cfg.Build.RequireSDKPath}, "require-sdk-path", "Require flutter.sdk in local properties")
	fs.StringVar(&cfg.Build.OutputFormat, "format", "", "Manifest format: json or yaml")
	fs.StringVar(&cfg.Build.OutputPath, "o", "", "Manifest output path")

	fs.Var(&relayAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Relay.DisplayURL, "display-url", "", "Notification display base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Display request timeout (e.g., 5s)")
	fs.StringVar(&cfg.Relay.FallbackTitle, "fallback-title", "", "Fallback notification title")
	fs.StringVar(&cfg.Relay.FallbackBody, "fallback-body", "", "Fallback notification body")
	fs.StringVar(&cfg.Relay.IconRef, "icon", "", "Notification icon reference")
	fs.StringVar(&cfg.Relay.BadgeRef, "badge", "", "Notification badge reference")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Build.ReleaseVariants = releaseVariant
	cfg.Build.RulesFiles = rulesFiles
	cfg.Relay.HTTPAddress = relayAddress.String()
	cfg.Relay.RequestTimeout = requestTimeout

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

func (b *optionalBool) String() string {
	if b == nil || b.value == nil || *b.value == nil {
		return ""
	}

	return strconv.FormatBool(**b.value)
}

func (b *optionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}

	*b.value = &v
	return nil
}

// IsBoolFlag lets the flag be given without a value, as in -minify.
func (b *optionalBool) IsBoolFlag() bool {
	return true
}

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*l = append(*l, part)
		}
	}

	return nil
}
