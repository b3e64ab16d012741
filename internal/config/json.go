package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the configuration file.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Build struct {
		ProjectDir            string   `json:"project_dir"`
		LocalPropertiesFile   string   `json:"local_properties"`
		ProjectPropertiesFile string   `json:"project_properties"`
		SigningPropertiesFile string   `json:"signing_properties"`
		KeystoreBaseDir       string   `json:"keystore_base_dir"`
		Variant               string   `json:"variant"`
		ReleaseVariants       []string `json:"release_variants"`
		SigningMode           string   `json:"signing_mode"`
		ShrinkResources       *bool    `json:"shrink_resources"`
		Minify                *bool    `json:"minify"`
		RulesFiles            []string `json:"rules_files"`
		MinPlatformVersion    int      `json:"min_platform_version"`
		RequireSDKPath        *bool    `json:"require_sdk_path"`
		OutputFormat          string   `json:"output_format"`
		OutputPath            string   `json:"output"`
	} `json:"build,omitempty"`

	Relay struct {
		HTTPAddress    string   `json:"http_address"`
		DisplayURL     string   `json:"display_url"`
		RequestTimeout Duration `json:"request_timeout"`
		FallbackTitle  string   `json:"fallback_title"`
		FallbackBody   string   `json:"fallback_body"`
		IconRef        string   `json:"icon"`
		BadgeRef       string   `json:"badge"`
	} `json:"relay,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	b := jsonCfg.Build
	r := jsonCfg.Relay
	cfg := &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Build: Build{
			ProjectDir:            b.ProjectDir,
			LocalPropertiesFile:   b.LocalPropertiesFile,
			ProjectPropertiesFile: b.ProjectPropertiesFile,
			SigningPropertiesFile: b.SigningPropertiesFile,
			KeystoreBaseDir:       b.KeystoreBaseDir,
			Variant:               b.Variant,
			ReleaseVariants:       b.ReleaseVariants,
			SigningMode:           b.SigningMode,
			ShrinkResources:       b.ShrinkResources,
			Minify:                b.Minify,
			RulesFiles:            b.RulesFiles,
			MinPlatformVersion:    b.MinPlatformVersion,
			RequireSDKPath:        b.RequireSDKPath,
			OutputFormat:          b.OutputFormat,
			OutputPath:            b.OutputPath,
		},
		Relay: Relay{
			HTTPAddress:    r.HTTPAddress,
			DisplayURL:     r.DisplayURL,
			RequestTimeout: time.Duration(r.RequestTimeout),
			FallbackTitle:  r.FallbackTitle,
			FallbackBody:   r.FallbackBody,
			IconRef:        r.IconRef,
			BadgeRef:       r.BadgeRef,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
