package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iankatengeza/energy-monitor-build/models"
)

var errUnknownFormat = errors.New("unknown manifest format")

// writeManifest writes plan to path, or to stdout when path is empty.
func writeManifest(path, format string, plan models.BuildPlan) (err error) {
	if path == "" {
		return encodePlan(os.Stdout, format, plan)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating manifest file: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	return encodePlan(f, format, plan)
}

func encodePlan(w io.Writer, format string, plan models.BuildPlan) error {
	switch strings.ToLower(format) {
	case "", "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(plan); err != nil {
			return fmt.Errorf("error encoding json manifest: %w", err)
		}
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(plan); err != nil {
			return fmt.Errorf("error encoding yaml manifest: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("error encoding yaml manifest: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}

	return nil
}
