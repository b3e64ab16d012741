// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ian Katengeza

package properties

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/magiconair/properties"
)

type fileSource struct {
	path    string
	exists  bool
	entries map[string]string
}

// LoadFile reads the .properties file at path.
//
// A missing file yields a source with Exists() == false and no error. A file
// that exists but cannot be read or parsed returns an error wrapping
// [ErrLoadSource]. Values are taken verbatim: ${key} references are not
// expanded.
func LoadFile(path string) (Source, error) {
	loader := &properties.Loader{
		Encoding:         properties.UTF8,
		DisableExpansion: true,
	}

	p, err := loader.LoadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &fileSource{path: path}, nil
		}
		return nil, fmt.Errorf("%w %s: %w", ErrLoadSource, path, err)
	}

	return &fileSource{
		path:    path,
		exists:  true,
		entries: p.Map(),
	}, nil
}

// LoadFiles loads every path in order and stops at the first load error.
func LoadFiles(paths ...string) ([]Source, error) {
	sources := make([]Source, 0, len(paths))
	for _, path := range paths {
		src, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}

	return sources, nil
}

func (s *fileSource) Origin() string {
	return s.path
}

func (s *fileSource) Exists() bool {
	return s.exists
}

func (s *fileSource) Lookup(key string) (string, bool) {
	if !s.exists {
		return "", false
	}
	v, ok := s.entries[key]
	return v, ok
}
