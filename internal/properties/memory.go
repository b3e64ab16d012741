package properties

import "maps"

type memorySource struct {
	origin  string
	entries map[string]string
}

// FromMap builds an existing in-memory source. The map is copied, so later
// changes to entries do not affect the source.
func FromMap(origin string, entries map[string]string) Source {
	return &memorySource{
		origin:  origin,
		entries: maps.Clone(entries),
	}
}

// Missing builds a source that reports itself as non-existent, mirroring a
// property file that is absent on disk.
func Missing(origin string) Source {
	return &fileSource{path: origin}
}

func (s *memorySource) Origin() string {
	return s.origin
}

func (s *memorySource) Exists() bool {
	return true
}

func (s *memorySource) Lookup(key string) (string, bool) {
	v, ok := s.entries[key]
	return v, ok
}
