package internal

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Source loads scenarios from a file
type Source interface {
	Load(path string) ([]Scenario, error)
}

// SourceFunc is a function that implements Source
type SourceFunc func(path string) ([]Scenario, error)

func (f SourceFunc) Load(path string) ([]Scenario, error) {
	return f(path)
}

// sources is the registry of available scenario file formats
var sources = map[string]Source{}

// extensions maps file extensions to source names for auto-detection
var extensions = map[string]string{}

// RegisterSource registers a source with the given name and the file extensions it handles
func RegisterSource(name string, s Source, exts ...string) {
	sources[name] = s
	for _, ext := range exts {
		extensions[strings.ToLower(ext)] = name
	}
}

// GetSource returns the source for the given format name
func GetSource(name string) (Source, error) {
	s, ok := sources[name]
	if !ok {
		return nil, fmt.Errorf("unknown scenario format: %s (available: %v)", name, AvailableSources())
	}
	return s, nil
}

// AvailableSources returns the registered format names, sorted
func AvailableSources() []string {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsKnownSource returns true if the name is a registered source
func IsKnownSource(name string) bool {
	_, ok := sources[name]
	return ok
}

// DetectSource returns the format name for a path based on its extension, or "" if unknown
func DetectSource(path string) string {
	return extensions[strings.ToLower(filepath.Ext(path))]
}

// ParseFileArg parses a file argument that may have a format prefix.
// Returns (format, path). If no valid prefix, format is empty.
// Example: "yaml:plans.txt" → ("yaml", "plans.txt")
// Example: "C:\plans.xlsx" → ("", "C:\plans.xlsx")
func ParseFileArg(arg string) (format, path string) {
	idx := strings.Index(arg, ":")
	if idx == -1 {
		return "", arg
	}
	prefix := arg[:idx]
	if IsKnownSource(prefix) {
		return prefix, arg[idx+1:]
	}
	return "", arg
}

// LoadScenarios loads scenarios from a file argument, using the explicit
// format prefix if present and the file extension otherwise.
func LoadScenarios(arg string) ([]Scenario, error) {
	format, path := ParseFileArg(arg)
	if format == "" {
		format = DetectSource(path)
	}
	if format == "" {
		return nil, fmt.Errorf("cannot determine format of %s: use a prefix such as %s:%s", path, AvailableSources()[0], path)
	}

	src, err := GetSource(format)
	if err != nil {
		return nil, err
	}

	scenarios, err := src.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s scenarios from %s: %w", format, path, err)
	}

	// Unnamed scenarios get a positional name
	for i := range scenarios {
		if strings.TrimSpace(scenarios[i].Name) == "" {
			scenarios[i].Name = fmt.Sprintf("Scenario %d", i+1)
		}
	}
	return scenarios, nil
}
