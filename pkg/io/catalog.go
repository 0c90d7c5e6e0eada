package io

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/matzehuels/binclock/pkg/clock"
	"github.com/matzehuels/binclock/pkg/errors"
)

// BerlinName is the name of the built-in Berlin clock pattern.
const BerlinName = "berlin"

const patternExt = ".toml"

// Catalog resolves pattern names to patterns. The Berlin pattern is always
// available; other names are looked up as <Dir>/<name>.toml.
type Catalog struct {
	Dir string
}

// Berlin returns the built-in Berlin clock pattern.
func Berlin() NamedPattern {
	return NamedPattern{
		Name:        BerlinName,
		Description: "Berlin clock (Mengenlehreuhr)",
		Pattern:     clock.BerlinPattern(),
	}
}

// Lookup returns the pattern called name. It returns INVALID_INPUT for a
// malformed name and PATTERN_NOT_FOUND when no such pattern exists.
func (c Catalog) Lookup(name string) (NamedPattern, error) {
	if err := errors.ValidatePatternName(name); err != nil {
		return NamedPattern{}, err
	}
	if strings.EqualFold(name, BerlinName) {
		return Berlin(), nil
	}
	if c.Dir == "" {
		return NamedPattern{}, errors.New(errors.ErrCodePatternNotFound, "pattern not found: %s", name)
	}

	np, err := ImportPattern(filepath.Join(c.Dir, name+patternExt))
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return NamedPattern{}, errors.Wrap(errors.ErrCodePatternNotFound, err, "pattern not found: %s", name)
	}
	return np, err
}

// Names lists the built-in pattern followed by the sorted names of the
// pattern files in Dir. A missing directory is not an error.
func (c Catalog) Names() ([]string, error) {
	names := []string{BerlinName}
	if c.Dir == "" {
		return names, nil
	}
	entries, err := os.ReadDir(c.Dir)
	if os.IsNotExist(err) {
		return names, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", c.Dir)
	}

	var custom []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != patternExt {
			continue
		}
		name := strings.TrimSuffix(e.Name(), patternExt)
		if errors.ValidatePatternName(name) != nil || strings.EqualFold(name, BerlinName) {
			continue
		}
		custom = append(custom, name)
	}
	sort.Strings(custom)
	return append(names, custom...), nil
}
