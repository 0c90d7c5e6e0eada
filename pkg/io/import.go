package io

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/binclock/pkg/clock"
	"github.com/matzehuels/binclock/pkg/errors"
)

// NamedPattern is a validated pattern together with its file metadata.
type NamedPattern struct {
	Name        string
	Description string
	Pattern     *clock.Pattern
}

type patternFile struct {
	Name        string    `toml:"name,omitempty" json:"name,omitempty" yaml:"name,omitempty"`
	Description string    `toml:"description,omitempty" json:"description,omitempty" yaml:"description,omitempty"`
	Rows        []rowSpec `toml:"rows" json:"rows" yaml:"rows"`
}

type rowSpec struct {
	Duration int         `toml:"duration" json:"duration" yaml:"duration"`
	Unit     *clock.Unit `toml:"unit" json:"unit" yaml:"unit"`
	Cells    int         `toml:"cells" json:"cells" yaml:"cells"`
}

// ReadTOML decodes a TOML pattern definition from r.
//
// ReadTOML returns INVALID_PATTERN for malformed TOML or unknown keys, and
// the row or coverage error from the clock package for a definition that
// does not describe a valid clock. ReadTOML does not close r.
func ReadTOML(r io.Reader) (NamedPattern, error) {
	var f patternFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return NamedPattern{}, errors.Wrap(errors.ErrCodeInvalidPattern, err, "decode pattern")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return NamedPattern{}, errors.New(errors.ErrCodeInvalidPattern, "unknown keys in pattern: %s", strings.Join(keys, ", "))
	}
	return f.build()
}

// ReadJSON decodes a JSON pattern definition from r. It follows the same
// rules as [ReadTOML].
func ReadJSON(r io.Reader) (NamedPattern, error) {
	var f patternFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return NamedPattern{}, errors.Wrap(errors.ErrCodeInvalidPattern, err, "decode pattern")
	}
	if _, err := dec.Token(); err != io.EOF {
		return NamedPattern{}, errors.New(errors.ErrCodeInvalidPattern, "decode pattern: unexpected data after the pattern document")
	}
	return f.build()
}

// ReadYAML decodes a YAML pattern definition from r. It follows the same
// rules as [ReadTOML].
func ReadYAML(r io.Reader) (NamedPattern, error) {
	var f patternFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return NamedPattern{}, errors.Wrap(errors.ErrCodeInvalidPattern, err, "decode pattern")
	}
	return f.build()
}

type fileEncoding int

const (
	encTOML fileEncoding = iota
	encJSON
	encYAML
)

// encodingOf picks the file encoding from the extension of path.
func encodingOf(path string) fileEncoding {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return encJSON
	case ".yaml", ".yml":
		return encYAML
	default:
		return encTOML
	}
}

func (f patternFile) build() (NamedPattern, error) {
	if len(f.Rows) == 0 {
		return NamedPattern{}, errors.New(errors.ErrCodeInvalidPattern, "pattern defines no rows")
	}
	rows := make([]clock.Row, len(f.Rows))
	for i, spec := range f.Rows {
		if spec.Unit == nil {
			return NamedPattern{}, errors.New(errors.ErrCodeInvalidUnit, "row %d: unit is required", i+1)
		}
		row, err := clock.NewRow(spec.Duration, *spec.Unit, spec.Cells)
		if err != nil {
			return NamedPattern{}, errors.New(errors.GetCode(err), "row %d: %s", i+1, errors.UserMessage(err))
		}
		rows[i] = row
	}
	p, err := clock.NewPattern(rows)
	if err != nil {
		return NamedPattern{}, err
	}
	return NamedPattern{Name: f.Name, Description: f.Description, Pattern: p}, nil
}

// ImportPattern reads the pattern file at path. Files ending in ".json"
// are decoded with [ReadJSON], ".yaml" and ".yml" with [ReadYAML], and
// everything else is treated as TOML. When the file does not name the
// pattern, the file name without extension is used.
//
// ImportPattern returns FILE_NOT_FOUND if path does not exist.
func ImportPattern(path string) (NamedPattern, error) {
	if err := errors.ValidatePath(path); err != nil {
		return NamedPattern{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NamedPattern{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "pattern file %s", path)
		}
		return NamedPattern{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	var np NamedPattern
	switch encodingOf(path) {
	case encJSON:
		np, err = ReadJSON(f)
	case encYAML:
		np, err = ReadYAML(f)
	default:
		np, err = ReadTOML(f)
	}
	if err != nil {
		return NamedPattern{}, err
	}
	if np.Name == "" {
		np.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return np, nil
}
