package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/binclock/pkg/errors"
)

func fileOf(np NamedPattern) (patternFile, error) {
	if np.Pattern == nil {
		return patternFile{}, errors.New(errors.ErrCodeInvalidPattern, "clock rows must be specified")
	}
	f := patternFile{
		Name:        np.Name,
		Description: np.Description,
		Rows:        make([]rowSpec, np.Pattern.Len()),
	}
	for i, row := range np.Pattern.Rows() {
		unit := row.Unit()
		f.Rows[i] = rowSpec{Duration: row.Duration(), Unit: &unit, Cells: row.Cells()}
	}
	return f, nil
}

// WriteTOML encodes np as TOML and writes it to w. The output can be
// re-imported with [ReadTOML].
func WriteTOML(np NamedPattern, w io.Writer) error {
	f, err := fileOf(np)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode pattern")
	}
	return nil
}

// WriteJSON encodes np as indented JSON and writes it to w. The output can
// be re-imported with [ReadJSON].
func WriteJSON(np NamedPattern, w io.Writer) error {
	f, err := fileOf(np)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode pattern")
	}
	return nil
}

// WriteYAML encodes np as YAML and writes it to w. The output can be
// re-imported with [ReadYAML].
func WriteYAML(np NamedPattern, w io.Writer) error {
	f, err := fileOf(np)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode pattern")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode pattern")
	}
	return nil
}

// ExportPattern writes np to a file at path, choosing the encoding from
// the extension the same way [ImportPattern] does.
func ExportPattern(np NamedPattern, path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer f.Close()

	switch encodingOf(path) {
	case encJSON:
		return WriteJSON(np, f)
	case encYAML:
		return WriteYAML(np, f)
	default:
		return WriteTOML(np, f)
	}
}
