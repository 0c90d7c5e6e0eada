package render

import (
	"context"
	"strings"
	"time"

	"github.com/matzehuels/binclock/pkg/clock"
	"github.com/matzehuels/binclock/pkg/errors"
	"github.com/matzehuels/binclock/pkg/observability"
)

// Supported format names.
const (
	FormatText   = "text"   // one descriptive line per row
	FormatGrid   = "grid"   // [X]/[ ] lamps; Berlin layout when applicable
	FormatJSON   = "json"   // machine-readable export
	FormatStyled = "styled" // colored terminal lamps
)

// Formats lists every supported format in display order.
var Formats = []string{FormatText, FormatGrid, FormatJSON, FormatStyled}

// Options carries the settings shared by every format.
type Options struct {
	Time    clock.TimeOfDay // recorded by JSON
	Pattern string          // pattern name, recorded by JSON
	Styled  []StyledOption
}

// ValidateFormats checks that every entry of formats is supported.
func ValidateFormats(formats []string) error {
	return errors.ValidateFormats(formats, Formats...)
}

// ParseFormats splits a comma-separated format list, defaulting to text
// followed by grid.
func ParseFormats(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{FormatText, FormatGrid}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Render dispatches states to the renderer for format. The grid format
// uses [BerlinGrid] for Berlin results and [Grid] otherwise.
func Render(ctx context.Context, format string, states []clock.RowState, opts Options) ([]byte, error) {
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, format)
	start := time.Now()

	data, err := dispatch(format, states, opts)
	hooks.OnRenderComplete(ctx, format, len(data), time.Since(start), err)
	return data, err
}

func dispatch(format string, states []clock.RowState, opts Options) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatText:
		return asBytes(Text(states))
	case FormatGrid:
		if checkBerlinShape(states) == nil {
			return asBytes(BerlinGrid(states))
		}
		return asBytes(Grid(states))
	case FormatJSON:
		jsonOpts := []JSONOption{WithJSONTime(opts.Time)}
		if opts.Pattern != "" {
			jsonOpts = append(jsonOpts, WithJSONPattern(opts.Pattern))
		}
		return JSON(states, jsonOpts...)
	case FormatStyled:
		return asBytes(Styled(states, opts.Styled...))
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", format)
	}
}

func asBytes(s string, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}
