package render

import (
	"encoding/json"

	"github.com/matzehuels/binclock/pkg/clock"
	"github.com/matzehuels/binclock/pkg/errors"
)

// JSONOption configures JSON rendering via [JSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	time    *clock.TimeOfDay
	pattern string
	compact bool
}

// WithJSONTime records the converted time in the output.
func WithJSONTime(t clock.TimeOfDay) JSONOption {
	return func(r *jsonRenderer) { r.time = &t }
}

// WithJSONPattern records the pattern name (e.g. "berlin") in the output.
func WithJSONPattern(name string) JSONOption {
	return func(r *jsonRenderer) { r.pattern = name }
}

// WithJSONCompact disables indentation.
func WithJSONCompact() JSONOption {
	return func(r *jsonRenderer) { r.compact = true }
}

type jsonOutput struct {
	Time    string    `json:"time,omitempty"`
	Nanos   *int64    `json:"nanos_of_day,omitempty"`
	Pattern string    `json:"pattern,omitempty"`
	Blink   *bool     `json:"blink,omitempty"`
	Rows    []jsonRow `json:"rows"`
}

type jsonRow struct {
	Duration int    `json:"duration"`
	Unit     string `json:"unit"`
	Cells    int    `json:"cells"`
	Lit      int    `json:"lit"`
	Lamps    string `json:"lamps"`
}

// JSON exports the row states as a JSON document. Each row carries its
// layout, lit count and a lamp string ("1" lit, "0" unlit). For a
// Berlin-shaped result the seconds lamp is included as "blink".
//
// Rows wider than [MaxLampCells] are rejected with UNSUPPORTED_SHAPE. JSON
// does not modify states and is safe to call concurrently.
func JSON(states []clock.RowState, opts ...JSONOption) ([]byte, error) {
	if err := checkLampWidth(states); err != nil {
		return nil, err
	}
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Pattern: r.pattern,
		Rows:    make([]jsonRow, 0, len(states)),
	}
	if r.time != nil {
		out.Time = r.time.String()
		nanos := r.time.Nanos()
		out.Nanos = &nanos
	}
	if checkBerlinShape(states) == nil {
		blink := clock.BlinkOn(states)
		out.Blink = &blink
	}
	for _, s := range states {
		lamps, _ := Grid([]clock.RowState{s}, WithLamps("1", "0"))
		out.Rows = append(out.Rows, jsonRow{
			Duration: s.Row.Duration(),
			Unit:     s.Row.Unit().String(),
			Cells:    s.Row.Cells(),
			Lit:      s.Lit,
			Lamps:    lamps[:len(lamps)-1],
		})
	}

	var (
		data []byte
		err  error
	)
	if r.compact {
		data, err = json.Marshal(out)
	} else {
		data, err = json.MarshalIndent(out, "", "  ")
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal row states")
	}
	return data, nil
}
