package render

import (
	"strings"

	"github.com/matzehuels/binclock/pkg/clock"
	"github.com/matzehuels/binclock/pkg/errors"
)

const (
	lampOn  = "[X]"
	lampOff = "[ ]"
)

// MaxLampCells is the widest row the lamp formats ([Grid], [BerlinGrid],
// [JSON] and [Styled]) draw: one lamp per minute of the day.
const MaxLampCells = 1440

// checkLampWidth rejects rows too wide to draw lamp by lamp.
func checkLampWidth(states []clock.RowState) error {
	for i, s := range states {
		if s.Row.Cells() > MaxLampCells {
			return errors.New(errors.ErrCodeUnsupportedShape, "row %d has %d cells, lamp formats draw at most %d", i+1, s.Row.Cells(), MaxLampCells)
		}
	}
	return nil
}

// GridOption configures [Grid] and [BerlinGrid].
type GridOption func(*gridRenderer)

type gridRenderer struct {
	on, off string
}

// WithLamps replaces the default "[X]" / "[ ]" lamp glyphs.
func WithLamps(on, off string) GridOption {
	return func(r *gridRenderer) { r.on, r.off = on, off }
}

func newGridRenderer(opts []GridOption) gridRenderer {
	r := gridRenderer{on: lampOn, off: lampOff}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r gridRenderer) writeRow(sb *strings.Builder, s clock.RowState) {
	for i := 0; i < s.Row.Cells(); i++ {
		if s.IsLit(i) {
			sb.WriteString(r.on)
		} else {
			sb.WriteString(r.off)
		}
	}
	sb.WriteByte('\n')
}

// Grid renders every row as a line of lamps, lit lamps first. It works for
// any pattern whose rows have at most [MaxLampCells] cells.
func Grid(states []clock.RowState, opts ...GridOption) (string, error) {
	if err := checkLampWidth(states); err != nil {
		return "", err
	}
	r := newGridRenderer(opts)
	var sb strings.Builder
	sb.Grow(len(states) * averageLineLength)
	for _, s := range states {
		r.writeRow(&sb, s)
	}
	return sb.String(), nil
}

// BerlinGrid renders a Berlin clock: the seconds lamp on the first line,
// lit on odd seconds, then the four hour and minute rows.
//
// It returns UNSUPPORTED_SHAPE unless states was converted with
// [clock.BerlinPattern].
func BerlinGrid(states []clock.RowState, opts ...GridOption) (string, error) {
	if err := checkBerlinShape(states); err != nil {
		return "", err
	}
	r := newGridRenderer(opts)

	var sb strings.Builder
	sb.Grow(len(states) * averageLineLength)
	if clock.BlinkOn(states) {
		sb.WriteString(r.on)
	} else {
		sb.WriteString(r.off)
	}
	sb.WriteByte('\n')

	for _, s := range states[:clock.BerlinSeconds] {
		r.writeRow(&sb, s)
	}
	return sb.String(), nil
}

func checkBerlinShape(states []clock.RowState) error {
	berlin := clock.BerlinPattern()
	if len(states) != berlin.Len() {
		return errors.New(errors.ErrCodeUnsupportedShape, "clock pattern is not suitable for Berlin clock: %d rows, want %d", len(states), berlin.Len())
	}
	for i, s := range states {
		if s.Row != berlin.Row(i) {
			return errors.New(errors.ErrCodeUnsupportedShape, "clock pattern is not suitable for Berlin clock: row %d is %s, want %s", i, s.Row, berlin.Row(i))
		}
	}
	return nil
}
