package clock

import (
	"github.com/matzehuels/binclock/pkg/errors"
)

// RowState is the computed state of one row for a specific time: the row
// layout and how many of its lamps are lit. Lit lamps are always the
// leading ones.
type RowState struct {
	Row Row
	Lit int
}

// NewRowState validates that row is a real row and lit lies in
// [0, row.Cells()].
func NewRowState(row Row, lit int) (RowState, error) {
	if row.IsZero() {
		return RowState{}, errors.New(errors.ErrCodeInvalidPattern, "row pattern must be specified")
	}
	if lit < 0 {
		return RowState{}, errors.New(errors.ErrCodeInvalidLitCells, "count of lit cells must not be negative, got %d", lit)
	}
	if lit > row.Cells() {
		return RowState{}, errors.New(errors.ErrCodeInvalidLitCells, "row has %d cells, cannot light %d", row.Cells(), lit)
	}
	return RowState{Row: row, Lit: lit}, nil
}

// IsLit reports whether the i-th lamp (zero-based) is on.
func (s RowState) IsLit(i int) bool {
	return i >= 0 && i < s.Lit
}

// Nanos returns the time accounted for by the lit lamps.
func (s RowState) Nanos() int64 {
	return int64(s.Lit) * s.Row.CellNanos()
}

// LitCounts extracts the lit count of every row, in order.
func LitCounts(states []RowState) []int {
	out := make([]int, len(states))
	for i, s := range states {
		out[i] = s.Lit
	}
	return out
}
