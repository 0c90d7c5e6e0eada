package clock

import (
	"fmt"
	"math"

	"github.com/matzehuels/binclock/pkg/errors"
)

// Row describes one row of a binary clock: Cells lamps, each covering
// Duration x Unit of time. Rows are immutable once built; construct them
// with [NewRow] or [MustRow]. The zero Row is invalid.
type Row struct {
	duration int
	unit     Unit
	cells    int
}

// NewRow validates and returns a row of cells lamps, each covering
// duration units of time.
//
// NewRow returns an error if:
//   - duration is not positive (INVALID_DURATION)
//   - unit is undeclared, or is [Day] or coarser (INVALID_UNIT)
//   - cells is not positive (INVALID_CELLS)
//   - the row's total span does not fit in int64 nanoseconds (INVALID_DURATION)
func NewRow(duration int, unit Unit, cells int) (Row, error) {
	if duration <= 0 {
		return Row{}, errors.New(errors.ErrCodeInvalidDuration, "duration must be a positive value, got %d", duration)
	}
	if !unit.Valid() {
		return Row{}, errors.New(errors.ErrCodeInvalidUnit, "cell duration unit must be specified")
	}
	if unit >= Day {
		return Row{}, errors.New(errors.ErrCodeInvalidUnit, "cell can't count entire day and more (unit %s)", unit)
	}
	if cells <= 0 {
		return Row{}, errors.New(errors.ErrCodeInvalidCells, "row must have at least one cell, got %d", cells)
	}

	cell, ok := mulNanos(int64(duration), unit.Nanos())
	if !ok {
		return Row{}, errors.New(errors.ErrCodeInvalidDuration, "cell duration %d %s overflows", duration, unit)
	}
	if _, ok := mulNanos(cell, int64(cells)); !ok {
		return Row{}, errors.New(errors.ErrCodeInvalidDuration, "row of %d x %d %s overflows", cells, duration, unit)
	}

	return Row{duration: duration, unit: unit, cells: cells}, nil
}

// MustRow is like [NewRow] but panics on error. It is intended for
// package-level pattern tables.
func MustRow(duration int, unit Unit, cells int) Row {
	r, err := NewRow(duration, unit, cells)
	if err != nil {
		panic(err)
	}
	return r
}

// Duration returns the number of units one cell covers.
func (r Row) Duration() int { return r.duration }

// Unit returns the unit of a cell's duration.
func (r Row) Unit() Unit { return r.unit }

// Cells returns the number of lamps in the row.
func (r Row) Cells() int { return r.cells }

// IsZero reports whether r is the zero Row, i.e. was never validated.
func (r Row) IsZero() bool { return r == Row{} }

// CellNanos returns the nanoseconds covered by one cell.
func (r Row) CellNanos() int64 {
	return int64(r.duration) * r.unit.Nanos()
}

// RowNanos returns the nanoseconds covered by all cells of the row.
func (r Row) RowNanos() int64 {
	return r.CellNanos() * int64(r.cells)
}

// String formats the row as "cells x duration UNIT", e.g. "4 x 5 HOURS".
func (r Row) String() string {
	return fmt.Sprintf("%d x %d %s", r.cells, r.duration, r.unit)
}

// mulNanos multiplies two non-negative values, reporting false on overflow.
func mulNanos(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt64/b {
		return 0, false
	}
	return a * b, true
}
