package clock

import (
	"math"

	"github.com/matzehuels/binclock/pkg/errors"
)

// Pattern is the validated, ordered row layout of a binary clock. Row order
// is the order in which time is distributed during conversion, coarsest
// rows first for a conventional clock.
//
// A Pattern is immutable after [NewPattern] returns and is safe to share
// between goroutines.
type Pattern struct {
	rows []Row
}

// NewPattern validates rows and returns a pattern that can represent every
// instant of a day.
//
// NewPattern returns an INVALID_PATTERN error for a nil or empty slice, or if
// any row is the zero [Row]. It returns INVALID_COVERAGE if the rows fail
// [CheckDayCoverage]. The slice is copied; later changes to rows do not
// affect the pattern.
func NewPattern(rows []Row) (*Pattern, error) {
	if rows == nil {
		return nil, errors.New(errors.ErrCodeInvalidPattern, "clock rows must be specified")
	}
	if len(rows) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidPattern, "at least one clock row must be specified")
	}
	for i, r := range rows {
		if r.IsZero() {
			return nil, errors.New(errors.ErrCodeInvalidPattern, "row %d is not a valid row pattern", i)
		}
	}

	mostPrecise, _ := MostPreciseRow(rows)
	if err := CheckDayCoverage(rows, mostPrecise); err != nil {
		return nil, err
	}

	return &Pattern{rows: append([]Row(nil), rows...)}, nil
}

// MustPattern is like [NewPattern] but panics on error.
func MustPattern(rows ...Row) *Pattern {
	p, err := NewPattern(rows)
	if err != nil {
		panic(err)
	}
	return p
}

// Rows returns a copy of the pattern's rows in application order.
func (p *Pattern) Rows() []Row {
	return append([]Row(nil), p.rows...)
}

// Len returns the number of rows.
func (p *Pattern) Len() int { return len(p.rows) }

// Row returns the i-th row. It panics if i is out of range.
func (p *Pattern) Row(i int) Row { return p.rows[i] }

// Capacity returns the latest instant, in nanoseconds since midnight, that
// the pattern can represent exactly: every row fully lit plus one tick short
// of the finest cell.
func (p *Pattern) Capacity() int64 {
	mostPrecise, _ := MostPreciseRow(p.rows)
	return saturatingAdd(sumRowNanos(p.rows), mostPrecise.CellNanos()-1)
}

// MostPreciseRow returns the row spanning the fewest nanoseconds in total.
// When several rows tie, the first one wins. It returns false for an empty
// slice.
func MostPreciseRow(rows []Row) (Row, bool) {
	if len(rows) == 0 {
		return Row{}, false
	}
	best := rows[0]
	for _, r := range rows[1:] {
		if r.RowNanos() < best.RowNanos() {
			best = r
		}
	}
	return best, true
}

// CheckDayCoverage ensures the rows, applied greedily, reach the last
// nanosecond of the day. Coverage beyond 24 hours is accepted.
//
// One cell of mostPrecise is added to the rows' total so that a layout
// ending exactly at 23:59:59 with a seconds row still passes: the final
// second is represented by every lamp lit plus the sub-second remainder.
func CheckDayCoverage(rows []Row, mostPrecise Row) error {
	total := saturatingAdd(sumRowNanos(rows), mostPrecise.CellNanos())
	if total < NanosPerDay {
		return errors.New(errors.ErrCodeInvalidCoverage, "rows must cover entire day (covered %dns of %dns)", total, NanosPerDay)
	}
	return nil
}

func sumRowNanos(rows []Row) int64 {
	var total int64
	for _, r := range rows {
		total = saturatingAdd(total, r.RowNanos())
	}
	return total
}

func saturatingAdd(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}
