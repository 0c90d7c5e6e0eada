package clock

import (
	"context"
	"time"

	"github.com/matzehuels/binclock/pkg/errors"
	"github.com/matzehuels/binclock/pkg/observability"
)

// Converter distributes a time of day over the rows of a fixed [Pattern].
// It holds no mutable state; one Converter may serve any number of
// goroutines.
type Converter struct {
	pattern *Pattern
}

// NewConverter returns a converter for p. It fails with INVALID_PATTERN if p
// is nil.
func NewConverter(p *Pattern) (*Converter, error) {
	if p == nil {
		return nil, errors.New(errors.ErrCodeInvalidPattern, "clock pattern must be specified")
	}
	return &Converter{pattern: p}, nil
}

// Pattern returns the pattern the converter was built with.
func (c *Converter) Pattern() *Pattern { return c.pattern }

// Convert returns the state of every row of the converter's pattern at t.
func (c *Converter) Convert(t TimeOfDay) ([]RowState, error) {
	return ConvertContext(context.Background(), c.pattern, t)
}

// ConvertContext is like [Converter.Convert]; ctx is handed to the
// registered observability hooks.
func (c *Converter) ConvertContext(ctx context.Context, t TimeOfDay) ([]RowState, error) {
	return ConvertContext(ctx, c.pattern, t)
}

// Convert distributes t over the rows of p as a positional number system:
// each row, in order, lights as many lamps as the remaining time fills
// (never more than it has) and passes the rest on to the next row.
//
// All arithmetic is integer nanoseconds with floor division. The result
// has one [RowState] per row, in pattern order, and is freshly allocated on
// every call.
//
// Convert fails with INVALID_PATTERN for a nil pattern and INVALID_TIME if t
// lies outside [Midnight, LastInstant].
func Convert(p *Pattern, t TimeOfDay) ([]RowState, error) {
	return ConvertContext(context.Background(), p, t)
}

// ConvertContext is like [Convert]. The context is only passed to the
// observability hooks; conversion itself never blocks.
func ConvertContext(ctx context.Context, p *Pattern, t TimeOfDay) ([]RowState, error) {
	if p == nil {
		return nil, errors.New(errors.ErrCodeInvalidPattern, "clock pattern must be specified")
	}
	if !t.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidTime, "time for conversion must be within a day, got %dns", int64(t))
	}

	start := time.Now()
	observability.Clock().OnConvertStart(ctx, p.Len(), t.Nanos())

	remaining := t.Nanos()
	states := make([]RowState, 0, len(p.rows))
	for _, r := range p.rows {
		units := remaining / r.unit.Nanos()
		covered := units / int64(r.duration)
		lit := r.cells
		if covered < int64(r.cells) {
			lit = int(covered)
		}
		remaining -= int64(lit) * r.CellNanos()
		states = append(states, RowState{Row: r, Lit: lit})
	}

	observability.Clock().OnConvertComplete(ctx, p.Len(), remaining, time.Since(start))
	return states, nil
}

// Of converts t with c and hands the rows to represent, returning whatever
// it produces. represent is called exactly once, and only when conversion
// succeeds.
func Of[T any](c *Converter, t TimeOfDay, represent func([]RowState) (T, error)) (T, error) {
	var zero T
	if c == nil {
		return zero, errors.New(errors.ErrCodeInvalidPattern, "converter must be specified")
	}
	if represent == nil {
		return zero, errors.New(errors.ErrCodeInvalidInput, "representation function must be specified")
	}
	states, err := c.Convert(t)
	if err != nil {
		return zero, err
	}
	return represent(states)
}
