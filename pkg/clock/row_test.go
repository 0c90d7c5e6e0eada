package clock

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/binclock/pkg/errors"
)

func TestNewRowNanos(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		unit     Unit
		cells    int
		wantCell int64
		wantRow  int64
	}{
		{"hours", 4, Hour, 4, 14_400_000_000_000, 57_600_000_000_000},
		{"minutes", 5, Minute, 11, 300_000_000_000, 3_300_000_000_000},
		{"single second", 1, Second, 1, 1_000_000_000, 1_000_000_000},
		{"milliseconds", 3, Millisecond, 4, 3_000_000, 12_000_000},
		{"microseconds", 5, Microsecond, 5, 5_000, 25_000},
		{"nanoseconds", 10, Nanosecond, 2, 10, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRow(tt.duration, tt.unit, tt.cells)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCell, r.CellNanos(), "nanoseconds covered by one cell")
			assert.Equal(t, tt.wantRow, r.RowNanos(), "nanoseconds covered by entire row")
			assert.Equal(t, tt.duration, r.Duration())
			assert.Equal(t, tt.unit, r.Unit())
			assert.Equal(t, tt.cells, r.Cells())
			assert.False(t, r.IsZero())
		})
	}
}

func TestNewRowRejects(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		unit     Unit
		cells    int
		code     errors.Code
	}{
		{"zero duration", 0, Nanosecond, 2, errors.ErrCodeInvalidDuration},
		{"negative duration", -5, Minute, 2, errors.ErrCodeInvalidDuration},
		{"day unit", 10, Day, 2, errors.ErrCodeInvalidUnit},
		{"undeclared coarse unit", 1, Day + 1, 2, errors.ErrCodeInvalidUnit},
		{"undeclared negative unit", 1, Unit(-1), 2, errors.ErrCodeInvalidUnit},
		{"zero cells", 10, Nanosecond, 0, errors.ErrCodeInvalidCells},
		{"negative cells", 10, Nanosecond, -2, errors.ErrCodeInvalidCells},
		{"cell overflow", math.MaxInt32, Hour, 1, errors.ErrCodeInvalidDuration},
		{"row overflow", 1, Hour, math.MaxInt32, errors.ErrCodeInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRow(tt.duration, tt.unit, tt.cells)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.code), "got %v, want code %s", err, tt.code)
		})
	}
}

func TestMustRowPanics(t *testing.T) {
	assert.Panics(t, func() { MustRow(0, Hour, 4) })
	assert.NotPanics(t, func() { MustRow(5, Hour, 4) })
}

func TestRowString(t *testing.T) {
	assert.Equal(t, "4 x 5 HOURS", MustRow(5, Hour, 4).String())
	assert.Equal(t, "59 x 1 SECONDS", MustRow(1, Second, 59).String())
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		input   string
		want    Unit
		wantErr bool
	}{
		{"HOURS", Hour, false},
		{"hours", Hour, false},
		{"h", Hour, false},
		{"Minute", Minute, false},
		{"min", Minute, false},
		{" seconds ", Second, false},
		{"ms", Millisecond, false},
		{"us", Microsecond, false},
		{"ns", Nanosecond, false},
		{"days", Day, false},
		{"fortnight", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseUnit(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrCodeInvalidUnit))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnitText(t *testing.T) {
	text, err := Minute.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "minutes", string(text))

	var u Unit
	require.NoError(t, u.UnmarshalText(text))
	assert.Equal(t, Minute, u)

	_, err = Unit(42).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "Unit(42)", Unit(42).String())
	assert.Zero(t, Unit(42).Nanos())
}
