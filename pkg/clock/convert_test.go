package clock

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/binclock/pkg/errors"
	"github.com/matzehuels/binclock/pkg/observability"
)

func TestBerlinKnownTimes(t *testing.T) {
	tests := []struct {
		name string
		time TimeOfDay
		want []int
	}{
		{"midnight", Midnight, []int{0, 0, 0, 0, 0}},
		{"pre-midnight", LastInstant, []int{4, 3, 11, 4, 59}},
		{"noon", Noon, []int{2, 2, 0, 0, 0}},
		{"afternoon", MustTimeOfDay(13, 17, 1, 0), []int{2, 3, 3, 2, 1}},
		{"half past", MustTimeOfDay(9, 30, 0, 500_000_000), []int{1, 4, 6, 0, 0}},
		{"last second", MustTimeOfDay(23, 59, 59, 0), []int{4, 3, 11, 4, 59}},
	}

	c := NewBerlinClock()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			states, err := c.Convert(tt.time)
			require.NoError(t, err)
			assert.Equal(t, tt.want, LitCounts(states), "invalid lit cells count at %s", tt.time)
		})
	}
}

// naiveBerlin computes the Berlin lamps straight from the clock fields:
// blink, five-hours, hours, five-minutes, minutes.
func naiveBerlin(t TimeOfDay) []int {
	h, m, s := t.Hour(), t.Minute(), t.Second()
	return []int{s % 2, h / 5, h % 5, m / 5, m % 5}
}

func TestBerlinMatchesNaiveFormulaAllDay(t *testing.T) {
	c := NewBerlinClock()
	for tod := Midnight; tod.Valid(); tod = tod.Add(time.Second) {
		states, err := c.Convert(tod)
		require.NoError(t, err)

		got := []int{
			states[BerlinSeconds].Lit % 2,
			states[BerlinFiveHours].Lit,
			states[BerlinHours].Lit,
			states[BerlinFiveMinutes].Lit,
			states[BerlinMinutes].Lit,
		}
		if !assert.Equal(t, naiveBerlin(tod), got, "convert results differ from naive method at %s", tod) {
			return
		}
		if states[BerlinSeconds].Lit != tod.Second() {
			t.Fatalf("seconds row at %s = %d, want %d", tod, states[BerlinSeconds].Lit, tod.Second())
		}
	}
}

func TestBerlinAccountsForWholeSeconds(t *testing.T) {
	c := NewBerlinClock()
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		tod := TimeOfDay(rng.Int63n(NanosPerDay))
		states, err := c.Convert(tod)
		require.NoError(t, err)

		var sum int64
		for _, s := range states {
			sum += s.Nanos()
		}
		assert.Equal(t, tod.Nanos()-int64(tod.Nanosecond()), sum, "at %s", tod)
	}
}

func TestConvertRejectsInvalidInput(t *testing.T) {
	_, err := Convert(nil, Noon)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidPattern))

	for _, tod := range []TimeOfDay{-1, TimeOfDay(NanosPerDay), TimeOfDay(NanosPerDay * 3)} {
		_, err := Convert(BerlinPattern(), tod)
		require.Error(t, err, "time %d", int64(tod))
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidTime))
	}

	_, err = NewConverter(nil)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidPattern))
}

func TestConvertClampsOverflowingRow(t *testing.T) {
	// A fine row first absorbs at most its capacity; the rest flows on.
	p := MustPattern(MustRow(1, Minute, 4), MustRow(1, Hour, 24))
	states, err := Convert(p, MustTimeOfDay(10, 0, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, []int{4, 9}, LitCounts(states))
}

func TestConvertExactCoverageLayout(t *testing.T) {
	p := MustPattern(MustRow(1, Hour, 23), MustRow(1, Minute, 59), MustRow(1, Second, 59))
	states, err := Convert(p, LastInstant)
	require.NoError(t, err)
	assert.Equal(t, []int{23, 59, 59}, LitCounts(states))
}

func TestConvertSubSecondRows(t *testing.T) {
	p := MustPattern(
		MustRow(1, Hour, 24),
		MustRow(10, Minute, 5),
		MustRow(1, Minute, 9),
		MustRow(1, Second, 59),
		MustRow(250, Millisecond, 3),
		MustRow(1, Millisecond, 249),
		MustRow(1, Microsecond, 999),
		MustRow(1, Nanosecond, 999),
	)
	states, err := Convert(p, MustTimeOfDay(17, 43, 12, 876_543_210))
	require.NoError(t, err)
	assert.Equal(t, []int{17, 4, 3, 12, 3, 126, 543, 210}, LitCounts(states))
}

func TestConvertIsDeterministic(t *testing.T) {
	c := NewBerlinClock()
	tod := MustTimeOfDay(7, 21, 44, 123)
	first, err := c.Convert(tod)
	require.NoError(t, err)
	second, err := c.Convert(tod)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	first[0].Lit = 99
	third, err := c.Convert(tod)
	require.NoError(t, err)
	assert.Equal(t, 1, third[0].Lit, "results must not share state between calls")
}

func TestConvertBoundsForRandomPatterns(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	units := []Unit{Nanosecond, Microsecond, Millisecond, Second, Minute, Hour}

	built := 0
	for built < 50 {
		n := 1 + rng.Intn(6)
		rows := make([]Row, n)
		for i := range rows {
			rows[i] = MustRow(1+rng.Intn(30), units[rng.Intn(len(units))], 1+rng.Intn(100))
		}
		p, err := NewPattern(rows)
		if err != nil {
			continue
		}
		built++

		for j := 0; j < 200; j++ {
			tod := TimeOfDay(rng.Int63n(NanosPerDay))
			states, err := Convert(p, tod)
			require.NoError(t, err)
			require.Len(t, states, p.Len())
			for k, s := range states {
				assert.Equal(t, p.Row(k), s.Row)
				assert.GreaterOrEqual(t, s.Lit, 0)
				assert.LessOrEqual(t, s.Lit, s.Row.Cells())
			}
		}
	}
}

func TestConvertConcurrentCallers(t *testing.T) {
	c := NewBerlinClock()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for h := 0; h < 24; h++ {
				tod := MustTimeOfDay(h, offset*7, offset, 0)
				states, err := c.Convert(tod)
				if assert.NoError(t, err) {
					assert.Equal(t, naiveBerlin(tod)[1:], LitCounts(states)[:4])
				}
			}
		}(g)
	}
	wg.Wait()
}

func TestOf(t *testing.T) {
	c := NewBerlinClock()

	calls := 0
	got, err := Of(c, Noon, func(states []RowState) (int, error) {
		calls++
		return states[BerlinFiveHours].Lit, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, got)
	assert.Equal(t, 1, calls)

	calls = 0
	_, err = Of(c, TimeOfDay(-5), func([]RowState) (int, error) {
		calls++
		return 0, nil
	})
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidTime))
	assert.Zero(t, calls, "represent must not run when conversion fails")

	_, err = Of[string](c, Noon, nil)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	_, err = Of(nil, Noon, func([]RowState) (string, error) { return "", nil })
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidPattern))
}

type recordingHooks struct {
	observability.NoopClockHooks
	mu        sync.Mutex
	started   int
	remainder int64
}

func (h *recordingHooks) OnConvertStart(context.Context, int, int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.started++
}

func (h *recordingHooks) OnConvertComplete(_ context.Context, _ int, remainder int64, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remainder = remainder
}

func TestConvertEmitsHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetClockHooks(hooks)
	defer observability.Reset()

	_, err := NewBerlinClock().ConvertContext(context.Background(), MustTimeOfDay(1, 2, 3, 456))
	require.NoError(t, err)
	assert.Equal(t, 1, hooks.started)
	assert.Equal(t, int64(456), hooks.remainder)

	_, err = Convert(BerlinPattern(), TimeOfDay(-1))
	require.Error(t, err)
	assert.Equal(t, 1, hooks.started, "rejected input must not reach the hooks")
}
