package clock

import (
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/binclock/pkg/errors"
)

// TimeOfDay is a wall-clock time without date or zone, stored as
// nanoseconds since midnight. Valid values lie in [Midnight, LastInstant].
// The zero value is midnight.
type TimeOfDay int64

const (
	// Midnight is 00:00:00.000000000.
	Midnight TimeOfDay = 0
	// Noon is 12:00:00.000000000.
	Noon TimeOfDay = TimeOfDay(12 * time.Hour)
	// LastInstant is 23:59:59.999999999.
	LastInstant TimeOfDay = TimeOfDay(NanosPerDay - 1)
)

// NewTimeOfDay builds a time of day from its fields, rejecting any field
// outside its natural range with INVALID_TIME.
func NewTimeOfDay(hour, min, sec, nsec int) (TimeOfDay, error) {
	switch {
	case hour < 0 || hour > 23:
		return 0, errors.New(errors.ErrCodeInvalidTime, "hour out of range: %d", hour)
	case min < 0 || min > 59:
		return 0, errors.New(errors.ErrCodeInvalidTime, "minute out of range: %d", min)
	case sec < 0 || sec > 59:
		return 0, errors.New(errors.ErrCodeInvalidTime, "second out of range: %d", sec)
	case nsec < 0 || nsec > 999_999_999:
		return 0, errors.New(errors.ErrCodeInvalidTime, "nanosecond out of range: %d", nsec)
	}
	d := time.Duration(hour)*time.Hour +
		time.Duration(min)*time.Minute +
		time.Duration(sec)*time.Second +
		time.Duration(nsec)
	return TimeOfDay(d), nil
}

// MustTimeOfDay is like [NewTimeOfDay] but panics on error.
func MustTimeOfDay(hour, min, sec, nsec int) TimeOfDay {
	t, err := NewTimeOfDay(hour, min, sec, nsec)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeOfDayOf returns the wall-clock time of t in t's location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	tod, _ := NewTimeOfDay(t.Hour(), t.Minute(), t.Second(), t.Nanosecond())
	return tod
}

// timeLayouts are tried in order by ParseTimeOfDay.
var timeLayouts = []string{
	"15:04:05.999999999",
	"15:04:05",
	"15:04",
}

// ParseTimeOfDay parses "HH:MM", "HH:MM:SS" or "HH:MM:SS.fffffffff".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDayOf(t), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidTime, "cannot parse time of day: %q (want HH:MM[:SS[.fffffffff]])", s)
}

// Valid reports whether t lies within a single day.
func (t TimeOfDay) Valid() bool {
	return t >= Midnight && t <= LastInstant
}

// Nanos returns t as nanoseconds since midnight.
func (t TimeOfDay) Nanos() int64 { return int64(t) }

// Hour returns the hour within the day, in [0, 23].
func (t TimeOfDay) Hour() int { return int(time.Duration(t) / time.Hour) }

// Minute returns the minute offset within the hour, in [0, 59].
func (t TimeOfDay) Minute() int { return int(time.Duration(t) % time.Hour / time.Minute) }

// Second returns the second offset within the minute, in [0, 59].
func (t TimeOfDay) Second() int { return int(time.Duration(t) % time.Minute / time.Second) }

// Nanosecond returns the nanosecond offset within the second.
func (t TimeOfDay) Nanosecond() int { return int(time.Duration(t) % time.Second) }

// Add returns t+d. The result may fall outside a day; check [TimeOfDay.Valid].
func (t TimeOfDay) Add(d time.Duration) TimeOfDay { return t + TimeOfDay(d) }

// String formats t as ISO local time, e.g. "14:05:09" or "14:05:09.5".
// Trailing zero fractional digits are dropped.
func (t TimeOfDay) String() string {
	if !t.Valid() {
		return fmt.Sprintf("TimeOfDay(%d)", int64(t))
	}
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
	if ns := t.Nanosecond(); ns != 0 {
		frac := strings.TrimRight(fmt.Sprintf("%09d", ns), "0")
		s += "." + frac
	}
	return s
}
