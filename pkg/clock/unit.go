package clock

import (
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/binclock/pkg/errors"
)

// Unit is the granularity of a single cell's duration. Units are ordered
// from finest to coarsest; only units strictly finer than [Day] may be used
// by a [Row].
type Unit int

const (
	Nanosecond Unit = iota
	Microsecond
	Millisecond
	Second
	Minute
	Hour
	Day
)

// NanosPerDay is the length of one day in nanoseconds.
const NanosPerDay int64 = 24 * 60 * 60 * 1_000_000_000

var unitNanos = [...]int64{
	Nanosecond:  int64(time.Nanosecond),
	Microsecond: int64(time.Microsecond),
	Millisecond: int64(time.Millisecond),
	Second:      int64(time.Second),
	Minute:      int64(time.Minute),
	Hour:        int64(time.Hour),
	Day:         NanosPerDay,
}

var unitNames = [...]string{
	Nanosecond:  "NANOSECONDS",
	Microsecond: "MICROSECONDS",
	Millisecond: "MILLISECONDS",
	Second:      "SECONDS",
	Minute:      "MINUTES",
	Hour:        "HOURS",
	Day:         "DAYS",
}

// Valid reports whether u is one of the declared units, including [Day].
func (u Unit) Valid() bool {
	return u >= Nanosecond && u <= Day
}

// Nanos returns the number of nanoseconds in one u. It returns 0 for an
// undeclared unit.
func (u Unit) Nanos() int64 {
	if !u.Valid() {
		return 0
	}
	return unitNanos[u]
}

// String returns the upper-case plural name, e.g. "HOURS".
func (u Unit) String() string {
	if !u.Valid() {
		return "Unit(" + strconv.Itoa(int(u)) + ")"
	}
	return unitNames[u]
}

// unitAliases maps accepted spellings to units. Singular, plural and the
// time.Duration suffixes are all recognised.
var unitAliases = map[string]Unit{
	"ns": Nanosecond, "nanosecond": Nanosecond, "nanoseconds": Nanosecond,
	"us": Microsecond, "µs": Microsecond, "microsecond": Microsecond, "microseconds": Microsecond,
	"ms": Millisecond, "millisecond": Millisecond, "milliseconds": Millisecond,
	"s": Second, "sec": Second, "second": Second, "seconds": Second,
	"m": Minute, "min": Minute, "minute": Minute, "minutes": Minute,
	"h": Hour, "hour": Hour, "hours": Hour,
	"d": Day, "day": Day, "days": Day,
}

// ParseUnit parses a unit name case-insensitively. It accepts the names
// produced by [Unit.String] as well as short forms like "h" or "min".
func ParseUnit(s string) (Unit, error) {
	if u, ok := unitAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return u, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidUnit, "unknown time unit: %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (u Unit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidUnit, "unknown time unit: %d", int(u))
	}
	return []byte(strings.ToLower(unitNames[u])), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
