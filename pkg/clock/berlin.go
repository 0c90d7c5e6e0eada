package clock

// Row indices of the Berlin pattern.
const (
	BerlinFiveHours = iota
	BerlinHours
	BerlinFiveMinutes
	BerlinMinutes
	BerlinSeconds
)

// berlin is the Berlin clock (Mengenlehreuhr) layout. The physical clock
// has a single lamp blinking every second instead of a seconds row; the
// 59-cell seconds row keeps the converter uniform, and the lamp state is
// the parity of its lit count.
var berlin = MustPattern(
	MustRow(5, Hour, 4),
	MustRow(1, Hour, 4),
	MustRow(5, Minute, 11),
	MustRow(1, Minute, 4),
	MustRow(1, Second, 59),
)

// BerlinPattern returns the Berlin clock pattern.
func BerlinPattern() *Pattern { return berlin }

// NewBerlinClock returns a converter over [BerlinPattern].
func NewBerlinClock() *Converter {
	return &Converter{pattern: berlin}
}

// BlinkOn reports the state of the Berlin seconds lamp for a conversion of
// the Berlin pattern: on for odd seconds.
func BlinkOn(states []RowState) bool {
	if len(states) <= BerlinSeconds {
		return false
	}
	return states[BerlinSeconds].Lit%2 != 0
}
