package render

import (
	"strconv"
	"strings"

	"github.com/matzehuels/binclock/pkg/clock"
)

const averageLineLength = 30

// Text renders one line per row describing how many of its lamps are lit,
// e.g. "2 of 4 (5 x HOURS) cells light". It works for any pattern.
func Text(states []clock.RowState) (string, error) {
	var sb strings.Builder
	sb.Grow(len(states) * averageLineLength)
	for _, s := range states {
		sb.WriteString(strconv.Itoa(s.Lit))
		sb.WriteString(" of ")
		sb.WriteString(strconv.Itoa(s.Row.Cells()))
		sb.WriteString(" (")
		sb.WriteString(strconv.Itoa(s.Row.Duration()))
		sb.WriteString(" x ")
		sb.WriteString(s.Row.Unit().String())
		sb.WriteString(") cells light\n")
	}
	return sb.String(), nil
}
