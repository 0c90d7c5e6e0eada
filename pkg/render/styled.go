package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/binclock/pkg/clock"
)

// =============================================================================
// Lamp Palette
// =============================================================================

var (
	colorRed    = lipgloss.Color("196")
	colorYellow = lipgloss.Color("220")
	colorCyan   = lipgloss.Color("36")
	colorOff    = lipgloss.Color("238")
)

var (
	lampStyle = lipgloss.NewStyle().Padding(0, 1).MarginRight(1)
	offStyle  = lampStyle.Background(colorOff)
)

// StyledOption configures [Styled].
type StyledOption func(*styledRenderer)

type styledRenderer struct {
	renderer *lipgloss.Renderer
	width    int
}

// WithRenderer renders through r instead of the default lipgloss renderer,
// which is useful to force or disable colors.
func WithRenderer(r *lipgloss.Renderer) StyledOption {
	return func(s *styledRenderer) { s.renderer = r }
}

// WithLampWidth sets the inner width of each lamp in columns (default 1).
func WithLampWidth(w int) StyledOption {
	return func(s *styledRenderer) {
		if w > 0 {
			s.width = w
		}
	}
}

// Styled renders the row states as colored terminal lamps, one row per
// line, centered on the widest row.
//
// Berlin clock results use the real clock's colors: a yellow seconds lamp
// on top, red hour lamps, yellow minute lamps and red quarter-hour markers
// in the five-minute row. Other patterns color hour rows red, minute rows
// yellow and finer rows cyan.
func Styled(states []clock.RowState, opts ...StyledOption) (string, error) {
	if err := checkLampWidth(states); err != nil {
		return "", err
	}
	r := styledRenderer{width: 1}
	for _, opt := range opts {
		opt(&r)
	}

	var lines []string
	if checkBerlinShape(states) == nil {
		lines = append(lines, r.lamp(clock.BlinkOn(states), colorYellow))
		for i, s := range states[:clock.BerlinSeconds] {
			lines = append(lines, r.row(s, berlinColor(i)))
		}
	} else {
		for _, s := range states {
			lines = append(lines, r.row(s, unitColor(s.Row.Unit())))
		}
	}

	return r.style(lipgloss.NewStyle()).
		Render(lipgloss.JoinVertical(lipgloss.Center, lines...)) + "\n", nil
}

func (r styledRenderer) style(s lipgloss.Style) lipgloss.Style {
	if r.renderer != nil {
		return s.Renderer(r.renderer)
	}
	return s
}

func (r styledRenderer) lamp(on bool, c lipgloss.Color) string {
	glyph := strings.Repeat(" ", r.width)
	if on {
		return r.style(lampStyle).Background(c).Render(glyph)
	}
	return r.style(offStyle).Render(glyph)
}

func (r styledRenderer) row(s clock.RowState, color func(cell int) lipgloss.Color) string {
	lamps := make([]string, s.Row.Cells())
	for i := range lamps {
		lamps[i] = r.lamp(s.IsLit(i), color(i))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, lamps...)
}

func berlinColor(row int) func(int) lipgloss.Color {
	switch row {
	case clock.BerlinFiveHours, clock.BerlinHours:
		return solid(colorRed)
	case clock.BerlinFiveMinutes:
		return func(cell int) lipgloss.Color {
			if (cell+1)%3 == 0 {
				return colorRed
			}
			return colorYellow
		}
	default:
		return solid(colorYellow)
	}
}

func unitColor(u clock.Unit) func(int) lipgloss.Color {
	switch {
	case u >= clock.Hour:
		return solid(colorRed)
	case u == clock.Minute:
		return solid(colorYellow)
	default:
		return solid(colorCyan)
	}
}

func solid(c lipgloss.Color) func(int) lipgloss.Color {
	return func(int) lipgloss.Color { return c }
}
