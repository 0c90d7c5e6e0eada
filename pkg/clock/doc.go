// Package clock converts wall-clock times into binary clock lamp states.
//
// # Overview
//
// A binary clock shows the time as rows of lamps. Each row has a fixed
// number of cells and each cell stands for a fixed span of time. This
// package models such clocks generically:
//
//   - [Row]: one row, Cells lamps of Duration x [Unit] each
//   - [Pattern]: an ordered, validated list of rows covering a whole day
//   - [RowState]: how many lamps of a row are lit at a given time
//   - [Converter]: applies a [TimeOfDay] to a pattern
//
// # Conversion
//
// [Convert] treats the rows as a positional number system. Starting with
// the full time since midnight, each row lights as many lamps as the
// remaining time covers, capped at its cell count, and subtracts the time
// those lamps account for. The rest flows to the next row.
//
//	states, err := clock.Convert(clock.BerlinPattern(), clock.MustTimeOfDay(13, 17, 1, 0))
//	// states[0].Lit == 2  (2 x 5 hours)
//	// states[1].Lit == 3  (3 x 1 hour)
//	// states[2].Lit == 3  (3 x 5 minutes)
//	// states[3].Lit == 2  (2 x 1 minute)
//	// states[4].Lit == 1  (1 second, blink lamp on)
//
// # Validation
//
// [NewPattern] rejects layouts that cannot represent 23:59:59.999999999.
// The check sums every row's span and adds one cell of the most precise row
// (see [MostPreciseRow]), so a layout reaching exactly 23:59:59 with a
// seconds row is accepted.
//
// # Representations
//
// [Of] pairs conversion with a caller-supplied transform, mirroring how
// renderers in [github.com/matzehuels/binclock/pkg/render] consume the row
// states:
//
//	text, err := clock.Of(clock.NewBerlinClock(), now, render.Text)
//
// # Concurrency
//
// Rows and patterns are immutable; Convert allocates only call-local state.
// All exported functions are safe for concurrent use.
package clock
