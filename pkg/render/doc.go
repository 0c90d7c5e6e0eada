// Package render turns converted clock rows into displayable output.
//
// # Overview
//
// Every renderer consumes the []clock.RowState produced by
// [clock.Convert] and never changes it, so one conversion can feed several
// formats. [Text] has the signature expected by [clock.Of]:
//
//	text, err := clock.Of(clock.NewBerlinClock(), now, render.Text)
//
// The formats are:
//
//   - [Text]: "2 of 4 (5 x HOURS) cells light", one line per row
//   - [Grid]: rows of "[X]" and "[ ]" lamps for any pattern
//   - [BerlinGrid]: the seconds lamp followed by the four Berlin rows
//   - [JSON]: row layout, lit counts and lamp strings
//   - [Styled]: colored lamps for terminals, via lipgloss
//
// [Render] dispatches by format name and reports to the observability
// render hooks.
//
// # Berlin detection
//
// A result counts as a Berlin clock when its rows are exactly those of
// [clock.BerlinPattern]. Only then is the seconds row folded into a single
// blink lamp; [BerlinGrid] rejects anything else with UNSUPPORTED_SHAPE.
//
// # Row width
//
// The lamp formats draw one lamp per cell, so rows wider than
// [MaxLampCells] are rejected with UNSUPPORTED_SHAPE. [Text] has no limit.
package render
