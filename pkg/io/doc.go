// Package io reads and writes clock pattern definitions.
//
// # Overview
//
// A pattern file describes the rows of a custom clock, ordered from the
// most significant row to the least significant one. Three encodings are
// supported: TOML, the format used for the patterns directory, JSON and
// YAML.
//
// # TOML Format
//
//	name = "decimal"
//	description = "Tens and units of hours, minutes and seconds"
//
//	[[rows]]
//	duration = 10
//	unit = "hours"
//	cells = 2
//
//	[[rows]]
//	duration = 1
//	unit = "hours"
//	cells = 9
//
// Units accept the names understood by [clock.ParseUnit] ("hours", "min",
// "s", ...). Unknown keys are rejected so that typos do not silently
// produce a different clock.
//
// # JSON Format
//
//	{
//	  "name": "decimal",
//	  "rows": [{"duration": 10, "unit": "hours", "cells": 2}]
//	}
//
// # YAML Format
//
//	name: decimal
//	rows:
//	  - {duration: 10, unit: hours, cells: 2}
//	  - {duration: 1, unit: hours, cells: 9}
//
// # Import
//
// Use [ImportPattern] to read a pattern from a file path (the encoding is
// chosen by extension), or [ReadTOML], [ReadJSON] and [ReadYAML] to read from any
// io.Reader. Every decoded pattern is validated by [clock.NewPattern], so
// an imported pattern always covers the whole day.
//
// # Export
//
// [WriteTOML], [WriteJSON], [WriteYAML] and [ExportPattern] write a pattern back out.
// Exported files re-import to an identical pattern.
//
// # Catalog
//
// A [Catalog] resolves pattern names: "berlin" is built in and every other
// name maps to <dir>/<name>.toml.
package io
