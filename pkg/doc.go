// Package pkg provides the libraries behind binclock.
//
// # Overview
//
// Binclock shows a time of day as the lamps of a binary clock, the Berlin
// clock (Mengenlehreuhr) being the best known one. The pkg directory is
// organized into these areas:
//
//  1. [clock] - Domain logic (rows, patterns, greedy conversion, Berlin clock)
//  2. [render] - Presentation (text, lamp grids, JSON, styled terminal output)
//  3. [io] - Pattern files (TOML, JSON and YAML import/export, named catalog)
//  4. [errors] - Structured error codes shared by every package
//  5. [observability] - Optional hooks for logging and metrics
//  6. [buildinfo] - Version information injected at build time
//
// # Architecture
//
// The typical data flow through binclock:
//
//	Pattern (built-in or TOML file)
//	         ↓
//	    [clock] package (validate pattern, convert time of day)
//	         ↓
//	    []clock.RowState (lit lamps per row)
//	         ↓
//	    [render] package (text, grid, JSON, styled)
//
// # Quick Start
//
// Convert a time on the Berlin clock and print one line per row:
//
//	import (
//	    "fmt"
//	    "time"
//
//	    "github.com/matzehuels/binclock/pkg/clock"
//	    "github.com/matzehuels/binclock/pkg/render"
//	)
//
//	func main() {
//	    now := clock.TimeOfDayOf(time.Now())
//	    text, err := clock.Of(clock.NewBerlinClock(), now, render.Text)
//	    if err != nil {
//	        panic(err)
//	    }
//	    fmt.Print(text)
//	}
//
// Custom clocks are described by rows ordered from most to least
// significant:
//
//	p, err := clock.NewPattern([]clock.Row{
//	    clock.MustRow(1, clock.Hour, 23),
//	    clock.MustRow(1, clock.Minute, 59),
//	    clock.MustRow(1, clock.Second, 59),
//	})
//
// [clock]: github.com/matzehuels/binclock/pkg/clock
// [render]: github.com/matzehuels/binclock/pkg/render
// [io]: github.com/matzehuels/binclock/pkg/io
// [errors]: github.com/matzehuels/binclock/pkg/errors
// [observability]: github.com/matzehuels/binclock/pkg/observability
// [buildinfo]: github.com/matzehuels/binclock/pkg/buildinfo
package pkg
