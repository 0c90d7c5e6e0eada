package main

import (
	"context"
	"fmt"
	"testing"

	apperrors "github.com/matzehuels/binclock/pkg/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"canceled", context.Canceled, exitInterrupted},
		{"wrapped cancel", fmt.Errorf("show: %w", context.Canceled), exitInterrupted},
		{"bad time", apperrors.New(apperrors.ErrCodeInvalidTime, "time must lie within a day"), exitUsage},
		{"bad format", apperrors.New(apperrors.ErrCodeInvalidFormat, "unknown format svg"), exitUsage},
		{"time given twice", apperrors.New(apperrors.ErrCodeInvalidInput, "time given twice"), exitUsage},
		{"bad pattern", apperrors.New(apperrors.ErrCodeInvalidPattern, "2 of 3 invalid"), exitDataErr},
		{"no coverage", apperrors.New(apperrors.ErrCodeInvalidCoverage, "rows must cover entire day"), exitDataErr},
		{"too wide", apperrors.New(apperrors.ErrCodeUnsupportedShape, "row 1 has 86400000 cells"), exitDataErr},
		{"missing file", apperrors.New(apperrors.ErrCodeFileNotFound, "nope.toml"), exitNoInput},
		{"unknown pattern", apperrors.New(apperrors.ErrCodePatternNotFound, "decimal"), exitNoInput},
		{"wrapped code", fmt.Errorf("run: %w", apperrors.New(apperrors.ErrCodeInvalidUnit, "fortnights")), exitDataErr},
		{"internal", apperrors.New(apperrors.ErrCodeInternal, "encode pattern"), exitFailure},
		{"plain error", fmt.Errorf(`unknown flag: --nope`), exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
