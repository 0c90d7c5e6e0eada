package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/binclock/internal/cli"
	apperrors "github.com/matzehuels/binclock/pkg/errors"
)

// Exit codes follow sysexits(3) so scripts can tell a bad invocation from
// a bad pattern file.
const (
	exitFailure     = 1
	exitUsage       = 64  // EX_USAGE: bad time, format or flag combination
	exitDataErr     = 65  // EX_DATAERR: pattern fails validation
	exitNoInput     = 66  // EX_NOINPUT: pattern file or name not found
	exitInterrupted = 130 // Standard shell convention for SIGINT
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		code := exitCode(err)
		if code != exitInterrupted {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(code)
	}
}

func exitCode(err error) int {
	if errors.Is(err, context.Canceled) {
		return exitInterrupted
	}
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidTime, apperrors.ErrCodeInvalidFormat:
		return exitUsage
	case apperrors.ErrCodeInvalidPattern, apperrors.ErrCodeInvalidDuration, apperrors.ErrCodeInvalidUnit,
		apperrors.ErrCodeInvalidCells, apperrors.ErrCodeInvalidCoverage, apperrors.ErrCodeUnsupportedShape:
		return exitDataErr
	case apperrors.ErrCodeFileNotFound, apperrors.ErrCodePatternNotFound, apperrors.ErrCodeInvalidPath:
		return exitNoInput
	default:
		return exitFailure
	}
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// Apply the log level before the root's own pre-run attaches the logger.
	originalPreRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := cli.LogInfo
		if verbose {
			level = cli.LogDebug
		}
		c.SetLogLevel(level)

		if originalPreRun != nil {
			return originalPreRun(cmd, args)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}
