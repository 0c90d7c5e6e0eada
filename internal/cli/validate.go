package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/binclock/pkg/errors"
	pkgio "github.com/matzehuels/binclock/pkg/io"
)

// validateCommand creates the validate command, which checks pattern files
// without converting anything.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check that pattern files describe valid clocks",
		Long: `Validate reads each pattern file and reports whether its rows are well
formed and together cover the whole day.`,
		Example: `  binclock validate decimal.toml
  binclock validate ~/.config/binclock/patterns/*.toml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(cmd.Context(), args)
		},
	}
}

func (c *CLI) runValidate(ctx context.Context, paths []string) error {
	prog := newProgress(loggerFromContext(ctx))

	failed := 0
	for _, path := range paths {
		np, err := pkgio.ImportPattern(path)
		if err != nil {
			failed++
			printError(c.out, "%s: %s", path, errors.UserMessage(err))
			continue
		}
		printSuccess(c.out, "%s: %s", path, describePattern(np))
	}
	prog.done("Validated " + plural(len(paths), "pattern"))

	if failed > 0 {
		return errors.New(errors.ErrCodeInvalidPattern, "%d of %s invalid", failed, plural(len(paths), "pattern"))
	}
	return nil
}
