package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/binclock/pkg/clock"
	pkgio "github.com/matzehuels/binclock/pkg/io"
)

// patternsCommand creates the patterns command for listing and exporting
// clock patterns.
func (c *CLI) patternsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List available clock patterns",
		Long: `List the built-in Berlin clock and the custom patterns stored as
<name>.toml in the patterns directory ($XDG_CONFIG_HOME/binclock/patterns).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPatternsList()
		},
	}

	cmd.AddCommand(c.patternsShowCommand())
	cmd.AddCommand(c.patternsPathCommand())

	return cmd
}

func (c *CLI) runPatternsList() error {
	cat := catalog()
	names, err := cat.Names()
	if err != nil {
		return err
	}

	printTitle(c.out, "Patterns")
	for _, name := range names {
		np, err := cat.Lookup(name)
		if err != nil {
			printWarning(c.out, "%s: %v", name, err)
			continue
		}
		printKeyValue(c.out, name, describePattern(np))
	}
	if cat.Dir != "" {
		printDetail(c.out, "custom patterns: %s", cat.Dir)
	}
	return nil
}

// patternsShowCommand creates the "patterns show" subcommand, which prints a
// pattern as TOML or exports it to a file.
func (c *CLI) patternsShowCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a pattern definition",
		Example: `  binclock patterns show berlin
  binclock patterns show berlin -o ~/.config/binclock/patterns/mine.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			np, err := catalog().Lookup(args[0])
			if err != nil {
				return err
			}
			if output == "" {
				return pkgio.WriteTOML(np, c.out)
			}
			if err := pkgio.ExportPattern(np, output); err != nil {
				return err
			}
			printSuccess(c.out, "Exported %s", np.Name)
			printFile(c.out, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file (.toml, .json, .yaml or .yml) instead of stdout")

	return cmd
}

// patternsPathCommand creates the "patterns path" subcommand.
func (c *CLI) patternsPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the custom patterns directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := patternsDir()
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, dir)
			return nil
		},
	}
}

// describePattern summarizes a pattern, e.g. "5 rows, finest cell 1s - desc".
func describePattern(np pkgio.NamedPattern) string {
	s := plural(np.Pattern.Len(), "row")
	if finest, ok := clock.MostPreciseRow(np.Pattern.Rows()); ok {
		s += ", finest cell " + time.Duration(finest.CellNanos()).String()
	}
	if np.Description != "" {
		s += " - " + np.Description
	}
	return s
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}
