package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/binclock/pkg/clock"
	"github.com/matzehuels/binclock/pkg/errors"
	pkgio "github.com/matzehuels/binclock/pkg/io"
	"github.com/matzehuels/binclock/pkg/render"
)

// showOpts holds the command-line flags for the show command.
type showOpts struct {
	time        string   // time of day to convert; empty means now
	formats     []string // output formats: text, grid, json, styled
	pattern     string   // pattern name from the catalog
	patternFile string   // pattern file path, overrides pattern
	utc         bool     // use the current UTC time instead of local time
	output      string   // output file path (stdout if empty)
	noHeader    bool     // suppress the "Converting ..." line
}

// showCommand creates the show command, the default action of binclock.
//
// Default settings:
//   - time: now, in local time
//   - pattern: $BINCLOCK_PATTERN, else the Berlin clock
//   - format: text,grid
func (c *CLI) showCommand() *cobra.Command {
	var formatsStr string
	var opts showOpts

	cmd := &cobra.Command{
		Use:   "show [time]",
		Short: "Show a time of day on a binary clock",
		Long: `Show converts a time of day (default: now) into the lamps of a binary clock.

The time may be given as HH:MM, HH:MM:SS or HH:MM:SS.fffffffff, either as the
argument or with --time. Without --pattern or --pattern-file the pattern named
by $BINCLOCK_PATTERN is used, falling back to the Berlin clock.`,
		Example: `  binclock show
  binclock show 13:17:01 --format grid
  binclock show --pattern decimal --format text,styled
  binclock show 23:59:59 --format json -o clock.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if opts.time != "" {
					return errors.New(errors.ErrCodeInvalidInput, "time given both as argument and with --time")
				}
				opts.time = args[0]
			}
			opts.formats = render.ParseFormats(formatsStr)
			if err := render.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runShow(cmd.Context(), &opts, time.Now())
		},
	}

	cmd.Flags().StringVarP(&opts.time, "time", "t", "", "time of day to convert (default: now)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): "+strings.Join(render.Formats, ", ")+" (comma-separated, default text,grid)")
	cmd.Flags().StringVarP(&opts.pattern, "pattern", "p", "", "pattern name (default: $"+envPattern+" or berlin)")
	cmd.Flags().StringVar(&opts.patternFile, "pattern-file", "", "read the pattern from a TOML, JSON or YAML file")
	cmd.Flags().BoolVar(&opts.utc, "utc", false, "use the current UTC time instead of local time")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.noHeader, "no-header", false, "omit the \"Converting ...\" line")

	return cmd
}

// timeOfDay returns the time to convert: the parsed --time value, or now.
func (o *showOpts) timeOfDay(now time.Time) (clock.TimeOfDay, error) {
	if o.time != "" {
		return clock.ParseTimeOfDay(o.time)
	}
	if o.utc {
		now = now.UTC()
	}
	return clock.TimeOfDayOf(now), nil
}

// header reports whether the "Converting ..." line is printed. It is left
// out when any format is JSON so the output stays machine-readable.
func (o *showOpts) header() bool {
	if o.noHeader {
		return false
	}
	for _, f := range o.formats {
		if strings.EqualFold(f, render.FormatJSON) {
			return false
		}
	}
	return true
}

func (c *CLI) runShow(ctx context.Context, opts *showOpts, now time.Time) error {
	logger := loggerFromContext(ctx)

	t, err := opts.timeOfDay(now)
	if err != nil {
		return err
	}
	np, err := resolvePattern(opts.pattern, opts.patternFile)
	if err != nil {
		return err
	}
	logger.Debug("using pattern", "name", np.Name, "rows", np.Pattern.Len())

	conv, err := clock.NewConverter(np.Pattern)
	if err != nil {
		return err
	}
	states, err := conv.ConvertContext(ctx, t)
	if err != nil {
		return err
	}

	out, err := c.openOutput(opts.output)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", opts.output)
	}
	defer out.Close()

	if err := c.writeShow(ctx, out, opts, np, t, states); err != nil {
		return err
	}
	if opts.output != "" {
		logger.Infof("Wrote %s", opts.output)
	}
	return nil
}

func (c *CLI) writeShow(ctx context.Context, w io.Writer, opts *showOpts, np pkgio.NamedPattern, t clock.TimeOfDay, states []clock.RowState) error {
	if opts.header() {
		if _, err := fmt.Fprintf(w, "Converting %s to %s clock:\n", t, clockTitle(np.Name)); err != nil {
			return err
		}
	}
	renderOpts := render.Options{Time: t, Pattern: np.Name}
	for i, f := range opts.formats {
		data, err := render.Render(ctx, f, states, renderOpts)
		if err != nil {
			return err
		}
		if i > 0 {
			data = append([]byte("\n"), data...)
		}
		if len(data) > 0 && data[len(data)-1] != '\n' {
			data = append(data, '\n')
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
	}
	return nil
}

// clockTitle returns the display name of a pattern, e.g. "Berlin".
func clockTitle(name string) string {
	if strings.EqualFold(name, pkgio.BerlinName) {
		return "Berlin"
	}
	if name == "" {
		return "custom"
	}
	return name
}
