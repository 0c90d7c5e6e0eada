// Package cli implements the binclock command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/binclock/pkg/buildinfo"
	"github.com/matzehuels/binclock/pkg/errors"
	pkgio "github.com/matzehuels/binclock/pkg/io"
	"github.com/matzehuels/binclock/pkg/observability"
	"github.com/matzehuels/binclock/pkg/render"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "binclock"

	// envPattern names the environment variable holding the default pattern.
	envPattern = "BINCLOCK_PATTERN"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	out    io.Writer

	metricsFile string
	metrics     *metricsHooks
}

// New creates a new CLI instance logging to w. Command results go to
// standard output.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects command results to w.
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Binclock shows the time on binary clocks",
		Long:         `Binclock converts a time of day into the lamp states of a binary clock such as the Berlin clock (Mengenlehreuhr), or of any custom clock described by a pattern file.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		// Without a subcommand, show the current time on the default clock.
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := showOpts{formats: render.ParseFormats("")}
			return c.runShow(cmd.Context(), &opts, time.Now())
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			c.installHooks()
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.flushMetrics()
		},
	}

	root.PersistentFlags().StringVar(&c.metricsFile, "metrics-file", "", "write Prometheus metrics to this file after the command")

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.out)

	root.AddCommand(c.showCommand())
	root.AddCommand(c.patternsCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// installHooks routes clock and render events to the logger, and also to a
// metrics registry when --metrics-file is set.
func (c *CLI) installHooks() {
	if c.metricsFile == "" {
		c.metrics = nil
		hooks := newLogHooks(c.Logger)
		observability.SetClockHooks(hooks)
		observability.SetRenderHooks(hooks)
		return
	}
	c.metrics = newMetricsHooks(c.Logger)
	observability.SetClockHooks(c.metrics)
	observability.SetRenderHooks(c.metrics)
}

// flushMetrics writes the metrics collected during the command, if any.
func (c *CLI) flushMetrics() error {
	if c.metrics == nil {
		return nil
	}
	if err := c.metrics.writeTextfile(c.metricsFile); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write metrics to %s", c.metricsFile)
	}
	c.Logger.Debugf("Wrote metrics to %s", c.metricsFile)
	return nil
}

// =============================================================================
// Patterns
// =============================================================================

// catalog returns the pattern catalog backed by the user's patterns
// directory. Without a resolvable home directory only built-in patterns are
// available.
func catalog() pkgio.Catalog {
	dir, err := patternsDir()
	if err != nil {
		return pkgio.Catalog{}
	}
	return pkgio.Catalog{Dir: dir}
}

// resolvePattern picks the pattern for a command. A pattern file wins over
// a pattern name; an empty name falls back to $BINCLOCK_PATTERN and then
// to the Berlin clock.
func resolvePattern(name, file string) (pkgio.NamedPattern, error) {
	if file != "" {
		return pkgio.ImportPattern(file)
	}
	if name == "" {
		name = os.Getenv(envPattern)
	}
	if name == "" {
		return pkgio.Berlin(), nil
	}
	return catalog().Lookup(name)
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/binclock/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// patternsDir returns the directory holding named pattern files.
func patternsDir() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "patterns"), nil
}

// openOutput returns a writer for path, or the CLI's output when path is empty.
func (c *CLI) openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{c.out}, nil
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
