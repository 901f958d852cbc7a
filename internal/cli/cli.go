// Package cli implements the isbn command-line interface.
//
// The root command keeps the classic single-letter interface:
//
//	isbn -c 0306406152     # validate
//	isbn -f 030640615      # append the check digit
//	isbn -r                # random ISBN-10
//
// Flags run in the order given and may repeat. Unknown flags are reported
// and skipped. The same operations are available as subcommands (check,
// fix, random, convert) with structured output, next to interactive,
// config and completion.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// is passed through context.Context; see loggerFromContext.
package cli

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/matzehuels/isbnkit/internal/config"
	"github.com/matzehuels/isbnkit/pkg/buildinfo"
	errs "github.com/matzehuels/isbnkit/pkg/errors"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "isbn"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// ErrUsage is returned when isbn is run without arguments. Usage has
// already been printed.
var ErrUsage = errors.New("no arguments given")

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out    io.Writer
	errOut io.Writer
	in     io.Reader

	configPath string
	verbose    bool
	cfg        config.Config
	logFile    *lumberjack.Logger
}

// New creates a CLI writing results to out and diagnostics to errOut.
func New(out, errOut io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(errOut, level),
		out:    out,
		errOut: errOut,
		cfg:    config.Defaults(),
	}
}

// SetInput sets the reader used by the interactive command.
func (c *CLI) SetInput(r io.Reader) {
	c.in = r
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// Close releases the log file, if one was opened.
func (c *CLI) Close() error {
	if c.logFile == nil {
		return nil
	}
	err := c.logFile.Close()
	c.logFile = nil
	return err
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var actions []action

	root := &cobra.Command{
		Use:   appName + " [-c isbn] [-f isbn] [-r] [-h]",
		Short: "Validate, fix and generate ISBN-10 and ISBN-13 identifiers",
		Long: `isbn validates ISBN check digits, appends missing ones and generates
random valid identifiers. Hyphens and spaces in the input are ignored.

Flags run in the order given and may repeat. -h prints this help and stops:
flags before it have already run, flags after it are skipped.`,
		Example: `  isbn -c 0-306-40615-2
  isbn -f 030640615
  isbn -r
  isbn check 978-0-30640-615-7 --output json`,
		Version:           buildinfo.Version,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Help alone needs no configuration, so it works with a broken file.
			if len(actions) > 0 && actions[0].kind == actionHelp {
				cmd.SetContext(withLogger(cmd.Context(), c.Logger))
				return nil
			}
			return c.setup(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runActions(cmd, actions, args)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.out)
	root.SetErr(c.errOut)

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/isbn/config.toml)")
	registerActionFlags(root, &actions)

	// Register all subcommands
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.fixCommand())
	root.AddCommand(c.randomCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.interactiveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// Execute runs the command line args (without the program name).
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.RootCommand()

	if len(args) == 0 {
		_ = root.Usage()
		return ErrUsage
	}

	root.InitDefaultHelpFlag()
	root.InitDefaultVersionFlag()
	if target, _, err := root.Find(args); err == nil && target == root {
		var unknown []string
		args, unknown = splitUnknownFlags(root, args)
		for _, u := range unknown {
			printWarning(c.errOut, "unknown option: %s", u)
		}
	}

	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// setup loads configuration and wires logging before any command runs.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	if err := c.configureLogging(cfg.Log, c.verbose); err != nil {
		return err
	}
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	loggerFromContext(cmd.Context()).Debug("configuration loaded", "entropy", cfg.Entropy, "output", cfg.Output)
	return nil
}

// ReportError prints err for the user.
func (c *CLI) ReportError(err error) {
	printError(c.errOut, "%s", errs.UserMessage(err))
}
