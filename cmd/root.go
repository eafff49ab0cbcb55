// Package cmd implements the linegrep command line.
//
//	linegrep -E <pattern> [--color=never|always|auto] [--config file] [-v] [--print-tree]
//
// One line is read from standard input. On a match the command prints true
// (or the highlighted line) and exits 0; otherwise it prints false and exits
// 1. Invalid patterns are reported on standard error with exit status 1.
package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/coregx/linegrep"
	"github.com/coregx/linegrep/internal/config"
	"github.com/coregx/linegrep/internal/highlight"
	"github.com/coregx/linegrep/internal/term"
	"github.com/coregx/linegrep/syntax"
)

// Exit codes.
const (
	ExitMatch   = 0
	ExitNoMatch = 1
	ExitError   = 1
)

const usageMessage = "Expected first argument to be '-E'"

type options struct {
	pattern    string
	color      string
	configPath string
	verbose    bool
	printTree  bool
}

// Execute runs the command line with the process arguments and standard
// streams and returns the exit code.
func Execute() int {
	return Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// Run executes linegrep with args (excluding the program name) and returns
// the exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] != "-E" {
		fmt.Fprintln(stdout, usageMessage)
		return ExitError
	}

	code := ExitError
	root := newRootCmd(stdin, stdout, stderr, &code)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		return ExitError
	}
	return code
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer, code *int) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "linegrep -E <pattern>",
		Short:         "linegrep - match one line of input against a pattern",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, path, err := config.Resolve(opts.configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("color") {
				opts.color = settings.Color
			}

			level := settings.LogLevel
			if opts.verbose {
				level = "debug"
			}
			logger, err := newLogger(level, stderr)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if path != "" {
				logger.Debug("Loaded settings", zap.String("path", path))
			}

			*code, err = run(logger, opts, settings, stdin, stdout, stderr)
			return err
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&opts.pattern, "extended-regexp", "E", "", "pattern to match")
	flags.StringVar(&opts.color, "color", config.ColorAuto, "highlight matches: never, always or auto")
	flags.StringVar(&opts.configPath, "config", "", "settings file (YAML or TOML)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&opts.printTree, "print-tree", false, "print the compiled pattern tree to stderr")

	return cmd
}

func run(logger *zap.Logger, opts *options, settings *config.Settings, stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	highlightOn, err := useColor(opts.color, stdout)
	if err != nil {
		return ExitError, err
	}

	re, err := linegrep.CompileWithConfig(opts.pattern, settings.EngineConfig())
	if err != nil {
		logger.Debug("Failed to compile pattern", zap.String("pattern", opts.pattern), zap.Error(err))
		fmt.Fprintln(stderr, err)
		return ExitError, nil
	}
	logger.Debug("Compiled pattern",
		zap.String("pattern", opts.pattern),
		zap.Stringer("strategy", re.Strategy()),
	)

	if opts.printTree {
		fmt.Fprintln(stderr, syntax.Format(re.Engine().Nodes()))
	}

	line, err := readLine(stdin)
	if err != nil {
		return ExitError, err
	}

	spans := re.FindAllSpans(line)
	stats := re.Stats()
	logger.Debug("Matched line",
		zap.Int("spans", len(spans)),
		zap.Uint64("prefilter_candidates", stats.PrefilterCandidates),
		zap.Uint64("prefilter_retired", stats.PrefilterRetired),
	)

	if len(spans) == 0 {
		fmt.Fprintln(stdout, "false")
		return ExitNoMatch, nil
	}
	if highlightOn {
		fmt.Fprintln(stdout, highlight.Line(line, spans))
	} else {
		fmt.Fprintln(stdout, "true")
	}
	return ExitMatch, nil
}

// readLine reads the first line of r without its line terminator.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func useColor(mode string, stdout io.Writer) (bool, error) {
	switch mode {
	case config.ColorAlways:
		return true, nil
	case config.ColorNever:
		return false, nil
	case config.ColorAuto:
		f, ok := stdout.(*os.File)
		return ok && term.IsTerminalFile(f), nil
	}
	return false, fmt.Errorf("invalid --color value %q (want never, always or auto)", mode)
}

func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}
