// Package cli implements the benchan command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/calvinalkan/benchan/internal/config"

	flag "github.com/spf13/pflag"
)

var (
	errNoCommand      = errors.New("no command provided")
	errUnknownCommand = errors.New("unknown command")
	errEmptyFlag      = errors.New("flag value cannot be empty")
)

// app is the state shared by all commands. It is filled in after global
// flags and config are resolved, before any Exec runs.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	now    func() time.Time
}

// Run is the main entry point. Returns exit code.
//
// A signal received on sigCh cancels the running command; sigCh may be nil.
func Run(_ io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal) int {
	o := NewIO(out, errOut)
	a := &app{now: time.Now}
	commands := allCommands(a)

	globals := newGlobalFlags()

	if len(args) < 2 {
		printUsage(out, globals.set, commands)

		return 0
	}

	err := globals.set.Parse(args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(out, globals.set, commands)

			return 0
		}

		fprintln(errOut, "error:", err)
		fprintln(errOut)
		printUsage(errOut, globals.set, commands)

		return 1
	}

	if *globals.help {
		printUsage(out, globals.set, commands)

		return 0
	}

	err = globals.validate()
	if err != nil {
		fprintln(errOut, "error:", err)
		fprintln(errOut)
		printUsage(errOut, globals.set, commands)

		return 1
	}

	remaining := globals.set.Args()
	if len(remaining) == 0 {
		fprintln(errOut, "error:", errNoCommand)
		fprintln(errOut)
		printUsage(errOut, globals.set, commands)

		return 1
	}

	cmd, ok := findCommand(commands, remaining[0])
	if !ok {
		fprintln(errOut, "error:", fmt.Errorf("%w: %s", errUnknownCommand, remaining[0]))
		fprintln(errOut)
		printUsage(errOut, globals.set, commands)

		return 1
	}

	a.cfg, err = config.Load(config.LoadInput{
		WorkDirOverride: *globals.cwd,
		ConfigPath:      *globals.configPath,
		Overrides:       globals.overrides(),
		Env:             env,
	})
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	a.logger = newLogger(errOut, a.cfg.Level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if sigCh != nil {
		go func() {
			select {
			case <-sigCh:
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	code := cmd.Run(ctx, o, remaining[1:])
	o.Finish()

	return code
}

type globalFlags struct {
	set        *flag.FlagSet
	cwd        *string
	configPath *string
	input      *string
	report     *string
	snapshot   *string
	format     *string
	verbose    *bool
	help       *bool
}

func newGlobalFlags() globalFlags {
	set := flag.NewFlagSet("benchan", flag.ContinueOnError)
	set.SetOutput(&strings.Builder{})
	set.SetInterspersed(false)

	return globalFlags{
		set:        set,
		cwd:        set.StringP("cwd", "C", "", "Run as if started in `dir`"),
		configPath: set.StringP("config", "c", "", "Use specified config `file`"),
		input:      set.String("input", "", "Benchmark log to analyze"),
		report:     set.String("report", "", "Where to write the text report"),
		snapshot:   set.String("snapshot", "", "Where to write the data snapshot"),
		format:     set.String("format", "", "Snapshot format (json|yaml)"),
		verbose:    set.BoolP("verbose", "v", false, "Log debug diagnostics to stderr"),
		help:       set.BoolP("help", "h", false, "Show help"),
	}
}

// validate rejects flags that were given an explicit empty value.
func (g globalFlags) validate() error {
	for _, name := range []string{"cwd", "config", "input", "report", "snapshot", "format"} {
		if !g.set.Changed(name) {
			continue
		}

		value, _ := g.set.GetString(name)
		if value == "" {
			return fmt.Errorf("%w: --%s", errEmptyFlag, name)
		}
	}

	return nil
}

func (g globalFlags) overrides() config.Overrides {
	return config.Overrides{
		Input:          *g.input,
		Report:         *g.report,
		Snapshot:       *g.snapshot,
		SnapshotFormat: *g.format,
		Verbose:        *g.verbose,
	}
}

func allCommands(a *app) []*Command {
	return []*Command{
		AnalyzeCmd(a),
		ReportCmd(a),
		ChampionsCmd(a),
		SectionsCmd(a),
		WatchCmd(a),
		PrintConfigCmd(a),
	}
}

func findCommand(commands []*Command, name string) (*Command, bool) {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd, true
		}
	}

	return nil, false
}

// newLogger writes text records without timestamps, so stderr stays
// comparable between runs.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if len(groups) == 0 && attr.Key == slog.TimeKey {
				return slog.Attr{}
			}

			return attr
		},
	}))
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func printUsage(w io.Writer, globals *flag.FlagSet, commands []*Command) {
	fprintln(w, `benchan - cross-language benchmark log analyzer

Usage: benchan [global flags] <command> [args]

Global flags:`)
	fprintln(w, strings.TrimRight(globals.FlagUsages(), "\n"))
	fprintln(w)
	fprintln(w, "Commands:")

	for _, cmd := range commands {
		fprintln(w, cmd.HelpLine())
	}

	fprintln(w)
	fprintln(w, "Run 'benchan <command> --help' for command-specific help.")
}
