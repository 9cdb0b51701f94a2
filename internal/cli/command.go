package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
)

var errUnexpectedArgs = errors.New("unexpected arguments")

// Command is one benchan subcommand. None of them take positional
// arguments; everything is passed as flags.
type Command struct {
	// Name is what the user types after the global flags.
	Name string

	// Flags holds command-specific flags. May be nil.
	Flags *flag.FlagSet

	// Short is the one-line description for the global command list.
	Short string

	// Long is shown by "benchan <name> --help". Short is used when empty.
	Long string

	// Exec runs the command after its flags are parsed.
	Exec func(ctx context.Context, o *IO) error
}

// Usage returns the synopsis shown in help, e.g. "champions [flags]".
func (c *Command) Usage() string {
	if c.Flags != nil && c.Flags.HasFlags() {
		return c.Name + " [flags]"
	}

	return c.Name
}

// HelpLine returns the entry for the global command list.
func (c *Command) HelpLine() string {
	return fmt.Sprintf("  %-22s %s", c.Usage(), c.Short)
}

// PrintHelp prints the full help for the command to stdout.
func (c *Command) PrintHelp(o *IO) {
	o.Println("Usage: benchan [global flags]", c.Usage())
	o.Println()

	desc := c.Long
	if desc == "" {
		desc = c.Short
	}

	o.Println(desc)

	if c.Flags == nil || !c.Flags.HasFlags() {
		return
	}

	o.Println()
	o.Println("Flags:")
	o.Printf("%s", c.Flags.FlagUsages())
}

// Run parses args and executes the command, returning the exit code.
// Errors are printed here so their position relative to help is stable.
func (c *Command) Run(ctx context.Context, o *IO, args []string) int {
	flags := c.Flags
	if flags == nil {
		flags = flag.NewFlagSet(c.Name, flag.ContinueOnError)
	}

	flags.SetOutput(&strings.Builder{})

	err := flags.Parse(args)
	if err == nil && flags.NArg() > 0 {
		err = fmt.Errorf("%w: %s", errUnexpectedArgs, strings.Join(flags.Args(), " "))
	}

	if errors.Is(err, flag.ErrHelp) {
		c.PrintHelp(o)

		return 0
	}

	if err != nil {
		o.ErrPrintln("error:", err)
		o.ErrPrintln()
		c.PrintHelp(o)

		return 1
	}

	err = c.Exec(ctx, o)
	if err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	return 0
}
