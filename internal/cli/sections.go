package cli

import (
	"context"
	"strings"

	"github.com/calvinalkan/benchan/internal/analysis"

	flag "github.com/spf13/pflag"
)

// SectionsCmd returns the sections command.
func SectionsCmd(a *app) *Command {
	fs := flag.NewFlagSet("sections", flag.ContinueOnError)
	fs.Bool("trace", false, "Show which rule claimed each body line")

	return &Command{
		Name:  "sections",
		Flags: fs,
		Short: "List parsed sections and their timings",
		Long: "List every section of the results log in document order with the timings\n" +
			"extracted from it. Use --trace to see which rule claimed each line.",
		Exec: func(_ context.Context, io *IO) error {
			return execSections(io, a, fs)
		},
	}
}

func execSections(io *IO, a *app, fs *flag.FlagSet) error {
	doc, ok, err := a.readInput(io)
	if err != nil || !ok {
		return err
	}

	trace, _ := fs.GetBool("trace")
	split := analysis.SplitSections(doc)

	for _, sec := range split.Sections {
		io.Printf("%s %s\n", sec.Language, analysis.BucketName(sec.Size))

		sample := analysis.Extract(sec.Body)
		if sample.IsEmpty() {
			io.Println("  (no timing found)")
		}

		for _, t := range sample.Timings() {
			io.Printf("  %s = %.3fms\n", t.Label, t.Ms)
		}

		if trace {
			printTrace(io, sec.Body)
		}
	}

	for _, s := range split.Skipped {
		io.Printf("skipped %s %q: %v\n", s.Language, s.Token, s.Err)
	}

	return nil
}

func printTrace(io *IO, body string) {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		rule := analysis.ClaimingRule(line)
		if rule == "" {
			rule = "-"
		}

		io.Printf("    [%s] %s\n", rule, line)
	}
}
