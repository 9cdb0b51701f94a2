package cli

import (
	"context"
	"strings"

	"github.com/calvinalkan/benchan/internal/report"

	flag "github.com/spf13/pflag"
)

// ReportCmd returns the report command.
func ReportCmd(a *app) *Command {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.Bool("data", false, "Print the data snapshot instead of the text report")

	return &Command{
		Name:  "report",
		Flags: fs,
		Short: "Print the analysis report without saving",
		Long:  "Render the full analysis report (or the data snapshot with --data) to stdout. No files are written.",
		Exec: func(_ context.Context, io *IO) error {
			return execReport(io, a, fs)
		},
	}
}

func execReport(io *IO, a *app, fs *flag.FlagSet) error {
	store, ok, err := a.loadStore(io)
	if err != nil || !ok {
		return err
	}

	if data, _ := fs.GetBool("data"); data {
		encoded, encodeErr := report.NewSnapshot(store, a.cfg.Languages, a.now()).Encode(a.cfg.Format)
		if encodeErr != nil {
			return encodeErr
		}

		io.Println(strings.TrimRight(string(encoded), "\n"))

		return nil
	}

	io.Printf("%s", report.Render(store, a.cfg.Languages))

	return nil
}
