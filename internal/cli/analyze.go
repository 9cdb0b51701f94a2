package cli

import "context"

// AnalyzeCmd returns the analyze command.
func AnalyzeCmd(a *app) *Command {
	return &Command{
		Name:  "analyze",
		Short: "Analyze the results log and save the report",
		Long: "Parse the benchmark results log, write the text report and the data snapshot,\n" +
			"then print a quick summary table. A missing results file is reported and\n" +
			"nothing is written.",
		Exec: func(_ context.Context, io *IO) error {
			return a.analyzeOnce(io)
		},
	}
}
