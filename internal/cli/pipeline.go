package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/calvinalkan/benchan/internal/analysis"
	"github.com/calvinalkan/benchan/internal/report"
)

// loadStore reads and parses the input log. It returns false without an
// error when there is nothing to analyze; a warning explains why.
func (a *app) loadStore(o *IO) (*analysis.Store, bool, error) {
	doc, ok, err := a.readInput(o)
	if err != nil || !ok {
		return nil, false, err
	}

	store, skipped := analysis.Parse(doc)
	a.logDiagnostics(store, skipped)

	if store.Len() == 0 {
		o.Warn("no valid results found in "+a.cfg.InputAbs,
			"sections must start with a '=== <LANGUAGE> <SIZE> ELEMENTS ===' line")

		return nil, false, nil
	}

	return store, true, nil
}

func (a *app) readInput(o *IO) (string, bool, error) {
	data, err := os.ReadFile(a.cfg.InputAbs)
	if errors.Is(err, fs.ErrNotExist) {
		o.Warn("results file not found: "+a.cfg.InputAbs, "run the benchmark suite first to produce it")

		return "", false, nil
	}

	if err != nil {
		return "", false, fmt.Errorf("reading results: %w", err)
	}

	return string(data), true, nil
}

func (a *app) logDiagnostics(store *analysis.Store, skipped []analysis.SkippedHeader) {
	for _, s := range skipped {
		a.logger.Warn("skipped section", "language", s.Language, "token", s.Token, "error", s.Err)
	}

	for _, lang := range store.Languages() {
		for _, size := range store.Sizes(lang) {
			if sample, _ := store.Sample(lang, size); sample.IsEmpty() {
				a.logger.Debug("no timing found", "language", lang, "size", size)
			}
		}
	}

	a.logger.Info("parsed results", "input", a.cfg.InputAbs, "languages", store.Len(), "skipped", len(skipped))
}

// analyzeOnce runs the full pipeline and writes both artifacts.
func (a *app) analyzeOnce(o *IO) error {
	store, ok, err := a.loadStore(o)
	if err != nil || !ok {
		return err
	}

	err = report.WriteFile(a.cfg.ReportAbs, []byte(report.Render(store, a.cfg.Languages)))
	if err != nil {
		return fmt.Errorf("saving report: %w", err)
	}

	data, err := report.NewSnapshot(store, a.cfg.Languages, a.now()).Encode(a.cfg.Format)
	if err != nil {
		return err
	}

	err = report.WriteFile(a.cfg.SnapshotAbs, data)
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	o.Printf("Found results for %d languages\n", store.Len())
	o.Println("Analysis saved to:", a.cfg.ReportAbs)
	o.Println("Snapshot saved to:", a.cfg.SnapshotAbs)
	o.Println()
	o.Println("QUICK SUMMARY:")
	o.Println()
	o.Println(report.SummaryTable(store, a.cfg.Languages))

	return nil
}
