package analysis_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/calvinalkan/benchan/internal/analysis"
)

func TestParseKeepsLanguageDiscoveryOrder(t *testing.T) {
	t.Parallel()

	doc := "=== Rust 1000 ELEMENTS ===\nFastest: 1 ms\n" +
		"=== Go 1000 ELEMENTS ===\nFastest: 2 ms\n" +
		"=== Rust 10000 ELEMENTS ===\nFastest: 3 ms\n" +
		"=== C 1000 ELEMENTS ===\nFastest: 4 ms\n"

	store, skipped := analysis.Parse(doc)

	if len(skipped) != 0 {
		t.Fatalf("skipped=%v, want none", skipped)
	}

	if diff := cmp.Diff([]string{"Rust", "Go", "C"}, store.Languages()); diff != "" {
		t.Errorf("languages mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]int{1000, 10000}, store.Sizes("Rust")); diff != "" {
		t.Errorf("sizes mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLastSectionForSamePairWins(t *testing.T) {
	t.Parallel()

	doc := "=== Go 1000 ELEMENTS ===\nTesting Loop: 1 ms\n" +
		"=== Go 1000 ELEMENTS ===\nFastest: 5 ms\n"

	store, _ := analysis.Parse(doc)

	sample, ok := store.Sample("Go", 1000)
	if !ok {
		t.Fatal("no sample for Go 1000")
	}

	want := map[string]float64{"best": 5}
	if diff := cmp.Diff(want, sample.Map()); diff != "" {
		t.Errorf("sample mismatch (-want +got):\n%s", diff)
	}
}

func TestParseKeepsSectionsWithoutTimings(t *testing.T) {
	t.Parallel()

	store, _ := analysis.Parse("=== Dart 1000 ELEMENTS ===\nno numbers here\n")

	sample, ok := store.Sample("Dart", 1000)
	if !ok {
		t.Fatal("section without timings should still be recorded")
	}

	if !sample.IsEmpty() {
		t.Errorf("sample=%v, want empty", sample.Timings())
	}

	if _, ok := store.MinTime("Dart", 1000); ok {
		t.Error("MinTime should report nothing for an empty sample")
	}
}

func TestStoreResults(t *testing.T) {
	t.Parallel()

	doc := "=== Go 1000 ELEMENTS ===\nTesting Loop: 1.5 ms\n" +
		"=== Go 10000 ELEMENTS ===\nnothing\n" +
		"=== Rust 1000 ELEMENTS ===\nBest time: 0.5 ms\n"

	store, _ := analysis.Parse(doc)

	want := map[string]map[string]map[string]float64{
		"Go": {
			"1000":  {"Loop": 1.5, "best": 1.5},
			"10000": {},
		},
		"Rust": {
			"1000": {"best": 0.5},
		},
	}

	if diff := cmp.Diff(want, store.Results()); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
}
