package analysis_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/calvinalkan/benchan/internal/analysis"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want []analysis.Timing // insertion order
	}{
		{
			name: "fastest line",
			body: "Fastest: 3.5 ms",
			want: []analysis.Timing{{Label: "best", Ms: 3.5}},
		},
		{
			name: "best time line",
			body: "⚡ Best time: 2.1ms",
			want: []analysis.Timing{{Label: "best", Ms: 2.1}},
		},
		{
			name: "lowercase fastest",
			body: "🏆 Overall fastest: quantum at 0.8 ms",
			want: []analysis.Timing{{Label: "best", Ms: 0.8}},
		},
		{
			name: "champion line records technique and best",
			body: "🏆 CHAMPION: SIMD Unrolled with 0.42 ms",
			want: []analysis.Timing{{Label: "best", Ms: 0.42}, {Label: "SIMD Unrolled", Ms: 0.42}},
		},
		{
			name: "result lines keep the minimum",
			body: "Result: sum=42 in 5.0 ms\nResult: sum=42 in 3.0 ms\nResult: sum=42 in 4.0 ms",
			want: []analysis.Timing{{Label: "best", Ms: 3}},
		},
		{
			name: "labeled timings strip glyphs and keyword",
			body: "🔥 Testing SIMD: 1.250ms\n⚡️ Testing Scalar: 4.000 ms\n",
			want: []analysis.Timing{
				{Label: "SIMD", Ms: 1.25},
				{Label: "best", Ms: 1.25},
				{Label: "Scalar", Ms: 4},
			},
		},
		{
			name: "producer line with speedup suffix",
			body: "🔥 Scalar Loop: 12.345ms (1.0x)\n✅ Unrolled x8: 3.1ms (4.0x)",
			want: []analysis.Timing{
				{Label: "Scalar Loop", Ms: 12.345},
				{Label: "best", Ms: 3.1},
				{Label: "Unrolled x8", Ms: 3.1},
			},
		},
		{
			name: "headline best never exceeds a labeled timing",
			body: "Testing A: 5 ms\nBest time: 9 ms",
			want: []analysis.Timing{{Label: "A", Ms: 5}, {Label: "best", Ms: 5}},
		},
		{
			name: "fallback finds bare value",
			body: "took 7ms total",
			want: []analysis.Timing{{Label: "best", Ms: 7}},
		},
		{
			name: "fallback takes smallest positive value",
			body: "a 0 ms then 12ms then 3.5ms",
			want: []analysis.Timing{{Label: "best", Ms: 3.5}},
		},
		{
			name: "fallback ignores non-positive values",
			body: "elapsed 0ms and 0.0 ms",
			want: nil,
		},
		{
			name: "empty label contributes nothing but fallback still applies",
			body: "Testing: 5 ms",
			want: []analysis.Timing{{Label: "best", Ms: 5}},
		},
		{
			name: "claimed line that fails to match blocks later rules",
			body: "Best time: N/A ms, other: 3 ms\nFastest: 9 ms",
			want: []analysis.Timing{{Label: "best", Ms: 9}},
		},
		{
			name: "best time outranks fastest on the same line",
			body: "Best time: 2.0 ms fastest: 1.0 ms",
			want: []analysis.Timing{{Label: "best", Ms: 2}},
		},
		{
			name: "unparsable number is swallowed",
			body: "Fastest: 1" + strings.Repeat("0", 400) + " ms",
			want: nil,
		},
		{
			name: "champion without a number yields nothing",
			body: "CHAMPION: with nothing ms",
			want: nil,
		},
		{
			name: "lines without timings are ignored",
			body: "Go Version: go1.22\nCPU Cores: 16\n",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := analysis.Extract(tt.body).Timings()
			if len(tt.want) == 0 {
				if len(got) != 0 {
					t.Fatalf("Extract(%q) = %v, want empty", tt.body, got)
				}

				return
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Extract(%q) mismatch (-want +got):\n%s", tt.body, diff)
			}
		})
	}
}

func TestExtractBestIsMinimumOfAllValues(t *testing.T) {
	t.Parallel()

	bodies := []string{
		"Testing A: 5 ms\nTesting B: 2 ms\nTesting C: 7 ms",
		"Best time: 1 ms\nTesting slow: 10 ms",
		"Testing slow: 10 ms\nFastest: 12 ms",
		"🏆 CHAMPION: Fused with 0.3 ms\nTesting Naive: 8 ms\nResult: ok in 0.2 ms",
		"=> 4ms, 5ms, 6ms",
	}

	for _, body := range bodies {
		sample := analysis.Extract(body)

		best, ok := sample.Best()
		if !ok {
			t.Fatalf("Extract(%q) has no best", body)
		}

		for _, timing := range sample.Timings() {
			if timing.Ms < best {
				t.Errorf("Extract(%q): %s=%v is below best=%v", body, timing.Label, timing.Ms, best)
			}
		}

		fastest, _ := sample.Min()
		if fastest.Ms != best {
			t.Errorf("Extract(%q): Min()=%v, want best=%v", body, fastest.Ms, best)
		}
	}
}

func TestClaimingRule(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"CHAMPION: X with 1 ms": "champion",
		"  Best time: 1 ms":     "best-time",
		"Best time: unknown":    "best-time",
		"Fastest: 1 ms":         "fastest-any-case",
		"FASTEST: 1 ms":         "fastest-any-case",
		"Result: sum in 1 ms":   "result",
		"Testing SIMD 1 ms":     "labeled",
		"Data creation: 12ms":   "labeled",
		"took 7ms total":        "",
		"Go Version: go1.22":    "",
		"":                      "",
	}

	for line, want := range tests {
		if got := analysis.ClaimingRule(line); got != want {
			t.Errorf("ClaimingRule(%q)=%q, want=%q", line, got, want)
		}
	}
}

func manyLabeledLines(n int) string {
	var b strings.Builder
	for i := range n {
		fmt.Fprintf(&b, "Testing tech%d: %d.5 ms\n", i, n-i)
	}

	return b.String()
}

func TestExtractManyLabeledLinesIsLinear(t *testing.T) {
	t.Parallel()

	const n = 50_000

	body := manyLabeledLines(n)

	start := time.Now()
	sample := analysis.Extract(body)
	elapsed := time.Since(start)

	if got, want := sample.Len(), n+1; got != want {
		t.Fatalf("Len()=%d, want=%d", got, want)
	}

	best, _ := sample.Best()
	if best != 1.5 {
		t.Errorf("best=%v, want=1.5", best)
	}

	timings := sample.Timings()
	if timings[0].Label != "tech0" || timings[len(timings)-1].Label != fmt.Sprintf("tech%d", n-1) {
		t.Errorf("insertion order lost: first=%v last=%v", timings[0], timings[len(timings)-1])
	}

	// Quadratic folding needs tens of seconds here.
	if elapsed > 5*time.Second {
		t.Errorf("Extract of %d lines took %v", n, elapsed)
	}
}

func BenchmarkExtractManyLabeledLines(b *testing.B) {
	body := manyLabeledLines(10_000)

	b.ResetTimer()

	for range b.N {
		analysis.Extract(body)
	}
}
