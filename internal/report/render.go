// Package report renders analysis results as text and persists snapshots.
package report

import (
	"fmt"
	"strings"

	"github.com/calvinalkan/benchan/internal/analysis"
)

const (
	sizeColumnWidth = 8
	langColumnWidth = 12
	noData          = "N/A"
)

// Speedup tier limits.
const (
	closeTierLimit = 2.0
	farTierLimit   = 5.0
)

// SummaryTable renders one row per bucket and one column per language in
// languages. Store languages match columns case-insensitively.
func SummaryTable(store *analysis.Store, languages []string) string {
	header := fmt.Sprintf("%-*s", sizeColumnWidth, "Size")
	for _, lang := range languages {
		header += fmt.Sprintf("%-*s", langColumnWidth, lang)
	}

	lines := []string{
		"🏆 PERFORMANCE SUMMARY TABLE",
		"",
		strings.Repeat("=", 80),
		header,
		strings.Repeat("-", len(header)),
	}

	columns := make([]string, len(languages))
	for i, lang := range languages {
		columns[i] = storeKey(store, lang)
	}

	for _, bucket := range analysis.Buckets {
		row := fmt.Sprintf("%-*s", sizeColumnWidth, bucket.Name)

		for _, key := range columns {
			row += fmt.Sprintf("%-*s", langColumnWidth, cell(store, key, bucket.Size))
		}

		lines = append(lines, row)
	}

	return strings.Join(lines, "\n")
}

// Render builds the full analysis report: summary table, champions,
// speedups and scaling.
func Render(store *analysis.Store, languages []string) string {
	var b strings.Builder

	writeLine(&b, "🚀⚡ COMPREHENSIVE PERFORMANCE ANALYSIS ⚡🚀")
	writeLine(&b, "")
	writeLine(&b, strings.Repeat("=", 60))
	writeLine(&b, SummaryTable(store, languages))
	writeLine(&b, "")

	writeChampions(&b, analysis.FindChampions(store))
	writeSpeedups(&b, analysis.CalculateSpeedups(store))
	writeScaling(&b, analysis.AnalyzeScaling(store))

	return strings.TrimSuffix(b.String(), "\n")
}

func writeChampions(b *strings.Builder, champions []analysis.Champion) {
	writeLine(b, "🏆 PERFORMANCE CHAMPIONS:")
	writeLine(b, "")

	for _, champ := range champions {
		writeLine(b, ChampionLine(champ))
	}

	writeLine(b, "")
}

// ChampionLine renders "1K: Rust (best) - 2.100ms" or "1K: No data".
func ChampionLine(champ analysis.Champion) string {
	name := analysis.BucketName(champ.Size)
	if !champ.Found() {
		return name + ": No data"
	}

	return fmt.Sprintf("%s: %s (%s) - %.3fms", name, champ.Language, champ.Technique, champ.Ms)
}

func writeSpeedups(b *strings.Builder, buckets []analysis.BucketSpeedups) {
	writeLine(b, "⚡ SPEEDUP ANALYSIS (relative to fastest):")
	writeLine(b, "")

	bySize := make(map[int]analysis.BucketSpeedups, len(buckets))
	for _, bucket := range buckets {
		bySize[bucket.Champion.Size] = bucket
	}

	for _, bucket := range analysis.Buckets {
		writeLine(b, bucket.Name+":")

		if speedups, ok := bySize[bucket.Size]; ok {
			for _, entry := range speedups.Sorted() {
				writeLine(b, "  "+SpeedupLine(entry))
			}
		}

		writeLine(b, "")
	}
}

// SpeedupLine renders one speedup with its tier marker.
func SpeedupLine(entry analysis.Speedup) string {
	switch {
	case entry.Ratio == 1.0:
		return fmt.Sprintf("🥇 %s: %.2fx (CHAMPION)", entry.Language, entry.Ratio)
	case entry.Ratio <= closeTierLimit:
		return fmt.Sprintf("🥈 %s: %.2fx", entry.Language, entry.Ratio)
	case entry.Ratio <= farTierLimit:
		return fmt.Sprintf("🥉 %s: %.2fx", entry.Language, entry.Ratio)
	default:
		return fmt.Sprintf("🔸 %s: %.2fx", entry.Language, entry.Ratio)
	}
}

func writeScaling(b *strings.Builder, scaling []analysis.LanguageScaling) {
	writeLine(b, "📈 SCALING ANALYSIS:")
	writeLine(b, "")

	for _, lang := range scaling {
		writeLine(b, lang.Language+":")

		for _, r := range lang.Ratios {
			writeLine(b, fmt.Sprintf("  %s: %.2fx scaling", r.Pair.Name(), r.Ratio))
		}

		writeLine(b, "")
	}
}

// FormatMs renders sub-millisecond times with 3 decimals, the rest with 1.
func FormatMs(ms float64) string {
	if ms < 1 {
		return fmt.Sprintf("%.3fms", ms)
	}

	return fmt.Sprintf("%.1fms", ms)
}

func cell(store *analysis.Store, key string, size int) string {
	if key == "" {
		return noData
	}

	fastest, ok := store.MinTime(key, size)
	if !ok || fastest.Ms <= 0 {
		return noData
	}

	return FormatMs(fastest.Ms)
}

// storeKey returns the first store language equal to display ignoring case.
func storeKey(store *analysis.Store, display string) string {
	for _, lang := range store.Languages() {
		if strings.EqualFold(lang, display) {
			return lang
		}
	}

	return ""
}

func writeLine(b *strings.Builder, line string) {
	b.WriteString(line)
	b.WriteByte('\n')
}
