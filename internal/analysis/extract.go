package analysis

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	msValue      = regexp.MustCompile(`(\d+\.?\d*)\s*ms`)
	championLine = regexp.MustCompile(`CHAMPION:\s*(.+?)\s+with\s+(\d+\.?\d*)\s*ms`)
	bestTimeLine = regexp.MustCompile(`Best time:\s*(\d+\.?\d*)\s*ms`)
	resultLine   = regexp.MustCompile(`Result:.*?in\s+(\d+\.?\d*)\s*ms`)
)

// labelNoise is stripped from technique labels, in this order.
var labelNoise = strings.NewReplacer(
	"🔥", "",
	"⚡", "",
	"✅", "",
	"🎯", "",
	"💥", "",
	"🏆", "",
	"\uFE0F", "",
)

const labelKeyword = "Testing"

// hit is what a recognizer pulls out of a single line.
type hit struct {
	label string
	ms    float64
}

// recognizer is one row of the line rule table.
//
// claims decides ownership: once a recognizer claims a line, later rows never
// see it, even when match then fails to produce a value.
type recognizer struct {
	name   string
	claims func(line string) bool
	match  func(line string) (hit, bool)
	fold   func(acc *builder, h hit)
}

// rules is evaluated top to bottom for every line.
var rules = []recognizer{
	{
		name: "champion",
		claims: func(line string) bool {
			return strings.Contains(line, "CHAMPION:") && strings.Contains(line, "with") && strings.Contains(line, "ms")
		},
		match: func(line string) (hit, bool) {
			m := championLine.FindStringSubmatch(line)
			if m == nil {
				return hit{}, false
			}

			ms, ok := parseMs(m[2])

			return hit{label: strings.TrimSpace(m[1]), ms: ms}, ok
		},
		fold: setBestAndLabel,
	},
	{
		name:   "best-time",
		claims: func(line string) bool { return strings.Contains(line, "Best time:") },
		match:  firstGroup(bestTimeLine),
		fold:   setBest,
	},
	{
		name: "fastest-any-case",
		claims: func(line string) bool {
			return strings.Contains(strings.ToLower(line), "fastest:") && strings.Contains(line, "ms")
		},
		match: firstGroup(msValue),
		fold:  setBest,
	},
	{
		// Unreachable in practice: fastest-any-case claims every line this would.
		name: "fastest",
		claims: func(line string) bool {
			return strings.Contains(line, "Fastest:") && strings.Contains(line, "ms")
		},
		match: firstGroup(msValue),
		fold:  setBest,
	},
	{
		name: "result",
		claims: func(line string) bool {
			return strings.Contains(line, "Result:") && strings.Contains(line, "in") && strings.Contains(line, "ms")
		},
		match: firstGroup(resultLine),
		fold:  lowerBest,
	},
	{
		name: "labeled",
		claims: func(line string) bool {
			return msValue.MatchString(line) && (strings.Contains(line, labelKeyword) || strings.Contains(line, ":"))
		},
		match: func(line string) (hit, bool) {
			loc := msValue.FindStringSubmatchIndex(line)
			if loc == nil {
				return hit{}, false
			}

			label := cleanLabel(line[:loc[0]])
			if label == "" {
				return hit{}, false
			}

			ms, ok := parseMs(line[loc[2]:loc[3]])

			return hit{label: label, ms: ms}, ok
		},
		fold: func(acc *builder, h hit) {
			acc.set(h.label, h.ms)
			lowerBest(acc, h)
		},
	},
}

// Extract returns the timings found in one section body.
//
// Lines are folded through the rule table one at a time. If nothing matched,
// the smallest positive "<N> ms" value anywhere in body becomes best. The
// returned sample's best is the minimum of every value it holds.
func Extract(body string) Sample {
	var acc builder

	for _, line := range strings.Split(body, "\n") {
		foldLine(&acc, strings.TrimSpace(line))
	}

	if acc.empty() {
		fallback(&acc, body)
	}

	settleBest(&acc)

	return acc.sample()
}

// ClaimingRule returns the name of the rule that owns line, or "" if none does.
func ClaimingRule(line string) string {
	line = strings.TrimSpace(line)

	for _, r := range rules {
		if r.claims(line) {
			return r.name
		}
	}

	return ""
}

func foldLine(acc *builder, line string) {
	for _, r := range rules {
		if !r.claims(line) {
			continue
		}

		if h, ok := r.match(line); ok {
			r.fold(acc, h)
		}

		return
	}
}

func fallback(acc *builder, body string) {
	var (
		best  float64
		found bool
	)

	for _, m := range msValue.FindAllStringSubmatch(body, -1) {
		ms, ok := parseMs(m[1])
		if !ok || ms <= 0 {
			continue
		}

		if !found || ms < best {
			best = ms
			found = true
		}
	}

	if found {
		acc.set(BestLabel, best)
	}
}

// settleBest lowers best to the smallest value in the sample.
func settleBest(acc *builder) {
	if acc.empty() {
		return
	}

	lowest := math.Inf(1)
	for _, v := range acc.values {
		lowest = min(lowest, v)
	}

	if current, ok := acc.best(); !ok || current != lowest {
		acc.set(BestLabel, lowest)
	}
}

func setBest(acc *builder, h hit) {
	acc.set(BestLabel, h.ms)
}

func setBestAndLabel(acc *builder, h hit) {
	acc.set(BestLabel, h.ms)
	acc.set(h.label, h.ms)
}

func lowerBest(acc *builder, h hit) {
	if current, ok := acc.best(); ok && h.ms >= current {
		return
	}

	acc.set(BestLabel, h.ms)
}

func firstGroup(re *regexp.Regexp) func(string) (hit, bool) {
	return func(line string) (hit, bool) {
		m := re.FindStringSubmatch(line)
		if m == nil {
			return hit{}, false
		}

		ms, ok := parseMs(m[1])

		return hit{ms: ms}, ok
	}
}

func cleanLabel(raw string) string {
	label := strings.TrimSpace(labelNoise.Replace(raw))
	label = strings.TrimSpace(strings.ReplaceAll(label, labelKeyword, ""))

	return strings.TrimSpace(strings.TrimRight(label, ":"))
}

func parseMs(s string) (float64, bool) {
	ms, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(ms, 0) || math.IsNaN(ms) {
		return 0, false
	}

	return ms, true
}
