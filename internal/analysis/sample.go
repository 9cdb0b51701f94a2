package analysis

import "maps"

// BestLabel is the synthetic label holding a sample's minimum time.
const BestLabel = "best"

// Timing is one labeled measurement in milliseconds.
type Timing struct {
	Label string
	Ms    float64
}

// Sample holds the timings extracted from one section, in the order their
// labels were first seen. Setting an existing label keeps its position.
//
// The zero value is an empty sample, meaning no timing was found.
type Sample struct {
	order  []string
	values map[string]float64
}

// NewSample builds a sample from timings, applied in order. A repeated
// label overwrites the earlier value and keeps its position.
func NewSample(timings ...Timing) Sample {
	var b builder
	for _, t := range timings {
		b.set(t.Label, t.Ms)
	}

	return b.sample()
}

// Len returns the number of labels, including best.
func (s Sample) Len() int {
	return len(s.order)
}

// IsEmpty reports whether no timing was found.
func (s Sample) IsEmpty() bool {
	return len(s.order) == 0
}

// Get returns the value for label.
func (s Sample) Get(label string) (float64, bool) {
	v, ok := s.values[label]

	return v, ok
}

// Best returns the synthetic best value.
func (s Sample) Best() (float64, bool) {
	return s.Get(BestLabel)
}

// Timings returns all entries in insertion order.
func (s Sample) Timings() []Timing {
	out := make([]Timing, 0, len(s.order))
	for _, label := range s.order {
		out = append(out, Timing{Label: label, Ms: s.values[label]})
	}

	return out
}

// Map returns a copy of the sample as a plain map.
func (s Sample) Map() map[string]float64 {
	if s.values == nil {
		return map[string]float64{}
	}

	return maps.Clone(s.values)
}

// Min returns the fastest timing. A named technique is preferred over best
// when both carry the minimum; otherwise the earliest label wins.
func (s Sample) Min() (Timing, bool) {
	var (
		winner Timing
		found  bool
	)

	for _, label := range s.order {
		v := s.values[label]

		switch {
		case !found || v < winner.Ms:
			winner = Timing{Label: label, Ms: v}
			found = true
		case v == winner.Ms && winner.Label == BestLabel && label != BestLabel:
			winner.Label = label
		}
	}

	return winner, found
}

// builder accumulates the timings of one extraction. It is owned by a single
// call and handed over to a Sample exactly once.
type builder struct {
	order  []string
	values map[string]float64
}

func (b *builder) set(label string, ms float64) {
	if b.values == nil {
		b.values = make(map[string]float64)
	}

	if _, exists := b.values[label]; !exists {
		b.order = append(b.order, label)
	}

	b.values[label] = ms
}

func (b *builder) best() (float64, bool) {
	v, ok := b.values[BestLabel]

	return v, ok
}

func (b *builder) empty() bool {
	return len(b.order) == 0
}

// sample freezes b. b must not be used afterwards.
func (b *builder) sample() Sample {
	return Sample{order: b.order, values: b.values}
}
