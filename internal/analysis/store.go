package analysis

import (
	"slices"
	"strconv"
)

// Store maps language to size to extracted sample.
//
// Languages keep the order in which they were first discovered, which is
// the tie-break order for champions. A Store is built once by BuildStore and
// only read afterwards.
type Store struct {
	languages []string
	bySize    map[string]map[int]Sample
}

// BuildStore extracts every section and files the result under its language
// and size. A later section for the same pair replaces the earlier sample.
func BuildStore(sections []Section) *Store {
	store := &Store{bySize: make(map[string]map[int]Sample)}

	for _, sec := range sections {
		store.put(sec.Language, sec.Size, Extract(sec.Body))
	}

	return store
}

// Parse splits doc and builds a store from its sections.
func Parse(doc string) (*Store, []SkippedHeader) {
	split := SplitSections(doc)

	return BuildStore(split.Sections), split.Skipped
}

func (s *Store) put(language string, size int, sample Sample) {
	sizes, ok := s.bySize[language]
	if !ok {
		sizes = make(map[int]Sample)
		s.bySize[language] = sizes
		s.languages = append(s.languages, language)
	}

	sizes[size] = sample
}

// Languages returns languages in discovery order.
func (s *Store) Languages() []string {
	return slices.Clone(s.languages)
}

// Len returns the number of languages.
func (s *Store) Len() int {
	return len(s.languages)
}

// Sample returns the sample recorded for language at size.
func (s *Store) Sample(language string, size int) (Sample, bool) {
	sample, ok := s.bySize[language][size]

	return sample, ok
}

// Sizes returns the sizes recorded for language, ascending.
func (s *Store) Sizes(language string) []int {
	sizes := make([]int, 0, len(s.bySize[language]))
	for size := range s.bySize[language] {
		sizes = append(sizes, size)
	}

	slices.Sort(sizes)

	return sizes
}

// MinTime returns the fastest time for language at size. It is false when
// nothing was recorded or the sample is empty.
func (s *Store) MinTime(language string, size int) (Timing, bool) {
	sample, ok := s.Sample(language, size)
	if !ok {
		return Timing{}, false
	}

	return sample.Min()
}

// Results returns the store as nested plain maps keyed by decimal size,
// suitable for serialization.
func (s *Store) Results() map[string]map[string]map[string]float64 {
	out := make(map[string]map[string]map[string]float64, len(s.languages))

	for _, language := range s.languages {
		sizes := make(map[string]map[string]float64, len(s.bySize[language]))
		for size, sample := range s.bySize[language] {
			sizes[strconv.Itoa(size)] = sample.Map()
		}

		out[language] = sizes
	}

	return out
}
