package analysis

import (
	"math"
	"slices"
)

// Champion is the fastest language and technique for one size.
// A zero Language means no language reported a time at that size.
type Champion struct {
	Size      int
	Language  string
	Technique string
	Ms        float64
}

// Found reports whether any language contributed to the bucket.
func (c Champion) Found() bool {
	return c.Language != ""
}

// Speedup is how many times slower a language was than the champion.
type Speedup struct {
	Language string
	Ratio    float64
}

// BucketSpeedups holds the speedups of every language at one size.
type BucketSpeedups struct {
	Champion Champion
	Entries  []Speedup // store order
}

// Sorted returns the entries fastest first. Equal ratios keep store order.
func (b BucketSpeedups) Sorted() []Speedup {
	sorted := slices.Clone(b.Entries)
	slices.SortStableFunc(sorted, func(x, y Speedup) int {
		switch {
		case x.Ratio < y.Ratio:
			return -1
		case x.Ratio > y.Ratio:
			return 1
		default:
			return 0
		}
	})

	return sorted
}

// FindChampions returns one Champion per bucket, in bucket order.
//
// Languages are scanned in store order and only a strictly faster time
// replaces the current leader, so the first discovered language wins ties.
func FindChampions(store *Store) []Champion {
	champions := make([]Champion, 0, len(Buckets))

	for _, b := range Buckets {
		champions = append(champions, ChampionAt(store, b.Size))
	}

	return champions
}

// ChampionAt returns the champion for a single size.
func ChampionAt(store *Store, size int) Champion {
	champ := Champion{Size: size, Ms: math.Inf(1)}

	for _, language := range store.Languages() {
		fastest, ok := store.MinTime(language, size)
		if !ok {
			continue
		}

		if fastest.Ms < champ.Ms {
			champ.Language = language
			champ.Technique = fastest.Label
			champ.Ms = fastest.Ms
		}
	}

	if !champ.Found() {
		return Champion{Size: size}
	}

	return champ
}

// CalculateSpeedups returns the speedups for every bucket whose champion time
// is finite and positive. Languages with a non-positive time are left out.
func CalculateSpeedups(store *Store) []BucketSpeedups {
	var out []BucketSpeedups

	for _, champ := range FindChampions(store) {
		if speedups, ok := speedupsFor(store, champ); ok {
			out = append(out, speedups)
		}
	}

	return out
}

// SpeedupsAt returns the speedups for one size. It is false when the size has
// no usable champion.
func SpeedupsAt(store *Store, size int) (BucketSpeedups, bool) {
	return speedupsFor(store, ChampionAt(store, size))
}

func speedupsFor(store *Store, champ Champion) (BucketSpeedups, bool) {
	if !champ.Found() || champ.Ms <= 0 || math.IsInf(champ.Ms, 0) {
		return BucketSpeedups{}, false
	}

	bucket := BucketSpeedups{Champion: champ}

	for _, language := range store.Languages() {
		fastest, ok := store.MinTime(language, champ.Size)
		if !ok || fastest.Ms <= 0 {
			continue
		}

		bucket.Entries = append(bucket.Entries, Speedup{
			Language: language,
			Ratio:    fastest.Ms / champ.Ms,
		})
	}

	return bucket, true
}
