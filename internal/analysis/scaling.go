package analysis

// ScalingPair is a pair of adjacent buckets compared by AnalyzeScaling.
type ScalingPair struct {
	From Bucket
	To   Bucket
}

// Name renders the pair as "1K→10K".
func (p ScalingPair) Name() string {
	return p.From.Name + "→" + p.To.Name
}

// ScalingPairs are the bucket pairs reported on.
var ScalingPairs = []ScalingPair{
	{From: Buckets[0], To: Buckets[1]},
	{From: Buckets[2], To: Buckets[3]},
	{From: Buckets[3], To: Buckets[4]},
}

// ScalingRatio is time at the larger bucket divided by time at the smaller one.
type ScalingRatio struct {
	Pair  ScalingPair
	Ratio float64
}

// LanguageScaling lists the ratios that could be computed for one language.
type LanguageScaling struct {
	Language string
	Ratios   []ScalingRatio
}

// AnalyzeScaling returns one entry per language, in store order. A ratio is
// present only when both buckets have a positive time for that language.
func AnalyzeScaling(store *Store) []LanguageScaling {
	out := make([]LanguageScaling, 0, store.Len())

	for _, language := range store.Languages() {
		entry := LanguageScaling{Language: language}

		for _, pair := range ScalingPairs {
			small, okSmall := store.MinTime(language, pair.From.Size)
			large, okLarge := store.MinTime(language, pair.To.Size)

			if !okSmall || !okLarge || small.Ms <= 0 || large.Ms <= 0 {
				continue
			}

			entry.Ratios = append(entry.Ratios, ScalingRatio{Pair: pair, Ratio: large.Ms / small.Ms})
		}

		out = append(out, entry)
	}

	return out
}
