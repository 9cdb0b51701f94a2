package analysis

import "strconv"

// Bucket is one of the fixed input sizes the benchmarks run at.
type Bucket struct {
	Size int
	Name string
}

// Buckets lists the known sizes, smallest first.
var Buckets = []Bucket{
	{Size: 1_000, Name: "1K"},
	{Size: 10_000, Name: "10K"},
	{Size: 100_000, Name: "100K"},
	{Size: 1_000_000, Name: "1M"},
	{Size: 10_000_000, Name: "10M"},
}

// DefaultLanguages is the display order of the summary table columns.
var DefaultLanguages = []string{"Assembly", "C", "C++", "Rust", "Go", "Python", "Dart", "R"}

// BucketSizes returns the sizes of Buckets.
func BucketSizes() []int {
	sizes := make([]int, len(Buckets))
	for i, b := range Buckets {
		sizes[i] = b.Size
	}

	return sizes
}

// BucketNames returns the short display names of Buckets.
func BucketNames() []string {
	names := make([]string, len(Buckets))
	for i, b := range Buckets {
		names[i] = b.Name
	}

	return names
}

// BucketName returns the display name for size, or its decimal form for
// sizes outside Buckets.
func BucketName(size int) string {
	for _, b := range Buckets {
		if b.Size == size {
			return b.Name
		}
	}

	return strconv.Itoa(size)
}
