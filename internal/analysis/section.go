package analysis

import (
	"fmt"
	"regexp"
	"strconv"
)

// headerPattern matches "=== <LANGUAGE> <SIZE> ELEMENTS ===" anywhere in the document.
// The language is one or more word characters (Unicode letters, digits, underscore).
var headerPattern = regexp.MustCompile(`=== ([\p{L}\p{N}_]+) (\d+) ELEMENTS ===`)

// Section is one benchmark block of the log document.
type Section struct {
	Language string
	Size     int
	Body     string
}

// SkippedHeader describes a header whose size token could not be used.
type SkippedHeader struct {
	Language string
	Token    string
	Err      error
}

// Split is the result of SplitSections.
type Split struct {
	Sections []Section
	Skipped  []SkippedHeader
}

// SplitSections splits doc at every header and returns the sections in document order.
//
// Text before the first header is discarded. The body of a section is the raw
// text between its header and the next header (or the end of doc), so joining
// all bodies with their headers reproduces doc from the first header on.
// A header with an unusable size drops only its own section.
func SplitSections(doc string) Split {
	var split Split

	locs := headerPattern.FindAllStringSubmatchIndex(doc, -1)

	for i, loc := range locs {
		language := doc[loc[2]:loc[3]]
		token := doc[loc[4]:loc[5]]

		end := len(doc)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}

		size, err := parseSize(token)
		if err != nil {
			split.Skipped = append(split.Skipped, SkippedHeader{Language: language, Token: token, Err: err})

			continue
		}

		split.Sections = append(split.Sections, Section{
			Language: language,
			Size:     size,
			Body:     doc[loc[1]:end],
		})
	}

	return split
}

func parseSize(token string) (int, error) {
	size, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrSizeNotNumeric, token)
	}

	if size <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrSizeNotPositive, size)
	}

	return size, nil
}
