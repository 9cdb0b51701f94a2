package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/calvinalkan/benchan/internal/analysis"
	"github.com/calvinalkan/benchan/internal/report"

	flag "github.com/spf13/pflag"
)

var errUnknownSize = errors.New("unknown size (want one of 1K, 10K, 100K, 1M, 10M)")

// ChampionsCmd returns the champions command.
func ChampionsCmd(a *app) *Command {
	fs := flag.NewFlagSet("champions", flag.ContinueOnError)
	fs.String("size", "", "Only show this size (1K|10K|100K|1M|10M or element count)")

	return &Command{
		Name:  "champions",
		Flags: fs,
		Short: "Show the fastest implementation per size",
		Long:  "Show the champion of every size bucket followed by each language's speedup relative to it.",
		Exec: func(_ context.Context, io *IO) error {
			return execChampions(io, a, fs)
		},
	}
}

func execChampions(io *IO, a *app, fs *flag.FlagSet) error {
	buckets := analysis.Buckets

	if fs.Changed("size") {
		value, _ := fs.GetString("size")

		bucket, err := parseBucket(value)
		if err != nil {
			return err
		}

		buckets = []analysis.Bucket{bucket}
	}

	store, ok, err := a.loadStore(io)
	if err != nil || !ok {
		return err
	}

	for _, bucket := range buckets {
		io.Println(report.ChampionLine(analysis.ChampionAt(store, bucket.Size)))

		speedups, ok := analysis.SpeedupsAt(store, bucket.Size)
		if !ok {
			continue
		}

		for _, entry := range speedups.Sorted() {
			io.Println("  " + report.SpeedupLine(entry))
		}
	}

	return nil
}

// parseBucket accepts a bucket name ("10K", case-insensitive) or its size ("10000").
func parseBucket(value string) (analysis.Bucket, error) {
	size, convErr := strconv.Atoi(value)

	for _, b := range analysis.Buckets {
		if strings.EqualFold(b.Name, value) || (convErr == nil && b.Size == size) {
			return b, nil
		}
	}

	return analysis.Bucket{}, fmt.Errorf("%w: %q", errUnknownSize, value)
}
