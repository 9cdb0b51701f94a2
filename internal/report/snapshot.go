package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"

	"github.com/calvinalkan/benchan/internal/analysis"
)

const (
	dirPerms  = 0o750
	filePerms = 0o644
)

// Format is a snapshot encoding.
type Format string

// Supported snapshot formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json" or "yaml" in any case. An empty string means JSON.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Snapshot is the persisted form of one analysis run. Field names are part of
// the file format and must not change.
type Snapshot struct {
	Timestamp string                                   `json:"timestamp" yaml:"timestamp"`
	Results   map[string]map[string]map[string]float64 `json:"results"   yaml:"results"`
	Metadata  Metadata                                 `json:"metadata"  yaml:"metadata"`
}

// Metadata describes the fixed axes of the report.
type Metadata struct {
	Languages []string `json:"languages"  yaml:"languages"`
	Sizes     []int    `json:"sizes"      yaml:"sizes"`
	SizeNames []string `json:"size_names" yaml:"size_names"` //nolint:tagliatelle // stable file format
}

// NewSnapshot captures store at time now.
func NewSnapshot(store *analysis.Store, languages []string, now time.Time) Snapshot {
	return Snapshot{
		Timestamp: now.Format(time.RFC3339),
		Results:   store.Results(),
		Metadata: Metadata{
			Languages: slices.Clone(languages),
			Sizes:     analysis.BucketSizes(),
			SizeNames: analysis.BucketNames(),
		},
	}
}

// Encode serializes the snapshot. Map keys are sorted in both formats.
func (s Snapshot) Encode(format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding snapshot as json: %w", err)
		}

		return append(data, '\n'), nil
	case FormatYAML:
		var buf strings.Builder

		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)

		if err := enc.Encode(s); err != nil {
			return nil, fmt.Errorf("encoding snapshot as yaml: %w", err)
		}

		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encoding snapshot as yaml: %w", err)
		}

		return []byte(buf.String()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteFile atomically replaces path with data, creating parent directories.
func WriteFile(path string, data []byte) error {
	err := os.MkdirAll(filepath.Dir(path), dirPerms)
	if err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}

	err = atomic.WriteFile(path, strings.NewReader(string(data)))
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	// atomic.WriteFile leaves new files at the temp file's 0600.
	err = os.Chmod(path, filePerms)
	if err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}

	return nil
}
