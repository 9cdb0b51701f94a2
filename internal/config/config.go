// Package config loads benchan's layered JSONC configuration.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/tailscale/hujson"

	"github.com/calvinalkan/benchan/internal/analysis"
	"github.com/calvinalkan/benchan/internal/report"
)

// FileName is the project config file looked up in the work directory.
const FileName = ".benchan.json"

// Config holds all configuration options.
type Config struct {
	// From config files (serialized)
	Input          string   `json:"input"`
	Report         string   `json:"report"`
	Snapshot       string   `json:"snapshot"`
	SnapshotFormat string   `json:"snapshot_format"` //nolint:tagliatelle // snake_case for config file
	Languages      []string `json:"languages"`
	LogLevel       string   `json:"log_level"` //nolint:tagliatelle // snake_case for config file

	// Resolved (computed, not serialized)
	EffectiveCwd string        `json:"-"`
	InputAbs     string        `json:"-"`
	ReportAbs    string        `json:"-"`
	SnapshotAbs  string        `json:"-"`
	Format       report.Format `json:"-"`
	Level        slog.Level    `json:"-"`

	// Sources tracks which config files were loaded (for diagnostics)
	Sources Sources `json:"-"`
}

// Sources tracks which config files were loaded.
type Sources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project config if loaded, empty otherwise
}

// Default returns the default configuration. Snapshot is left empty: its
// default depends on the resolved format, see DefaultSnapshotPath.
func Default() Config {
	return Config{
		Input:          filepath.Join("results", "all_results.txt"),
		Report:         filepath.Join("results", "performance_analysis.txt"),
		SnapshotFormat: string(report.FormatJSON),
		Languages:      slices.Clone(analysis.DefaultLanguages),
		LogLevel:       "warn",
	}
}

// Overrides holds values from CLI flags. Empty fields mean no override.
type Overrides struct {
	Input          string
	Report         string
	Snapshot       string
	SnapshotFormat string
	Verbose        bool
}

// LoadInput holds the inputs for Load.
type LoadInput struct {
	WorkDirOverride string            // -C/--cwd flag value; if empty, os.Getwd() is used
	ConfigPath      string            // -c/--config flag value
	Overrides       Overrides         // per-field flag overrides
	Env             map[string]string // environment variables
}

// Load loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Global user config (~/.config/benchan/config.json or $XDG_CONFIG_HOME/benchan/config.json)
// 3. Project config file at default location (.benchan.json, if exists)
// 4. Explicit config file via ConfigPath (if non-empty)
// 5. CLI overrides.
//
// All paths in the returned Config are resolved to absolute paths.
func Load(input LoadInput) (Config, error) {
	workDir := input.WorkDirOverride
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	}

	cfg := Default()

	globalCfg, globalPath, err := loadGlobal(input.Env)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Global = globalPath
	cfg = merge(cfg, globalCfg)

	projectCfg, projectPath, err := loadProject(workDir, input.ConfigPath)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Project = projectPath
	cfg = merge(cfg, projectCfg)

	cfg = applyOverrides(cfg, input.Overrides)

	err = validate(&cfg)
	if err != nil {
		return Config{}, err
	}

	if cfg.Snapshot == "" {
		cfg.Snapshot = DefaultSnapshotPath(cfg.Format)
	}

	cfg.EffectiveCwd = workDir
	cfg.InputAbs = absPath(workDir, cfg.Input)
	cfg.ReportAbs = absPath(workDir, cfg.Report)
	cfg.SnapshotAbs = absPath(workDir, cfg.Snapshot)

	return cfg, nil
}

// DefaultSnapshotPath returns results/benchmark_data.<format>.
func DefaultSnapshotPath(format report.Format) string {
	return filepath.Join("results", "benchmark_data."+string(format))
}

// Format returns the config as formatted JSON.
func Format(cfg Config) (string, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to format config: %w", err)
	}

	return string(data), nil
}

// globalPath returns $XDG_CONFIG_HOME/benchan/config.json if set, otherwise
// ~/.config/benchan/config.json. Empty if neither can be determined.
func globalPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, "benchan", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "benchan", "config.json")
	}

	return ""
}

func loadGlobal(env map[string]string) (Config, string, error) {
	path := globalPath(env)
	if path == "" {
		return Config{}, "", nil
	}

	cfg, loaded, err := loadFile(path, false)
	if err != nil || !loaded {
		return Config{}, "", err
	}

	return cfg, path, nil
}

// loadProject loads .benchan.json from workDir, or configPath when given.
func loadProject(workDir, configPath string) (Config, string, error) {
	path := filepath.Join(workDir, FileName)
	mustExist := false

	if configPath != "" {
		path = absPath(workDir, configPath)
		mustExist = true

		if _, statErr := os.Stat(path); statErr != nil {
			return Config{}, "", fmt.Errorf("%w: %s", ErrFileNotFound, configPath)
		}
	}

	cfg, loaded, err := loadFile(path, mustExist)
	if err != nil || !loaded {
		return Config{}, "", err
	}

	return cfg, path, nil
}

// loadFile loads a config file. If mustExist is false, a missing file returns a zero config.
func loadFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if mustExist {
			return Config{}, false, fmt.Errorf("%w: %s", ErrFileRead, path)
		}

		return Config{}, false, nil
	}

	cfg, err := parse(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrInvalid, path, err)
	}

	return cfg, true, nil
}

func parse(data []byte) (Config, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config

	err = json.Unmarshal(standardized, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}

	// An explicit "" would otherwise be indistinguishable from an absent key.
	var raw map[string]any

	_ = json.Unmarshal(standardized, &raw)

	for _, key := range []string{"input", "report", "snapshot"} {
		if val, exists := raw[key]; exists {
			if str, ok := val.(string); ok && str == "" {
				return Config{}, fmt.Errorf("%w: %s", ErrPathEmpty, key)
			}
		}
	}

	if val, exists := raw["languages"]; exists {
		if list, ok := val.([]any); ok && len(list) == 0 {
			return Config{}, ErrLanguagesEmpty
		}
	}

	return cfg, nil
}

func merge(base, overlay Config) Config {
	if overlay.Input != "" {
		base.Input = overlay.Input
	}

	if overlay.Report != "" {
		base.Report = overlay.Report
	}

	if overlay.Snapshot != "" {
		base.Snapshot = overlay.Snapshot
	}

	if overlay.SnapshotFormat != "" {
		base.SnapshotFormat = overlay.SnapshotFormat
	}

	if len(overlay.Languages) > 0 {
		base.Languages = slices.Clone(overlay.Languages)
	}

	if overlay.LogLevel != "" {
		base.LogLevel = overlay.LogLevel
	}

	return base
}

func applyOverrides(cfg Config, o Overrides) Config {
	cfg = merge(cfg, Config{
		Input:          o.Input,
		Report:         o.Report,
		Snapshot:       o.Snapshot,
		SnapshotFormat: o.SnapshotFormat,
	})

	if o.Verbose {
		cfg.LogLevel = "debug"
	}

	return cfg
}

func validate(cfg *Config) error {
	format, err := report.ParseFormat(cfg.SnapshotFormat)
	if err != nil {
		return err
	}

	cfg.Format = format

	var level slog.Level

	err = level.UnmarshalText([]byte(strings.ToLower(cfg.LogLevel)))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrLogLevel, cfg.LogLevel)
	}

	cfg.Level = level

	for _, lang := range cfg.Languages {
		if strings.TrimSpace(lang) == "" {
			return ErrLanguageBlank
		}
	}

	return nil
}

func absPath(workDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(workDir, path)
}
