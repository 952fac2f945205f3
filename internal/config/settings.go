package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/handiism/playlist-lab/internal/logging"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "PLAYLIST_LAB_"

// Settings holds all configuration options.
type Settings struct {
	// Recommendation settings
	DefaultK    int     `json:"default_k"`
	GenreWeight float64 `json:"genre_weight"`

	// Export settings
	PlaylistFormat string `json:"playlist_format"` // m3u, pls, wpl, zpl
	M3UExtended    bool   `json:"m3u_extended"`

	// Snapshot settings
	SnapshotWidth  int `json:"snapshot_width"`
	SnapshotHeight int `json:"snapshot_height"`

	// Import settings
	ImportConcurrency int `json:"import_concurrency"`

	// Log settings
	LogLevel      string `json:"log_level"`
	LogFile       string `json:"log_file"`
	LogMaxSizeMB  int    `json:"log_max_size_mb"`
	LogMaxBackups int    `json:"log_max_backups"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		DefaultK:    2,
		GenreWeight: 1.0,

		PlaylistFormat: "m3u",
		M3UExtended:    true,

		SnapshotWidth:  600,
		SnapshotHeight: 300,

		ImportConcurrency: 4,

		LogLevel:      "info",
		LogMaxSizeMB:  10,
		LogMaxBackups: 3,
	}
}

// Load reads settings from a JSON file. A missing file yields defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// LoadEnv loads the given .env files (or ./.env when none are given) and
// applies PLAYLIST_LAB_* overrides on top of s. Missing .env files are
// ignored; existing environment variables win over .env entries.
func (s *Settings) LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load env: %w", err)
	}

	var errs []error
	envInt(&s.DefaultK, "DEFAULT_K", &errs)
	envFloat(&s.GenreWeight, "GENRE_WEIGHT", &errs)
	envString(&s.PlaylistFormat, "PLAYLIST_FORMAT")
	envBool(&s.M3UExtended, "M3U_EXTENDED", &errs)
	envInt(&s.SnapshotWidth, "SNAPSHOT_WIDTH", &errs)
	envInt(&s.SnapshotHeight, "SNAPSHOT_HEIGHT", &errs)
	envInt(&s.ImportConcurrency, "IMPORT_CONCURRENCY", &errs)
	envString(&s.LogLevel, "LOG_LEVEL")
	envString(&s.LogFile, "LOG_FILE")
	envInt(&s.LogMaxSizeMB, "LOG_MAX_SIZE_MB", &errs)
	envInt(&s.LogMaxBackups, "LOG_MAX_BACKUPS", &errs)

	return errors.Join(errs...)
}

func envString(dst *string, key string) {
	if v, ok := os.LookupEnv(EnvPrefix + key); ok {
		*dst = v
	}
}

func envInt(dst *int, key string, errs *[]error) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
		return
	}
	*dst = n
}

func envFloat(dst *float64, key string, errs *[]error) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
		return
	}
	*dst = f
}

func envBool(dst *bool, key string, errs *[]error) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
		return
	}
	*dst = b
}

// ToLoggingConfig converts settings to a logging.Config.
func (s *Settings) ToLoggingConfig(console bool) logging.Config {
	return logging.Config{
		Level:      s.LogLevel,
		Console:    console,
		File:       s.LogFile,
		MaxSizeMB:  s.LogMaxSizeMB,
		MaxBackups: s.LogMaxBackups,
	}
}
