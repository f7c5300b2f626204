// Package config defines the top-level configuration for the multi builder
// backend and provides validation helpers.
package config

import (
	"fmt"
	"strings"
)

// Dataset source kinds.
const (
	SourceFile = "file"
	SourceS3   = "s3"
)

// Config is the root configuration structure. Fields are populated from a
// TOML file and then optionally overridden by MULTIBUILDER_* environment
// variables.
type Config struct {
	Server   ServerConfig  `toml:"server"`
	Dataset  DatasetConfig `toml:"dataset"`
	S3       S3Config      `toml:"s3"`
	Cache    CacheConfig   `toml:"cache"`
	Teams    []string      `toml:"teams"`
	Matches  []MatchConfig `toml:"matches"`
	LogLevel string        `toml:"log_level"`
}

// ServerConfig holds HTTP server parameters.
type ServerConfig struct {
	Port        int      `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`
}

// DatasetConfig selects where the three statistics CSVs are loaded from.
type DatasetConfig struct {
	Source       string `toml:"source"` // "file" or "s3"
	Dir          string `toml:"dir"`    // local directory (file source)
	BattersFile  string `toml:"batters_file"`
	BowlersFile  string `toml:"bowlers_file"`
	MatchupsFile string `toml:"matchups_file"`
}

// S3Config holds object storage parameters for the s3 dataset source.
type S3Config struct {
	Endpoint       string `toml:"endpoint"`
	Region         string `toml:"region"`
	Bucket         string `toml:"bucket"`
	Prefix         string `toml:"prefix"`
	AccessKey      string `toml:"access_key"`
	SecretKey      string `toml:"secret_key"`
	UseSSL         bool   `toml:"use_ssl"`
	ForcePathStyle bool   `toml:"force_path_style"`
}

// CacheConfig holds the optional Redis recommendation cache parameters.
type CacheConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	PoolSize   int    `toml:"pool_size"`
	MaxRetries int    `toml:"max_retries"`
	TLSEnabled bool   `toml:"tls_enabled"`
	TTLMinutes int    `toml:"ttl_minutes"`
}

// MatchConfig is one fixture of the static match catalog.
type MatchConfig struct {
	Home string `toml:"home"`
	Away string `toml:"away"`
}

// Defaults returns a Config populated with the values the service ships
// with: the eight BBL franchises, the sample fixture list, and a local
// data directory.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Port: 8000,
			CORSOrigins: []string{
				"http://localhost:3000",
				"http://localhost:3001",
				"http://127.0.0.1:3000",
				"http://127.0.0.1:3001",
				"http://localhost:8080",
				"http://127.0.0.1:8080",
			},
		},
		Dataset: DatasetConfig{
			Source:       SourceFile,
			Dir:          "data",
			BattersFile:  "BBL_batters.csv",
			BowlersFile:  "BBL_bowlers.csv",
			MatchupsFile: "Matchupsdata.csv",
		},
		S3: S3Config{
			Region:         "us-east-1",
			UseSSL:         true,
			ForcePathStyle: true,
		},
		Cache: CacheConfig{
			Enabled:    false,
			Addr:       "localhost:6379",
			PoolSize:   10,
			MaxRetries: 3,
			TTLMinutes: 10,
		},
		Teams: []string{
			"Adelaide Strikers",
			"Brisbane Heat",
			"Hobart Hurricanes",
			"Melbourne Renegades",
			"Melbourne Stars",
			"Perth Scorchers",
			"Sydney Sixers",
			"Sydney Thunder",
		},
		Matches: []MatchConfig{
			{Home: "Melbourne Stars", Away: "Brisbane Heat"},
			{Home: "Adelaide Strikers", Away: "Sydney Sixers"},
			{Home: "Perth Scorchers", Away: "Hobart Hurricanes"},
			{Home: "Sydney Thunder", Away: "Melbourne Renegades"},
		},
		LogLevel: "info",
	}
}

// validLogLevels enumerates the accepted values for Config.LogLevel.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks Config for obviously invalid or missing values and
// returns a combined error describing every problem found.
func (c *Config) Validate() error {
	var errs []string

	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		errs = append(errs, fmt.Sprintf("unknown log_level %q (valid: debug, info, warn, error)", c.LogLevel))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server: port must be 1-65535, got %d", c.Server.Port))
	}

	switch c.Dataset.Source {
	case SourceFile:
		if c.Dataset.Dir == "" {
			errs = append(errs, "dataset: dir must not be empty for the file source")
		}
	case SourceS3:
		if c.S3.Bucket == "" {
			errs = append(errs, "s3: bucket must not be empty for the s3 dataset source")
		}
		if c.S3.Region == "" {
			errs = append(errs, "s3: region must not be empty for the s3 dataset source")
		}
	default:
		errs = append(errs, fmt.Sprintf("dataset: unknown source %q (valid: file, s3)", c.Dataset.Source))
	}
	if c.Dataset.BattersFile == "" || c.Dataset.BowlersFile == "" || c.Dataset.MatchupsFile == "" {
		errs = append(errs, "dataset: batters_file, bowlers_file, and matchups_file must all be set")
	}

	if len(c.Teams) == 0 {
		errs = append(errs, "teams: the team catalog must not be empty")
	}
	teamSet := make(map[string]bool, len(c.Teams))
	for _, t := range c.Teams {
		teamSet[t] = true
	}
	for i, m := range c.Matches {
		if !teamSet[m.Home] || !teamSet[m.Away] {
			errs = append(errs, fmt.Sprintf("matches[%d]: %q vs %q references a team outside the catalog", i, m.Home, m.Away))
		}
	}

	if c.Cache.Enabled {
		if c.Cache.Addr == "" {
			errs = append(errs, "cache: addr must not be empty when enabled")
		}
		if c.Cache.PoolSize < 1 {
			errs = append(errs, "cache: pool_size must be >= 1")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
