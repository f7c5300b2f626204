package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load reads a TOML configuration file at path, merges it on top of the
// built-in defaults, applies MULTIBUILDER_* environment variable overrides,
// and returns the final Config. The returned Config has NOT been validated;
// the caller should invoke Config.Validate() after Load.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}

	// Load .env if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyEnvOverrides reads well-known MULTIBUILDER_* environment variables
// and overwrites the corresponding Config fields when a variable is set.
// This lets operators inject secrets at deploy time without touching the
// TOML file.
func applyEnvOverrides(cfg *Config) {
	setInt(&cfg.Server.Port, "MULTIBUILDER_SERVER_PORT")
	setStringSlice(&cfg.Server.CORSOrigins, "MULTIBUILDER_SERVER_CORS_ORIGINS")

	setStr(&cfg.Dataset.Source, "MULTIBUILDER_DATASET_SOURCE")
	setStr(&cfg.Dataset.Dir, "MULTIBUILDER_DATASET_DIR")
	setStr(&cfg.Dataset.BattersFile, "MULTIBUILDER_DATASET_BATTERS_FILE")
	setStr(&cfg.Dataset.BowlersFile, "MULTIBUILDER_DATASET_BOWLERS_FILE")
	setStr(&cfg.Dataset.MatchupsFile, "MULTIBUILDER_DATASET_MATCHUPS_FILE")

	setStr(&cfg.S3.Endpoint, "MULTIBUILDER_S3_ENDPOINT")
	setStr(&cfg.S3.Region, "MULTIBUILDER_S3_REGION")
	setStr(&cfg.S3.Bucket, "MULTIBUILDER_S3_BUCKET")
	setStr(&cfg.S3.Prefix, "MULTIBUILDER_S3_PREFIX")
	setStr(&cfg.S3.AccessKey, "MULTIBUILDER_S3_ACCESS_KEY")
	setStr(&cfg.S3.SecretKey, "MULTIBUILDER_S3_SECRET_KEY")
	setBool(&cfg.S3.UseSSL, "MULTIBUILDER_S3_USE_SSL")
	setBool(&cfg.S3.ForcePathStyle, "MULTIBUILDER_S3_FORCE_PATH_STYLE")

	setBool(&cfg.Cache.Enabled, "MULTIBUILDER_CACHE_ENABLED")
	setStr(&cfg.Cache.Addr, "MULTIBUILDER_CACHE_ADDR")
	setStr(&cfg.Cache.Password, "MULTIBUILDER_CACHE_PASSWORD")
	setInt(&cfg.Cache.DB, "MULTIBUILDER_CACHE_DB")
	setInt(&cfg.Cache.PoolSize, "MULTIBUILDER_CACHE_POOL_SIZE")
	setInt(&cfg.Cache.MaxRetries, "MULTIBUILDER_CACHE_MAX_RETRIES")
	setBool(&cfg.Cache.TLSEnabled, "MULTIBUILDER_CACHE_TLS_ENABLED")
	setInt(&cfg.Cache.TTLMinutes, "MULTIBUILDER_CACHE_TTL_MINUTES")

	setStr(&cfg.LogLevel, "MULTIBUILDER_LOG_LEVEL")
}

// ---------------------------------------------------------------------------
// Typed env-var helpers. Each only mutates the target when the environment
// variable is present and non-empty.
// ---------------------------------------------------------------------------

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setStringSlice(dst *[]string, key string) {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		cleaned := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				cleaned = append(cleaned, p)
			}
		}
		if len(cleaned) > 0 {
			*dst = cleaned
		}
	}
}
