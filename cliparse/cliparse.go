package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	SlugSalt     string
	PresetsPath  string
	CacheTTL     time.Duration
	CacheSweep   string
	MaxPoints    int
	LogLevel     string
	LogFormat    string
}

// fileConfig is the YAML shape of the optional config file. CacheTTL stays
// a string here so "24h"-style durations parse.
type fileConfig struct {
	Port         int    `yaml:"port"`
	DatabaseURL  string `yaml:"database_url"`
	DatabaseType string `yaml:"database_type"`
	SlugSalt     string `yaml:"slug_salt"`
	Presets      string `yaml:"presets"`
	CacheTTL     string `yaml:"cache_ttl"`
	CacheSweep   string `yaml:"cache_sweep"`
	MaxPoints    int    `yaml:"max_points"`
	LogLevel     string `yaml:"log_level"`
	LogFormat    string `yaml:"log_format"`
}

// ParseFlags resolves the full configuration. Precedence per field: CLI flag,
// then environment variable, then the YAML config file, then the default.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var configPath string

	fs := flag.NewFlagSet("threepp", flag.ContinueOnError)

	fs.StringVar(&configPath, "config", "", "YAML config file (or CONFIG_PATH env)")

	// Network and storage (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (postgres) or sqlite path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SlugSalt, "slug-salt", "", "Scenario slug salt (prefer env)")

	// Rendering service knobs
	fs.StringVar(&cfg.PresetsPath, "presets", "", "YAML file of preset scenarios")
	fs.DurationVar(&cfg.CacheTTL, "cache-ttl", 0, "Render cache entry lifetime")
	fs.StringVar(&cfg.CacheSweep, "cache-sweep", "", `Cache sweep cron schedule ("off" to disable)`)
	fs.IntVar(&cfg.MaxPoints, "max-points", 0, "Grid point ceiling per render")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", "", "Log format (auto, text, or json)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}
	var file fileConfig
	if configPath != "" {
		var err error
		file, err = loadFile(configPath)
		if err != nil {
			return Config{}, err
		}
	}

	// Fall back to environment variables, then the config file, then defaults
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else if file.Port != 0 {
			cfg.Port = file.Port
		} else {
			cfg.Port = 3377 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = file.DatabaseURL
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "threepp.db"
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = file.DatabaseType
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = "sqlite"
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q (want sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.SlugSalt == "" {
		cfg.SlugSalt = os.Getenv("SLUG_SALT")
	}
	if cfg.SlugSalt == "" {
		cfg.SlugSalt = file.SlugSalt
	}
	if cfg.SlugSalt == "" {
		// Slugs only gate URL sharing, so a dev salt beats refusing to start.
		cfg.SlugSalt = "dev-salt-threepp"
	}

	if cfg.PresetsPath == "" {
		cfg.PresetsPath = os.Getenv("PRESETS_PATH")
	}
	if cfg.PresetsPath == "" {
		cfg.PresetsPath = file.Presets
	}

	if cfg.CacheTTL == 0 {
		ttlStr := os.Getenv("CACHE_TTL")
		if ttlStr == "" {
			ttlStr = file.CacheTTL
		}
		if ttlStr != "" {
			ttl, err := time.ParseDuration(ttlStr)
			if err != nil {
				return Config{}, fmt.Errorf("invalid cache TTL %q: %w", ttlStr, err)
			}
			cfg.CacheTTL = ttl
		} else {
			cfg.CacheTTL = 24 * time.Hour
		}
	}

	if cfg.CacheSweep == "" {
		cfg.CacheSweep = os.Getenv("CACHE_SWEEP")
	}
	if cfg.CacheSweep == "" {
		cfg.CacheSweep = file.CacheSweep
	}
	if cfg.CacheSweep == "" {
		cfg.CacheSweep = "0 * * * *" // hourly
	}

	if cfg.MaxPoints == 0 {
		if maxStr := os.Getenv("MAX_POINTS"); maxStr != "" {
			n, err := strconv.Atoi(maxStr)
			if err != nil {
				return Config{}, errors.New("invalid MAX_POINTS env variable")
			}
			cfg.MaxPoints = n
		} else if file.MaxPoints != 0 {
			cfg.MaxPoints = file.MaxPoints
		} else {
			cfg.MaxPoints = 250000
		}
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = os.Getenv("LOG_LEVEL")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = file.LogLevel
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = os.Getenv("LOG_FORMAT")
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = file.LogFormat
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "auto"
	}

	return cfg, nil
}

func loadFile(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("parse config file: %w", err)
	}
	return fc, nil
}
