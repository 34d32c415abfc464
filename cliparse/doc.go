// Copyright (c) 2026 Abjago.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3377)
  - DatabaseURL: postgres connection string or sqlite path (default: threepp.db)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - SlugSalt: Secret for scenario share-slug HMAC (default: dev salt)
  - PresetsPath: YAML file of preset scenarios seeded at startup (optional)
  - CacheTTL: render cache entry lifetime, also the Cache-Control max-age (default: 24h)
  - CacheSweep: cron schedule for cache pruning, "off" disables (default: hourly)
  - MaxPoints: grid point ceiling per render (default: 250000)
  - LogLevel: debug, info, warn, error (default: info)
  - LogFormat: auto, text, or json; auto uses text on a terminal and JSON
    otherwise (default: auto)

# CLI Flags

	-config       YAML config file
	-p            Server port
	-d            Database URL
	-t            Database type
	--slug-salt   Scenario slug salt
	--presets     Preset scenarios file
	--cache-ttl   Cache lifetime
	--cache-sweep Cache sweep schedule
	--max-points  Grid point ceiling
	--log-level   Log level
	--log-format  Log format

# Environment Variables

Flags fall back to environment variables, then to the config file:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	SLUG_SALT     → --slug-salt
	PRESETS_PATH  → --presets
	CACHE_TTL     → --cache-ttl
	CACHE_SWEEP   → --cache-sweep
	MAX_POINTS    → --max-points
	LOG_LEVEL     → --log-level
	LOG_FORMAT    → --log-format
	CONFIG_PATH   → -config

Precedence per field: flag, env, config file, default.

# Validation

ParseFlags fails on malformed numeric or duration values and on database
types other than sqlite/postgres. Everything has a workable default, so a
bare `threepp` starts a sqlite-backed server on port 3377.

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := sql.Open(cfg.DatabaseType, cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(conn, cfg)
*/
package cliparse
