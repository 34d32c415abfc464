// Copyright (c) 2026 Abjago.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the threepp graph server.

threepp simulates three-cornered Australian elections: for every combination
of Coalition, Labor, and Greens primary-vote shares on a configurable grid,
it runs a two-candidate-preferred count under user-supplied preference-flow
assumptions and renders the winners as a single interactive SVG.

# Starting the Server

The server runs on sqlite out of the box:

	go run main.go

Or against PostgreSQL:

	go run main.go -t postgres -d "postgres://..."

Settings resolve from CLI flags, then environment variables, then an
optional YAML config file, then defaults. A .env file is loaded first when
present.

# Configuration

Common settings:

  - PORT (-p): Server port (default: 3377)
  - DATABASE_URL (-d): sqlite path or PostgreSQL connection string
  - DATABASE_TYPE (-t): "sqlite" or "postgres"
  - SLUG_SALT (--slug-salt): Secret for scenario share slugs
  - PRESETS_PATH (--presets): YAML file of preset scenarios to seed
  - CACHE_TTL (--cache-ttl): Render cache entry lifetime (default: 24h)
  - CACHE_SWEEP (--cache-sweep): Sweep cron schedule, "off" to disable
  - MAX_POINTS (--max-points): Grid point ceiling per render
  - LOG_LEVEL, LOG_FORMAT (--log-level, --log-format)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - election: Preference-flow simulation (the domain core)
  - grid: Vote-share grid enumeration
  - svg: Deterministic SVG document assembly
  - handlers: HTTP request handlers (visualise, simulate, scenarios)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - keys: IDs, share slugs, and cache keys
  - db: Schema creation, scenario store, render cache
  - cliparse: Configuration parsing
  - logging: slog handler construction

See package documentation for each component.
*/
package main
