// Copyright (c) 2026 Abjago.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and persistence.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The SQL is portable across sqlite and postgres: timestamps are written from
Go rather than via NOW(), rendered documents are stored as TEXT, and all
placeholders are $N in ascending order.

# Tables

The schema includes:

  - scenario: Saved parameter sets, including presets seeded at startup
  - render_cache: Rendered SVG documents keyed by canonical parameters

# Scenarios

SaveScenario, GetScenario, and ListScenarios cover the scenario surface.
Parameters are serialized to a JSON column so the schema never chases the
parameter set. GetScenario returns sql.ErrNoRows unwrapped for not-found
checks.

SeedPresets loads named parameter sets from a YAML file at startup and
stores them as scenarios. Preset IDs derive from the preset name, so
seeding is idempotent across restarts.

# Render Cache

CacheGet and CachePut give renders a write-through cache. Hits bump
hit_count and last_hit_at; PruneCache deletes rows idle past a cutoff.
StartCacheSweeper runs PruneCache on a cron schedule in a background
goroutine ("off" disables it).
*/
package db
