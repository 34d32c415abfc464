// Copyright (c) 2026 Abjago.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(conn *sql.DB) error {
	_, err := conn.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Timestamps are written from Go and documents stored as TEXT so the same
// schema works on both sqlite and postgres.
const schema = `
-- Saved scenarios (named parameter sets, including seeded presets)
CREATE TABLE IF NOT EXISTS scenario (
    id TEXT PRIMARY KEY,
    share_slug TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    params TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_scenario_share_slug ON scenario(share_slug);

-- Rendered documents keyed by canonical request parameters
CREATE TABLE IF NOT EXISTS render_cache (
    cache_key TEXT PRIMARY KEY,
    document TEXT NOT NULL,
    point_count INTEGER NOT NULL,
    created_at TIMESTAMP NOT NULL,
    last_hit_at TIMESTAMP NOT NULL,
    hit_count INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_render_cache_last_hit ON render_cache(last_hit_at);
`
