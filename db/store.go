// Copyright (c) 2026 Abjago.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abjago/threepp/models"
)

// SaveScenario inserts a scenario, serializing its parameters to JSON.
func SaveScenario(conn *sql.DB, s models.Scenario) error {
	params, err := json.Marshal(s.Params)
	if err != nil {
		return fmt.Errorf("failed to encode scenario params: %w", err)
	}

	_, err = conn.Exec(`
		INSERT INTO scenario (id, share_slug, name, description, params, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, s.ID, s.ShareSlug, s.Name, s.Description, string(params), s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert scenario: %w", err)
	}

	return nil
}

// GetScenario looks up a scenario by its share slug. Returns sql.ErrNoRows
// unwrapped so callers can distinguish not-found from failure.
func GetScenario(conn *sql.DB, slug string) (models.Scenario, error) {
	var s models.Scenario
	var params string

	err := conn.QueryRow(`
		SELECT id, share_slug, name, description, params, created_at
		FROM scenario
		WHERE share_slug = $1
	`, slug).Scan(&s.ID, &s.ShareSlug, &s.Name, &s.Description, &params, &s.CreatedAt)
	if err != nil {
		return models.Scenario{}, err
	}

	if err := json.Unmarshal([]byte(params), &s.Params); err != nil {
		return models.Scenario{}, fmt.Errorf("failed to decode scenario params: %w", err)
	}

	return s, nil
}

// ListScenarios returns summaries of all saved scenarios, newest first.
func ListScenarios(conn *sql.DB) ([]models.ScenarioSummary, error) {
	rows, err := conn.Query(`
		SELECT id, share_slug, name, description, created_at
		FROM scenario
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query scenarios: %w", err)
	}
	defer rows.Close()

	scenarios := []models.ScenarioSummary{}
	for rows.Next() {
		var s models.ScenarioSummary
		if err := rows.Scan(&s.ID, &s.ShareSlug, &s.Name, &s.Description, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan scenario: %w", err)
		}
		scenarios = append(scenarios, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scenarios: %w", err)
	}

	return scenarios, nil
}

// CacheGet fetches a rendered document by cache key. A hit bumps hit_count
// and last_hit_at so the sweeper keeps warm entries alive.
func CacheGet(conn *sql.DB, key string, now time.Time) ([]byte, bool, error) {
	var doc string

	err := conn.QueryRow(`
		SELECT document FROM render_cache WHERE cache_key = $1
	`, key).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to query render cache: %w", err)
	}

	_, err = conn.Exec(`
		UPDATE render_cache
		SET hit_count = hit_count + 1, last_hit_at = $1
		WHERE cache_key = $2
	`, now, key)
	if err != nil {
		return nil, false, fmt.Errorf("failed to record cache hit: %w", err)
	}

	return []byte(doc), true, nil
}

// CachePut stores a rendered document under its cache key. Concurrent
// renders of the same key race benignly; the upsert keeps the row fresh.
func CachePut(conn *sql.DB, key string, doc []byte, points int, now time.Time) error {
	_, err := conn.Exec(`
		INSERT INTO render_cache (cache_key, document, point_count, created_at, last_hit_at, hit_count)
		VALUES ($1, $2, $3, $4, $5, 0)
		ON CONFLICT (cache_key) DO UPDATE SET last_hit_at = excluded.last_hit_at
	`, key, string(doc), points, now, now)
	if err != nil {
		return fmt.Errorf("failed to store rendered document: %w", err)
	}

	return nil
}

// PruneCache deletes cache entries that have not been hit since the cutoff.
// Returns the number of rows removed.
func PruneCache(conn *sql.DB, cutoff time.Time) (int64, error) {
	res, err := conn.Exec(`
		DELETE FROM render_cache WHERE last_hit_at < $1
	`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune render cache: %w", err)
	}

	return res.RowsAffected()
}
