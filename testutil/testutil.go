// Copyright (c) 2026 Abjago.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/abjago/threepp/cliparse"
	"github.com/abjago/threepp/db"
	"github.com/abjago/threepp/keys"
	"github.com/abjago/threepp/models"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. A single connection keeps the in-memory database alive and
// shared for the life of the test.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3378,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		SlugSalt:     "test-slug-salt",
		CacheTTL:     time.Hour,
		CacheSweep:   "off",
		MaxPoints:    250000,
		LogLevel:     "error",
		LogFormat:    "text",
	}
}

// CreateTestScenario stores a small, quick-to-render scenario and returns
// its ID and share slug.
func CreateTestScenario(t *testing.T, conn *sql.DB, cfg cliparse.Config, name string) (scenarioID, shareSlug string) {
	t.Helper()

	scenarioID = keys.NewID()
	shareSlug = keys.ShareSlug(scenarioID, cfg.SlugSalt)

	err := db.SaveScenario(conn, models.Scenario{
		ID:        scenarioID,
		ShareSlug: shareSlug,
		Name:      name,
		Params: models.ScenarioParams{
			Start: Float64(0.2),
			Stop:  Float64(0.3),
			Step:  Float64(0.1),
		},
		CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("Failed to create test scenario: %v", err)
	}

	return scenarioID, shareSlug
}

// Float64 returns a pointer to v, for optional scenario parameters.
func Float64(v float64) *float64 {
	return &v
}

// String returns a pointer to s, for optional scenario parameters.
func String(s string) *string {
	return &s
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
