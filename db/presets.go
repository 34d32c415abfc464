// Copyright (c) 2026 Abjago.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abjago/threepp/keys"
	"github.com/abjago/threepp/models"
)

// Preset is one named parameter set from the presets file.
type Preset struct {
	Name        string                `yaml:"name"`
	Description string                `yaml:"description"`
	Params      models.ScenarioParams `yaml:"params"`
}

type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

// LoadPresets reads and parses the YAML presets file.
func LoadPresets(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets file: %w", err)
	}

	var pf presetFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse presets file: %w", err)
	}

	for i, p := range pf.Presets {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("preset %d: name is required", i)
		}
	}

	return pf.Presets, nil
}

// SeedPresets stores presets as scenarios. IDs derive from the preset name,
// so reseeding on every boot never duplicates rows.
func SeedPresets(conn *sql.DB, presets []Preset, salt string, now time.Time) error {
	for _, p := range presets {
		id := presetID(p.Name)

		params, err := json.Marshal(p.Params)
		if err != nil {
			return fmt.Errorf("failed to encode preset %q: %w", p.Name, err)
		}

		_, err = conn.Exec(`
			INSERT INTO scenario (id, share_slug, name, description, params, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO NOTHING
		`, id, keys.ShareSlug(id, salt), p.Name, p.Description, string(params), now)
		if err != nil {
			return fmt.Errorf("failed to seed preset %q: %w", p.Name, err)
		}
	}

	return nil
}

// presetID flattens a preset name into a stable scenario ID.
func presetID(name string) string {
	var b strings.Builder
	b.WriteString("preset-")
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteByte('-')
		}
	}
	return b.String()
}
