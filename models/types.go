package models

import "time"

// Reasons a point of interest can be skipped without failing the request
const (
	SkipReasonUnparseable       = "unparseable"
	SkipReasonOutOfRange        = "out-of-range"
	SkipReasonOffSimplex        = "off-simplex"
	SkipReasonMissingCoordinate = "missing-coordinate"
)

// Request types

// ScenarioParams mirrors the /visualise query parameters so a scenario can
// be stored, listed, and replayed. Nil fields fall back to the documented
// defaults when the scenario is rendered.
type ScenarioParams struct {
	GreenToRed  *float64 `json:"green_to_red,omitempty" yaml:"green_to_red"`
	RedToGreen  *float64 `json:"red_to_green,omitempty" yaml:"red_to_green"`
	GreenToBlue *float64 `json:"green_to_blue,omitempty" yaml:"green_to_blue"`
	BlueToGreen *float64 `json:"blue_to_green,omitempty" yaml:"blue_to_green"`
	RedToBlue   *float64 `json:"red_to_blue,omitempty" yaml:"red_to_blue"`
	BlueToRed   *float64 `json:"blue_to_red,omitempty" yaml:"blue_to_red"`

	Prefs *string  `json:"prefs,omitempty" yaml:"prefs"`
	Start *float64 `json:"start,omitempty" yaml:"start"`
	Stop  *float64 `json:"stop,omitempty" yaml:"stop"`
	Step  *float64 `json:"step,omitempty" yaml:"step"`

	POIs []PointOfInterest `json:"pois,omitempty" yaml:"pois"`
}

type PointOfInterest struct {
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
	Label string  `json:"label" yaml:"label"`
}

type CreateScenarioRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Params      ScenarioParams `json:"params"`
}

// Response types

type CreateScenarioResponse struct {
	ScenarioID string `json:"scenario_id"`
	ShareSlug  string `json:"share_slug"`
	ShareURL   string `json:"share_url"`
}

type ScenarioListResponse struct {
	Scenarios []ScenarioSummary `json:"scenarios"`
}

type SimulateResponse struct {
	X          float64            `json:"x"`
	Y          float64            `json:"y"`
	Mode       string             `json:"mode"`
	Shares     map[string]float64 `json:"shares"`
	Eliminated string             `json:"eliminated"`
	Totals     map[string]float64 `json:"totals"`
	Winner     string             `json:"winner"`
	Margin     float64            `json:"margin"`
}

// SkippedPoint records one rejected point of interest. Non-fatal: the graph
// still renders without it.
type SkippedPoint struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// Domain types

type Scenario struct {
	ID          string         `json:"id"`
	ShareSlug   string         `json:"share_slug"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Params      ScenarioParams `json:"params"`
	CreatedAt   time.Time      `json:"created_at"`
}

type ScenarioSummary struct {
	ID          string    `json:"id"`
	ShareSlug   string    `json:"share_slug"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
