// Copyright (c) 2026 Abjago.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateScenarioRequest: name, description, params
  - ScenarioParams: the /visualise query parameters in JSON/YAML form, with
    nil fields meaning "use the default"
  - PointOfInterest: x, y, label

ScenarioParams doubles as the schema of the preset scenarios YAML file.

# Response Types

Types for JSON responses:

  - CreateScenarioResponse: scenario_id, share_slug, share_url
  - ScenarioListResponse: scenarios
  - SimulateResponse: shares, eliminated, totals, winner, margin
  - ErrorResponse: error, message

# Domain Types

  - Scenario: a stored parameter set with its share slug
  - ScenarioSummary: listing form without the full params
  - SkippedPoint: one rejected point of interest (index + reason)

# Constants

Skip reasons for points of interest:

	SkipReasonUnparseable       = "unparseable"
	SkipReasonOutOfRange        = "out-of-range"
	SkipReasonOffSimplex        = "off-simplex"
	SkipReasonMissingCoordinate = "missing-coordinate"
*/
package models
