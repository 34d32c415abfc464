// Copyright (c) 2026 Abjago.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the threepp API.

# Handler Types

Each handler is a struct carrying its dependencies:

  - GraphHandler: The render pipeline behind GET /visualise
  - SimulateHandler: Single-point counts for GET /simulate (config only,
    no storage)
  - ScenarioHandler: Saved parameter sets and their renders

Handlers are created via constructor functions:

	graphHandler := handlers.NewGraphHandler(db, cfg)

# Request Parsing

ParseGraphQuery turns raw query values into a validated GraphRequest:
six flow ratios (green_to_red, red_to_green, green_to_blue, blue_to_green,
red_to_blue, blue_to_red), the voting mode (prefs), grid bounds
(start, stop, step), repeated point-of-interest triples (px, py, pl), and
the download flag (dl). Missing values fall back to documented defaults.

Fatal problems are sentinel errors, all raised before any simulation runs:

  - ErrInvalidParameter: unparseable or out-of-range scalar
  - ErrInvalidRange: inconsistent bounds, or a grid over the point ceiling
  - ErrInvalidStep: non-positive or oversized step (also matches
    ErrInvalidRange via errors.Is)
  - election.ErrFlowInvariant: flow ratios violating the mode's sum rule

Bad points of interest are never fatal: each is skipped with an indexed
reason (unparseable, out-of-range, off-simplex, missing-coordinate) and
reported in the X-Skipped-Poi response headers.

# Render Pipeline

GET /visualise runs: parse → cache lookup → grid simulation → SVG assembly
→ cache store. Identical parameters produce byte-identical documents, so
cache hits are indistinguishable from fresh renders. The dl=true flag only
switches Content-Disposition from inline to attachment.

# Scenarios

Scenarios persist a named parameter set behind an unguessable share slug:

	POST /scenarios                 → Create (validates like /visualise)
	GET /scenarios                  → List
	GET /scenarios/{slug}           → Get
	GET /scenarios/{slug}/visualise → Visualise (same pipeline)

Stored parameters are replayed through ParseGraphQuery on render, so a
scenario can never bypass validation.
*/
package handlers
