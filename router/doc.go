// Copyright (c) 2026 Abjago.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the threepp API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Rendering (public):

	GET /visualise - Render a vote-share graph as SVG
	GET /simulate  - Run one preference count, returning JSON

Saved scenarios (public, share slug in the URL):

	POST /scenarios                  - Save a parameter set
	GET  /scenarios                  - List saved scenarios
	GET  /scenarios/{slug}           - Fetch one scenario
	GET  /scenarios/{slug}/visualise - Render a saved scenario

# Handler Initialization

The router creates handler instances with dependency injection:

	graphHandler := handlers.NewGraphHandler(db, cfg)
	simulateHandler := handlers.NewSimulateHandler(cfg)
	scenarioHandler := handlers.NewScenarioHandler(db, cfg)

All routed endpoints are wrapped in request logging; CORS is applied once
around the whole mux in main.
*/
package router
