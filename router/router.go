// Copyright (c) 2026 Abjago.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/abjago/threepp/cliparse"
	"github.com/abjago/threepp/handlers"
	"github.com/abjago/threepp/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	graphHandler := handlers.NewGraphHandler(db, cfg)
	simulateHandler := handlers.NewSimulateHandler(cfg)
	scenarioHandler := handlers.NewScenarioHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Rendering pipeline (public)
	mux.HandleFunc("GET /visualise", middleware.WithLogging(graphHandler.Visualise))
	mux.HandleFunc("GET /simulate", middleware.WithLogging(simulateHandler.Simulate))

	// Saved scenarios
	mux.HandleFunc("POST /scenarios", middleware.WithLogging(scenarioHandler.Create))
	mux.HandleFunc("GET /scenarios", middleware.WithLogging(scenarioHandler.List))
	mux.HandleFunc("GET /scenarios/{slug}", middleware.WithLogging(scenarioHandler.Get))
	mux.HandleFunc("GET /scenarios/{slug}/visualise", middleware.WithLogging(scenarioHandler.Visualise))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("threepp API v1"))
	})

	return mux
}
