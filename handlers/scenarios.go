// Copyright (c) 2026 Abjago.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/abjago/threepp/cliparse"
	"github.com/abjago/threepp/db"
	"github.com/abjago/threepp/keys"
	"github.com/abjago/threepp/middleware"
	"github.com/abjago/threepp/models"
)

type ScenarioHandler struct {
	db     *sql.DB
	cfg    cliparse.Config
	graphs *GraphHandler
}

func NewScenarioHandler(conn *sql.DB, cfg cliparse.Config) *ScenarioHandler {
	return &ScenarioHandler{db: conn, cfg: cfg, graphs: NewGraphHandler(conn, cfg)}
}

// Create handles POST /scenarios
func (h *ScenarioHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateScenarioRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	// Stored parameters must render, so they pass through the same
	// validation as a live request.
	if _, err := ParseGraphQuery(ParamsToQuery(req.Params), h.cfg.MaxPoints); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	scenarioID := keys.NewID()
	shareSlug := keys.ShareSlug(scenarioID, h.cfg.SlugSalt)

	err := db.SaveScenario(h.db, models.Scenario{
		ID:          scenarioID,
		ShareSlug:   shareSlug,
		Name:        req.Name,
		Description: req.Description,
		Params:      req.Params,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		slog.Error("failed to insert scenario", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create scenario")
		return
	}

	slog.Info("scenario created", "scenario_id", scenarioID, "share_slug", shareSlug, "name", req.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateScenarioResponse{
		ScenarioID: scenarioID,
		ShareSlug:  shareSlug,
		ShareURL:   "/scenarios/" + shareSlug,
	})
}

// List handles GET /scenarios
func (h *ScenarioHandler) List(w http.ResponseWriter, r *http.Request) {
	scenarios, err := db.ListScenarios(h.db)
	if err != nil {
		slog.Error("failed to list scenarios", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ScenarioListResponse{Scenarios: scenarios})
}

// Get handles GET /scenarios/{slug}
func (h *ScenarioHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	scenario, err := db.GetScenario(h.db, slug)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Scenario not found")
		return
	}
	if err != nil {
		slog.Error("failed to query scenario", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, scenario)
}

// Visualise handles GET /scenarios/{slug}/visualise
// Renders a saved scenario through the same pipeline as a live request.
// Only the dl flag is honored from the query; everything else comes from
// the stored parameters.
func (h *ScenarioHandler) Visualise(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	scenario, err := db.GetScenario(h.db, slug)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Scenario not found")
		return
	}
	if err != nil {
		slog.Error("failed to query scenario", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	q := ParamsToQuery(scenario.Params)
	if r.URL.Query().Get("dl") == "true" {
		q.Set("dl", "true")
	}

	// Scenarios were validated at creation; a failure here means the
	// stored parameters no longer clear the configured limits.
	req, err := ParseGraphQuery(q, h.cfg.MaxPoints)
	if err != nil {
		slog.Warn("stored scenario no longer renders", "share_slug", slug, "error", err)
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.graphs.serveDocument(w, r, req)
}
