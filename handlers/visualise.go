// Copyright (c) 2026 Abjago.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/abjago/threepp/cliparse"
	"github.com/abjago/threepp/db"
	"github.com/abjago/threepp/election"
	"github.com/abjago/threepp/keys"
	"github.com/abjago/threepp/middleware"
	"github.com/abjago/threepp/svg"
)

type GraphHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewGraphHandler(db *sql.DB, cfg cliparse.Config) *GraphHandler {
	return &GraphHandler{db: db, cfg: cfg}
}

// Visualise handles GET /visualise
func (h *GraphHandler) Visualise(w http.ResponseWriter, r *http.Request) {
	req, err := ParseGraphQuery(r.URL.Query(), h.cfg.MaxPoints)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.serveDocument(w, r, req)
}

// serveDocument runs the render pipeline for a validated request: cache
// lookup, then grid simulation and SVG assembly on a miss. Identical
// parameters produce identical bytes, so cached documents are served as-is.
func (h *GraphHandler) serveDocument(w http.ResponseWriter, r *http.Request, req *GraphRequest) {
	key := keys.CacheKey(req.Canonical)

	doc, hit, err := db.CacheGet(h.db, key, time.Now())
	if err != nil {
		// A broken cache degrades to rendering fresh, never to a failure.
		slog.Error("render cache lookup failed", "error", err)
		hit = false
	}

	if hit {
		slog.Info("graph served from cache",
			"cache_key", key[:12],
			"bytes", humanize.Bytes(uint64(len(doc))),
		)
	} else {
		points, outcomes, err := election.SimulateAll(r.Context(), req.Grid, req.Flows)
		if err != nil {
			// Only context cancellation lands here; the client is gone.
			slog.Warn("render abandoned", "error", err)
			return
		}

		pois := make([]svg.PointOfInterest, len(req.POIs))
		for i, p := range req.POIs {
			pois[i] = svg.PointOfInterest{
				X:       p.X,
				Y:       p.Y,
				Label:   p.Label,
				Outcome: election.Simulate(p.X, p.Y, req.Flows),
			}
		}

		doc = svg.Render(svg.Input{
			Grid:     req.Grid,
			Flows:    req.Flows,
			Mode:     req.Mode,
			Points:   points,
			Outcomes: outcomes,
			POIs:     pois,
		})

		if err := db.CachePut(h.db, key, doc, len(points), time.Now()); err != nil {
			slog.Error("render cache store failed", "error", err)
		}

		slog.Info("graph rendered",
			"cache_key", key[:12],
			"points", humanize.Comma(int64(len(points))),
			"bytes", humanize.Bytes(uint64(len(doc))),
			"mode", req.Mode.String(),
		)
	}

	disposition := "inline"
	if req.Download {
		disposition = "attachment"
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, req.Filename()))
	w.Header().Set("Cache-Control", fmt.Sprintf("private, max-age=%d", int(h.cfg.CacheTTL.Seconds())))

	if len(req.Skipped) > 0 {
		details := make([]string, len(req.Skipped))
		for i, s := range req.Skipped {
			details[i] = fmt.Sprintf("%d:%s", s.Index, s.Reason)
		}
		w.Header().Set("X-Skipped-Poi", strconv.Itoa(len(req.Skipped)))
		w.Header().Set("X-Skipped-Poi-Detail", strings.Join(details, ", "))
	}

	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}
