// Copyright (c) 2026 Abjago.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/abjago/threepp/cliparse"
	"github.com/abjago/threepp/election"
	"github.com/abjago/threepp/middleware"
	"github.com/abjago/threepp/models"
)

type SimulateHandler struct {
	cfg cliparse.Config
}

func NewSimulateHandler(cfg cliparse.Config) *SimulateHandler {
	return &SimulateHandler{cfg: cfg}
}

// Simulate handles GET /simulate
// Runs the preference count for a single vote-share point and returns the
// full working as JSON: primary shares, eliminated party, survivor totals,
// winner, and margin.
func (h *SimulateHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	x, err := requiredCoord(q.Get("x"), "x")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	y, err := requiredCoord(q.Get("y"), "y")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if x+y > 1+1e-9 {
		middleware.ErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("invalid parameter: x + y = %g leaves no share for Labor", x+y))
		return
	}

	flows, err := flowsFromQuery(q)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	mode, err := modeFromQuery(q)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := flows.Validate(mode); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	shares := election.Shares(x, y)
	out := election.Simulate(x, y, flows)

	middleware.JSONResponse(w, http.StatusOK, models.SimulateResponse{
		X:    x,
		Y:    y,
		Mode: mode.String(),
		Shares: map[string]float64{
			election.Coalition.String(): shares[election.Coalition],
			election.Labor.String():     shares[election.Labor],
			election.Greens.String():    shares[election.Greens],
		},
		Eliminated: out.Eliminated.String(),
		Totals: map[string]float64{
			out.Winner.String(): out.WinnerTotal,
			out.Runner.String(): out.RunnerTotal,
		},
		Winner: out.Winner.String(),
		Margin: out.Margin,
	})
}

func requiredCoord(raw, name string) (float64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", ErrInvalidParameter, name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrInvalidParameter, name, raw)
	}
	if math.IsNaN(v) || v < 0 || v > 1 {
		return 0, fmt.Errorf("%w: %s %g outside [0,1]", ErrInvalidParameter, name, v)
	}
	return v, nil
}
