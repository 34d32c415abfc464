// Copyright (c) 2026 Abjago.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/abjago/threepp/grid"
)

// Outcome is the result of one simulated two-candidate-preferred count.
// Totals are vote-share fractions; under optional preferential they may sum
// to less than 1 because exhausted ballots count for neither survivor.
type Outcome struct {
	Winner      Party
	Runner      Party
	Eliminated  Party
	WinnerTotal float64
	RunnerTotal float64
	// Margin is reported as percentage points above 50 on the two-party
	// split: totals of 0.66/0.34 give a margin of 16.0.
	Margin float64
}

// Shares expands a grid point into primary vote shares for all three
// parties: x is the Coalition share, y the Greens share, and Labor holds
// the remainder.
func Shares(x, y float64) [3]float64 {
	var s [3]float64
	s[Coalition] = x
	s[Greens] = y
	s[Labor] = 1 - x - y
	return s
}

// Simulate runs one elimination round at the given primary shares.
//
// The third-placed party is eliminated and its votes redistributed to the
// two survivors according to its outgoing flow ratios. With ratios summing
// below 1 (optional preferential) the residual share exhausts, so the same
// arithmetic covers both voting modes once the flows have been validated.
//
// Ties are deterministic: when primary shares are exactly equal the party
// later in precedence order is the one eliminated, and when the two final
// totals are exactly equal the higher-precedence survivor wins with margin 0.
func Simulate(x, y float64, f Flows) Outcome {
	shares := Shares(x, y)

	third := Coalition
	for _, p := range Parties[1:] {
		if shares[p] <= shares[third] {
			third = p
		}
	}

	a, b := Survivors(third)
	totalA := shares[a] + shares[third]*f[third][a]
	totalB := shares[b] + shares[third]*f[third][b]

	winner, runner := a, b
	winnerTotal, runnerTotal := totalA, totalB
	if totalB > totalA {
		winner, runner = b, a
		winnerTotal, runnerTotal = totalB, totalA
	}

	return Outcome{
		Winner:      winner,
		Runner:      runner,
		Eliminated:  third,
		WinnerTotal: winnerTotal,
		RunnerTotal: runnerTotal,
		Margin:      (winnerTotal - runnerTotal) / 2 * 100,
	}
}

// SimulateAll evaluates every point of the grid and returns the points in
// row-major order with their outcomes index-aligned. Evaluation is spread
// across GOMAXPROCS workers; each worker fills a disjoint slice range, so
// the deterministic ordering survives parallelism. The only possible error
// is cancellation of ctx.
func SimulateAll(ctx context.Context, g grid.Config, f Flows) ([]grid.Point, []Outcome, error) {
	points := make([]grid.Point, 0, g.Count())
	for p := range g.Points() {
		points = append(points, p)
	}

	outcomes := make([]Outcome, len(points))
	workers := runtime.GOMAXPROCS(0)
	chunk := (len(points) + workers - 1) / workers
	if chunk == 0 {
		chunk = 1
	}

	eg, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(points); start += chunk {
		end := min(start+chunk, len(points))
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				outcomes[i] = Simulate(points[i].X, points[i].Y, f)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	return points, outcomes, nil
}
