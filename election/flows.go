// Copyright (c) 2026 Abjago.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"errors"
	"fmt"
)

// ErrFlowInvariant reports preference-flow ratios that violate the invariant
// of the selected voting mode.
var ErrFlowInvariant = errors.New("flow ratios violate mode invariant")

// flowEpsilon is the numeric tolerance for the pair-sum invariants.
const flowEpsilon = 1e-6

// Flows holds the six directed preference-flow ratios, indexed as
// Flows[from][to]. Diagonal entries are unused and stay zero.
type Flows [3][3]float64

// DefaultFlows returns the documented default assumptions: Greens preferences
// split 80/20 toward Labor, Labor preferences 80/20 toward Greens, and
// Coalition preferences 70/30 toward Labor.
func DefaultFlows() Flows {
	var f Flows
	f[Greens][Labor] = 0.8
	f[Greens][Coalition] = 0.2
	f[Labor][Greens] = 0.8
	f[Labor][Coalition] = 0.2
	f[Coalition][Labor] = 0.7
	f[Coalition][Greens] = 0.3
	return f
}

// Validate checks the mode invariant for every source party: under compulsory
// preferential each party's two outgoing ratios must sum to 1 within a small
// tolerance; under optional preferential they must sum to at most 1, with the
// remainder representing exhausted ballots. Individual ratios must already be
// within [0,1]; Validate reports those too so the matrix can be checked in
// one call.
func (f Flows) Validate(m Mode) error {
	for _, from := range Parties {
		a, b := Survivors(from)
		ra, rb := f[from][a], f[from][b]

		if ra < 0 || ra > 1 {
			return fmt.Errorf("%w: %s to %s ratio %g outside [0,1]", ErrFlowInvariant, from, a, ra)
		}
		if rb < 0 || rb > 1 {
			return fmt.Errorf("%w: %s to %s ratio %g outside [0,1]", ErrFlowInvariant, from, b, rb)
		}

		sum := ra + rb
		switch m {
		case Compulsory:
			if sum < 1-flowEpsilon || sum > 1+flowEpsilon {
				return fmt.Errorf("%w: %s outgoing ratios sum to %g, want 1", ErrFlowInvariant, from, sum)
			}
		case Optional:
			if sum > 1+flowEpsilon {
				return fmt.Errorf("%w: %s outgoing ratios sum to %g, want at most 1", ErrFlowInvariant, from, sum)
			}
		}
	}
	return nil
}

// Survivors returns the two parties other than the eliminated one, in
// precedence order.
func Survivors(eliminated Party) (Party, Party) {
	switch eliminated {
	case Coalition:
		return Labor, Greens
	case Labor:
		return Coalition, Greens
	default:
		return Coalition, Labor
	}
}
