// Copyright (c) 2026 Abjago.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election simulates two-candidate-preferred counts for a three-party
contest.

# Parties

The three contestants are fixed:

	election.Coalition // graph x-axis, class "b"
	election.Labor     // derived share 1-x-y, class "r"
	election.Greens    // graph y-axis, class "g"

Declaration order doubles as the precedence order for tie-breaks: on equal
primary shares the earlier party survives elimination, and on equal final
totals the earlier party takes the win with margin 0.

# Preference Flows

Flows is a 3x3 matrix of directed flow ratios, Flows[from][to]:

	f := election.DefaultFlows()
	f[election.Greens][election.Labor] = 0.85
	f[election.Greens][election.Coalition] = 0.15
	err := f.Validate(election.Compulsory)

Validate enforces the mode invariant: compulsory preferential requires each
party's two outgoing ratios to sum to 1 (within 1e-6); optional preferential
allows sums below 1, the remainder being ballots that exhaust.

# Simulation

Simulate runs a single elimination round:

	o := election.Simulate(0.3, 0.2, f)
	// o.Eliminated = Greens, o.Winner = Labor, o.Margin = 16.0

SimulateAll evaluates a whole grid in parallel while preserving row-major
ordering, which keeps rendered output deterministic:

	points, outcomes, err := election.SimulateAll(ctx, g, f)

Both are total over validated input: any point on the share simplex and any
validated Flows produce an Outcome, including zero-share edge cases.
*/
package election
