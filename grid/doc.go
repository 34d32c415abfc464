// Copyright (c) 2026 Abjago.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package grid enumerates the vote-share sample points of the visualiser.

# Axes

A Config holds both axis bounds and the sample spacing:

	g := grid.Config{Start: 0.2, Stop: 0.6, Step: 0.01}
	samples := g.Axis() // 0.20, 0.21, ... 0.60

Samples are computed by multiplication (Start + i*Step) so the Stop boundary
is included whenever Step divides the range, despite floating-point division
noise. A step wider than the range degenerates to exactly the boundary
samples rather than an empty axis.

# Enumeration

Points yields the Cartesian product of the axis with itself, row-major
(fixed y, varying x), filtered to the valid share simplex x + y <= 1:

	for p := range g.Points() {
		// p.X = Coalition share, p.Y = Greens share
	}

The sequence is lazy, finite, and restartable, and always walks points in
the same order. Downstream rendering depends on that ordering for
byte-identical output.

# Sizing

AxisCount and Count report sample counts without materialising anything,
which lets callers reject oversized grids before doing any work.
*/
package grid
