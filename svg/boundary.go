// Copyright (c) 2026 Abjago.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package svg

import (
	"fmt"
	"math"
	"strings"

	"github.com/abjago/threepp/election"
)

// writeBoundaries draws the change-of-winner lines: three polylines meeting
// at the equal-thirds point (1/3, 1/3), one per pair of parties, plus the
// x + y = 1 diagonal where the Labor share hits zero.
//
// The anchor points below are closed forms valid only when each flow pair
// sums to 1, so boundaries are drawn in compulsory mode only.
func writeBoundaries(b *strings.Builder, geo geometry, f election.Flows) {
	b2g := f[election.Coalition][election.Greens]
	b2r := f[election.Coalition][election.Labor]
	g2b := f[election.Greens][election.Coalition]
	g2r := f[election.Greens][election.Labor]
	r2g := f[election.Labor][election.Greens]
	r2b := f[election.Labor][election.Coalition]

	// Labor/Greens boundary: from the left edge, through the point where
	// the Labor-Greens 50% line crosses Greens 3CP = Labor 3CP = Coalition
	// 3CP territory, into the equal-thirds point.
	x1, y1 := geo.start, 0.5-geo.start*b2g
	bx := 0.5 / (2 - b2g)
	gy := 0.5 - bx*b2g
	if b2r <= 0.5 {
		gy = 0.5 / (1 + b2g)
		bx = gy
	}
	x2, y2 := bx, gy
	x3, y3 := 1.0/3.0, 1.0/3.0
	laborGreens := joinSegments(geo.segment(x1, y1, x2, y2), geo.segment(x2, y2, x3, y3))

	// Labor/Coalition boundary: mirror of the above, parameterised by the
	// ex-Greens split, running down to the bottom edge.
	gy = 0.5 / (2 - g2b)
	bx = 0.5 - gy*g2b
	if g2r <= 0.5 {
		bx = 0.5 / (1 + g2b)
		gy = bx
	}
	x4, y4 := bx, gy
	x5, y5 := 0.5-geo.start*g2b, geo.start
	laborCoalition := joinSegments(geo.segment(x3, y3, x4, y4), geo.segment(x4, y4, x5, y5))

	// Greens/Coalition boundary: controlled by how Labor splits when it
	// comes third. Degenerates to the equal-thirds point on an even split.
	bx, gy = 1.0/3.0, 1.0/3.0
	switch {
	case r2g == 0:
		bx, gy = 0.25, 0.5
	case r2b == 0:
		bx, gy = 0.5, 0.25
	case r2b < 0.5:
		// Labor favours Greens: follow Coalition >= (Labor == Greens) out
		// of the equal-thirds point until the Greens-Coalition 50% line.
		bx = r2g / (2 - r2b)
		gy = (1 - bx) / 2
	case r2b > 0.5:
		gy = r2b / (2 - r2g)
		bx = (1 - gy) / 2
	}
	x6, y6 := bx, gy
	x7, y7 := 0.5, 0.5
	greensCoalition := joinSegments(geo.segment(x3, y3, x6, y6), geo.segment(x6, y6, x7, y7))

	// The x + y = 1 diagonal needs no clamping: both ends sit on the
	// viewport edge by construction.
	dx0, dy0 := geo.canvas(1-geo.stop, geo.stop)
	dx1, dy1 := geo.canvas(geo.stop, 1-geo.stop)
	diagonal := fmt.Sprintf("M %s %s %s %s", fnum(dx0), fnum(dy0), fnum(dx1), fnum(dy1))

	fmt.Fprintf(b, `<path d="%s" class="line" />`+"\n",
		joinSegments(laborGreens, laborCoalition, greensCoalition, diagonal))
}

// segment emits one boundary segment in path syntax, cut back to the
// [start, stop] viewport along its own gradient. Segments entirely outside
// the viewport vanish. Coordinates are in share space.
func (g geometry) segment(x0, y0, x1, y1 float64) string {
	xa := clamp(x0, g.start, g.stop)
	ya := clamp(y0, g.start, g.stop)
	xb := clamp(x1, g.start, g.stop)
	yb := clamp(y1, g.start, g.stop)

	switch {
	case near(x0, x1) || near(y0, y1):
		// vertical and horizontal segments clamp cleanly as-is
	case (x0 <= g.start && x1 <= g.start) || (y0 <= g.start && y1 <= g.start) ||
		(x0 >= g.stop && x1 >= g.stop) || (y0 >= g.stop && y1 >= g.stop):
		return ""
	default:
		m := (y1 - y0) / (x1 - x0)
		c := y0 - m*x0

		if x0 < g.start {
			ya = m*g.start + c
		} else if x0 > g.stop {
			ya = m*g.stop + c
		}
		if x1 < g.start {
			yb = m*g.start + c
		} else if x1 > g.stop {
			yb = m*g.stop + c
		}
		if y0 < g.start {
			xa = (g.start - c) / m
		} else if y0 > g.stop {
			xa = (g.stop - c) / m
		}
		if y1 < g.start {
			xb = (g.start - c) / m
		} else if y1 > g.stop {
			xb = (g.stop - c) / m
		}
	}

	px, py := g.canvas(xa, ya)
	qx, qy := g.canvas(xb, yb)
	return fmt.Sprintf("M %s %s %s %s", fnum(px), fnum(py), fnum(qx), fnum(qy))
}

func joinSegments(segs ...string) string {
	parts := make([]string, 0, len(segs))
	for _, s := range segs {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(math.Min(v, hi), lo)
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
