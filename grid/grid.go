// Copyright (c) 2026 Abjago.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package grid

import (
	"iter"
	"math"
)

// axisEpsilon absorbs floating-point division noise when counting samples,
// so a range that divides evenly by step still includes the stop boundary.
const axisEpsilon = 1e-9

// simplexEpsilon is the tolerance on the x + y <= 1 constraint.
const simplexEpsilon = 1e-9

// Point is one vote-share sample: X is the Coalition primary share, Y the
// Greens primary share. The Labor share is the remainder 1 - X - Y.
type Point struct {
	X float64
	Y float64
}

// Config describes both axes of the sample grid. Callers are expected to
// have validated 0 <= Start < Stop <= 1 and Step > 0.
type Config struct {
	Start float64
	Stop  float64
	Step  float64
}

// AxisCount reports how many samples one axis holds, without allocating
// them. Degenerate spacing (step wider than the range) still counts the
// boundary samples.
func (c Config) AxisCount() int {
	if c.Step > c.Stop-c.Start {
		if c.Start == c.Stop {
			return 1
		}
		return 2
	}
	return int(math.Floor((c.Stop-c.Start)/c.Step+axisEpsilon)) + 1
}

// Axis returns the arithmetic samples from Start to Stop inclusive. Each
// sample is computed as Start + i*Step rather than by accumulation, keeping
// the sequence exact enough that Stop is included whenever Step divides the
// range. Degenerate spacing yields exactly the boundary samples, never an
// empty axis.
func (c Config) Axis() []float64 {
	if c.Step > c.Stop-c.Start {
		if c.Start == c.Stop {
			return []float64{c.Start}
		}
		return []float64{c.Start, c.Stop}
	}
	samples := make([]float64, c.AxisCount())
	for i := range samples {
		samples[i] = c.Start + float64(i)*c.Step
	}
	return samples
}

// Points returns a lazy row-major enumeration of the grid: y is held fixed
// while x varies, both ascending, restricted to the valid share simplex
// (x + y <= 1). The sequence is finite and restartable; every range over it
// walks the same points in the same order, which is what makes repeated
// renders of the same request byte-identical.
func (c Config) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		axis := c.Axis()
		for _, y := range axis {
			for _, x := range axis {
				if x+y > 1+simplexEpsilon {
					continue
				}
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// Count reports the number of simplex-valid points the grid will yield.
func (c Config) Count() int {
	count := 0
	for range c.Points() {
		count++
	}
	return count
}
