// Copyright (c) 2026 Abjago.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package svg renders the three-party-preferred outcome graph as a standalone
SVG document.

# Rendering

Render takes the full pipeline output in one Input value:

	doc := svg.Render(svg.Input{
		Grid:     g,
		Flows:    flows,
		Mode:     mode,
		Points:   points,
		Outcomes: outcomes,
		POIs:     pois,
	})

Points and Outcomes must be index-aligned and in row-major grid order; the
renderer walks them as given and never reorders.

# Document Anatomy

In order: viewBox header, defs (arrowhead marker, keyline text filter,
embedded stylesheet), background, one circle per grid point with a <title>
tooltip, change-of-winner boundary lines (compulsory mode only), points of
interest with adjacent bold labels, flow-assumption labels top-right, and
both axes with 10% tick marks.

Dots are coloured by winner through CSS classes (.r Labor, .g Greens,
.b Coalition) and sized by the grid step. Tooltips carry all three primary
shares plus the winner's points-above-50 margin at fixed two decimals:

	Greens: 20.00%, Labor: 50.00%, Coalition: 30.00%. Winner: Labor +16.00

# Determinism

Identical Input yields byte-identical documents: all numbers pass through
two fixed formatters (six-significant-digit coordinates, two-decimal
percentages) and all collections are walked in caller order. Caching and
the download path both rely on this.

# Safety

Caller-supplied POI labels pass through escape, which handles the XML
specials and additionally converts forward slashes to entity references and
control whitespace to spaces.
*/
package svg
