// Copyright (c) 2026 Abjago.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package svg

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/abjago/threepp/election"
	"github.com/abjago/threepp/grid"
)

// Canvas layout constants. Scale is canvas pixels per percentage point of
// vote share; Offset is the axis inset in multiples of Scale.
const (
	Scale  = 10.0
	Offset = 5.0
)

// marks holds the axis tick positions; ticks inside (start, stop] are drawn.
var marks = []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1}

// stylesheet is embedded into every document so it renders standalone.
const stylesheet = `text {font-family: sans-serif; font-size: 10px; fill: #222;}
text.label {filter: url(#keylineEffect); font-weight: bold}
/* dot, red, green, blue */
.d {opacity:0.6;}
.d:hover {opacity:1;}
.r {fill: #d04}
.g {fill: #0a2}
.b {fill: #08e}
/* point of interest */
.poi {stroke:#000; fill-opacity:0.4; stroke-width: 0.3%}
.line {stroke: #222; stroke-width: 0.5%; fill:none; stroke-linecap:round;}
#triangle {fill: #222}
.bg {fill: #fff}`

// keylineFilter outlines POI label text so it stays readable over dots.
const keylineFilter = `<filter id="keylineEffect" color-interpolation-filters="sRGB">
<feMorphology in="SourceGraphic" result="MORPH" operator="dilate" radius="1.5"/>
<feComponentTransfer result="KEYLINE">
<feFuncR type="linear" slope="-1" intercept="1" />
<feFuncG type="linear" slope="-1" intercept="1" />
<feFuncB type="linear" slope="-1" intercept="1" />
</feComponentTransfer>
<feMerge>
<feMergeNode in="KEYLINE"/>
<feMergeNode in="SourceGraphic"/>
</feMerge>
</filter>`

// PointOfInterest is an annotated off-grid location. Outcome carries the
// simulated result at that location, computed by the caller.
type PointOfInterest struct {
	X       float64
	Y       float64
	Label   string
	Outcome election.Outcome
}

// Input bundles everything one render needs. Points and Outcomes are
// index-aligned and already in row-major grid order.
type Input struct {
	Grid     grid.Config
	Flows    election.Flows
	Mode     election.Mode
	Points   []grid.Point
	Outcomes []election.Outcome
	POIs     []PointOfInterest
}

// geometry precomputes the share-space to canvas-space mapping.
type geometry struct {
	start      float64
	stop       float64
	innerWidth float64
	width      float64
	radius     float64
}

func newGeometry(g grid.Config) geometry {
	inner := Scale * 100 * (g.Stop - g.Start)
	return geometry{
		start:      g.Start,
		stop:       g.Stop,
		innerWidth: inner,
		width:      (Offset+1)*Scale + inner,
		radius:     50 * Scale * g.Step,
	}
}

// canvas maps a share-space point to canvas coordinates. The y axis is
// flipped: larger Greens shares sit higher on the canvas.
func (g geometry) canvas(x, y float64) (float64, float64) {
	cx := (x-g.start)/(g.stop-g.start)*g.innerWidth + Offset*Scale
	cy := g.innerWidth*(1-(y-g.start)/(g.stop-g.start)) + Scale
	return cx, cy
}

// Render produces the complete SVG document. Output is byte-identical for
// identical input: every number is formatted through the same helpers and
// all collections are walked in their given order.
func Render(in Input) []byte {
	geo := newGeometry(in.Grid)

	var b strings.Builder
	b.Grow(len(in.Points)*150 + 4096)

	fmt.Fprintf(&b, `<svg viewBox="0 0 %.0f %.0f" version="1.1" xmlns="http://www.w3.org/2000/svg">`+"\n", geo.width, geo.width)
	writeDefs(&b)
	fmt.Fprintf(&b, `<rect width="%.0f" height="%.0f" class="bg" />`+"\n", geo.width, geo.width)

	writeDots(&b, geo, in)
	if in.Mode == election.Compulsory {
		writeBoundaries(&b, geo, in.Flows)
	}
	writePOIs(&b, geo, in.POIs)
	writeAssumptions(&b, geo, in)
	writeAxes(&b, geo)

	b.WriteString("<!-- Generated by https://abjago.net/3pp/ -->\n</svg>\n")
	return []byte(b.String())
}

func writeDefs(b *strings.Builder) {
	b.WriteString("<defs>")
	fmt.Fprintf(b, `<marker id="triangle" viewBox="0 0 10 10" refX="1" refY="5" markerUnits="strokeWidth" markerWidth="%g" markerHeight="%g" orient="auto"><path d="M 0 0 L 10 5 L 0 10 z"/></marker>`, Scale*0.5, Scale*0.5)
	b.WriteString(keylineFilter)
	b.WriteString("<style type=\"text/css\"><![CDATA[\n" + stylesheet + "\n]]></style>")
	b.WriteString("</defs>\n")
}

func writeDots(b *strings.Builder, geo geometry, in Input) {
	for i, p := range in.Points {
		o := in.Outcomes[i]
		cx, cy := geo.canvas(p.X, p.Y)
		fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="%s" class="%s d"><title>%s</title></circle>`+"\n",
			fnum(cx), fnum(cy), fnum(geo.radius), o.Winner.Class(), tooltip(p.X, p.Y, o))
	}
}

func writePOIs(b *strings.Builder, geo geometry, pois []PointOfInterest) {
	for _, poi := range pois {
		cx, cy := geo.canvas(poi.X, poi.Y)
		label := escape(poi.Label)
		title := tooltip(poi.X, poi.Y, poi.Outcome)
		if label != "" {
			title = label + "\n" + title
		}
		fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="%s" class="%s d poi"><title>%s</title></circle>`+"\n",
			fnum(cx), fnum(cy), fnum(geo.radius), poi.Outcome.Winner.Class(), title)
		if label != "" {
			fmt.Fprintf(b, `<text x="%s" y="%s" class="label">%s</text>`+"\n",
				fnum(cx+geo.radius+Scale*0.5), fnum(cy+Scale*0.4), label)
		}
	}
}

// writeAssumptions draws the flow assumptions in the top-right corner, one
// line per ratio, plus the mode when it is not the default.
func writeAssumptions(b *strings.Builder, geo geometry, in Input) {
	x := geo.width - Scale*14
	line := 0
	for _, from := range election.Parties {
		a, s := election.Survivors(from)
		for _, to := range []election.Party{a, s} {
			line++
			fmt.Fprintf(b, `<text x="%s" y="%s" style="font-size:%g">%s to %s: %.1f%%</text>`+"\n",
				fnum(x), fnum(float64(2*line)*Scale), Scale, from, to, 100*in.Flows[from][to])
		}
	}
	if in.Mode == election.Optional {
		line++
		fmt.Fprintf(b, `<text x="%s" y="%s" style="font-size:%g">Optional preferential</text>`+"\n",
			fnum(x), fnum(float64(2*line)*Scale), Scale)
	}
}

func writeAxes(b *strings.Builder, geo geometry) {
	x0, y0 := geo.canvas(geo.start, geo.start)
	_, yTop := geo.canvas(geo.start, geo.stop)
	xRight, _ := geo.canvas(geo.stop, geo.start)

	// Y axis, label rotated to read upward
	fmt.Fprintf(b, `<path d="M %s %s V %s" style="stroke: #222; stroke-width: %spx" marker-end="url(#triangle)"/>`+"\n",
		fnum(x0), fnum(geo.width), fnum(yTop), strokeWidth())
	fmt.Fprintf(b, `<text transform="translate(%s, %s) rotate(270)" style="text-anchor:middle">%s 3CP</text>`+"\n",
		fnum(x0-(Offset-1)*Scale), fnum(geo.width/2), election.Greens)
	for _, m := range marks {
		if m <= geo.start || m > geo.stop {
			continue
		}
		mx, my := geo.canvas(geo.start, m)
		fmt.Fprintf(b, `<path d="M %s %s h %s" style="stroke: #222; stroke-width: %spx"/>`+"\n",
			fnum(mx), fnum(my), fnum(-Scale), strokeWidth())
		fmt.Fprintf(b, `<text y="%s" x="%s" style="font-size:%g; text-anchor:end">%s</text>`+"\n",
			fnum(my+Scale/2), fnum(mx-Scale*1.5), Scale, tick(m))
	}

	// X axis
	fmt.Fprintf(b, `<path d="M 0 %s H %s" style="stroke: #222; stroke-width: %spx" marker-end="url(#triangle)"/>`+"\n",
		fnum(y0), fnum(xRight), strokeWidth())
	fmt.Fprintf(b, `<text x="%s" y="%s" style="text-anchor:middle">%s 3CP</text>`+"\n",
		fnum(geo.width/2), fnum(y0+3.5*Scale), election.Coalition)
	for _, m := range marks {
		if m <= geo.start || m > geo.stop {
			continue
		}
		mx, my := geo.canvas(m, geo.start)
		fmt.Fprintf(b, `<path d="M %s %s v %s" style="stroke: #222; stroke-width: %spx"/>`+"\n",
			fnum(mx), fnum(my), fnum(Scale), strokeWidth())
		fmt.Fprintf(b, `<text x="%s" y="%s" style="font-size:%g; text-anchor:middle">%s</text>`+"\n",
			fnum(mx), fnum(my+2*Scale), Scale, tick(m))
	}
}

// tooltip renders the hover text for one point: all three primary shares,
// then the winner with their points-above-50 margin.
func tooltip(x, y float64, o election.Outcome) string {
	shares := election.Shares(x, y)
	return fmt.Sprintf("%s: %s, %s: %s, %s: %s. Winner: %s +%s",
		election.Greens, pct(shares[election.Greens]),
		election.Labor, pct(shares[election.Labor]),
		election.Coalition, pct(shares[election.Coalition]),
		o.Winner, strconv.FormatFloat(o.Margin, 'f', 2, 64))
}

// fnum formats canvas coordinates: shortest form at six significant digits,
// so repeated renders agree byte-for-byte without dragging float noise into
// the document.
func fnum(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// pct formats a vote-share fraction as a fixed two-decimal percentage.
func pct(v float64) string {
	return strconv.FormatFloat(v*100, 'f', 2, 64) + "%"
}

// tick formats an axis mark as a whole percentage.
func tick(m float64) string {
	return strconv.Itoa(int(math.Round(m*100))) + "%"
}

func strokeWidth() string {
	return fnum(Scale * 0.2)
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"/", "&#47;",
	"\n", " ",
	"\t", " ",
	"\r", " ",
	"\f", " ",
	"\b", " ",
)

// escape sanitises caller-supplied text for embedding in the document.
// Beyond the XML specials, forward slashes become entity references and
// control whitespace collapses to single spaces.
func escape(s string) string {
	return xmlEscaper.Replace(s)
}
