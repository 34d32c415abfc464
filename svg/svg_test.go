// Copyright (c) 2026 Abjago.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package svg

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"github.com/abjago/threepp/election"
	"github.com/abjago/threepp/grid"
)

func renderInput(t *testing.T, g grid.Config, f election.Flows, mode election.Mode, pois []PointOfInterest) Input {
	t.Helper()

	points, outcomes, err := election.SimulateAll(context.Background(), g, f)
	if err != nil {
		t.Fatalf("Failed to simulate grid: %v", err)
	}

	return Input{
		Grid:     g,
		Flows:    f,
		Mode:     mode,
		Points:   points,
		Outcomes: outcomes,
		POIs:     pois,
	}
}

func TestRenderDeterministic(t *testing.T) {
	in := renderInput(t,
		grid.Config{Start: 0.2, Stop: 0.4, Step: 0.02},
		election.DefaultFlows(), election.Compulsory, nil)

	first := Render(in)
	second := Render(in)

	if !bytes.Equal(first, second) {
		t.Error("Expected identical bytes for identical input")
	}
}

func TestRenderDocumentShape(t *testing.T) {
	in := renderInput(t,
		grid.Config{Start: 0.2, Stop: 0.3, Step: 0.1},
		election.DefaultFlows(), election.Compulsory, nil)

	doc := string(Render(in))

	if !strings.HasPrefix(doc, `<svg viewBox="0 0 160 160"`) {
		t.Errorf("Unexpected document opening: %.80s", doc)
	}
	if !strings.HasSuffix(doc, "<!-- Generated by https://abjago.net/3pp/ -->\n</svg>\n") {
		t.Errorf("Unexpected document ending: %.80s", doc[len(doc)-80:])
	}

	// Embedded stylesheet and axis marker
	if !strings.Contains(doc, "<style type=\"text/css\">") {
		t.Error("Expected an embedded stylesheet")
	}
	if !strings.Contains(doc, `<marker id="triangle"`) {
		t.Error("Expected the axis arrowhead marker")
	}
	if !strings.Contains(doc, `class="bg"`) {
		t.Error("Expected the background rect")
	}
}

func TestRenderOneDotPerPoint(t *testing.T) {
	in := renderInput(t,
		grid.Config{Start: 0.2, Stop: 0.3, Step: 0.1},
		election.DefaultFlows(), election.Compulsory, nil)

	doc := string(Render(in))

	// Four grid points, no POIs: every circle is a grid dot with a tooltip
	if got := strings.Count(doc, "<circle "); got != len(in.Points) {
		t.Errorf("Expected %d circles, got %d", len(in.Points), got)
	}
	if got := strings.Count(doc, "<title>"); got != len(in.Points) {
		t.Errorf("Expected %d tooltips, got %d", len(in.Points), got)
	}
}

func TestRenderWinnerClasses(t *testing.T) {
	// Around even Coalition/Greens shares with Labor ahead, Labor wins the
	// lot under default flows; every dot carries the red class.
	in := renderInput(t,
		grid.Config{Start: 0.2, Stop: 0.3, Step: 0.05},
		election.DefaultFlows(), election.Compulsory, nil)

	doc := string(Render(in))

	if !strings.Contains(doc, `class="r d"`) {
		t.Error("Expected Labor-red dots")
	}
	if strings.Contains(doc, `class="b d"`) || strings.Contains(doc, `class="g d"`) {
		t.Error("Expected no Coalition or Greens wins in this window")
	}
}

func TestRenderTooltipFormat(t *testing.T) {
	g := grid.Config{Start: 0.3, Stop: 0.4, Step: 0.1}
	in := renderInput(t, g, election.DefaultFlows(), election.Compulsory, nil)

	doc := string(Render(in))

	// (x=0.3, y=0.2)? The grid starts at 0.3: its first point is
	// (0.3, 0.3), Labor 0.4, Greens eliminated at the tie with Coalition.
	// Spot-check the fixed-decimal share formatting instead on the first
	// tooltip: Greens 30.00%, Labor 40.00%, Coalition 30.00%.
	want := "Greens: 30.00%, Labor: 40.00%, Coalition: 30.00%. Winner: "
	if !strings.Contains(doc, want) {
		t.Errorf("Expected tooltip %q in document", want)
	}
}

func TestRenderTooltipMatchesExample(t *testing.T) {
	// The documented worked example: Coalition 0.3, Greens 0.2, Labor 0.5
	// under default compulsory flows gives Labor a 16-point margin.
	g := grid.Config{Start: 0.2, Stop: 0.3, Step: 0.1}
	in := renderInput(t, g, election.DefaultFlows(), election.Compulsory, nil)

	doc := string(Render(in))

	want := "Greens: 20.00%, Labor: 50.00%, Coalition: 30.00%. Winner: Labor +16.00"
	if !strings.Contains(doc, want) {
		t.Errorf("Expected tooltip %q in document", want)
	}
}

func TestRenderPOIs(t *testing.T) {
	pois := []PointOfInterest{
		{X: 0.25, Y: 0.25, Label: "Election 2022", Outcome: election.Simulate(0.25, 0.25, election.DefaultFlows())},
		{X: 0.3, Y: 0.2, Label: "", Outcome: election.Simulate(0.3, 0.2, election.DefaultFlows())},
	}
	in := renderInput(t,
		grid.Config{Start: 0.2, Stop: 0.3, Step: 0.1},
		election.DefaultFlows(), election.Compulsory, pois)

	doc := string(Render(in))

	// POI circles carry the poi class on top of the winner class
	if got := strings.Count(doc, `d poi"`); got != 2 {
		t.Errorf("Expected 2 POI markers, got %d", got)
	}

	// Labelled POI gets adjacent text and a label-prefixed tooltip
	if !strings.Contains(doc, `class="label">Election 2022</text>`) {
		t.Error("Expected the POI label as adjacent text")
	}
	if !strings.Contains(doc, "<title>Election 2022\nGreens:") {
		t.Error("Expected the label as the tooltip's first line")
	}

	// The unlabelled POI renders no text element
	if got := strings.Count(doc, `class="label"`); got != 1 {
		t.Errorf("Expected exactly one POI label text element, got %d", got)
	}
}

func TestRenderPOIEscaping(t *testing.T) {
	label := "A <b> & </b>\nwin"
	pois := []PointOfInterest{
		{X: 0.25, Y: 0.25, Label: label, Outcome: election.Simulate(0.25, 0.25, election.DefaultFlows())},
	}
	in := renderInput(t,
		grid.Config{Start: 0.2, Stop: 0.3, Step: 0.1},
		election.DefaultFlows(), election.Compulsory, pois)

	doc := string(Render(in))

	if strings.Contains(doc, "<b>") {
		t.Error("Expected markup in labels to be escaped")
	}
	if !strings.Contains(doc, "A &lt;b&gt; &amp; &lt;&#47;b&gt; win") {
		t.Error("Expected escaped label with newline collapsed to a space")
	}
}

func TestRenderBoundariesOnlyCompulsory(t *testing.T) {
	g := grid.Config{Start: 0.2, Stop: 0.4, Step: 0.05}

	compulsory := string(Render(renderInput(t, g, election.DefaultFlows(), election.Compulsory, nil)))
	if !strings.Contains(compulsory, `class="line"`) {
		t.Error("Expected win-boundary paths in compulsory mode")
	}

	optional := string(Render(renderInput(t, g, election.DefaultFlows(), election.Optional, nil)))
	if strings.Contains(optional, `class="line"`) {
		t.Error("Expected no win-boundary paths in optional mode")
	}
	if !strings.Contains(optional, ">Optional preferential</text>") {
		t.Error("Expected the optional-mode assumption line")
	}
}

func TestRenderAssumptionLines(t *testing.T) {
	in := renderInput(t,
		grid.Config{Start: 0.2, Stop: 0.3, Step: 0.1},
		election.DefaultFlows(), election.Compulsory, nil)

	doc := string(Render(in))

	expected := []string{
		"Coalition to Labor: 70.0%",
		"Coalition to Greens: 30.0%",
		"Labor to Coalition: 20.0%",
		"Labor to Greens: 80.0%",
		"Greens to Coalition: 20.0%",
		"Greens to Labor: 80.0%",
	}
	for _, want := range expected {
		if !strings.Contains(doc, want) {
			t.Errorf("Expected assumption line %q", want)
		}
	}
}

func TestRenderAxisTicks(t *testing.T) {
	in := renderInput(t,
		grid.Config{Start: 0.2, Stop: 0.6, Step: 0.05},
		election.DefaultFlows(), election.Compulsory, nil)

	doc := string(Render(in))

	// Ticks at 30..60 fall inside (start, stop]; 20 sits on start and is
	// skipped, 70 is beyond stop.
	for _, want := range []string{">30%</text>", ">40%</text>", ">50%</text>", ">60%</text>"} {
		if strings.Count(doc, want) != 2 { // one per axis
			t.Errorf("Expected tick label %s on both axes", want)
		}
	}
	if strings.Contains(doc, ">20%</text>") {
		t.Error("Expected no tick at the start boundary")
	}
	if strings.Contains(doc, ">70%</text>") {
		t.Error("Expected no tick beyond stop")
	}

	// Axis titles
	if !strings.Contains(doc, ">Greens 3CP</text>") {
		t.Error("Expected the Greens axis title")
	}
	if !strings.Contains(doc, ">Coalition 3CP</text>") {
		t.Error("Expected the Coalition axis title")
	}
}

func TestEscape(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"a & b", "a &amp; b"},
		{"<script>", "&lt;script&gt;"},
		{"end</title>", "end&lt;&#47;title&gt;"},
		{"tab\tnewline\n", "tab newline "},
	}

	for _, tc := range testCases {
		if got := escape(tc.input); got != tc.want {
			t.Errorf("escape(%q): expected %q, got %q", tc.input, tc.want, got)
		}
	}
}

func TestGeometryCanvas(t *testing.T) {
	geo := newGeometry(grid.Config{Start: 0.2, Stop: 0.6, Step: 0.01})

	near := func(got, want float64) bool {
		return math.Abs(got-want) < 1e-9
	}

	if !near(geo.innerWidth, 400) {
		t.Errorf("Expected innerWidth 400, got %g", geo.innerWidth)
	}
	if !near(geo.width, 460) {
		t.Errorf("Expected width 460, got %g", geo.width)
	}
	if !near(geo.radius, 5) {
		t.Errorf("Expected radius 5, got %g", geo.radius)
	}

	// Bottom-left of the share window
	cx, cy := geo.canvas(0.2, 0.2)
	if !near(cx, 50) {
		t.Errorf("Expected cx 50 at start, got %g", cx)
	}
	if !near(cy, 410) {
		t.Errorf("Expected cy 410 at start, got %g", cy)
	}

	// Top-right: y flips upward
	cx, cy = geo.canvas(0.6, 0.6)
	if !near(cx, 450) {
		t.Errorf("Expected cx 450 at stop, got %g", cx)
	}
	if !near(cy, 10) {
		t.Errorf("Expected cy 10 at stop, got %g", cy)
	}
}
