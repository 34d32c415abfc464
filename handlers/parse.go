// Copyright (c) 2026 Abjago.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/abjago/threepp/election"
	"github.com/abjago/threepp/grid"
	"github.com/abjago/threepp/models"
)

// Fatal request errors. All are detected before any simulation begins.
var (
	// ErrInvalidParameter reports an unparseable or out-of-range scalar.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrInvalidRange reports inconsistent start/stop bounds or a grid
	// larger than the configured point ceiling.
	ErrInvalidRange = errors.New("invalid range")
	// ErrInvalidStep wraps ErrInvalidRange: a bad step is a range
	// inconsistency, so errors.Is matches either sentinel.
	ErrInvalidStep = fmt.Errorf("%w: invalid step", ErrInvalidRange)
)

// GraphRequest is a fully validated render request. Canonical is the
// normalized parameter string used as the cache identity; Skipped lists
// points of interest that were dropped without failing the request.
type GraphRequest struct {
	Grid      grid.Config
	Flows     election.Flows
	Mode      election.Mode
	POIs      []models.PointOfInterest
	Download  bool
	Canonical string
	Skipped   []models.SkippedPoint
}

// Grid axis defaults, matching the documented request interface.
const (
	DefaultStart = 0.2
	DefaultStop  = 0.6
	DefaultStep  = 0.01
)

// flowParams maps query parameter names onto flow matrix entries.
// Red is Labor, blue is Coalition, green is Greens.
var flowParams = []struct {
	name     string
	from, to election.Party
}{
	{"green_to_red", election.Greens, election.Labor},
	{"green_to_blue", election.Greens, election.Coalition},
	{"red_to_green", election.Labor, election.Greens},
	{"red_to_blue", election.Labor, election.Coalition},
	{"blue_to_red", election.Coalition, election.Labor},
	{"blue_to_green", election.Coalition, election.Greens},
}

// ParseGraphQuery turns raw query parameters into a validated GraphRequest.
// Missing parameters fall back to defaults; unknown parameters are ignored.
// maxPoints caps the implied grid size before any simulation runs.
func ParseGraphQuery(q url.Values, maxPoints int) (*GraphRequest, error) {
	flows, err := flowsFromQuery(q)
	if err != nil {
		return nil, err
	}

	mode, err := modeFromQuery(q)
	if err != nil {
		return nil, err
	}

	if err := flows.Validate(mode); err != nil {
		return nil, err
	}

	g := grid.Config{Start: DefaultStart, Stop: DefaultStop, Step: DefaultStep}
	if err := parseAxis(q, "start", &g.Start); err != nil {
		return nil, err
	}
	if err := parseAxis(q, "stop", &g.Stop); err != nil {
		return nil, err
	}
	if err := parseStep(q, &g.Step); err != nil {
		return nil, err
	}

	if g.Start < 0 || g.Stop > 1 {
		return nil, fmt.Errorf("%w: bounds [%g, %g] outside [0,1]", ErrInvalidRange, g.Start, g.Stop)
	}
	if g.Start >= g.Stop {
		return nil, fmt.Errorf("%w: start %g must be less than stop %g", ErrInvalidRange, g.Start, g.Stop)
	}
	if g.Step > g.Stop-g.Start {
		return nil, fmt.Errorf("%w: step %g larger than range %g", ErrInvalidStep, g.Step, g.Stop-g.Start)
	}

	// Guard on the Cartesian size before enumerating anything.
	if axis := g.AxisCount(); axis*axis > maxPoints {
		return nil, fmt.Errorf("%w: grid of %d points exceeds limit %d", ErrInvalidRange, axis*axis, maxPoints)
	}

	pois, skipped := parsePOIs(q)

	req := &GraphRequest{
		Grid:     g,
		Flows:    flows,
		Mode:     mode,
		POIs:     pois,
		Download: q.Get("dl") == "true",
		Skipped:  skipped,
	}
	req.Canonical = canonical(req)

	return req, nil
}

func flowsFromQuery(q url.Values) (election.Flows, error) {
	flows := election.DefaultFlows()
	for _, p := range flowParams {
		if err := parseRatio(q, p.name, &flows[p.from][p.to]); err != nil {
			return election.Flows{}, err
		}
	}
	return flows, nil
}

func modeFromQuery(q url.Values) (election.Mode, error) {
	mode, err := election.ParseMode(q.Get("prefs"))
	if err != nil {
		return 0, fmt.Errorf("%w: prefs: %v", ErrInvalidParameter, err)
	}
	return mode, nil
}

func parseRatio(q url.Values, name string, dst *float64) error {
	raw := q.Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("%w: %s %q is not a number", ErrInvalidParameter, name, raw)
	}
	if math.IsNaN(v) || v < 0 || v > 1 {
		return fmt.Errorf("%w: %s %g outside [0,1]", ErrInvalidParameter, name, v)
	}
	*dst = v
	return nil
}

func parseAxis(q url.Values, name string, dst *float64) error {
	raw := q.Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("%w: %s %q is not a number", ErrInvalidParameter, name, raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s %q is not a number", ErrInvalidParameter, name, raw)
	}
	*dst = v
	return nil
}

func parseStep(q url.Values, dst *float64) error {
	raw := q.Get("step")
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("%w: step %q is not a number", ErrInvalidParameter, raw)
	}
	if math.IsNaN(v) || v <= 0 {
		return fmt.Errorf("%w: step %g must be positive", ErrInvalidStep, v)
	}
	*dst = v
	return nil
}

// parsePOIs aligns the repeated px/py/pl triples by index. Bad triples are
// skipped with a recorded reason, never fatal.
func parsePOIs(q url.Values) ([]models.PointOfInterest, []models.SkippedPoint) {
	px, py, pl := q["px"], q["py"], q["pl"]
	n := len(px)
	if len(py) > n {
		n = len(py)
	}

	var pois []models.PointOfInterest
	var skipped []models.SkippedPoint

	for i := 0; i < n; i++ {
		if i >= len(px) || i >= len(py) {
			skipped = append(skipped, models.SkippedPoint{Index: i, Reason: models.SkipReasonMissingCoordinate})
			continue
		}

		x, errX := strconv.ParseFloat(px[i], 64)
		y, errY := strconv.ParseFloat(py[i], 64)
		if errX != nil || errY != nil {
			skipped = append(skipped, models.SkippedPoint{Index: i, Reason: models.SkipReasonUnparseable})
			continue
		}

		if !(x >= 0 && x <= 1) || !(y >= 0 && y <= 1) {
			skipped = append(skipped, models.SkippedPoint{Index: i, Reason: models.SkipReasonOutOfRange})
			continue
		}
		if x+y > 1+1e-9 {
			skipped = append(skipped, models.SkippedPoint{Index: i, Reason: models.SkipReasonOffSimplex})
			continue
		}

		label := ""
		if i < len(pl) {
			label = pl[i]
		}
		pois = append(pois, models.PointOfInterest{X: x, Y: y, Label: label})
	}

	return pois, skipped
}

// canonical builds the normalized parameter string that identifies a render.
// Scalar parameters are written with their effective (defaulted) values and
// sorted by name; points of interest follow in kept order, since draw order
// is part of the document. The download flag is delivery, not content, so it
// stays out.
func canonical(req *GraphRequest) string {
	pairs := []string{
		"prefs=" + req.Mode.String(),
		"start=" + fcanon(req.Grid.Start),
		"stop=" + fcanon(req.Grid.Stop),
		"step=" + fcanon(req.Grid.Step),
	}
	for _, p := range flowParams {
		pairs = append(pairs, p.name+"="+fcanon(req.Flows[p.from][p.to]))
	}
	sort.Strings(pairs)

	for _, poi := range req.POIs {
		pairs = append(pairs, "poi="+fcanon(poi.X)+","+fcanon(poi.Y)+","+poi.Label)
	}

	return strings.Join(pairs, "&")
}

func fcanon(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

var filenameSanitizer = regexp.MustCompile(`[^0-9a-zA-Z-_.]+`)

// Filename names the served document after its mode and bounds, for both
// the inline and attachment dispositions.
func (req *GraphRequest) Filename() string {
	name := fmt.Sprintf("3pp_%s_%s-%s.svg", req.Mode, fcanon(req.Grid.Start), fcanon(req.Grid.Stop))
	return filenameSanitizer.ReplaceAllString(name, "-")
}

// ParamsToQuery expands stored scenario parameters back into query values so
// scenario renders reuse the exact /visualise validation path. The pl value
// is always added, even when empty, to keep the triple lists index-aligned.
func ParamsToQuery(p models.ScenarioParams) url.Values {
	q := url.Values{}

	setFloat := func(name string, v *float64) {
		if v != nil {
			q.Set(name, fcanon(*v))
		}
	}
	setFloat("green_to_red", p.GreenToRed)
	setFloat("red_to_green", p.RedToGreen)
	setFloat("green_to_blue", p.GreenToBlue)
	setFloat("blue_to_green", p.BlueToGreen)
	setFloat("red_to_blue", p.RedToBlue)
	setFloat("blue_to_red", p.BlueToRed)

	if p.Prefs != nil {
		q.Set("prefs", *p.Prefs)
	}
	setFloat("start", p.Start)
	setFloat("stop", p.Stop)
	setFloat("step", p.Step)

	for _, poi := range p.POIs {
		q.Add("px", fcanon(poi.X))
		q.Add("py", fcanon(poi.Y))
		q.Add("pl", poi.Label)
	}

	return q
}
