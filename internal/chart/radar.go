// Package chart renders the five-axis radar (spider) chart for evaluation
// results onto a Canvas, with an optional benchmark overlay.
package chart

import (
	"fmt"
	"math"
)

// Datum is one spoke of the radar chart. Order in the input slice fixes the
// angular position: the first datum sits at the top, the rest follow
// clockwise at equal increments.
type Datum struct {
	Category       string
	UserScore      float64
	BenchmarkScore *float64
	MaxScore       float64
}

type Options struct {
	// ShowBenchmark overlays a dashed benchmark polygon when every datum
	// carries a benchmark value.
	ShowBenchmark bool
	// Rings is the number of concentric grid rings; 0 means the default of 5.
	Rings int
}

const (
	defaultRings    = 5
	labelMaxRunes   = 14
	placeholderText = "Keine Daten verfügbar"
)

var (
	gridStroke      = Stroke{Color: Color{R: 203, G: 213, B: 219}, Width: 0.5}
	userStroke      = Stroke{Color: Color{R: 0, G: 107, B: 91}, Width: 1.5}
	userFill        = Fill{Color: Color{R: 0, G: 107, B: 91}, Opacity: 0.35}
	benchmarkStroke = Stroke{Color: Color{R: 217, G: 119, B: 6}, Width: 1.2, Dash: []float64{4, 3}}
	labelFont       = Font{Size: 9, Color: Color{R: 55, G: 65, B: 81}}
	scaleFont       = Font{Size: 7, Color: Color{R: 107, G: 114, B: 128}}
)

// Render draws the radar chart onto the canvas. Out-of-range scores are
// clamped to the grid; rendering is a pure function of its inputs, so a
// second call with the same arguments redraws the identical image. An empty
// data slice produces a centered placeholder message and no geometry.
func Render(c Canvas, data []Datum, opts Options) {
	width, height := c.Size()
	if len(data) == 0 {
		c.Text(Point{X: width / 2, Y: height / 2}, placeholderText, Font{
			Size:   12,
			Color:  labelFont.Color,
			Anchor: AnchorMiddle,
		})
		return
	}

	rings := opts.Rings
	if rings <= 0 {
		rings = defaultRings
	}

	center := Point{X: width / 2, Y: height / 2}
	radius := 0.36 * math.Min(width, height)
	step := 2 * math.Pi / float64(len(data))

	angleAt := func(i int) float64 { return -math.Pi/2 + float64(i)*step }
	pointAt := func(i int, frac float64) Point {
		a := angleAt(i)
		return Point{
			X: center.X + radius*frac*math.Cos(a),
			Y: center.Y + radius*frac*math.Sin(a),
		}
	}

	for k := 1; k <= rings; k++ {
		c.Circle(center, radius*float64(k)/float64(rings), gridStroke)
	}
	for i := range data {
		c.Line(center, pointAt(i, 1), gridStroke)
	}

	// Scale values up the top axis, one per ring.
	maxScore := data[0].MaxScore
	for k := 1; k <= rings; k++ {
		frac := float64(k) / float64(rings)
		value := fmt.Sprintf("%g", maxScore*frac)
		c.Text(Point{X: center.X + 3, Y: center.Y - radius*frac + 2}, value, scaleFont)
	}

	userPoints := make([]Point, len(data))
	for i, d := range data {
		userPoints[i] = pointAt(i, scoreFraction(d.UserScore, d.MaxScore))
	}
	c.Polygon(userPoints, userStroke, &userFill)

	if opts.ShowBenchmark && allBenchmarked(data) {
		benchPoints := make([]Point, len(data))
		for i, d := range data {
			benchPoints[i] = pointAt(i, scoreFraction(*d.BenchmarkScore, d.MaxScore))
		}
		c.Polygon(benchPoints, benchmarkStroke, nil)
	}

	for i, d := range data {
		a := angleAt(i)
		at := Point{
			X: center.X + (radius+10)*math.Cos(a),
			Y: center.Y + (radius+10)*math.Sin(a) + 3,
		}
		font := labelFont
		font.Anchor = labelAnchor(a)
		c.Text(at, truncateLabel(d.Category), font)
	}
}

// scoreFraction clamps a score to [0, max] and maps it linearly onto the
// grid radius. Clamping here is a display concern only; the scoring engine
// rejects out-of-domain answers long before they reach a chart.
func scoreFraction(score, max float64) float64 {
	if max <= 0 {
		return 0
	}
	if score < 0 {
		score = 0
	}
	if score > max {
		score = max
	}
	return score / max
}

func allBenchmarked(data []Datum) bool {
	for _, d := range data {
		if d.BenchmarkScore == nil {
			return false
		}
	}
	return true
}

func labelAnchor(angle float64) Anchor {
	cos := math.Cos(angle)
	switch {
	case cos > 0.25:
		return AnchorStart
	case cos < -0.25:
		return AnchorEnd
	default:
		return AnchorMiddle
	}
}

func truncateLabel(s string) string {
	runes := []rune(s)
	if len(runes) <= labelMaxRunes {
		return s
	}
	return string(runes[:labelMaxRunes-1]) + "…"
}
