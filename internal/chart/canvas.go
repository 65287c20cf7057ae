package chart

type Point struct {
	X float64
	Y float64
}

type Color struct {
	R uint8
	G uint8
	B uint8
}

// Stroke describes an outline. A nil Dash means a solid line; otherwise the
// pattern alternates drawn and skipped lengths in drawing units.
type Stroke struct {
	Color Color
	Width float64
	Dash  []float64
}

type Fill struct {
	Color   Color
	Opacity float64
}

type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

type Font struct {
	Size   float64
	Color  Color
	Anchor Anchor
}

// Canvas is an immediate-mode 2D drawing surface. Implementations translate
// these primitives into their target format; the renderer never needs to
// know whether it draws SVG markup or PDF page content.
type Canvas interface {
	Size() (width, height float64)
	Line(a, b Point, s Stroke)
	Circle(center Point, radius float64, s Stroke)
	Polygon(points []Point, s Stroke, fill *Fill)
	Text(at Point, text string, f Font)
}
