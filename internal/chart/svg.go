package chart

import (
	"fmt"
	"strings"
)

// SVGCanvas renders canvas primitives as standalone SVG markup, suitable
// for inline embedding in a results page.
type SVGCanvas struct {
	width  float64
	height float64
	b      strings.Builder
}

func NewSVG(width, height float64) *SVGCanvas {
	c := &SVGCanvas{width: width, height: height}
	fmt.Fprintf(&c.b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g" role="img">`+"\n",
		width, height, width, height)
	return c
}

func (c *SVGCanvas) Size() (float64, float64) {
	return c.width, c.height
}

func (c *SVGCanvas) Line(a, b Point, s Stroke) {
	fmt.Fprintf(&c.b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" %s/>`+"\n",
		a.X, a.Y, b.X, b.Y, strokeAttrs(s))
}

func (c *SVGCanvas) Circle(center Point, radius float64, s Stroke) {
	fmt.Fprintf(&c.b, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" %s/>`+"\n",
		center.X, center.Y, radius, strokeAttrs(s))
}

func (c *SVGCanvas) Polygon(points []Point, s Stroke, fill *Fill) {
	coords := make([]string, len(points))
	for i, p := range points {
		coords[i] = fmt.Sprintf("%.2f,%.2f", p.X, p.Y)
	}
	fillAttr := `fill="none"`
	if fill != nil {
		fillAttr = fmt.Sprintf(`fill="%s" fill-opacity="%.2f"`, rgb(fill.Color), fill.Opacity)
	}
	fmt.Fprintf(&c.b, `<polygon points="%s" %s %s/>`+"\n",
		strings.Join(coords, " "), fillAttr, strokeAttrs(s))
}

func (c *SVGCanvas) Text(at Point, text string, f Font) {
	anchor := "start"
	switch f.Anchor {
	case AnchorMiddle:
		anchor = "middle"
	case AnchorEnd:
		anchor = "end"
	}
	fmt.Fprintf(&c.b,
		`<text x="%.2f" y="%.2f" font-family="Helvetica, Arial, sans-serif" font-size="%g" fill="%s" text-anchor="%s">%s</text>`+"\n",
		at.X, at.Y, f.Size, rgb(f.Color), anchor, escapeText(text))
}

// Bytes returns the complete SVG document.
func (c *SVGCanvas) Bytes() []byte {
	return []byte(c.b.String() + "</svg>\n")
}

func strokeAttrs(s Stroke) string {
	attrs := fmt.Sprintf(`stroke="%s" stroke-width="%g"`, rgb(s.Color), s.Width)
	if len(s.Dash) > 0 {
		parts := make([]string, len(s.Dash))
		for i, d := range s.Dash {
			parts[i] = fmt.Sprintf("%g", d)
		}
		attrs += fmt.Sprintf(` stroke-dasharray="%s"`, strings.Join(parts, ","))
	}
	return attrs
}

func rgb(c Color) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeText(s string) string {
	return textEscaper.Replace(s)
}
