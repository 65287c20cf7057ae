package chart

import "github.com/jung-kurt/gofpdf"

// PDFCanvas draws canvas primitives into a rectangular region of a gofpdf
// page, in the document's unit (millimetres for the results report).
type PDFCanvas struct {
	pdf    *gofpdf.Fpdf
	x      float64
	y      float64
	width  float64
	height float64
}

func NewPDF(pdf *gofpdf.Fpdf, x, y, width, height float64) *PDFCanvas {
	return &PDFCanvas{pdf: pdf, x: x, y: y, width: width, height: height}
}

func (c *PDFCanvas) Size() (float64, float64) {
	return c.width, c.height
}

func (c *PDFCanvas) Line(a, b Point, s Stroke) {
	c.applyStroke(s)
	c.pdf.Line(c.x+a.X, c.y+a.Y, c.x+b.X, c.y+b.Y)
	c.resetDash(s)
}

func (c *PDFCanvas) Circle(center Point, radius float64, s Stroke) {
	c.applyStroke(s)
	c.pdf.Circle(c.x+center.X, c.y+center.Y, radius, "D")
	c.resetDash(s)
}

func (c *PDFCanvas) Polygon(points []Point, s Stroke, fill *Fill) {
	pts := make([]gofpdf.PointType, len(points))
	for i, p := range points {
		pts[i] = gofpdf.PointType{X: c.x + p.X, Y: c.y + p.Y}
	}
	c.applyStroke(s)
	if fill != nil {
		c.pdf.SetFillColor(int(fill.Color.R), int(fill.Color.G), int(fill.Color.B))
		c.pdf.SetAlpha(fill.Opacity, "Normal")
		c.pdf.Polygon(pts, "FD")
		c.pdf.SetAlpha(1, "Normal")
	} else {
		c.pdf.Polygon(pts, "D")
	}
	c.resetDash(s)
}

func (c *PDFCanvas) Text(at Point, text string, f Font) {
	c.pdf.SetFont("Helvetica", "", f.Size)
	c.pdf.SetTextColor(int(f.Color.R), int(f.Color.G), int(f.Color.B))
	tr := c.pdf.UnicodeTranslatorFromDescriptor("")
	translated := tr(text)
	x := c.x + at.X
	switch f.Anchor {
	case AnchorMiddle:
		x -= c.pdf.GetStringWidth(translated) / 2
	case AnchorEnd:
		x -= c.pdf.GetStringWidth(translated)
	}
	c.pdf.Text(x, c.y+at.Y, translated)
}

func (c *PDFCanvas) applyStroke(s Stroke) {
	c.pdf.SetDrawColor(int(s.Color.R), int(s.Color.G), int(s.Color.B))
	c.pdf.SetLineWidth(s.Width * 0.35) // canvas units are tuned for pixels; scale down for mm
	if len(s.Dash) > 0 {
		dash := make([]float64, len(s.Dash))
		for i, d := range s.Dash {
			dash[i] = d * 0.35
		}
		c.pdf.SetDashPattern(dash, 0)
	}
}

func (c *PDFCanvas) resetDash(s Stroke) {
	if len(s.Dash) > 0 {
		c.pdf.SetDashPattern([]float64{}, 0)
	}
}
