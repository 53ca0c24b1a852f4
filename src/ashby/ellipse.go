package ashby

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// ellipseSegments is the polygon resolution for ellipse patches. High enough
// that the outline reads as a smooth curve at print sizes.
const ellipseSegments = 128

// EllipsePoints builds the boundary of the bounding ellipse for one range
// row. On log axes the ellipse is constructed in log10 space (center at the
// geometric mean) so it renders as an ellipse on the final decade grid; in
// linear space it is the plain geometric ellipse over [xlo,xhi]×[ylo,yhi].
func EllipsePoints(xlo, xhi, ylo, yhi float64, logSpace bool) []Point {
	cx, rx := centerRadius(xlo, xhi, logSpace)
	cy, ry := centerRadius(ylo, yhi, logSpace)
	pts := make([]Point, ellipseSegments)
	for i := range pts {
		th := 2 * math.Pi * float64(i) / float64(ellipseSegments)
		x := cx + rx*math.Cos(th)
		y := cy + ry*math.Sin(th)
		if logSpace {
			x = math.Pow(10, x)
			y = math.Pow(10, y)
		}
		pts[i] = Point{X: x, Y: y}
	}
	return pts
}

func centerRadius(lo, hi float64, logSpace bool) (c, r float64) {
	if logSpace {
		lo, hi = math.Log10(lo), math.Log10(hi)
	}
	return (lo + hi) / 2, (hi - lo) / 2
}

// addPatch adds a filled, outlined polygon to the axes: translucent face,
// solid edge in the category color.
func addPatch(p *plot.Plot, pts []Point, edge color.Color, face color.Color) error {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i].X, xys[i].Y = pt.X, pt.Y
	}
	poly, err := plotter.NewPolygon(xys)
	if err != nil {
		return err
	}
	poly.Color = face
	poly.LineStyle = draw.LineStyle{Color: edge, Width: 1}
	p.Add(poly)
	return nil
}
