package ashby

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// swatch is a filled rectangle legend thumbnail, the patch-style handle the
// source figures use instead of line or glyph samples.
type swatch struct {
	color color.Color
}

// Thumbnail implements plot.Thumbnailer.
func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	poly := c.ClipPolygonY(pts)
	c.FillPolygon(s.color, poly)
}

// CreateLegend adds one patch entry per category in a band above the axes,
// outside the plot bounding box. Categories missing from colors are an
// error: the color map is the single source of truth for what may be drawn.
func CreateLegend(p *plot.Plot, categories []string, colors map[string]color.Color) error {
	for _, cat := range categories {
		clr, ok := colors[cat]
		if !ok {
			return fmt.Errorf("category %q has no color mapping", cat)
		}
		p.Legend.Add(cat, swatch{color: clr})
	}
	p.Legend.Top = true
	p.Legend.Left = true
	// Lift the band above the axes frame rather than overlapping the data.
	p.Legend.YOffs = vg.Points(12)
	p.Legend.Padding = vg.Points(4)
	return nil
}
