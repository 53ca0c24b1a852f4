package ashby

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// Data type modes for DrawPlot.
const (
	DataRanges = "ranges" // rows carry low/high bounds per quantity
	DataValues = "values" // rows carry a single value per quantity
)

// DrawStats reports what DrawPlot added to the axes, mostly for tests and
// debug logging: ranges mode must produce one ellipse per row and one hull
// per category.
type DrawStats struct {
	Ellipses int
	Hulls    int
}

// DrawPlot draws the data points of every category (bounding ellipses in
// ranges mode, a scatter in values mode) plus a padded convex hull around
// each category's points. An unknown dataType fails before anything is
// drawn. Every category present in recs must exist in colors.
func DrawPlot(ctx RenderContext, p *plot.Plot, recs []MaterialRecord, xQty, yQty, dataType string, colors map[string]color.Color, logSpace bool) (DrawStats, error) {
	var stats DrawStats
	if dataType != DataRanges && dataType != DataValues {
		return stats, fmt.Errorf("invalid data type %q: options are ranges or values", dataType)
	}
	groups, order := GroupByCategory(recs)
	for _, category := range order {
		clr, ok := colors[category]
		if !ok {
			return stats, fmt.Errorf("category %q has no color mapping", category)
		}
		rows := groups[category]
		var corners []Point

		switch dataType {
		case DataRanges:
			for _, row := range rows {
				xlo, xhi, ok := row.Range(xQty)
				if !ok {
					return stats, fmt.Errorf("category %q: no %q low/high columns", category, xQty)
				}
				ylo, yhi, ok := row.Range(yQty)
				if !ok {
					return stats, fmt.Errorf("category %q: no %q low/high columns", category, yQty)
				}
				if err := addPatch(p, EllipsePoints(xlo, xhi, ylo, yhi, logSpace), clr, WithAlpha(clr, 64)); err != nil {
					return stats, err
				}
				stats.Ellipses++
				corners = append(corners, Point{X: xlo, Y: ylo}, Point{X: xhi, Y: yhi})
			}

		case DataValues:
			xys := make(plotter.XYs, len(rows))
			for i, row := range rows {
				x, okX := row.Value[xQty]
				y, okY := row.Value[yQty]
				if !okX || !okY {
					return stats, fmt.Errorf("category %q: missing value column %q or %q", category, xQty, yQty)
				}
				xys[i].X, xys[i].Y = x, y
				corners = append(corners, Point{X: x, Y: y})
			}
			sc, err := plotter.NewScatter(xys)
			if err != nil {
				return stats, err
			}
			sc.GlyphStyle = draw.GlyphStyle{Color: clr, Radius: ctx.MarkerRadius, Shape: draw.CircleGlyph{}}
			p.Add(sc)
		}

		if err := drawHull(p, corners, clr, logSpace); err != nil {
			return stats, fmt.Errorf("category %q: %w", category, err)
		}
		stats.Hulls++
	}
	return stats, nil
}

// drawHull wraps the per-category corner points in a padded, cubic-smoothed
// convex hull. On log axes the geometry runs in log10 space so padding is
// uniform in decades and the outline stays positive.
func drawHull(p *plot.Plot, pts []Point, clr color.Color, logSpace bool) error {
	work := pts
	if logSpace {
		work = make([]Point, len(pts))
		for i, pt := range pts {
			work[i] = Point{X: math.Log10(pt.X), Y: math.Log10(pt.Y)}
		}
	}
	hull := ConvexHull(work)
	if len(hull) < 3 {
		return fmt.Errorf("not enough distinct points for a hull (%d)", len(hull))
	}
	cfg := DefaultHullConfig
	smooth, err := InterpolateHull(PadHull(hull, cfg.Scale), cfg.NInterpolate)
	if err != nil {
		return err
	}
	if logSpace {
		for i, pt := range smooth {
			smooth[i] = Point{X: math.Pow(10, pt.X), Y: math.Pow(10, pt.Y)}
		}
	}
	return addPatch(p, smooth, clr, WithAlpha(clr, 51))
}
