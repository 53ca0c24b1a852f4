package scatter

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/hdeavila1992/Ashby-plots/src/ashby"
	"github.com/hdeavila1992/Ashby-plots/src/unitcell"
)

// Baseline is a constituent material overlaid as a fixed reference marker on
// every off-diagonal cell whose axes map onto its properties.
type Baseline struct {
	Name     string
	E, G, Nu float64
	Color    color.Color
}

// Highlight singles out one design overlaid with a distinct marker on every
// off-diagonal cell.
type Highlight struct {
	UnitCell string
	ID       int
}

// Options configures the matrix overlays and palette.
type Options struct {
	Colors    map[string]color.Color
	Highlight *Highlight
	Baselines []Baseline
}

// Figure is an assembled scatter-matrix ready to be written out or shown.
type Figure struct {
	plots  [][]*plot.Plot
	n      int
	Width  vg.Length
	Height vg.Length
}

// Matrix builds the n×n grid for the given columns: per-category kernel
// density estimates on the diagonal, per-category scatter below it, nothing
// above it. Axis labels and ticks appear only on the grid border.
func Matrix(ctx ashby.RenderContext, recs []unitcell.Record, cols []Column, opts Options) (*Figure, error) {
	n := len(cols)
	if n == 0 {
		return nil, fmt.Errorf("no columns selected")
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("no records to plot")
	}
	groups, order := unitcell.GroupByCategory(recs)
	for _, cat := range order {
		if _, ok := opts.Colors[cat]; !ok {
			return nil, fmt.Errorf("category %q has no color mapping", cat)
		}
	}

	var hl *unitcell.Record
	if opts.Highlight != nil {
		for i := range recs {
			if recs[i].UnitCell == opts.Highlight.UnitCell && recs[i].ID == opts.Highlight.ID {
				hl = &recs[i]
				break
			}
		}
		if hl == nil {
			return nil, fmt.Errorf("highlight (%s, ID=%d) not found in data",
				opts.Highlight.UnitCell, opts.Highlight.ID)
		}
	}

	plots := make([][]*plot.Plot, n)
	for i := range plots {
		plots[i] = make([]*plot.Plot, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i < j {
				continue // upper triangle: redundant half of a symmetric matrix
			}
			p := plot.New()
			ctx.Apply(p)
			var err error
			if i == j {
				err = drawDensityCell(p, cols[i], groups, order, opts.Colors)
			} else {
				err = drawScatterCell(ctx, p, cols[j], cols[i], groups, order, opts, hl)
			}
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", i, j, err)
			}
			styleBorders(p, cols, i, j, n)
			plots[i][j] = p
		}
	}
	return &Figure{plots: plots, n: n, Width: 10 * vg.Inch, Height: 6 * vg.Inch}, nil
}

// drawDensityCell renders one per-category density estimate, computed in
// log10 space when the column is log-scaled.
func drawDensityCell(p *plot.Plot, col Column, groups map[string][]unitcell.Record, order []string, colors map[string]color.Color) error {
	applyScale(&p.X, col.LogScale)
	p.HideY()
	for _, cat := range order {
		vals := columnValues(groups[cat], col)
		if len(vals) == 0 {
			continue
		}
		var xs, ys []float64
		if col.LogScale {
			xs, ys = logKDECurve(vals)
		} else {
			xs, ys = kdeCurve(vals)
		}
		xys := make(plotter.XYs, len(xs))
		for i := range xs {
			xys[i].X, xys[i].Y = xs[i], ys[i]
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		clr := colors[cat]
		line.LineStyle = draw.LineStyle{Color: clr, Width: 1}
		line.FillColor = ashby.WithAlpha(clr, 64)
		p.Add(line)
	}
	return nil
}

// drawScatterCell renders one lower-triangle cell: per-category scatter plus
// the highlight and baseline overlays.
func drawScatterCell(ctx ashby.RenderContext, p *plot.Plot, xCol, yCol Column, groups map[string][]unitcell.Record, order []string, opts Options, hl *unitcell.Record) error {
	applyScale(&p.X, xCol.LogScale)
	applyScale(&p.Y, yCol.LogScale)
	for _, cat := range order {
		rows := groups[cat]
		xys := make(plotter.XYs, 0, len(rows))
		for _, r := range rows {
			x, y := xCol.Value(r), yCol.Value(r)
			if (xCol.LogScale && x <= 0) || (yCol.LogScale && y <= 0) {
				continue // unplottable on a log axis
			}
			xys = append(xys, plotter.XY{X: x, Y: y})
		}
		if len(xys) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		sc.GlyphStyle = draw.GlyphStyle{
			Color:  opts.Colors[cat],
			Radius: ctx.MarkerRadius * 0.6,
			Shape:  draw.CircleGlyph{},
		}
		p.Add(sc)
	}
	if hl != nil {
		x, y := xCol.Value(*hl), yCol.Value(*hl)
		if (!xCol.LogScale || x > 0) && (!yCol.LogScale || y > 0) {
			if err := addMarker(p, x, y, ashby.Yellow, ctx.MarkerRadius*1.6); err != nil {
				return err
			}
		}
	}
	for _, b := range opts.Baselines {
		x, okX := b.value(xCol.Baseline)
		y, okY := b.value(yCol.Baseline)
		if !okX || !okY {
			continue // cell axes do not both map onto constituent properties
		}
		if (xCol.LogScale && x <= 0) || (yCol.LogScale && y <= 0) {
			continue
		}
		if err := addMarker(p, x, y, b.Color, ctx.MarkerRadius*1.3); err != nil {
			return err
		}
	}
	return nil
}

// value maps a column's baseline quantity name onto the material property.
func (b Baseline) value(quantity string) (float64, bool) {
	switch quantity {
	case "E":
		return b.E, true
	case "G":
		return b.G, true
	case "Nu":
		return b.Nu, true
	}
	return 0, false
}

// addMarker overlays a single emphasized point: filled glyph plus a black
// ring so it reads against any category color.
func addMarker(p *plot.Plot, x, y float64, clr color.Color, r vg.Length) error {
	sc, err := plotter.NewScatter(plotter.XYs{{X: x, Y: y}})
	if err != nil {
		return err
	}
	sc.GlyphStyle = draw.GlyphStyle{Color: clr, Radius: r, Shape: draw.CircleGlyph{}}
	ring, err := plotter.NewScatter(plotter.XYs{{X: x, Y: y}})
	if err != nil {
		return err
	}
	ring.GlyphStyle = draw.GlyphStyle{Color: ashby.Black, Radius: r, Shape: draw.RingGlyph{}}
	p.Add(sc, ring)
	return nil
}

func applyScale(ax *plot.Axis, logScale bool) {
	if !logScale {
		return
	}
	ax.Scale = plot.LogScale{}
	ax.Tick.Marker = plot.LogTicks{Prec: -1}
}

// styleBorders keeps labels and ticks on the grid border only: x labels on
// the bottom row, y labels on the left column, everything else suppressed.
func styleBorders(p *plot.Plot, cols []Column, i, j, n int) {
	if i == n-1 {
		p.X.Label.Text = cols[j].Label
	} else {
		p.X.Tick.Marker = plot.ConstantTicks(nil)
	}
	if j == 0 && i != j {
		p.Y.Label.Text = cols[i].Label
	} else if i != j {
		p.Y.Tick.Marker = plot.ConstantTicks(nil)
	}
}

func columnValues(rows []unitcell.Record, col Column) []float64 {
	out := make([]float64, 0, len(rows))
	for _, r := range rows {
		out = append(out, col.Value(r))
	}
	return out
}

// draw lays the grid out on a canvas with near-zero inter-cell spacing, the
// matrix look of the published figure.
func (f *Figure) draw(dc draw.Canvas) {
	tiles := draw.Tiles{
		Rows: f.n, Cols: f.n,
		PadX: vg.Points(1), PadY: vg.Points(1),
		PadTop: vg.Points(2), PadBottom: vg.Points(2),
		PadLeft: vg.Points(2), PadRight: vg.Points(2),
	}
	canvases := plot.Align(f.plots, tiles, dc)
	for i, row := range f.plots {
		for j, p := range row {
			if p != nil {
				p.Draw(canvases[i][j])
			}
		}
	}
}

// SaveSVG writes the figure as an SVG file.
func (f *Figure) SaveSVG(path string) error {
	c := vgsvg.New(f.Width, f.Height)
	f.draw(draw.New(c))
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	defer w.Close()
	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// SavePNG writes the figure as a PNG file.
func (f *Figure) SavePNG(path string) error {
	c := vgimg.New(f.Width, f.Height)
	f.draw(draw.New(c))
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	defer w.Close()
	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Image rasterizes the figure for in-process display.
func (f *Figure) Image() image.Image {
	c := vgimg.New(f.Width, f.Height)
	f.draw(draw.New(c))
	return c.Image()
}
