package ashby

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// guidelinePoints is the number of x samples the reference line is drawn
// through. The annotation slope is measured between samples 0 and 3.
const guidelinePoints = 5

// Guideline is a material-index reference line: a power law on a log-log
// chart (y = intercept * x^power) or a straight line on linear axes
// (y = power*x + intercept).
type Guideline struct {
	Power      float64
	XLim       [2]float64
	YIntercept float64
	Label      string
	LabelPos   Point
	// AspectDecades is the drawn height/width ratio of one decade on the
	// target axes, used to convert the data-space slope into a text
	// rotation. 1 is a square decade grid, the common Ashby layout.
	AspectDecades float64
}

// Evaluate samples the guideline at n evenly spaced x positions.
func (g Guideline) Evaluate(n int, logFlag bool) (xs, ys []float64) {
	xs = make([]float64, n)
	ys = make([]float64, n)
	span := g.XLim[1] - g.XLim[0]
	for i := range xs {
		x := g.XLim[0] + span*float64(i)/float64(n-1)
		xs[i] = x
		if logFlag {
			ys[i] = g.YIntercept * math.Pow(x, g.Power)
		} else {
			ys[i] = g.Power*x + g.YIntercept
		}
	}
	return xs, ys
}

// DrawGuideline plots the dashed reference line across its x limits and
// annotates it with a label rotated to the line's local slope, anchored at
// LabelPos.
func DrawGuideline(ctx RenderContext, p *plot.Plot, g Guideline, logFlag bool) error {
	if g.XLim[1] <= g.XLim[0] {
		return fmt.Errorf("guideline x limits [%g, %g] are not increasing", g.XLim[0], g.XLim[1])
	}
	xs, ys := g.Evaluate(guidelinePoints, logFlag)
	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i].X, xys[i].Y = xs[i], ys[i]
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.LineStyle = draw.LineStyle{
		Color:  Black,
		Width:  1,
		Dashes: []vg.Length{vg.Points(6), vg.Points(4)},
	}
	p.Add(line)

	if g.Label == "" {
		return nil
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: g.LabelPos.X, Y: g.LabelPos.Y}},
		Labels: []string{g.Label},
	})
	if err != nil {
		return err
	}
	labels.TextStyle[0].Rotation = g.rotation(xs, ys, logFlag)
	labels.TextStyle[0].Font.Variant = ctx.FontVariant
	labels.TextStyle[0].Font.Size = ctx.FontSize
	p.Add(labels)
	return nil
}

// rotation derives the annotation angle from the slope between samples 0
// and 3, measured in the space the axes actually draw: log10 coordinates
// for a power-law chart, raw data otherwise.
func (g Guideline) rotation(xs, ys []float64, logFlag bool) float64 {
	x0, y0 := xs[0], ys[0]
	x1, y1 := xs[3], ys[3]
	if logFlag {
		x0, y0 = math.Log10(x0), math.Log10(y0)
		x1, y1 = math.Log10(x1), math.Log10(y1)
	}
	aspect := g.AspectDecades
	if aspect == 0 {
		aspect = 1
	}
	return math.Atan2((y1-y0)*aspect, x1-x0)
}
