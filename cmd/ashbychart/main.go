// Ashby material-property chart entrypoint.
//
// Reads a material-family CSV in ranges form ("<quantity> low"/"<quantity>
// high" columns per row, one Category column), draws one ellipse per row and
// one padded convex hull per family on log-log axes, overlays a material
// index guideline, and writes the chart as an SVG.
package main

import (
	"flag"
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/hdeavila1992/Ashby-plots/src/ashby"
	"github.com/hdeavila1992/Ashby-plots/src/unitcell"
)

func main() {
	dataPath := flag.String("data", "material_data.csv", "Material-family CSV with <quantity> low/high columns")
	outPath := flag.String("out", "ashby_chart.svg", "Output SVG path")
	xQty := flag.String("x", "Density", "X quantity (must match a CSV column pair and the units table)")
	yQty := flag.String("y", "Young Modulus", "Y quantity")
	dataType := flag.String("data-type", ashby.DataRanges, "Input interpretation (ranges|values)")
	figureType := flag.String("figure-type", "publication", "Figure preset (publication|presentation)")
	guidePower := flag.Float64("guide-power", 1, "Material-index guideline power (0 disables the guideline)")
	guideIntercept := flag.Float64("guide-intercept", 1e-2, "Guideline y intercept")
	guideLabel := flag.String("guide-label", "E/ρ", "Guideline annotation text")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()

	unitcell.SetLogLevel(*logLevel)

	ctx, err := ashby.Presets(*figureType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "presets: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("[load] reading material data from %s\n", *dataPath)
	recs, err := ashby.LoadMaterialCSV(*dataPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load material data: %v\n", err)
		os.Exit(1)
	}

	p := plot.New()
	ctx.Apply(p)
	p.X.Label.Text = axisLabel(*xQty)
	p.Y.Label.Text = axisLabel(*yQty)
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	fmt.Printf("[render] drawing %s vs %s for %d rows\n", *yQty, *xQty, len(recs))
	stats, err := ashby.DrawPlot(ctx, p, recs, *xQty, *yQty, *dataType, ashby.MaterialColors, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "draw: %v\n", err)
		os.Exit(1)
	}
	unitcell.Debugf("drew %d ellipses, %d hulls", stats.Ellipses, stats.Hulls)

	if *guidePower != 0 {
		g := ashby.Guideline{
			Power:      *guidePower,
			XLim:       [2]float64{p.X.Min, p.X.Max},
			YIntercept: *guideIntercept,
			Label:      *guideLabel,
			LabelPos: ashby.Point{
				X: p.X.Min * 2,
				Y: *guideIntercept * p.X.Min * 2,
			},
		}
		if err := ashby.DrawGuideline(ctx, p, g, true); err != nil {
			fmt.Fprintf(os.Stderr, "guideline: %v\n", err)
			os.Exit(1)
		}
	}

	_, order := ashby.GroupByCategory(recs)
	if err := ashby.CreateLegend(p, order, ashby.MaterialColors); err != nil {
		fmt.Fprintf(os.Stderr, "legend: %v\n", err)
		os.Exit(1)
	}

	c := vgsvg.New(8*vg.Inch, 6*vg.Inch)
	p.Draw(draw.New(c))
	w, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create output: %v\n", err)
		os.Exit(1)
	}
	defer w.Close()
	if _, err := c.WriteTo(w); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", *outPath, err)
		os.Exit(1)
	}
	fmt.Printf("[render] wrote %s\n", *outPath)
}

// axisLabel joins a quantity with its unit when the units table knows it.
func axisLabel(q string) string {
	if unit, ok := ashby.Units[q]; ok {
		return fmt.Sprintf("%s [%s]", q, unit)
	}
	return q
}
