// quicklook renders a curated set of single-pair unit-cell scatter charts as
// PNGs, one file per property pair, without building the full matrix figure.
// Headless by design: useful for CI artifacts and quick eyeballing of a
// fresh solver export.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/hdeavila1992/Ashby-plots/src/materials"
	"github.com/hdeavila1992/Ashby-plots/src/scatter"
	"github.com/hdeavila1992/Ashby-plots/src/unitcell"
)

// categoryColors is the unit-cell palette in go-chart's color type.
var categoryColors = map[string]drawing.Color{
	unitcell.CategoryChiral:    {R: 214, G: 39, B: 40, A: 255},
	unitcell.CategoryLattice:   {R: 31, G: 119, B: 180, A: 255},
	unitcell.CategoryReentrant: {R: 44, G: 160, B: 44, A: 255},
	unitcell.CategoryViolated:  {R: 127, G: 127, B: 127, A: 255},
}

// pointStyle returns a style that renders points only (no connecting line).
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    4,
		DotColor:    col,
	}
}

func main() {
	dataDir := flag.String("data-dir", ".", "Directory holding <Category>_All_outputs.csv / <Category>_All_inputs.csv pairs")
	outDir := flag.String("out-dir", ".", "Directory for rendered PNGs")
	material := flag.String("material", "foamed elastomer", "Infill material to plot")
	minThickness := flag.Float64("min-thickness", unitcell.DefaultStrutThicknessMM, "Strut thickness [mm] below which a design is relabelled Violated")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()

	unitcell.SetLogLevel(*logLevel)

	if _, err := materials.ByInfillName(*material); err != nil {
		fmt.Fprintf(os.Stderr, "infill material: %v\n", err)
		os.Exit(1)
	}

	pairs := []unitcell.FilePair{}
	for _, cat := range []string{unitcell.CategoryChiral, unitcell.CategoryLattice, unitcell.CategoryReentrant} {
		pairs = append(pairs, unitcell.FilePair{
			Outputs: filepath.Join(*dataDir, cat+"_All_outputs.csv"),
			Inputs:  filepath.Join(*dataDir, cat+"_All_inputs.csv"),
		})
	}
	fmt.Printf("[quicklook] loading %d category pairs from %s\n", len(pairs), *dataDir)
	recs, err := unitcell.LoadAll(pairs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load data: %v\n", err)
		os.Exit(1)
	}
	recs = unitcell.OrthonormalRotation(recs)
	recs = unitcell.FilterInfill(recs, *material)
	unitcell.ApplyManufacturingConstraint(recs, *minThickness)

	cols := scatter.StandardColumns()
	// Curated pairs: each modulus against the next column over, plus both
	// moduli and the shear modulus against the Poisson ratio.
	curated := [][2]int{{0, 1}, {0, 2}, {0, 3}, {2, 3}}
	for _, pair := range curated {
		xCol, yCol := cols[pair[0]], cols[pair[1]]
		name := fmt.Sprintf("quicklook_%s_vs_%s.png", yCol.Name, xCol.Name)
		path := filepath.Join(*outDir, name)
		if err := renderPair(recs, xCol, yCol, path); err != nil {
			fmt.Fprintf(os.Stderr, "render %s: %v\n", name, err)
			os.Exit(1)
		}
		fmt.Printf("[quicklook] wrote %s\n", path)
	}
}

// renderPair writes one per-category scatter PNG. go-chart has no log axis,
// so log-scaled columns are plotted as log10 values with the axis labelled
// accordingly.
func renderPair(recs []unitcell.Record, xCol, yCol scatter.Column, path string) error {
	groups, order := unitcell.GroupByCategory(recs)
	var series []chart.Series
	for _, cat := range order {
		col, ok := categoryColors[cat]
		if !ok {
			return fmt.Errorf("category %q has no color mapping", cat)
		}
		var xs, ys []float64
		for _, r := range groups[cat] {
			x, ok := axisValue(xCol, r)
			if !ok {
				continue
			}
			y, ok := axisValue(yCol, r)
			if !ok {
				continue
			}
			xs = append(xs, x)
			ys = append(ys, y)
		}
		if len(xs) == 0 {
			continue
		}
		series = append(series, chart.ContinuousSeries{
			Name:    cat,
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(col),
		})
	}
	if len(series) == 0 {
		return fmt.Errorf("no plottable rows")
	}

	ch := chart.Chart{
		Title:      fmt.Sprintf("%s vs %s", yCol.Name, xCol.Name),
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 24}},
		XAxis:      chart.XAxis{Name: axisName(xCol)},
		YAxis:      chart.YAxis{Name: axisName(yCol)},
		Series:     series,
		Width:      800,
		Height:     600,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	w, err := os.Create(path)
	if err != nil {
		return err
	}
	defer w.Close()
	return ch.Render(chart.PNG, w)
}

// axisValue applies the column's scale policy: log columns report log10 of
// the value and skip non-positive rows.
func axisValue(c scatter.Column, r unitcell.Record) (float64, bool) {
	v := c.Value(r)
	if !c.LogScale {
		return v, true
	}
	if v <= 0 {
		return 0, false
	}
	return math.Log10(v), true
}

func axisName(c scatter.Column) string {
	if c.LogScale {
		return "log10 " + c.Label
	}
	return c.Label
}
