// Unit-cell scatter-matrix entrypoint.
//
// Reads the per-category solver exports (<Category>_All_outputs.csv with the
// homogenized engineering constants, <Category>_All_inputs.csv with the
// geometric parameterization), merges them on (ID, Unit Cell), doubles the
// dataset with the orthonormal 90-degree rotation, derives density from the
// constituent volumes, relabels designs thinner than the printable strut
// limit as Violated, and renders the engineering-constant scatter matrix
// (per-category density estimates on the diagonal, scatter below it).
//
// Design notes:
// - One malformed category aborts the run; there is no partial figure.
// - The infill filter selects which designs are plotted; the compliant
//   constituent for the reference markers and the outlier cut follows the
//   same selection.
// - All figure styling flows from the figure-type preset; there is no
//   global style state.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hdeavila1992/Ashby-plots/src/ashby"
	"github.com/hdeavila1992/Ashby-plots/src/materials"
	"github.com/hdeavila1992/Ashby-plots/src/scatter"
	"github.com/hdeavila1992/Ashby-plots/src/unitcell"
)

// categories is the fixed set of unit-cell topologies the solver exports.
// Violated is not a topology; rows enter it only via the constraint relabel.
var categories = []string{
	unitcell.CategoryChiral,
	unitcell.CategoryLattice,
	unitcell.CategoryReentrant,
}

func main() {
	dataDir := flag.String("data-dir", ".", "Directory holding <Category>_All_outputs.csv / <Category>_All_inputs.csv pairs")
	outDir := flag.String("out-dir", ".", "Directory for rendered figures")
	material := flag.String("material", "foamed elastomer", "Infill material to plot (foamed elastomer|dense elastomer|none)")
	figureType := flag.String("figure-type", "publication", "Figure preset (publication|presentation)")
	minThickness := flag.Float64("min-thickness", unitcell.DefaultStrutThicknessMM, "Strut thickness [mm] below which a design is relabelled Violated")
	formats := flag.String("formats", "svg,png", "Comma separated output formats (svg|png)")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	medians := flag.Bool("medians", false, "Print per-category medians of the plotted constants")
	highlightID := flag.Int("highlight-id", 152, "ID of the emphasized design (0 disables the marker)")
	highlightCell := flag.String("highlight-cell", unitcell.CategoryReentrant, "Unit cell of the emphasized design")
	flag.Parse()

	unitcell.SetLogLevel(*logLevel)

	ctx, err := ashby.Presets(*figureType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "presets: %v\n", err)
		os.Exit(1)
	}
	compliant, err := materials.ByInfillName(*material)
	if err != nil {
		fmt.Fprintf(os.Stderr, "infill material: %v\n", err)
		os.Exit(1)
	}
	stiff := materials.Stiff()

	pairs := make([]unitcell.FilePair, 0, len(categories))
	for _, cat := range categories {
		pairs = append(pairs, unitcell.FilePair{
			Outputs: filepath.Join(*dataDir, cat+"_All_outputs.csv"),
			Inputs:  filepath.Join(*dataDir, cat+"_All_inputs.csv"),
		})
	}
	fmt.Printf("[load] reading %d category pairs from %s\n", len(pairs), *dataDir)
	recs, err := unitcell.LoadAll(pairs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load data: %v\n", err)
		os.Exit(1)
	}

	recs = unitcell.OrthonormalRotation(recs)
	recs = unitcell.FilterInfill(recs, *material)
	if len(recs) == 0 {
		fmt.Fprintf(os.Stderr, "no rows with infill material %q\n", *material)
		os.Exit(1)
	}
	// The voids are filled with the same base polymer whether it is foamed
	// or not, so density always mixes against the dense elastomer.
	unitcell.ComputeDensity(recs, stiff.Rho, materials.CompliantDense().Rho)
	relabelled := unitcell.ApplyManufacturingConstraint(recs, *minThickness)
	recs = unitcell.DropOutliers(recs, compliant.E)
	fmt.Printf("[transform] %d rows after rotation and filters (%d below %.2g mm struts)\n",
		len(recs), relabelled, *minThickness)

	if *medians {
		printMedians(recs)
	}

	opts := scatter.Options{
		Colors: ashby.CategoryColors,
		Baselines: []scatter.Baseline{
			{Name: stiff.Name, E: stiff.E, G: stiff.G, Nu: stiff.Nu, Color: ashby.Grey},
			{Name: compliant.Name, E: compliant.E, G: compliant.G, Nu: compliant.Nu, Color: ashby.Cyan},
		},
	}
	if *highlightID > 0 {
		opts.Highlight = &scatter.Highlight{UnitCell: *highlightCell, ID: *highlightID}
	}

	fmt.Printf("[render] building %dx%d matrix for %d rows\n",
		len(scatter.StandardColumns()), len(scatter.StandardColumns()), len(recs))
	fig, err := scatter.Matrix(ctx, recs, scatter.StandardColumns(), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}

	base := filepath.Join(*outDir, *material+"unit_cell")
	for _, format := range strings.Split(*formats, ",") {
		var werr error
		var path string
		switch strings.ToLower(strings.TrimSpace(format)) {
		case "svg":
			path = base + ".svg"
			werr = fig.SaveSVG(path)
		case "png":
			path = base + ".png"
			werr = fig.SavePNG(path)
		default:
			fmt.Fprintf(os.Stderr, "unknown output format %q (options: svg, png)\n", format)
			os.Exit(1)
		}
		if werr != nil {
			fmt.Fprintf(os.Stderr, "save figure: %v\n", werr)
			os.Exit(1)
		}
		fmt.Printf("[render] wrote %s\n", path)
	}
}

// printMedians reports per-category medians of the plotted constants in a
// stable category order.
func printMedians(recs []unitcell.Record) {
	meds := unitcell.CategoryMedians(recs)
	cats := make([]string, 0, len(meds))
	for cat := range meds {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	for _, cat := range cats {
		m := meds[cat]
		fmt.Printf("[medians] %-10s E1=%.4g MPa E2=%.4g MPa G12=%.4g MPa Nu12=%.4g\n",
			cat, m.E1, m.E2, m.G12, m.Nu12)
	}
}
