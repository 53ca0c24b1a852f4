// ashbyviewer shows the unit-cell scatter matrix in an interactive window.
// Interactivity is this binary, not an environment switch: the same pipeline
// as the headless renderer, ending in a window instead of a file.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/hdeavila1992/Ashby-plots/src/ashby"
	"github.com/hdeavila1992/Ashby-plots/src/materials"
	"github.com/hdeavila1992/Ashby-plots/src/scatter"
	"github.com/hdeavila1992/Ashby-plots/src/unitcell"
)

func main() {
	dataDir := flag.String("data-dir", ".", "Directory holding <Category>_All_outputs.csv / <Category>_All_inputs.csv pairs")
	material := flag.String("material", "foamed elastomer", "Infill material to plot")
	figureType := flag.String("figure-type", "presentation", "Figure preset (publication|presentation)")
	minThickness := flag.Float64("min-thickness", unitcell.DefaultStrutThicknessMM, "Strut thickness [mm] below which a design is relabelled Violated")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()

	unitcell.SetLogLevel(*logLevel)

	fig, err := buildFigure(*dataDir, *material, *figureType, *minThickness)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build figure: %v\n", err)
		os.Exit(1)
	}

	a := app.NewWithID("com.ashbyplots.viewer")
	w := a.NewWindow(fmt.Sprintf("Unit cell constants — %s", *material))
	w.Resize(fyne.NewSize(1100, 700))

	img := canvas.NewImageFromImage(fig.Image())
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(1000, 600))

	status := widget.NewLabel(fmt.Sprintf("%s preset, infill %q", *figureType, *material))
	w.SetContent(container.NewBorder(nil, status, nil, nil, img))
	w.ShowAndRun()
}

// buildFigure runs the headless pipeline and returns the assembled matrix.
func buildFigure(dataDir, material, figureType string, minThickness float64) (*scatter.Figure, error) {
	ctx, err := ashby.Presets(figureType)
	if err != nil {
		return nil, err
	}
	compliant, err := materials.ByInfillName(material)
	if err != nil {
		return nil, err
	}
	stiff := materials.Stiff()

	var pairs []unitcell.FilePair
	for _, cat := range []string{unitcell.CategoryChiral, unitcell.CategoryLattice, unitcell.CategoryReentrant} {
		pairs = append(pairs, unitcell.FilePair{
			Outputs: filepath.Join(dataDir, cat+"_All_outputs.csv"),
			Inputs:  filepath.Join(dataDir, cat+"_All_inputs.csv"),
		})
	}
	recs, err := unitcell.LoadAll(pairs)
	if err != nil {
		return nil, err
	}
	recs = unitcell.OrthonormalRotation(recs)
	recs = unitcell.FilterInfill(recs, material)
	if len(recs) == 0 {
		return nil, fmt.Errorf("no rows with infill material %q", material)
	}
	unitcell.ComputeDensity(recs, stiff.Rho, materials.CompliantDense().Rho)
	unitcell.ApplyManufacturingConstraint(recs, minThickness)
	recs = unitcell.DropOutliers(recs, compliant.E)

	opts := scatter.Options{
		Colors: ashby.CategoryColors,
		Baselines: []scatter.Baseline{
			{Name: stiff.Name, E: stiff.E, G: stiff.G, Nu: stiff.Nu, Color: ashby.Grey},
			{Name: compliant.Name, E: compliant.E, G: compliant.G, Nu: compliant.Nu, Color: ashby.Cyan},
		},
	}
	return scatter.Matrix(ctx, recs, scatter.StandardColumns(), opts)
}
