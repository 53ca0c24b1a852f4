package scatter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hdeavila1992/Ashby-plots/src/ashby"
	"github.com/hdeavila1992/Ashby-plots/src/materials"
	"github.com/hdeavila1992/Ashby-plots/src/unitcell"
)

func testRecords() []unitcell.Record {
	base := []unitcell.Record{
		{ID: 1, UnitCell: unitcell.CategoryChiral, E1: 12, E2: 8, G12: 3, Nu12: 0.30},
		{ID: 2, UnitCell: unitcell.CategoryChiral, E1: 15, E2: 9, G12: 3.5, Nu12: 0.25},
		{ID: 3, UnitCell: unitcell.CategoryChiral, E1: 10, E2: 7, G12: 2.8, Nu12: 0.35},
		{ID: 152, UnitCell: unitcell.CategoryReentrant, E1: 5, E2: 4, G12: 1.2, Nu12: -0.4},
		{ID: 153, UnitCell: unitcell.CategoryReentrant, E1: 6, E2: 5, G12: 1.5, Nu12: -0.3},
		{ID: 154, UnitCell: unitcell.CategoryReentrant, E1: 4, E2: 3, G12: 1.1, Nu12: -0.5},
	}
	return base
}

func testOptions() Options {
	stiff := materials.Stiff()
	foam := materials.CompliantFoam()
	return Options{
		Colors:    ashby.CategoryColors,
		Highlight: &Highlight{UnitCell: unitcell.CategoryReentrant, ID: 152},
		Baselines: []Baseline{
			{Name: stiff.Name, E: stiff.E, G: stiff.G, Nu: stiff.Nu, Color: ashby.Grey},
			{Name: foam.Name, E: foam.E, G: foam.G, Nu: foam.Nu, Color: ashby.Cyan},
		},
	}
}

func publicationContext(t *testing.T) ashby.RenderContext {
	t.Helper()
	ctx, err := ashby.Presets("publication")
	if err != nil {
		t.Fatalf("presets: %v", err)
	}
	return ctx
}

func TestMatrixBuilds(t *testing.T) {
	fig, err := Matrix(publicationContext(t), testRecords(), StandardColumns(), testOptions())
	if err != nil {
		t.Fatalf("Matrix: %v", err)
	}
	if fig == nil || fig.Width <= 0 || fig.Height <= 0 {
		t.Fatalf("figure not sized: %+v", fig)
	}
}

func TestMatrixEmptyInputs(t *testing.T) {
	ctx := publicationContext(t)
	if _, err := Matrix(ctx, nil, StandardColumns(), testOptions()); err == nil {
		t.Fatal("expected error for no records")
	}
	if _, err := Matrix(ctx, testRecords(), nil, testOptions()); err == nil {
		t.Fatal("expected error for no columns")
	}
}

func TestMatrixUnknownCategory(t *testing.T) {
	recs := testRecords()
	recs[0].UnitCell = "Hexagonal"
	_, err := Matrix(publicationContext(t), recs, StandardColumns(), testOptions())
	if err == nil || !strings.Contains(err.Error(), "no color mapping") {
		t.Fatalf("expected missing color error, got %v", err)
	}
}

func TestMatrixHighlightNotFound(t *testing.T) {
	opts := testOptions()
	opts.Highlight = &Highlight{UnitCell: unitcell.CategoryChiral, ID: 9999}
	_, err := Matrix(publicationContext(t), testRecords(), StandardColumns(), opts)
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected highlight lookup error, got %v", err)
	}
}

func TestMatrixNoHighlight(t *testing.T) {
	opts := testOptions()
	opts.Highlight = nil
	if _, err := Matrix(publicationContext(t), testRecords(), StandardColumns(), opts); err != nil {
		t.Fatalf("Matrix without highlight: %v", err)
	}
}

func TestFigureSaveSVGAndPNG(t *testing.T) {
	fig, err := Matrix(publicationContext(t), testRecords(), StandardColumns(), testOptions())
	if err != nil {
		t.Fatalf("Matrix: %v", err)
	}
	dir := t.TempDir()
	svg := filepath.Join(dir, "foamed elastomerunit_cell.svg")
	if err := fig.SaveSVG(svg); err != nil {
		t.Fatalf("SaveSVG: %v", err)
	}
	png := filepath.Join(dir, "foamed elastomerunit_cell.png")
	if err := fig.SavePNG(png); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	for _, path := range []string{svg, png} {
		fi, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat %s: %v", path, err)
		}
		if fi.Size() == 0 {
			t.Fatalf("%s is empty", path)
		}
	}
}

func TestFigureImage(t *testing.T) {
	fig, err := Matrix(publicationContext(t), testRecords(), StandardColumns(), testOptions())
	if err != nil {
		t.Fatalf("Matrix: %v", err)
	}
	img := fig.Image()
	if img == nil || img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
		t.Fatal("rasterized image is empty")
	}
}

func TestStandardColumnsScalePolicy(t *testing.T) {
	cols := StandardColumns()
	if len(cols) != 4 {
		t.Fatalf("got %d columns, want 4", len(cols))
	}
	wantLog := map[string]bool{"E1": true, "E2": true, "G12": true, "Nu12": false}
	for _, c := range cols {
		log, ok := wantLog[c.Name]
		if !ok {
			t.Fatalf("unexpected column %q", c.Name)
		}
		if c.LogScale != log {
			t.Fatalf("column %q LogScale = %v, want %v", c.Name, c.LogScale, log)
		}
		if c.Value == nil {
			t.Fatalf("column %q has no accessor", c.Name)
		}
	}
}

func TestBaselineValueMapping(t *testing.T) {
	b := Baseline{E: 1, G: 2, Nu: 3}
	cases := []struct {
		quantity string
		want     float64
		ok       bool
	}{
		{"E", 1, true},
		{"G", 2, true},
		{"Nu", 3, true},
		{"", 0, false},
		{"Rho", 0, false},
	}
	for _, tc := range cases {
		got, ok := b.value(tc.quantity)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("value(%q) = (%g, %v), want (%g, %v)", tc.quantity, got, ok, tc.want, tc.ok)
		}
	}
}
