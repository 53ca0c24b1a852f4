// Package scatter renders the unit-cell engineering-constant scatter matrix:
// an n×n grid with per-category kernel density estimates on the diagonal,
// per-category scatter in the lower triangle, and the redundant upper
// triangle omitted.
package scatter

import "github.com/hdeavila1992/Ashby-plots/src/unitcell"

// Column describes one plotted quantity. Scale policy lives here as data —
// the renderer never branches on column names. Baseline names which
// constituent-material property marks this axis on the reference overlays
// ("E", "G", "Nu", or empty for none).
type Column struct {
	Name     string
	Label    string
	LogScale bool
	Baseline string
	Value    func(unitcell.Record) float64
}

// StandardColumns is the 2D engineering-constant set of the published
// figure: the moduli log-scaled, the Poisson ratio linear.
func StandardColumns() []Column {
	return []Column{
		{Name: "E1", Label: "E₁ [MPa]", LogScale: true, Baseline: "E",
			Value: func(r unitcell.Record) float64 { return r.E1 }},
		{Name: "E2", Label: "E₂ [MPa]", LogScale: true, Baseline: "E",
			Value: func(r unitcell.Record) float64 { return r.E2 }},
		{Name: "G12", Label: "G₁₂ [MPa]", LogScale: true, Baseline: "G",
			Value: func(r unitcell.Record) float64 { return r.G12 }},
		{Name: "Nu12", Label: "ν₁₂ [-]", LogScale: false, Baseline: "Nu",
			Value: func(r unitcell.Record) float64 { return r.Nu12 }},
	}
}
