package unitcell

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// OrthonormalRotation appends a 90-degree in-plane rotation of every record:
// E1 and E2 swap (G13/G23 likewise), and the coupling ratio rescales by the
// reciprocal rule nu21 = nu12 * E2/E1. Expressed on the swapped copy that is
// Nu12' = Nu12 * E1'/E2'. Doubles the row count; rotated copies keep their
// ID, so (ID, UnitCell) is no longer unique afterwards — rotation must run
// after the merge.
func OrthonormalRotation(recs []Record) []Record {
	out := make([]Record, 0, 2*len(recs))
	out = append(out, recs...)
	for _, r := range recs {
		rot := r.Clone()
		rot.E1, rot.E2 = r.E2, r.E1
		rot.G13, rot.G23 = r.G23, r.G13
		rot.Nu12 = r.Nu12 * rot.E1 / rot.E2
		out = append(out, rot)
	}
	return out
}

// ComputeDensity fills in the effective density as the volume-fraction
// weighted average of the stiff and infill constituent densities:
//
//	rho = (Vs*rhoStiff + (Vt-Vs)*rhoInfill) / Vt
//
// A zero total volume yields Inf/NaN which is deliberately left to propagate
// into the plot rather than raised.
func ComputeDensity(recs []Record, rhoStiff, rhoInfill float64) {
	for i := range recs {
		r := &recs[i]
		r.Density = (r.StiffVolume*rhoStiff + (r.TotalVolume-r.StiffVolume)*rhoInfill) / r.TotalVolume
	}
}

// ApplyManufacturingConstraint relabels rows whose strut thickness is below
// threshold to the Violated category. The relabel is in place and not
// reversible; violated rows stay in the dataset and simply plot in the
// Violated color.
func ApplyManufacturingConstraint(recs []Record, threshold float64) int {
	n := 0
	for i := range recs {
		if recs[i].StrutThickness < threshold {
			recs[i].UnitCell = CategoryViolated
			n++
		}
	}
	return n
}

// FilterInfill keeps only records whose infill material matches name.
func FilterInfill(recs []Record, name string) []Record {
	out := recs[:0:0]
	for _, r := range recs {
		if r.InfillMaterial == name {
			out = append(out, r)
		}
	}
	return out
}

// DropOutliers removes records whose E1 or E2 falls at or below the
// compliant constituent's modulus: a homogenized cell softer than its
// softest constituent is a failed simulation, not a design.
func DropOutliers(recs []Record, complianceE float64) []Record {
	out := recs[:0:0]
	for _, r := range recs {
		if r.E1 > complianceE && r.E2 > complianceE {
			out = append(out, r)
		}
	}
	return out
}

// GroupByCategory splits records into category buckets, category order
// preserved by first appearance.
func GroupByCategory(recs []Record) (map[string][]Record, []string) {
	groups := map[string][]Record{}
	var order []string
	for _, r := range recs {
		if _, ok := groups[r.UnitCell]; !ok {
			order = append(order, r.UnitCell)
		}
		groups[r.UnitCell] = append(groups[r.UnitCell], r)
	}
	return groups, order
}

// Medians holds the per-category medians reported after plotting.
type Medians struct {
	E1, E2, G12, Nu12 float64
}

// CategoryMedians computes median engineering constants per category.
func CategoryMedians(recs []Record) map[string]Medians {
	groups, _ := GroupByCategory(recs)
	out := make(map[string]Medians, len(groups))
	for cat, rs := range groups {
		med := func(sel func(Record) float64) float64 {
			vals := make([]float64, len(rs))
			for i, r := range rs {
				vals[i] = sel(r)
			}
			sort.Float64s(vals)
			return stat.Quantile(0.5, stat.Empirical, vals, nil)
		}
		out[cat] = Medians{
			E1:   med(func(r Record) float64 { return r.E1 }),
			E2:   med(func(r Record) float64 { return r.E2 }),
			G12:  med(func(r Record) float64 { return r.G12 }),
			Nu12: med(func(r Record) float64 { return r.Nu12 }),
		}
	}
	return out
}

// Unit conversions for the single-pane Ashby view: the raw table carries
// moduli in MPa and densities in the solver's mm-based unit system.

// MPaToGPa converts a modulus in MPa to GPa.
func MPaToGPa(mpa float64) float64 { return mpa / 1e3 }

// SolverDensityToSI converts the solver's tonne/mm^3-scale density to kg/m^3.
func SolverDensityToSI(rho float64) float64 { return rho * 1e6 }
