// Package unitcell holds the tabular data model for unit-cell engineering
// constants and the transforms applied before plotting.
//
// Data flows in from per-category CSV pairs (simulation outputs + geometric
// inputs), gets merged on (ID, Unit Cell), then passes through the transform
// stage: orthonormal rotation (doubles the rows), density derivation from
// volume fractions, and manufacturing-constraint relabeling. Everything is
// transient; records live for a single plotting pass.
package unitcell

// Category labels as they appear in the CSV files and the color map.
const (
	CategoryChiral    = "Chiral"
	CategoryLattice   = "Lattice"
	CategoryReentrant = "Re-entrant"
	// CategoryViolated marks rows relabeled by the manufacturing
	// constraint. Not a real unit-cell type; exists only for plotting.
	CategoryViolated = "Violated"
)

// DefaultStrutThicknessMM is the printability limit below which a design is
// relabeled as Violated.
const DefaultStrutThicknessMM = 0.5

// Record is one unit-cell design: homogenized engineering constants from the
// outputs file joined with the geometric inputs that produced them.
// Moduli are in MPa, thickness in mm, volumes in mm^3.
type Record struct {
	ID       int
	UnitCell string // category label; mutated to Violated by the constraint step

	// Engineering constants (outputs file)
	E1, E2, E3    float64
	G12, G13, G23 float64
	Nu12          float64
	Nu13, Nu23    float64
	SimError      float64 // the "Error" column: homogenization residual

	// Geometric inputs (inputs file)
	StrutThickness float64
	StiffVolume    float64
	TotalVolume    float64
	InfillMaterial string

	// Derived by ComputeDensity
	Density float64
}

// Clone returns a copy of r. Records are small value types but the rotation
// transform mutates its copies, so the intent is explicit.
func (r Record) Clone() Record { return r }
