// Package materials carries the baseline constituent material constants used
// to contextualize unit-cell properties: the space of achievable designs is
// bounded by the stiff printed skeleton on one side and the infill on the
// other.
package materials

import "fmt"

// Material is an isotropic baseline constituent. E and G in MPa, Rho in the
// solver's tonne/mm^3-scale unit system (multiply by 1e6 for kg/m^3).
type Material struct {
	Name string
	E    float64
	Rho  float64
	Nu   float64
	G    float64
}

// shearModulus is the isotropic relation G = E / (2*(1+nu)).
func shearModulus(e, nu float64) float64 { return e / (2 * (1 + nu)) }

// Stiff is the 3D-printed PLA skeleton.
func Stiff() Material {
	m := Material{Name: "stiff", E: 2.009e3, Rho: 1300e-6, Nu: 0.3}
	m.G = shearModulus(m.E, m.Nu)
	return m
}

// CompliantDense is the dense elastomer infill (Mold Star 30).
func CompliantDense() Material {
	m := Material{Name: "dense elastomer", E: 1.07, Rho: 970e-6, Nu: 0.49}
	m.G = shearModulus(m.E, m.Nu)
	return m
}

// CompliantFoam is the foamed elastomer infill (Soma Foama 25).
func CompliantFoam() Material {
	m := Material{Name: "foamed elastomer", E: 0.124, Rho: 400e-6, Nu: 0.45}
	m.G = shearModulus(m.E, m.Nu)
	return m
}

// Null is the no-infill placeholder. All zeros, including G: the G=E/(2(1+nu))
// relation is deliberately not applied here.
func Null() Material {
	return Material{Name: "none"}
}

// ByInfillName resolves the compliant baseline for an infill material label
// as it appears in the CSV "Infill material" column.
func ByInfillName(name string) (Material, error) {
	switch name {
	case "dense elastomer":
		return CompliantDense(), nil
	case "foamed elastomer":
		return CompliantFoam(), nil
	case "none":
		return Null(), nil
	}
	return Material{}, fmt.Errorf("unknown infill material %q (options: dense elastomer, foamed elastomer, none)", name)
}
