package materials

import (
	"math"
	"strings"
	"testing"
)

func TestShearModulusDerivation(t *testing.T) {
	for _, m := range []Material{Stiff(), CompliantDense(), CompliantFoam()} {
		want := m.E / (2 * (1 + m.Nu))
		if math.Abs(m.G-want) > 1e-12 {
			t.Fatalf("%s: G = %g, want E/(2(1+nu)) = %g", m.Name, m.G, want)
		}
	}
}

func TestNullMaterialIsAllZero(t *testing.T) {
	n := Null()
	if n.E != 0 || n.Rho != 0 || n.Nu != 0 || n.G != 0 {
		t.Fatalf("null material has nonzero properties: %+v", n)
	}
	if n.Name != "none" {
		t.Fatalf("null material name = %q", n.Name)
	}
}

func TestByInfillName(t *testing.T) {
	cases := []struct {
		name string
		want Material
	}{
		{"foamed elastomer", CompliantFoam()},
		{"dense elastomer", CompliantDense()},
		{"none", Null()},
	}
	for _, tc := range cases {
		got, err := ByInfillName(tc.name)
		if err != nil {
			t.Fatalf("ByInfillName(%q): %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("ByInfillName(%q) = %+v, want %+v", tc.name, got, tc.want)
		}
	}
}

func TestByInfillNameUnknown(t *testing.T) {
	_, err := ByInfillName("granite")
	if err == nil {
		t.Fatal("expected error for unknown infill material")
	}
	for _, opt := range []string{"foamed elastomer", "dense elastomer", "none"} {
		if !strings.Contains(err.Error(), opt) {
			t.Fatalf("error should list option %q: %v", opt, err)
		}
	}
}

func TestStiffConstituent(t *testing.T) {
	s := Stiff()
	if s.E != 2.009e3 || s.Rho != 1300e-6 || s.Nu != 0.3 {
		t.Fatalf("stiff constituent drifted: %+v", s)
	}
}
