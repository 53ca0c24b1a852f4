package ashby

import (
	"strings"
	"testing"

	"gonum.org/v1/plot/vg"
)

func TestPresets(t *testing.T) {
	cases := []struct {
		in       string
		wantSize vg.Length
	}{
		{"publication", vg.Points(10)},
		{"Publication", vg.Points(10)},
		{"PRESENTATION", vg.Points(18)},
		{"presentation", vg.Points(18)},
	}
	for _, tc := range cases {
		ctx, err := Presets(tc.in)
		if err != nil {
			t.Fatalf("Presets(%q): %v", tc.in, err)
		}
		if ctx.FontSize != tc.wantSize {
			t.Fatalf("Presets(%q).FontSize = %v, want %v", tc.in, ctx.FontSize, tc.wantSize)
		}
		if ctx.MarkerRadius <= 0 {
			t.Fatalf("Presets(%q).MarkerRadius = %v", tc.in, ctx.MarkerRadius)
		}
	}
}

func TestPresetsInvalid(t *testing.T) {
	for _, in := range []string{"", "poster", "publicationn"} {
		_, err := Presets(in)
		if err == nil {
			t.Fatalf("Presets(%q): expected error", in)
		}
		if !strings.Contains(err.Error(), "invalid figure type") {
			t.Fatalf("Presets(%q): unexpected error %v", in, err)
		}
	}
}
