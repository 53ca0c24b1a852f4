package ashby

import (
	"math"
	"testing"

	"gonum.org/v1/plot"
)

func TestGuidelineEvaluateLogIdentity(t *testing.T) {
	// Power 1 with unit intercept on log axes is y = x.
	g := Guideline{Power: 1, YIntercept: 1, XLim: [2]float64{1, 10}}
	xs, ys := g.Evaluate(guidelinePoints, true)
	if len(xs) != guidelinePoints || len(ys) != guidelinePoints {
		t.Fatalf("got %d/%d samples, want %d", len(xs), len(ys), guidelinePoints)
	}
	if xs[0] != 1 || xs[len(xs)-1] != 10 {
		t.Fatalf("x range [%g, %g], want [1, 10]", xs[0], xs[len(xs)-1])
	}
	for i := range xs {
		if math.Abs(ys[i]-xs[i]) > 1e-12 {
			t.Fatalf("sample %d: y = %g, want x = %g", i, ys[i], xs[i])
		}
	}
}

func TestGuidelineEvaluatePowerLaw(t *testing.T) {
	g := Guideline{Power: 2, YIntercept: 3, XLim: [2]float64{1, 100}}
	xs, ys := g.Evaluate(guidelinePoints, true)
	for i := range xs {
		want := 3 * xs[i] * xs[i]
		if math.Abs(ys[i]-want) > 1e-9*want {
			t.Fatalf("sample %d: y = %g, want %g", i, ys[i], want)
		}
	}
}

func TestGuidelineEvaluateLinear(t *testing.T) {
	g := Guideline{Power: -0.5, YIntercept: 4, XLim: [2]float64{0, 8}}
	xs, ys := g.Evaluate(guidelinePoints, false)
	for i := range xs {
		want := -0.5*xs[i] + 4
		if math.Abs(ys[i]-want) > 1e-12 {
			t.Fatalf("sample %d: y = %g, want %g", i, ys[i], want)
		}
	}
}

func TestGuidelineRotation(t *testing.T) {
	// The identity line on a square-decade log grid is annotated at 45°.
	g := Guideline{Power: 1, YIntercept: 1, XLim: [2]float64{1, 10}}
	xs, ys := g.Evaluate(guidelinePoints, true)
	got := g.rotation(xs, ys, true)
	if math.Abs(got-math.Pi/4) > 1e-9 {
		t.Fatalf("rotation = %g rad, want pi/4", got)
	}
	// A flat line is annotated level.
	flat := Guideline{Power: 0, YIntercept: 5, XLim: [2]float64{1, 10}}
	xs, ys = flat.Evaluate(guidelinePoints, true)
	if got := flat.rotation(xs, ys, true); math.Abs(got) > 1e-12 {
		t.Fatalf("flat rotation = %g rad, want 0", got)
	}
}

func TestDrawGuideline(t *testing.T) {
	ctx, err := Presets("publication")
	if err != nil {
		t.Fatalf("presets: %v", err)
	}
	p := plot.New()
	g := Guideline{
		Power: 1, YIntercept: 1, XLim: [2]float64{1, 10},
		Label: "E/ρ", LabelPos: Point{X: 2, Y: 2},
	}
	if err := DrawGuideline(ctx, p, g, true); err != nil {
		t.Fatalf("DrawGuideline: %v", err)
	}
}

func TestDrawGuidelineBadLimits(t *testing.T) {
	ctx, _ := Presets("publication")
	p := plot.New()
	g := Guideline{Power: 1, YIntercept: 1, XLim: [2]float64{10, 1}}
	if err := DrawGuideline(ctx, p, g, true); err == nil {
		t.Fatal("expected error for non-increasing x limits")
	}
}
