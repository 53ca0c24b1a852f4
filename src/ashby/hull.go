package ashby

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/interp"
)

// Point is a position in property space.
type Point struct{ X, Y float64 }

// HullConfig is the fixed hull-rendering configuration: pad the hull about
// its centroid, then resample the closed boundary with a cubic spline so the
// outline is smooth instead of polygonal.
type HullConfig struct {
	Scale        float64 // padding factor about the centroid
	NInterpolate int     // resampled boundary points
}

// DefaultHullConfig is the envelope styling every chart uses.
var DefaultHullConfig = HullConfig{Scale: 1.1, NInterpolate: 1000}

// ConvexHull returns the convex hull of pts in counter-clockwise order using
// Andrew's monotone chain. Degenerate inputs (fewer than 3 distinct points,
// collinear sets) return what there is; callers decide whether that is
// drawable.
func ConvexHull(pts []Point) []Point {
	if len(pts) < 3 {
		cp := append([]Point(nil), pts...)
		return cp
	}
	cp := append([]Point(nil), pts...)
	sort.Slice(cp, func(i, j int) bool {
		if cp[i].X != cp[j].X {
			return cp[i].X < cp[j].X
		}
		return cp[i].Y < cp[j].Y
	})
	// Drop duplicates so the chain never stalls.
	uniq := cp[:1]
	for _, p := range cp[1:] {
		if p != uniq[len(uniq)-1] {
			uniq = append(uniq, p)
		}
	}
	cp = uniq
	if len(cp) < 3 {
		return cp
	}
	cross := func(o, a, b Point) float64 {
		return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
	}
	var lower, upper []Point
	for _, p := range cp {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	for i := len(cp) - 1; i >= 0; i-- {
		p := cp[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

// PadHull scales every vertex away from the hull centroid by cfg factor.
func PadHull(hull []Point, scale float64) []Point {
	if len(hull) == 0 {
		return nil
	}
	var cx, cy float64
	for _, p := range hull {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(hull))
	cy /= float64(len(hull))
	out := make([]Point, len(hull))
	for i, p := range hull {
		out[i] = Point{X: cx + (p.X-cx)*scale, Y: cy + (p.Y-cy)*scale}
	}
	return out
}

// InterpolateHull resamples the closed hull boundary with natural cubic
// splines in a chord-length parameterization, returning n points. The first
// vertex is repeated at the parameter end so the curve closes.
func InterpolateHull(hull []Point, n int) ([]Point, error) {
	if len(hull) < 3 {
		return nil, fmt.Errorf("hull interpolation needs at least 3 vertices, have %d", len(hull))
	}
	if n < len(hull) {
		n = len(hull)
	}
	closed := append(append([]Point(nil), hull...), hull[0])
	t := make([]float64, len(closed))
	xs := make([]float64, len(closed))
	ys := make([]float64, len(closed))
	for i, p := range closed {
		if i > 0 {
			dx := p.X - closed[i-1].X
			dy := p.Y - closed[i-1].Y
			step := math.Hypot(dx, dy)
			if step == 0 {
				step = 1e-12 // interp requires strictly increasing abscissae
			}
			t[i] = t[i-1] + step
		}
		xs[i] = p.X
		ys[i] = p.Y
	}
	var sx, sy interp.NaturalCubic
	if err := sx.Fit(t, xs); err != nil {
		return nil, fmt.Errorf("fit hull x spline: %w", err)
	}
	if err := sy.Fit(t, ys); err != nil {
		return nil, fmt.Errorf("fit hull y spline: %w", err)
	}
	out := make([]Point, n)
	tmax := t[len(t)-1]
	for i := 0; i < n; i++ {
		ti := tmax * float64(i) / float64(n-1)
		out[i] = Point{X: sx.Predict(ti), Y: sy.Predict(ti)}
	}
	return out, nil
}
