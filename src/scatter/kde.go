package scatter

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// kdePoints is the evaluation-grid resolution for a density curve.
const kdePoints = 200

// silvermanBandwidth is the rule-of-thumb Gaussian KDE bandwidth
// 1.06 * min(sigma, IQR/1.34) * n^(-1/5).
func silvermanBandwidth(vals []float64) float64 {
	n := float64(len(vals))
	if n < 2 {
		return 1
	}
	sigma := stat.StdDev(vals, nil)
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	iqr := stat.Quantile(0.75, stat.Empirical, sorted, nil) - stat.Quantile(0.25, stat.Empirical, sorted, nil)
	spread := sigma
	if iqr > 0 && iqr/1.34 < spread {
		spread = iqr / 1.34
	}
	if spread <= 0 {
		return 1
	}
	return 1.06 * spread * math.Pow(n, -0.2)
}

// kdeCurve evaluates a Gaussian kernel density estimate of vals on a grid
// spanning exactly the data range; the curve is never extended beyond
// observed values. Returns grid positions and densities.
func kdeCurve(vals []float64) (xs, ys []float64) {
	if len(vals) == 0 {
		return nil, nil
	}
	lo, hi := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		// Degenerate: all mass at one point; a single spike is unplottable,
		// widen by an arbitrary epsilon.
		lo, hi = lo-0.5, hi+0.5
	}
	h := silvermanBandwidth(vals)
	norm := distuv.UnitNormal
	xs = make([]float64, kdePoints)
	ys = make([]float64, kdePoints)
	for i := range xs {
		x := lo + (hi-lo)*float64(i)/float64(kdePoints-1)
		var d float64
		for _, v := range vals {
			d += norm.Prob((x - v) / h)
		}
		xs[i] = x
		ys[i] = d / (float64(len(vals)) * h)
	}
	return xs, ys
}

// logKDECurve runs the estimate in log10 space and maps the grid back, the
// equivalent of a log-scale density plot. All values must be positive.
func logKDECurve(vals []float64) (xs, ys []float64) {
	logVals := make([]float64, 0, len(vals))
	for _, v := range vals {
		if v > 0 {
			logVals = append(logVals, math.Log10(v))
		}
	}
	xs, ys = kdeCurve(logVals)
	for i, x := range xs {
		xs[i] = math.Pow(10, x)
	}
	return xs, ys
}
