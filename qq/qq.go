package qq

import (
	"math"
	"sort"

	"github.com/quantpoints/hawkes-diagnostics/common"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// standard exponential distribution, fixed by the residual model family
var stdExponential = distuv.Exponential{Rate: 1}

// Levels returns num quantile levels linearly spaced over [qMin, qMax].
func Levels(qMin, qMax float64, num int) ([]float64, error) {
	if num <= 0 || qMin <= 0 || qMax >= 1 || qMin >= qMax {
		return nil, common.ErrorInvalidInput
	}
	if num == 1 {
		return []float64{qMin}, nil
	}
	return floats.Span(make([]float64, num), qMin, qMax), nil
}

// Theoretical evaluates the standard exponential inverse CDF, -ln(1-q), at
// every level.
func Theoretical(levels []float64) []float64 {
	res := make([]float64, len(levels))
	for i, q := range levels {
		res[i] = stdExponential.Quantile(q)
	}
	return res
}

// Empirical returns the residual sequence's percentile at every level, with
// linear interpolation between order statistics.
func Empirical(residuals []float64, levels []float64) ([]float64, error) {
	if len(residuals) == 0 {
		return nil, common.ErrorInvalidInput
	}
	sorted := append([]float64(nil), residuals...)
	sort.Float64s(sorted)

	res := make([]float64, len(levels))
	for i, q := range levels {
		res[i] = percentile(sorted, q)
	}
	return res, nil
}

// percentile interpolates the sorted sample at rank h = (n-1)*q.
func percentile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	h := q * float64(n-1)
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}
