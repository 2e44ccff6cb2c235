package correlogram

import (
	"github.com/quantpoints/hawkes-diagnostics/common"
	"gonum.org/v1/gonum/stat"
)

// Mode selects the normalization of the cross-correlation estimator.
type Mode int

const (
	// Unbiased divides the lag-k sum by n-k, reducing downward bias at
	// larger lags at the cost of higher variance.
	Unbiased Mode = iota
	// Biased divides every lag-k sum by n.
	Biased
)

// CrossCorrelation computes the empirical cross-correlation of a and b for
// lags 0 through nLags. The sequences are truncated to the shorter length
// before estimation, so series with differing event counts can be paired.
//
// For lag k the estimate is
//
//	sum_{t=0}^{n-k-1} (a[t]-mean_a)(b[t+k]-mean_b) / (d * std_a * std_b)
//
// with d = n-k in Unbiased mode and d = n in Biased mode. Means and standard
// deviations are the population statistics of the truncated sequences.
func CrossCorrelation(a, b []float64, nLags int, mode Mode) ([]float64, error) {
	n := min(len(a), len(b))
	if n == 0 || nLags < 0 || nLags > n-1 {
		return nil, common.ErrorInvalidInput
	}
	a, b = a[:n], b[:n]

	meanA := stat.Mean(a, nil)
	meanB := stat.Mean(b, nil)
	stdA := stat.PopStdDev(a, nil)
	stdB := stat.PopStdDev(b, nil)
	if stdA == 0 || stdB == 0 {
		// constant sequence, normalization undefined
		return nil, common.ErrorInvalidInput
	}

	res := make([]float64, nLags+1)
	for k := 0; k <= nLags; k++ {
		var sum float64
		for t := 0; t+k < n; t++ {
			sum += (a[t] - meanA) * (b[t+k] - meanB)
		}
		d := float64(n - k)
		if mode == Biased {
			d = float64(n)
		}
		res[k] = sum / (d * stdA * stdB)
	}
	return res, nil
}
