package correlogram

import (
	"context"

	"github.com/quantpoints/hawkes-diagnostics/model"
	"github.com/quantpoints/hawkes-diagnostics/utils"
	"go.uber.org/zap"
)

const DefaultNLags = 50

// BuildCorrelograms computes the correlogram of every ordered pair of event
// types, per model. Self pairs reduce to the autocorrelation. nLags <= 0
// selects the default of 50 lags.
func BuildCorrelograms(ctx context.Context, input model.ResidualInput, nLags int, mode Mode) (*model.CorrelogramSet, error) {
	logger := utils.GetLogger(ctx)

	if nLags <= 0 {
		nLags = DefaultNLags
	}

	dim, err := input.Validate()
	if err != nil {
		logger.Error("invalid residual input", zap.Error(err))
		return nil, err
	}

	sets := input.Sets()
	sequences := make([][][][]float64, len(sets))
	for m, ms := range sets {
		grid := make([][][]float64, dim)
		for i := 0; i < dim; i++ {
			grid[i] = make([][]float64, dim)
			for j := 0; j < dim; j++ {
				ccf, err := CrossCorrelation(ms.Set[i], ms.Set[j], nLags, mode)
				if err != nil {
					logger.Error("cross-correlation failed", zap.String("model", ms.Label),
						zap.Int("i", i), zap.Int("j", j), zap.Error(err))
					return nil, err
				}
				grid[i][j] = ccf
			}
		}
		sequences[m] = grid
	}

	return &model.CorrelogramSet{
		NLags:     nLags,
		Sequences: sequences,
		Labels:    input.Labels(),
	}, nil
}
