package qq

import (
	"context"

	"github.com/quantpoints/hawkes-diagnostics/model"
	"github.com/quantpoints/hawkes-diagnostics/utils"
	"go.uber.org/zap"
)

const (
	DefaultQMin              = 0.01
	DefaultQMax              = 0.99
	DefaultNumberOfQuantiles = 100
)

// Options control the quantile level grid. Zero values select the defaults.
type Options struct {
	QMin              float64
	QMax              float64
	NumberOfQuantiles int
}

func (o Options) resolve() (float64, float64, int) {
	qMin, qMax, num := o.QMin, o.QMax, o.NumberOfQuantiles
	if qMin == 0 {
		qMin = DefaultQMin
	}
	if qMax == 0 {
		qMax = DefaultQMax
	}
	if num == 0 {
		num = DefaultNumberOfQuantiles
	}
	return qMin, qMax, num
}

// BuildCurves computes one theoretical/empirical quantile curve per
// (model, event type) pair. The theoretical curve does not depend on the
// model, so it is computed once and shared across all rows.
func BuildCurves(ctx context.Context, input model.ResidualInput, opts Options) (*model.QuantileCurves, error) {
	logger := utils.GetLogger(ctx)

	qMin, qMax, num := opts.resolve()
	levels, err := Levels(qMin, qMax, num)
	if err != nil {
		logger.Error("invalid quantile level grid", zap.Float64("qMin", qMin),
			zap.Float64("qMax", qMax), zap.Int("num", num), zap.Error(err))
		return nil, err
	}

	dim, err := input.Validate()
	if err != nil {
		logger.Error("invalid residual input", zap.Error(err))
		return nil, err
	}

	theoretical := Theoretical(levels)

	sets := input.Sets()
	curves := make([][]model.QuantileCurve, len(sets))
	for m, ms := range sets {
		row := make([]model.QuantileCurve, dim)
		for e := 0; e < dim; e++ {
			empirical, err := Empirical(ms.Set[e], levels)
			if err != nil {
				logger.Error("empirical quantiles failed", zap.String("model", ms.Label),
					zap.Int("eventType", e), zap.Error(err))
				return nil, err
			}
			row[e] = model.QuantileCurve{
				Theoretical: theoretical,
				Empirical:   empirical,
			}
		}
		curves[m] = row
	}

	return &model.QuantileCurves{
		Levels: levels,
		Curves: curves,
		Labels: input.Labels(),
	}, nil
}
