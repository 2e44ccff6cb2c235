package samplepath

import (
	"context"

	"github.com/quantpoints/hawkes-diagnostics/common"
	"github.com/quantpoints/hawkes-diagnostics/model"
	"github.com/quantpoints/hawkes-diagnostics/utils"
	"go.uber.org/zap"
)

// IntensityEvaluator computes fitted intensities at the requested times. The
// full event record is passed through because intensities at the window start
// depend on events before it. Implementations live with the fitted model, not
// in this package.
type IntensityEvaluator interface {
	IntensitiesAt(ctx context.Context, computeTimes, times []float64,
		events, states []int) (aggregatedTimes []float64, intensities [][]float64, err error)
}

// Build windows the event record to [tStart, tEnd] and evaluates the fitted
// intensities on a grid of num points over the window. num <= 0 selects the
// default grid size.
func Build(ctx context.Context, eval IntensityEvaluator, times []float64,
	events, states []int, tStart, tEnd float64, num int) (*model.SamplePathData, error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if err := recover(); err != nil {
			logger.Error("Build recover panic error!", zap.Any("err", err),
				zap.String("panic info", utils.GetPanicInfo()))
		}
	}()

	grid, err := ComputeGrid(tStart, tEnd, num)
	if err != nil {
		logger.Error("invalid compute grid", zap.Float64("tStart", tStart),
			zap.Float64("tEnd", tEnd), zap.Int("num", num), zap.Error(err))
		return nil, err
	}

	aggTimes, intensities, err := eval.IntensitiesAt(ctx, grid, times, events, states)
	if err != nil {
		logger.Error("intensity evaluation failed", zap.Error(err))
		return nil, err
	}
	for _, series := range intensities {
		if len(series) != len(aggTimes) {
			logger.Error("intensity series length mismatch",
				zap.Int("times", len(aggTimes)), zap.Int("series", len(series)))
			return nil, common.ErrorShapeMismatch
		}
	}

	window, err := Window(times, events, states, tStart, tEnd)
	if err != nil {
		logger.Error("windowing failed", zap.Error(err))
		return nil, err
	}

	return &model.SamplePathData{
		Window:      window,
		Times:       aggTimes,
		Intensities: intensities,
	}, nil
}
