package kernels

import (
	"context"
	"fmt"
	"math"

	"github.com/quantpoints/hawkes-diagnostics/common"
	"github.com/quantpoints/hawkes-diagnostics/model"
	"github.com/quantpoints/hawkes-diagnostics/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

// Options control the evaluation grid and display ceiling. Zero values are
// derived from the decay-rate extrema: tMax is the time at which the
// slowest-decaying kernel reaches 90% of its asymptote, tMin the time at
// which the fastest reaches 10%, and YMax the largest asymptotic level with
// 5% headroom.
type Options struct {
	TMin           float64
	TMax           float64
	NumberOfPoints int
	YMax           float64
}

// EvaluateDecayCurves evaluates the cumulative exponential-kernel response
//
//	y(t) = a/b * (1 - exp(-b*t))
//
// for every (source event type, state, target event type) triple on a
// log-spaced time grid shared across all triples. impact and decay are
// indexed [e1][x][e2] and must agree in shape; every decay rate must be
// strictly positive.
func EvaluateDecayCurves(ctx context.Context, impact, decay [][][]float64, opts Options) (*model.DecayCurves, error) {
	logger := utils.GetLogger(ctx)

	nEvents, nStates, err := tensorShape(impact)
	if err != nil {
		logger.Error("invalid impact tensor", zap.Error(err))
		return nil, err
	}
	dEvents, dStates, err := tensorShape(decay)
	if err != nil {
		logger.Error("invalid decay tensor", zap.Error(err))
		return nil, err
	}
	if nEvents != dEvents || nStates != dStates {
		err := fmt.Errorf("%w: impact is %dx%dx%d, decay is %dx%dx%d",
			common.ErrorShapeMismatch, nEvents, nStates, nEvents, dEvents, dStates, dEvents)
		logger.Error("impact and decay tensors disagree", zap.Error(err))
		return nil, err
	}

	betaMin, betaMax := math.Inf(1), math.Inf(-1)
	for _, byState := range decay {
		for _, row := range byState {
			for _, b := range row {
				if b <= 0 {
					logger.Error("non-positive decay rate", zap.Float64("decay", b))
					return nil, common.ErrorInvalidInput
				}
				betaMin = math.Min(betaMin, b)
				betaMax = math.Max(betaMax, b)
			}
		}
	}

	tMin, tMax := opts.TMin, opts.TMax
	if tMax == 0 {
		tMax = -math.Log(slowTailFraction) / betaMin
	}
	if tMin == 0 {
		tMin = -math.Log(fastHeadFraction) / betaMax
	}
	if tMin <= 0 || tMin >= tMax {
		logger.Error("invalid time bounds", zap.Float64("tMin", tMin), zap.Float64("tMax", tMax))
		return nil, common.ErrorInvalidInput
	}

	num := opts.NumberOfPoints
	if num == 0 {
		num = DefaultNumberOfPoints
	}
	if num < 2 {
		return nil, common.ErrorInvalidInput
	}

	orderMin := math.Floor(math.Log10(tMin))
	orderMax := math.Ceil(math.Log10(tMax))
	times := floats.LogSpan(make([]float64, num), math.Pow(10, orderMin), math.Pow(10, orderMax))

	yMax := opts.YMax
	values := make([][][][]float64, nEvents)
	for e1 := range impact {
		values[e1] = make([][][]float64, nStates)
		for x := range impact[e1] {
			values[e1][x] = make([][]float64, nEvents)
			for e2 := range impact[e1][x] {
				a, b := impact[e1][x][e2], decay[e1][x][e2]
				curve := make([]float64, num)
				for k, t := range times {
					curve[k] = a / b * (1 - math.Exp(-b*t))
				}
				values[e1][x][e2] = curve
				if opts.YMax == 0 {
					yMax = math.Max(yMax, a/b*displayHeadroom)
				}
			}
		}
	}

	return &model.DecayCurves{
		Times:  times,
		Values: values,
		TMin:   tMin,
		TMax:   tMax,
		YMax:   yMax,
	}, nil
}

// tensorShape validates that t is a non-empty rectangular [e1][x][e2] tensor
// with matching source and target event-type counts, and returns its
// (event types, states) dimensions.
func tensorShape(t [][][]float64) (int, int, error) {
	nEvents := len(t)
	if nEvents == 0 || len(t[0]) == 0 {
		return 0, 0, common.ErrorInvalidInput
	}
	nStates := len(t[0])
	for _, byState := range t {
		if len(byState) != nStates {
			return 0, 0, common.ErrorShapeMismatch
		}
		for _, row := range byState {
			if len(row) != nEvents {
				return 0, 0, common.ErrorShapeMismatch
			}
		}
	}
	return nEvents, nStates, nil
}
