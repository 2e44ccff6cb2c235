package heatmap

import (
	"fmt"
	"math"

	"github.com/quantpoints/hawkes-diagnostics/common"
	"github.com/quantpoints/hawkes-diagnostics/model"
)

// Options control annotation formatting. UseTeX emits the labels as TeX math
// for figures rendered with usetex.
type Options struct {
	UseTeX bool
}

// Annotation formats a probability as the percentage label printed inside a
// heatmap cell: "0%" for exactly zero, "<1%" below one percent, otherwise
// the integer floor of 100*p.
func Annotation(p float64, opts Options) (string, error) {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return "", common.ErrorInvalidInput
	}
	switch {
	case p == 0:
		if opts.UseTeX {
			return `$0$\%`, nil
		}
		return "0%", nil
	case p < 0.01:
		if opts.UseTeX {
			return `$<1$\%`, nil
		}
		return "<1%", nil
	default:
		a := int(math.Floor(100 * p))
		if opts.UseTeX {
			return fmt.Sprintf(`$%d$\%%`, a), nil
		}
		return fmt.Sprintf("%d%%", a), nil
	}
}

// DistributionMap annotates a 2-D probability matrix, e.g. the joint
// distribution of events and states.
func DistributionMap(probabilities [][]float64, opts Options) (*model.HeatmapData, error) {
	rows := len(probabilities)
	if rows == 0 || len(probabilities[0]) == 0 {
		return nil, common.ErrorInvalidInput
	}
	cols := len(probabilities[0])

	values := make([][]float64, rows)
	annotations := make([][]string, rows)
	for i, row := range probabilities {
		if len(row) != cols {
			return nil, common.ErrorShapeMismatch
		}
		values[i] = append([]float64(nil), row...)
		annotations[i] = make([]string, cols)
		for j, p := range row {
			s, err := Annotation(p, opts)
			if err != nil {
				return nil, err
			}
			annotations[i][j] = s
		}
	}
	return &model.HeatmapData{Values: values, Annotations: annotations}, nil
}

// TransitionMaps slices a transition-probability tensor indexed
// [previous state][event type][next state] into one square states-by-states
// map per event type, each with its annotation matrix.
func TransitionMaps(probabilities [][][]float64, opts Options) ([]*model.HeatmapData, error) {
	nStates := len(probabilities)
	if nStates == 0 || len(probabilities[0]) == 0 {
		return nil, common.ErrorInvalidInput
	}
	nEvents := len(probabilities[0])
	for _, byEvent := range probabilities {
		if len(byEvent) != nEvents {
			return nil, common.ErrorShapeMismatch
		}
		for _, row := range byEvent {
			if len(row) != nStates {
				return nil, common.ErrorShapeMismatch
			}
		}
	}

	maps := make([]*model.HeatmapData, nEvents)
	for e := 0; e < nEvents; e++ {
		slice := make([][]float64, nStates)
		for x1 := 0; x1 < nStates; x1++ {
			slice[x1] = probabilities[x1][e]
		}
		data, err := DistributionMap(slice, opts)
		if err != nil {
			return nil, err
		}
		maps[e] = data
	}
	return maps, nil
}
