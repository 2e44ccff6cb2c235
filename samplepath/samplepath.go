package samplepath

import (
	"sort"

	"github.com/quantpoints/hawkes-diagnostics/common"
	"github.com/quantpoints/hawkes-diagnostics/model"
	"gonum.org/v1/gonum/floats"
)

const DefaultNumberOfPoints = 1000

// ComputeGrid returns num evaluation times linearly spaced over
// [tStart, tEnd]. num <= 0 selects the default of 1000 points.
func ComputeGrid(tStart, tEnd float64, num int) ([]float64, error) {
	if tStart >= tEnd {
		return nil, common.ErrorInvalidInput
	}
	if num <= 0 {
		num = DefaultNumberOfPoints
	}
	if num < 2 {
		return nil, common.ErrorInvalidInput
	}
	return floats.Span(make([]float64, num), tStart, tEnd), nil
}

// Window restricts an event record to [tStart, tEnd]. times must be sorted
// ascending and aligned with events and states. The state in force when the
// window opens is taken from the last event before tStart, 0 if there is
// none, and the returned step series is padded so a post-step plot spans the
// whole window.
func Window(times []float64, events, states []int, tStart, tEnd float64) (*model.PathWindow, error) {
	if tStart >= tEnd || len(times) != len(events) || len(times) != len(states) {
		return nil, common.ErrorInvalidInput
	}
	if !sort.Float64sAreSorted(times) {
		return nil, common.ErrorInvalidInput
	}

	idxStart := sort.SearchFloat64s(times, tStart)
	idxEnd := sort.Search(len(times), func(i int) bool { return times[i] > tEnd })

	initialState := 0
	if idxStart > 0 {
		initialState = states[idxStart-1]
	}

	wTimes := append([]float64(nil), times[idxStart:idxEnd]...)
	wEvents := append([]int(nil), events[idxStart:idxEnd]...)
	wStates := append([]int(nil), states[idxStart:idxEnd]...)

	stepTimes := make([]float64, 0, len(wTimes)+2)
	stepTimes = append(stepTimes, tStart)
	stepTimes = append(stepTimes, wTimes...)
	stepTimes = append(stepTimes, tEnd)

	stepStates := make([]int, 0, len(wStates)+2)
	stepStates = append(stepStates, initialState)
	stepStates = append(stepStates, wStates...)
	stepStates = append(stepStates, stepStates[len(stepStates)-1])

	return &model.PathWindow{
		TimeStart:    tStart,
		TimeEnd:      tEnd,
		InitialState: initialState,
		Times:        wTimes,
		Events:       wEvents,
		States:       wStates,
		StepTimes:    stepTimes,
		StepStates:   stepStates,
	}, nil
}
