package model

// PathWindow is an event record restricted to a time window, plus the padded
// step series used to draw the state trajectory across the whole window.
type PathWindow struct {
	TimeStart float64
	TimeEnd   float64

	// State in force when the window opens: the state set by the last event
	// before TimeStart, or 0 when no such event exists.
	InitialState int

	Times  []float64
	Events []int
	States []int

	// Step series: Times prefixed with TimeStart and suffixed with TimeEnd,
	// States prefixed with InitialState and its last value repeated, so a
	// post-step plot reaches the window end.
	StepTimes  []float64
	StepStates []int
}

// SamplePathData bundles a windowed event record with the fitted intensities
// evaluated over the window.
type SamplePathData struct {
	Window *PathWindow

	// Times are the aggregated evaluation times returned by the intensity
	// evaluator; Intensities[n] is the intensity of event type n at those
	// times.
	Times       []float64
	Intensities [][]float64
}
