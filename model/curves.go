package model

// QuantileCurve pairs theoretical and empirical quantiles over one quantile
// level grid. Both sequences share the grid's indexing.
type QuantileCurve struct {
	Theoretical []float64
	Empirical   []float64
}

// QuantileCurves is the output of the QQ builder: one curve per
// (model, event type) pair. Curves[m][e] belongs to model m and event type e;
// a single-model input produces one row.
type QuantileCurves struct {
	Levels []float64
	Curves [][]QuantileCurve
	Labels []string
}

// CorrelogramSet holds the cross-correlation sequences for every ordered pair
// of event types. Sequences[m][i][j][k] is the lag-k correlation between the
// residuals of event types i and j under model m; self pairs (i == j) are
// autocorrelations.
type CorrelogramSet struct {
	NLags     int
	Sequences [][][][]float64
	Labels    []string
}

// DecayCurves is the output of the kernel evaluator. Values[e1][x][e2][k]
// pairs with Times[k]. TMin, TMax and YMax are the derived display bounds the
// rendering layer needs to keep axes consistent with the curves.
type DecayCurves struct {
	Times  []float64
	Values [][][][]float64
	TMin   float64
	TMax   float64
	YMax   float64
}

// HeatmapData is one matrix of probabilities together with its percentage
// annotation labels, both indexed [row][col].
type HeatmapData struct {
	Values      [][]float64
	Annotations [][]string
}
