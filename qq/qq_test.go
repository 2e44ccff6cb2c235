package qq

import (
	"context"
	"math"
	"testing"

	"github.com/quantpoints/hawkes-diagnostics/common"
	"github.com/quantpoints/hawkes-diagnostics/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestLevels(t *testing.T) {
	tests := []struct {
		name    string
		qMin    float64
		qMax    float64
		num     int
		wantErr bool
	}{
		{name: "default range", qMin: 0.01, qMax: 0.99, num: 100},
		{name: "two levels", qMin: 0.1, qMax: 0.9, num: 2},
		{name: "zero count", qMin: 0.01, qMax: 0.99, num: 0, wantErr: true},
		{name: "negative count", qMin: 0.01, qMax: 0.99, num: -1, wantErr: true},
		{name: "qMin at zero", qMin: 0, qMax: 0.99, num: 10, wantErr: true},
		{name: "qMax at one", qMin: 0.01, qMax: 1, num: 10, wantErr: true},
		{name: "inverted range", qMin: 0.9, qMax: 0.1, num: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			levels, err := Levels(tt.qMin, tt.qMax, tt.num)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrorInvalidInput)
				return
			}
			require.NoError(t, err)
			require.Len(t, levels, tt.num)
			assert.Equal(t, tt.qMin, levels[0])
			assert.InDelta(t, tt.qMax, levels[len(levels)-1], 1e-12)
			for i := 1; i < len(levels); i++ {
				assert.Greater(t, levels[i], levels[i-1])
			}
		})
	}
}

func TestTheoreticalExponentialQuantiles(t *testing.T) {
	levels, err := Levels(0.01, 0.99, 50)
	require.NoError(t, err)

	theoretical := Theoretical(levels)
	require.Len(t, theoretical, len(levels))

	for i, q := range levels {
		assert.InDelta(t, -math.Log(1-q), theoretical[i], 1e-12)
	}
	// strictly increasing in q, approaching 0 as q does
	for i := 1; i < len(theoretical); i++ {
		assert.Greater(t, theoretical[i], theoretical[i-1])
	}
	assert.InDelta(t, 0, Theoretical([]float64{1e-12})[0], 1e-9)
}

func TestEmpiricalPercentiles(t *testing.T) {
	residuals := []float64{5, 3, 1, 4, 2} // unsorted on purpose

	tests := []struct {
		q    float64
		want float64
	}{
		{q: 0.5, want: 3},
		{q: 0.25, want: 2},
		{q: 0.1, want: 1.4},
		{q: 0.75, want: 4},
		{q: 0.99, want: 4.96},
	}

	for _, tt := range tests {
		got, err := Empirical(residuals, []float64{tt.q})
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got[0], 1e-12)
	}
}

func TestEmpiricalEmptySequence(t *testing.T) {
	_, err := Empirical(nil, []float64{0.5})
	require.ErrorIs(t, err, common.ErrorInvalidInput)
}

func TestBuildCurvesSingleModel(t *testing.T) {
	input := model.SingleModel(model.ResidualSet{
		{0.5, 1.2, 0.1, 2.4, 0.9},
		{1.1, 0.3, 0.8, 1.9, 0.2, 0.6},
	})

	curves, err := BuildCurves(context.Background(), input, Options{})
	require.NoError(t, err)

	require.Len(t, curves.Curves, 1)
	require.Len(t, curves.Curves[0], 2)
	require.Len(t, curves.Levels, DefaultNumberOfQuantiles)
	for _, c := range curves.Curves[0] {
		assert.Len(t, c.Theoretical, DefaultNumberOfQuantiles)
		assert.Len(t, c.Empirical, DefaultNumberOfQuantiles)
	}
}

func TestBuildCurvesSharedTheoretical(t *testing.T) {
	input := model.MultiModel([]model.ModelResiduals{
		{Label: "model A", Set: model.ResidualSet{{0.1, 0.5, 1.0}}},
		{Label: "model B", Set: model.ResidualSet{{0.2, 0.7, 1.4, 2.1}}},
	})

	curves, err := BuildCurves(context.Background(), input, Options{NumberOfQuantiles: 10})
	require.NoError(t, err)

	require.Len(t, curves.Curves, 2)
	assert.Equal(t, []string{"model A", "model B"}, curves.Labels)
	// theoretical quantiles do not depend on the model
	assert.Equal(t, curves.Curves[0][0].Theoretical, curves.Curves[1][0].Theoretical)
}

func TestBuildCurvesShapeMismatch(t *testing.T) {
	input := model.MultiModel([]model.ModelResiduals{
		{Label: "A", Set: model.ResidualSet{{1, 2}, {3, 4}}},
		{Label: "B", Set: model.ResidualSet{{1, 2}}},
	})

	_, err := BuildCurves(context.Background(), input, Options{})
	require.ErrorIs(t, err, common.ErrorShapeMismatch)
}

func TestBuildCurvesEmptyEventType(t *testing.T) {
	input := model.SingleModel(model.ResidualSet{{1, 2, 3}, {}})

	_, err := BuildCurves(context.Background(), input, Options{})
	require.ErrorIs(t, err, common.ErrorInvalidInput)
}

// Residuals drawn from a standard exponential should track the theoretical
// curve within sampling noise.
func TestExponentialSampleTracksTheory(t *testing.T) {
	dist := distuv.Exponential{Rate: 1, Src: rand.NewSource(7)}
	sample := make([]float64, 20000)
	for i := range sample {
		sample[i] = dist.Rand()
	}

	input := model.SingleModel(model.ResidualSet{sample})
	curves, err := BuildCurves(context.Background(), input, Options{
		QMin: 0.05, QMax: 0.95, NumberOfQuantiles: 50,
	})
	require.NoError(t, err)

	c := curves.Curves[0][0]
	for k := range c.Theoretical {
		assert.InDelta(t, c.Theoretical[k], c.Empirical[k], 0.2,
			"quantile level %v", curves.Levels[k])
	}
}
