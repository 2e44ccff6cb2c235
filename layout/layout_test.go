package layout

import (
	"testing"

	"github.com/quantpoints/hawkes-diagnostics/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		shape   *Grid
		dim     int
		want    Grid
		wantErr bool
	}{
		{name: "default single row", shape: nil, dim: 4, want: Grid{Rows: 1, Cols: 4}},
		{name: "explicit shape", shape: &Grid{Rows: 2, Cols: 2}, dim: 4, want: Grid{Rows: 2, Cols: 2}},
		{name: "oversized grid", shape: &Grid{Rows: 2, Cols: 2}, dim: 3, want: Grid{Rows: 2, Cols: 2}},
		{name: "undersized grid", shape: &Grid{Rows: 1, Cols: 2}, dim: 3, wantErr: true},
		{name: "non-positive rows", shape: &Grid{Rows: 0, Cols: 3}, dim: 3, wantErr: true},
		{name: "non-positive dim", shape: nil, dim: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.shape, tt.dim)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrorInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIndexAndPosition(t *testing.T) {
	g := Grid{Rows: 2, Cols: 3}

	assert.Equal(t, 6, g.Cells())
	assert.Equal(t, 0, g.Index(0, 0))
	assert.Equal(t, 2, g.Index(0, 2))
	assert.Equal(t, 3, g.Index(1, 0))
	assert.Equal(t, 5, g.Index(1, 2))

	for n := 0; n < g.Cells(); n++ {
		i, j := g.Position(n)
		assert.Equal(t, n, g.Index(i, j))
	}
}

func TestContains(t *testing.T) {
	// three plots on a 2x2 grid leave the last cell empty
	assert.True(t, Contains(2, 3))
	assert.False(t, Contains(3, 3))
	assert.False(t, Contains(-1, 3))
}
