package drainage_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fdcomp/d8"
	"github.com/katalvlaran/fdcomp/grid"
)

const X = d8.NoData

func dirGrid(t testing.TB, rows [][]d8.Code) *grid.Grid[d8.Code] {
	t.Helper()
	g, err := grid.From2D(rows)
	require.NoError(t, err)

	return g
}

func accGrid(t testing.TB, rows [][]uint32) *grid.Grid[uint32] {
	t.Helper()
	g, err := grid.From2D(rows)
	require.NoError(t, err)

	return g
}

// randomRaster fills an n×m raster with arbitrary valid codes (about 10%
// NoData, 5% NoFlow) and arbitrary accumulations.
func randomRaster(n, m int, seed int64) (*grid.Grid[uint32], *grid.Grid[d8.Code]) {
	rng := rand.New(rand.NewSource(seed))
	acc, _ := grid.New[uint32](n, m)
	dir, _ := grid.New[d8.Code](n, m)
	for i := range dir.Data {
		switch p := rng.Intn(100); {
		case p < 10:
			dir.Data[i] = d8.NoData
		case p < 15:
			dir.Data[i] = d8.NoFlow
		default:
			dir.Data[i] = d8.Neighbors[rng.Intn(8)]
		}
		acc.Data[i] = uint32(rng.Intn(50))
	}

	return acc, dir
}
