package drainage_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fdcomp/d8"
	"github.com/katalvlaran/fdcomp/drainage"
	"github.com/katalvlaran/fdcomp/geodesy"
	"github.com/katalvlaran/fdcomp/grid"
)

// TestBuildTree_StraightLine traces a 3-cell channel into an outlet.
//
//	X X X        0 0 0
//	E E .   acc  1 2 3
//	X X X        0 0 0
func TestBuildTree_StraightLine(t *testing.T) {
	dir := dirGrid(t, [][]d8.Code{
		{X, X, X},
		{d8.East, d8.East, d8.NoFlow},
		{X, X, X},
	})
	acc := accGrid(t, [][]uint32{
		{0, 0, 0},
		{1, 2, 3},
		{0, 0, 0},
	})

	tree, err := drainage.BuildTree(acc, dir)
	require.NoError(t, err)
	require.Len(t, tree.Paths, 1)

	p := tree.Paths[0]
	assert.Equal(t, grid.Cell{Row: 1, Col: 2}, p.Origin, "origin is the outlet")
	assert.Equal(t, grid.Cell{Row: 1, Col: 0}, p.Terminus, "terminus is the source")
	assert.Equal(t, uint32(3), p.Cells)
	assert.Equal(t, uint32(3), p.Accumulation)
	assert.Zero(t, p.Length, "no transform, no length")

	assert.Equal(t, [][]uint32{{0, 0, 0}, {1, 1, 1}, {0, 0, 0}}, tree.Labels.To2D())
}

// TestBuildTree_TwoSinks checks isolated sinks on a NoData background.
func TestBuildTree_TwoSinks(t *testing.T) {
	dir := dirGrid(t, [][]d8.Code{
		{d8.NoFlow, X, X},
		{X, X, X},
		{X, X, d8.NoFlow},
	})
	acc := accGrid(t, [][]uint32{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})

	tree, err := drainage.BuildTree(acc, dir, drainage.WithTransform(geodesy.Affine{1, 0, 0, 0, -1, 0}))
	require.NoError(t, err)
	require.Len(t, tree.Paths, 2)

	// equal accumulations pop in row-major order
	assert.Equal(t, grid.Cell{Row: 0, Col: 0}, tree.Paths[0].Origin)
	assert.Equal(t, grid.Cell{Row: 2, Col: 2}, tree.Paths[1].Origin)
	for _, p := range tree.Paths {
		assert.Equal(t, uint32(1), p.Cells)
		assert.Equal(t, p.Origin, p.Terminus)
		assert.Zero(t, p.Length)
	}
	assert.Equal(t, uint32(1), tree.Labels.At(0, 0))
	assert.Equal(t, uint32(2), tree.Labels.At(2, 2))
	assert.Zero(t, tree.Labels.At(1, 1), "NoData cells stay unreached")
}

// TestBuildTree_DominantTributary checks that the main stem follows the
// highest-accumulation inflow and side branches become their own paths.
//
//	X S X        0 1 0
//	SE S SW acc  1 2 1
//	X . X        0 5 0
func TestBuildTree_DominantTributary(t *testing.T) {
	dir := dirGrid(t, [][]d8.Code{
		{X, d8.South, X},
		{d8.SouthEast, d8.South, d8.SouthWest},
		{X, d8.NoFlow, X},
	})
	acc := accGrid(t, [][]uint32{
		{0, 1, 0},
		{1, 2, 1},
		{0, 5, 0},
	})

	tree, err := drainage.BuildTree(acc, dir)
	require.NoError(t, err)
	require.Len(t, tree.Paths, 3)

	main := tree.Paths[0]
	assert.Equal(t, grid.Cell{Row: 2, Col: 1}, main.Origin)
	assert.Equal(t, grid.Cell{Row: 0, Col: 1}, main.Terminus)
	assert.Equal(t, uint32(3), main.Cells)
	assert.Equal(t, uint32(5), main.Accumulation)

	assert.Equal(t, grid.Cell{Row: 1, Col: 0}, tree.Paths[1].Origin)
	assert.Equal(t, grid.Cell{Row: 1, Col: 2}, tree.Paths[2].Origin)
	assert.Equal(t, [][]uint32{{0, 1, 0}, {2, 1, 3}, {0, 1, 0}}, tree.Labels.To2D())
}

// TestBuildTree_InflowTieLastWins pins the inflow tie-break: of two equal
// inflows the one scanned later (W after E) continues the path.
func TestBuildTree_InflowTieLastWins(t *testing.T) {
	dir := dirGrid(t, [][]d8.Code{{d8.East, d8.NoFlow, d8.West}})
	acc := accGrid(t, [][]uint32{{1, 3, 1}})

	tree, err := drainage.BuildTree(acc, dir)
	require.NoError(t, err)
	require.Len(t, tree.Paths, 2)
	assert.Equal(t, grid.Cell{Row: 0, Col: 0}, tree.Paths[0].Terminus)
	assert.Equal(t, grid.Cell{Row: 0, Col: 2}, tree.Paths[1].Origin)
	assert.Equal(t, [][]uint32{{1, 1, 2}}, tree.Labels.To2D())
}

// TestBuildTree_ZeroAccumulationStops ends a trace on a zero-accumulation cell.
func TestBuildTree_ZeroAccumulationStops(t *testing.T) {
	dir := dirGrid(t, [][]d8.Code{{d8.East, d8.East, d8.NoFlow}})
	acc := accGrid(t, [][]uint32{{1, 0, 3}})

	tree, err := drainage.BuildTree(acc, dir)
	require.NoError(t, err)
	require.Len(t, tree.Paths, 2)
	assert.Equal(t, grid.Cell{Row: 0, Col: 1}, tree.Paths[0].Terminus)
	assert.Equal(t, uint32(2), tree.Paths[0].Cells)
	assert.Equal(t, [][]uint32{{2, 1, 1}}, tree.Labels.To2D())
}

// TestBuildTree_CycleTerminates feeds two cells pointing at each other;
// write-once labels stop the trace from looping.
func TestBuildTree_CycleTerminates(t *testing.T) {
	dir := dirGrid(t, [][]d8.Code{{d8.East, d8.West}})
	acc := accGrid(t, [][]uint32{{5, 5}})

	tree, err := drainage.BuildTree(acc, dir)
	require.NoError(t, err)
	require.Len(t, tree.Paths, 1)
	assert.Equal(t, uint32(2), tree.Paths[0].Cells)
	assert.Equal(t, grid.Cell{Row: 0, Col: 1}, tree.Paths[0].Terminus)
}

// TestBuildTree_Length accumulates per-step truncated great-circle lengths
// along the equator, one degree per cell.
func TestBuildTree_Length(t *testing.T) {
	dir := dirGrid(t, [][]d8.Code{{d8.East, d8.East, d8.NoFlow}})
	acc := accGrid(t, [][]uint32{{1, 2, 3}})
	a, err := geodesy.NewAffine([]float64{1, 0, 0, 0, -1, 0})
	require.NoError(t, err)

	for _, f := range []geodesy.Formula{geodesy.Vincenty, geodesy.Cosine, geodesy.S2} {
		tree, err := drainage.BuildTree(acc, dir, drainage.WithTransform(a), drainage.WithFormula(f))
		require.NoError(t, err)
		assert.Equal(t, uint32(2*111194), tree.Paths[0].Length, "formula %s", f)
	}
}

// TestBuildTree_Errors covers input validation; no output on failure.
func TestBuildTree_Errors(t *testing.T) {
	dir := dirGrid(t, [][]d8.Code{{d8.East, d8.NoFlow}})
	acc := accGrid(t, [][]uint32{{1, 2}})

	tree, err := drainage.BuildTree(nil, dir)
	assert.ErrorIs(t, err, drainage.ErrNilGrid)
	assert.Nil(t, tree)

	tree, err = drainage.BuildTree(accGrid(t, [][]uint32{{1}, {2}}), dir)
	assert.ErrorIs(t, err, drainage.ErrShapeMismatch)
	assert.Nil(t, tree)

	bad := dirGrid(t, [][]d8.Code{{d8.East, d8.Code(3)}})
	tree, err = drainage.BuildTree(acc, bad)
	assert.ErrorIs(t, err, d8.ErrInvalidCode)
	assert.Nil(t, tree)
}

// TestBuildTree_Cancelled aborts before the first path.
func TestBuildTree_Cancelled(t *testing.T) {
	acc, dir := randomRaster(20, 20, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tree, err := drainage.BuildTree(acc, dir, drainage.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, tree)
}

// TestBuildTree_PartitionProperties checks, on arbitrary rasters, that every
// non-NoData cell belongs to exactly one path, that path cell counts match
// the label grid and that repeated runs are identical.
func TestBuildTree_PartitionProperties(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		acc, dir := randomRaster(40, 30, seed)

		tree, err := drainage.BuildTree(acc, dir)
		require.NoError(t, err)

		counts := make(map[uint32]uint32)
		valid := 0
		for i, c := range dir.Data {
			l := tree.Labels.Data[i]
			if c == d8.NoData {
				assert.Zero(t, l, "NoData cell %d labelled", i)
				continue
			}
			valid++
			require.NotZero(t, l, "valid cell %d unlabelled", i)
			require.LessOrEqual(t, int(l), len(tree.Paths))
			counts[l]++
		}
		assert.Equal(t, valid, tree.Paths.TotalCells())
		for id := uint32(1); int(id) <= len(tree.Paths); id++ {
			p, ok := tree.Path(id)
			require.True(t, ok)
			assert.Equal(t, p.Cells, counts[id], "path %d", id)
			assert.Equal(t, id, tree.Labels.At(p.Origin.Row, p.Origin.Col))
			assert.Equal(t, id, tree.Labels.At(p.Terminus.Row, p.Terminus.Col))
		}

		again, err := drainage.BuildTree(acc, dir)
		require.NoError(t, err)
		assert.Equal(t, tree.Labels.Data, again.Labels.Data, "seed %d", seed)
		assert.Equal(t, tree.Paths, again.Paths, "seed %d", seed)
	}
}

// TestBuildTree_Logger checks that debug entries reach a supplied logger.
func TestBuildTree_Logger(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.DebugLevel)

	acc, dir := randomRaster(5, 5, 3)
	_, err := drainage.BuildTree(acc, dir, drainage.WithLogger(l))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "frontier seeded")
	assert.Contains(t, buf.String(), "tree built")
}
