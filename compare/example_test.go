package compare_test

import (
	"fmt"

	"github.com/katalvlaran/fdcomp/compare"
	"github.com/katalvlaran/fdcomp/d8"
	"github.com/katalvlaran/fdcomp/drainage"
	"github.com/katalvlaran/fdcomp/grid"
)

// ExampleCompare traces a channel on a 4×4 raster and scores it against a
// 2×2 generalisation that bends away after the first coarse cell.
func ExampleCompare() {
	x := d8.NoData
	fine, _ := grid.From2D([][]d8.Code{
		{x, x, x, x},
		{x, x, x, x},
		{d8.East, d8.East, d8.East, d8.NoFlow},
		{x, x, x, x},
	})
	acc, _ := grid.From2D([][]uint32{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{1, 2, 3, 4},
		{0, 0, 0, 0},
	})
	coarse, _ := grid.From2D([][]d8.Code{
		{d8.NoFlow, x},
		{d8.North, x},
	})

	tree, _ := drainage.BuildTree(acc, fine)
	scores, err := compare.Compare(fine, coarse, tree.Paths)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("paths=%d score=%.2f\n", len(scores), scores[0])
	// Output: paths=1 score=0.50
}
