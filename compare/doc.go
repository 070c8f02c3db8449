// Package compare scores how faithfully a coarse D8 raster reproduces the
// channel paths traced on a fine raster.
//
// For each drainage.PathRecord produced on the fine raster:
//
//  1. The coarse flow path is traced from the path's terminus (headwater),
//     downscaled by the integer resolution ratio, following coarse codes
//     until NoFlow, NoData, the raster edge or a revisited cell. Every
//     coarse cell passed is a member of the generalised path.
//  2. The fine path is walked downstream from the terminus to the origin
//     (outlet). Each fine cell is downscaled and checked for membership.
//  3. score = (1 + hits) / (1 + steps). The leading 1 counts the start
//     cell as a hit, so a single-cell path scores 1.
//
// Membership modes:
//
//   - CoarseCells (default): the start cell is stored at terminus/ratio,
//     the same space every later lookup uses.
//   - LegacyDoubleDownscale: the start cell is stored at
//     terminus/ratio/ratio, reproducing the historical scorer. The two
//     modes agree whenever ratio == 1.
//
// Membership is a flat bitset over the coarse raster, cleared per path.
//
// Complexity: O(P·(Lf + Lc)) time for P paths of fine length Lf and coarse
// length Lc; O(coarse cells) memory.
//
// Errors:
//
//   - ErrNilGrid:         nil fine or coarse raster.
//   - ErrRatioMismatch:   fine dimensions are not one integer multiple of coarse.
//   - ErrPathOutOfBounds: a record names a cell outside the fine raster.
//   - ErrPathNotReached:  the fine walk cannot reach the record's origin.
//   - d8.ErrInvalidCode (wrapped): a byte outside the D8 set.
//   - ErrNoScores, ErrWeightsLength: Summarize inputs.
package compare
