// Package drainage partitions a D8 flow-direction raster into main-stem
// channel paths.
//
// Overview:
//
//   - Every cell that is not NoData seeds a max-priority frontier keyed by
//     its flow accumulation.
//   - Cells are popped highest-accumulation first. A popped cell that is
//     still unlabelled opens a new path: it becomes the path's origin and
//     the path is traced upstream, always stepping to the unlabelled
//     inflowing neighbour with the largest accumulation, until a headwater
//     (no inflowing neighbour), a zero-accumulation cell or a NoFlow cell
//     is reached. That last cell is the path's terminus.
//   - Because the strongest flow reaches every junction first, paths follow
//     the dominant tributary, giving a main-stem decomposition that does
//     not depend on raster scan order.
//
// Ordering (externally visible through path ids):
//
//   - Frontier: accumulation descending, then row-major index ascending.
//   - Inflow choice among equal accumulations: the neighbour examined last
//     in scan order (E, SE, S, SW, W, NW, N, NE) wins.
//
// Outputs:
//
//   - Labels: a grid of path ids (1-based); 0 marks cells never reached
//     (NoData cells). Labels are written once and never overwritten.
//   - Paths: one PathRecord per id, in id order, with origin, terminus,
//     cell count, origin accumulation and, when an Affine transform is
//     supplied, the great-circle path length in metres.
//
// Complexity:
//
//   - Time:   O(N log N) for the frontier plus O(8N) for the traces,
//     N = raster cells.
//   - Memory: O(N).
//
// Errors:
//
//   - ErrNilGrid:       a nil input grid.
//   - ErrShapeMismatch: accumulation and direction dimensions differ.
//   - d8.ErrInvalidCode (wrapped): a direction byte outside the D8 set.
//   - ErrTableColumns:  TableFromRows given fewer than 4 columns.
//   - ctx.Err():        the context from WithContext was cancelled.
//
// No partial output is returned on error.
package drainage
