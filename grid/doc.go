// Package grid provides a compact, row-major 2D raster container used by
// the drainage and compare packages.
//
// What:
//
//   - Grid[T] stores Rows×Cols values of any numeric cell type in a single
//     flat slice (row-major: index = row*Cols + col).
//   - Cell is a (Row, Col) pair; Index and Coordinate convert between the
//     two addressing schemes.
//   - From2D and FromSlice validate and deep-copy caller data, so a Grid
//     never aliases memory it does not own.
//
// Why:
//
//   - Flow-direction and accumulation rasters arrive as nested slices or
//     flat buffers from outer layers; algorithms want one bounds-checked,
//     cache-friendly view.
//   - A shared Shape lets callers check that paired rasters line up before
//     any traversal starts.
//
// Complexity:
//
//   - New, From2D, FromSlice, Clone: O(R×C) time and memory.
//   - At, Set, InBounds, Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: zero rows or zero columns.
//   - ErrNonRectangular: nested rows of differing lengths.
//   - ErrSizeMismatch: flat buffer length differs from Rows×Cols.
package grid
