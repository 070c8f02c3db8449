// Package fdcomp turns D8 flow rasters into labelled drainage trees and
// measures how faithfully a coarse direction grid follows the channels of
// a fine one.
//
// What's inside?
//
//	grid/      row-major Grid[T] with shape checks and cell addressing
//	d8/        Esri D8 direction codes: decode, encode, inflow tests
//	geodesy/   affine raster transform and great-circle distances
//	           (Vincenty, law of cosines, S2)
//	drainage/  priority-driven main-stem tracing into a label grid and
//	           a path table
//	compare/   per-path agreement scores and their summary statistics
//
// The command in cmd/fdcomp wires these to Esri ASCII grids, CSV/XLSX path
// tables and PNG label previews.
//
// Quick picture (accumulation → paths):
//
//	 1  2  3  4        1  1  1  1
//	 8  7  6  5   →    1  1  1  1     one path, outlet at (1,0),
//	                                  headwater at (0,0)
//
// Every package is synchronous and keeps no global mutable state, so
// independent calls may run in parallel.
//
//	go get github.com/katalvlaran/fdcomp
package fdcomp
