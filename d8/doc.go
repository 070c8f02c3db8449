// Package d8 decodes Esri-style D8 flow-direction pointers.
//
// Each cell of a D8 raster stores one byte naming the neighbour its water
// drains to:
//
//	 32  64 128
//	 16   x   1
//	  8   4   2
//
// plus two sentinels: 0 (NoFlow, a sink or flat) and 255 (NoData, outside
// the analysis domain). Every other byte value is invalid and is rejected
// rather than decoded.
//
// Neighbour scan order used throughout the module is E, SE, S, SW, W, NW,
// N, NE, i.e. ascending code value.
//
// Errors:
//
//   - ErrInvalidCode: byte is neither a pointer nor a sentinel.
//   - ErrNoOutflow:   Decode called on NoFlow or NoData.
package d8
