// Package rasterio reads and writes Esri ASCII grids and converts them to
// the typed grids used by the drainage and compare packages.
//
// The format is a short keyword header followed by Rows×Cols values in
// row-major order, north row first:
//
//	ncols         4
//	nrows         3
//	xllcorner     -70.0
//	yllcorner     -10.0
//	cellsize      0.5
//	NODATA_value  255
//	1 1 2 4
//	...
//
// xllcenter/yllcenter are accepted in place of the corner keys.
package rasterio
