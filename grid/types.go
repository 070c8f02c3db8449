package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates nested rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrSizeMismatch indicates a flat buffer that does not hold Rows×Cols values.
	ErrSizeMismatch = errors.New("grid: buffer length does not match dimensions")
)

// Value lists the cell types a Grid may hold.
type Value interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int8 | ~int16 | ~int32 | ~int64 |
		~int | ~float32 | ~float64
}

// Cell addresses a single raster cell.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Shape is anything with raster dimensions.
type Shape interface {
	Dims() (rows, cols int)
}

// Grid is a rectangular raster stored row-major in Data.
// Rows and Cols are fixed after construction.
type Grid[T Value] struct {
	Rows, Cols int
	Data       []T
}
