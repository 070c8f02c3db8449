package grid

import "fmt"

// New allocates a zero-filled Rows×Cols grid.
// Returns ErrEmptyGrid if either dimension is not positive.
func New[T Value](rows, cols int) (*Grid[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid[T]{Rows: rows, Cols: cols, Data: make([]T, rows*cols)}, nil
}

// From2D builds a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later mutation of values has no effect.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
func From2D[T Value](values [][]T) (*Grid[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid[T]{Rows: h, Cols: w, Data: make([]T, h*w)}
	for r := 0; r < h; r++ {
		copy(g.Data[r*w:(r+1)*w], values[r])
	}

	return g, nil
}

// FromSlice builds a Grid from a flat row-major buffer, copying it.
func FromSlice[T Value](rows, cols int, data []T) (*Grid[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: got %d values for %d×%d", ErrSizeMismatch, len(data), rows, cols)
	}
	g := &Grid[T]{Rows: rows, Cols: cols, Data: make([]T, len(data))}
	copy(g.Data, data)

	return g, nil
}

// Dims returns the grid dimensions.
func (g *Grid[T]) Dims() (rows, cols int) {
	return g.Rows, g.Cols
}

// Len returns Rows×Cols.
func (g *Grid[T]) Len() int {
	return g.Rows * g.Cols
}

// InBounds reports whether (row,col) lies within the grid.
func (g *Grid[T]) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Index maps (row,col) to a row-major index: row*Cols + col.
func (g *Grid[T]) Index(row, col int) int {
	return row*g.Cols + col
}

// Coordinate converts a row-major index back to a Cell.
func (g *Grid[T]) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.Cols, Col: idx % g.Cols}
}

// At returns the value at (row,col). It panics when out of bounds,
// like a slice index.
func (g *Grid[T]) At(row, col int) T {
	return g.Data[row*g.Cols+col]
}

// Set stores v at (row,col).
func (g *Grid[T]) Set(row, col int, v T) {
	g.Data[row*g.Cols+col] = v
}

// To2D returns a freshly allocated nested copy of the grid.
func (g *Grid[T]) To2D() [][]T {
	out := make([][]T, g.Rows)
	for r := range out {
		out[r] = make([]T, g.Cols)
		copy(out[r], g.Data[r*g.Cols:(r+1)*g.Cols])
	}

	return out
}

// Clone returns a deep copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	c := &Grid[T]{Rows: g.Rows, Cols: g.Cols, Data: make([]T, len(g.Data))}
	copy(c.Data, g.Data)

	return c
}

// SameShape reports whether a and b have identical dimensions.
func SameShape(a, b Shape) bool {
	ar, ac := a.Dims()
	br, bc := b.Dims()

	return ar == br && ac == bc
}
