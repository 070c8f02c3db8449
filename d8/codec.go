package d8

import (
	"errors"
	"fmt"
	"math/bits"
)

// Sentinel errors for direction decoding.
var (
	// ErrInvalidCode indicates a byte outside {0,1,2,4,...,128,255}.
	ErrInvalidCode = errors.New("d8: invalid direction code")
	// ErrNoOutflow indicates a sentinel code that has no downstream neighbour.
	ErrNoOutflow = errors.New("d8: code has no outflow direction")
	// ErrInvalidOffset indicates an offset that is not one of the 8 neighbours.
	ErrInvalidOffset = errors.New("d8: offset is not a D8 neighbour")
)

// Code is a single D8 pointer value.
type Code uint8

// Pointer codes in scan order, and the two sentinels.
const (
	East      Code = 1
	SouthEast Code = 2
	South     Code = 4
	SouthWest Code = 8
	West      Code = 16
	NorthWest Code = 32
	North     Code = 64
	NorthEast Code = 128

	NoFlow Code = 0
	NoData Code = 255
)

// Offset is a (row, column) displacement to a neighbouring cell.
type Offset struct {
	DRow, DCol int
}

// offsets is indexed by the bit position of a pointer code.
var offsets = [8]Offset{
	{0, 1},   // E
	{1, 1},   // SE
	{1, 0},   // S
	{1, -1},  // SW
	{0, -1},  // W
	{-1, -1}, // NW
	{-1, 0},  // N
	{-1, 1},  // NE
}

var names = [8]string{"E", "SE", "S", "SW", "W", "NW", "N", "NE"}

// Neighbors lists the 8 pointer codes in scan order.
var Neighbors = [8]Code{East, SouthEast, South, SouthWest, West, NorthWest, North, NorthEast}

// IsPointer reports whether c names one of the 8 neighbours.
func (c Code) IsPointer() bool {
	return c != 0 && c&(c-1) == 0
}

// Valid reports whether c is a pointer or one of the sentinels.
func (c Code) Valid() bool {
	return c == NoFlow || c == NoData || c.IsPointer()
}

// String names the direction, e.g. "SE", "nodata".
func (c Code) String() string {
	switch {
	case c == NoFlow:
		return "noflow"
	case c == NoData:
		return "nodata"
	case c.IsPointer():
		return names[bits.TrailingZeros8(uint8(c))]
	}

	return fmt.Sprintf("invalid(%d)", uint8(c))
}

// Index returns the scan-order position (0..7) of a pointer code.
func Index(c Code) (int, error) {
	if c.IsPointer() {
		return bits.TrailingZeros8(uint8(c)), nil
	}
	if c.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrNoOutflow, c)
	}

	return 0, fmt.Errorf("%w: %d", ErrInvalidCode, uint8(c))
}

// Decode returns the neighbour offset a pointer code points to.
func Decode(c Code) (Offset, error) {
	i, err := Index(c)
	if err != nil {
		return Offset{}, err
	}

	return offsets[i], nil
}

// FromOffset is the inverse of Decode.
func FromOffset(o Offset) (Code, error) {
	for i, off := range offsets {
		if off == o {
			return Neighbors[i], nil
		}
	}

	return 0, fmt.Errorf("%w: (%d,%d)", ErrInvalidOffset, o.DRow, o.DCol)
}

// Offsets returns the 8 neighbour offsets in scan order.
func Offsets() [8]Offset {
	return offsets
}

// Downstream returns the cell that (row,col) drains into according to c.
// ok is false for NoFlow, NoData and invalid codes; no bounds check is made.
func Downstream(row, col int, c Code) (r, k int, ok bool) {
	if !c.IsPointer() {
		return row, col, false
	}
	o := offsets[bits.TrailingZeros8(uint8(c))]

	return row + o.DRow, col + o.DCol, true
}

// FlowsInto reports whether a cell at (fromRow,fromCol) carrying code c
// drains directly into (toRow,toCol).
func FlowsInto(c Code, fromRow, fromCol, toRow, toCol int) bool {
	r, k, ok := Downstream(fromRow, fromCol, c)

	return ok && r == toRow && k == toCol
}

// Validate scans codes and reports the first invalid one with its index.
func Validate(codes []Code) error {
	for i, c := range codes {
		if !c.Valid() {
			return fmt.Errorf("%w: %d at index %d", ErrInvalidCode, uint8(c), i)
		}
	}

	return nil
}
