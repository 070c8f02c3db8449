package drainage

import (
	"fmt"

	"github.com/katalvlaran/fdcomp/grid"
)

// Row returns the record in the 7-column layout
// (terminus_row, terminus_col, origin_row, origin_col, cells, accumulation, length).
func (p PathRecord) Row() [TableColumns]uint32 {
	return [TableColumns]uint32{
		uint32(p.Terminus.Row), uint32(p.Terminus.Col),
		uint32(p.Origin.Row), uint32(p.Origin.Col),
		p.Cells, p.Accumulation, p.Length,
	}
}

// Rows converts the table to nested 7-column rows.
func (t PathTable) Rows() [][]uint32 {
	out := make([][]uint32, len(t))
	for i, p := range t {
		row := p.Row()
		out[i] = row[:]
	}

	return out
}

// TableFromRows parses rows of at least 4 columns. Missing trailing
// columns (cells, accumulation, length) are left zero.
func TableFromRows(rows [][]uint32) (PathTable, error) {
	t := make(PathTable, len(rows))
	for i, row := range rows {
		if len(row) < 4 {
			return nil, fmt.Errorf("%w: row %d has %d", ErrTableColumns, i, len(row))
		}
		var full [TableColumns]uint32
		copy(full[:], row)
		t[i] = PathRecord{
			Terminus:     grid.Cell{Row: int(full[0]), Col: int(full[1])},
			Origin:       grid.Cell{Row: int(full[2]), Col: int(full[3])},
			Cells:        full[4],
			Accumulation: full[5],
			Length:       full[6],
		}
	}

	return t, nil
}

// Path returns the record for a 1-based path id.
func (t *Tree) Path(id uint32) (PathRecord, bool) {
	if id == 0 || int(id) > len(t.Paths) {
		return PathRecord{}, false
	}

	return t.Paths[id-1], true
}

// TotalCells sums the cell counts of all paths.
func (t PathTable) TotalCells() int {
	n := 0
	for _, p := range t {
		n += int(p.Cells)
	}

	return n
}
