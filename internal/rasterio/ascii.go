package rasterio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/fdcomp/d8"
	"github.com/katalvlaran/fdcomp/geodesy"
	"github.com/katalvlaran/fdcomp/grid"
)

// Sentinel errors for ASCII grid handling.
var (
	// ErrHeader indicates a missing or malformed header keyword.
	ErrHeader = errors.New("rasterio: malformed ascii grid header")
	// ErrValueCount indicates a body with other than Rows×Cols values.
	ErrValueCount = errors.New("rasterio: value count does not match header")
	// ErrValue indicates a cell value that cannot be represented in the target grid.
	ErrValue = errors.New("rasterio: cell value out of range")
)

// Header holds the georeferencing keywords of an ASCII grid.
type Header struct {
	Cols, Rows int
	XLL, YLL   float64
	CellSize   float64
	NoData     float64
	HasNoData  bool
	Center     bool // XLL/YLL name the lower-left cell centre, not its corner
}

// Raster is a decoded ASCII grid.
type Raster struct {
	Header
	Values []float64
}

// Transform returns the cell-centre affine transform of h.
func (h Header) Transform() geodesy.Affine {
	x0, y0 := h.XLL, h.YLL
	if !h.Center {
		x0 += h.CellSize / 2
		y0 += h.CellSize / 2
	}
	top := y0 + float64(h.Rows-1)*h.CellSize

	return geodesy.Affine{h.CellSize, 0, x0, 0, -h.CellSize, top}
}

// ReadFile reads an ASCII grid from path.
func ReadFile(path string) (*Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return r, nil
}

// Read decodes an ASCII grid.
func Read(r io.Reader) (*Raster, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	var (
		h     Header
		seen  = make(map[string]bool)
		first string
	)
	for sc.Scan() {
		key := strings.ToLower(sc.Text())
		if !isHeaderKey(key) {
			first = sc.Text()
			break
		}
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: %s has no value", ErrHeader, key)
		}
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrHeader, key, sc.Text())
		}
		seen[key] = true
		switch key {
		case "ncols":
			h.Cols = int(v)
		case "nrows":
			h.Rows = int(v)
		case "xllcorner", "xllcenter":
			h.XLL = v
			h.Center = key == "xllcenter"
		case "yllcorner", "yllcenter":
			h.YLL = v
		case "cellsize":
			h.CellSize = v
		case "nodata_value":
			h.NoData, h.HasNoData = v, true
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !seen["ncols"] || !seen["nrows"] || h.Cols <= 0 || h.Rows <= 0 {
		return nil, fmt.Errorf("%w: ncols/nrows missing or not positive", ErrHeader)
	}

	n := h.Cols * h.Rows
	values := make([]float64, 0, n)
	parse := func(tok string) error {
		if len(values) == n {
			return fmt.Errorf("%w: more than %d values", ErrValueCount, n)
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return fmt.Errorf("rasterio: value %d: %w", len(values), err)
		}
		values = append(values, v)

		return nil
	}
	if first != "" {
		if err := parse(first); err != nil {
			return nil, err
		}
	}
	for sc.Scan() {
		if err := parse(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(values) != n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrValueCount, len(values), n)
	}

	return &Raster{Header: h, Values: values}, nil
}

func isHeaderKey(k string) bool {
	switch k {
	case "ncols", "nrows", "xllcorner", "xllcenter", "yllcorner", "yllcenter", "cellsize", "nodata_value":
		return true
	}

	return false
}

// isNoData reports whether v is the raster's NoData marker.
func (r *Raster) isNoData(v float64) bool {
	return r.HasNoData && v == r.NoData
}

// DirectionGrid converts r to D8 codes. NoData cells become d8.NoData;
// other values must be whole numbers in 0..255.
func (r *Raster) DirectionGrid() (*grid.Grid[d8.Code], error) {
	g, err := grid.New[d8.Code](r.Rows, r.Cols)
	if err != nil {
		return nil, err
	}
	for i, v := range r.Values {
		switch {
		case r.isNoData(v):
			g.Data[i] = d8.NoData
		case v < 0 || v > 255 || v != math.Trunc(v):
			return nil, fmt.Errorf("%w: direction %v at index %d", ErrValue, v, i)
		default:
			g.Data[i] = d8.Code(v)
		}
	}

	return g, nil
}

// AccumulationGrid converts r to accumulation counts. NoData cells become 0;
// other values must be non-negative and fit in 32 bits (fractions truncate).
func (r *Raster) AccumulationGrid() (*grid.Grid[uint32], error) {
	g, err := grid.New[uint32](r.Rows, r.Cols)
	if err != nil {
		return nil, err
	}
	for i, v := range r.Values {
		switch {
		case r.isNoData(v):
		case v < 0 || v > math.MaxUint32 || math.IsNaN(v):
			return nil, fmt.Errorf("%w: accumulation %v at index %d", ErrValue, v, i)
		default:
			g.Data[i] = uint32(v)
		}
	}

	return g, nil
}

// Write encodes values under header h. len(values) must be h.Rows×h.Cols.
func Write[T grid.Value](w io.Writer, h Header, values []T) error {
	if len(values) != h.Rows*h.Cols {
		return fmt.Errorf("%w: got %d, want %d", ErrValueCount, len(values), h.Rows*h.Cols)
	}
	bw := bufio.NewWriter(w)
	corner := "corner"
	if h.Center {
		corner = "center"
	}
	fmt.Fprintf(bw, "ncols %d\nnrows %d\n", h.Cols, h.Rows)
	fmt.Fprintf(bw, "xll%s %s\nyll%s %s\n", corner, ftoa(h.XLL), corner, ftoa(h.YLL))
	fmt.Fprintf(bw, "cellsize %s\n", ftoa(h.CellSize))
	if h.HasNoData {
		fmt.Fprintf(bw, "NODATA_value %s\n", ftoa(h.NoData))
	}
	for r := 0; r < h.Rows; r++ {
		for c := 0; c < h.Cols; c++ {
			if c > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(ftoa(float64(values[r*h.Cols+c])))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WriteFile writes g to path under header h.
func WriteFile[T grid.Value](path string, h Header, g *grid.Grid[T]) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = Write(f, h, g.Data); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
