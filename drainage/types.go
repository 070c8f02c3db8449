package drainage

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/fdcomp/geodesy"
	"github.com/katalvlaran/fdcomp/grid"
)

// Sentinel errors returned by BuildTree and the table helpers.
var (
	// ErrNilGrid indicates a nil accumulation or direction grid.
	ErrNilGrid = errors.New("drainage: grid is nil")

	// ErrShapeMismatch indicates accumulation and direction grids of different size.
	ErrShapeMismatch = errors.New("drainage: accumulation and direction grids differ in shape")

	// ErrTableColumns indicates a path table row with fewer than 4 columns.
	ErrTableColumns = errors.New("drainage: path table rows need at least 4 columns")
)

// TableColumns is the width of a full path table row.
const TableColumns = 7

// PathRecord summarises one traced channel path.
//
// Origin is the cell that opened the path (its outlet end); Terminus is
// the last cell reached walking upstream (its headwater end).
type PathRecord struct {
	Terminus     grid.Cell
	Origin       grid.Cell
	Cells        uint32 // number of cells labelled by this path
	Accumulation uint32 // accumulation at Origin
	Length       uint32 // metres along the path; 0 without a transform
}

// PathTable lists paths in discovery order; entry i describes path id i+1.
type PathTable []PathRecord

// Tree is the result of BuildTree.
type Tree struct {
	Labels *grid.Grid[uint32]
	Paths  PathTable
}

// Options configures BuildTree.
//
// Transform – optional raster transform; when nil, path lengths are 0.
// Formula   – distance formulation used for path lengths.
// Ctx       – checked before each new path; cancellation aborts the build.
// Logger    – receives debug-level progress entries.
type Options struct {
	Transform *geodesy.Affine
	Formula   geodesy.Formula
	Ctx       context.Context
	Logger    logrus.FieldLogger
}

// Option represents a functional option for BuildTree.
type Option func(*Options)

// WithTransform enables path-length accumulation using a.
func WithTransform(a geodesy.Affine) Option {
	return func(o *Options) {
		o.Transform = &a
	}
}

// WithFormula selects the distance formula (default geodesy.Vincenty).
func WithFormula(f geodesy.Formula) Option {
	return func(o *Options) {
		o.Formula = f
	}
}

// WithContext sets a context for cooperative cancellation between traces.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithLogger routes debug output to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// normalize fills in a nil context or logger left by options.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = DefaultOptions().Logger
	}
}

// DefaultOptions returns options with no transform, the Vincenty formula,
// a background context and a discarding logger.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{
		Formula: geodesy.Vincenty,
		Ctx:     context.Background(),
		Logger:  l,
	}
}
