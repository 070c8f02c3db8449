package drainage

import (
	"container/heap"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/fdcomp/d8"
	"github.com/katalvlaran/fdcomp/grid"
)

// BuildTree labels every non-NoData cell of dir with the id of the
// main-stem path it belongs to and returns the per-path summary table.
//
// Preconditions, checked before any traversal:
//  1. acc and dir are non-nil (ErrNilGrid).
//  2. acc and dir have the same shape (ErrShapeMismatch).
//  3. every byte of dir is a D8 pointer, NoFlow or NoData (d8.ErrInvalidCode).
func BuildTree(acc *grid.Grid[uint32], dir *grid.Grid[d8.Code], opts ...Option) (*Tree, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.normalize()

	if acc == nil || dir == nil {
		return nil, ErrNilGrid
	}
	if !grid.SameShape(acc, dir) {
		return nil, fmt.Errorf("%w: accumulation %d×%d, direction %d×%d",
			ErrShapeMismatch, acc.Rows, acc.Cols, dir.Rows, dir.Cols)
	}
	if err := d8.Validate(dir.Data); err != nil {
		return nil, fmt.Errorf("drainage: %w", err)
	}

	labels, err := grid.New[uint32](dir.Rows, dir.Cols)
	if err != nil {
		return nil, err
	}

	r := &runner{
		acc:    acc,
		dir:    dir,
		opts:   cfg,
		labels: labels,
	}
	r.seed()
	cfg.Logger.WithFields(logrus.Fields{
		"rows":  dir.Rows,
		"cols":  dir.Cols,
		"seeds": r.front.Len(),
	}).Debug("drainage: frontier seeded")

	if err := r.process(); err != nil {
		return nil, err
	}
	cfg.Logger.WithField("paths", len(r.paths)).Debug("drainage: tree built")

	return &Tree{Labels: labels, Paths: r.paths}, nil
}

// runner holds the mutable state for a single BuildTree call.
type runner struct {
	acc    *grid.Grid[uint32]
	dir    *grid.Grid[d8.Code]
	opts   Options
	labels *grid.Grid[uint32]
	paths  PathTable
	front  frontier
}

// seed pushes every non-NoData cell onto the frontier.
func (r *runner) seed() {
	r.front = make(frontier, 0, len(r.dir.Data))
	for i, c := range r.dir.Data {
		if c == d8.NoData {
			continue
		}
		r.front = append(r.front, seed{acc: r.acc.Data[i], idx: i})
	}
	heap.Init(&r.front)
}

// process drains the frontier, opening a path at every unlabelled cell.
func (r *runner) process() error {
	var id uint32
	for r.front.Len() > 0 {
		s := heap.Pop(&r.front).(seed)
		if r.labels.Data[s.idx] != 0 {
			continue // absorbed by an earlier path
		}
		if err := r.opts.Ctx.Err(); err != nil {
			return err
		}
		id++
		r.paths = append(r.paths, r.trace(id, s.idx))
	}

	return nil
}

// trace walks upstream from start, labelling cells with id.
func (r *runner) trace(id uint32, start int) PathRecord {
	cur := r.dir.Coordinate(start)
	rec := PathRecord{
		Origin:       cur,
		Cells:        1,
		Accumulation: r.acc.Data[start],
	}
	r.labels.Data[start] = id

	for r.acc.At(cur.Row, cur.Col) > 0 {
		next, ok := r.upstream(cur)
		if !ok {
			break // headwater
		}
		if t := r.opts.Transform; t != nil {
			lon1, lat1 := t.LonLat(cur.Row, cur.Col)
			lon2, lat2 := t.LonLat(next.Row, next.Col)
			rec.Length += r.opts.Formula.Distance(lon1, lat1, lon2, lat2)
		}
		rec.Cells++
		cur = next
		r.labels.Set(cur.Row, cur.Col, id)

		if r.dir.At(cur.Row, cur.Col) == d8.NoFlow {
			break
		}
	}
	rec.Terminus = cur

	return rec
}

// upstream picks the unlabelled neighbour of c that drains into c and has
// the largest accumulation; later scan positions win ties.
func (r *runner) upstream(c grid.Cell) (grid.Cell, bool) {
	var (
		best    grid.Cell
		bestAcc uint32
		found   bool
	)
	for _, o := range d8.Offsets() {
		nr, nc := c.Row+o.DRow, c.Col+o.DCol
		if !r.dir.InBounds(nr, nc) {
			continue
		}
		i := r.dir.Index(nr, nc)
		if r.labels.Data[i] != 0 || !d8.FlowsInto(r.dir.Data[i], nr, nc, c.Row, c.Col) {
			continue
		}
		if a := r.acc.Data[i]; !found || a >= bestAcc {
			best, bestAcc, found = grid.Cell{Row: nr, Col: nc}, a, true
		}
	}

	return best, found
}

// seed is a frontier entry: a cell index and its accumulation.
type seed struct {
	acc uint32
	idx int
}

// frontier is a max-heap of seeds ordered by accumulation descending, then
// by row-major index ascending.
type frontier []seed

// Len returns the number of queued seeds.
func (f frontier) Len() int { return len(f) }

// Less puts higher accumulation first; equal accumulations keep scan order.
func (f frontier) Less(i, j int) bool {
	if f[i].acc != f[j].acc {
		return f[i].acc > f[j].acc
	}

	return f[i].idx < f[j].idx
}

// Swap swaps two seeds.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends a seed; called by heap.Push.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(seed)) }

// Pop removes the last seed; called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	s := old[n-1]
	*f = old[:n-1]

	return s
}
