package compare

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/fdcomp/d8"
	"github.com/katalvlaran/fdcomp/drainage"
	"github.com/katalvlaran/fdcomp/grid"
)

// Ratio returns r such that fine is exactly r times coarse along both axes.
func Ratio(fine, coarse grid.Shape) (int, error) {
	fr, fc := fine.Dims()
	cr, cc := coarse.Dims()
	if cr <= 0 || cc <= 0 || fr%cr != 0 || fc%cc != 0 || fr/cr != fc/cc || fr/cr < 1 {
		return 0, fmt.Errorf("%w: fine %d×%d, coarse %d×%d", ErrRatioMismatch, fr, fc, cr, cc)
	}

	return fr / cr, nil
}

// Compare returns one score in [0,1] per record of paths, measuring how
// much of each fine flow path lies on the coarse flow path traced from the
// same headwater.
func Compare(fine, coarse *grid.Grid[d8.Code], paths drainage.PathTable, opts ...Option) ([]float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.normalize()

	if fine == nil || coarse == nil {
		return nil, ErrNilGrid
	}
	ratio, err := Ratio(fine, coarse)
	if err != nil {
		return nil, err
	}
	if err = d8.Validate(fine.Data); err != nil {
		return nil, fmt.Errorf("compare: fine grid: %w", err)
	}
	if err = d8.Validate(coarse.Data); err != nil {
		return nil, fmt.Errorf("compare: coarse grid: %w", err)
	}
	for i, p := range paths {
		if !fine.InBounds(p.Terminus.Row, p.Terminus.Col) || !fine.InBounds(p.Origin.Row, p.Origin.Col) {
			return nil, fmt.Errorf("%w: path %d %v→%v", ErrPathOutOfBounds, i+1, p.Terminus, p.Origin)
		}
	}

	c := &comparer{
		fine:   fine,
		coarse: coarse,
		ratio:  ratio,
		mode:   cfg.Membership,
		member: make([]bool, coarse.Len()),
	}
	cfg.Logger.WithFields(logrus.Fields{
		"paths":      len(paths),
		"ratio":      ratio,
		"membership": cfg.Membership,
	}).Debug("compare: scoring paths")

	scores := make([]float64, len(paths))
	for i, p := range paths {
		if err = cfg.Ctx.Err(); err != nil {
			return nil, err
		}
		if scores[i], err = c.score(p); err != nil {
			return nil, fmt.Errorf("path %d: %w", i+1, err)
		}
	}

	return scores, nil
}

// comparer holds per-call state; member is reused across paths.
type comparer struct {
	fine, coarse *grid.Grid[d8.Code]
	ratio        int
	mode         Membership
	member       []bool
	touched      []int
}

// score rates a single path.
func (c *comparer) score(p drainage.PathRecord) (float64, error) {
	c.clear()
	c.traceCoarse(p.Terminus)

	total, inter := 1, 1
	cur := p.Terminus
	limit := c.fine.Len()
	for cur != p.Origin {
		if total > limit {
			return 0, fmt.Errorf("%w: %v→%v loops", ErrPathNotReached, p.Terminus, p.Origin)
		}
		r, k, ok := d8.Downstream(cur.Row, cur.Col, c.fine.At(cur.Row, cur.Col))
		if !ok || !c.fine.InBounds(r, k) {
			return 0, fmt.Errorf("%w: %v→%v stops at %v", ErrPathNotReached, p.Terminus, p.Origin, cur)
		}
		cur = grid.Cell{Row: r, Col: k}
		total++
		if c.member[c.coarse.Index(r/c.ratio, k/c.ratio)] {
			inter++
		}
	}

	return float64(inter) / float64(total), nil
}

// traceCoarse marks the coarse flow path starting under the fine cell start.
func (c *comparer) traceCoarse(start grid.Cell) {
	r, k := start.Row/c.ratio, start.Col/c.ratio
	if c.mode == LegacyDoubleDownscale {
		c.mark(r/c.ratio, k/c.ratio)
	} else {
		c.mark(r, k)
	}

	for steps := 0; steps < c.coarse.Len(); steps++ {
		nr, nk, ok := d8.Downstream(r, k, c.coarse.At(r, k))
		if !ok || !c.coarse.InBounds(nr, nk) {
			return
		}
		r, k = nr, nk
		if !c.mark(r, k) && c.mode == CoarseCells {
			return // cycle
		}
	}
}

// mark adds a coarse cell to the set and reports whether it was new.
func (c *comparer) mark(r, k int) bool {
	i := c.coarse.Index(r, k)
	if c.member[i] {
		return false
	}
	c.member[i] = true
	c.touched = append(c.touched, i)

	return true
}

func (c *comparer) clear() {
	for _, i := range c.touched {
		c.member[i] = false
	}
	c.touched = c.touched[:0]
}
