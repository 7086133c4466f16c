// Package layout assigns overlapping one-dimensional intervals to a bounded
// number of display rows so that no row draws two overlapping shapes.
package layout

import (
	"math"
	"sort"

	"github.com/gvizlab/genomeview/drawing"
	"github.com/gvizlab/genomeview/interval"
)

// DefaultMaxRows is the number of rows used when an Arranger does not specify
// one.
const DefaultMaxRows = 10

// PaddingFunc returns the horizontal padding, in pixels, to reserve on each
// side of a context interval, e.g. to leave room for a text label.
type PaddingFunc func(interval.OpenInterval) int

// Arranger packs context intervals into display rows by first-fit: it is a
// deterministic greedy coloring with a fixed palette, not guaranteed
// row-optimal.
type Arranger struct {
	model   drawing.Model
	maxRows int
	padding PaddingFunc
}

// Option configures an Arranger.
type Option func(*Arranger)

// MaxRows sets the number of available rows.  With a value <= 0, nothing fits and every
// interval is assigned RowNone.
func MaxRows(n int) Option {
	return func(a *Arranger) { a.maxRows = n }
}

// Padding sets the per-interval horizontal padding function.
func Padding(f PaddingFunc) Option {
	return func(a *Arranger) { a.padding = f }
}

// NewArranger returns an Arranger drawing through model, with DefaultMaxRows
// rows and zero padding unless overridden by options.
func NewArranger(model drawing.Model, opts ...Option) *Arranger {
	a := &Arranger{
		model:   model,
		maxRows: DefaultMaxRows,
		padding: func(interval.OpenInterval) int { return 0 },
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// RowNone is the row index assigned to intervals that fit in no row.
const RowNone = -1

// Arrange assigns each context interval a row index in [0, maxRows), or
// RowNone if every row is already occupied at its position.  Intervals are
// considered in order of ascending start, longer first on ties; the result
// is returned in the original input order.
func (a *Arranger) Arrange(intervals []interval.OpenInterval) []int {
	rows := make([]int, len(intervals))
	if a.maxRows <= 0 {
		for i := range rows {
			rows[i] = RowNone
		}
		return rows
	}

	order := make([]int, len(intervals))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		x, y := intervals[order[i]], intervals[order[j]]
		if x.Start != y.Start {
			return x.Start < y.Start
		}
		return x.Len() > y.Len()
	})

	// occupiedTo[row] is the rightmost pixel drawn in the row so far.
	occupiedTo := make([]int, a.maxRows)
	for i := range occupiedTo {
		occupiedTo[i] = math.MinInt32
	}
	for _, i := range order {
		iv := intervals[i]
		xSpan := a.model.BaseSpanToXSpan(iv)
		padding := a.padding(iv)
		start := xSpan.Start - padding
		row := RowNone
		for r := 0; r < a.maxRows; r++ {
			if occupiedTo[r] < start {
				row = r
				occupiedTo[r] = xSpan.End + padding
				break
			}
		}
		rows[i] = row
	}
	return rows
}
