package layout

import (
	"testing"

	"github.com/grailbio/testutil/expect"

	"github.com/gvizlab/genomeview/drawing"
	"github.com/gvizlab/genomeview/interval"
)

// identityModel draws [0, 100) onto 100 pixels, one pixel per base.
func identityModel() drawing.LinearModel {
	return drawing.NewLinearModel(interval.New(0, 100), 100)
}

func TestArrangeFirstFit(t *testing.T) {
	a := NewArranger(identityModel(), MaxRows(2))

	// A and B overlap, so B opens a second row; C fits back into row 0.
	expect.EQ(t, a.Arrange([]interval.OpenInterval{
		{Start: 0, End: 10},
		{Start: 5, End: 15},
		{Start: 12, End: 20},
	}), []int{0, 1, 0})

	// A fourth interval overlapping both occupied rows fits nowhere.
	expect.EQ(t, a.Arrange([]interval.OpenInterval{
		{Start: 0, End: 10},
		{Start: 5, End: 15},
		{Start: 12, End: 20},
		{Start: 8, End: 14},
	}), []int{0, 1, 0, RowNone})
}

func TestArrangeOriginalOrder(t *testing.T) {
	a := NewArranger(identityModel(), MaxRows(2))
	// Same intervals as above, shuffled: row indices follow the input
	// positions, not the sorted ones.
	expect.EQ(t, a.Arrange([]interval.OpenInterval{
		{Start: 12, End: 20},
		{Start: 0, End: 10},
		{Start: 5, End: 15},
	}), []int{0, 0, 1})
}

func TestArrangeTieBreak(t *testing.T) {
	a := NewArranger(identityModel(), MaxRows(2))
	// Equal starts: the longer interval is seated first.
	expect.EQ(t, a.Arrange([]interval.OpenInterval{
		{Start: 0, End: 5},
		{Start: 0, End: 10},
	}), []int{1, 0})
}

func TestArrangeTouching(t *testing.T) {
	a := NewArranger(identityModel())
	// Occupied-to is compared strictly, so intervals sharing a pixel edge
	// do not share a row, but a one-pixel gap is enough.
	expect.EQ(t, a.Arrange([]interval.OpenInterval{
		{Start: 0, End: 10},
		{Start: 10, End: 20},
		{Start: 21, End: 30},
	}), []int{0, 1, 0})
}

func TestArrangePadding(t *testing.T) {
	a := NewArranger(identityModel(), MaxRows(2), Padding(func(interval.OpenInterval) int { return 3 }))
	// Without padding these would share row 0; 3 pixels of padding on each
	// side makes them collide.
	expect.EQ(t, a.Arrange([]interval.OpenInterval{
		{Start: 0, End: 10},
		{Start: 12, End: 20},
	}), []int{0, 1})
}

func TestArrangeNoRows(t *testing.T) {
	for _, n := range []int{0, -1} {
		a := NewArranger(identityModel(), MaxRows(n))
		expect.EQ(t, a.Arrange([]interval.OpenInterval{
			{Start: 0, End: 10},
			{Start: 50, End: 60},
		}), []int{RowNone, RowNone})
	}
}

func TestArrangeDefaultMaxRows(t *testing.T) {
	a := NewArranger(identityModel())
	// Eleven mutually overlapping intervals: ten take a row each and the
	// shortest, seated last under the longer-first tie break, fits nowhere.
	intervals := make([]interval.OpenInterval, DefaultMaxRows+1)
	for i := range intervals {
		intervals[i] = interval.New(0, 50+i)
	}
	rows := a.Arrange(intervals)
	expect.EQ(t, rows[0], RowNone)
	seen := map[int]bool{}
	for i, row := range rows[1:] {
		expect.True(t, row >= 0, "interval %d", i+1)
		expect.False(t, seen[row], "row %d assigned twice", row)
		seen[row] = true
	}
}
