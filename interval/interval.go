package interval

import (
	"fmt"
)

// OpenInterval is a half-open interval [Start, End) of integer coordinates.
//
// INVARIANT: Start <= End.  The zero value is the empty interval [0, 0).
type OpenInterval struct {
	Start, End int
}

// New returns the interval [start, end).
//
// REQUIRES: start <= end.
func New(start, end int) OpenInterval {
	if end < start {
		panic(fmt.Sprintf("inverted interval [%d, %d)", start, end))
	}
	return OpenInterval{start, end}
}

// Len returns the number of coordinates in the interval.
func (i OpenInterval) Len() int {
	return i.End - i.Start
}

// Contains checks whether pos lies inside the interval.
func (i OpenInterval) Contains(pos int) bool {
	return i.Start <= pos && pos < i.End
}

// Intersect returns the intersection of the two intervals.  The second return
// value is false if the intervals do not overlap; since intervals are
// half-open, intervals that only share an endpoint do not overlap.
func (i OpenInterval) Intersect(other OpenInterval) (OpenInterval, bool) {
	start := i.Start
	if other.Start > start {
		start = other.Start
	}
	end := i.End
	if other.End < end {
		end = other.End
	}
	if start >= end {
		return OpenInterval{}, false
	}
	return OpenInterval{start, end}, true
}

// String returns a representation in mathematical notation, e.g. "[0, 10)".
func (i OpenInterval) String() string {
	return fmt.Sprintf("[%d, %d)", i.Start, i.End)
}
