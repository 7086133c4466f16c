package feature

import (
	"fmt"

	"github.com/gvizlab/genomeview/genome"
	"github.com/gvizlab/genomeview/interval"
)

// Segment is a sub-range of one feature, expressed in feature-relative
// coordinates: [Start, End) with 0 at the feature's own start.  A zero-length
// segment marks a single coordinate.
//
// INVARIANT: 0 <= Start <= End <= Feature.Len().
type Segment struct {
	Feature    *Feature
	Start, End int
}

// NewSegment returns the segment [start, end) of f.
//
// REQUIRES: 0 <= start <= end <= f.Len().
func NewSegment(f *Feature, start, end int) Segment {
	if start < 0 || end < start || end > f.Len() {
		panic(fmt.Sprintf("segment [%d, %d) outside feature %s of length %d", start, end, f.Name, f.Len()))
	}
	return Segment{f, start, end}
}

// Len returns the segment length in bases.
func (s Segment) Len() int {
	return s.End - s.Start
}

// Span returns the feature-relative base range of the segment.
func (s Segment) Span() interval.OpenInterval {
	return interval.OpenInterval{Start: s.Start, End: s.End}
}

// Locus returns the genomic locus the segment occupies, i.e. the feature's
// locus offset by the segment's relative coordinates.  For segments of gap
// features the result lies on the reserved gap chromosome.
func (s Segment) Locus() genome.Interval {
	start := s.Feature.Locus.Start
	return genome.Interval{Chr: s.Feature.Locus.Chr, Start: start + s.Start, End: start + s.End}
}

// IntersectLocus intersects the segment with a genomic locus, returning the
// overlapping sub-segment.  The second return value is false if there is no
// overlap.
func (s Segment) IntersectLocus(locus genome.Interval) (Segment, bool) {
	ov, ok := s.Locus().Intersect(locus)
	if !ok {
		return Segment{}, false
	}
	offset := s.Feature.Locus.Start
	return Segment{s.Feature, ov.Start - offset, ov.End - offset}, true
}

// Intersect intersects two segments of the same feature.  The second return
// value is false if they do not overlap.
//
// REQUIRES: other belongs to the same feature.
func (s Segment) Intersect(other Segment) (Segment, bool) {
	if s.Feature != other.Feature {
		panic(fmt.Sprintf("intersecting segments of different features %s and %s", s.Feature.Name, other.Feature.Name))
	}
	ov, ok := s.Span().Intersect(other.Span())
	if !ok {
		return Segment{}, false
	}
	return Segment{s.Feature, ov.Start, ov.End}, true
}

// String renders the segment as "name:[start, end)".
func (s Segment) String() string {
	return fmt.Sprintf("%s:[%d, %d)", s.Feature.Name, s.Start, s.End)
}
