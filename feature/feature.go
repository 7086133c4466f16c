// Package feature defines the named genomic regions that navigation contexts
// are assembled from, and feature-relative sub-segments of them.
package feature

import (
	"fmt"

	"github.com/gvizlab/genomeview/genome"
)

// GapChr is the reserved chromosome name marking synthetic gap features,
// which occupy coordinate space without being backed by any genome sequence.
const GapChr = ""

// Feature is an immutable named region anchored to a genomic locus.
// Features are handled by pointer: a navigation context keys its internal
// maps on Feature identity, so the same *Feature value must be used when
// querying a context that was built from it.
type Feature struct {
	Name  string
	Locus genome.Interval
	// IsGap marks synthetic filler regions.  Gap features use the reserved
	// GapChr chromosome and take part in context coordinates, but are
	// excluded from genomic lookups.
	IsGap bool
}

// New returns a feature covering locus.
//
// REQUIRES: name is non-empty.
func New(name string, locus genome.Interval) *Feature {
	if name == "" {
		panic("feature with empty name")
	}
	return &Feature{Name: name, Locus: locus}
}

// NewGap returns a synthetic gap feature occupying length bases of
// coordinate space.
//
// REQUIRES: name is non-empty, length >= 0.
func NewGap(name string, length int) *Feature {
	if name == "" {
		panic("feature with empty name")
	}
	if length < 0 {
		panic(fmt.Sprintf("gap %s with negative length %d", name, length))
	}
	return &Feature{Name: name, Locus: genome.Interval{Chr: GapChr, Start: 0, End: length}, IsGap: true}
}

// Len returns the length of the feature in bases.
func (f *Feature) Len() int {
	return f.Locus.Len()
}
