// Package genome defines genomic-locus intervals: a chromosome name plus a
// 0-based, half-open base range.  It also implements the "chr:start-end"
// region-string grammar and interval-union merging used to present
// deduplicated genomic regions.
package genome

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/gvizlab/genomeview/interval"
)

// Interval is a half-open interval [Start, End) of bases on one chromosome.
// Coordinates are 0-based, matching BED and BAM conventions.
type Interval struct {
	Chr        string
	Start, End int
}

// New returns the locus chr:[start, end).
//
// REQUIRES: start <= end.
func New(chr string, start, end int) Interval {
	if end < start {
		panic(fmt.Sprintf("inverted locus %s:%d-%d", chr, start, end))
	}
	return Interval{chr, start, end}
}

// Len returns the number of bases in the locus.
func (i Interval) Len() int {
	return i.End - i.Start
}

// Span returns the base range of the locus without the chromosome.
func (i Interval) Span() interval.OpenInterval {
	return interval.OpenInterval{Start: i.Start, End: i.End}
}

// Intersect returns the intersection of two loci.  Loci on different
// chromosomes never overlap, and neither do loci that only touch.
func (i Interval) Intersect(other Interval) (Interval, bool) {
	if i.Chr != other.Chr {
		return Interval{}, false
	}
	ov, ok := i.Span().Intersect(other.Span())
	if !ok {
		return Interval{}, false
	}
	return Interval{i.Chr, ov.Start, ov.End}, true
}

// String renders the locus in region-string form, e.g. "chr1:100-200".
func (i Interval) String() string {
	return fmt.Sprintf("%s:%d-%d", i.Chr, i.Start, i.End)
}

// Parse reads a region string of the form
//   [chromosome]:[start]-[end]
// with 0-based, half-open coordinates, e.g. "chr1:0-1000".  It is the
// inverse of Interval.String.
func Parse(region string) (Interval, error) {
	colonPos := strings.IndexByte(region, ':')
	if colonPos <= 0 {
		return Interval{}, errors.Errorf("genome.Parse: %q is not of the form chr:start-end", region)
	}
	chr := region[:colonPos]
	rangeStr := region[colonPos+1:]
	dashPos := strings.IndexByte(rangeStr, '-')
	if dashPos == -1 {
		return Interval{}, errors.Errorf("genome.Parse: %q is not of the form chr:start-end", region)
	}
	start, err := strconv.Atoi(rangeStr[:dashPos])
	if err != nil {
		return Interval{}, errors.Errorf("genome.Parse: bad start coordinate in %q", region)
	}
	end, err := strconv.Atoi(rangeStr[dashPos+1:])
	if err != nil {
		return Interval{}, errors.Errorf("genome.Parse: bad end coordinate in %q", region)
	}
	if start < 0 || end <= start {
		return Interval{}, errors.Errorf("genome.Parse: invalid range [%d, %d) in %q", start, end, region)
	}
	return Interval{chr, start, end}, nil
}

// MergeOverlaps returns the minimal sorted set of loci covering the same
// bases as the input.  Loci are sorted by (chromosome, start) and any two
// that overlap or touch on the same chromosome are merged, so the result is
// pairwise non-overlapping and non-touching.  The input is not modified.
func MergeOverlaps(loci []Interval) []Interval {
	if len(loci) == 0 {
		return nil
	}
	sorted := make([]Interval, len(loci))
	copy(sorted, loci)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Chr != sorted[j].Chr {
			return sorted[i].Chr < sorted[j].Chr
		}
		return sorted[i].Start < sorted[j].Start
	})

	merged := []Interval{sorted[0]}
	for _, locus := range sorted[1:] {
		last := &merged[len(merged)-1]
		if locus.Chr == last.Chr && locus.Start <= last.End {
			if locus.End > last.End {
				last.End = locus.End
			}
			continue
		}
		merged = append(merged, locus)
	}
	return merged
}
