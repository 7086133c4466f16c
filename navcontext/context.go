// Package navcontext implements the navigation context: a virtual
// coordinate space formed by concatenating an ordered list of named
// features.  A context coordinate is an offset into that concatenation.
// Contexts are immutable once built and safe for concurrent readers;
// structural change means building a new context.
package navcontext

import (
	"sort"
	"strings"

	biogoiv "github.com/biogo/store/interval"
	"github.com/pkg/errors"

	"github.com/gvizlab/genomeview/feature"
	"github.com/gvizlab/genomeview/genome"
	"github.com/gvizlab/genomeview/interval"
)

// chromEntry is one non-gap feature inserted into a per-chromosome interval
// tree.  ID is the feature's construction index, which doubles as the
// tiebreaker restoring construction order on lookups.
type chromEntry struct {
	index int
	f     *feature.Feature
}

func (e chromEntry) Overlap(b biogoiv.IntRange) bool {
	r := e.Range()
	return r.End > b.Start && r.Start < b.End
}

func (e chromEntry) Range() biogoiv.IntRange {
	return biogoiv.IntRange{Start: e.f.Locus.Start, End: e.f.Locus.End}
}

func (e chromEntry) ID() uintptr { return uintptr(e.index) }

// chromQuery is a query range for the per-chromosome trees.  Half-open, so
// touching intervals do not match.
type chromQuery struct{ start, end int }

func (q chromQuery) Overlap(b biogoiv.IntRange) bool {
	return q.end > b.Start && q.start < b.End
}

// Context is an immutable coordinate space built from an ordered feature
// list.  It records, per feature, the cumulative start offset (the prefix
// sum of the lengths of all preceding features) and indexes non-gap features
// by chromosome for genomic lookups.
type Context struct {
	name     string
	features []*feature.Feature
	// starts is keyed on feature identity; offsets[i] == starts[features[i]].
	// offsets is non-decreasing by construction, which FeaturesInInterval's
	// early break relies on.
	starts  map[*feature.Feature]int
	offsets []int
	total   int
	byChrom map[string]*biogoiv.IntTree
}

// New builds a context named name from features, in the given order.  It
// fails if two features share a name, or a feature has an empty name.  The
// input slice is copied; the *Feature values themselves are retained and
// must not be mutated afterwards.
func New(name string, features []*feature.Feature) (*Context, error) {
	c := &Context{
		name:     name,
		features: make([]*feature.Feature, len(features)),
		starts:   make(map[*feature.Feature]int, len(features)),
		offsets:  make([]int, len(features)),
		byChrom:  map[string]*biogoiv.IntTree{},
	}
	copy(c.features, features)
	names := make(map[string]struct{}, len(features))
	for i, f := range features {
		if f.Name == "" {
			return nil, errors.Errorf("navcontext.New %s: feature %d has an empty name", name, i)
		}
		if _, dup := names[f.Name]; dup {
			return nil, errors.Errorf("navcontext.New %s: duplicate feature name %q", name, f.Name)
		}
		names[f.Name] = struct{}{}
		c.starts[f] = c.total
		c.offsets[i] = c.total
		c.total += f.Len()
		if f.IsGap {
			continue
		}
		tree := c.byChrom[f.Locus.Chr]
		if tree == nil {
			tree = &biogoiv.IntTree{}
			c.byChrom[f.Locus.Chr] = tree
		}
		if err := tree.Insert(chromEntry{index: i, f: f}, true); err != nil {
			return nil, errors.Wrapf(err, "navcontext.New %s: indexing feature %q", name, f.Name)
		}
	}
	for _, tree := range c.byChrom {
		tree.AdjustRanges()
	}
	return c, nil
}

// Name returns the context's name.
func (c *Context) Name() string { return c.name }

// Features returns the features in context order.  The returned slice is a
// copy and may be modified by the caller.
func (c *Context) Features() []*feature.Feature {
	features := make([]*feature.Feature, len(c.features))
	copy(features, c.features)
	return features
}

// TotalBases returns the total length of the coordinate space.
func (c *Context) TotalBases() int { return c.total }

// IsValidBase checks whether base is a coordinate inside this context.
func (c *Context) IsValidBase(base int) bool {
	return 0 <= base && base < c.total
}

// FeatureStart returns the context coordinate at which f starts.  Lookup is
// by feature identity; a feature that is not part of this context yields an
// error.
func (c *Context) FeatureStart(f *feature.Feature) (int, error) {
	start, ok := c.starts[f]
	if !ok {
		return 0, errors.Errorf("navcontext %s: feature %q is not part of this context", c.name, f.Name)
	}
	return start, nil
}

// ownerIndex returns the index of the feature whose span contains base,
// i.e. the last feature whose start offset is <= base.
//
// REQUIRES: base is valid.
func (c *Context) ownerIndex(base int) int {
	return sort.Search(len(c.offsets), func(i int) bool { return c.offsets[i] > base }) - 1
}

// BaseToFeatureCoordinate converts a context coordinate into a zero-length
// segment of the feature that owns it.  It fails on an invalid base.
func (c *Context) BaseToFeatureCoordinate(base int) (feature.Segment, error) {
	if !c.IsValidBase(base) {
		return feature.Segment{}, errors.Errorf("navcontext %s: base %d outside [0, %d)", c.name, base, c.total)
	}
	i := c.ownerIndex(base)
	offset := base - c.offsets[i]
	return feature.NewSegment(c.features[i], offset, offset), nil
}

// SegmentToContextCoordinates converts a feature-relative segment into
// context coordinates.  It fails if the segment's feature is not part of
// this context.
func (c *Context) SegmentToContextCoordinates(s feature.Segment) (interval.OpenInterval, error) {
	start, err := c.FeatureStart(s.Feature)
	if err != nil {
		return interval.OpenInterval{}, err
	}
	return interval.OpenInterval{Start: start + s.Start, End: start + s.End}, nil
}

// MappedInterval is one context-space image of a genomic locus, together
// with the genomic sub-locus it represents.
type MappedInterval struct {
	Span  interval.OpenInterval
	Locus genome.Interval
}

// MapLocus returns every context interval that represents part of locus, in
// context order.  A locus may be represented zero, one, or several times:
// features carrying it may be absent, repeated, or discontiguous.  Gap
// features never match.
func (c *Context) MapLocus(locus genome.Interval) []MappedInterval {
	if locus.Len() == 0 {
		return nil
	}
	tree := c.byChrom[locus.Chr]
	if tree == nil {
		return nil
	}
	matches := tree.Get(chromQuery{start: locus.Start, end: locus.End})
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID() < matches[j].ID() })
	var mapped []MappedInterval
	for _, m := range matches {
		e := m.(chromEntry)
		ov, ok := e.f.Locus.Intersect(locus)
		if !ok {
			continue
		}
		start := c.starts[e.f] + ov.Start - e.f.Locus.Start
		mapped = append(mapped, MappedInterval{
			Span:  interval.OpenInterval{Start: start, End: start + ov.Len()},
			Locus: ov,
		})
	}
	return mapped
}

// GenomeIntervalToBases returns the context intervals representing locus, in
// context order.  The result may be empty.
func (c *Context) GenomeIntervalToBases(locus genome.Interval) []interval.OpenInterval {
	mapped := c.MapLocus(locus)
	if len(mapped) == 0 {
		return nil
	}
	spans := make([]interval.OpenInterval, len(mapped))
	for i, m := range mapped {
		spans[i] = m.Span
	}
	return spans
}

// ToGaplessCoordinate converts a context coordinate into the coordinate the
// base would have if all gap features were removed from the context.  It
// fails on an invalid base.
func (c *Context) ToGaplessCoordinate(base int) (int, error) {
	if !c.IsValidBase(base) {
		return 0, errors.Errorf("navcontext %s: base %d outside [0, %d)", c.name, base, c.total)
	}
	i := c.ownerIndex(base)
	removed := 0
	for j := 0; j < i; j++ {
		if c.features[j].IsGap {
			removed += c.features[j].Len()
		}
	}
	if c.features[i].IsGap {
		removed += base - c.offsets[i]
	}
	return base - removed, nil
}

// Parse resolves a location string into a context interval.  Two grammars
// are accepted: "chr:start-end" (0-based, half-open; commas in coordinates
// are ignored) resolves via genomic lookup and returns the first context
// interval representing the locus, and a bare string is matched exactly
// against feature names and returns that feature's full span.
func (c *Context) Parse(text string) (interval.OpenInterval, error) {
	text = strings.TrimSpace(text)
	if strings.IndexByte(text, ':') >= 0 {
		locus, err := genome.Parse(strings.Replace(text, ",", "", -1))
		if err != nil {
			return interval.OpenInterval{}, err
		}
		spans := c.GenomeIntervalToBases(locus)
		if len(spans) == 0 {
			return interval.OpenInterval{}, errors.Errorf("navcontext %s: locus %s is not available in this context", c.name, locus)
		}
		return spans[0], nil
	}
	for i, f := range c.features {
		if f.Name == text {
			return interval.OpenInterval{Start: c.offsets[i], End: c.offsets[i] + f.Len()}, nil
		}
	}
	return interval.OpenInterval{}, errors.Errorf("navcontext %s: feature %q not found", c.name, text)
}

// FeaturesInInterval returns the sub-segments of all features, gaps
// included, that overlap the context-coordinate query [start, end), clipped
// to the query and in context order.  A degenerate query yields an empty
// result.
func (c *Context) FeaturesInInterval(start, end int) []feature.Segment {
	return c.featuresInInterval(start, end, true)
}

// NonGapFeaturesInInterval is like FeaturesInInterval, but omits gap
// features.  Use it when the caller wants per-feature segments rather than
// the merged loci of LociInInterval.
func (c *Context) NonGapFeaturesInInterval(start, end int) []feature.Segment {
	return c.featuresInInterval(start, end, false)
}

func (c *Context) featuresInInterval(start, end int, includeGaps bool) []feature.Segment {
	if end <= start {
		return nil
	}
	query := interval.OpenInterval{Start: start, End: end}
	var segments []feature.Segment
	seen := false
	for i, f := range c.features {
		if f.Len() == 0 {
			// A zero-length feature overlaps nothing and must not end the
			// scan between two overlapping neighbors.
			continue
		}
		span := interval.OpenInterval{Start: c.offsets[i], End: c.offsets[i] + f.Len()}
		ov, ok := span.Intersect(query)
		if !ok {
			// Feature spans start in non-decreasing order, so the first miss
			// after any hit ends the scan.
			if seen {
				break
			}
			continue
		}
		seen = true
		if !includeGaps && f.IsGap {
			continue
		}
		segments = append(segments, feature.NewSegment(f, ov.Start-c.offsets[i], ov.End-c.offsets[i]))
	}
	return segments
}

// LociInInterval returns the genomic loci visible in the context-coordinate
// query [start, end), with gaps excluded and overlapping or touching loci
// merged.  The result is sorted and pairwise disjoint.
func (c *Context) LociInInterval(start, end int) []genome.Interval {
	segments := c.featuresInInterval(start, end, false)
	if len(segments) == 0 {
		return nil
	}
	loci := make([]genome.Interval, len(segments))
	for i, s := range segments {
		loci[i] = s.Locus()
	}
	return genome.MergeOverlaps(loci)
}
