// Package placement projects features, feature segments, and paired-locus
// interactions into a view, producing the context- and pixel-space records
// consumed by track renderers.  Placement is a pure function of its inputs:
// records are recomputed on every view change and never cached here.
package placement

import (
	"math"

	"github.com/gvizlab/genomeview/drawing"
	"github.com/gvizlab/genomeview/feature"
	"github.com/gvizlab/genomeview/genome"
	"github.com/gvizlab/genomeview/interval"
	"github.com/gvizlab/genomeview/navcontext"
)

// View is the current viewport: a window of context coordinates within one
// navigation context.
type View struct {
	Context *navcontext.Context
	Window  interval.OpenInterval
}

// PlacedFeature is one image of a feature inside the view.  A feature
// produces one PlacedFeature per context interval it maps to that survives
// clipping, so a single input feature may produce zero or several records.
type PlacedFeature struct {
	Feature *feature.Feature
	// ContextSpan is the context interval shown, clipped to the view
	// window.
	ContextSpan interval.OpenInterval
	// XSpan is ContextSpan in pixel coordinates.
	XSpan interval.OpenInterval
	// VisiblePart is the feature-relative sub-range actually shown.
	VisiblePart feature.Segment
}

// PlacedSegment is a sub-segment of a placed feature in pixel coordinates.
type PlacedSegment struct {
	Segment feature.Segment
	XSpan   interval.OpenInterval
}

// PlacedInteraction is one image of a paired-locus interaction.  The spans
// are ordered so that XSpans[0] starts at or left of XSpans[1], giving every
// interaction a canonical orientation for rendering and keying.
type PlacedInteraction struct {
	Interaction  genome.Interaction
	ContextSpans [2]interval.OpenInterval
	XSpans       [2]interval.OpenInterval
}

// PlaceFeatures projects features into the view at the given pixel width.
// Each feature is mapped to all context intervals representing its locus;
// each mapping is clipped to the view window and dropped if nothing
// remains.  Output order follows input order, then context order per
// feature.
func PlaceFeatures(view View, features []*feature.Feature, width int) []PlacedFeature {
	model := drawing.NewLinearModel(view.Window, width)
	var placements []PlacedFeature
	for _, f := range features {
		for _, m := range view.Context.MapLocus(f.Locus) {
			clipped, ok := m.Span.Intersect(view.Window)
			if !ok {
				continue
			}
			// The feature-local offset of the clipped start: how far the
			// mapped sub-locus sits into the feature, plus how much the
			// clip removed.
			localStart := m.Locus.Start - f.Locus.Start + clipped.Start - m.Span.Start
			placements = append(placements, PlacedFeature{
				Feature:     f,
				ContextSpan: clipped,
				XSpan:       model.BaseSpanToXSpan(clipped),
				VisiblePart: feature.NewSegment(f, localStart, localStart+clipped.Len()),
			})
		}
	}
	return placements
}

// PlaceSegments positions candidate sub-segments of a placed feature's
// parent.  Each segment is intersected with the parent's visible part;
// survivors are mapped linearly into the parent's pixel span at a constant
// pixels-per-base ratio.  Segments wholly outside the visible part are
// dropped.
func PlaceSegments(parent PlacedFeature, segments []feature.Segment) []PlacedSegment {
	visible := parent.VisiblePart
	if visible.Len() == 0 {
		return nil
	}
	pixelsPerBase := float64(parent.XSpan.Len()) / float64(visible.Len())
	var placed []PlacedSegment
	for _, s := range segments {
		ov, ok := s.Intersect(visible)
		if !ok {
			continue
		}
		xStart := parent.XSpan.Start + int(math.Round(float64(ov.Start-visible.Start)*pixelsPerBase))
		xEnd := xStart + int(math.Round(float64(ov.Len())*pixelsPerBase))
		placed = append(placed, PlacedSegment{
			Segment: ov,
			XSpan:   interval.OpenInterval{Start: xStart, End: xEnd},
		})
	}
	return placed
}

// PlaceInteractions projects paired-locus interactions into the view.  Each
// locus of an interaction is independently mapped and clipped; the full
// cross product of surviving interval pairs is emitted, each pair in
// canonical left-to-right order.
func PlaceInteractions(view View, interactions []genome.Interaction, width int) []PlacedInteraction {
	model := drawing.NewLinearModel(view.Window, width)
	var placed []PlacedInteraction
	for _, ia := range interactions {
		spans1 := clipMappings(view, ia.Locus1)
		spans2 := clipMappings(view, ia.Locus2)
		for _, s1 := range spans1 {
			for _, s2 := range spans2 {
				c1, c2 := s1, s2
				x1, x2 := model.BaseSpanToXSpan(c1), model.BaseSpanToXSpan(c2)
				if x2.Start < x1.Start {
					c1, c2 = c2, c1
					x1, x2 = x2, x1
				}
				placed = append(placed, PlacedInteraction{
					Interaction:  ia,
					ContextSpans: [2]interval.OpenInterval{c1, c2},
					XSpans:       [2]interval.OpenInterval{x1, x2},
				})
			}
		}
	}
	return placed
}

func clipMappings(view View, locus genome.Interval) []interval.OpenInterval {
	var clipped []interval.OpenInterval
	for _, span := range view.Context.GenomeIntervalToBases(locus) {
		if ov, ok := span.Intersect(view.Window); ok {
			clipped = append(clipped, ov)
		}
	}
	return clipped
}
