// Package drawing defines the transform from context coordinates to pixel
// coordinates.  The rest of the repository treats a Model as an opaque,
// deterministic transform; LinearModel is the standard implementation used
// by linear genome views.
package drawing

import (
	"math"

	"github.com/gvizlab/genomeview/interval"
)

// Model converts context coordinates to pixel coordinates.
type Model interface {
	// BaseToX returns the pixel coordinate of a context coordinate.
	BaseToX(base int) int
	// BaseSpanToXSpan returns the pixel interval covering a context
	// interval.
	BaseSpanToXSpan(span interval.OpenInterval) interval.OpenInterval
}

// LinearModel maps a view window, an interval of context coordinates, onto
// [0, width) pixels linearly.  A degenerate model (empty window or
// non-positive width) maps everything to zero-width pixel spans.
type LinearModel struct {
	window        interval.OpenInterval
	width         int
	pixelsPerBase float64
}

var _ Model = LinearModel{}

// NewLinearModel returns the linear transform drawing the context interval
// window onto width pixels.
func NewLinearModel(window interval.OpenInterval, width int) LinearModel {
	m := LinearModel{window: window, width: width}
	if window.Len() > 0 && width > 0 {
		m.pixelsPerBase = float64(width) / float64(window.Len())
	}
	return m
}

// Window returns the view window in context coordinates.
func (m LinearModel) Window() interval.OpenInterval { return m.window }

// Width returns the pixel width of the view.
func (m LinearModel) Width() int { return m.width }

// PixelsPerBase returns the drawing density.  Zero for a degenerate model.
func (m LinearModel) PixelsPerBase() float64 { return m.pixelsPerBase }

// BaseToX implements Model.
func (m LinearModel) BaseToX(base int) int {
	return int(math.Round(float64(base-m.window.Start) * m.pixelsPerBase))
}

// BaseSpanToXSpan implements Model.
func (m LinearModel) BaseSpanToXSpan(span interval.OpenInterval) interval.OpenInterval {
	start := m.BaseToX(span.Start)
	end := m.BaseToX(span.End)
	if end < start {
		end = start
	}
	return interval.OpenInterval{Start: start, End: end}
}

// XToBase returns the context coordinate drawn at pixel x.  The inverse of
// BaseToX; undefined for a degenerate model.
func (m LinearModel) XToBase(x int) int {
	return m.window.Start + int(math.Round(float64(x)/m.pixelsPerBase))
}

// XWidthToBases returns the number of context coordinates covered by pixels
// pixels.
func (m LinearModel) XWidthToBases(pixels int) int {
	return int(math.Round(float64(pixels) / m.pixelsPerBase))
}
