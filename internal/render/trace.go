package render

import (
	"image"
	"image/color"

	"LocalSketch/internal/state"
)

// Trace is the live feedback for a stroke being captured. Each Extend draws
// one more segment on top of the surface without clearing it. It only
// exists for responsiveness; Redraw defines the final appearance.
type Trace struct {
	r       *Renderer
	surface *Surface
	color   color.NRGBA
	width   float64
	origin  state.Point
	last    state.Point
}

// BeginTrace starts a live trace at p and draws its starting dot.
func (r *Renderer) BeginTrace(s *Surface, p state.Point, c color.NRGBA, width float64) *Trace {
	r.dot(s, p, c, width)
	return &Trace{r: r, surface: s, color: c, width: width, origin: p, last: p}
}

// Extend draws the segment from the previous point to p and returns the
// pixel area that changed.
func (t *Trace) Extend(p state.Point) image.Rectangle {
	if p == t.last {
		return image.Rectangle{}
	}
	seg := []state.Point{t.last, p}
	t.r.polyline(t.surface, seg, t.color, t.width)
	t.last = p
	// One extra pixel for antialiased edges.
	return state.BoundsOf(seg, t.width/2+1).Pixels().Intersect(t.surface.Bounds())
}

// Start returns the area covered by the starting dot.
func (t *Trace) Start() image.Rectangle {
	return state.BoundsOf([]state.Point{t.origin}, t.width/2+1).Pixels().Intersect(t.surface.Bounds())
}
