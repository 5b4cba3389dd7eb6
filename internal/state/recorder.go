package state

import (
	"image/color"
	"time"
)

// Recorder owns the single in-progress stroke. Points are appended to it
// while a gesture is active; End hands the finished stroke over and leaves
// the recorder empty again.
type Recorder struct {
	active *Stroke
}

// Begin starts a new stroke at p with the given color and width, which are
// frozen for the lifetime of the stroke.
func (r *Recorder) Begin(p Point, c color.NRGBA, width float64) error {
	if r.active != nil {
		return ErrCaptureActive
	}
	if !ValidWidth(width) {
		return ErrInvalidWidth
	}
	r.active = &Stroke{
		id:      newStrokeID(),
		points:  []Point{p},
		color:   c,
		width:   width,
		created: time.Now(),
	}
	return nil
}

// Extend appends p to the active stroke.
func (r *Recorder) Extend(p Point) error {
	if r.active == nil {
		return ErrNoCapture
	}
	r.active.points = append(r.active.points, p)
	return nil
}

// End finalizes the active stroke and returns it.
func (r *Recorder) End() (Stroke, error) {
	if r.active == nil {
		return Stroke{}, ErrNoCapture
	}
	s := *r.active
	r.active = nil
	// Clip capacity so nothing can append into the frozen backing array.
	s.points = s.points[:len(s.points):len(s.points)]
	return s, nil
}

// Active reports whether a stroke is being captured.
func (r *Recorder) Active() bool {
	return r.active != nil
}

// Current returns a copy of the in-progress stroke, if any.
func (r *Recorder) Current() (Stroke, bool) {
	if r.active == nil {
		return Stroke{}, false
	}
	s := *r.active
	s.points = s.Points()
	return s, true
}
