package state

import (
	"image/color"
	"math"
	"time"
)

// Point is a surface-local coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// ValidWidth reports whether w is usable as a line width: positive and
// finite.
func ValidWidth(w float64) bool {
	return w > 0 && !math.IsInf(w, 0)
}

// Stroke is one continuous freehand mark. A Stroke handed out by a Recorder
// or History is frozen: its points, color and width never change.
type Stroke struct {
	id      string
	points  []Point
	color   color.NRGBA
	width   float64
	created time.Time
}

// NewStroke builds a frozen stroke from already captured points. The points
// are copied.
func NewStroke(id string, points []Point, c color.NRGBA, width float64) (Stroke, error) {
	return NewStrokeAt(id, points, c, width, time.Now())
}

// NewStrokeAt is NewStroke for a stroke captured at a known time, e.g. when
// reading a saved document. A zero time means now.
func NewStrokeAt(id string, points []Point, c color.NRGBA, width float64, created time.Time) (Stroke, error) {
	if len(points) == 0 {
		return Stroke{}, ErrEmptyStroke
	}
	if !ValidWidth(width) {
		return Stroke{}, ErrInvalidWidth
	}
	if id == "" {
		id = newStrokeID()
	}
	pts := make([]Point, len(points))
	copy(pts, points)
	if created.IsZero() {
		created = time.Now()
	}
	return Stroke{id: id, points: pts, color: c, width: width, created: created}, nil
}

func (s Stroke) ID() string           { return s.id }
func (s Stroke) Color() color.NRGBA   { return s.color }
func (s Stroke) Width() float64       { return s.width }
func (s Stroke) CreatedAt() time.Time { return s.created }
func (s Stroke) Len() int             { return len(s.points) }

// At returns the i-th point.
func (s Stroke) At(i int) Point { return s.points[i] }

// Points returns a copy of the stroke's points in capture order.
func (s Stroke) Points() []Point {
	pts := make([]Point, len(s.points))
	copy(pts, s.points)
	return pts
}

// Path returns the points with consecutive duplicates dropped. A stroke
// whose points all coincide yields a single point.
func (s Stroke) Path() []Point {
	if len(s.points) == 0 {
		return nil
	}
	out := []Point{s.points[0]}
	for _, p := range s.points[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

// Bounds returns the area covered by the stroke including half its width
// on every side.
func (s Stroke) Bounds() Rect {
	return BoundsOf(s.points, s.width/2)
}

// Equal reports whether two strokes carry the same id, metadata and points.
func (s Stroke) Equal(o Stroke) bool {
	if s.id != o.id || s.color != o.color || s.width != o.width || len(s.points) != len(o.points) {
		return false
	}
	for i := range s.points {
		if s.points[i] != o.points[i] {
			return false
		}
	}
	return true
}
