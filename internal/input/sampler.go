package input

import (
	"fmt"

	"LocalSketch/internal/state"
)

// Sample converts a mouse-down, mouse-move, touch-start or touch-move event
// into a point relative to the surface described by rect.
//
// Mouse events already report their offset within the surface. Touch events
// use the first contact, shifted by the surface's top-left corner.
func Sample(ev Event, rect Rect) (state.Point, error) {
	switch ev.Kind {
	case MouseDown, MouseMove:
		return state.Pt(ev.OffsetX, ev.OffsetY), nil
	case TouchStart, TouchMove:
		if len(ev.Touches) == 0 {
			return state.Point{}, fmt.Errorf("%s: %w", ev.Kind, ErrEmptyTouch)
		}
		t := ev.Touches[0]
		return state.Pt(t.ClientX-rect.Left, t.ClientY-rect.Top), nil
	}
	return state.Point{}, fmt.Errorf("%s: %w", ev.Kind, ErrNoPosition)
}
